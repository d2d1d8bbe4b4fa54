// Copyright (c) 2015 MarkLogic Corporation

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package boolstring handles the management API's string-typed booleans.
// Several index and field flags are carried on the wire as the tokens
// "true" and "false" rather than JSON booleans.  The quirk is preserved on
// encode; decode accepts either representation.
package boolstring

import (
	"encoding/json"
	"fmt"
)

type Bool bool

const (
	True  Bool = true
	False Bool = false
)

func (b Bool) MarshalJSON() ([]byte, error) {
	if b {
		return []byte(`"true"`), nil
	}
	return []byte(`"false"`), nil
}

func (b *Bool) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch v := v.(type) {
	case bool:
		*b = Bool(v)
	case string:
		switch v {
		case "true":
			*b = true
		case "false":
			*b = false
		default:
			return fmt.Errorf("invalid boolean token: %q", v)
		}
	default:
		return fmt.Errorf("invalid boolean value: %v", v)
	}
	return nil
}

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}
