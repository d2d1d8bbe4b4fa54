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

package database

import (
	"encoding/json"

	"github.com/tidwall/gjson"

	cerrors "github.com/marklogic-community/marklogic-go/lib/errors"
)

// variantRule pairs a structural predicate over a raw wire record with the
// decoder for the variant it selects.
type variantRule[T Entity] struct {
	matches func(rec gjson.Result) bool
	decode  func(rec gjson.Result) (T, error)
}

// decodeVariant tries each rule in order and decodes with the first match.
// Rule order is part of the contract: a record satisfying more than one
// loosely-specified predicate resolves via the declared priority.  A record
// matching no rule is a hard failure, never silently dropped.
func decodeVariant[T Entity](slot string, rules []variantRule[T], rec gjson.Result) (T, error) {
	for _, rule := range rules {
		if rule.matches(rec) {
			return rule.decode(rec)
		}
	}
	var zero T
	return zero, cerrors.ErrorUnrecognizedVariant{Slot: slot, Record: rec.Raw}
}

// requireFields checks that every named field is present in the record
// before the record is decoded, so that absence surfaces as a
// MalformedRecord naming the missing field rather than as a zero value.
func requireFields(slot string, rec gjson.Result, fields ...string) error {
	for _, f := range fields {
		if !rec.Get(f).Exists() {
			return cerrors.ErrorMalformedRecord{Slot: slot, Field: f}
		}
	}
	return nil
}

// decodeRecord unmarshals the raw record into the target variant struct.
func decodeRecord(slot string, rec gjson.Result, out interface{}) error {
	if err := json.Unmarshal([]byte(rec.Raw), out); err != nil {
		return cerrors.ErrorUnrecognizedVariant{Slot: slot, Record: rec.Raw}
	}
	return nil
}

// absentOrNull reports whether a nested value is missing or explicitly null.
func absentOrNull(v gjson.Result) bool {
	return !v.Exists() || v.Type == gjson.Null
}
