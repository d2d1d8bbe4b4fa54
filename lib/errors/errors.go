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

package errors

import (
	"fmt"
	"strings"
)

// ErrorTypeMismatch indicates that an entity of the wrong type was passed to
// one of the property-list slots of a database configuration.  The slot is
// left unmodified.
type ErrorTypeMismatch struct {
	Slot     string
	Expected string
	Actual   string
}

func (e ErrorTypeMismatch) Error() string {
	return fmt.Sprintf("slot %s holds %s entities, not %s", e.Slot, e.Expected, e.Actual)
}

// ErrorUnrecognizedVariant indicates that a record decoded from the
// management API matched none of the known variants of its slot's entity
// family.  The raw record is carried for diagnostics.
type ErrorUnrecognizedVariant struct {
	Slot   string
	Record string
}

func (e ErrorUnrecognizedVariant) Error() string {
	return fmt.Sprintf("unrecognized %s record: %s", e.Slot, e.Record)
}

// ErrorMalformedRecord indicates that a record was missing a field required
// by the variant it otherwise matched.
type ErrorMalformedRecord struct {
	Slot  string
	Field string
}

func (e ErrorMalformedRecord) Error() string {
	return fmt.Sprintf("%s record is missing required field %s", e.Slot, e.Field)
}

// ErrorDuplicateKey indicates that an entity was added to a keyed slot that
// already holds an entity with the same natural key.
type ErrorDuplicateKey struct {
	Slot string
	Key  string
}

func (e ErrorDuplicateKey) Error() string {
	return fmt.Sprintf("slot %s already contains an entity keyed %q", e.Slot, e.Key)
}

// ErrorInvalidValue indicates that a value failed the validator for the
// database option it was being assigned to.
type ErrorInvalidValue struct {
	Option string
	Value  interface{}
	Reason string
}

func (e ErrorInvalidValue) Error() string {
	return fmt.Sprintf("invalid value for %s: %v (%s)", e.Option, e.Value, e.Reason)
}

// ErrorValidation is returned when a configuration fails structural
// validation prior to being sent to the server.
type ErrorValidation struct {
	ErroredFields []ErroredField
}

type ErroredField struct {
	Name   string
	Value  interface{}
	Reason string
}

func (e ErroredField) String() string {
	s := fmt.Sprintf("%s = '%v'", e.Name, e.Value)
	if e.Reason != "" {
		s += fmt.Sprintf(" (%s)", e.Reason)
	}
	return s
}

func (e ErrorValidation) Error() string {
	if len(e.ErroredFields) == 0 {
		return "configuration is not valid"
	}
	fields := make([]string, len(e.ErroredFields))
	for i, f := range e.ErroredFields {
		fields[i] = f.String()
	}
	return "configuration is not valid: " + strings.Join(fields, "; ")
}

// ErrorResourceDoesNotExist indicates the named resource was not found on
// the server.
type ErrorResourceDoesNotExist struct {
	Name string
}

func (e ErrorResourceDoesNotExist) Error() string {
	return fmt.Sprintf("resource does not exist: %s", e.Name)
}

// ErrorResourceAlreadyExists indicates a create collided with an existing
// resource of the same name.
type ErrorResourceAlreadyExists struct {
	Name string
}

func (e ErrorResourceAlreadyExists) Error() string {
	return fmt.Sprintf("resource already exists: %s", e.Name)
}

// ErrorResourceUpdateConflict indicates an update was rejected because the
// resource changed on the server since it was read (etag mismatch).
type ErrorResourceUpdateConflict struct {
	Name string
}

func (e ErrorResourceUpdateConflict) Error() string {
	return fmt.Sprintf("update conflict: %s", e.Name)
}

// ErrorUnexpectedResponse indicates the management API returned a status the
// client does not know how to handle.
type ErrorUnexpectedResponse struct {
	Status int
	Body   string
}

func (e ErrorUnexpectedResponse) Error() string {
	return fmt.Sprintf("unexpected management API response (status %d): %s", e.Status, e.Body)
}
