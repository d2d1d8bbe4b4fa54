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
	"github.com/tidwall/gjson"

	"github.com/marklogic-community/marklogic-go/lib/boolstring"
)

// FieldProperties holds the search settings any field shape may carry.
// Only the settings that were explicitly set are encoded.
type FieldProperties struct {
	StemmedSearches                string            `json:"stemmed-searches,omitempty" validate:"omitempty,stemmedSearches"`
	WordSearches                   *bool             `json:"word-searches,omitempty"`
	FastPhraseSearches             *bool             `json:"fast-phrase-searches,omitempty"`
	FastCaseSensitiveSearches      *bool             `json:"fast-case-sensitive-searches,omitempty"`
	FastDiacriticSensitiveSearches *bool             `json:"fast-diacritic-sensitive-searches,omitempty"`
	TrailingWildcardSearches       *bool             `json:"trailing-wildcard-searches,omitempty"`
	OneCharacterSearches           *bool             `json:"one-character-searches,omitempty"`
	TwoCharacterSearches           *bool             `json:"two-character-searches,omitempty"`
	ThreeCharacterSearches         *bool             `json:"three-character-searches,omitempty"`
	IncludedElements               []IncludedElement `json:"included-element,omitempty" validate:"omitempty,dive"`
	ExcludedElements               []ExcludedElement `json:"excluded-element,omitempty" validate:"omitempty,dive"`
}

// IncludedElement names an element whose content contributes to a field.
type IncludedElement struct {
	NamespaceURI          string  `json:"namespace-uri"`
	Localname             string  `json:"localname" validate:"required"`
	Weight                float64 `json:"weight"`
	AttributeNamespaceURI string  `json:"attribute-namespace-uri,omitempty"`
	AttributeLocalname    string  `json:"attribute-localname,omitempty"`
	AttributeValue        string  `json:"attribute-value,omitempty"`
}

// ExcludedElement names an element whose content is excluded from a field.
type ExcludedElement struct {
	NamespaceURI          string `json:"namespace-uri"`
	Localname             string `json:"localname" validate:"required"`
	AttributeNamespaceURI string `json:"attribute-namespace-uri,omitempty"`
	AttributeLocalname    string `json:"attribute-localname,omitempty"`
	AttributeValue        string `json:"attribute-value,omitempty"`
}

// FieldPath addresses part of a path field, with a relative weight.
type FieldPath struct {
	Path   string  `json:"path" validate:"required"`
	Weight float64 `json:"weight"`
}

func NewFieldPath(path string, weight float64) FieldPath {
	return FieldPath{Path: path, Weight: weight}
}

// RootField is an ordinary named field rooted at the document root.
type RootField struct {
	Name        string          `json:"field-name" validate:"required"`
	IncludeRoot boolstring.Bool `json:"include-root"`
	FieldProperties
}

func NewRootField(name string, includeRoot bool) *RootField {
	return &RootField{Name: name, IncludeRoot: boolstring.Bool(includeRoot)}
}

func (f *RootField) slotName() string  { return SlotField }
func (f *RootField) FieldName() string { return f.Name }

// PathField is a field defined by one or more weighted paths.
type PathField struct {
	Name  string      `json:"field-name" validate:"required"`
	Paths []FieldPath `json:"field-path" validate:"required,min=1,dive"`
	FieldProperties
}

func NewPathField(name string, paths ...FieldPath) *PathField {
	return &PathField{Name: name, Paths: paths}
}

func (f *PathField) slotName() string  { return SlotField }
func (f *PathField) FieldName() string { return f.Name }

// WordQuery carries the database's global word query settings.  The server
// stores it in the field slot as the field with the empty name; there is at
// most one per database.
type WordQuery struct {
	Name        string          `json:"field-name"`
	IncludeRoot boolstring.Bool `json:"include-root"`
	FieldProperties
}

func NewWordQuery(includeRoot bool) *WordQuery {
	return &WordQuery{IncludeRoot: boolstring.Bool(includeRoot)}
}

func (f *WordQuery) slotName() string  { return SlotField }
func (f *WordQuery) FieldName() string { return f.Name }

// Field discrimination: a field-path collection takes precedence over the
// empty-name sentinel check, which takes precedence over the plain root
// field default.
var fieldRules = []variantRule[Field]{
	{
		matches: func(rec gjson.Result) bool { return rec.Get("field-path").Exists() },
		decode: func(rec gjson.Result) (Field, error) {
			if err := requireFields(SlotField, rec, "field-name", "field-path"); err != nil {
				return nil, err
			}
			out := &PathField{}
			if err := decodeRecord(SlotField, rec, out); err != nil {
				return nil, err
			}
			return out, nil
		},
	},
	{
		matches: func(rec gjson.Result) bool {
			name := rec.Get("field-name")
			return name.Exists() && name.String() == ""
		},
		decode: func(rec gjson.Result) (Field, error) {
			out := &WordQuery{}
			if err := decodeRecord(SlotField, rec, out); err != nil {
				return nil, err
			}
			return out, nil
		},
	},
	{
		matches: func(rec gjson.Result) bool { return true },
		decode: func(rec gjson.Result) (Field, error) {
			if err := requireFields(SlotField, rec, "field-name"); err != nil {
				return nil, err
			}
			out := &RootField{}
			if err := decodeRecord(SlotField, rec, out); err != nil {
				return nil, err
			}
			return out, nil
		},
	},
}

func decodeField(rec gjson.Result) (Field, error) {
	return decodeVariant(SlotField, fieldRules, rec)
}
