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
	"reflect"
	"strings"

	"github.com/tidwall/gjson"

	cerrors "github.com/marklogic-community/marklogic-go/lib/errors"
)

// The wire document is a single JSON object.  Three kinds of keys live in
// it: property-list slots (arrays of entity records), modeled scalar
// options, and everything else, which is carried through opaquely so a
// read-modify-write cycle never discards configuration this client does not
// model.

type slotDecoder func(*Database, gjson.Result) error
type slotEncoder func(*Database) (json.RawMessage, error)

var (
	slotDecoders = map[string]slotDecoder{}
	slotEncoders = map[string]slotEncoder{}

	// JSON keys claimed by the Options struct, derived from its tags.
	optionKeys = map[string]bool{}
)

// Unmarshal decodes a full database configuration document.  Slot arrays
// are decoded through their family's discrimination rules; a record that
// cannot be resolved to a variant fails the whole unmarshal rather than
// being dropped.  A slot key present with an empty array yields a
// populated-but-empty slot, which is distinct from an absent one.
func Unmarshal(data []byte) (*Database, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, cerrors.ErrorInvalidValue{
			Option: "database",
			Reason: "configuration document must be a JSON object",
		}
	}

	db := &Database{opaque: map[string]json.RawMessage{}}
	if err := json.Unmarshal(data, &db.props); err != nil {
		return nil, cerrors.ErrorInvalidValue{
			Option: "database",
			Reason: err.Error(),
		}
	}
	db.name = db.props.DatabaseName

	doc := gjson.ParseBytes(data)
	for key, val := range raw {
		if decode, ok := slotDecoders[key]; ok {
			arr := doc.Get(key)
			if !arr.IsArray() {
				return nil, cerrors.ErrorInvalidValue{
					Option: key,
					Value:  arr.Raw,
					Reason: "property-list slot must be an array",
				}
			}
			if err := decode(db, arr); err != nil {
				return nil, err
			}
			continue
		}
		if optionKeys[key] {
			continue
		}
		db.opaque[key] = val
	}
	return db, nil
}

// Marshal encodes the configuration back to its wire form: the opaque keys,
// then the modeled scalars, then every slot that has been populated.  Slots
// never touched are omitted entirely.
func (db *Database) Marshal() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(db.opaque)+len(optionKeys))
	for k, v := range db.opaque {
		out[k] = v
	}

	scalars, err := json.Marshal(db.props)
	if err != nil {
		return nil, err
	}
	var scalarMap map[string]json.RawMessage
	if err := json.Unmarshal(scalars, &scalarMap); err != nil {
		return nil, err
	}
	for k, v := range scalarMap {
		out[k] = v
	}

	for slot, encode := range slotEncoders {
		raw, err := encode(db)
		if err != nil {
			return nil, err
		}
		if raw != nil {
			out[slot] = raw
		}
	}
	return json.Marshal(out)
}

// MarshalJSON and UnmarshalJSON let a Database participate directly in
// encoding/json.

func (db *Database) MarshalJSON() ([]byte, error) { return db.Marshal() }

func (db *Database) UnmarshalJSON(data []byte) error {
	decoded, err := Unmarshal(data)
	if err != nil {
		return err
	}
	*db = *decoded
	return nil
}

func decodeSlot[T Entity](slot string, sel func(*Database) *[]T,
	decode func(gjson.Result) (T, error)) slotDecoder {
	return func(db *Database, arr gjson.Result) error {
		recs := arr.Array()
		items := make([]T, 0, len(recs))
		for _, rec := range recs {
			if !rec.IsObject() {
				return cerrors.ErrorMalformedRecord{Slot: slot, Field: "(record)"}
			}
			v, err := decode(rec)
			if err != nil {
				return err
			}
			items = append(items, v)
		}
		*sel(db) = items
		return nil
	}
}

func encodeSlot[T Entity](sel func(*Database) *[]T) slotEncoder {
	return func(db *Database) (json.RawMessage, error) {
		items := *sel(db)
		if items == nil {
			return nil, nil
		}
		return json.Marshal(items)
	}
}

// decodeSimple builds the decoder for a single-shape slot: a required-field
// check against simpleRequiredFields followed by a struct decode.
func decodeSimple[T Entity](slot string, newT func() T) func(gjson.Result) (T, error) {
	return func(rec gjson.Result) (T, error) {
		var zero T
		if err := requireFields(slot, rec, simpleRequiredFields[slot]...); err != nil {
			return zero, err
		}
		out := newT()
		if err := decodeRecord(slot, rec, out); err != nil {
			return zero, err
		}
		return out, nil
	}
}

func decodeFieldSlot(db *Database, arr gjson.Result) error {
	recs := arr.Array()
	named := make([]Field, 0, len(recs))
	sawWordQuery := false
	for _, rec := range recs {
		if !rec.IsObject() {
			return cerrors.ErrorMalformedRecord{Slot: SlotField, Field: "(record)"}
		}
		f, err := decodeField(rec)
		if err != nil {
			return err
		}
		if wq, ok := f.(*WordQuery); ok {
			if sawWordQuery {
				return cerrors.ErrorDuplicateKey{Slot: SlotField, Key: ""}
			}
			db.wordQuery = wq
			sawWordQuery = true
			continue
		}
		named = append(named, f)
	}
	// An array holding only the word query record leaves the named field
	// list unpopulated.
	if len(named) > 0 || !sawWordQuery {
		db.fields = named
	}
	return nil
}

func encodeFieldSlot(db *Database) (json.RawMessage, error) {
	if db.fields == nil && db.wordQuery == nil {
		return nil, nil
	}
	records := make([]Field, 0, len(db.fields)+1)
	if db.wordQuery != nil {
		records = append(records, db.wordQuery)
	}
	records = append(records, db.fields...)
	return json.Marshal(records)
}

func registerCodec[T Entity](slot string, sel func(*Database) *[]T,
	decode func(gjson.Result) (T, error)) {
	slotDecoders[slot] = decodeSlot(slot, sel, decode)
	slotEncoders[slot] = encodeSlot(sel)
}

func init() {
	registerCodec(SlotElementRangeIndex,
		func(db *Database) *[]*ElementRangeIndex { return &db.elementRangeIndexes },
		func(rec gjson.Result) (*ElementRangeIndex, error) {
			return decodeIndex(SlotElementRangeIndex, rec, &ElementRangeIndex{})
		})
	registerCodec(SlotAttributeRangeIndex,
		func(db *Database) *[]*AttributeRangeIndex { return &db.attributeRangeIndexes },
		func(rec gjson.Result) (*AttributeRangeIndex, error) {
			return decodeIndex(SlotAttributeRangeIndex, rec, &AttributeRangeIndex{})
		})
	registerCodec(SlotFieldRangeIndex,
		func(db *Database) *[]*FieldRangeIndex { return &db.fieldRangeIndexes },
		func(rec gjson.Result) (*FieldRangeIndex, error) {
			return decodeIndex(SlotFieldRangeIndex, rec, &FieldRangeIndex{})
		})
	registerCodec(SlotPathRangeIndex,
		func(db *Database) *[]*PathRangeIndex { return &db.pathRangeIndexes },
		func(rec gjson.Result) (*PathRangeIndex, error) {
			return decodeIndex(SlotPathRangeIndex, rec, &PathRangeIndex{})
		})
	registerCodec(SlotGeoElementIndex,
		func(db *Database) *[]*GeospatialElementIndex { return &db.geoElementIndexes },
		func(rec gjson.Result) (*GeospatialElementIndex, error) {
			return decodeIndex(SlotGeoElementIndex, rec, &GeospatialElementIndex{})
		})
	registerCodec(SlotGeoPathIndex,
		func(db *Database) *[]*GeospatialPathIndex { return &db.geoPathIndexes },
		func(rec gjson.Result) (*GeospatialPathIndex, error) {
			return decodeIndex(SlotGeoPathIndex, rec, &GeospatialPathIndex{})
		})
	registerCodec(SlotGeoElementChildIndex,
		func(db *Database) *[]*GeospatialElementChildIndex { return &db.geoElementChildIndexes },
		func(rec gjson.Result) (*GeospatialElementChildIndex, error) {
			return decodeIndex(SlotGeoElementChildIndex, rec, &GeospatialElementChildIndex{})
		})
	registerCodec(SlotGeoElementPairIndex,
		func(db *Database) *[]*GeospatialElementPairIndex { return &db.geoElementPairIndexes },
		func(rec gjson.Result) (*GeospatialElementPairIndex, error) {
			return decodeIndex(SlotGeoElementPairIndex, rec, &GeospatialElementPairIndex{})
		})
	registerCodec(SlotGeoElementAttrPairIndex,
		func(db *Database) *[]*GeospatialElementAttributePairIndex { return &db.geoElementAttrPairIndexes },
		func(rec gjson.Result) (*GeospatialElementAttributePairIndex, error) {
			return decodeIndex(SlotGeoElementAttrPairIndex, rec, &GeospatialElementAttributePairIndex{})
		})

	registerCodec(SlotDatabaseBackup,
		func(db *Database) *[]ScheduledBackup { return &db.scheduledBackups },
		decodeScheduledBackup)
	registerCodec(SlotMergeBlackout,
		func(db *Database) *[]MergeBlackout { return &db.mergeBlackouts },
		decodeMergeBlackout)
	// The field slot needs its own codec: the word query record (the one
	// with the empty name) is pulled out into the document's singleton on
	// decode and put back at the head of the array on encode.
	slotDecoders[SlotField] = decodeFieldSlot
	slotEncoders[SlotField] = encodeFieldSlot

	registerCodec(SlotFragmentRoot,
		func(db *Database) *[]*FragmentRoot { return &db.fragmentRoots },
		decodeSimple(SlotFragmentRoot, func() *FragmentRoot { return &FragmentRoot{} }))
	registerCodec(SlotFragmentParent,
		func(db *Database) *[]*FragmentParent { return &db.fragmentParents },
		decodeSimple(SlotFragmentParent, func() *FragmentParent { return &FragmentParent{} }))
	registerCodec(SlotPathNamespace,
		func(db *Database) *[]*PathNamespace { return &db.pathNamespaces },
		decodeSimple(SlotPathNamespace, func() *PathNamespace { return &PathNamespace{} }))
	registerCodec(SlotElementWordLexicon,
		func(db *Database) *[]*ElementWordLexicon { return &db.elementWordLexicons },
		decodeSimple(SlotElementWordLexicon, func() *ElementWordLexicon { return &ElementWordLexicon{} }))
	registerCodec(SlotAttributeWordLexicon,
		func(db *Database) *[]*AttributeWordLexicon { return &db.attributeWordLexicons },
		decodeSimple(SlotAttributeWordLexicon, func() *AttributeWordLexicon { return &AttributeWordLexicon{} }))
	registerCodec(SlotElementWordQueryThrough,
		func(db *Database) *[]*ElementWordQueryThrough { return &db.elementWordQueryThroughs },
		decodeSimple(SlotElementWordQueryThrough, func() *ElementWordQueryThrough { return &ElementWordQueryThrough{} }))
	registerCodec(SlotPhraseThrough,
		func(db *Database) *[]*PhraseThrough { return &db.phraseThroughs },
		decodeSimple(SlotPhraseThrough, func() *PhraseThrough { return &PhraseThrough{} }))
	registerCodec(SlotPhraseAround,
		func(db *Database) *[]*PhraseAround { return &db.phraseArounds },
		decodeSimple(SlotPhraseAround, func() *PhraseAround { return &PhraseAround{} }))
	registerCodec(SlotDefaultRuleset,
		func(db *Database) *[]*RuleSet { return &db.defaultRulesets },
		decodeSimple(SlotDefaultRuleset, func() *RuleSet { return &RuleSet{} }))

	t := reflect.TypeOf(Options{})
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		if name, _, _ := strings.Cut(tag, ","); name != "" && name != "-" {
			optionKeys[name] = true
		}
	}
}
