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
	"reflect"
	"strconv"

	cerrors "github.com/marklogic-community/marklogic-go/lib/errors"
)

// slotOps is the property-list contract for one slot: ordered, runtime
// type-checked, and (for keyed families) duplicate-rejecting.  The typed
// mutators on Database and the dynamic AddToPropertyList entry point both
// funnel through here so the invariants hold at every mutation.
type slotOps struct {
	expected string
	add      func(*Database, Entity) error
	set      func(*Database, []Entity) error
	remove   func(*Database, Entity)
	get      func(*Database) []Entity
}

var slotRegistry = map[string]slotOps{}

func registerSlot(slot string, ops slotOps) {
	slotRegistry[slot] = ops
}

// listOps builds the slot operations over a typed slice selected from the
// database.  key extracts the natural key of an element, if it has one; a
// nil key function means the slot is unkeyed.
func listOps[T Entity](slot string, sel func(*Database) *[]T, key func(T) (string, bool)) slotOps {
	expected := reflect.TypeOf((*T)(nil)).Elem().String()

	check := func(e Entity) (T, error) {
		if e == nil {
			var zero T
			return zero, cerrors.ErrorTypeMismatch{
				Slot:     slot,
				Expected: expected,
				Actual:   "nil",
			}
		}
		v, ok := e.(T)
		if !ok {
			return v, cerrors.ErrorTypeMismatch{
				Slot:     slot,
				Expected: expected,
				Actual:   reflect.TypeOf(e).String(),
			}
		}
		return v, nil
	}

	checkDup := func(items []T, v T) error {
		if key == nil {
			return nil
		}
		k, keyed := key(v)
		if !keyed {
			return nil
		}
		for _, existing := range items {
			if ek, ok := key(existing); ok && ek == k {
				return cerrors.ErrorDuplicateKey{Slot: slot, Key: k}
			}
		}
		return nil
	}

	return slotOps{
		expected: expected,
		add: func(db *Database, e Entity) error {
			v, err := check(e)
			if err != nil {
				return err
			}
			items := sel(db)
			if err := checkDup(*items, v); err != nil {
				return err
			}
			*items = append(*items, v)
			return nil
		},
		set: func(db *Database, entities []Entity) error {
			// All-or-nothing: the slot is only replaced once every
			// element has passed the type and key checks.
			replacement := make([]T, 0, len(entities))
			for _, e := range entities {
				v, err := check(e)
				if err != nil {
					return err
				}
				if err := checkDup(replacement, v); err != nil {
					return err
				}
				replacement = append(replacement, v)
			}
			*sel(db) = replacement
			return nil
		},
		remove: func(db *Database, e Entity) {
			v, err := check(e)
			if err != nil {
				// Removing an element of the wrong type can never
				// match anything; treat it like an absent element.
				return
			}
			items := sel(db)
			for i, existing := range *items {
				if reflect.DeepEqual(existing, v) {
					*items = append((*items)[:i], (*items)[i+1:]...)
					return
				}
			}
		},
		get: func(db *Database) []Entity {
			items := *sel(db)
			if items == nil {
				return nil
			}
			out := make([]Entity, len(items))
			for i, v := range items {
				out[i] = v
			}
			return out
		},
	}
}

// AddToPropertyList appends an entity to the named slot, checking at runtime
// that it belongs to the slot's entity family.
func (db *Database) AddToPropertyList(slot string, e Entity) (*Database, error) {
	ops, ok := slotRegistry[slot]
	if !ok {
		return db, cerrors.ErrorInvalidValue{Option: slot, Value: e, Reason: "unknown property-list slot"}
	}
	if err := ops.add(db, e); err != nil {
		return db, err
	}
	return db, nil
}

// SetPropertyList replaces the named slot's entire sequence.  If any element
// fails the type or key check the slot is left unmodified.
func (db *Database) SetPropertyList(slot string, entities []Entity) (*Database, error) {
	ops, ok := slotRegistry[slot]
	if !ok {
		return db, cerrors.ErrorInvalidValue{Option: slot, Reason: "unknown property-list slot"}
	}
	if err := ops.set(db, entities); err != nil {
		return db, err
	}
	return db, nil
}

// RemoveFromPropertyList removes the first element of the named slot equal
// to the given entity.  Removing an absent entity is a no-op.
func (db *Database) RemoveFromPropertyList(slot string, e Entity) *Database {
	if ops, ok := slotRegistry[slot]; ok {
		ops.remove(db, e)
	}
	return db
}

// PropertyList returns the named slot's current ordered sequence, or nil if
// the slot has never been populated.  A populated-but-empty slot returns an
// empty, non-nil slice.
func (db *Database) PropertyList(slot string) []Entity {
	if ops, ok := slotRegistry[slot]; ok {
		return ops.get(db)
	}
	return nil
}

func init() {
	registerSlot(SlotElementRangeIndex, listOps(SlotElementRangeIndex,
		func(db *Database) *[]*ElementRangeIndex { return &db.elementRangeIndexes }, nil))
	registerSlot(SlotAttributeRangeIndex, listOps(SlotAttributeRangeIndex,
		func(db *Database) *[]*AttributeRangeIndex { return &db.attributeRangeIndexes }, nil))
	registerSlot(SlotFieldRangeIndex, listOps(SlotFieldRangeIndex,
		func(db *Database) *[]*FieldRangeIndex { return &db.fieldRangeIndexes }, nil))
	registerSlot(SlotPathRangeIndex, listOps(SlotPathRangeIndex,
		func(db *Database) *[]*PathRangeIndex { return &db.pathRangeIndexes }, nil))
	registerSlot(SlotGeoElementIndex, listOps(SlotGeoElementIndex,
		func(db *Database) *[]*GeospatialElementIndex { return &db.geoElementIndexes }, nil))
	registerSlot(SlotGeoPathIndex, listOps(SlotGeoPathIndex,
		func(db *Database) *[]*GeospatialPathIndex { return &db.geoPathIndexes }, nil))
	registerSlot(SlotGeoElementChildIndex, listOps(SlotGeoElementChildIndex,
		func(db *Database) *[]*GeospatialElementChildIndex { return &db.geoElementChildIndexes }, nil))
	registerSlot(SlotGeoElementPairIndex, listOps(SlotGeoElementPairIndex,
		func(db *Database) *[]*GeospatialElementPairIndex { return &db.geoElementPairIndexes }, nil))
	registerSlot(SlotGeoElementAttrPairIndex, listOps(SlotGeoElementAttrPairIndex,
		func(db *Database) *[]*GeospatialElementAttributePairIndex { return &db.geoElementAttrPairIndexes }, nil))

	registerSlot(SlotDatabaseBackup, listOps(SlotDatabaseBackup,
		func(db *Database) *[]ScheduledBackup { return &db.scheduledBackups }, backupKey))
	registerSlot(SlotMergeBlackout, listOps(SlotMergeBlackout,
		func(db *Database) *[]MergeBlackout { return &db.mergeBlackouts }, nil))
	registerSlot(SlotField, fieldSlotOps())

	registerSlot(SlotFragmentRoot, listOps(SlotFragmentRoot,
		func(db *Database) *[]*FragmentRoot { return &db.fragmentRoots }, nil))
	registerSlot(SlotFragmentParent, listOps(SlotFragmentParent,
		func(db *Database) *[]*FragmentParent { return &db.fragmentParents }, nil))
	registerSlot(SlotPathNamespace, listOps(SlotPathNamespace,
		func(db *Database) *[]*PathNamespace { return &db.pathNamespaces }, pathNamespaceKey))
	registerSlot(SlotElementWordLexicon, listOps(SlotElementWordLexicon,
		func(db *Database) *[]*ElementWordLexicon { return &db.elementWordLexicons }, nil))
	registerSlot(SlotAttributeWordLexicon, listOps(SlotAttributeWordLexicon,
		func(db *Database) *[]*AttributeWordLexicon { return &db.attributeWordLexicons }, nil))
	registerSlot(SlotElementWordQueryThrough, listOps(SlotElementWordQueryThrough,
		func(db *Database) *[]*ElementWordQueryThrough { return &db.elementWordQueryThroughs }, nil))
	registerSlot(SlotPhraseThrough, listOps(SlotPhraseThrough,
		func(db *Database) *[]*PhraseThrough { return &db.phraseThroughs }, nil))
	registerSlot(SlotPhraseAround, listOps(SlotPhraseAround,
		func(db *Database) *[]*PhraseAround { return &db.phraseArounds }, nil))
	registerSlot(SlotDefaultRuleset, listOps(SlotDefaultRuleset,
		func(db *Database) *[]*RuleSet { return &db.defaultRulesets }, nil))
}

func backupKey(b ScheduledBackup) (string, bool) {
	if id := b.BackupID(); id != 0 {
		return strconv.Itoa(id), true
	}
	return "", false
}

// Fields are keyed by name.  The empty name is reserved on the wire for the
// word query settings, which live on the document itself rather than in the
// field list, so the list only ever holds named fields.
func fieldKey(f Field) (string, bool) {
	return f.FieldName(), true
}

func fieldSlotOps() slotOps {
	ops := listOps(SlotField, func(db *Database) *[]Field { return &db.fields }, fieldKey)
	requireNames := func(entities ...Entity) error {
		for _, e := range entities {
			if f, ok := e.(Field); ok && f.FieldName() == "" {
				return cerrors.ErrorInvalidValue{
					Option: SlotField,
					Value:  e,
					Reason: "fields must have a non-empty name",
				}
			}
		}
		return nil
	}
	add, set := ops.add, ops.set
	ops.add = func(db *Database, e Entity) error {
		if err := requireNames(e); err != nil {
			return err
		}
		return add(db, e)
	}
	ops.set = func(db *Database, entities []Entity) error {
		if err := requireNames(entities...); err != nil {
			return err
		}
		return set(db, entities)
	}
	return ops
}

func pathNamespaceKey(p *PathNamespace) (string, bool) {
	return p.Prefix, p.Prefix != ""
}
