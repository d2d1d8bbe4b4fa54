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

// Entity is implemented by every sub-entity that can be attached to a
// database configuration under one of its property-list slots.  Entities
// have no identity outside their owning slot.
type Entity interface {
	slotName() string
}

// Wire slot names for the property-list collections of a database.  Each
// slot holds an ordered sequence of one entity family.
const (
	SlotElementRangeIndex          = "range-element-index"
	SlotAttributeRangeIndex        = "range-element-attribute-index"
	SlotFieldRangeIndex            = "range-field-index"
	SlotPathRangeIndex             = "range-path-index"
	SlotGeoElementIndex            = "geospatial-element-index"
	SlotGeoPathIndex               = "geospatial-path-index"
	SlotGeoElementChildIndex       = "geospatial-element-child-index"
	SlotGeoElementPairIndex        = "geospatial-element-pair-index"
	SlotGeoElementAttrPairIndex    = "geospatial-element-attribute-pair-index"
	SlotDatabaseBackup             = "database-backup"
	SlotMergeBlackout              = "merge-blackout"
	SlotField                      = "field"
	SlotFragmentRoot               = "fragment-root"
	SlotFragmentParent             = "fragment-parent"
	SlotPathNamespace              = "path-namespace"
	SlotElementWordLexicon         = "element-word-lexicon"
	SlotAttributeWordLexicon       = "element-attribute-word-lexicon"
	SlotElementWordQueryThrough    = "element-word-query-through"
	SlotPhraseThrough              = "phrase-through"
	SlotPhraseAround               = "phrase-around"
	SlotDefaultRuleset             = "default-ruleset"
)

// Index is implemented by the nine range and geospatial index kinds.  The
// index family is discriminated by slot name alone: each kind has its own
// wire slot, so no record inspection is needed on decode.
type Index interface {
	Entity
	isIndex()
}

// ScheduledBackup is implemented by the six recurrence kinds sharing the
// database-backup slot, discriminated by the backup-type tag.
type ScheduledBackup interface {
	Entity
	BackupType() string
	BackupID() int
}

// MergeBlackout is implemented by the five blackout shapes sharing the
// merge-blackout slot.  No single tag disambiguates them; decode probes the
// blackout-type tag and then the shape of the nested period record.
type MergeBlackout interface {
	Entity
	BlackoutType() string
}

// Field is implemented by the three field shapes sharing the field slot.
// The field with the empty name is the word-query sentinel that carries the
// database's global word query settings.
type Field interface {
	Entity
	FieldName() string
}
