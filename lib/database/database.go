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

// Package database models a MarkLogic database configuration as exchanged
// with the management API.  A Database is a plain mutable value: property
// lists and scalar options are mutated through typed operations, and the
// whole configuration marshals to (and unmarshals from) the wire document
// accepted by the /manage/v2/databases endpoints.  It provides no internal
// locking; callers needing concurrent access must serialize externally.
package database

import (
	"encoding/json"

	"github.com/marklogic-community/marklogic-go/lib/validator"
)

// Options is the scalar option surface of a database configuration.  Keys
// not modeled here are retained by the Database as opaque passthrough.
type Options struct {
	DatabaseName     string   `json:"database-name,omitempty" validate:"omitempty,entityName"`
	Enabled          *bool    `json:"enabled,omitempty"`
	Language         string   `json:"language,omitempty" validate:"omitempty,language"`
	SecurityDatabase string   `json:"security-database,omitempty" validate:"omitempty,entityName"`
	SchemaDatabase   string   `json:"schema-database,omitempty" validate:"omitempty,entityName"`
	TriggersDatabase string   `json:"triggers-database,omitempty" validate:"omitempty,entityName"`
	Forests          []string `json:"forest,omitempty" validate:"omitempty,dive,entityName"`

	StemmedSearches                string `json:"stemmed-searches,omitempty" validate:"omitempty,stemmedSearches"`
	WordSearches                   *bool  `json:"word-searches,omitempty"`
	WordPositions                  *bool  `json:"word-positions,omitempty"`
	FastPhraseSearches             *bool  `json:"fast-phrase-searches,omitempty"`
	FastReverseSearches            *bool  `json:"fast-reverse-searches,omitempty"`
	FastCaseSensitiveSearches      *bool  `json:"fast-case-sensitive-searches,omitempty"`
	FastDiacriticSensitiveSearches *bool  `json:"fast-diacritic-sensitive-searches,omitempty"`
	FastElementWordSearches        *bool  `json:"fast-element-word-searches,omitempty"`
	ElementWordPositions           *bool  `json:"element-word-positions,omitempty"`
	FastElementPhraseSearches      *bool  `json:"fast-element-phrase-searches,omitempty"`
	ElementValuePositions          *bool  `json:"element-value-positions,omitempty"`
	AttributeValuePositions        *bool  `json:"attribute-value-positions,omitempty"`
	FieldValueSearches             *bool  `json:"field-value-searches,omitempty"`
	FieldValuePositions            *bool  `json:"field-value-positions,omitempty"`
	TripleIndex                    *bool  `json:"triple-index,omitempty"`
	TriplePositions                *bool  `json:"triple-positions,omitempty"`
	CollectionLexicon              *bool  `json:"collection-lexicon,omitempty"`
	URILexicon                     *bool  `json:"uri-lexicon,omitempty"`

	DirectoryCreation             string `json:"directory-creation,omitempty" validate:"omitempty,directoryCreation"`
	MaintainLastModified          *bool  `json:"maintain-last-modified,omitempty"`
	MaintainDirectoryLastModified *bool  `json:"maintain-directory-last-modified,omitempty"`
	InheritPermissions            *bool  `json:"inherit-permissions,omitempty"`
	InheritCollections            *bool  `json:"inherit-collections,omitempty"`
	InheritQuality                *bool  `json:"inherit-quality,omitempty"`

	InMemoryLimit            *int `json:"in-memory-limit,omitempty" validate:"omitempty,min=0"`
	InMemoryListSize         *int `json:"in-memory-list-size,omitempty" validate:"omitempty,min=0"`
	InMemoryRangeIndexSize   *int `json:"in-memory-range-index-size,omitempty" validate:"omitempty,min=0"`
	InMemoryReverseIndexSize *int `json:"in-memory-reverse-index-size,omitempty" validate:"omitempty,min=0"`
	InMemoryTripleIndexSize  *int `json:"in-memory-triple-index-size,omitempty" validate:"omitempty,min=0"`
	InMemoryTreeSize         *int `json:"in-memory-tree-size,omitempty" validate:"omitempty,min=0"`

	Journaling          string `json:"journaling,omitempty" validate:"omitempty,journaling"`
	JournalSize         *int   `json:"journal-size,omitempty" validate:"omitempty,min=0"`
	JournalCount        *int   `json:"journal-count,omitempty" validate:"omitempty,min=0"`
	PreallocateJournals *bool  `json:"preallocate-journals,omitempty"`
	Locking             string `json:"locking,omitempty" validate:"omitempty,locking"`

	MergePriority  string `json:"merge-priority,omitempty" validate:"omitempty,mergePriority"`
	MergeMaxSize   *int   `json:"merge-max-size,omitempty" validate:"omitempty,min=0"`
	MergeMinSize   *int   `json:"merge-min-size,omitempty" validate:"omitempty,min=0"`
	MergeMinRatio  *int   `json:"merge-min-ratio,omitempty" validate:"omitempty,min=1"`
	MergeTimestamp *int   `json:"merge-timestamp,omitempty"`

	ReindexerEnable    *bool  `json:"reindexer-enable,omitempty"`
	ReindexerThrottle  *int   `json:"reindexer-throttle,omitempty" validate:"omitempty,min=1,max=5"`
	ReindexerTimestamp *int   `json:"reindexer-timestamp,omitempty" validate:"omitempty,min=0"`
	RebalancerEnable   *bool  `json:"rebalancer-enable,omitempty"`
	RebalancerThrottle *int   `json:"rebalancer-throttle,omitempty" validate:"omitempty,min=1,max=5"`
	RangeIndexOptimize string `json:"range-index-optimize,omitempty" validate:"omitempty,rangeIndexOptimize"`
	IndexDetection     string `json:"index-detection,omitempty" validate:"omitempty,indexDetection"`
	ExpungeLocks       string `json:"expunge-locks,omitempty" validate:"omitempty,indexDetection"`
	TfNormalization    string `json:"tf-normalization,omitempty"`
	RetainUntilBackup  *bool  `json:"retain-until-backup,omitempty"`

	FormatCompatibility  string `json:"format-compatibility,omitempty"`
	LargeSizeThreshold   *int   `json:"large-size-threshold,omitempty" validate:"omitempty,min=0"`
	PositionsListMaxSize *int   `json:"positions-list-max-size,omitempty" validate:"omitempty,min=0"`
}

// Database is the client-side model of a database configuration.  The name
// is held separately from the database-name option so a rename can be sent
// to the server against the old name.
type Database struct {
	name  string
	etag  string
	props Options

	elementRangeIndexes       []*ElementRangeIndex
	attributeRangeIndexes     []*AttributeRangeIndex
	fieldRangeIndexes         []*FieldRangeIndex
	pathRangeIndexes          []*PathRangeIndex
	geoElementIndexes         []*GeospatialElementIndex
	geoPathIndexes            []*GeospatialPathIndex
	geoElementChildIndexes    []*GeospatialElementChildIndex
	geoElementPairIndexes     []*GeospatialElementPairIndex
	geoElementAttrPairIndexes []*GeospatialElementAttributePairIndex

	scheduledBackups []ScheduledBackup
	mergeBlackouts   []MergeBlackout
	fields           []Field

	// The word query settings are a singleton, held apart from the named
	// fields even though the wire stores them in the field slot as the
	// field with the empty name.
	wordQuery *WordQuery

	fragmentRoots            []*FragmentRoot
	fragmentParents          []*FragmentParent
	pathNamespaces           []*PathNamespace
	elementWordLexicons      []*ElementWordLexicon
	attributeWordLexicons    []*AttributeWordLexicon
	elementWordQueryThroughs []*ElementWordQueryThrough
	phraseThroughs           []*PhraseThrough
	phraseArounds            []*PhraseAround
	defaultRulesets          []*RuleSet

	// Options the model does not interpret are carried through untouched.
	opaque map[string]json.RawMessage
}

// New returns a database configuration with the server's usual defaults.
func New(name string) *Database {
	enabled := true
	return &Database{
		name: name,
		props: Options{
			DatabaseName:     name,
			Enabled:          &enabled,
			Language:         "en",
			SecurityDatabase: "Security",
			SchemaDatabase:   "Schemas",
			Forests:          []string{name + "-Forest-001"},
		},
		opaque: map[string]json.RawMessage{},
	}
}

// Name returns the name the database is known by on the server.  After a
// rename this differs from the database-name option until the update is
// pushed.
func (db *Database) Name() string { return db.name }

// Etag returns the entity tag captured when the configuration was last read
// from the server, or "" if it has never been read.
func (db *Database) Etag() string        { return db.etag }
func (db *Database) SetEtag(etag string) { db.etag = etag }

// Properties returns a copy of the scalar option surface.
func (db *Database) Properties() Options { return db.props }

// SetProperties replaces the scalar option surface after validating it.
func (db *Database) SetProperties(opts Options) (*Database, error) {
	if err := validator.Validate(opts); err != nil {
		return db, err
	}
	db.props = opts
	return db, nil
}

func (db *Database) DatabaseName() string { return db.props.DatabaseName }

func (db *Database) SetDatabaseName(name string) (*Database, error) {
	if err := validator.Var("database-name", name, "required,entityName"); err != nil {
		return db, err
	}
	db.props.DatabaseName = name
	return db, nil
}

func (db *Database) Enabled() *bool { return db.props.Enabled }

func (db *Database) SetEnabled(enabled bool) *Database {
	db.props.Enabled = &enabled
	return db
}

func (db *Database) Language() string { return db.props.Language }

func (db *Database) SetLanguage(language string) (*Database, error) {
	if err := validator.Var("language", language, "required,language"); err != nil {
		return db, err
	}
	db.props.Language = language
	return db, nil
}

func (db *Database) SecurityDatabase() string { return db.props.SecurityDatabase }

func (db *Database) SetSecurityDatabase(name string) (*Database, error) {
	if err := validator.Var("security-database", name, "required,entityName"); err != nil {
		return db, err
	}
	db.props.SecurityDatabase = name
	return db, nil
}

func (db *Database) SchemaDatabase() string { return db.props.SchemaDatabase }

func (db *Database) SetSchemaDatabase(name string) (*Database, error) {
	if err := validator.Var("schema-database", name, "required,entityName"); err != nil {
		return db, err
	}
	db.props.SchemaDatabase = name
	return db, nil
}

func (db *Database) TriggersDatabase() string { return db.props.TriggersDatabase }

func (db *Database) SetTriggersDatabase(name string) (*Database, error) {
	if err := validator.Var("triggers-database", name, "required,entityName"); err != nil {
		return db, err
	}
	db.props.TriggersDatabase = name
	return db, nil
}

func (db *Database) ForestNames() []string { return db.props.Forests }

func (db *Database) SetForestNames(forests []string) (*Database, error) {
	for _, f := range forests {
		if err := validator.Var("forest", f, "required,entityName"); err != nil {
			return db, err
		}
	}
	db.props.Forests = forests
	return db, nil
}

func (db *Database) AddForestName(forest string) (*Database, error) {
	if err := validator.Var("forest", forest, "required,entityName"); err != nil {
		return db, err
	}
	db.props.Forests = append(db.props.Forests, forest)
	return db, nil
}

// Validate checks the whole configuration: the scalar option surface and
// every attached entity.
func (db *Database) Validate() error {
	if err := validator.Validate(db.props); err != nil {
		return err
	}
	for slot := range slotRegistry {
		for _, e := range db.PropertyList(slot) {
			if err := validator.Validate(e); err != nil {
				return err
			}
		}
	}
	if db.wordQuery != nil {
		if err := validator.Validate(db.wordQuery); err != nil {
			return err
		}
	}
	return nil
}

// Index accessors.  AddIndex routes the definition to the slot matching its
// concrete kind; the index family is the one family discriminated purely by
// slot name.

func (db *Database) ElementRangeIndexes() []*ElementRangeIndex     { return db.elementRangeIndexes }
func (db *Database) AttributeRangeIndexes() []*AttributeRangeIndex { return db.attributeRangeIndexes }
func (db *Database) FieldRangeIndexes() []*FieldRangeIndex         { return db.fieldRangeIndexes }
func (db *Database) PathRangeIndexes() []*PathRangeIndex           { return db.pathRangeIndexes }
func (db *Database) GeospatialElementIndexes() []*GeospatialElementIndex {
	return db.geoElementIndexes
}
func (db *Database) GeospatialPathIndexes() []*GeospatialPathIndex { return db.geoPathIndexes }
func (db *Database) GeospatialElementChildIndexes() []*GeospatialElementChildIndex {
	return db.geoElementChildIndexes
}
func (db *Database) GeospatialElementPairIndexes() []*GeospatialElementPairIndex {
	return db.geoElementPairIndexes
}
func (db *Database) GeospatialElementAttributePairIndexes() []*GeospatialElementAttributePairIndex {
	return db.geoElementAttrPairIndexes
}

func (db *Database) AddIndex(index Index) (*Database, error) {
	return db.AddToPropertyList(index.slotName(), index)
}

func (db *Database) RemoveIndex(index Index) *Database {
	return db.RemoveFromPropertyList(index.slotName(), index)
}

// Scheduled backup accessors.

func (db *Database) ScheduledBackups() []ScheduledBackup { return db.scheduledBackups }

func (db *Database) AddScheduledBackup(backup ScheduledBackup) (*Database, error) {
	return db.AddToPropertyList(SlotDatabaseBackup, backup)
}

func (db *Database) SetScheduledBackups(backups []ScheduledBackup) (*Database, error) {
	return db.SetPropertyList(SlotDatabaseBackup, entities(backups))
}

func (db *Database) RemoveScheduledBackup(backup ScheduledBackup) *Database {
	return db.RemoveFromPropertyList(SlotDatabaseBackup, backup)
}

// Merge blackout accessors.

func (db *Database) MergeBlackouts() []MergeBlackout { return db.mergeBlackouts }

func (db *Database) AddMergeBlackout(blackout MergeBlackout) (*Database, error) {
	return db.AddToPropertyList(SlotMergeBlackout, blackout)
}

func (db *Database) SetMergeBlackouts(blackouts []MergeBlackout) (*Database, error) {
	return db.SetPropertyList(SlotMergeBlackout, entities(blackouts))
}

func (db *Database) RemoveMergeBlackout(blackout MergeBlackout) *Database {
	return db.RemoveFromPropertyList(SlotMergeBlackout, blackout)
}

// Field accessors.  The field list holds named fields only; the word query
// settings are managed through WordQuery/SetWordQuery.

func (db *Database) Fields() []Field { return db.fields }

func (db *Database) AddField(field Field) (*Database, error) {
	return db.AddToPropertyList(SlotField, field)
}

func (db *Database) SetFields(fields []Field) (*Database, error) {
	return db.SetPropertyList(SlotField, entities(fields))
}

func (db *Database) RemoveField(field Field) *Database {
	return db.RemoveFromPropertyList(SlotField, field)
}

// WordQuery returns the database's word query settings if they have been
// set, otherwise fresh defaults.
func (db *Database) WordQuery() *WordQuery {
	if db.wordQuery != nil {
		return db.wordQuery
	}
	return NewWordQuery(false)
}

// SetWordQuery replaces the word query settings.  There is exactly one set
// per document; a second call wins over the first.  On marshal the settings
// are emitted at the head of the field array regardless of where the server
// placed them, so the named fields keep their relative order but the
// empty-named record's position is not preserved.
func (db *Database) SetWordQuery(wq *WordQuery) *Database {
	db.wordQuery = wq
	return db
}

// Single-shape family accessors.

func (db *Database) FragmentRoots() []*FragmentRoot { return db.fragmentRoots }

func (db *Database) AddFragmentRoot(root *FragmentRoot) (*Database, error) {
	return db.AddToPropertyList(SlotFragmentRoot, root)
}

func (db *Database) RemoveFragmentRoot(root *FragmentRoot) *Database {
	return db.RemoveFromPropertyList(SlotFragmentRoot, root)
}

func (db *Database) FragmentParents() []*FragmentParent { return db.fragmentParents }

func (db *Database) AddFragmentParent(parent *FragmentParent) (*Database, error) {
	return db.AddToPropertyList(SlotFragmentParent, parent)
}

func (db *Database) RemoveFragmentParent(parent *FragmentParent) *Database {
	return db.RemoveFromPropertyList(SlotFragmentParent, parent)
}

func (db *Database) PathNamespaces() []*PathNamespace { return db.pathNamespaces }

func (db *Database) AddPathNamespace(ns *PathNamespace) (*Database, error) {
	return db.AddToPropertyList(SlotPathNamespace, ns)
}

func (db *Database) RemovePathNamespace(ns *PathNamespace) *Database {
	return db.RemoveFromPropertyList(SlotPathNamespace, ns)
}

func (db *Database) ElementWordLexicons() []*ElementWordLexicon { return db.elementWordLexicons }

func (db *Database) AddElementWordLexicon(lexicon *ElementWordLexicon) (*Database, error) {
	return db.AddToPropertyList(SlotElementWordLexicon, lexicon)
}

func (db *Database) RemoveElementWordLexicon(lexicon *ElementWordLexicon) *Database {
	return db.RemoveFromPropertyList(SlotElementWordLexicon, lexicon)
}

func (db *Database) AttributeWordLexicons() []*AttributeWordLexicon { return db.attributeWordLexicons }

func (db *Database) AddAttributeWordLexicon(lexicon *AttributeWordLexicon) (*Database, error) {
	return db.AddToPropertyList(SlotAttributeWordLexicon, lexicon)
}

func (db *Database) RemoveAttributeWordLexicon(lexicon *AttributeWordLexicon) *Database {
	return db.RemoveFromPropertyList(SlotAttributeWordLexicon, lexicon)
}

func (db *Database) ElementWordQueryThroughs() []*ElementWordQueryThrough {
	return db.elementWordQueryThroughs
}

func (db *Database) AddElementWordQueryThrough(through *ElementWordQueryThrough) (*Database, error) {
	return db.AddToPropertyList(SlotElementWordQueryThrough, through)
}

func (db *Database) RemoveElementWordQueryThrough(through *ElementWordQueryThrough) *Database {
	return db.RemoveFromPropertyList(SlotElementWordQueryThrough, through)
}

func (db *Database) PhraseThroughs() []*PhraseThrough { return db.phraseThroughs }

func (db *Database) AddPhraseThrough(through *PhraseThrough) (*Database, error) {
	return db.AddToPropertyList(SlotPhraseThrough, through)
}

func (db *Database) RemovePhraseThrough(through *PhraseThrough) *Database {
	return db.RemoveFromPropertyList(SlotPhraseThrough, through)
}

func (db *Database) PhraseArounds() []*PhraseAround { return db.phraseArounds }

func (db *Database) AddPhraseAround(around *PhraseAround) (*Database, error) {
	return db.AddToPropertyList(SlotPhraseAround, around)
}

func (db *Database) RemovePhraseAround(around *PhraseAround) *Database {
	return db.RemoveFromPropertyList(SlotPhraseAround, around)
}

func (db *Database) DefaultRulesets() []*RuleSet { return db.defaultRulesets }

func (db *Database) AddDefaultRuleset(ruleset *RuleSet) (*Database, error) {
	return db.AddToPropertyList(SlotDefaultRuleset, ruleset)
}

func (db *Database) RemoveDefaultRuleset(ruleset *RuleSet) *Database {
	return db.RemoveFromPropertyList(SlotDefaultRuleset, ruleset)
}

func entities[T Entity](items []T) []Entity {
	if items == nil {
		return nil
	}
	out := make([]Entity, len(items))
	for i, v := range items {
		out[i] = v
	}
	return out
}
