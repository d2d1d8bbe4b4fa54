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

// The single-shape entity families.  These slots need no discrimination:
// each holds exactly one record shape.

// FragmentRoot marks an element as the root of its own fragment.
type FragmentRoot struct {
	NamespaceURI string `json:"namespace-uri"`
	Localname    string `json:"localname" validate:"required"`
}

func NewFragmentRoot(namespaceURI, localname string) *FragmentRoot {
	return &FragmentRoot{NamespaceURI: namespaceURI, Localname: localname}
}

func (e *FragmentRoot) slotName() string { return SlotFragmentRoot }

// FragmentParent marks an element whose children become fragment roots.
type FragmentParent struct {
	NamespaceURI string `json:"namespace-uri"`
	Localname    string `json:"localname" validate:"required"`
}

func NewFragmentParent(namespaceURI, localname string) *FragmentParent {
	return &FragmentParent{NamespaceURI: namespaceURI, Localname: localname}
}

func (e *FragmentParent) slotName() string { return SlotFragmentParent }

// PathNamespace binds a prefix usable in path expressions to a namespace.
type PathNamespace struct {
	Prefix       string `json:"prefix" validate:"required"`
	NamespaceURI string `json:"namespace-uri" validate:"required"`
}

func NewPathNamespace(prefix, namespaceURI string) *PathNamespace {
	return &PathNamespace{Prefix: prefix, NamespaceURI: namespaceURI}
}

func (e *PathNamespace) slotName() string { return SlotPathNamespace }

// ElementWordLexicon enables a word lexicon over an element's content.
type ElementWordLexicon struct {
	NamespaceURI string `json:"namespace-uri"`
	Localname    string `json:"localname" validate:"required"`
	Collation    string `json:"collation"`
}

func NewElementWordLexicon(namespaceURI, localname, collation string) *ElementWordLexicon {
	return &ElementWordLexicon{NamespaceURI: namespaceURI, Localname: localname, Collation: collation}
}

func (e *ElementWordLexicon) slotName() string { return SlotElementWordLexicon }

// AttributeWordLexicon enables a word lexicon over an attribute's content.
type AttributeWordLexicon struct {
	ParentNamespaceURI string `json:"parent-namespace-uri"`
	ParentLocalname    string `json:"parent-localname" validate:"required"`
	NamespaceURI       string `json:"namespace-uri"`
	Localname          string `json:"localname" validate:"required"`
	Collation          string `json:"collation"`
}

func NewAttributeWordLexicon(parentNamespaceURI, parentLocalname,
	namespaceURI, localname, collation string) *AttributeWordLexicon {
	return &AttributeWordLexicon{
		ParentNamespaceURI: parentNamespaceURI,
		ParentLocalname:    parentLocalname,
		NamespaceURI:       namespaceURI,
		Localname:          localname,
		Collation:          collation,
	}
}

func (e *AttributeWordLexicon) slotName() string { return SlotAttributeWordLexicon }

// ElementWordQueryThrough lets word queries see through the named element.
type ElementWordQueryThrough struct {
	NamespaceURI string `json:"namespace-uri"`
	Localname    string `json:"localname" validate:"required"`
}

func NewElementWordQueryThrough(namespaceURI, localname string) *ElementWordQueryThrough {
	return &ElementWordQueryThrough{NamespaceURI: namespaceURI, Localname: localname}
}

func (e *ElementWordQueryThrough) slotName() string { return SlotElementWordQueryThrough }

// PhraseThrough lets phrases match through the named element.
type PhraseThrough struct {
	NamespaceURI string `json:"namespace-uri"`
	Localname    string `json:"localname" validate:"required"`
}

func NewPhraseThrough(namespaceURI, localname string) *PhraseThrough {
	return &PhraseThrough{NamespaceURI: namespaceURI, Localname: localname}
}

func (e *PhraseThrough) slotName() string { return SlotPhraseThrough }

// PhraseAround stops phrases from matching around the named element.
type PhraseAround struct {
	NamespaceURI string `json:"namespace-uri"`
	Localname    string `json:"localname" validate:"required"`
}

func NewPhraseAround(namespaceURI, localname string) *PhraseAround {
	return &PhraseAround{NamespaceURI: namespaceURI, Localname: localname}
}

func (e *PhraseAround) slotName() string { return SlotPhraseAround }

// RuleSet names an inference ruleset applied by default to queries.
type RuleSet struct {
	Location string `json:"location" validate:"required"`
}

func NewRuleSet(location string) *RuleSet {
	return &RuleSet{Location: location}
}

func (e *RuleSet) slotName() string { return SlotDefaultRuleset }

// Required wire fields per single-shape slot.
var simpleRequiredFields = map[string][]string{
	SlotFragmentRoot:            {"namespace-uri", "localname"},
	SlotFragmentParent:          {"namespace-uri", "localname"},
	SlotPathNamespace:           {"prefix", "namespace-uri"},
	SlotElementWordLexicon:      {"namespace-uri", "localname", "collation"},
	SlotAttributeWordLexicon:    {"parent-namespace-uri", "parent-localname", "namespace-uri", "localname", "collation"},
	SlotElementWordQueryThrough: {"namespace-uri", "localname"},
	SlotPhraseThrough:           {"namespace-uri", "localname"},
	SlotPhraseAround:            {"namespace-uri", "localname"},
	SlotDefaultRuleset:          {"location"},
}
