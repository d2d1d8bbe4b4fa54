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

// ElementRangeIndex is a range index over an element value.
type ElementRangeIndex struct {
	ScalarType          string          `json:"scalar-type" validate:"required,scalarType"`
	NamespaceURI        string          `json:"namespace-uri"`
	Localname           string          `json:"localname" validate:"required"`
	Collation           string          `json:"collation"`
	RangeValuePositions boolstring.Bool `json:"range-value-positions"`
	InvalidValues       string          `json:"invalid-values" validate:"required,invalidValues"`
}

func NewElementRangeIndex(scalarType, namespaceURI, localname, collation string,
	rangeValuePositions bool, invalidValues string) *ElementRangeIndex {
	return &ElementRangeIndex{
		ScalarType:          scalarType,
		NamespaceURI:        namespaceURI,
		Localname:           localname,
		Collation:           collation,
		RangeValuePositions: boolstring.Bool(rangeValuePositions),
		InvalidValues:       invalidValues,
	}
}

func (i *ElementRangeIndex) slotName() string { return SlotElementRangeIndex }
func (i *ElementRangeIndex) isIndex()         {}

// AttributeRangeIndex is a range index over an attribute of a parent
// element.
type AttributeRangeIndex struct {
	ScalarType          string          `json:"scalar-type" validate:"required,scalarType"`
	ParentNamespaceURI  string          `json:"parent-namespace-uri"`
	ParentLocalname     string          `json:"parent-localname" validate:"required"`
	NamespaceURI        string          `json:"namespace-uri"`
	Localname           string          `json:"localname" validate:"required"`
	Collation           string          `json:"collation"`
	RangeValuePositions boolstring.Bool `json:"range-value-positions"`
	InvalidValues       string          `json:"invalid-values" validate:"required,invalidValues"`
}

func NewAttributeRangeIndex(scalarType, parentNamespaceURI, parentLocalname,
	namespaceURI, localname, collation string,
	rangeValuePositions bool, invalidValues string) *AttributeRangeIndex {
	return &AttributeRangeIndex{
		ScalarType:          scalarType,
		ParentNamespaceURI:  parentNamespaceURI,
		ParentLocalname:     parentLocalname,
		NamespaceURI:        namespaceURI,
		Localname:           localname,
		Collation:           collation,
		RangeValuePositions: boolstring.Bool(rangeValuePositions),
		InvalidValues:       invalidValues,
	}
}

func (i *AttributeRangeIndex) slotName() string { return SlotAttributeRangeIndex }
func (i *AttributeRangeIndex) isIndex()         {}

// FieldRangeIndex is a range index over a named field.
type FieldRangeIndex struct {
	ScalarType          string          `json:"scalar-type" validate:"required,scalarType"`
	FieldName           string          `json:"field-name" validate:"required"`
	Collation           string          `json:"collation"`
	RangeValuePositions boolstring.Bool `json:"range-value-positions"`
	InvalidValues       string          `json:"invalid-values" validate:"required,invalidValues"`
}

func NewFieldRangeIndex(scalarType, fieldName, collation string,
	rangeValuePositions bool, invalidValues string) *FieldRangeIndex {
	return &FieldRangeIndex{
		ScalarType:          scalarType,
		FieldName:           fieldName,
		Collation:           collation,
		RangeValuePositions: boolstring.Bool(rangeValuePositions),
		InvalidValues:       invalidValues,
	}
}

func (i *FieldRangeIndex) slotName() string { return SlotFieldRangeIndex }
func (i *FieldRangeIndex) isIndex()         {}

// PathRangeIndex is a range index over an XPath expression.
type PathRangeIndex struct {
	ScalarType          string          `json:"scalar-type" validate:"required,scalarType"`
	PathExpression      string          `json:"path-expression" validate:"required"`
	Collation           string          `json:"collation"`
	RangeValuePositions boolstring.Bool `json:"range-value-positions"`
	InvalidValues       string          `json:"invalid-values" validate:"required,invalidValues"`
}

func NewPathRangeIndex(scalarType, pathExpression, collation string,
	rangeValuePositions bool, invalidValues string) *PathRangeIndex {
	return &PathRangeIndex{
		ScalarType:          scalarType,
		PathExpression:      pathExpression,
		Collation:           collation,
		RangeValuePositions: boolstring.Bool(rangeValuePositions),
		InvalidValues:       invalidValues,
	}
}

func (i *PathRangeIndex) slotName() string { return SlotPathRangeIndex }
func (i *PathRangeIndex) isIndex()         {}

// GeospatialElementIndex indexes point values held in a single element.
type GeospatialElementIndex struct {
	NamespaceURI        string          `json:"namespace-uri"`
	Localname           string          `json:"localname" validate:"required"`
	CoordinateSystem    string          `json:"coordinate-system" validate:"required,coordinateSystem"`
	PointFormat         string          `json:"point-format" validate:"required,pointFormat"`
	RangeValuePositions boolstring.Bool `json:"range-value-positions"`
	InvalidValues       string          `json:"invalid-values" validate:"required,invalidValues"`
}

func NewGeospatialElementIndex(namespaceURI, localname, coordinateSystem, pointFormat string,
	rangeValuePositions bool, invalidValues string) *GeospatialElementIndex {
	return &GeospatialElementIndex{
		NamespaceURI:        namespaceURI,
		Localname:           localname,
		CoordinateSystem:    coordinateSystem,
		PointFormat:         pointFormat,
		RangeValuePositions: boolstring.Bool(rangeValuePositions),
		InvalidValues:       invalidValues,
	}
}

func (i *GeospatialElementIndex) slotName() string { return SlotGeoElementIndex }
func (i *GeospatialElementIndex) isIndex()         {}

// GeospatialPathIndex indexes point values addressed by an XPath expression.
type GeospatialPathIndex struct {
	PathExpression      string          `json:"path-expression" validate:"required"`
	CoordinateSystem    string          `json:"coordinate-system" validate:"required,coordinateSystem"`
	PointFormat         string          `json:"point-format" validate:"required,pointFormat"`
	RangeValuePositions boolstring.Bool `json:"range-value-positions"`
	InvalidValues       string          `json:"invalid-values" validate:"required,invalidValues"`
}

func NewGeospatialPathIndex(pathExpression, coordinateSystem, pointFormat string,
	rangeValuePositions bool, invalidValues string) *GeospatialPathIndex {
	return &GeospatialPathIndex{
		PathExpression:      pathExpression,
		CoordinateSystem:    coordinateSystem,
		PointFormat:         pointFormat,
		RangeValuePositions: boolstring.Bool(rangeValuePositions),
		InvalidValues:       invalidValues,
	}
}

func (i *GeospatialPathIndex) slotName() string { return SlotGeoPathIndex }
func (i *GeospatialPathIndex) isIndex()         {}

// GeospatialElementChildIndex indexes point values in a child element of a
// parent element.
type GeospatialElementChildIndex struct {
	ParentNamespaceURI  string          `json:"parent-namespace-uri"`
	ParentLocalname     string          `json:"parent-localname" validate:"required"`
	NamespaceURI        string          `json:"namespace-uri"`
	Localname           string          `json:"localname" validate:"required"`
	CoordinateSystem    string          `json:"coordinate-system" validate:"required,coordinateSystem"`
	PointFormat         string          `json:"point-format" validate:"required,pointFormat"`
	RangeValuePositions boolstring.Bool `json:"range-value-positions"`
	InvalidValues       string          `json:"invalid-values" validate:"required,invalidValues"`
}

func NewGeospatialElementChildIndex(parentNamespaceURI, parentLocalname,
	namespaceURI, localname, coordinateSystem, pointFormat string,
	rangeValuePositions bool, invalidValues string) *GeospatialElementChildIndex {
	return &GeospatialElementChildIndex{
		ParentNamespaceURI:  parentNamespaceURI,
		ParentLocalname:     parentLocalname,
		NamespaceURI:        namespaceURI,
		Localname:           localname,
		CoordinateSystem:    coordinateSystem,
		PointFormat:         pointFormat,
		RangeValuePositions: boolstring.Bool(rangeValuePositions),
		InvalidValues:       invalidValues,
	}
}

func (i *GeospatialElementChildIndex) slotName() string { return SlotGeoElementChildIndex }
func (i *GeospatialElementChildIndex) isIndex()         {}

// GeospatialElementPairIndex indexes longitude/latitude pairs held in two
// child elements of a parent element.
type GeospatialElementPairIndex struct {
	ParentNamespaceURI    string          `json:"parent-namespace-uri"`
	ParentLocalname       string          `json:"parent-localname" validate:"required"`
	LongitudeNamespaceURI string          `json:"longitude-namespace-uri"`
	LongitudeLocalname    string          `json:"longitude-localname" validate:"required"`
	LatitudeNamespaceURI  string          `json:"latitude-namespace-uri"`
	LatitudeLocalname     string          `json:"latitude-localname" validate:"required"`
	CoordinateSystem      string          `json:"coordinate-system" validate:"required,coordinateSystem"`
	RangeValuePositions   boolstring.Bool `json:"range-value-positions"`
	InvalidValues         string          `json:"invalid-values" validate:"required,invalidValues"`
}

func NewGeospatialElementPairIndex(parentNamespaceURI, parentLocalname,
	longitudeNamespaceURI, longitudeLocalname,
	latitudeNamespaceURI, latitudeLocalname, coordinateSystem string,
	rangeValuePositions bool, invalidValues string) *GeospatialElementPairIndex {
	return &GeospatialElementPairIndex{
		ParentNamespaceURI:    parentNamespaceURI,
		ParentLocalname:       parentLocalname,
		LongitudeNamespaceURI: longitudeNamespaceURI,
		LongitudeLocalname:    longitudeLocalname,
		LatitudeNamespaceURI:  latitudeNamespaceURI,
		LatitudeLocalname:     latitudeLocalname,
		CoordinateSystem:      coordinateSystem,
		RangeValuePositions:   boolstring.Bool(rangeValuePositions),
		InvalidValues:         invalidValues,
	}
}

func (i *GeospatialElementPairIndex) slotName() string { return SlotGeoElementPairIndex }
func (i *GeospatialElementPairIndex) isIndex()         {}

// GeospatialElementAttributePairIndex indexes longitude/latitude pairs held
// in two attributes of a parent element.
type GeospatialElementAttributePairIndex struct {
	ParentNamespaceURI    string          `json:"parent-namespace-uri"`
	ParentLocalname       string          `json:"parent-localname" validate:"required"`
	LongitudeNamespaceURI string          `json:"longitude-namespace-uri"`
	LongitudeLocalname    string          `json:"longitude-localname" validate:"required"`
	LatitudeNamespaceURI  string          `json:"latitude-namespace-uri"`
	LatitudeLocalname     string          `json:"latitude-localname" validate:"required"`
	CoordinateSystem      string          `json:"coordinate-system" validate:"required,coordinateSystem"`
	RangeValuePositions   boolstring.Bool `json:"range-value-positions"`
	InvalidValues         string          `json:"invalid-values" validate:"required,invalidValues"`
}

func NewGeospatialElementAttributePairIndex(parentNamespaceURI, parentLocalname,
	longitudeNamespaceURI, longitudeLocalname,
	latitudeNamespaceURI, latitudeLocalname, coordinateSystem string,
	rangeValuePositions bool, invalidValues string) *GeospatialElementAttributePairIndex {
	return &GeospatialElementAttributePairIndex{
		ParentNamespaceURI:    parentNamespaceURI,
		ParentLocalname:       parentLocalname,
		LongitudeNamespaceURI: longitudeNamespaceURI,
		LongitudeLocalname:    longitudeLocalname,
		LatitudeNamespaceURI:  latitudeNamespaceURI,
		LatitudeLocalname:     latitudeLocalname,
		CoordinateSystem:      coordinateSystem,
		RangeValuePositions:   boolstring.Bool(rangeValuePositions),
		InvalidValues:         invalidValues,
	}
}

func (i *GeospatialElementAttributePairIndex) slotName() string { return SlotGeoElementAttrPairIndex }
func (i *GeospatialElementAttributePairIndex) isIndex()         {}

// Required wire fields per index slot.  The index family is discriminated
// by slot name, so decode is a straight required-field check followed by a
// struct decode.
var indexRequiredFields = map[string][]string{
	SlotElementRangeIndex: {"scalar-type", "namespace-uri", "localname", "collation",
		"range-value-positions", "invalid-values"},
	SlotAttributeRangeIndex: {"scalar-type", "parent-namespace-uri", "parent-localname",
		"namespace-uri", "localname", "collation", "range-value-positions", "invalid-values"},
	SlotFieldRangeIndex: {"scalar-type", "field-name", "collation",
		"range-value-positions", "invalid-values"},
	SlotPathRangeIndex: {"scalar-type", "path-expression", "collation",
		"range-value-positions", "invalid-values"},
	SlotGeoElementIndex: {"namespace-uri", "localname", "coordinate-system",
		"point-format", "range-value-positions", "invalid-values"},
	SlotGeoPathIndex: {"path-expression", "coordinate-system", "point-format",
		"range-value-positions", "invalid-values"},
	SlotGeoElementChildIndex: {"parent-namespace-uri", "parent-localname",
		"namespace-uri", "localname", "coordinate-system", "point-format",
		"range-value-positions", "invalid-values"},
	SlotGeoElementPairIndex: {"parent-namespace-uri", "parent-localname",
		"longitude-namespace-uri", "longitude-localname",
		"latitude-namespace-uri", "latitude-localname", "coordinate-system",
		"range-value-positions", "invalid-values"},
	SlotGeoElementAttrPairIndex: {"parent-namespace-uri", "parent-localname",
		"longitude-namespace-uri", "longitude-localname",
		"latitude-namespace-uri", "latitude-localname", "coordinate-system",
		"range-value-positions", "invalid-values"},
}

func decodeIndex[T Index](slot string, rec gjson.Result, out T) (T, error) {
	if err := requireFields(slot, rec, indexRequiredFields[slot]...); err != nil {
		return out, err
	}
	if err := decodeRecord(slot, rec, out); err != nil {
		return out, err
	}
	return out, nil
}
