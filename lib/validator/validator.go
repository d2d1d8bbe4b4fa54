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

// Package validator wraps the struct validator used across the model types
// and registers the field validators for management API value domains.
package validator

import (
	"reflect"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
	validator "gopkg.in/go-playground/validator.v9"

	"github.com/marklogic-community/marklogic-go/lib/errors"
)

var validate *validator.Validate

var (
	entityNameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)
	timeOfDayRegex  = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]:[0-5][0-9]$`)
	isoDateRegex    = regexp.MustCompile(`^[0-9]{4}-(0[1-9]|1[0-2])-(0[1-9]|[12][0-9]|3[01])$`)
	durationRegex   = regexp.MustCompile(`^-?P([0-9]+Y)?([0-9]+M)?([0-9]+D)?(T([0-9]+H)?([0-9]+M)?([0-9]+(\.[0-9]+)?S)?)?$`)
	languageRegex   = regexp.MustCompile(`^[a-z]{2,3}$`)
)

// Enumerated value domains accepted by the server.
var (
	scalarTypes = tokenSet("int", "unsignedInt", "long", "unsignedLong",
		"float", "double", "decimal", "dateTime", "time", "date",
		"gYearMonth", "gYear", "gMonth", "gDay", "yearMonthDuration",
		"dayTimeDuration", "string", "anyURI")
	invalidValuesActions = tokenSet("reject", "ignore")
	coordinateSystems    = tokenSet("wgs84", "raw")
	pointFormats         = tokenSet("point", "long-lat-point")
	dayNames             = tokenSet("monday", "tuesday", "wednesday",
		"thursday", "friday", "saturday", "sunday")
	mergePriorities     = tokenSet("lower", "normal")
	stemmedSearchModes  = tokenSet("off", "basic", "advanced", "decompounding")
	journalingModes     = tokenSet("strict", "fast", "off")
	lockingModes        = tokenSet("strict", "fast", "off")
	directoryCreations  = tokenSet("manual", "automatic", "manual-enforced")
	rangeIndexOptimizes = tokenSet("facet-time", "memory-size")
	automaticOrNone     = tokenSet("automatic", "none")
)

func init() {
	validate = validator.New()

	registerFieldValidator("entityName", regexValidator(entityNameRegex))
	registerFieldValidator("timeOfDay", regexValidator(timeOfDayRegex))
	registerFieldValidator("isoDate", regexValidator(isoDateRegex))
	registerFieldValidator("language", regexValidator(languageRegex))
	registerFieldValidator("xsdDuration", regexValidator(durationRegex))

	registerFieldValidator("scalarType", enumValidator(scalarTypes))
	registerFieldValidator("invalidValues", enumValidator(invalidValuesActions))
	registerFieldValidator("coordinateSystem", enumValidator(coordinateSystems))
	registerFieldValidator("pointFormat", enumValidator(pointFormats))
	registerFieldValidator("dayName", enumValidator(dayNames))
	registerFieldValidator("mergePriority", enumValidator(mergePriorities))
	registerFieldValidator("stemmedSearches", enumValidator(stemmedSearchModes))
	registerFieldValidator("journaling", enumValidator(journalingModes))
	registerFieldValidator("locking", enumValidator(lockingModes))
	registerFieldValidator("directoryCreation", enumValidator(directoryCreations))
	registerFieldValidator("rangeIndexOptimize", enumValidator(rangeIndexOptimizes))
	registerFieldValidator("indexDetection", enumValidator(automaticOrNone))

	// JSON tags give the wire name in validation failures.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
}

func tokenSet(tokens ...string) map[string]bool {
	s := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		s[t] = true
	}
	return s
}

func registerFieldValidator(key string, fn validator.Func) {
	if err := validate.RegisterValidation(key, fn); err != nil {
		log.WithError(err).Panicf("Failed to register validator: %s", key)
	}
}

func regexValidator(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		log.Debugf("Validate %s: %s", fl.FieldName(), s)
		return re.MatchString(s)
	}
}

func enumValidator(allowed map[string]bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		log.Debugf("Validate %s: %s", fl.FieldName(), s)
		return allowed[s]
	}
}

// Validate checks a struct value's validation tags and converts failures to
// an ErrorValidation naming every failed field by its wire name.
func Validate(current interface{}) error {
	err := validate.Struct(current)
	if err == nil {
		return nil
	}

	verr := errors.ErrorValidation{}
	for _, f := range err.(validator.ValidationErrors) {
		verr.ErroredFields = append(verr.ErroredFields,
			errors.ErroredField{
				Name:   f.Field(),
				Value:  f.Value(),
				Reason: "failed to validate field against rule: " + f.Tag(),
			})
	}
	return verr
}

// Var checks a single value against a validation tag, reporting a failure
// as an ErrorInvalidValue for the named option.
func Var(option string, value interface{}, tag string) error {
	if err := validate.Var(value, tag); err != nil {
		return errors.ErrorInvalidValue{
			Option: option,
			Value:  value,
			Reason: "failed to validate value against rule: " + tag,
		}
	}
	return nil
}
