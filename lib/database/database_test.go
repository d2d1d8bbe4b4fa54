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

package database_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/marklogic-community/marklogic-go/lib/database"
	"github.com/marklogic-community/marklogic-go/lib/errors"
)

var _ = Describe("Database configuration", func() {
	It("should apply the server defaults on New", func() {
		db := database.New("Documents")
		Expect(db.DatabaseName()).To(Equal("Documents"))
		Expect(*db.Enabled()).To(BeTrue())
		Expect(db.Language()).To(Equal("en"))
		Expect(db.SecurityDatabase()).To(Equal("Security"))
		Expect(db.SchemaDatabase()).To(Equal("Schemas"))
		Expect(db.ForestNames()).To(ConsistOf("Documents-Forest-001"))
	})

	It("should reject invalid option values and keep the old value", func() {
		db := database.New("Documents")
		_, err := db.SetLanguage("not-a-language")
		Expect(err).To(BeAssignableToTypeOf(errors.ErrorInvalidValue{}))
		Expect(db.Language()).To(Equal("en"))

		_, err = db.SetSecurityDatabase("")
		Expect(err).To(HaveOccurred())
		Expect(db.SecurityDatabase()).To(Equal("Security"))
	})

	It("should validate attached entities as part of Validate", func() {
		db := database.New("Documents")
		bad := database.NewElementRangeIndex("imaginary", "", "title", "", false, "reject")
		_, err := db.AddIndex(bad)
		Expect(err).NotTo(HaveOccurred())
		Expect(db.Validate()).To(BeAssignableToTypeOf(errors.ErrorValidation{}))
	})

	Describe("word query settings", func() {
		It("should reject adding a field with an empty name", func() {
			db := database.New("Documents")
			_, err := db.AddField(database.NewRootField("", false))
			Expect(err).To(BeAssignableToTypeOf(errors.ErrorInvalidValue{}))
		})

		It("should return defaults when no word query has been set", func() {
			db := database.New("Documents")
			Expect(bool(db.WordQuery().IncludeRoot)).To(BeFalse())
		})

		It("should hold at most one word query, the last one set", func() {
			db := database.New("Documents")
			db.SetWordQuery(database.NewWordQuery(false))
			db.SetWordQuery(database.NewWordQuery(true))
			Expect(bool(db.WordQuery().IncludeRoot)).To(BeTrue())

			// The sentinel never shows up among the named fields.
			Expect(db.Fields()).To(BeEmpty())
		})

		It("should keep named fields and the word query independent", func() {
			db := database.New("Documents")
			_, err := db.AddField(database.NewRootField("titles", true))
			Expect(err).NotTo(HaveOccurred())
			db.SetWordQuery(database.NewWordQuery(true))

			Expect(db.Fields()).To(HaveLen(1))
			Expect(db.Fields()[0].FieldName()).To(Equal("titles"))
			Expect(bool(db.WordQuery().IncludeRoot)).To(BeTrue())
		})
	})
})
