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

var _ = Describe("Property list slots", func() {
	var db *database.Database

	BeforeEach(func() {
		db = database.New("Documents")
	})

	newIndex := func(localname string) *database.ElementRangeIndex {
		return database.NewElementRangeIndex("string", "", localname, "", false, "reject")
	}

	It("should keep slot order as entities are added", func() {
		for _, name := range []string{"one", "two", "three"} {
			_, err := db.AddIndex(newIndex(name))
			Expect(err).NotTo(HaveOccurred())
		}
		indexes := db.ElementRangeIndexes()
		Expect(indexes).To(HaveLen(3))
		Expect(indexes[0].Localname).To(Equal("one"))
		Expect(indexes[1].Localname).To(Equal("two"))
		Expect(indexes[2].Localname).To(Equal("three"))
	})

	It("should reject an entity of the wrong family with a type mismatch", func() {
		backup := database.NewDailyBackup("/backups", 1, "01:00:00")
		_, err := db.AddToPropertyList(database.SlotElementRangeIndex, backup)
		Expect(err).To(BeAssignableToTypeOf(errors.ErrorTypeMismatch{}))
		Expect(db.ElementRangeIndexes()).To(BeEmpty())

		// The slot name on the error identifies the offended slot.
		mismatch := err.(errors.ErrorTypeMismatch)
		Expect(mismatch.Slot).To(Equal(database.SlotElementRangeIndex))
	})

	It("should reject a nil entity with a type mismatch", func() {
		_, err := db.AddToPropertyList(database.SlotDatabaseBackup, nil)
		Expect(err).To(BeAssignableToTypeOf(errors.ErrorTypeMismatch{}))
		Expect(err.(errors.ErrorTypeMismatch).Actual).To(Equal("nil"))
		Expect(db.ScheduledBackups()).To(BeEmpty())

		_, err = db.SetPropertyList(database.SlotDatabaseBackup, []database.Entity{nil})
		Expect(err).To(BeAssignableToTypeOf(errors.ErrorTypeMismatch{}))
		Expect(db.PropertyList(database.SlotDatabaseBackup)).To(BeNil())

		// Removing nil can never match anything; it is a no-op like any
		// other absent entity.
		_, err = db.AddIndex(newIndex("kept"))
		Expect(err).NotTo(HaveOccurred())
		db.RemoveFromPropertyList(database.SlotElementRangeIndex, nil)
		Expect(db.ElementRangeIndexes()).To(HaveLen(1))
	})

	It("should reject an unknown slot name", func() {
		_, err := db.AddToPropertyList("no-such-slot", newIndex("x"))
		Expect(err).To(HaveOccurred())
		Expect(db.PropertyList("no-such-slot")).To(BeNil())
	})

	It("should reject a second backup with the same id", func() {
		first := database.NewDailyBackup("/backups/a", 1, "01:00:00")
		first.ID = 7
		second := database.NewWeeklyBackup("/backups/b", 1, []string{"monday"}, "02:00:00")
		second.ID = 7

		_, err := db.AddScheduledBackup(first)
		Expect(err).NotTo(HaveOccurred())
		_, err = db.AddScheduledBackup(second)
		Expect(err).To(BeAssignableToTypeOf(errors.ErrorDuplicateKey{}))
		Expect(db.ScheduledBackups()).To(HaveLen(1))
	})

	It("should allow multiple unsaved backups with no id", func() {
		_, err := db.AddScheduledBackup(database.NewDailyBackup("/backups/a", 1, "01:00:00"))
		Expect(err).NotTo(HaveOccurred())
		_, err = db.AddScheduledBackup(database.NewDailyBackup("/backups/b", 1, "02:00:00"))
		Expect(err).NotTo(HaveOccurred())
		Expect(db.ScheduledBackups()).To(HaveLen(2))
	})

	It("should leave the slot untouched when a set fails part way", func() {
		_, err := db.AddIndex(newIndex("original"))
		Expect(err).NotTo(HaveOccurred())

		_, err = db.SetPropertyList(database.SlotElementRangeIndex, []database.Entity{
			newIndex("replacement"),
			database.NewDailyBackup("/backups", 1, "01:00:00"),
		})
		Expect(err).To(BeAssignableToTypeOf(errors.ErrorTypeMismatch{}))

		indexes := db.ElementRangeIndexes()
		Expect(indexes).To(HaveLen(1))
		Expect(indexes[0].Localname).To(Equal("original"))
	})

	It("should treat removal of an absent entity as a no-op", func() {
		_, err := db.AddIndex(newIndex("present"))
		Expect(err).NotTo(HaveOccurred())

		db.RemoveIndex(newIndex("absent"))
		Expect(db.ElementRangeIndexes()).To(HaveLen(1))
	})

	It("should remove only the first matching entity", func() {
		_, err := db.AddIndex(newIndex("dup"))
		Expect(err).NotTo(HaveOccurred())
		_, err = db.AddIndex(newIndex("dup"))
		Expect(err).NotTo(HaveOccurred())

		db.RemoveIndex(newIndex("dup"))
		Expect(db.ElementRangeIndexes()).To(HaveLen(1))
	})

	It("should distinguish a never-populated slot from an emptied one", func() {
		Expect(db.PropertyList(database.SlotElementRangeIndex)).To(BeNil())

		_, err := db.SetPropertyList(database.SlotElementRangeIndex, []database.Entity{})
		Expect(err).NotTo(HaveOccurred())
		Expect(db.PropertyList(database.SlotElementRangeIndex)).NotTo(BeNil())
		Expect(db.PropertyList(database.SlotElementRangeIndex)).To(BeEmpty())
	})

	It("should reject a second field with the same name", func() {
		_, err := db.AddField(database.NewRootField("titles", false))
		Expect(err).NotTo(HaveOccurred())
		_, err = db.AddField(database.NewPathField("titles", database.NewFieldPath("/doc/title", 1)))
		Expect(err).To(BeAssignableToTypeOf(errors.ErrorDuplicateKey{}))
		Expect(db.Fields()).To(HaveLen(1))
	})

	It("should key path namespaces by prefix", func() {
		_, err := db.AddPathNamespace(database.NewPathNamespace("ex", "http://example.com/a"))
		Expect(err).NotTo(HaveOccurred())
		_, err = db.AddPathNamespace(database.NewPathNamespace("ex", "http://example.com/b"))
		Expect(err).To(BeAssignableToTypeOf(errors.ErrorDuplicateKey{}))
	})
})
