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
	"fmt"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/marklogic-community/marklogic-go/lib/database"
	"github.com/marklogic-community/marklogic-go/lib/errors"
	"github.com/marklogic-community/marklogic-go/lib/testutils"
)

func unmarshalSlot(slot, record string) (*database.Database, error) {
	doc := fmt.Sprintf(`{"database-name": "Documents", %q: [%s]}`, slot, record)
	return database.Unmarshal([]byte(doc))
}

var _ = Describe("Scheduled backup decoding", func() {
	DescribeTable("resolving the backup-type tag",
		func(record string, expected database.ScheduledBackup) {
			db, err := unmarshalSlot(database.SlotDatabaseBackup, record)
			Expect(err).NotTo(HaveOccurred())
			backups := db.ScheduledBackups()
			Expect(backups).To(HaveLen(1))
			Expect(backups[0]).To(BeAssignableToTypeOf(expected))
		},
		Entry("minutely", `{
			"backup-type": "minutely", "backup-directory": "/b", "backup-period": 10,
			"max-backups": 0, "backup-security-database": false,
			"backup-schemas-database": false, "backup-triggers-database": false,
			"include-replicas": false, "journal-archiving": false,
			"journal-archive-path": "", "journal-archive-lag-limit": 15}`,
			&database.MinutelyBackup{}),
		Entry("weekly", `{
			"backup-type": "weekly", "backup-directory": "/b", "backup-period": 1,
			"backup-day": ["monday"], "backup-start-time": "01:00:00",
			"max-backups": 0, "backup-security-database": false,
			"backup-schemas-database": false, "backup-triggers-database": false,
			"include-replicas": false, "journal-archiving": false,
			"journal-archive-path": "", "journal-archive-lag-limit": 15}`,
			&database.WeeklyBackup{}),
		Entry("once", `{
			"backup-type": "once", "backup-directory": "/b",
			"backup-start-date": "2026-06-01", "backup-start-time": "01:00:00",
			"max-backups": 0, "backup-security-database": false,
			"backup-schemas-database": false, "backup-triggers-database": false,
			"include-replicas": false, "journal-archiving": false,
			"journal-archive-path": "", "journal-archive-lag-limit": 15}`,
			&database.OneTimeBackup{}),
	)

	It("should fail the whole unmarshal on an unknown backup-type tag", func() {
		_, err := unmarshalSlot(database.SlotDatabaseBackup, `{"backup-type": "fortnightly"}`)
		Expect(err).To(BeAssignableToTypeOf(errors.ErrorUnrecognizedVariant{}))
	})

	It("should name the missing field of a matched variant", func() {
		_, err := unmarshalSlot(database.SlotDatabaseBackup, `{
			"backup-type": "monthly", "backup-directory": "/b", "backup-period": 1,
			"backup-start-time": "01:00:00",
			"max-backups": 0, "backup-security-database": false,
			"backup-schemas-database": false, "backup-triggers-database": false,
			"include-replicas": false, "journal-archiving": false,
			"journal-archive-path": "", "journal-archive-lag-limit": 15}`)
		Expect(err).To(Equal(errors.ErrorMalformedRecord{
			Slot:  database.SlotDatabaseBackup,
			Field: "backup-month-day",
		}))
	})
})

var _ = Describe("Merge blackout decoding", func() {
	DescribeTable("resolving tag and period shape",
		func(fixture string, expected database.MergeBlackout) {
			db, err := unmarshalSlot(database.SlotMergeBlackout, testutils.BlackoutRecords[fixture])
			Expect(err).NotTo(HaveOccurred())
			blackouts := db.MergeBlackouts()
			Expect(blackouts).To(HaveLen(1))
			Expect(blackouts[0]).To(BeAssignableToTypeOf(expected))
		},
		Entry("recurring with no period is all-day",
			"recurring-all-day", &database.RecurringAllDayBlackout{}),
		Entry("recurring with a period duration",
			"recurring-duration", &database.RecurringDurationBlackout{}),
		Entry("recurring with a period end time",
			"recurring-start-end", &database.RecurringStartEndBlackout{}),
		Entry("one-time with a period duration",
			"one-time-duration", &database.OneTimeDurationBlackout{}),
		Entry("one-time with a period end time",
			"one-time-start-end", &database.OneTimeStartEndBlackout{}),
	)

	It("should prefer the duration shape when a period carries both duration and end time", func() {
		db, err := unmarshalSlot(database.SlotMergeBlackout, `{
			"blackout-type": "recurring", "merge-priority": "lower", "limit": 0,
			"day": ["monday"],
			"period": {"start-time": "01:00:00", "duration": "PT2H", "end-time": "03:00:00"}}`)
		Expect(err).NotTo(HaveOccurred())
		Expect(db.MergeBlackouts()[0]).To(BeAssignableToTypeOf(&database.RecurringDurationBlackout{}))
	})

	It("should treat an explicitly null period the same as an absent one", func() {
		db, err := unmarshalSlot(database.SlotMergeBlackout, `{
			"blackout-type": "recurring", "merge-priority": "lower", "limit": 0,
			"day": ["monday"]}`)
		Expect(err).NotTo(HaveOccurred())
		Expect(db.MergeBlackouts()[0]).To(BeAssignableToTypeOf(&database.RecurringAllDayBlackout{}))
	})

	It("should fail on a record matching no blackout shape", func() {
		_, err := unmarshalSlot(database.SlotMergeBlackout, `{
			"blackout-type": "once", "merge-priority": "lower", "limit": 0,
			"period": {"start-date": "2026-01-01"}}`)
		Expect(err).To(BeAssignableToTypeOf(errors.ErrorUnrecognizedVariant{}))
	})

	It("should name the missing field of a matched blackout shape", func() {
		_, err := unmarshalSlot(database.SlotMergeBlackout, `{
			"blackout-type": "recurring", "merge-priority": "lower", "limit": 0,
			"period": {"start-time": "01:00:00", "duration": "PT2H"}}`)
		Expect(err).To(Equal(errors.ErrorMalformedRecord{
			Slot:  database.SlotMergeBlackout,
			Field: "day",
		}))
	})
})

var _ = Describe("Field decoding", func() {
	It("should resolve a record with field paths to a path field", func() {
		db, err := unmarshalSlot(database.SlotField, `{
			"field-name": "summaries",
			"field-path": [{"path": "/doc/summary", "weight": 1.5}]}`)
		Expect(err).NotTo(HaveOccurred())
		fields := db.Fields()
		Expect(fields).To(HaveLen(1))
		pf := fields[0].(*database.PathField)
		Expect(pf.Paths).To(HaveLen(1))
		Expect(pf.Paths[0].Path).To(Equal("/doc/summary"))
	})

	It("should resolve the empty field name to the word query settings", func() {
		db, err := unmarshalSlot(database.SlotField, `{
			"field-name": "", "include-root": "true"}`)
		Expect(err).NotTo(HaveOccurred())
		Expect(db.Fields()).To(BeEmpty())
		Expect(bool(db.WordQuery().IncludeRoot)).To(BeTrue())
	})

	It("should resolve any other record to a root field", func() {
		db, err := unmarshalSlot(database.SlotField, `{
			"field-name": "titles", "include-root": "false"}`)
		Expect(err).NotTo(HaveOccurred())
		fields := db.Fields()
		Expect(fields).To(HaveLen(1))
		Expect(fields[0]).To(BeAssignableToTypeOf(&database.RootField{}))
	})

	It("should fail a field array carrying two empty-named records", func() {
		doc := fmt.Sprintf(`{"database-name": "Documents", %q: [
			{"field-name": "", "include-root": "true"},
			{"field-name": "", "include-root": "false"}]}`, database.SlotField)
		_, err := database.Unmarshal([]byte(doc))
		Expect(err).To(Equal(errors.ErrorDuplicateKey{Slot: database.SlotField, Key: ""}))
	})

	It("should fail a record with neither name nor paths", func() {
		_, err := unmarshalSlot(database.SlotField, `{"include-root": "false"}`)
		Expect(err).To(Equal(errors.ErrorMalformedRecord{
			Slot:  database.SlotField,
			Field: "field-name",
		}))
	})
})
