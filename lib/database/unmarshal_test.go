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
	"github.com/tidwall/gjson"

	"github.com/marklogic-community/marklogic-go/lib/database"
	"github.com/marklogic-community/marklogic-go/lib/testutils"
)

var _ = Describe("Configuration document codec", func() {
	It("should decode every kind of key in the reference document", func() {
		db, err := database.Unmarshal([]byte(testutils.ConfigDocument))
		Expect(err).NotTo(HaveOccurred())

		Expect(db.DatabaseName()).To(Equal("Documents"))
		Expect(db.Properties().StemmedSearches).To(Equal("basic"))
		Expect(*db.Properties().TripleIndex).To(BeFalse())

		Expect(db.ElementRangeIndexes()).To(HaveLen(1))
		Expect(db.ElementRangeIndexes()[0].Localname).To(Equal("title"))

		Expect(db.ScheduledBackups()).To(HaveLen(1))
		daily := db.ScheduledBackups()[0].(*database.DailyBackup)
		Expect(daily.BackupID()).To(Equal(42))
		Expect(daily.BackupStartTime).To(Equal("01:30:00"))

		Expect(db.MergeBlackouts()).To(HaveLen(1))
		Expect(db.MergeBlackouts()[0]).To(BeAssignableToTypeOf(&database.RecurringAllDayBlackout{}))

		Expect(db.Fields()).To(HaveLen(1))
		Expect(db.Fields()[0]).To(BeAssignableToTypeOf(&database.PathField{}))
		Expect(bool(db.WordQuery().IncludeRoot)).To(BeTrue())

		Expect(db.FragmentRoots()).To(HaveLen(1))
		Expect(db.PathNamespaces()).To(HaveLen(1))
	})

	It("should carry unmodeled options through a round trip untouched", func() {
		db, err := database.Unmarshal([]byte(testutils.ConfigDocument))
		Expect(err).NotTo(HaveOccurred())

		out, err := db.Marshal()
		Expect(err).NotTo(HaveOccurred())

		policy := gjson.GetBytes(out, "assignment-policy")
		Expect(policy.Exists()).To(BeTrue())
		Expect(policy.Raw).To(MatchJSON(`{"assignment-policy-name": "bucket"}`))
	})

	It("should survive a marshal/unmarshal round trip unchanged", func() {
		db, err := database.Unmarshal([]byte(testutils.ConfigDocument))
		Expect(err).NotTo(HaveOccurred())

		out, err := db.Marshal()
		Expect(err).NotTo(HaveOccurred())

		again, err := database.Unmarshal(out)
		Expect(err).NotTo(HaveOccurred())
		Expect(again).To(Equal(db))
	})

	It("should preserve the string-typed booleans on the wire", func() {
		db, err := database.Unmarshal([]byte(testutils.ConfigDocument))
		Expect(err).NotTo(HaveOccurred())

		out, err := db.Marshal()
		Expect(err).NotTo(HaveOccurred())

		rvp := gjson.GetBytes(out, "range-element-index.0.range-value-positions")
		Expect(rvp.Type).To(Equal(gjson.String))
		Expect(rvp.String()).To(Equal("false"))
	})

	It("should omit slots never populated and emit emptied slots as empty arrays", func() {
		db := database.New("Documents")
		_, err := db.SetFields([]database.Field{})
		Expect(err).NotTo(HaveOccurred())

		out, err := db.Marshal()
		Expect(err).NotTo(HaveOccurred())

		Expect(gjson.GetBytes(out, "field").IsArray()).To(BeTrue())
		Expect(gjson.GetBytes(out, "field").Array()).To(BeEmpty())
		Expect(gjson.GetBytes(out, database.SlotElementRangeIndex).Exists()).To(BeFalse())
	})

	It("should reject a slot value that is not an array", func() {
		_, err := database.Unmarshal([]byte(`{"database-name": "d", "field": {}}`))
		Expect(err).To(HaveOccurred())
	})

	It("should reject a document that is not a JSON object", func() {
		_, err := database.Unmarshal([]byte(`[1, 2, 3]`))
		Expect(err).To(HaveOccurred())
	})
})
