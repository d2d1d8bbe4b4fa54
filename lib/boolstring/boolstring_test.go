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

package boolstring_test

import (
	"encoding/json"
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/marklogic-community/marklogic-go/lib/boolstring"
)

func TestBoolstring(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Boolstring Suite")
}

var _ = Describe("String-typed booleans", func() {
	It("should encode as the string tokens, never as JSON booleans", func() {
		out, err := json.Marshal(boolstring.True)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(out)).To(Equal(`"true"`))

		out, err = json.Marshal(boolstring.False)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(out)).To(Equal(`"false"`))
	})

	DescribeTable("decoding",
		func(input string, expectErr bool, expected bool) {
			var b boolstring.Bool
			err := json.Unmarshal([]byte(input), &b)
			if expectErr {
				Expect(err).To(HaveOccurred())
				return
			}
			Expect(err).NotTo(HaveOccurred())
			Expect(bool(b)).To(Equal(expected))
		},
		Entry("string true", `"true"`, false, true),
		Entry("string false", `"false"`, false, false),
		Entry("bare true", `true`, false, true),
		Entry("bare false", `false`, false, false),
		Entry("any other token", `"yes"`, true, false),
		Entry("a number", `1`, true, false),
	)
})
