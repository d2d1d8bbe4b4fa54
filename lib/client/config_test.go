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

package client

import (
	"os"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Client config loading", func() {
	It("should parse a YAML config file", func() {
		c, err := loadClientConfigFromBytes([]byte(`
host: ml.example.com
port: 8003
username: admin
password: secret
tls: true
`))
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Host).To(Equal("ml.example.com"))
		Expect(c.Port).To(Equal(8003))
		Expect(c.TLS).To(BeTrue())
	})

	It("should accept JSON as a config file", func() {
		c, err := loadClientConfigFromBytes([]byte(`{"host": "ml", "port": 8002}`))
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Host).To(Equal("ml"))
	})

	It("should fill unspecified settings with defaults", func() {
		c, err := loadClientConfigFromBytes([]byte(`username: admin`))
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Host).To(Equal("localhost"))
		Expect(c.Port).To(Equal(8002))
	})

	It("should read settings from MARKLOGIC_* environment variables", func() {
		os.Setenv("MARKLOGIC_HOST", "ml-env.example.com")
		os.Setenv("MARKLOGIC_PORT", "9002")
		defer os.Unsetenv("MARKLOGIC_HOST")
		defer os.Unsetenv("MARKLOGIC_PORT")

		c, err := LoadClientConfig("")
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Host).To(Equal("ml-env.example.com"))
		Expect(c.Port).To(Equal(9002))
	})
})
