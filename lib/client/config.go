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

	"github.com/ghodss/yaml"
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
)

// Config holds the connection settings for a management API endpoint.
type Config struct {
	Host     string `json:"host" envconfig:"MARKLOGIC_HOST" default:"localhost"`
	Port     int    `json:"port" envconfig:"MARKLOGIC_PORT" default:"8002"`
	Username string `json:"username" envconfig:"MARKLOGIC_USERNAME"`
	Password string `json:"password" envconfig:"MARKLOGIC_PASSWORD"`
	TLS      bool   `json:"tls" envconfig:"MARKLOGIC_TLS"`

	// TimeoutSeconds bounds each management API call.  Zero means no
	// client-side timeout.
	TimeoutSeconds int `json:"timeoutSeconds" envconfig:"MARKLOGIC_TIMEOUT_SECONDS"`
}

// LoadClientConfig loads the connection settings from the YAML or JSON file
// at the given path, or from MARKLOGIC_* environment variables if the path
// is empty.
func LoadClientConfig(filename string) (*Config, error) {
	if filename != "" {
		return loadClientConfigFromFile(filename)
	}
	return loadClientConfigFromEnvironment()
}

func loadClientConfigFromFile(filename string) (*Config, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	c, err := loadClientConfigFromBytes(b)
	if err != nil {
		return nil, err
	}
	log.Infof("Loaded client config from %s: %+v", filename, redacted(*c))
	return c, nil
}

func loadClientConfigFromBytes(b []byte) (*Config, error) {
	c := &Config{Host: "localhost", Port: 8002}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	return c, nil
}

func loadClientConfigFromEnvironment() (*Config, error) {
	c := &Config{}
	if err := envconfig.Process("marklogic", c); err != nil {
		return nil, err
	}
	log.Debugf("Loaded client config from environment: %+v", redacted(*c))
	return c, nil
}

func redacted(c Config) Config {
	if c.Password != "" {
		c.Password = "<redacted>"
	}
	return c
}
