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

// Package client is the typed client for the MarkLogic management API.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	cerrors "github.com/marklogic-community/marklogic-go/lib/errors"
)

// Client is a typed management API client.  It is safe for concurrent use.
type Client struct {
	config Config
	http   *http.Client
}

// New returns a client connected per the given configuration.
func New(config Config) (*Client, error) {
	return &Client{
		config: config,
		http: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
	}, nil
}

// NewFromEnv returns a client configured from MARKLOGIC_* environment
// variables.
func NewFromEnv() (*Client, error) {
	config, err := LoadClientConfig("")
	if err != nil {
		return nil, err
	}
	return New(*config)
}

// Databases returns the interface for managing database configurations.
func (c *Client) Databases() DatabaseInterface {
	return databases{client: c}
}

func (c *Client) baseURL() string {
	scheme := "http"
	if c.config.TLS {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s:%d", scheme, c.config.Host, c.config.Port)
}

type response struct {
	status int
	etag   string
	body   []byte
}

// do issues one management API request.  Every request carries a generated
// id so client and server logs can be correlated.
func (c *Client) do(ctx context.Context, method, path string, headers map[string]string,
	body []byte) (*response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL()+path, reader)
	if err != nil {
		return nil, err
	}
	requestID := uuid.New().String()
	req.Header.Set("X-Request-Id", requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if c.config.Username != "" {
		req.SetBasicAuth(c.config.Username, c.config.Password)
	}

	logCtx := log.WithFields(log.Fields{
		"method":    method,
		"path":      path,
		"requestID": requestID,
	})
	logCtx.Debug("Management API request")

	resp, err := c.http.Do(req)
	if err != nil {
		logCtx.WithError(err).Warn("Management API request failed")
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	logCtx.WithField("status", resp.StatusCode).Debug("Management API response")
	return &response{
		status: resp.StatusCode,
		etag:   resp.Header.Get("ETag"),
		body:   respBody,
	}, nil
}

func unexpectedResponse(r *response) error {
	return cerrors.ErrorUnexpectedResponse{Status: r.status, Body: string(r.body)}
}
