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
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/coreos/go-semver/semver"
	"github.com/tidwall/gjson"
)

// ServerVersion returns the MarkLogic server version reported by the local
// cluster.
func (c *Client) ServerVersion(ctx context.Context) (*semver.Version, error) {
	resp, err := c.do(ctx, http.MethodGet, "/manage/v2?format=json", nil, nil)
	if err != nil {
		return nil, err
	}
	if resp.status != http.StatusOK {
		return nil, unexpectedResponse(resp)
	}
	raw := gjson.GetBytes(resp.body, "local-cluster-default.version").String()
	return parseServerVersion(raw)
}

// parseServerVersion normalizes the server's version string, which may
// carry fewer than three components or a dashed suffix, into a semver.
func parseServerVersion(raw string) (*semver.Version, error) {
	if raw == "" {
		return nil, fmt.Errorf("server reported no version")
	}
	core, _, _ := strings.Cut(raw, "-")
	for strings.Count(core, ".") < 2 {
		core += ".0"
	}
	v, err := semver.NewVersion(core)
	if err != nil {
		return nil, fmt.Errorf("cannot parse server version %q: %v", raw, err)
	}
	return v, nil
}

// RequireVersion fails if the server is older than the given minimum
// version.
func (c *Client) RequireVersion(ctx context.Context, minimum string) error {
	min, err := semver.NewVersion(minimum)
	if err != nil {
		return err
	}
	v, err := c.ServerVersion(ctx)
	if err != nil {
		return err
	}
	if v.LessThan(*min) {
		return fmt.Errorf("server version %s is older than required %s", v, min)
	}
	return nil
}
