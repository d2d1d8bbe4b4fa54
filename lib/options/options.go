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

// Package options contains the per-call option structs accepted by the
// typed resource clients.
package options

// GetOptions controls how a resource is read.
type GetOptions struct {
	// View selects the management API view to fetch.  Empty means the
	// properties view, which is the only view the models decode.
	View string
}

// SetOptions controls how a resource update is applied.
type SetOptions struct {
	// Force skips the etag precondition and overwrites whatever the
	// server currently holds.
	Force bool
}

// DeleteOptions controls how a resource is deleted.
type DeleteOptions struct {
	// DeleteForests also deletes the forests attached to the database,
	// including their on-disk data.
	DeleteForests bool
}

// ListOptions controls resource listing.
type ListOptions struct{}
