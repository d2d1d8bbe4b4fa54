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
	"net/url"

	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/marklogic-community/marklogic-go/lib/database"
	cerrors "github.com/marklogic-community/marklogic-go/lib/errors"
	"github.com/marklogic-community/marklogic-go/lib/options"
)

// DatabaseInterface has the methods for working with database
// configurations.
type DatabaseInterface interface {
	Create(ctx context.Context, db *database.Database) error
	Update(ctx context.Context, db *database.Database, opts options.SetOptions) error
	Delete(ctx context.Context, name string, opts options.DeleteOptions) error
	Get(ctx context.Context, name string, opts options.GetOptions) (*database.Database, error)
	List(ctx context.Context, opts options.ListOptions) ([]string, error)
	Clear(ctx context.Context, name string) error
	Merge(ctx context.Context, name string) error
	Reindex(ctx context.Context, name string) error
}

// databases implements DatabaseInterface.
type databases struct {
	client *Client
}

func databasePath(name string) string {
	return "/manage/v2/databases/" + url.PathEscape(name)
}

// Create registers a new database.  The configuration is validated before
// anything is sent.
func (d databases) Create(ctx context.Context, db *database.Database) error {
	if err := db.Validate(); err != nil {
		return err
	}
	body, err := db.Marshal()
	if err != nil {
		return err
	}
	log.WithField("database", db.DatabaseName()).Info("Creating database")
	resp, err := d.client.do(ctx, http.MethodPost, "/manage/v2/databases?format=json", nil, body)
	if err != nil {
		return err
	}
	switch resp.status {
	case http.StatusCreated:
		return nil
	case http.StatusBadRequest, http.StatusConflict:
		return cerrors.ErrorResourceAlreadyExists{Name: db.DatabaseName()}
	default:
		return unexpectedResponse(resp)
	}
}

// Update pushes the configuration's properties view.  Unless opts.Force is
// set, the etag captured on Get is sent as an If-Match precondition so a
// concurrent change on the server surfaces as an update conflict.
func (d databases) Update(ctx context.Context, db *database.Database, opts options.SetOptions) error {
	if err := db.Validate(); err != nil {
		return err
	}
	body, err := db.Marshal()
	if err != nil {
		return err
	}
	headers := map[string]string{}
	if etag := db.Etag(); etag != "" && !opts.Force {
		headers["If-Match"] = etag
	}
	log.WithField("database", db.Name()).Info("Updating database")
	resp, err := d.client.do(ctx, http.MethodPut,
		databasePath(db.Name())+"/properties?format=json", headers, body)
	if err != nil {
		return err
	}
	switch resp.status {
	case http.StatusNoContent, http.StatusAccepted:
		return nil
	case http.StatusNotFound:
		return cerrors.ErrorResourceDoesNotExist{Name: db.Name()}
	case http.StatusPreconditionFailed, http.StatusConflict:
		return cerrors.ErrorResourceUpdateConflict{Name: db.Name()}
	default:
		return unexpectedResponse(resp)
	}
}

// Delete removes the database.  With opts.DeleteForests the attached
// forests and their data are removed as well.
func (d databases) Delete(ctx context.Context, name string, opts options.DeleteOptions) error {
	path := databasePath(name) + "?format=json"
	if opts.DeleteForests {
		path += "&forest-delete=data"
	}
	log.WithField("database", name).Info("Deleting database")
	resp, err := d.client.do(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return err
	}
	switch resp.status {
	case http.StatusNoContent, http.StatusAccepted:
		return nil
	case http.StatusNotFound:
		return cerrors.ErrorResourceDoesNotExist{Name: name}
	default:
		return unexpectedResponse(resp)
	}
}

// Get fetches the database's properties view and decodes it, capturing the
// response etag for later conditional updates.
func (d databases) Get(ctx context.Context, name string, opts options.GetOptions) (*database.Database, error) {
	path := databasePath(name) + "/properties?format=json"
	if opts.View != "" {
		path = databasePath(name) + "?format=json&view=" + url.QueryEscape(opts.View)
	}
	resp, err := d.client.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	switch resp.status {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, cerrors.ErrorResourceDoesNotExist{Name: name}
	default:
		return nil, unexpectedResponse(resp)
	}
	db, err := database.Unmarshal(resp.body)
	if err != nil {
		return nil, err
	}
	db.SetEtag(resp.etag)
	return db, nil
}

// List returns the names of all databases on the server.
func (d databases) List(ctx context.Context, _ options.ListOptions) ([]string, error) {
	resp, err := d.client.do(ctx, http.MethodGet, "/manage/v2/databases?format=json", nil, nil)
	if err != nil {
		return nil, err
	}
	if resp.status != http.StatusOK {
		return nil, unexpectedResponse(resp)
	}
	items := gjson.GetBytes(resp.body,
		"database-default-list.list-items.list-item.#.nameref")
	names := []string{}
	for _, item := range items.Array() {
		names = append(names, item.String())
	}
	return names, nil
}

func (d databases) Clear(ctx context.Context, name string) error {
	return d.operate(ctx, name, "clear-database")
}

func (d databases) Merge(ctx context.Context, name string) error {
	return d.operate(ctx, name, "merge-database")
}

func (d databases) Reindex(ctx context.Context, name string) error {
	return d.operate(ctx, name, "reindex-database")
}

func (d databases) operate(ctx context.Context, name, operation string) error {
	body := []byte(fmt.Sprintf(`{"operation":%q}`, operation))
	log.WithFields(log.Fields{"database": name, "operation": operation}).Info("Database operation")
	resp, err := d.client.do(ctx, http.MethodPost, databasePath(name)+"?format=json", nil, body)
	if err != nil {
		return err
	}
	switch resp.status {
	case http.StatusOK, http.StatusAccepted, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return cerrors.ErrorResourceDoesNotExist{Name: name}
	default:
		return unexpectedResponse(resp)
	}
}
