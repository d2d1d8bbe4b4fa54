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

// Package testutils holds wire-format fixtures shared by the package tests.
package testutils

// ConfigDocument is a configuration document exercising one record of every
// discriminated family plus a scalar the models do not interpret.
const ConfigDocument = `{
  "database-name": "Documents",
  "enabled": true,
  "language": "en",
  "security-database": "Security",
  "schema-database": "Schemas",
  "forest": ["Documents-Forest-001"],
  "stemmed-searches": "basic",
  "triple-index": false,
  "assignment-policy": {"assignment-policy-name": "bucket"},
  "range-element-index": [
    {
      "scalar-type": "string",
      "namespace-uri": "http://example.com/ns",
      "localname": "title",
      "collation": "http://marklogic.com/collation/",
      "range-value-positions": "false",
      "invalid-values": "reject"
    }
  ],
  "database-backup": [
    {
      "backup-type": "daily",
      "backup-id": 42,
      "backup-directory": "/backups/documents",
      "backup-period": 1,
      "backup-start-time": "01:30:00",
      "max-backups": 7,
      "backup-security-database": true,
      "backup-schemas-database": true,
      "backup-triggers-database": true,
      "include-replicas": false,
      "journal-archiving": false,
      "journal-archive-path": "",
      "journal-archive-lag-limit": 15
    }
  ],
  "merge-blackout": [
    {
      "blackout-type": "recurring",
      "merge-priority": "lower",
      "limit": 0,
      "day": ["saturday", "sunday"],
      "period": null
    }
  ],
  "field": [
    {
      "field-name": "",
      "include-root": "true",
      "word-searches": true
    },
    {
      "field-name": "summaries",
      "field-path": [{"path": "/doc/summary", "weight": 2.0}]
    }
  ],
  "fragment-root": [
    {"namespace-uri": "http://example.com/ns", "localname": "chapter"}
  ],
  "path-namespace": [
    {"prefix": "ex", "namespace-uri": "http://example.com/ns"}
  ]
}`

// BlackoutRecords maps each merge-blackout shape to a wire record resolving
// to exactly that shape under the discrimination rules.
var BlackoutRecords = map[string]string{
	"recurring-all-day": `{
	  "blackout-type": "recurring", "merge-priority": "lower", "limit": 0,
	  "day": ["monday"], "period": null}`,
	"recurring-duration": `{
	  "blackout-type": "recurring", "merge-priority": "normal", "limit": 2,
	  "day": ["tuesday"],
	  "period": {"start-time": "02:00:00", "duration": "PT4H"}}`,
	"recurring-start-end": `{
	  "blackout-type": "recurring", "merge-priority": "lower", "limit": 0,
	  "day": ["friday"],
	  "period": {"start-time": "22:00:00", "end-time": "23:30:00"}}`,
	"one-time-duration": `{
	  "blackout-type": "once", "merge-priority": "lower", "limit": 0,
	  "period": {"start-date": "2026-01-01", "start-time": "00:00:00", "duration": "PT8H"}}`,
	"one-time-start-end": `{
	  "blackout-type": "once", "merge-priority": "normal", "limit": 1,
	  "period": {"start-date": "2026-01-01", "start-time": "00:00:00",
	             "end-date": "2026-01-02", "end-time": "06:00:00"}}`,
}
