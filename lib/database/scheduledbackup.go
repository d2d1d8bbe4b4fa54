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

package database

import (
	"github.com/tidwall/gjson"
)

// Recurrence tags carried in the backup-type field of database-backup
// records.
const (
	BackupTypeMinutely = "minutely"
	BackupTypeHourly   = "hourly"
	BackupTypeDaily    = "daily"
	BackupTypeWeekly   = "weekly"
	BackupTypeMonthly  = "monthly"
	BackupTypeOnce     = "once"
)

// BackupCommon holds the settings shared by every scheduled backup kind.
// BackupID is assigned by the server; a zero id means the backup has not
// been stored yet.
type BackupCommon struct {
	Kind                   string `json:"backup-type" validate:"required"`
	ID                     int    `json:"backup-id,omitempty"`
	BackupDirectory        string `json:"backup-directory" validate:"required"`
	MaxBackups             int    `json:"max-backups"`
	BackupSecurityDatabase bool   `json:"backup-security-database"`
	BackupSchemasDatabase  bool   `json:"backup-schemas-database"`
	BackupTriggersDatabase bool   `json:"backup-triggers-database"`
	IncludeReplicas        bool   `json:"include-replicas"`
	Incremental            *bool  `json:"incremental,omitempty"`
	JournalArchiving       bool   `json:"journal-archiving"`
	JournalArchivePath     string `json:"journal-archive-path"`
	JournalArchiveLagLimit int    `json:"journal-archive-lag-limit"`
}

func (b *BackupCommon) BackupType() string { return b.Kind }
func (b *BackupCommon) BackupID() int      { return b.ID }

// MinutelyBackup runs every BackupPeriod minutes.
type MinutelyBackup struct {
	BackupCommon
	BackupPeriod int `json:"backup-period" validate:"min=1"`
}

func NewMinutelyBackup(directory string, period int) *MinutelyBackup {
	return &MinutelyBackup{
		BackupCommon: BackupCommon{Kind: BackupTypeMinutely, BackupDirectory: directory},
		BackupPeriod: period,
	}
}

func (b *MinutelyBackup) slotName() string { return SlotDatabaseBackup }

// HourlyBackup runs every BackupPeriod hours at the given start time.
type HourlyBackup struct {
	BackupCommon
	BackupPeriod    int    `json:"backup-period" validate:"min=1"`
	BackupStartTime string `json:"backup-start-time" validate:"required,timeOfDay"`
}

func NewHourlyBackup(directory string, period int, startTime string) *HourlyBackup {
	return &HourlyBackup{
		BackupCommon:    BackupCommon{Kind: BackupTypeHourly, BackupDirectory: directory},
		BackupPeriod:    period,
		BackupStartTime: startTime,
	}
}

func (b *HourlyBackup) slotName() string { return SlotDatabaseBackup }

// DailyBackup runs every BackupPeriod days at the given start time.
type DailyBackup struct {
	BackupCommon
	BackupPeriod    int    `json:"backup-period" validate:"min=1"`
	BackupStartTime string `json:"backup-start-time" validate:"required,timeOfDay"`
}

func NewDailyBackup(directory string, period int, startTime string) *DailyBackup {
	return &DailyBackup{
		BackupCommon:    BackupCommon{Kind: BackupTypeDaily, BackupDirectory: directory},
		BackupPeriod:    period,
		BackupStartTime: startTime,
	}
}

func (b *DailyBackup) slotName() string { return SlotDatabaseBackup }

// WeeklyBackup runs every BackupPeriod weeks on the named days.
type WeeklyBackup struct {
	BackupCommon
	BackupPeriod    int      `json:"backup-period" validate:"min=1"`
	BackupDays      []string `json:"backup-day" validate:"required,dive,dayName"`
	BackupStartTime string   `json:"backup-start-time" validate:"required,timeOfDay"`
}

func NewWeeklyBackup(directory string, period int, days []string, startTime string) *WeeklyBackup {
	return &WeeklyBackup{
		BackupCommon:    BackupCommon{Kind: BackupTypeWeekly, BackupDirectory: directory},
		BackupPeriod:    period,
		BackupDays:      days,
		BackupStartTime: startTime,
	}
}

func (b *WeeklyBackup) slotName() string { return SlotDatabaseBackup }

// MonthlyBackup runs every BackupPeriod months on the given day of month.
type MonthlyBackup struct {
	BackupCommon
	BackupPeriod    int    `json:"backup-period" validate:"min=1"`
	BackupMonthDay  int    `json:"backup-month-day" validate:"min=1,max=31"`
	BackupStartTime string `json:"backup-start-time" validate:"required,timeOfDay"`
}

func NewMonthlyBackup(directory string, period, monthDay int, startTime string) *MonthlyBackup {
	return &MonthlyBackup{
		BackupCommon:    BackupCommon{Kind: BackupTypeMonthly, BackupDirectory: directory},
		BackupPeriod:    period,
		BackupMonthDay:  monthDay,
		BackupStartTime: startTime,
	}
}

func (b *MonthlyBackup) slotName() string { return SlotDatabaseBackup }

// OneTimeBackup runs once at the given date and time.
type OneTimeBackup struct {
	BackupCommon
	BackupStartDate string `json:"backup-start-date" validate:"required,isoDate"`
	BackupStartTime string `json:"backup-start-time" validate:"required,timeOfDay"`
}

func NewOneTimeBackup(directory, startDate, startTime string) *OneTimeBackup {
	return &OneTimeBackup{
		BackupCommon:    BackupCommon{Kind: BackupTypeOnce, BackupDirectory: directory},
		BackupStartDate: startDate,
		BackupStartTime: startTime,
	}
}

func (b *OneTimeBackup) slotName() string { return SlotDatabaseBackup }

var backupCommonFields = []string{
	"backup-directory", "max-backups", "backup-security-database",
	"backup-schemas-database", "backup-triggers-database", "include-replicas",
	"journal-archiving", "journal-archive-path", "journal-archive-lag-limit",
}

func backupRule[T ScheduledBackup](tag string, newT func() T, specific ...string) variantRule[ScheduledBackup] {
	return variantRule[ScheduledBackup]{
		matches: func(rec gjson.Result) bool {
			return rec.Get("backup-type").String() == tag
		},
		decode: func(rec gjson.Result) (ScheduledBackup, error) {
			required := append(append([]string{}, backupCommonFields...), specific...)
			if err := requireFields(SlotDatabaseBackup, rec, required...); err != nil {
				return nil, err
			}
			out := newT()
			if err := decodeRecord(SlotDatabaseBackup, rec, out); err != nil {
				return nil, err
			}
			return out, nil
		},
	}
}

// The backup family is purely tag-discriminated; the rules never overlap so
// their order is immaterial, but they are declared in the order the server
// documents the recurrence kinds.
var backupRules = []variantRule[ScheduledBackup]{
	backupRule(BackupTypeMinutely, func() *MinutelyBackup { return &MinutelyBackup{} },
		"backup-period"),
	backupRule(BackupTypeHourly, func() *HourlyBackup { return &HourlyBackup{} },
		"backup-period", "backup-start-time"),
	backupRule(BackupTypeDaily, func() *DailyBackup { return &DailyBackup{} },
		"backup-period", "backup-start-time"),
	backupRule(BackupTypeWeekly, func() *WeeklyBackup { return &WeeklyBackup{} },
		"backup-period", "backup-day", "backup-start-time"),
	backupRule(BackupTypeMonthly, func() *MonthlyBackup { return &MonthlyBackup{} },
		"backup-period", "backup-month-day", "backup-start-time"),
	backupRule(BackupTypeOnce, func() *OneTimeBackup { return &OneTimeBackup{} },
		"backup-start-date", "backup-start-time"),
}

func decodeScheduledBackup(rec gjson.Result) (ScheduledBackup, error) {
	return decodeVariant(SlotDatabaseBackup, backupRules, rec)
}
