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

// Blackout tags carried in the blackout-type field of merge-blackout
// records.  The tag alone does not determine the variant; the shape of the
// nested period record completes the discrimination.
const (
	BlackoutTypeRecurring = "recurring"
	BlackoutTypeOnce      = "once"
)

// BlackoutPeriod is the nested period record of a merge blackout.  Which
// subset of fields is present depends on the blackout shape.
type BlackoutPeriod struct {
	StartDate string `json:"start-date,omitempty" validate:"omitempty,isoDate"`
	StartTime string `json:"start-time,omitempty" validate:"omitempty,timeOfDay"`
	EndDate   string `json:"end-date,omitempty" validate:"omitempty,isoDate"`
	EndTime   string `json:"end-time,omitempty" validate:"omitempty,timeOfDay"`
	Duration  string `json:"duration,omitempty" validate:"omitempty,xsdDuration"`
}

// BlackoutCommon holds the settings shared by every merge blackout shape.
type BlackoutCommon struct {
	Kind          string `json:"blackout-type" validate:"required"`
	MergePriority string `json:"merge-priority" validate:"required,mergePriority"`
	Limit         int    `json:"limit"`
}

func (b *BlackoutCommon) BlackoutType() string { return b.Kind }

// RecurringAllDayBlackout suppresses merges for the whole of each named day.
// It carries no period record.
type RecurringAllDayBlackout struct {
	BlackoutCommon
	Days []string `json:"day" validate:"required,dive,dayName"`
}

func NewRecurringAllDayBlackout(mergePriority string, limit int, days []string) *RecurringAllDayBlackout {
	return &RecurringAllDayBlackout{
		BlackoutCommon: BlackoutCommon{Kind: BlackoutTypeRecurring, MergePriority: mergePriority, Limit: limit},
		Days:           days,
	}
}

func (b *RecurringAllDayBlackout) slotName() string { return SlotMergeBlackout }

// RecurringDurationBlackout suppresses merges for a fixed duration starting
// at a time of day on each named day.
type RecurringDurationBlackout struct {
	BlackoutCommon
	Days   []string        `json:"day" validate:"required,dive,dayName"`
	Period *BlackoutPeriod `json:"period" validate:"required"`
}

func NewRecurringDurationBlackout(mergePriority string, limit int, days []string,
	startTime, duration string) *RecurringDurationBlackout {
	return &RecurringDurationBlackout{
		BlackoutCommon: BlackoutCommon{Kind: BlackoutTypeRecurring, MergePriority: mergePriority, Limit: limit},
		Days:           days,
		Period:         &BlackoutPeriod{StartTime: startTime, Duration: duration},
	}
}

func (b *RecurringDurationBlackout) slotName() string { return SlotMergeBlackout }

// RecurringStartEndBlackout suppresses merges between two times of day on
// each named day.
type RecurringStartEndBlackout struct {
	BlackoutCommon
	Days   []string        `json:"day" validate:"required,dive,dayName"`
	Period *BlackoutPeriod `json:"period" validate:"required"`
}

func NewRecurringStartEndBlackout(mergePriority string, limit int, days []string,
	startTime, endTime string) *RecurringStartEndBlackout {
	return &RecurringStartEndBlackout{
		BlackoutCommon: BlackoutCommon{Kind: BlackoutTypeRecurring, MergePriority: mergePriority, Limit: limit},
		Days:           days,
		Period:         &BlackoutPeriod{StartTime: startTime, EndTime: endTime},
	}
}

func (b *RecurringStartEndBlackout) slotName() string { return SlotMergeBlackout }

// OneTimeDurationBlackout suppresses merges for a fixed duration starting at
// a single date and time.
type OneTimeDurationBlackout struct {
	BlackoutCommon
	Period *BlackoutPeriod `json:"period" validate:"required"`
}

func NewOneTimeDurationBlackout(mergePriority string, limit int,
	startDate, startTime, duration string) *OneTimeDurationBlackout {
	return &OneTimeDurationBlackout{
		BlackoutCommon: BlackoutCommon{Kind: BlackoutTypeOnce, MergePriority: mergePriority, Limit: limit},
		Period:         &BlackoutPeriod{StartDate: startDate, StartTime: startTime, Duration: duration},
	}
}

func (b *OneTimeDurationBlackout) slotName() string { return SlotMergeBlackout }

// OneTimeStartEndBlackout suppresses merges between a start date/time and an
// end date/time.
type OneTimeStartEndBlackout struct {
	BlackoutCommon
	Period *BlackoutPeriod `json:"period" validate:"required"`
}

func NewOneTimeStartEndBlackout(mergePriority string, limit int,
	startDate, startTime, endDate, endTime string) *OneTimeStartEndBlackout {
	return &OneTimeStartEndBlackout{
		BlackoutCommon: BlackoutCommon{Kind: BlackoutTypeOnce, MergePriority: mergePriority, Limit: limit},
		Period:         &BlackoutPeriod{StartDate: startDate, StartTime: startTime, EndDate: endDate, EndTime: endTime},
	}
}

func (b *OneTimeStartEndBlackout) slotName() string { return SlotMergeBlackout }

func blackoutRule[T MergeBlackout](newT func() T, matches func(rec gjson.Result) bool,
	required ...string) variantRule[MergeBlackout] {
	return variantRule[MergeBlackout]{
		matches: matches,
		decode: func(rec gjson.Result) (MergeBlackout, error) {
			if err := requireFields(SlotMergeBlackout, rec, required...); err != nil {
				return nil, err
			}
			out := newT()
			if err := decodeRecord(SlotMergeBlackout, rec, out); err != nil {
				return nil, err
			}
			return out, nil
		},
	}
}

// The blackout rules are structural and their order is part of the
// contract: the blackout-type tag is checked first, then the shape of the
// nested period, and the first fully matching rule wins.
var blackoutRules = []variantRule[MergeBlackout]{
	blackoutRule(func() *RecurringAllDayBlackout { return &RecurringAllDayBlackout{} },
		func(rec gjson.Result) bool {
			return rec.Get("blackout-type").String() == BlackoutTypeRecurring &&
				absentOrNull(rec.Get("period"))
		},
		"merge-priority", "limit", "day"),
	blackoutRule(func() *RecurringDurationBlackout { return &RecurringDurationBlackout{} },
		func(rec gjson.Result) bool {
			return rec.Get("blackout-type").String() == BlackoutTypeRecurring &&
				rec.Get("period.duration").Exists()
		},
		"merge-priority", "limit", "day", "period.start-time", "period.duration"),
	blackoutRule(func() *RecurringStartEndBlackout { return &RecurringStartEndBlackout{} },
		func(rec gjson.Result) bool {
			return rec.Get("blackout-type").String() == BlackoutTypeRecurring &&
				rec.Get("period.end-time").Exists()
		},
		"merge-priority", "limit", "day", "period.start-time", "period.end-time"),
	blackoutRule(func() *OneTimeStartEndBlackout { return &OneTimeStartEndBlackout{} },
		func(rec gjson.Result) bool {
			return rec.Get("blackout-type").String() == BlackoutTypeOnce &&
				rec.Get("period.end-time").Exists()
		},
		"merge-priority", "limit", "period.start-date", "period.start-time",
		"period.end-date", "period.end-time"),
	blackoutRule(func() *OneTimeDurationBlackout { return &OneTimeDurationBlackout{} },
		func(rec gjson.Result) bool {
			return rec.Get("blackout-type").String() == BlackoutTypeOnce &&
				rec.Get("period.duration").Exists()
		},
		"merge-priority", "limit", "period.start-date", "period.start-time", "period.duration"),
}

func decodeMergeBlackout(rec gjson.Result) (MergeBlackout, error) {
	return decodeVariant(SlotMergeBlackout, blackoutRules, rec)
}
