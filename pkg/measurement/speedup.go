// Copyright (c) 2017 Intel Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package measurement

import (
	"github.com/pkg/errors"
)

// ErrNoBaseline is returned when speedup is requested for records without single unit measurement.
var ErrNoBaseline = errors.New("no baseline record with parallelism 1")

// ErrZeroTime is returned when speedup is requested for a record which took no measurable time.
var ErrZeroTime = errors.New("record time is zero")

// Baseline returns time of the first record with parallelism 1.
func Baseline(records []Record) (float64, error) {
	for _, record := range records {
		if record.Parallelism == 1 {
			return record.Time, nil
		}
	}
	if len(records) > 0 {
		return 0, errors.Wrapf(ErrNoBaseline, "kind %q", records[0].Kind)
	}
	return 0, ErrNoBaseline
}

// Speedup returns baseline time divided by time of every record.
// Records are expected to be of a single kind, see Dataset.Series.
// Any record with zero time makes speedup undefined and ErrZeroTime is returned.
func Speedup(records []Record) ([]float64, error) {
	baseline, err := Baseline(records)
	if err != nil {
		return nil, err
	}

	speedup := make([]float64, len(records))
	for i, record := range records {
		if record.Time == 0 {
			return nil, errors.Wrapf(ErrZeroTime, "kind %q parallelism %d", record.Kind, record.Parallelism)
		}
		speedup[i] = baseline / record.Time
	}
	return speedup, nil
}

// Efficiency returns speedup divided by parallelism for every record.
func Efficiency(records []Record) ([]float64, error) {
	speedup, err := Speedup(records)
	if err != nil {
		return nil, err
	}

	efficiency := make([]float64, len(records))
	for i, record := range records {
		efficiency[i] = speedup[i] / float64(record.Parallelism)
	}
	return efficiency, nil
}
