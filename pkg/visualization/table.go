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

package visualization

import (
	"io"
	"math"
	"strconv"

	"github.com/intelsdi-x/scaling/pkg/measurement"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Table is a model of tabular data.
type Table struct {
	headers []string
	data    [][]string
}

// NewTable creates new model of data representation.
func NewTable(headers []string, data [][]string) *Table {
	return &Table{
		headers,
		data,
	}
}

// StrongScalingTable summarizes strong scaling with speedup and parallel efficiency of each kind.
// Derived columns of a kind without baseline or with zero time are left undefined.
func StrongScalingTable(dataset measurement.Dataset) (*Table, error) {
	headers := []string{"Execution", "Threads/Processes", "Size", "Time [s]", "Speedup", "Efficiency"}
	data := [][]string{}

	for _, kind := range dataset.Kinds() {
		records := dataset.Series(kind)
		speedup, err := derived(measurement.Speedup(records))
		if err != nil {
			return nil, err
		}
		efficiency, err := derived(measurement.Efficiency(records))
		if err != nil {
			return nil, err
		}

		for i, record := range records {
			data = append(data, append(recordRow(record), fixed(speedup, i, 2), fixed(efficiency, i, 2)))
		}
	}

	return NewTable(headers, data), nil
}

// WeakScalingTable summarizes weak scaling. With work growing along parallelism
// efficiency is the ratio of baseline time to run time.
func WeakScalingTable(dataset measurement.Dataset) (*Table, error) {
	headers := []string{"Execution", "Threads/Processes", "Size", "Time [s]", "Efficiency"}
	data := [][]string{}

	for _, kind := range dataset.Kinds() {
		records := dataset.Series(kind)
		efficiency, err := derived(measurement.Speedup(records))
		if err != nil {
			return nil, err
		}

		for i, record := range records {
			data = append(data, append(recordRow(record), fixed(efficiency, i, 2)))
		}
	}

	return NewTable(headers, data), nil
}

// undefined marks cells which cannot be computed from measured data.
const undefined = "-"

// derived drops values which are undefined for the measured data instead of failing the whole table.
func derived(values []float64, err error) ([]float64, error) {
	switch errors.Cause(err) {
	case nil:
		return values, nil
	case measurement.ErrNoBaseline, measurement.ErrZeroTime:
		logrus.Debugf("Derived values left undefined: %v", err)
		return nil, nil
	}
	return nil, err
}

// fixed formats i-th value rounded to places, or undefined when there is no finite value.
func fixed(values []float64, i, places int) string {
	if i >= len(values) || math.IsNaN(values[i]) || math.IsInf(values[i], 0) {
		return undefined
	}
	return decimal.NewFromFloat(values[i]).StringFixed(int32(places))
}

func recordRow(record measurement.Record) []string {
	return []string{
		record.Kind.Label(),
		strconv.Itoa(record.Parallelism),
		strconv.Itoa(record.Size),
		fixed([]float64{record.Time}, 0, 4),
	}
}

// DrawTable draws a table with headers and data rows.
func DrawTable(w io.Writer, table *Table) {
	output := tablewriter.NewWriter(w)
	output.SetHeader(table.headers)
	output.AppendBulk(table.data)
	output.Render()
}
