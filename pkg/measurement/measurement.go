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

// Package measurement holds results of scaling experiments: records, datasets,
// their CSV representation and derived speedup.
package measurement

import (
	"github.com/pkg/errors"
)

// Kind is an execution kind of the measured program. Its value is persisted verbatim.
type Kind string

const (
	// Sequential is a single threaded program.
	Sequential Kind = "project"
	// OpenMP is a thread-parallel program.
	OpenMP Kind = "project_omp"
	// MPI is a process-parallel program.
	MPI Kind = "project_mpi"
)

// Kinds lists all known execution kinds.
var Kinds = []Kind{Sequential, OpenMP, MPI}

// ParseKind returns Kind for its persisted name.
func ParseKind(name string) (Kind, error) {
	for _, kind := range Kinds {
		if string(kind) == name {
			return kind, nil
		}
	}
	return "", errors.Errorf("unknown execution kind %q", name)
}

// Label returns human readable name used in charts and tables.
func (k Kind) Label() string {
	switch k {
	case Sequential:
		return "Sequential"
	case OpenMP:
		return "OpenMP"
	case MPI:
		return "MPI"
	}
	return string(k)
}

func (k Kind) String() string {
	return string(k)
}

// Record is a single measurement.
type Record struct {
	Kind        Kind
	Parallelism int
	Size        int
	// Time is elapsed time in seconds.
	Time float64
}

// Dataset is an ordered sequence of records of one experiment.
type Dataset struct {
	Name    string
	Records []Record
}

// NewDataset returns empty dataset with given name.
func NewDataset(name string) Dataset {
	return Dataset{Name: name}
}

// Add appends record to the dataset.
func (d *Dataset) Add(record Record) {
	d.Records = append(d.Records, record)
}

// Len returns number of records.
func (d Dataset) Len() int {
	return len(d.Records)
}

// Series returns records of given kind in their original order.
func (d Dataset) Series(kind Kind) []Record {
	var series []Record
	for _, record := range d.Records {
		if record.Kind == kind {
			series = append(series, record)
		}
	}
	return series
}

// Kinds returns kinds present in dataset in order of first appearance.
func (d Dataset) Kinds() []Kind {
	var kinds []Kind
	seen := map[Kind]bool{}
	for _, record := range d.Records {
		if !seen[record.Kind] {
			seen[record.Kind] = true
			kinds = append(kinds, record.Kind)
		}
	}
	return kinds
}
