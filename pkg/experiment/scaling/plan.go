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

package scaling

import (
	"fmt"

	"github.com/intelsdi-x/scaling/pkg/measurement"
)

const (
	// StrongScaling is the name of the fixed size experiment.
	StrongScaling = "strong_scaling"
	// WeakScaling is the name of the experiment with size proportional to parallelism.
	WeakScaling = "weak_scaling"
)

// Run is a single configuration of a benchmarked program.
type Run struct {
	Kind        measurement.Kind
	Parallelism int
	Size        int
}

func (r Run) String() string {
	switch r.Kind {
	case measurement.OpenMP:
		return fmt.Sprintf("%s with %d threads and size %d", r.Kind, r.Parallelism, r.Size)
	case measurement.MPI:
		return fmt.Sprintf("%s with %d processes and size %d", r.Kind, r.Parallelism, r.Size)
	}
	return fmt.Sprintf("%s (sequential) with size %d", r.Kind, r.Size)
}

// StrongScalingPlan is the sequential baseline followed by OpenMP and MPI runs, all of base size.
func StrongScalingPlan(config Config) []Run {
	plan := []Run{{Kind: measurement.Sequential, Parallelism: 1, Size: config.BaseSize}}
	for _, threads := range config.Threads {
		plan = append(plan, Run{Kind: measurement.OpenMP, Parallelism: threads, Size: config.BaseSize})
	}
	for _, procs := range config.Procs {
		plan = append(plan, Run{Kind: measurement.MPI, Parallelism: procs, Size: config.BaseSize})
	}
	return plan
}

// WeakScalingPlan is OpenMP and MPI runs with size growing with parallelism.
func WeakScalingPlan(config Config) []Run {
	var plan []Run
	for _, threads := range config.Threads {
		plan = append(plan, Run{Kind: measurement.OpenMP, Parallelism: threads, Size: config.BaseSize * threads})
	}
	for _, procs := range config.Procs {
		plan = append(plan, Run{Kind: measurement.MPI, Parallelism: procs, Size: config.BaseSize * procs})
	}
	return plan
}
