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
	"strconv"
	"time"

	"github.com/intelsdi-x/scaling/pkg/conf"
	"github.com/pkg/errors"
)

var (
	// BaseSizeFlag is the problem size of strong scaling and per unit size of weak scaling.
	BaseSizeFlag = conf.NewIntFlag("base_size", "Problem size for strong scaling and per thread/process size for weak scaling", 10000000)
	// ThreadsFlag lists thread counts of OpenMP runs.
	ThreadsFlag = conf.NewSliceFlag("omp_threads", "Thread counts for OpenMP runs", "1", "2", "3", "4", "5", "6", "7", "8")
	// ProcsFlag lists process counts of MPI runs.
	ProcsFlag = conf.NewSliceFlag("mpi_procs", "Process counts for MPI runs", "1", "2", "3", "4", "5", "6", "7", "8")
	// RunTimeoutFlag limits a single run. Zero waits forever.
	RunTimeoutFlag = conf.NewDurationFlag("run_timeout", "Time limit of a single benchmark run (0 means no limit)", 0)
	// StrongOutputFlag is the path of strong scaling table.
	StrongOutputFlag = conf.NewStringFlag("strong_csv", "Output file for strong scaling results", "logs/strong_scaling.csv")
	// WeakOutputFlag is the path of weak scaling table.
	WeakOutputFlag = conf.NewStringFlag("weak_csv", "Output file for weak scaling results", "logs/weak_scaling.csv")
)

// Config describes both scaling experiments.
type Config struct {
	BaseSize   int
	Threads    []int
	Procs      []int
	RunTimeout time.Duration
}

// DefaultConfig returns config based on flags.
func DefaultConfig() (Config, error) {
	threads, err := ParseDegrees(ThreadsFlag.Value())
	if err != nil {
		return Config{}, errors.Wrap(err, "invalid thread counts")
	}
	procs, err := ParseDegrees(ProcsFlag.Value())
	if err != nil {
		return Config{}, errors.Wrap(err, "invalid process counts")
	}
	if BaseSizeFlag.Value() <= 0 {
		return Config{}, errors.Errorf("base size must be positive, got %d", BaseSizeFlag.Value())
	}

	return Config{
		BaseSize:   BaseSizeFlag.Value(),
		Threads:    threads,
		Procs:      procs,
		RunTimeout: RunTimeoutFlag.Value(),
	}, nil
}

// ParseDegrees converts list of parallelism degrees. Every degree must be a positive integer.
func ParseDegrees(values []string) ([]int, error) {
	degrees := make([]int, 0, len(values))
	for _, value := range values {
		degree, err := strconv.Atoi(value)
		if err != nil || degree <= 0 {
			return nil, errors.Errorf("%q is not a positive integer", value)
		}
		degrees = append(degrees, degree)
	}
	return degrees, nil
}
