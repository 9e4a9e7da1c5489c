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
	"github.com/intelsdi-x/scaling/pkg/executor"
	"github.com/intelsdi-x/scaling/pkg/measurement"
	"github.com/intelsdi-x/scaling/pkg/workloads/mpi"
	"github.com/intelsdi-x/scaling/pkg/workloads/openmp"
	"github.com/intelsdi-x/scaling/pkg/workloads/sequential"
	"github.com/pkg/errors"
)

// LauncherFactory creates launcher of the program for given run.
type LauncherFactory interface {
	Create(run Run) (executor.Launcher, error)
}

// WorkloadFactory creates launchers of the sequential, OpenMP and MPI programs.
type WorkloadFactory struct {
	Executor   executor.Executor
	Sequential sequential.Config
	OpenMP     openmp.Config
	MPI        mpi.Config
}

// NewWorkloadFactory returns factory with configs based on flags.
func NewWorkloadFactory(exec executor.Executor) WorkloadFactory {
	return WorkloadFactory{
		Executor:   exec,
		Sequential: sequential.DefaultConfig(),
		OpenMP:     openmp.DefaultConfig(),
		MPI:        mpi.DefaultConfig(),
	}
}

// Create implements LauncherFactory interface.
func (f WorkloadFactory) Create(run Run) (executor.Launcher, error) {
	switch run.Kind {
	case measurement.Sequential:
		config := f.Sequential
		config.Size = run.Size
		return sequential.New(f.Executor, config), nil
	case measurement.OpenMP:
		config := f.OpenMP
		config.Size = run.Size
		config.NumThreads = run.Parallelism
		return openmp.New(f.Executor, config), nil
	case measurement.MPI:
		config := f.MPI
		config.Size = run.Size
		config.NumProcs = run.Parallelism
		return mpi.New(f.Executor, config), nil
	}
	return nil, errors.Errorf("no launcher for execution kind %q", run.Kind)
}
