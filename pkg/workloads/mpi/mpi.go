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

package mpi

import (
	"fmt"
	"strings"

	"github.com/intelsdi-x/scaling/pkg/conf"
	"github.com/intelsdi-x/scaling/pkg/executor"
)

const name = "MPI"

var (
	// PathFlag represents path to the process-parallel binary.
	PathFlag = conf.NewStringFlag("mpi_path", "Path to MPI binary", "./project_mpi")
	// MpirunPathFlag represents path to the MPI process launcher.
	MpirunPathFlag = conf.NewStringFlag("mpirun_path", "Path to mpirun", "mpirun")
	// MpirunArgsFlag holds extra arguments for mpirun, e.g. --oversubscribe or --hostfile.
	MpirunArgsFlag = conf.NewSliceFlag("mpirun_args", "Extra arguments passed to mpirun before -np")
)

// Config is a config for the process-parallel program.
type Config struct {
	MpirunPath string
	MpirunArgs []string
	Path       string
	Size       int
	NumProcs   int
}

// DefaultConfig is a constructor for Config with default parameters.
func DefaultConfig() Config {
	return Config{
		MpirunPath: MpirunPathFlag.Value(),
		MpirunArgs: MpirunArgsFlag.Value(),
		Path:       PathFlag.Value(),
		NumProcs:   1,
	}
}

type mpi struct {
	exec executor.Executor
	conf Config
}

// New is a constructor for MPI program launcher.
func New(exec executor.Executor, config Config) executor.Launcher {
	return mpi{
		exec: exec,
		conf: config,
	}
}

func (l mpi) buildCommand() string {
	args := append([]string{l.conf.MpirunPath}, l.conf.MpirunArgs...)
	args = append(args, "-np", fmt.Sprint(l.conf.NumProcs), l.conf.Path, fmt.Sprint(l.conf.Size))
	return strings.Join(args, " ")
}

// Launch starts the program through mpirun.
func (l mpi) Launch() (executor.TaskHandle, error) {
	return l.exec.Execute(l.buildCommand())
}

// Name returns human readable name for job.
func (l mpi) Name() string {
	return fmt.Sprintf("%s %d processes", name, l.conf.NumProcs)
}
