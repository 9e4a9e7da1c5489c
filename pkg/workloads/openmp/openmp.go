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

package openmp

import (
	"fmt"
	"strconv"

	"github.com/intelsdi-x/scaling/pkg/conf"
	"github.com/intelsdi-x/scaling/pkg/executor"
	"github.com/intelsdi-x/scaling/pkg/isolation"
)

const (
	name = "OpenMP"
	// ThreadsEnv is the variable read by OpenMP runtime.
	ThreadsEnv = "OMP_NUM_THREADS"
)

// PathFlag represents path to the thread-parallel binary.
var PathFlag = conf.NewStringFlag("openmp_path", "Path to OpenMP binary", "./project_omp")

// Config is a config for the thread-parallel program.
type Config struct {
	Path       string
	Size       int
	NumThreads int
}

// DefaultConfig is a constructor for Config with default parameters.
func DefaultConfig() Config {
	return Config{
		Path:       PathFlag.Value(),
		NumThreads: 1,
	}
}

type openmp struct {
	exec executor.Executor
	conf Config
}

// New is a constructor for OpenMP program launcher.
// Thread count is passed both as the second argument and in OMP_NUM_THREADS.
func New(exec executor.Executor, config Config) executor.Launcher {
	return openmp{
		exec: exec,
		conf: config,
	}
}

func (l openmp) buildCommand() string {
	command := fmt.Sprintf("%s %d %d", l.conf.Path, l.conf.Size, l.conf.NumThreads)
	return isolation.NewEnv(ThreadsEnv, strconv.Itoa(l.conf.NumThreads)).Decorate(command)
}

// Launch starts the program.
func (l openmp) Launch() (executor.TaskHandle, error) {
	return l.exec.Execute(l.buildCommand())
}

// Name returns human readable name for job.
func (l openmp) Name() string {
	return fmt.Sprintf("%s %d threads", name, l.conf.NumThreads)
}
