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

package sequential

import (
	"fmt"

	"github.com/intelsdi-x/scaling/pkg/conf"
	"github.com/intelsdi-x/scaling/pkg/executor"
)

const name = "Sequential"

// PathFlag represents path to the sequential binary.
var PathFlag = conf.NewStringFlag("sequential_path", "Path to sequential binary", "./project")

// Config is a config for the sequential program.
type Config struct {
	Path string
	// Size is the problem size passed as the only argument.
	Size int
}

// DefaultConfig is a constructor for Config with default parameters.
func DefaultConfig() Config {
	return Config{
		Path: PathFlag.Value(),
	}
}

type sequential struct {
	exec executor.Executor
	conf Config
}

// New is a constructor for sequential program launcher.
func New(exec executor.Executor, config Config) executor.Launcher {
	return sequential{
		exec: exec,
		conf: config,
	}
}

func (l sequential) buildCommand() string {
	return fmt.Sprintf("%s %d", l.conf.Path, l.conf.Size)
}

// Launch starts the program with given problem size.
func (l sequential) Launch() (executor.TaskHandle, error) {
	return l.exec.Execute(l.buildCommand())
}

// Name returns human readable name for job.
func (l sequential) Name() string {
	return name
}
