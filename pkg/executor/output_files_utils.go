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

package executor

import (
	"io/ioutil"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/intelsdi-x/scaling/pkg/conf"
	"github.com/intelsdi-x/scaling/pkg/utils/errcollection"
	"github.com/pkg/errors"
)

// TaskOutputDirFlag points where per task output directories are created. Empty means working directory.
var TaskOutputDirFlag = conf.NewStringFlag("task_output_dir", "Directory for stdout and stderr files of executed commands (working directory if empty)", "")

// commandName returns name of the binary executed by command,
// skipping the prefixes added by isolation decorators (env assignments, taskset).
func commandName(command string) (string, error) {
	fields := strings.Fields(command)
	for i := 0; i < len(fields); i++ {
		field := fields[i]
		switch {
		case field == "env":
		case field == "taskset":
			// Skip "-c <cpu list>".
			i += 2
		case strings.Contains(field, "="):
		default:
			return path.Base(field), nil
		}
	}
	return "", errors.Errorf("failed to extract command name from %q", command)
}

// createExecutorOutputFiles creates directory with stdout and stderr files for given command.
func createExecutorOutputFiles(command, prefix string) (stdout, stderr *os.File, err error) {
	if len(command) == 0 {
		return nil, nil, errors.New("empty command string")
	}

	name, err := commandName(command)
	if err != nil {
		return nil, nil, err
	}

	baseDir := TaskOutputDirFlag.Value()
	if baseDir == "" {
		baseDir, err = os.Getwd()
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to get working directory")
		}
	}

	outputDir, err := ioutil.TempDir(baseDir, prefix+"_"+name+"_")
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to create output directory for %q", name)
	}

	stdout, err = os.Create(filepath.Join(outputDir, "stdout"))
	if err != nil {
		os.RemoveAll(outputDir)
		return nil, nil, errors.Wrapf(err, "failed to create stdout file for %q", name)
	}

	stderr, err = os.Create(filepath.Join(outputDir, "stderr"))
	if err != nil {
		stdout.Close()
		os.RemoveAll(outputDir)
		return nil, nil, errors.Wrapf(err, "failed to create stderr file for %q", name)
	}

	return stdout, stderr, nil
}

// taskOutput keeps output files of a task. Files are written by the task and reopened for reading.
type taskOutput struct {
	stdout *os.File
	stderr *os.File
}

// StdoutFile implements TaskHandle interface.
func (o *taskOutput) StdoutFile() (*os.File, error) {
	return os.Open(o.stdout.Name())
}

// StderrFile implements TaskHandle interface.
func (o *taskOutput) StderrFile() (*os.File, error) {
	return os.Open(o.stderr.Name())
}

// Clean implements TaskHandle interface.
func (o *taskOutput) Clean() error {
	var errCollection errcollection.ErrorCollection
	errCollection.Add(o.stdout.Close())
	errCollection.Add(o.stderr.Close())
	return errCollection.GetErrIfAny()
}

// EraseOutput implements TaskHandle interface.
func (o *taskOutput) EraseOutput() error {
	outputDir := filepath.Dir(o.stdout.Name())
	if err := os.RemoveAll(outputDir); err != nil {
		return errors.Wrapf(err, "cannot remove output directory %q", outputDir)
	}
	return nil
}
