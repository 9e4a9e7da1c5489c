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
	"strings"
	"time"

	"github.com/intelsdi-x/scaling/pkg/conf"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// KeepTaskOutputFlag disables removal of output files after the task is collected.
var KeepTaskOutputFlag = conf.NewBoolFlag("keep_task_output", "Keep stdout and stderr files of finished commands", false)

// ErrTimeout is returned by Collect when the task does not finish in time.
var ErrTimeout = errors.New("task did not finish in time")

// Output is everything a finished task has left behind.
type Output struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Combined returns stdout followed by stderr.
func (o Output) Combined() string {
	switch {
	case o.Stderr == "":
		return o.Stdout
	case o.Stdout == "":
		return o.Stderr
	}
	return o.Stdout + "\n" + o.Stderr
}

// Collect waits for the task to finish and gathers its output with leading and trailing whitespace trimmed.
// Timeout equal to zero waits forever. Task which did not finish in time is stopped and ErrTimeout is returned
// together with whatever output it has produced.
// Non-zero exit code is not an error, it is only logged.
func Collect(handle TaskHandle, timeout time.Duration) (Output, error) {
	return collect(handle, timeout, "task", "executor")
}

func collect(handle TaskHandle, timeout time.Duration, command, executorName string) (output Output, err error) {
	finished := handle.Wait(timeout)
	if !finished {
		if stopErr := handle.Stop(); stopErr != nil {
			log.Errorf("Cannot stop task on %q: %v", handle.Address(), stopErr)
		}
	}

	defer func() {
		if cleanErr := handle.Clean(); cleanErr != nil {
			log.Warnf("Cannot clean task on %q: %v", handle.Address(), cleanErr)
		}
		if KeepTaskOutputFlag.Value() {
			return
		}
		if eraseErr := handle.EraseOutput(); eraseErr != nil {
			log.Warnf("Cannot erase output of task on %q: %v", handle.Address(), eraseErr)
		}
	}()

	output.Stdout, err = readOutput(handle.StdoutFile)
	if err != nil {
		return output, errors.Wrap(err, "cannot read stdout")
	}
	output.Stderr, err = readOutput(handle.StderrFile)
	if err != nil {
		return output, errors.Wrap(err, "cannot read stderr")
	}

	output.ExitCode, err = handle.ExitCode()
	if err != nil {
		return output, errors.Wrap(err, "cannot read exit code")
	}

	if !finished || output.ExitCode != 0 {
		LogUnsucessfulExecution(command, executorName, handle)
	} else {
		LogSuccessfulExecution(command, executorName, handle)
	}

	if !finished {
		return output, errors.Wrapf(ErrTimeout, "after %s", timeout)
	}

	return output, nil
}

// RunCommand executes the command and collects its output synchronously.
func RunCommand(executor Executor, command string, timeout time.Duration) (Output, error) {
	handle, err := executor.Execute(command)
	if err != nil {
		return Output{}, errors.Wrapf(err, "cannot execute %q with %s", command, executor.Name())
	}

	output, err := collect(handle, timeout, command, executor.Name())
	if err != nil {
		return output, errors.Wrapf(err, "command %q", command)
	}

	return output, nil
}

func readOutput(open func() (*os.File, error)) (string, error) {
	file, err := open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	content, err := ioutil.ReadAll(file)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(content)), nil
}
