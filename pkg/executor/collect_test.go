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

package executor_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/intelsdi-x/scaling/pkg/executor"
	"github.com/intelsdi-x/scaling/pkg/executor/mocks"
	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCollect(t *testing.T) {
	Convey("While collecting output of a task", t, func() {
		dir, err := ioutil.TempDir("", "collect")
		So(err, ShouldBeNil)
		defer os.RemoveAll(dir)

		stdoutPath := filepath.Join(dir, "stdout")
		stderrPath := filepath.Join(dir, "stderr")
		So(ioutil.WriteFile(stdoutPath, []byte("\n Elapsed time: 2.0 \n\n"), 0644), ShouldBeNil)
		So(ioutil.WriteFile(stderrPath, []byte(""), 0644), ShouldBeNil)

		open := func(path string) func() *os.File {
			return func() *os.File {
				file, err := os.Open(path)
				if err != nil {
					panic(err)
				}
				return file
			}
		}

		handle := new(mocks.TaskHandle)
		handle.On("StdoutFile").Return(open(stdoutPath), nil)
		handle.On("StderrFile").Return(open(stderrPath), nil)
		handle.On("Clean").Return(nil)
		handle.On("EraseOutput").Return(nil)
		handle.On("Address").Return("127.0.0.1")

		Convey("When task finishes successfully output should be trimmed", func() {
			handle.On("Wait", time.Duration(0)).Return(true)
			handle.On("ExitCode").Return(0, nil)

			output, err := executor.Collect(handle, 0)
			So(err, ShouldBeNil)
			So(output.Stdout, ShouldEqual, "Elapsed time: 2.0")
			So(output.Stderr, ShouldEqual, "")
			So(output.Combined(), ShouldEqual, "Elapsed time: 2.0")
			handle.AssertCalled(t, "Clean")
			handle.AssertCalled(t, "EraseOutput")
			handle.AssertNotCalled(t, "Stop")
		})

		Convey("When task exits with failure exit code is reported without error", func() {
			handle.On("Wait", time.Duration(0)).Return(true)
			handle.On("ExitCode").Return(1, nil)

			output, err := executor.Collect(handle, 0)
			So(err, ShouldBeNil)
			So(output.ExitCode, ShouldEqual, 1)
		})

		Convey("When task does not finish in time it should be stopped", func() {
			handle.On("Wait", time.Second).Return(false)
			handle.On("Stop").Return(nil)
			handle.On("ExitCode").Return(-15, nil)

			output, err := executor.Collect(handle, time.Second)
			So(errors.Cause(err), ShouldEqual, executor.ErrTimeout)
			So(output.Stdout, ShouldEqual, "Elapsed time: 2.0")
			handle.AssertCalled(t, "Stop")
			handle.AssertCalled(t, "Clean")
		})
	})
}

func TestRunCommand(t *testing.T) {
	Convey("When executor fails to start command", t, func() {
		exec := new(mocks.Executor)
		exec.On("Execute", "./project 10").Return(nil, errors.New("no such file"))
		exec.On("Name").Return("Mock Executor")

		_, err := executor.RunCommand(exec, "./project 10", 0)

		Convey("Error should be returned", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "no such file")
			exec.AssertExpectations(t)
		})
	})
}
