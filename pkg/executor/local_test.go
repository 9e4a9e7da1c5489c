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
	"testing"
	"time"

	"github.com/intelsdi-x/scaling/pkg/isolation"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLocal(t *testing.T) {
	Convey("While using Local Shell", t, func() {
		l := NewLocal()

		Convey("When command printing to both outputs is run", func() {
			output, err := RunCommand(l, "echo '  Time: 1.5  '; echo failure >&2", 0)

			Convey("Output should be captured and trimmed", func() {
				So(err, ShouldBeNil)
				So(output.Stdout, ShouldEqual, "Time: 1.5")
				So(output.Stderr, ShouldEqual, "failure")
				So(output.Combined(), ShouldEqual, "Time: 1.5\nfailure")
				So(output.ExitCode, ShouldEqual, 0)
			})
		})

		Convey("When command exits with non-zero code", func() {
			output, err := RunCommand(l, "exit 3", 0)

			Convey("Exit code should be returned without error", func() {
				So(err, ShouldBeNil)
				So(output.ExitCode, ShouldEqual, 3)
			})
		})

		Convey("When blocking sleep command is executed", func() {
			task, err := l.Execute("sleep 100")
			So(err, ShouldBeNil)
			defer func() {
				task.Clean()
				task.EraseOutput()
			}()

			Convey("Task should be running", func() {
				So(task.Status(), ShouldEqual, RUNNING)
				_, err := task.ExitCode()
				So(err, ShouldNotBeNil)
				So(task.Stop(), ShouldBeNil)
			})

			Convey("When we wait for task termination with the 1ms timeout it should not terminate", func() {
				So(task.Wait(time.Millisecond), ShouldBeFalse)
				So(task.Status(), ShouldEqual, RUNNING)
				So(task.Stop(), ShouldBeNil)
			})

			Convey("When we stop the task it should be terminated", func() {
				So(task.Stop(), ShouldBeNil)
				So(task.Status(), ShouldEqual, TERMINATED)
				So(task.Wait(0), ShouldBeTrue)

				exitCode, err := task.ExitCode()
				So(err, ShouldBeNil)
				So(exitCode, ShouldNotEqual, 0)

				Convey("And stopping it again is a no-op", func() {
					So(task.Stop(), ShouldBeNil)
				})
			})
		})

		Convey("When collected task does not finish in time", func() {
			task, err := l.Execute("echo started; sleep 100")
			So(err, ShouldBeNil)

			output, err := Collect(task, 200*time.Millisecond)

			Convey("It should be stopped and timeout error returned", func() {
				So(err, ShouldNotBeNil)
				So(task.Status(), ShouldEqual, TERMINATED)
				So(output.Stdout, ShouldEqual, "started")
			})
		})
	})
}

func TestShell(t *testing.T) {
	Convey("Local addresses should be recognized", t, func() {
		So(isLocalAddress(""), ShouldBeTrue)
		So(isLocalAddress("localhost"), ShouldBeTrue)
		So(isLocalAddress("127.0.0.1"), ShouldBeTrue)
		So(isLocalAddress("::1"), ShouldBeTrue)
		So(isLocalAddress("10.0.0.7"), ShouldBeFalse)
		So(isLocalAddress("node-1"), ShouldBeFalse)

		shell, err := NewShell("localhost")
		So(err, ShouldBeNil)
		So(shell, ShouldHaveSameTypeAs, Local{})

		Convey("And decorators should be applied to local commands", func() {
			shell, err := NewShell("local", isolation.NewEnv("SCALING_TEST_VALUE", "42"))
			So(err, ShouldBeNil)

			output, err := RunCommand(shell, "sh -c 'echo $SCALING_TEST_VALUE'", 0)
			So(err, ShouldBeNil)
			So(output.Stdout, ShouldEqual, "42")
		})
	})
}
