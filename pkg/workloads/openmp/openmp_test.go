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
	"testing"

	"github.com/intelsdi-x/scaling/pkg/executor/mocks"
	. "github.com/smartystreets/goconvey/convey"
)

func TestOpenMPLauncher(t *testing.T) {
	mockedExecutor := new(mocks.Executor)
	mockedTask := new(mocks.TaskHandle)

	Convey("While using OpenMP launcher", t, func() {
		Convey("with default configuration it should run single thread", func() {
			config := DefaultConfig()
			config.Size = 100
			launcher := New(mockedExecutor, config)

			mockedExecutor.On("Execute", "env OMP_NUM_THREADS=1 ./project_omp 100 1").Return(mockedTask, nil).Once()

			task, err := launcher.Launch()
			So(err, ShouldBeNil)
			So(task, ShouldEqual, mockedTask)
			So(launcher.Name(), ShouldEqual, "OpenMP 1 threads")

			mockedExecutor.AssertExpectations(t)
		})

		Convey("with explicit threads it should pass them as argument and in environment", func() {
			config := DefaultConfig()
			config.Path = "/opt/bench/omp"
			config.Size = 400
			config.NumThreads = 4
			launcher := New(mockedExecutor, config)

			mockedExecutor.On("Execute", "env OMP_NUM_THREADS=4 /opt/bench/omp 400 4").Return(mockedTask, nil).Once()

			task, err := launcher.Launch()
			So(err, ShouldBeNil)
			So(task, ShouldEqual, mockedTask)

			mockedExecutor.AssertExpectations(t)
		})
	})
}
