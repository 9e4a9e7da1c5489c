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
	"testing"

	"github.com/intelsdi-x/scaling/pkg/executor/mocks"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMPILauncher(t *testing.T) {
	mockedExecutor := new(mocks.Executor)
	mockedTask := new(mocks.TaskHandle)

	Convey("While using MPI launcher", t, func() {
		Convey("with default configuration it should be wrapped by mpirun", func() {
			config := DefaultConfig()
			config.Size = 100
			config.NumProcs = 8
			launcher := New(mockedExecutor, config)

			mockedExecutor.On("Execute", "mpirun -np 8 ./project_mpi 100").Return(mockedTask, nil).Once()

			task, err := launcher.Launch()
			So(err, ShouldBeNil)
			So(task, ShouldEqual, mockedTask)
			So(launcher.Name(), ShouldEqual, "MPI 8 processes")

			mockedExecutor.AssertExpectations(t)
		})

		Convey("with extra mpirun arguments they should precede process count", func() {
			config := DefaultConfig()
			config.MpirunArgs = []string{"--oversubscribe", "--bind-to", "core"}
			config.Size = 200
			config.NumProcs = 2
			launcher := New(mockedExecutor, config)

			mockedExecutor.On("Execute", "mpirun --oversubscribe --bind-to core -np 2 ./project_mpi 200").Return(mockedTask, nil).Once()

			_, err := launcher.Launch()
			So(err, ShouldBeNil)

			mockedExecutor.AssertExpectations(t)
		})
	})
}
