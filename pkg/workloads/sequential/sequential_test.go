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
	"errors"
	"testing"

	"github.com/intelsdi-x/scaling/pkg/executor/mocks"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSequentialLauncher(t *testing.T) {
	mockedExecutor := new(mocks.Executor)
	mockedTask := new(mocks.TaskHandle)

	Convey("While using sequential launcher", t, func() {
		config := DefaultConfig()
		So(config.Path, ShouldEqual, "./project")

		config.Size = 10000000
		launcher := New(mockedExecutor, config)
		const validCommand = "./project 10000000"

		Convey("When executor is able to run this command then it should return mocked taskHandle without error", func() {
			mockedExecutor.On("Execute", validCommand).Return(mockedTask, nil).Once()

			task, err := launcher.Launch()
			So(err, ShouldBeNil)
			So(task, ShouldEqual, mockedTask)
			So(launcher.Name(), ShouldEqual, "Sequential")

			mockedExecutor.AssertExpectations(t)
		})

		Convey("When executor isn't able to run this command then it should return error", func() {
			mockedExecutor.On("Execute", validCommand).Return(nil, errors.New("fail to execute")).Once()

			task, err := launcher.Launch()
			So(task, ShouldBeNil)
			So(err.Error(), ShouldEqual, "fail to execute")

			mockedExecutor.AssertExpectations(t)
		})
	})
}
