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

package mocks

import executor "github.com/intelsdi-x/scaling/pkg/executor"
import mock "github.com/stretchr/testify/mock"
import scaling "github.com/intelsdi-x/scaling/pkg/experiment/scaling"

// LauncherFactory is an autogenerated mock type for the LauncherFactory type
type LauncherFactory struct {
	mock.Mock
}

// Create provides a mock function with given fields: run
func (_m *LauncherFactory) Create(run scaling.Run) (executor.Launcher, error) {
	ret := _m.Called(run)

	var r0 executor.Launcher
	if rf, ok := ret.Get(0).(func(scaling.Run) executor.Launcher); ok {
		r0 = rf(run)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(executor.Launcher)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(scaling.Run) error); ok {
		r1 = rf(run)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
