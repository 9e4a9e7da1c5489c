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

package scaling

import (
	"testing"

	"github.com/intelsdi-x/scaling/pkg/executor/mocks"
	"github.com/intelsdi-x/scaling/pkg/measurement"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPlans(t *testing.T) {
	Convey("While preparing plans with default configuration", t, func() {
		config, err := DefaultConfig()
		So(err, ShouldBeNil)
		So(config.BaseSize, ShouldEqual, 10000000)
		So(config.Threads, ShouldResemble, []int{1, 2, 3, 4, 5, 6, 7, 8})
		So(config.Procs, ShouldResemble, []int{1, 2, 3, 4, 5, 6, 7, 8})
		So(config.RunTimeout, ShouldEqual, 0)

		Convey("Strong scaling starts with sequential baseline and keeps size fixed", func() {
			plan := StrongScalingPlan(config)
			So(plan, ShouldHaveLength, 17)
			So(plan[0], ShouldResemble, Run{Kind: measurement.Sequential, Parallelism: 1, Size: 10000000})
			So(plan[4], ShouldResemble, Run{Kind: measurement.OpenMP, Parallelism: 4, Size: 10000000})
			So(plan[9], ShouldResemble, Run{Kind: measurement.MPI, Parallelism: 1, Size: 10000000})
			So(plan[16], ShouldResemble, Run{Kind: measurement.MPI, Parallelism: 8, Size: 10000000})
		})

		Convey("Weak scaling multiplies size by parallelism", func() {
			plan := WeakScalingPlan(config)
			So(plan, ShouldHaveLength, 16)
			So(plan[0], ShouldResemble, Run{Kind: measurement.OpenMP, Parallelism: 1, Size: 10000000})
			So(plan[7], ShouldResemble, Run{Kind: measurement.OpenMP, Parallelism: 8, Size: 80000000})
			So(plan[10], ShouldResemble, Run{Kind: measurement.MPI, Parallelism: 3, Size: 30000000})
		})
	})

	Convey("Runs should describe themselves", t, func() {
		So(Run{Kind: measurement.OpenMP, Parallelism: 4, Size: 10}.String(), ShouldEqual, "project_omp with 4 threads and size 10")
		So(Run{Kind: measurement.MPI, Parallelism: 2, Size: 10}.String(), ShouldEqual, "project_mpi with 2 processes and size 10")
		So(Run{Kind: measurement.Sequential, Parallelism: 1, Size: 10}.String(), ShouldEqual, "project (sequential) with size 10")
	})

	Convey("Degrees must be positive integers", t, func() {
		degrees, err := ParseDegrees([]string{"1", "16"})
		So(err, ShouldBeNil)
		So(degrees, ShouldResemble, []int{1, 16})

		_, err = ParseDegrees([]string{"0"})
		So(err, ShouldNotBeNil)
		_, err = ParseDegrees([]string{"four"})
		So(err, ShouldNotBeNil)
	})
}

func TestWorkloadFactory(t *testing.T) {
	Convey("While creating launchers", t, func() {
		exec := new(mocks.Executor)
		handle := new(mocks.TaskHandle)
		factory := NewWorkloadFactory(exec)

		Convey("Sequential run should use only size", func() {
			exec.On("Execute", "./project 100").Return(handle, nil).Once()
			launcher, err := factory.Create(Run{Kind: measurement.Sequential, Parallelism: 1, Size: 100})
			So(err, ShouldBeNil)
			_, err = launcher.Launch()
			So(err, ShouldBeNil)
		})

		Convey("OpenMP run should set threads", func() {
			exec.On("Execute", "env OMP_NUM_THREADS=3 ./project_omp 300 3").Return(handle, nil).Once()
			launcher, err := factory.Create(Run{Kind: measurement.OpenMP, Parallelism: 3, Size: 300})
			So(err, ShouldBeNil)
			_, err = launcher.Launch()
			So(err, ShouldBeNil)
		})

		Convey("MPI run should set processes", func() {
			exec.On("Execute", "mpirun -np 5 ./project_mpi 500").Return(handle, nil).Once()
			launcher, err := factory.Create(Run{Kind: measurement.MPI, Parallelism: 5, Size: 500})
			So(err, ShouldBeNil)
			_, err = launcher.Launch()
			So(err, ShouldBeNil)
		})

		Convey("Unknown kind should be rejected", func() {
			_, err := factory.Create(Run{Kind: measurement.Kind("project_cuda"), Parallelism: 1, Size: 1})
			So(err, ShouldNotBeNil)
		})

		exec.AssertExpectations(t)
	})
}
