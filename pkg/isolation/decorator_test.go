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

package isolation

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDecorators(t *testing.T) {
	Convey("When I want to use env decorator", t, func() {
		Convey("With single variable", func() {
			So(NewEnv("OMP_NUM_THREADS", "4").Decorate("./project_omp 100 4"), ShouldEqual,
				"env OMP_NUM_THREADS=4 ./project_omp 100 4")
		})

		Convey("With many variables they are sorted by name", func() {
			decorator := Env{"B": "2", "A": "1"}
			So(decorator.Decorate("test"), ShouldEqual, "env A=1 B=2 test")
		})

		Convey("Without variables command is not changed", func() {
			So(Env{}.Decorate("test"), ShouldEqual, "test")
		})
	})

	Convey("When I want to use taskset decorator", t, func() {
		Convey("With simple one cpu range", func() {
			So(Taskset{CPUs: []int{1}}.Decorate("test"), ShouldEqual, "taskset -c 1 test")
		})

		Convey("With complex cpu range", func() {
			So(Taskset{CPUs: []int{1, 3, 4, 7, 8}}.Decorate("test"), ShouldEqual, "taskset -c 1,3,4,7,8 test")
		})

		Convey("Without cpus command is not changed", func() {
			So(Taskset{}.Decorate("test"), ShouldEqual, "test")
		})
	})

	Convey("When decorators are chained the last one is outermost", t, func() {
		decorators := Decorators{NewEnv("OMP_NUM_THREADS", "2"), Taskset{CPUs: []int{0, 1}}}
		So(decorators.Decorate("test"), ShouldEqual, "taskset -c 0,1 env OMP_NUM_THREADS=2 test")
	})
}

func TestParseCPUList(t *testing.T) {
	Convey("When parsing cpu list", t, func() {
		Convey("Ranges and single cpus are merged and sorted", func() {
			cpus, err := ParseCPUList("8, 0-2,1")
			So(err, ShouldBeNil)
			So(cpus, ShouldResemble, []int{0, 1, 2, 8})
		})

		Convey("Empty list gives no cpus", func() {
			cpus, err := ParseCPUList("")
			So(err, ShouldBeNil)
			So(cpus, ShouldBeEmpty)
		})

		Convey("Malformed entries are rejected", func() {
			_, err := ParseCPUList("a")
			So(err, ShouldNotBeNil)
			_, err = ParseCPUList("3-1")
			So(err, ShouldNotBeNil)
		})
	})
}
