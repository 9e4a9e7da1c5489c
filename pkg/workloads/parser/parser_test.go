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

package parser

import (
	"strings"
	"testing"
	"testing/iotest"

	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
)

func TestElapsedTime(t *testing.T) {
	Convey("While extracting elapsed time", t, func() {
		Convey("Time marker line should be parsed", func() {
			seconds, err := ElapsedTime("Time: 3.5")
			So(err, ShouldBeNil)
			So(seconds, ShouldEqual, 3.5)
		})

		Convey("Elapsed time marker line should be parsed among other output", func() {
			seconds, err := ElapsedTime("Vector size: 100\nthreads: 4\nElapsed time: 3.5\nsum = 42")
			So(err, ShouldBeNil)
			So(seconds, ShouldEqual, 3.5)
		})

		Convey("Last token of the line is used", func() {
			seconds, err := ElapsedTime("rank 0 Time: spent 0.000125")
			So(err, ShouldBeNil)
			So(seconds, ShouldEqual, 0.000125)
		})

		Convey("Only the first matching line is consulted", func() {
			seconds, err := ElapsedTime("Time: 1.0\nTime: 2.0")
			So(err, ShouldBeNil)
			So(seconds, ShouldEqual, 1.0)

			_, err = ElapsedTime("Time: N/A\nTime: 2.0")
			So(errors.Cause(err), ShouldEqual, ErrTimeNotFound)
		})

		Convey("Output without marker gives not found", func() {
			_, err := ElapsedTime("Segmentation fault (core dumped)")
			So(errors.Cause(err), ShouldEqual, ErrTimeNotFound)

			_, err = ElapsedTime("")
			So(errors.Cause(err), ShouldEqual, ErrTimeNotFound)
		})

		Convey("Non numeric, negative and infinite values give not found", func() {
			for _, output := range []string{"Time: N/A", "Time:", "Time: -1.0", "Time: +Inf", "Time: NaN"} {
				_, err := ElapsedTime(output)
				So(errors.Cause(err), ShouldEqual, ErrTimeNotFound)
			}
		})

		Convey("Lines longer than default scanner buffer should be read", func() {
			progress := strings.Repeat("#", 70*1024)
			seconds, err := ElapsedTime(progress + "\nTime: 3.5\n")
			So(err, ShouldBeNil)
			So(seconds, ShouldEqual, 3.5)

			seconds, err = ElapsedTime(progress + " Time: 0.25")
			So(err, ShouldBeNil)
			So(seconds, ShouldEqual, 0.25)

			_, err = ElapsedTime("Time: " + progress)
			So(errors.Cause(err), ShouldEqual, ErrTimeNotFound)
			So(len(err.Error()), ShouldBeLessThan, 1024)
		})

		Convey("Read failure should be reported", func() {
			_, err := ParseElapsedTime(iotest.ErrReader(errors.New("broken pipe")))
			So(err, ShouldNotBeNil)
			So(errors.Cause(err), ShouldNotEqual, ErrTimeNotFound)
		})

		Convey("Custom markers can be used", func() {
			seconds, err := ParseElapsedTime(strings.NewReader("Time: 9\nwall clock 2.5"), "wall clock")
			So(err, ShouldBeNil)
			So(seconds, ShouldEqual, 2.5)
		})
	})
}
