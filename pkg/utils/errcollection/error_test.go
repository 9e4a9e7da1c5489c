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

package errcollection

import (
	"testing"

	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
)

func TestErrorCollection(t *testing.T) {
	Convey("While using ErrorCollection", t, func() {
		var errCollection ErrorCollection

		Convey("Without any error added it should return nil", func() {
			errCollection.Add(nil)
			So(errCollection.GetErrIfAny(), ShouldBeNil)
		})

		Convey("With single error it should return its message", func() {
			errCollection.Add(errors.New("first"))
			So(errCollection.GetErrIfAny().Error(), ShouldEqual, "first")
		})

		Convey("With many errors it should return combined message", func() {
			errCollection.Add(errors.New("first"))
			errCollection.Add(nil)
			errCollection.Add(errors.New("second"))
			So(errCollection.GetErrIfAny().Error(), ShouldEqual, "first; second")
		})
	})
}
