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

package fs

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestReadTail(t *testing.T) {
	Convey("While reading tail of a file", t, func() {
		dir, err := ioutil.TempDir("", "fs_test")
		So(err, ShouldBeNil)
		defer os.RemoveAll(dir)

		path := filepath.Join(dir, "output")
		So(ioutil.WriteFile(path, []byte("one\ntwo\nthree\nfour\n"), 0644), ShouldBeNil)

		Convey("Only requested number of last lines is returned", func() {
			tail, err := ReadTail(path, 2)
			So(err, ShouldBeNil)
			So(tail, ShouldEqual, "three\nfour")
		})

		Convey("Whole file is returned when it is shorter than requested", func() {
			tail, err := ReadTail(path, 10)
			So(err, ShouldBeNil)
			So(tail, ShouldEqual, "one\ntwo\nthree\nfour")
		})

		Convey("Missing file results in error", func() {
			_, err := ReadTail(filepath.Join(dir, "missing"), 2)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestEnsureParentDir(t *testing.T) {
	Convey("Parent directories are created for nested path", t, func() {
		dir, err := ioutil.TempDir("", "fs_test")
		So(err, ShouldBeNil)
		defer os.RemoveAll(dir)

		path := filepath.Join(dir, "logs", "nested", "strong.csv")
		So(EnsureParentDir(path), ShouldBeNil)

		info, err := os.Stat(filepath.Join(dir, "logs", "nested"))
		So(err, ShouldBeNil)
		So(info.IsDir(), ShouldBeTrue)
		So(EnsureParentDir("plain.csv"), ShouldBeNil)
	})
}
