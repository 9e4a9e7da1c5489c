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

package sysctl

import (
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Root is the mount point of sysctl tree.
var Root = "/proc/sys"

// Path returns file of kernel parameter, e.g. "kernel.osrelease" is /proc/sys/kernel/osrelease.
func Path(name string) string {
	return filepath.Join(Root, strings.Replace(name, ".", "/", -1))
}

// Get returns value of kernel parameter read from its Path.
func Get(name string) (string, error) {
	content, err := ioutil.ReadFile(Path(name))
	if err != nil {
		return "", errors.Wrapf(err, "cannot read sysctl %q", name)
	}

	return strings.TrimSuffix(string(content), "\n"), nil
}
