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
	"fmt"
	"sort"
	"strings"
)

// Env sets environment variables for the decorated command only.
// Variables are emitted in name order so the resulting command is stable.
type Env map[string]string

// NewEnv returns Env decorator for a single variable.
func NewEnv(name, value string) Env {
	return Env{name: value}
}

// Decorate implements Decorator interface.
func (e Env) Decorate(command string) string {
	if len(e) == 0 {
		return command
	}

	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)

	assignments := make([]string, 0, len(names))
	for _, name := range names {
		assignments = append(assignments, fmt.Sprintf("%s=%s", name, e[name]))
	}

	return fmt.Sprintf("env %s %s", strings.Join(assignments, " "), command)
}
