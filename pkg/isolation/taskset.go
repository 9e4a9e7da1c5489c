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
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Taskset pins the decorated command to given CPUs.
type Taskset struct {
	CPUs []int
}

// Decorate implements Decorator interface. Empty CPU list leaves the command untouched.
func (t Taskset) Decorate(command string) string {
	if len(t.CPUs) == 0 {
		return command
	}

	cpus := make([]string, 0, len(t.CPUs))
	for _, cpu := range t.CPUs {
		cpus = append(cpus, strconv.Itoa(cpu))
	}

	return fmt.Sprintf("taskset -c %s %s", strings.Join(cpus, ","), command)
}

// ParseCPUList parses list in the format used by taskset and cpuset, e.g. "0-3,8,10-11".
// Returned CPUs are sorted and unique.
func ParseCPUList(list string) ([]int, error) {
	set := map[int]struct{}{}

	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		bounds := strings.SplitN(part, "-", 2)
		first, err := strconv.Atoi(bounds[0])
		if err != nil || first < 0 {
			return nil, errors.Errorf("invalid cpu %q in list %q", bounds[0], list)
		}
		last := first
		if len(bounds) == 2 {
			last, err = strconv.Atoi(bounds[1])
			if err != nil || last < first {
				return nil, errors.Errorf("invalid cpu range %q in list %q", part, list)
			}
		}

		for cpu := first; cpu <= last; cpu++ {
			set[cpu] = struct{}{}
		}
	}

	cpus := make([]int, 0, len(set))
	for cpu := range set {
		cpus = append(cpus, cpu)
	}
	sort.Ints(cpus)

	return cpus, nil
}
