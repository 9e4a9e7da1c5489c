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

// Package parser extracts elapsed time reported by benchmarked programs.
package parser

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/intelsdi-x/scaling/pkg/conf"
	"github.com/pkg/errors"
)

// TimeMarkersFlag lists substrings identifying the line with elapsed time.
var TimeMarkersFlag = conf.NewSliceFlag("time_markers", "Substrings marking the output line which ends with elapsed time in seconds", "Time:", "Elapsed time:")

// ErrTimeNotFound is returned when output does not contain a usable elapsed time.
var ErrTimeNotFound = errors.New("elapsed time not found")

// ElapsedTime returns time reported in the output. See ParseElapsedTime.
func ElapsedTime(output string, markers ...string) (float64, error) {
	return ParseElapsedTime(strings.NewReader(output), markers...)
}

// ParseElapsedTime looks for the first line containing any of markers (TimeMarkersFlag when none given)
// and parses its last word as number of seconds. Later matching lines are ignored, so a first
// line without a valid number gives ErrTimeNotFound even when the next one would parse.
func ParseElapsedTime(r io.Reader, markers ...string) (float64, error) {
	if len(markers) == 0 {
		markers = TimeMarkersFlag.Value()
	}

	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return 0, errors.Wrap(err, "cannot read output")
		}
		if containsAny(line, markers) {
			return lineTime(line)
		}
		if err == io.EOF {
			return 0, errors.Wrapf(ErrTimeNotFound, "no line contains any of %q", markers)
		}
	}
}

// lineTime parses last word of the line. Lines have no length limit.
func lineTime(line string) (float64, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, errors.Wrapf(ErrTimeNotFound, "empty line %q", line)
	}
	last := fields[len(fields)-1]

	seconds, err := strconv.ParseFloat(last, 64)
	if err != nil || math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return 0, errors.Wrapf(ErrTimeNotFound, "%q is not a valid time in line %q", truncate(last), truncate(line))
	}
	return seconds, nil
}

// truncate shortens text quoted in errors.
func truncate(text string) string {
	const limit = 200
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "..."
}

func containsAny(line string, markers []string) bool {
	for _, marker := range markers {
		if marker != "" && strings.Contains(line, marker) {
			return true
		}
	}
	return false
}
