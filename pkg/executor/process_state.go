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

package executor

import (
	"time"

	"github.com/pkg/errors"
)

// processState tracks termination of a task. Exit code may be read only after exited is closed.
type processState struct {
	exited   chan struct{}
	exitCode int
}

func newProcessState() *processState {
	return &processState{exited: make(chan struct{})}
}

// terminate records exit code and wakes up all waiters. Must be called exactly once.
func (p *processState) terminate(exitCode int) {
	p.exitCode = exitCode
	close(p.exited)
}

func (p *processState) isTerminated() bool {
	select {
	case <-p.exited:
		return true
	default:
		return false
	}
}

// Status implements TaskHandle interface.
func (p *processState) Status() TaskState {
	if p.isTerminated() {
		return TERMINATED
	}
	return RUNNING
}

// ExitCode implements TaskHandle interface.
func (p *processState) ExitCode() (int, error) {
	if !p.isTerminated() {
		return -1, errors.New("task is not terminated")
	}
	return p.exitCode, nil
}

// Wait implements TaskHandle interface.
func (p *processState) Wait(timeout time.Duration) bool {
	if timeout == 0 {
		<-p.exited
		return true
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-p.exited:
		return true
	case <-timer.C:
		return false
	}
}
