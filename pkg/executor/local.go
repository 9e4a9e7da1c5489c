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
	"os/exec"
	"syscall"
	"time"

	"github.com/intelsdi-x/scaling/pkg/isolation"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// killTimeout is how long Stop waits after SIGTERM before sending SIGKILL.
const killTimeout = 5 * time.Second

// Local provides an execution of commands on the local machine.
type Local struct {
	decorators isolation.Decorators
}

// NewLocal returns instance of local executor.
func NewLocal() Local {
	return Local{}
}

// NewLocalIsolated returns instance of local executor which decorates every command with given decorators.
func NewLocalIsolated(decorators ...isolation.Decorator) Local {
	return Local{decorators: decorators}
}

// Name returns user-friendly name of executor.
func (l Local) Name() string {
	return "Local Executor"
}

// Execute runs the command given as input.
// Returned Task Handle is able to stop & monitor the provisioned process.
func (l Local) Execute(command string) (TaskHandle, error) {
	command = l.decorators.Decorate(command)

	stdoutFile, stderrFile, err := createExecutorOutputFiles(command, "local")
	if err != nil {
		return nil, err
	}

	log.Debug("Starting ", command)

	cmd := exec.Command("sh", "-c", command)
	// Own process group lets Stop signal the shell together with its children.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Stdout = stdoutFile
	cmd.Stderr = stderrFile

	if err := cmd.Start(); err != nil {
		output := &taskOutput{stdout: stdoutFile, stderr: stderrFile}
		output.Clean()
		output.EraseOutput()
		return nil, errors.Wrapf(err, "cannot start %q", command)
	}

	log.Debugf("Started %q with pid %d", command, cmd.Process.Pid)

	handle := &localTaskHandle{
		taskOutput:   &taskOutput{stdout: stdoutFile, stderr: stderrFile},
		processState: newProcessState(),
		command:      command,
		pid:          cmd.Process.Pid,
	}

	go func() {
		// Error is ignored, the process state carries everything we need.
		cmd.Wait()
		exitCode := exitCodeFromState(cmd)
		log.Debugf("Ended %q with output in file %q and status code %d", command, stdoutFile.Name(), exitCode)
		handle.terminate(exitCode)
	}()

	return handle, nil
}

func exitCodeFromState(cmd *exec.Cmd) int {
	if cmd.ProcessState == nil {
		return -1
	}
	status, ok := cmd.ProcessState.Sys().(syscall.WaitStatus)
	if !ok {
		return cmd.ProcessState.ExitCode()
	}
	if status.Exited() {
		return status.ExitStatus()
	}
	// Killed by signal.
	return -int(status.Signal())
}

// localTaskHandle implements TaskHandle interface.
type localTaskHandle struct {
	*taskOutput
	*processState
	command string
	pid     int
}

// Stop terminates the whole process group. SIGKILL follows when SIGTERM is ignored.
func (t *localTaskHandle) Stop() error {
	if t.isTerminated() {
		return nil
	}

	// The kill syscall interprets a negated PID N as the process group N belongs to.
	log.Debugf("Sending SIGTERM to process group %d", t.pid)
	if err := syscall.Kill(-t.pid, syscall.SIGTERM); err != nil && err != syscall.ESRCH {
		return errors.Wrapf(err, "cannot terminate %q", t.command)
	}

	if t.Wait(killTimeout) {
		return nil
	}

	log.Warnf("%q did not stop within %s, sending SIGKILL", t.command, killTimeout)
	if err := syscall.Kill(-t.pid, syscall.SIGKILL); err != nil && err != syscall.ESRCH {
		return errors.Wrapf(err, "cannot kill %q", t.command)
	}
	t.Wait(0)

	return nil
}

// Address returns address of host that task was run on.
func (t *localTaskHandle) Address() string {
	return "127.0.0.1"
}
