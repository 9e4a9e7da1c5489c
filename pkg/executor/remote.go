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
	"os/user"

	"github.com/intelsdi-x/scaling/pkg/isolation"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/ssh"
)

// Remote provides an execution of commands on a remote host over SSH.
type Remote struct {
	sshConfig  SSHConfig
	decorators isolation.Decorators
}

// NewRemote returns a remote executor instance.
func NewRemote(sshConfig SSHConfig, decorators ...isolation.Decorator) Remote {
	return Remote{
		sshConfig:  sshConfig,
		decorators: decorators,
	}
}

// NewRemoteFromIP returns a remote executor instance for current user, using the ssh flags.
func NewRemoteFromIP(host string, decorators ...isolation.Decorator) (Executor, error) {
	currentUser, err := user.Current()
	if err != nil {
		return nil, errors.Wrap(err, "cannot determine current user")
	}

	sshConfig, err := NewSSHConfig(host, sshPortFlag.Value(), currentUser)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot create ssh configuration for %q", host)
	}

	return NewRemote(*sshConfig, decorators...), nil
}

// Name returns user-friendly name of executor.
func (remote Remote) Name() string {
	return "Remote Executor"
}

// Execute runs the command given as input on the remote host.
// Output of the command is streamed to local files.
func (remote Remote) Execute(command string) (TaskHandle, error) {
	command = remote.decorators.Decorate(command)

	client, err := ssh.Dial("tcp", remote.sshConfig.Address(), remote.sshConfig.ClientConfig)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot connect to %q", remote.sshConfig.Address())
	}

	session, err := client.NewSession()
	if err != nil {
		client.Close()
		return nil, errors.Wrapf(err, "cannot open ssh session to %q", remote.sshConfig.Address())
	}

	// Pseudo terminal makes remote processes die together with the session.
	terminal := ssh.TerminalModes{
		ssh.ECHO:          0,
		ssh.TTY_OP_ISPEED: 14400,
		ssh.TTY_OP_OSPEED: 14400,
	}
	if err := session.RequestPty("xterm", 80, 40, terminal); err != nil {
		session.Close()
		client.Close()
		return nil, errors.Wrap(err, "cannot request pseudo terminal")
	}

	stdoutFile, stderrFile, err := createExecutorOutputFiles(command, "remote")
	if err != nil {
		session.Close()
		client.Close()
		return nil, err
	}
	session.Stdout = stdoutFile
	session.Stderr = stderrFile

	log.Debugf("Starting %q on %q", command, remote.sshConfig.Host)
	if err := session.Start(command); err != nil {
		session.Close()
		client.Close()
		output := &taskOutput{stdout: stdoutFile, stderr: stderrFile}
		output.Clean()
		output.EraseOutput()
		return nil, errors.Wrapf(err, "cannot start %q on %q", command, remote.sshConfig.Host)
	}

	handle := &remoteTaskHandle{
		taskOutput:   &taskOutput{stdout: stdoutFile, stderr: stderrFile},
		processState: newProcessState(),
		session:      session,
		command:      command,
		host:         remote.sshConfig.Host,
	}

	go func() {
		exitCode := exitCodeFromSession(session.Wait())
		log.Debugf("Ended %q on %q with output in file %q and status code %d",
			command, remote.sshConfig.Host, stdoutFile.Name(), exitCode)
		session.Close()
		client.Close()
		handle.terminate(exitCode)
	}()

	return handle, nil
}

func exitCodeFromSession(err error) int {
	if err == nil {
		return 0
	}
	if exitErr, ok := err.(*ssh.ExitError); ok {
		if exitErr.Signal() != "" {
			return -1
		}
		return exitErr.ExitStatus()
	}
	log.Debugf("Remote session ended without exit status: %v", err)
	return -1
}

// remoteTaskHandle implements TaskHandle interface.
type remoteTaskHandle struct {
	*taskOutput
	*processState
	session *ssh.Session
	command string
	host    string
}

// Stop sends SIGTERM to the remote process and closes the session when it does not react.
func (t *remoteTaskHandle) Stop() error {
	if t.isTerminated() {
		return nil
	}

	if err := t.session.Signal(ssh.SIGTERM); err != nil {
		log.Debugf("Cannot signal %q on %q: %v", t.command, t.host, err)
	}

	if t.Wait(killTimeout) {
		return nil
	}

	// Closing the session hangs up the pseudo terminal.
	if err := t.session.Close(); err != nil {
		return errors.Wrapf(err, "cannot close session of %q on %q", t.command, t.host)
	}
	if !t.Wait(killTimeout) {
		return errors.Errorf("%q on %q did not stop", t.command, t.host)
	}

	return nil
}

// Address returns host that task was run on.
func (t *remoteTaskHandle) Address() string {
	return t.host
}

var _ TaskHandle = (*remoteTaskHandle)(nil)
