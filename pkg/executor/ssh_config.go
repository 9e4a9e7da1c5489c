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
	"io/ioutil"
	"net"
	"os"
	"os/user"
	"path/filepath"
	"strconv"

	"github.com/intelsdi-x/scaling/pkg/conf"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

const (
	// DefaultSSHPort represent default port of SSH server (22).
	DefaultSSHPort    = 22
	defaultSSHKeyPath = ".ssh/id_rsa"
	knownHostsPath    = ".ssh/known_hosts"
)

var (
	sshUserFlag    = conf.NewStringFlag("ssh_user", "Login used for remote execution (current user if empty)", "")
	sshKeyPathFlag = conf.NewStringFlag("ssh_key_path", "Private key used for remote execution (~/.ssh/id_rsa if empty)", "")
	sshPortFlag    = conf.NewIntFlag("ssh_port", "Port of SSH server on remote host", DefaultSSHPort)
)

// SSHConfig with clientConfig, host and port to connect.
type SSHConfig struct {
	ClientConfig *ssh.ClientConfig
	Host         string
	Port         int
}

// Address returns host:port pair for dialing.
func (c SSHConfig) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func getAuthMethod(keyPath string) (ssh.AuthMethod, error) {
	buffer, err := ioutil.ReadFile(keyPath)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read ssh key %q", keyPath)
	}

	key, err := ssh.ParsePrivateKey(buffer)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse ssh key %q", keyPath)
	}

	return ssh.PublicKeys(key), nil
}

func getHostKeyCallback(homeDir string) ssh.HostKeyCallback {
	path := filepath.Join(homeDir, knownHostsPath)
	callback, err := knownhosts.New(path)
	if err != nil {
		log.Warnf("Cannot use %q for host key verification (%v), remote host keys will not be verified", path, err)
		return ssh.InsecureIgnoreHostKey()
	}
	return callback
}

// NewSSHConfig creates a new ssh config for given host, port and user.
func NewSSHConfig(host string, port int, user *user.User) (*SSHConfig, error) {
	keyPath := sshKeyPathFlag.Value()
	if keyPath == "" {
		keyPath = filepath.Join(user.HomeDir, defaultSSHKeyPath)
	}
	if _, err := os.Stat(keyPath); os.IsNotExist(err) {
		return nil, errors.Errorf("SSH key not found in %q", keyPath)
	}

	authMethod, err := getAuthMethod(keyPath)
	if err != nil {
		return nil, err
	}

	login := sshUserFlag.Value()
	if login == "" {
		login = user.Username
	}

	clientConfig := &ssh.ClientConfig{
		User:            login,
		Auth:            []ssh.AuthMethod{authMethod},
		HostKeyCallback: getHostKeyCallback(user.HomeDir),
	}

	return &SSHConfig{
		ClientConfig: clientConfig,
		Host:         host,
		Port:         port,
	}, nil
}
