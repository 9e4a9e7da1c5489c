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
	"net"

	"github.com/intelsdi-x/scaling/pkg/isolation"
)

// NewShell returns Local executor for local addresses and Remote one otherwise.
// Both decorate every command with given decorators.
func NewShell(host string, decorators ...isolation.Decorator) (Executor, error) {
	if isLocalAddress(host) {
		return NewLocalIsolated(decorators...), nil
	}
	return NewRemoteFromIP(host, decorators...)
}

func isLocalAddress(host string) bool {
	switch host {
	case "", "local", "localhost":
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
