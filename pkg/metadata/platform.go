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

package metadata

import (
	"bufio"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/intelsdi-x/scaling/pkg/executor"
	"github.com/intelsdi-x/scaling/pkg/utils/sysctl"
	"github.com/intelsdi-x/scaling/pkg/workloads/mpi"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	// CPUModelNameKey defines a key in the platform metrics map
	CPUModelNameKey = "cpu_model"
	// CPUCountKey defines a key in the platform metrics map
	CPUCountKey = "cpu_count"
	// HostnameKey defines a key in the platform metrics map
	HostnameKey = "hostname"
	// KernelVersionKey defines a key in the platform metrics map
	KernelVersionKey = "kernel_version"
	// OSReleaseKey defines a key in the platform metrics map
	OSReleaseKey = "os_release"
	// CPUTopologyKey defines a key in the platform metrics map
	CPUTopologyKey = "cpu_topology"
	// PowerGovernorKey defines a key in the platform metrics map
	PowerGovernorKey = "power_governor"
	// MPIVersionKey defines a key in the platform metrics map
	MPIVersionKey = "mpi_version"
)

// commandTimeout limits every platform command.
const commandTimeout = 30 * time.Second

// GetPlatformMetrics gathers hardware and OS details of the host where shell runs commands,
// so with remote shell they describe the benchmarked machine. Metrics which cannot be read are left empty.
func GetPlatformMetrics(shell executor.Executor) map[string]string {
	readers := []struct {
		key   string
		read func(executor.Executor) (string, error)
	}{
		{CPUModelNameKey, CPUModelName},
		{CPUCountKey, CPUCount},
		{HostnameKey, Hostname},
		{KernelVersionKey, KernelVersion},
		{OSReleaseKey, OSRelease},
		{CPUTopologyKey, CPUTopology},
		{PowerGovernorKey, PowerGovernor},
		{MPIVersionKey, MPIVersion},
	}

	platformMetrics := make(map[string]string, len(readers))
	for _, r := range readers {
		item, err := r.read(shell)
		if err != nil {
			logrus.Warnf("GetPlatformMetrics: Failed to get %s metric. Skipping. Error: %s", r.key, err.Error())
		}
		platformMetrics[r.key] = item
	}
	return platformMetrics
}

// CPUModelName returns model name of the first CPU from /proc/cpuinfo.
func CPUModelName(shell executor.Executor) (string, error) {
	cpuinfo, err := commandOutput(shell, "cat /proc/cpuinfo")
	if err != nil {
		return "", err
	}
	return cpuModelName(strings.NewReader(cpuinfo))
}

func cpuModelName(cpuinfo io.Reader) (string, error) {
	scanner := bufio.NewScanner(cpuinfo)
	for scanner.Scan() {
		chunks := strings.SplitN(scanner.Text(), ":", 2)
		if len(chunks) != 2 {
			continue
		}
		if strings.TrimSpace(chunks[0]) == "model name" {
			return strings.TrimSpace(chunks[1]), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", errors.New("did not find phrase 'model name' in /proc/cpuinfo")
}

// CPUCount returns number of CPUs available for benchmarks.
func CPUCount(shell executor.Executor) (string, error) {
	return commandOutput(shell, "nproc")
}

// Hostname returns name of the host.
func Hostname(shell executor.Executor) (string, error) {
	return commandOutput(shell, "hostname")
}

// KernelVersion returns kernel release.
func KernelVersion(shell executor.Executor) (string, error) {
	return commandOutput(shell, "cat "+sysctl.Path("kernel.osrelease"))
}

// OSRelease returns pretty name of the distribution from /etc/os-release.
func OSRelease(shell executor.Executor) (string, error) {
	content, err := commandOutput(shell, "cat /etc/os-release")
	if err != nil {
		return "", err
	}
	return osReleaseName(content), nil
}

func osReleaseName(content string) string {
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "PRETTY_NAME=") {
			return strings.Trim(strings.TrimPrefix(line, "PRETTY_NAME="), `"`)
		}
	}
	return ""
}

// CPUTopology returns output of "lscpu -e".
func CPUTopology(shell executor.Executor) (string, error) {
	return commandOutput(shell, "lscpu -e")
}

// MPIVersion returns first line of "mpirun --version".
func MPIVersion(shell executor.Executor) (string, error) {
	output, err := commandOutput(shell, mpi.MpirunPathFlag.Value()+" --version")
	if err != nil {
		return "", err
	}
	return strings.SplitN(output, "\n", 2)[0], nil
}

// PowerGovernor returns scaling governor of every CPU as "cpu:governor" list.
func PowerGovernor(shell executor.Executor) (string, error) {
	output, err := commandOutput(shell, "grep -s . /sys/devices/system/cpu/cpu[0-9]*/cpufreq/scaling_governor || true")
	if err != nil {
		return "", err
	}
	return governors(output), nil
}

var governorLine = regexp.MustCompile(`/cpu([0-9]+)/cpufreq/scaling_governor:(\S+)$`)

// governors converts "<path>:<governor>" lines printed by grep into "cpu:governor" list.
func governors(output string) string {
	list := []string{}
	for _, line := range strings.Split(output, "\n") {
		match := governorLine.FindStringSubmatch(strings.TrimSpace(line))
		if match == nil {
			continue
		}
		list = append(list, match[1]+":"+match[2])
	}
	return strings.Join(list, ",")
}

func commandOutput(shell executor.Executor, command string) (string, error) {
	output, err := executor.RunCommand(shell, command, commandTimeout)
	if err != nil {
		return "", errors.Wrapf(err, "failed to get output of %q", command)
	}
	if output.ExitCode != 0 {
		return "", errors.Errorf("%q exited with code %d: %s", command, output.ExitCode, output.Stderr)
	}
	return output.Stdout, nil
}
