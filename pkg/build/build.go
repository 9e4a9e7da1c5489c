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

// Package build prepares benchmarked binaries by invoking external build tool.
package build

import (
	"fmt"
	"strings"

	"github.com/intelsdi-x/scaling/pkg/conf"
	"github.com/intelsdi-x/scaling/pkg/executor"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	// ToolFlag is the build tool.
	ToolFlag = conf.NewStringFlag("build_tool", "Build tool used to produce benchmarked binaries", "make")
	// DirFlag is the directory build tool is run in.
	DirFlag = conf.NewStringFlag("build_dir", "Directory with build files of benchmarked binaries", ".")
	// CleanTargetFlag is the target removing previous build artifacts.
	CleanTargetFlag = conf.NewStringFlag("build_clean_target", "Target removing previous build artifacts (skipped if empty)", "fclean")
	// TargetFlag is the target building all binaries.
	TargetFlag = conf.NewStringFlag("build_target", "Target building all benchmarked binaries", "all")
)

// Config describes how binaries are built.
type Config struct {
	Tool        string
	Dir         string
	CleanTarget string
	Target      string
}

// DefaultConfig returns config based on flags.
func DefaultConfig() Config {
	return Config{
		Tool:        ToolFlag.Value(),
		Dir:         DirFlag.Value(),
		CleanTarget: CleanTargetFlag.Value(),
		Target:      TargetFlag.Value(),
	}
}

// Builder runs clean and build targets one after another.
type Builder struct {
	exec executor.Executor
	conf Config
}

// New returns Builder using given executor.
func New(exec executor.Executor, config Config) Builder {
	return Builder{exec: exec, conf: config}
}

// Commands returns build commands in order of execution.
func (b Builder) Commands() []string {
	var targets []string
	if b.conf.CleanTarget != "" {
		targets = append(targets, b.conf.CleanTarget)
	}
	targets = append(targets, b.conf.Target)

	commands := make([]string, 0, len(targets))
	for _, target := range targets {
		command := fmt.Sprintf("%s %s", b.conf.Tool, target)
		if b.conf.Dir != "" && b.conf.Dir != "." {
			command = fmt.Sprintf("%s -C %s %s", b.conf.Tool, b.conf.Dir, target)
		}
		commands = append(commands, command)
	}
	return commands
}

// Build runs all build commands and stops at the first failure.
func (b Builder) Build() error {
	for _, command := range b.Commands() {
		log.Infof("Building: %s", command)

		output, err := executor.RunCommand(b.exec, command, 0)
		if err != nil {
			return errors.Wrap(err, "build failed")
		}
		if output.ExitCode != 0 {
			return errors.Errorf("build command %q failed with exit code %d: %s",
				command, output.ExitCode, lastLines(output.Combined(), 10))
		}
		log.Debugf("Build output of %q:\n%s", command, output.Combined())
	}
	return nil
}

func lastLines(text string, count int) string {
	lines := strings.Split(text, "\n")
	if len(lines) > count {
		lines = lines[len(lines)-count:]
	}
	return strings.Join(lines, "\n")
}
