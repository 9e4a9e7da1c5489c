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

package experiment

import (
	"fmt"
	"os"

	"github.com/intelsdi-x/scaling/pkg/conf"
	"github.com/intelsdi-x/scaling/pkg/metadata"
	"github.com/intelsdi-x/scaling/pkg/utils/errutil"
	"github.com/sirupsen/logrus"
)

const (
	// ExSoftware is returned when experiment fails (sysexits.h EX_SOFTWARE).
	ExSoftware = 70
	// ExUsage is returned when flags cannot be parsed (sysexits.h EX_USAGE).
	ExUsage = 64
)

var (
	// Names include dash to exclude them from dumping.
	dumpConfigFlag             = conf.NewBoolFlag("config-dump", "Dump configuration as environment script.", false)
	dumpConfigExperimentIDFlag = conf.NewStringFlag("config-dump-experiment-id", "Dump configuration based on experiment ID stored in metadata.", "")
)

// Configure parses flags and sets log level. When configuration dump is requested it prints it and exits.
func Configure() {
	if err := conf.ParseFlags(); err != nil {
		logrus.Errorf("Cannot parse flags: %q", err.Error())
		os.Exit(ExUsage)
	}
	logrus.SetLevel(conf.LogLevel())

	if dumpConfigFlag.Value() {
		previousExperimentID := dumpConfigExperimentIDFlag.Value()
		if previousExperimentID != "" {
			storage, err := metadata.NewDefault(previousExperimentID)
			errutil.Check(err)
			flags, err := storage.GetByKind(metadata.TypeFlags)
			errutil.Check(err)
			fmt.Println(conf.DumpConfigMap(flags))
		} else {
			fmt.Println(conf.DumpConfig())
		}
		os.Exit(0)
	}
}
