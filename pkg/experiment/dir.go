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
	"path/filepath"

	"github.com/intelsdi-x/scaling/pkg/conf"
	"github.com/pkg/errors"
)

const logFileName = "harness.log"

// LogDirFlag is a directory where per run directories with logs are created.
var LogDirFlag = conf.NewStringFlag("log_dir", "Directory for experiment logs", "logs")

// CreateExperimentDir creates "<log_dir>/<appName>_<uuid>" directory and log file inside.
func CreateExperimentDir(uuid, appName string) (experimentDirectory string, logFile *os.File, err error) {
	experimentDirectory = filepath.Join(LogDirFlag.Value(), fmt.Sprintf("%s_%s", appName, uuid))

	if err := os.MkdirAll(experimentDirectory, 0755); err != nil {
		return "", nil, errors.Wrapf(err, "cannot create experiment directory %q", experimentDirectory)
	}

	logFile, err = os.OpenFile(filepath.Join(experimentDirectory, logFileName), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return "", nil, errors.Wrapf(err, "cannot create log file in %q", experimentDirectory)
	}

	return experimentDirectory, logFile, nil
}
