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
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/intelsdi-x/scaling/pkg/conf"
	"github.com/intelsdi-x/scaling/pkg/executor"
	"github.com/intelsdi-x/scaling/pkg/measurement"
	"github.com/pkg/errors"
)

// RecordRuntimeEnv stores flags, environment, harness host, start time and platform details
// of the host where shell runs benchmarks.
func RecordRuntimeEnv(metadata Metadata, experimentStart time.Time, shell executor.Executor) error {
	if err := recordFlags(metadata); err != nil {
		return err
	}

	if err := recordEnv(metadata, conf.EnvironmentPrefix); err != nil {
		return err
	}

	hostname, err := os.Hostname()
	if err != nil {
		return errors.Wrap(err, "cannot retrieve hostname")
	}
	err = metadata.RecordMap(map[string]string{"time": experimentStart.Format(time.RFC822Z), "host": hostname}, TypeEmpty)
	if err != nil {
		return err
	}

	return recordPlatformMetrics(metadata, shell)
}

func recordFlags(metadata Metadata) error {
	return metadata.RecordMap(conf.GetFlags(), TypeFlags)
}

func recordEnv(metadata Metadata, prefix string) error {
	envMetadata := map[string]string{}
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, prefix) {
			fields := strings.SplitN(env, "=", 2)
			envMetadata[fields[0]] = fields[1]
		}
	}
	return metadata.RecordMap(envMetadata, TypeEnviron)
}

func recordPlatformMetrics(metadata Metadata, shell executor.Executor) error {
	return metadata.RecordMap(GetPlatformMetrics(shell), TypePlatform)
}

// RecordKey returns key under which record is stored, e.g. "project_omp/4/10000000".
func RecordKey(record measurement.Record) string {
	return fmt.Sprintf("%s/%d/%d", record.Kind, record.Parallelism, record.Size)
}

// RecordDataset stores all records of the dataset as a single map of kind TypeMeasurementsPrefix + dataset name.
func RecordDataset(metadata Metadata, dataset measurement.Dataset) error {
	values := make(map[string]string, dataset.Len())
	for _, record := range dataset.Records {
		values[RecordKey(record)] = strconv.FormatFloat(record.Time, 'g', -1, 64)
	}
	return errors.Wrapf(metadata.RecordMap(values, TypeMeasurementsPrefix+dataset.Name),
		"cannot record %s dataset", dataset.Name)
}
