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
	"strings"
	"testing"
	"time"

	"github.com/influxdata/influxdb/client/v2"
	"github.com/influxdata/influxdb/models"
	"github.com/intelsdi-x/scaling/pkg/executor"
	"github.com/intelsdi-x/scaling/pkg/measurement"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDefaultConfigs(t *testing.T) {
	Convey("While using metadata package", t, func() {
		Convey("Cassandra default config shall have default settings", func() {
			config := DefaultCassandraConfig()
			So(config.Address, ShouldEqual, CassandraAddress.Value())
			So(config.Port, ShouldEqual, 9042)
			So(config.KeyspaceName, ShouldEqual, "scaling")
			So(config.Username, ShouldEqual, CassandraUsername.Value())
			So(config.Password, ShouldEqual, CassandraPassword.Value())
		})

		Convey("InfluxDB default config shall have default settings", func() {
			config := DefaultInfluxDBConfig()
			So(config.dbName, ShouldEqual, InfluxDBName.Value())
			So(config.httpConfig.Addr, ShouldEqual, fmt.Sprintf("http://%s:%d", InfluxDBAddress.Value(), InfluxDBPort.Value()))
			So(config.httpConfig.Username, ShouldEqual, InfluxDBUsername.Value())
		})

		Convey("Without database configured metadata is kept in memory", func() {
			metadata, err := NewDefault("experiment")
			So(err, ShouldBeNil)
			So(metadata, ShouldHaveSameTypeAs, &Memory{})
		})
	})
}

func TestMemory(t *testing.T) {
	Convey("While using in memory metadata", t, func() {
		metadata := NewMemory("experiment")

		So(metadata.Record("key", "value", "kind"), ShouldBeNil)
		values, err := metadata.GetByKind("kind")
		So(err, ShouldBeNil)
		So(values, ShouldResemble, map[string]string{"key": "value"})

		Convey("Kind recorded twice is ambiguous", func() {
			So(metadata.RecordMap(map[string]string{"other": "value"}, "kind"), ShouldBeNil)
			_, err := metadata.GetByKind("kind")
			So(err, ShouldNotBeNil)
		})

		Convey("Cleared metadata is empty", func() {
			So(metadata.Clear(), ShouldBeNil)
			_, err := metadata.GetByKind("kind")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestHelpers(t *testing.T) {
	Convey("While recording experiment details", t, func() {
		metadata := NewMemory("experiment")

		Convey("Dataset records should be stored by kind, parallelism and size", func() {
			dataset := measurement.NewDataset("strong_scaling")
			dataset.Add(measurement.Record{Kind: measurement.Sequential, Parallelism: 1, Size: 100, Time: 2.5})
			dataset.Add(measurement.Record{Kind: measurement.MPI, Parallelism: 4, Size: 100, Time: 0.75})

			So(RecordDataset(metadata, dataset), ShouldBeNil)
			values, err := metadata.GetByKind("measurements_strong_scaling")
			So(err, ShouldBeNil)
			So(values, ShouldResemble, map[string]string{
				"project/1/100":     "2.5",
				"project_mpi/4/100": "0.75",
			})
		})

		Convey("Runtime environment should be stored by kinds", func() {
			os.Setenv("SCALING_METADATA_TEST", "yes")
			defer os.Unsetenv("SCALING_METADATA_TEST")

			So(RecordRuntimeEnv(metadata, time.Now(), executor.NewLocal()), ShouldBeNil)

			environ, err := metadata.GetByKind(TypeEnviron)
			So(err, ShouldBeNil)
			So(environ["SCALING_METADATA_TEST"], ShouldEqual, "yes")

			flags, err := metadata.GetByKind(TypeFlags)
			So(err, ShouldBeNil)
			So(flags, ShouldContainKey, "metadata_db")

			host, err := metadata.GetByKind(TypeEmpty)
			So(err, ShouldBeNil)
			So(host, ShouldContainKey, "host")

			platform, err := metadata.GetByKind(TypePlatform)
			So(err, ShouldBeNil)
			So(platform, ShouldContainKey, CPUCountKey)
			So(platform[CPUCountKey], ShouldNotBeEmpty)
		})
	})
}

func TestPlatformParsers(t *testing.T) {
	Convey("CPU model should be found in cpuinfo", t, func() {
		cpuinfo := "processor\t: 0\nvendor_id\t: GenuineIntel\nmodel name\t: Intel(R) Xeon(R) CPU E5-2699 v4 @ 2.20GHz\n\n"
		model, err := cpuModelName(strings.NewReader(cpuinfo))
		So(err, ShouldBeNil)
		So(model, ShouldEqual, "Intel(R) Xeon(R) CPU E5-2699 v4 @ 2.20GHz")

		_, err = cpuModelName(strings.NewReader("processor\t: 0\n"))
		So(err, ShouldNotBeNil)
	})

	Convey("OS name should be found in os-release", t, func() {
		So(osReleaseName("NAME=\"Ubuntu\"\nPRETTY_NAME=\"Ubuntu 22.04.3 LTS\"\n"), ShouldEqual, "Ubuntu 22.04.3 LTS")
		So(osReleaseName("NAME=Arch"), ShouldEqual, "")
	})

	Convey("InfluxDB results should be flattened without timestamp and prefix", t, func() {
		results := []client.Result{{
			Series: []models.Row{{
				Name:    "metadata",
				Columns: []string{"time", "last_host", "last_time"},
				Values:  [][]interface{}{{"2017-01-01T00:00:00Z", "node-1", nil}},
			}},
		}}
		So(metadataFromResults(results), ShouldResemble, map[string]string{"host": "node-1"})
	})
}
