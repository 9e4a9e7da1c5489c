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
	"strings"
	"time"

	"github.com/influxdata/influxdb/client/v2"
	"github.com/pkg/errors"
)

const influxMetadata = "metadata"

// InfluxDBConfig holds connection parameters for InfluxDB.
type InfluxDBConfig struct {
	httpConfig     client.HTTPConfig
	dbName         string
	createDatabase bool
}

// InfluxDB stores metadata as points of "metadata" measurement tagged with experiment id and kind.
type InfluxDB struct {
	experimentID string
	session      client.Client
	config       InfluxDBConfig
}

// DefaultInfluxDBConfig returns config based on flags.
func DefaultInfluxDBConfig() InfluxDBConfig {
	return InfluxDBConfig{
		dbName:         InfluxDBName.Value(),
		createDatabase: InfluxDBCreateDatabase.Value(),
		httpConfig: client.HTTPConfig{
			Addr:               fmt.Sprintf("http://%s:%d", InfluxDBAddress.Value(), InfluxDBPort.Value()),
			Username:           InfluxDBUsername.Value(),
			Password:           InfluxDBPassword.Value(),
			InsecureSkipVerify: InfluxDBInsecureSkipVerify.Value(),
		},
	}
}

// NewInfluxDB creates client for InfluxDB and creates database if requested.
func NewInfluxDB(experimentID string, config InfluxDBConfig) (Metadata, error) {
	session, err := client.NewHTTPClient(config.httpConfig)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot create influx client for experiment %s", experimentID)
	}

	metadata := &InfluxDB{
		experimentID: experimentID,
		session:      session,
		config:       config,
	}

	if config.createDatabase {
		if err := metadata.query(fmt.Sprintf("CREATE DATABASE %s", config.dbName), ""); err != nil {
			return nil, errors.Wrapf(err, "cannot create influx database for experiment %s", experimentID)
		}
	}

	return metadata, nil
}

func (m *InfluxDB) query(command, database string) error {
	response, err := m.session.Query(client.Query{Command: command, Database: database})
	if err != nil {
		return errors.Wrapf(err, "query %q failed", command)
	}
	if response.Error() != nil {
		return errors.Wrapf(response.Error(), "response to %q contains error", command)
	}
	return nil
}

func (m *InfluxDB) storeMap(metadata map[string]string, kind string) error {
	batchPoints, err := client.NewBatchPoints(client.BatchPointsConfig{Database: m.config.dbName})
	if err != nil {
		return errors.Wrapf(err, "creation of batch points for InfluxDB failed for metadata kind %q", kind)
	}

	tags := map[string]string{"kind": kind, "experiment_id": m.experimentID}
	fields := make(map[string]interface{}, len(metadata))
	for key, value := range metadata {
		fields[key] = value
	}

	point, err := client.NewPoint(influxMetadata, tags, fields, time.Now())
	if err != nil {
		return errors.Wrapf(err, "cannot create new point, kind %q", kind)
	}
	batchPoints.AddPoint(point)

	if err := m.session.Write(batchPoints); err != nil {
		return errors.Wrapf(err, "cannot publish metadata of kind %q", kind)
	}
	return nil
}

// Record implements Metadata interface.
func (m *InfluxDB) Record(key, value, kind string) error {
	return m.storeMap(map[string]string{key: value}, kind)
}

// RecordMap implements Metadata interface.
func (m *InfluxDB) RecordMap(metadata map[string]string, kind string) error {
	return m.storeMap(metadata, kind)
}

// GetByKind implements Metadata interface.
func (m *InfluxDB) GetByKind(kind string) (map[string]string, error) {
	// Grouping by both tags drops them from returned columns.
	command := fmt.Sprintf("SELECT last(*) FROM %s WHERE experiment_id='%s' AND kind='%s' GROUP BY experiment_id,kind",
		influxMetadata, m.experimentID, kind)

	response, err := m.session.Query(client.Query{Command: command, Database: m.config.dbName})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query influxdb for experiment %s", m.experimentID)
	}
	if response.Error() != nil {
		return nil, errors.Wrapf(response.Error(), "response from influxdb contained error for experiment %s", m.experimentID)
	}

	return metadataFromResults(response.Results), nil
}

// metadataFromResults flattens query results. Column 0 is the timestamp and is skipped, results may be sparse.
func metadataFromResults(results []client.Result) map[string]string {
	metadata := map[string]string{}
	for _, result := range results {
		for _, row := range result.Series {
			for _, value := range row.Values {
				for idx, cell := range value {
					if cell == nil || idx == 0 {
						continue
					}
					column := strings.Replace(row.Columns[idx], "last_", "", 1)
					metadata[column] = fmt.Sprint(cell)
				}
			}
		}
	}
	return metadata
}

// Clear implements Metadata interface.
func (m *InfluxDB) Clear() error {
	command := fmt.Sprintf("DROP SERIES FROM %s WHERE experiment_id='%s'", influxMetadata, m.experimentID)
	return m.query(command, m.config.dbName)
}
