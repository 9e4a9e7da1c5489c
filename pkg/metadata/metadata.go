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
	"github.com/pkg/errors"
)

const (
	// TypeEmpty is used for host and start time.
	TypeEmpty = ""
	// TypeFlags is used for values of all flags.
	TypeFlags = "flags"
	// TypeEnviron is used for SCALING_ environment variables.
	TypeEnviron = "environ"
	// TypePlatform is used for hardware and OS details.
	TypePlatform = "platform"
	// TypeMeasurementsPrefix prefixes kind of recorded datasets, e.g. "measurements_strong_scaling".
	TypeMeasurementsPrefix = "measurements_"
)

// Metadata stores experiment metadata.
type Metadata interface {
	// Record stores a key and value and associates with the experiment id.
	Record(key string, value string, kind string) error
	// RecordMap stores a key and value map and associates with the experiment id.
	RecordMap(metadata map[string]string, kind string) error
	// GetByKind retrives single metadata type from the database.
	// Returns error if no kind or too many groups found.
	GetByKind(kind string) (map[string]string, error)
	// Clear deletes all metadata entries associated with the current experiment id.
	Clear() error
}

// NewDefault returns metadata storage selected by DBFlag.
func NewDefault(experimentID string) (Metadata, error) {
	switch DBFlag.Value() {
	case "none", "":
		return NewMemory(experimentID), nil
	case "cassandra":
		return NewCassandra(experimentID, DefaultCassandraConfig())
	case "influxdb":
		return NewInfluxDB(experimentID, DefaultInfluxDBConfig())
	}
	return nil, errors.Errorf("unsupported database for metadata: %q", DBFlag.Value())
}
