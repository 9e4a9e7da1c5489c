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
	"time"

	"github.com/gocql/gocql"
	"github.com/pkg/errors"
)

// CassandraConfig holds connection parameters for Cassandra.
type CassandraConfig struct {
	Address           string
	Port              int
	Username          string
	Password          string
	ConnectionTimeout time.Duration
	Timeout           time.Duration
	KeyspaceName      string
	CreateKeyspace    bool
	SslEnabled        bool
	SslHostValidation bool
	SslCAPath         string
	SslCertPath       string
	SslKeyPath        string
}

// Cassandra stores metadata in Cassandra table.
type Cassandra struct {
	experimentID string
	config       CassandraConfig
	session      *gocql.Session
}

// DefaultCassandraConfig returns config based on flags.
func DefaultCassandraConfig() CassandraConfig {
	return CassandraConfig{
		Address:           CassandraAddress.Value(),
		Port:              CassandraPort.Value(),
		Username:          CassandraUsername.Value(),
		Password:          CassandraPassword.Value(),
		ConnectionTimeout: CassandraConnectionTimeout.Value(),
		Timeout:           CassandraTimeout.Value(),
		KeyspaceName:      CassandraKeyspaceName.Value(),
		CreateKeyspace:    CassandraCreateKeyspace.Value(),
		SslEnabled:        CassandraSslEnabled.Value(),
		SslHostValidation: CassandraSslHostValidation.Value(),
		SslCAPath:         CassandraSslCAPath.Value(),
		SslCertPath:       CassandraSslCertPath.Value(),
		SslKeyPath:        CassandraSslKeyPath.Value(),
	}
}

// NewCassandra connects to Cassandra and makes sure metadata table exists.
func NewCassandra(experimentID string, config CassandraConfig) (Metadata, error) {
	metadata := &Cassandra{
		experimentID: experimentID,
		config:       config,
	}
	if err := metadata.connect(); err != nil {
		return nil, errors.Wrapf(err, "cannot connect to cassandra at %s:%d", config.Address, config.Port)
	}
	return metadata, nil
}

func (m *Cassandra) sslOptions() *gocql.SslOptions {
	return &gocql.SslOptions{
		EnableHostVerification: m.config.SslHostValidation,
		CaPath:                 m.config.SslCAPath,
		CertPath:               m.config.SslCertPath,
		KeyPath:                m.config.SslKeyPath,
	}
}

func (m *Cassandra) clusterConfig() *gocql.ClusterConfig {
	cluster := gocql.NewCluster(m.config.Address)
	cluster.Port = m.config.Port
	cluster.Consistency = gocql.LocalOne
	cluster.SerialConsistency = gocql.LocalSerial
	cluster.ProtoVersion = 4
	if m.config.ConnectionTimeout > 0 {
		cluster.ConnectTimeout = m.config.ConnectionTimeout
	}
	if m.config.Timeout > 0 {
		cluster.Timeout = m.config.Timeout
	}

	if m.config.Username != "" && m.config.Password != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: m.config.Username,
			Password: m.config.Password,
		}
	}
	if m.config.SslEnabled {
		cluster.SslOpts = m.sslOptions()
	}

	return cluster
}

func (m *Cassandra) createKeyspace() error {
	session, err := m.clusterConfig().CreateSession()
	if err != nil {
		return errors.Wrap(err, "cannot create session for creating keyspace")
	}
	defer session.Close()

	query := fmt.Sprintf("CREATE KEYSPACE IF NOT EXISTS %s WITH REPLICATION = {'class': 'SimpleStrategy', 'replication_factor': 1};", m.config.KeyspaceName)
	return errors.Wrap(session.Query(query).Exec(), "cannot create keyspace")
}

func (m *Cassandra) connect() error {
	if m.config.CreateKeyspace {
		if err := m.createKeyspace(); err != nil {
			return err
		}
	}

	cluster := m.clusterConfig()
	cluster.Keyspace = m.config.KeyspaceName

	session, err := cluster.CreateSession()
	if err != nil {
		return errors.Wrap(err, "cannot create session")
	}
	m.session = session

	err = session.Query("CREATE TABLE IF NOT EXISTS metadata (experiment_id text, kind text, time timestamp, timeuuid TIMEUUID, metadata map<text,text>, PRIMARY KEY ((experiment_id), timeuuid),) WITH CLUSTERING ORDER BY (timeuuid DESC);").Exec()
	return errors.Wrap(err, "cannot create metadata table")
}

func (m *Cassandra) storeMap(metadata map[string]string, kind string) error {
	err := m.session.Query(`INSERT INTO metadata (experiment_id, kind, time, timeuuid, metadata) VALUES (?, ?, ?, ?, ?)`,
		m.experimentID, kind, time.Now(), gocql.TimeUUID(), metadata).Exec()
	return errors.Wrapf(err, "cannot publish metadata of kind %q", kind)
}

// Record implements Metadata interface.
func (m *Cassandra) Record(key, value, kind string) error {
	return m.storeMap(map[string]string{key: value}, kind)
}

// RecordMap implements Metadata interface.
func (m *Cassandra) RecordMap(metadata map[string]string, kind string) error {
	return m.storeMap(metadata, kind)
}

// GetByKind implements Metadata interface.
func (m *Cassandra) GetByKind(kind string) (map[string]string, error) {
	var metadata map[string]string
	maps := []map[string]string{}

	iter := m.session.Query(`SELECT metadata FROM metadata WHERE experiment_id = ? AND kind = ? ALLOW FILTERING`, m.experimentID, kind).Iter()
	for iter.Scan(&metadata) {
		maps = append(maps, metadata)
		metadata = nil
	}
	if err := iter.Close(); err != nil {
		return nil, errors.Wrapf(err, "cannot query metadata of kind %q", kind)
	}

	// Only one map per experiment and kind is expected.
	if len(maps) != 1 {
		return nil, errors.Errorf("cannot retrieve metadata for experiment ID %q and %q kind", m.experimentID, kind)
	}
	return maps[0], nil
}

// Clear implements Metadata interface.
func (m *Cassandra) Clear() error {
	err := m.session.Query(`DELETE FROM metadata WHERE experiment_id = ?`, m.experimentID).Exec()
	return errors.Wrapf(err, "cannot clear metadata of experiment %q", m.experimentID)
}
