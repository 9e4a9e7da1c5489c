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
	"github.com/intelsdi-x/scaling/pkg/conf"
)

var (
	// DBFlag selects metadata storage.
	DBFlag = conf.NewStringFlag("metadata_db", "Database for experiment metadata: none, cassandra or influxdb", "none")

	// CassandraAddress represents cassandra address flag.
	CassandraAddress = conf.NewStringFlag("cassandra_addr", "Address of Cassandra DB endpoint", "127.0.0.1")
	// CassandraPort represents cassandra port flag.
	CassandraPort = conf.NewIntFlag("cassandra_port", "Port of Cassandra DB endpoint", 9042)
	// CassandraUsername represents cassandra username flag.
	CassandraUsername = conf.NewStringFlag("cassandra_username", "The username which will be presented when connecting to the cluster", "")
	// CassandraPassword represents cassandra password flag.
	CassandraPassword = conf.NewStringFlag("cassandra_password", "The password which will be presented when connecting to the cluster", "")
	// CassandraConnectionTimeout represents cassandra connection timeout flag.
	CassandraConnectionTimeout = conf.NewDurationFlag("cassandra_connection_timeout", "Initial connection timeout", 0)
	// CassandraTimeout represents cassandra query timeout flag.
	CassandraTimeout = conf.NewDurationFlag("cassandra_timeout", "Query timeout", 0)
	// CassandraKeyspaceName represents cassandra keyspace flag.
	CassandraKeyspaceName = conf.NewStringFlag("cassandra_keyspace_name", "Keyspace used to store metadata", "scaling")
	// CassandraCreateKeyspace represents flag for creating keyspace.
	CassandraCreateKeyspace = conf.NewBoolFlag("cassandra_create_keyspace", "Create keyspace when it does not exist", true)
	// CassandraSslEnabled represents cassandra SSL flag.
	CassandraSslEnabled = conf.NewBoolFlag("cassandra_ssl", "Determines whether the cassandra connection should use SSL", false)
	// CassandraSslHostValidation represents cassandra SSL host validation flag.
	CassandraSslHostValidation = conf.NewBoolFlag("cassandra_ssl_host_validation", "Validate cassandra hostname in the certificate", false)
	// CassandraSslCAPath represents cassandra CA path flag.
	CassandraSslCAPath = conf.NewStringFlag("cassandra_ssl_ca_path", "Path to the CA certificate", "")
	// CassandraSslCertPath represents cassandra client certificate flag.
	CassandraSslCertPath = conf.NewStringFlag("cassandra_ssl_cert_path", "Path to the client certificate", "")
	// CassandraSslKeyPath represents cassandra client key flag.
	CassandraSslKeyPath = conf.NewStringFlag("cassandra_ssl_key_path", "Path to the client key", "")

	// InfluxDBAddress represents influxdb address flag.
	InfluxDBAddress = conf.NewStringFlag("influxdb_addr", "Address of InfluxDB endpoint", "127.0.0.1")
	// InfluxDBPort represents influxdb port flag.
	InfluxDBPort = conf.NewIntFlag("influxdb_port", "Port of InfluxDB endpoint", 8086)
	// InfluxDBUsername represents influxdb username flag.
	InfluxDBUsername = conf.NewStringFlag("influxdb_username", "InfluxDB username", "")
	// InfluxDBPassword represents influxdb password flag.
	InfluxDBPassword = conf.NewStringFlag("influxdb_password", "InfluxDB password", "")
	// InfluxDBName represents influxdb database flag.
	InfluxDBName = conf.NewStringFlag("influxdb_metadata_db_name", "InfluxDB database name for metadata", "scaling")
	// InfluxDBCreateDatabase represents flag for creating database.
	InfluxDBCreateDatabase = conf.NewBoolFlag("influxdb_create_database", "Create database when it does not exist", true)
	// InfluxDBInsecureSkipVerify represents flag for skipping TLS verification.
	InfluxDBInsecureSkipVerify = conf.NewBoolFlag("influxdb_insecure_skip_verify", "Skip TLS certificate verification", false)
)
