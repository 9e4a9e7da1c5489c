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
	"sync"

	"github.com/pkg/errors"
)

// Memory keeps metadata in process memory. Used when no database is configured.
type Memory struct {
	experimentID string

	mu      sync.Mutex
	records []memoryRecord
}

type memoryRecord struct {
	kind     string
	metadata map[string]string
}

// NewMemory returns empty in-memory metadata.
func NewMemory(experimentID string) *Memory {
	return &Memory{experimentID: experimentID}
}

// Record implements Metadata interface.
func (m *Memory) Record(key, value, kind string) error {
	return m.RecordMap(map[string]string{key: value}, kind)
}

// RecordMap implements Metadata interface.
func (m *Memory) RecordMap(metadata map[string]string, kind string) error {
	copied := make(map[string]string, len(metadata))
	for key, value := range metadata {
		copied[key] = value
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, memoryRecord{kind: kind, metadata: copied})
	return nil
}

// GetByKind implements Metadata interface.
func (m *Memory) GetByKind(kind string) (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var found []map[string]string
	for _, record := range m.records {
		if record.kind == kind {
			found = append(found, record.metadata)
		}
	}
	if len(found) != 1 {
		return nil, errors.Errorf("cannot retrieve metadata for experiment ID %q and %q kind", m.experimentID, kind)
	}
	return found[0], nil
}

// Clear implements Metadata interface.
func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = nil
	return nil
}
