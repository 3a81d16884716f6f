// Copyright (c) 2020 Cisco and/or its affiliates.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at:
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pathsource

import (
	"context"
	"sync"

	"github.com/contiv/slroute/plugins/pathsource"
)

// Result is a queued reply of MockPathSource.
type Result struct {
	Hops []pathsource.Hop
	Err  error
}

// MockPathSource is a mock implementation of the path source. Queued
// results are returned in order, the last one is repeated forever.
type MockPathSource struct {
	sync.Mutex

	results []Result
	queries int
}

// NewMockPathSource is a constructor for MockPathSource.
func NewMockPathSource() *MockPathSource {
	return &MockPathSource{}
}

// SetPath makes every following query return the given hops.
func (m *MockPathSource) SetPath(hops ...pathsource.Hop) {
	m.Lock()
	defer m.Unlock()
	m.results = []Result{{Hops: hops}}
}

// QueueResult adds a reply after the currently queued ones.
func (m *MockPathSource) QueueResult(hops []pathsource.Hop, err error) {
	m.Lock()
	defer m.Unlock()
	m.results = append(m.results, Result{Hops: hops, Err: err})
}

// Queries returns the number of queries received.
func (m *MockPathSource) Queries() int {
	m.Lock()
	defer m.Unlock()
	return m.queries
}

// GetLeastUtilizedPath returns the next queued result.
func (m *MockPathSource) GetLeastUtilizedPath(ctx context.Context, src, dst string) ([]pathsource.Hop, error) {
	m.Lock()
	defer m.Unlock()

	m.queries++
	if len(m.results) == 0 {
		return nil, nil
	}
	res := m.results[0]
	if len(m.results) > 1 {
		m.results = m.results[1:]
	}
	return append([]pathsource.Hop(nil), res.Hops...), res.Err
}
