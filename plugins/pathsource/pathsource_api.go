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
	"net"
)

// Hop is one edge of the computed path.
type Hop struct {
	// NexthopIP is the address of the remote end of the link.
	NexthopIP net.IP
	// SID is the prefix segment identifier of the remote node.
	SID string
}

// API computes the best path between two nodes of the topology.
type API interface {
	// GetLeastUtilizedPath returns the hops of the least utilized path
	// from src to dst in path order. An empty path is not an error.
	GetLeastUtilizedPath(ctx context.Context, src, dst string) ([]Hop, error)
}
