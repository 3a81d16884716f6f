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

	"github.com/go-errors/errors"
)

// StaticHop is a configured hop.
type StaticHop struct {
	NexthopIP string `json:"nexthopIP"`
	SID       string `json:"sid"`
}

// StaticSource always returns the same path.
type StaticSource struct {
	hops []Hop
}

// NewStaticSource parses the configured hops.
func NewStaticSource(hops []StaticHop) (*StaticSource, error) {
	s := &StaticSource{}
	for i, hop := range hops {
		ip := net.ParseIP(hop.NexthopIP)
		if ip == nil {
			return nil, errors.Errorf("static hop %d: invalid nexthop IP %q", i, hop.NexthopIP)
		}
		s.hops = append(s.hops, Hop{NexthopIP: ip, SID: hop.SID})
	}
	return s, nil
}

// GetLeastUtilizedPath returns a copy of the configured path.
func (s *StaticSource) GetLeastUtilizedPath(ctx context.Context, src, dst string) ([]Hop, error) {
	return append([]Hop(nil), s.hops...), nil
}
