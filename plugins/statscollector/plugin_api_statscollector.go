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

package statscollector

// API collects the agent statistics published to Prometheus.
// All methods are safe for concurrent use.
type API interface {
	// RouteOp counts one route operation (add/remove) by its result.
	RouteOp(op, result string)

	// VrfOp counts one VRF registration operation by its result.
	VrfOp(op, result string)

	// StreamEvent counts one event received on the global notification stream.
	StreamEvent(event string)

	// SessionState publishes the current state of the session.
	SessionState(state string)

	// PathQueryError counts a failed path source query or nexthop lookup.
	PathQueryError()

	// ReconcileCycle counts one reconciliation cycle by its outcome.
	ReconcileCycle(result string)
}

// Noop is an API implementation that drops everything.
var Noop API = noop{}

type noop struct{}

func (noop) RouteOp(op, result string)    {}
func (noop) VrfOp(op, result string)      {}
func (noop) StreamEvent(event string)     {}
func (noop) SessionState(state string)    {}
func (noop) PathQueryError()              {}
func (noop) ReconcileCycle(result string) {}
