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

package vrf

import (
	"context"
	"time"
)

// Registration describes a VRF the agent programs routes into.
type Registration struct {
	VrfName       string
	AdminDistance uint32
	// PurgeInterval is how long the router keeps stale routes after
	// the session goes away.
	PurgeInterval time.Duration
}

// API registers VRFs with the router.
// Status codes returned by the router are logged and counted but never
// returned as errors, only transport errors are.
type API interface {
	// Register sends REGISTER for the VRF.
	Register(ctx context.Context, reg Registration) error

	// EndOfFile sends EOF for the VRF, the router may purge every route
	// that was not re-asserted since Register.
	EndOfFile(ctx context.Context, reg Registration) error

	// Unregister sends UNREGISTER for the VRF.
	Unregister(ctx context.Context, reg Registration) error

	// VrfCleanup registers the configured VRF and sends EOF right away,
	// flushing routes left over from a previous run.
	VrfCleanup(ctx context.Context) error

	// Cleanup unregisters the configured VRF.
	Cleanup(ctx context.Context) error

	// GetRegistration returns the configured VRF.
	GetRegistration() Registration
}
