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

package session

import (
	"context"
	"fmt"

	"github.com/contiv/slroute/pkg/oneshot"
	"github.com/contiv/slroute/pkg/slapi"
)

// API is the read-only view of the SL-API session.
type API interface {
	// Ready is set once the version handshake succeeded.
	Ready() oneshot.Waiter

	// Exit is set when the agent should stop, either on request or because
	// the session was terminated by the router.
	Exit() *oneshot.Signal

	// State returns the current session state.
	State() State

	// Version returns the API version reported by the router.
	Version() (major, minor, sub uint32)

	// Err returns the error that failed the session, if any.
	Err() error

	// FetchGlobals reads the global limits of the router.
	FetchGlobals(ctx context.Context) (*slapi.SLGlobalsGetMsgRsp, error)

	// MaxMplsLabelsPerPath returns the label stack limit of the router,
	// 0 if not known.
	MaxMplsLabelsPerPath() uint32
}

// VrfCleaner unregisters the VRF of the agent when the session ends.
type VrfCleaner interface {
	Cleanup(ctx context.Context) error
}

// State of the session.
type State int32

const (
	// StateUninitialized before Init.
	StateUninitialized State = iota
	// StateInitializing while waiting for the version handshake.
	StateInitializing
	// StateReady after a successful handshake.
	StateReady
	// StateError after a failed handshake.
	StateError
	// StateTerminating while running the shutdown sequence.
	StateTerminating
	// StateTerminated after the shutdown sequence.
	StateTerminated
)

var stateNames = map[State]string{
	StateUninitialized: "uninitialized",
	StateInitializing:  "initializing",
	StateReady:         "ready",
	StateError:         "error",
	StateTerminating:   "terminating",
	StateTerminated:    "terminated",
}

// String returns the name of the state.
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state-%d", int32(s))
}
