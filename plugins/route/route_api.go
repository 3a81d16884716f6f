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

package route

import (
	"context"
)

// Pusher sends route operations to the router. Every call is one batch RPC
// carrying a single route. Failures reported by the router are returned in
// the BatchResult, the error is only set for transport and encoding errors.
type Pusher interface {
	// Add installs the route with its full path.
	Add(ctx context.Context, d *Descriptor) (*BatchResult, error)

	// Remove withdraws the route. Path attributes of the descriptor are
	// not sent.
	Remove(ctx context.Context, d *Descriptor) (*BatchResult, error)
}
