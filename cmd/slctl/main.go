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

// Slctl runs single SL-API operations against a router: VRF registration,
// route add and remove, global limits and path queries. It is meant for
// bring-up and troubleshooting of the sl-route-agent deployment.
package main

import "github.com/contiv/slroute/cmd/slctl/cmd"

func main() {
	cmd.Execute()
}
