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

// Sl-route-agent keeps an IPv4 route with an MPLS label stack programmed
// in an IOS-XR router over the Service Layer API (SL-API).
//
// The agent opens the SL-API session, registers its VRF, flushes routes left
// over from a previous run and then periodically queries the least utilized
// path between two nodes from the Jalapeño topology database. Whenever the
// path changes, the route is replaced in the router. The VRF is unregistered
// when the agent stops or the router terminates the session.
//
// The SL-API server address is taken from the SERVER_IP and SERVER_PORT
// environment variables or the -server-ip and -server-port flags.
package main
