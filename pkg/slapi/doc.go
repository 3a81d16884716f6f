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

// Package slapi is the Go binding of the subset of the Cisco IOS-XR Service
// Layer API (package "service_layer") used by the route agent: global
// initialization and notifications, IPv4 VRF registration and IPv4 route
// operations.
//
// The message types mirror the layout protoc-gen-gogo produces for the
// service_layer protos, field numbers included, so they interoperate with
// the server on the wire.
package slapi
