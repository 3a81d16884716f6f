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

package slapi

// Version of the Service Layer API implemented by this binding. It is sent
// in SLInitMsg during the handshake.
const (
	SL_MAJOR_VERSION uint32 = 0
	SL_MINOR_VERSION uint32 = 0
	SL_SUB_VERSION   uint32 = 1
)
