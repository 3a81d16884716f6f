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

package slclient

import (
	"github.com/contiv/slroute/pkg/slapi"
)

// API gives access to the SL-API services of the connected router.
type API interface {
	// Global returns client of the SLGlobal service.
	Global() slapi.SLGlobalClient

	// Routev4 returns client of the SLRoutev4Oper service.
	Routev4() slapi.SLRoutev4OperClient
}
