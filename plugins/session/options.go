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
	"github.com/ligato/cn-infra/logging"

	"github.com/contiv/slroute/pkg/oneshot"
	"github.com/contiv/slroute/plugins/statscollector"
)

// NewSession creates a new Session with the provided Options.
func NewSession(opts ...Option) *Session {
	s := &Session{ready: oneshot.New()}

	s.PluginName = "session"
	s.StreamTimeout = DefaultStreamTimeout
	s.GlobalsTimeout = DefaultGlobalsTimeout
	s.ShutdownGrace = DefaultShutdownGrace

	for _, o := range opts {
		o(s)
	}

	if s.Log == nil {
		s.Log = logging.ForPlugin(s.String())
	}
	if s.Stats == nil {
		s.Stats = statscollector.Noop
	}
	if s.ExitSignal == nil {
		s.ExitSignal = oneshot.New()
	}

	return s
}

// Option is a function that can be used in NewSession to customize Session.
type Option func(*Session)

// UseDeps returns Option that can inject custom dependencies.
func UseDeps(f func(*Deps)) Option {
	return func(s *Session) {
		f(&s.Deps)
	}
}
