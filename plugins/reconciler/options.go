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

package reconciler

import (
	"github.com/ligato/cn-infra/logging"

	"github.com/contiv/slroute/pkg/oneshot"
	"github.com/contiv/slroute/plugins/statscollector"
)

// NewReconciler creates a new Reconciler with the provided Options.
func NewReconciler(opts ...Option) *Reconciler {
	r := &Reconciler{}

	r.PluginName = "reconciler"

	for _, o := range opts {
		o(r)
	}

	if r.Log == nil {
		r.Log = logging.ForPlugin(r.String())
	}
	if r.Stats == nil {
		r.Stats = statscollector.Noop
	}
	if r.Exit == nil {
		r.Exit = oneshot.New()
	}

	return r
}

// Option is a function that can be used in NewReconciler to customize Reconciler.
type Option func(*Reconciler)

// UseDeps returns Option that can inject custom dependencies.
func UseDeps(f func(*Deps)) Option {
	return func(r *Reconciler) {
		f(&r.Deps)
	}
}
