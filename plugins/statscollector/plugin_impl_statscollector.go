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

package statscollector

import (
	"net/http"
	"sync"

	"github.com/ligato/cn-infra/infra"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// path where the statistics are exposed
	PrometheusStatsPath = "/metrics"

	opLabel     = "op"
	resultLabel = "result"
	eventLabel  = "event"
	stateLabel  = "state"

	routeOpsMetric        = "routeOperations"
	vrfOpsMetric          = "vrfOperations"
	streamEventsMetric    = "streamEvents"
	reconcileCycleMetric  = "reconcileCycles"
	sessionStateMetric    = "sessionState"
	pathQueryErrorsMetric = "pathQueryErrors"
)

// Plugin collects the statistics of the SL-API session, VRF and route
// operations and publishes them to prometheus.
type Plugin struct {
	Deps
	sync.Mutex

	registry    *prometheus.Registry
	counterVecs map[string]*prometheus.CounterVec
	stateGauge  *prometheus.GaugeVec
	pathErrors  prometheus.Counter
	lastState   string
}

// Deps groups the dependencies of the Plugin.
type Deps struct {
	infra.PluginDeps
}

// Init creates the registry and registers all metrics.
func (p *Plugin) Init() error {
	p.registry = prometheus.NewRegistry()
	p.counterVecs = map[string]*prometheus.CounterVec{}

	for _, statItem := range []struct {
		name   string
		help   string
		labels []string
	}{
		{routeOpsMetric, "Number of route operations sent to the router", []string{opLabel, resultLabel}},
		{vrfOpsMetric, "Number of VRF registration operations sent to the router", []string{opLabel, resultLabel}},
		{streamEventsMetric, "Number of events received on the global notification stream", []string{eventLabel}},
		{reconcileCycleMetric, "Number of route reconciliation cycles", []string{resultLabel}},
	} {
		p.counterVecs[statItem.name] = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: statItem.name,
			Help: statItem.help,
		}, statItem.labels)
	}

	p.stateGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: sessionStateMetric,
		Help: "Current state of the SL-API session (1 for the active state)",
	}, []string{stateLabel})

	p.pathErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: pathQueryErrorsMetric,
		Help: "Number of failed path queries and nexthop lookups",
	})

	// register created vectors to prometheus
	for name, metric := range p.counterVecs {
		if err := p.registry.Register(metric); err != nil {
			p.Log.Errorf("failed to register %v metric %v", name, err)
			return err
		}
	}
	for _, metric := range []prometheus.Collector{p.stateGauge, p.pathErrors} {
		if err := p.registry.Register(metric); err != nil {
			p.Log.Errorf("failed to register metric %v", err)
			return err
		}
	}
	return nil
}

// Close is NOOP.
func (p *Plugin) Close() error {
	return nil
}

// Gatherer returns the registry holding the agent metrics.
func (p *Plugin) Gatherer() prometheus.Gatherer {
	return p.registry
}

// Handler returns HTTP handler exposing the agent metrics.
func (p *Plugin) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{
		ErrorHandling: promhttp.ContinueOnError,
		ErrorLog:      p.Log,
	})
}

// RouteOp counts one route operation.
func (p *Plugin) RouteOp(op, result string) {
	p.counterVecs[routeOpsMetric].WithLabelValues(op, result).Inc()
}

// VrfOp counts one VRF operation.
func (p *Plugin) VrfOp(op, result string) {
	p.counterVecs[vrfOpsMetric].WithLabelValues(op, result).Inc()
}

// StreamEvent counts one notification stream event.
func (p *Plugin) StreamEvent(event string) {
	p.counterVecs[streamEventsMetric].WithLabelValues(event).Inc()
}

// ReconcileCycle counts one reconciliation cycle.
func (p *Plugin) ReconcileCycle(result string) {
	p.counterVecs[reconcileCycleMetric].WithLabelValues(result).Inc()
}

// PathQueryError counts one path query error.
func (p *Plugin) PathQueryError() {
	p.pathErrors.Inc()
}

// SessionState sets the gauge of the given state to 1 and the gauge of the
// previous state to 0.
func (p *Plugin) SessionState(state string) {
	p.Lock()
	defer p.Unlock()

	if p.lastState != "" && p.lastState != state {
		p.stateGauge.WithLabelValues(p.lastState).Set(0)
	}
	p.stateGauge.WithLabelValues(state).Set(1)
	p.lastState = state
}
