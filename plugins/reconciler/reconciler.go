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
	"context"
	"net"
	"strconv"
	"time"

	"github.com/ligato/cn-infra/infra"
	"github.com/ligato/cn-infra/logging"
	"github.com/pkg/errors"

	"github.com/contiv/slroute/pkg/oneshot"
	"github.com/contiv/slroute/plugins/pathsource"
	"github.com/contiv/slroute/plugins/route"
	"github.com/contiv/slroute/plugins/statscollector"
)

const (
	// DefaultPollInterval is the pause between two reconciliation cycles.
	DefaultPollInterval = 10 * time.Second
	// DefaultQueryTimeout bounds a single path source query.
	DefaultQueryTimeout = 10 * time.Second
)

// Config describes the route kept in sync with the best path.
type Config struct {
	// Source and Destination identify the path endpoints in the topology.
	Source      string
	Destination string

	VrfName       string
	Prefix        net.IP
	PrefixLen     uint32
	AdminDistance uint32
	LoadMetric    uint32

	// NexthopInterfaces maps nexthop IP to the local interface.
	NexthopInterfaces map[string]string

	PollInterval time.Duration
	QueryTimeout time.Duration
}

// LabelLimiter reports the maximum label stack accepted by the router,
// 0 meaning unknown.
type LabelLimiter interface {
	MaxMplsLabelsPerPath() uint32
}

// Reconciler keeps a single route in the router in sync with the least
// utilized path reported by the path source.
type Reconciler struct {
	Deps

	// installed route, nil if none
	installed *route.Descriptor
}

// Deps groups the dependencies of the Reconciler.
type Deps struct {
	infra.PluginDeps
	PathSource pathsource.API
	Pusher     route.Pusher
	Stats      statscollector.API
	// Limits is optional.
	Limits LabelLimiter

	// Exit stops Run.
	Exit   *oneshot.Signal
	Config *Config
}

// Init checks the configuration.
func (r *Reconciler) Init() error {
	if r.Config == nil {
		return errors.New("missing reconciler configuration")
	}
	if r.Config.Prefix.To4() == nil {
		return errors.Errorf("invalid route prefix %v", r.Config.Prefix)
	}
	return nil
}

// Close is NOOP, the installed route is kept in the router until the VRF
// is unregistered.
func (r *Reconciler) Close() error {
	return nil
}

// Installed returns the route currently installed by the reconciler.
func (r *Reconciler) Installed() *route.Descriptor {
	return r.installed
}

// Run reconciles periodically until the exit signal is set. The exit signal
// is checked between cycles. A panic inside a cycle sets the exit signal and
// is returned as an error.
func (r *Reconciler) Run() (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = errors.Errorf("reconciler panicked: %v", rec)
			r.Log.Error(err)
			r.Exit.Set()
		}
	}()

	r.Log.WithFields(logging.Fields{
		"src":      r.Config.Source,
		"dst":      r.Config.Destination,
		"interval": r.Config.PollInterval,
	}).Info("Starting route reconciliation")

	for !r.Exit.IsSet() {
		if err := r.Reconcile(context.Background()); err != nil {
			r.Log.Warnf("Reconciliation cycle failed: %v", err)
		}

		timer := time.NewTimer(r.Config.PollInterval)
		select {
		case <-r.Exit.Done():
		case <-timer.C:
		}
		timer.Stop()
	}

	r.Log.Info("Route reconciliation stopped")
	return nil
}

// Reconcile runs one cycle: queries the path, derives the route and updates
// the router if the route changed. Errors abort only this cycle.
func (r *Reconciler) Reconcile(ctx context.Context) error {
	desired, err := r.desired(ctx)
	if err != nil {
		r.Stats.PathQueryError()
		r.Stats.ReconcileCycle("path-error")
		return err
	}

	if desired.Equal(r.installed) {
		r.Stats.ReconcileCycle("unchanged")
		r.Log.Debugf("Route %v is up to date", desired)
		return nil
	}

	if err := r.apply(ctx, desired); err != nil {
		r.Stats.ReconcileCycle("failed")
		return err
	}
	r.Stats.ReconcileCycle("updated")
	return nil
}

// Install makes d the installed route, replacing the previous one.
func (r *Reconciler) Install(ctx context.Context, d *route.Descriptor) error {
	if d.Equal(r.installed) {
		return nil
	}
	return r.apply(ctx, d)
}

// Withdraw removes the installed route, if any.
func (r *Reconciler) Withdraw(ctx context.Context) error {
	if r.installed == nil {
		return nil
	}
	res, err := r.Pusher.Remove(ctx, r.installed)
	if err != nil {
		return err
	}
	if !res.Success() {
		return errors.Errorf("route remove failed: %v", res)
	}
	r.installed = nil
	return nil
}

// apply removes the installed route and adds d. The installed route is
// updated only after a successful add. It is forgotten when the add fails
// after a successful remove.
func (r *Reconciler) apply(ctx context.Context, d *route.Descriptor) error {
	removed := false
	if r.installed != nil {
		r.Log.Infof("Route changed from %v to %v", r.installed, d)
		res, err := r.Pusher.Remove(ctx, r.installed)
		if err != nil {
			return errors.Wrap(err, "failed to remove previous route")
		}
		removed = res.Success()
	}

	res, err := r.Pusher.Add(ctx, d)
	if err == nil && res.Success() {
		r.installed = d
		return nil
	}
	if removed {
		r.installed = nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to add route")
	}
	return errors.Errorf("route add failed: %v", res)
}

// desired queries the path source and derives the route.
func (r *Reconciler) desired(ctx context.Context) (*route.Descriptor, error) {
	if r.Config.QueryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Config.QueryTimeout)
		defer cancel()
	}
	hops, err := r.PathSource.GetLeastUtilizedPath(ctx, r.Config.Source, r.Config.Destination)
	if err != nil {
		return nil, errors.Wrapf(err, "path query %s -> %s failed", r.Config.Source, r.Config.Destination)
	}
	return r.Derive(hops)
}

// Derive builds the route from the path: the first hop gives the nexthop,
// the SIDs of the remaining hops give the label stack in path order.
func (r *Reconciler) Derive(hops []pathsource.Hop) (*route.Descriptor, error) {
	if len(hops) == 0 {
		return nil, errors.Errorf("no path from %s to %s", r.Config.Source, r.Config.Destination)
	}

	nexthop := hops[0].NexthopIP
	if nexthop == nil {
		return nil, errors.New("first hop has no nexthop address")
	}
	intf, found := r.Config.NexthopInterfaces[nexthop.String()]
	if !found {
		return nil, errors.Errorf("no interface configured for nexthop %v", nexthop)
	}

	labels := []uint32{}
	for _, hop := range hops[1:] {
		label, err := strconv.ParseUint(hop.SID, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid SID %q of hop %v", hop.SID, hop.NexthopIP)
		}
		labels = append(labels, uint32(label))
	}
	if r.Limits != nil {
		if max := r.Limits.MaxMplsLabelsPerPath(); max > 0 && uint32(len(labels)) > max {
			return nil, errors.Errorf("label stack %v exceeds the router limit of %d labels", labels, max)
		}
	}

	d := &route.Descriptor{
		VrfName:       r.Config.VrfName,
		Prefix:        r.Config.Prefix,
		PrefixLen:     r.Config.PrefixLen,
		AdminDistance: r.Config.AdminDistance,
		NexthopIP:     nexthop,
		NexthopIntf:   intf,
		LoadMetric:    r.Config.LoadMetric,
		LabelStack:    labels,
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}
