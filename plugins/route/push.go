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
	"sync/atomic"
	"time"

	"github.com/ligato/cn-infra/infra"
	"github.com/ligato/cn-infra/logging"
	"github.com/pkg/errors"

	"github.com/contiv/slroute/pkg/slapi"
	"github.com/contiv/slroute/plugins/slclient"
	"github.com/contiv/slroute/plugins/statscollector"
)

// DefaultRPCTimeout bounds a single route batch RPC.
const DefaultRPCTimeout = 10 * time.Second

// Plugin implements Pusher over the SLRoutev4Oper service.
type Plugin struct {
	Deps

	correlator uint64
}

// Deps groups the dependencies of the Plugin.
type Deps struct {
	infra.PluginDeps
	Transport slclient.API
	Stats     statscollector.API

	RPCTimeout time.Duration
}

// Init is NOOP.
func (p *Plugin) Init() error {
	return nil
}

// Close is NOOP.
func (p *Plugin) Close() error {
	return nil
}

// Add installs the route.
func (p *Plugin) Add(ctx context.Context, d *Descriptor) (*BatchResult, error) {
	return p.push(ctx, OpAdd, d)
}

// Remove withdraws the route.
func (p *Plugin) Remove(ctx context.Context, d *Descriptor) (*BatchResult, error) {
	return p.push(ctx, OpRemove, d)
}

func (p *Plugin) push(ctx context.Context, op Op, d *Descriptor) (*BatchResult, error) {
	msg, err := p.buildMsg(op, d)
	if err != nil {
		p.Stats.RouteOp(op.String(), "invalid")
		return nil, err
	}

	if p.RPCTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.RPCTimeout)
		defer cancel()
	}

	rsp, err := p.Transport.Routev4().SLRoutev4Op(ctx, msg)
	if err != nil {
		p.Stats.RouteOp(op.String(), "error")
		return nil, errors.Wrapf(err, "route %s of %s/%d failed", op, d.Prefix, d.PrefixLen)
	}

	res := DecodeBatchResult(op, rsp)
	p.Stats.RouteOp(op.String(), res.Status.String())
	p.logResult(d, res)
	return res, nil
}

// buildMsg encodes the route into a one-route batch. A delete never carries
// the path list.
func (p *Plugin) buildMsg(op Op, d *Descriptor) (*slapi.SLRoutev4Msg, error) {
	if d == nil {
		return nil, errors.New("missing route descriptor")
	}
	validate := d.Validate
	if op == OpRemove {
		validate = d.ValidateKey
	}
	if err := validate(); err != nil {
		return nil, err
	}
	prefix, err := IPv4ToUint32(d.Prefix)
	if err != nil {
		return nil, err
	}

	route := &slapi.SLRoutev4{
		Prefix:    prefix,
		PrefixLen: d.PrefixLen,
		RouteCommon: &slapi.SLRouteCommon{
			AdminDistance: d.AdminDistance,
		},
	}
	msg := &slapi.SLRoutev4Msg{
		Correlator: atomic.AddUint64(&p.correlator, 1),
		VrfName:    d.VrfName,
		Routes:     []*slapi.SLRoutev4{route},
	}

	switch op {
	case OpAdd:
		msg.Oper = slapi.SLObjectOp_SL_OBJOP_ADD
		path := &slapi.SLRoutePath{
			LoadMetric: d.LoadMetric,
		}
		if d.NexthopIP != nil {
			nh, err := IPv4ToUint32(d.NexthopIP)
			if err != nil {
				return nil, err
			}
			path.NexthopAddress = &slapi.SLIpAddress{V4Address: nh}
		}
		if d.NexthopIntf != "" {
			path.NexthopInterface = &slapi.SLInterface{Name: d.NexthopIntf}
		}
		if len(d.LabelStack) > 0 {
			path.LabelStack = append([]uint32(nil), d.LabelStack...)
		}
		route.PathList = []*slapi.SLRoutePath{path}
	case OpRemove:
		msg.Oper = slapi.SLObjectOp_SL_OBJOP_DELETE
	default:
		return nil, errors.Errorf("unsupported route operation %v", op)
	}
	return msg, nil
}

func (p *Plugin) logResult(d *Descriptor, res *BatchResult) {
	fields := logging.Fields{
		"op":     res.Op,
		"vrf":    d.VrfName,
		"prefix": d.Prefix,
		"len":    d.PrefixLen,
	}
	switch res.Status {
	case Success:
		p.Log.WithFields(fields).Infof("Route %s succeeded", res.Op)
	case Partial:
		for _, item := range res.Items {
			p.Log.WithFields(logging.Fields{
				"op":     res.Op,
				"prefix": item.Prefix,
				"len":    item.PrefixLen,
				"status": item.Code,
			}).Error("Route operation failed")
		}
	default:
		fields["status"] = res.Code
		p.Log.WithFields(fields).Errorf("Route %s failed", res.Op)
	}
}
