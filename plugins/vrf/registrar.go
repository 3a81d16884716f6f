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

package vrf

import (
	"context"
	"time"

	"github.com/ligato/cn-infra/infra"
	"github.com/ligato/cn-infra/logging"
	"github.com/pkg/errors"

	"github.com/contiv/slroute/pkg/slapi"
	"github.com/contiv/slroute/plugins/slclient"
	"github.com/contiv/slroute/plugins/statscollector"
)

const (
	// DefaultVrfName is the VRF used when none is configured.
	DefaultVrfName = "default"
	// DefaultAdminDistance of the routes installed by the agent.
	DefaultAdminDistance = 2
	// DefaultPurgeInterval is the time the router keeps stale routes.
	DefaultPurgeInterval = 500 * time.Second
	// DefaultTimeout bounds a single VRF registration RPC.
	DefaultTimeout = 10 * time.Second
)

// Config is the configuration of the VRF registrar.
type Config struct {
	Registration
	Timeout time.Duration
}

// DefaultConfig returns configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Registration: Registration{
			VrfName:       DefaultVrfName,
			AdminDistance: DefaultAdminDistance,
			PurgeInterval: DefaultPurgeInterval,
		},
		Timeout: DefaultTimeout,
	}
}

// Registrar implements API over the SLRoutev4Oper service.
type Registrar struct {
	Deps
}

// Deps groups the dependencies of the Registrar.
type Deps struct {
	infra.PluginDeps
	Transport slclient.API
	Stats     statscollector.API
	Config    *Config
}

// Init is NOOP.
func (r *Registrar) Init() error {
	return nil
}

// Close is NOOP, the VRF is unregistered by the session shutdown.
func (r *Registrar) Close() error {
	return nil
}

// GetRegistration returns the configured VRF.
func (r *Registrar) GetRegistration() Registration {
	return r.Config.Registration
}

// Register sends REGISTER for the VRF.
func (r *Registrar) Register(ctx context.Context, reg Registration) error {
	return r.vrfOp(ctx, slapi.SLRegOp_SL_REGOP_REGISTER, reg)
}

// EndOfFile sends EOF for the VRF.
func (r *Registrar) EndOfFile(ctx context.Context, reg Registration) error {
	return r.vrfOp(ctx, slapi.SLRegOp_SL_REGOP_EOF, reg)
}

// Unregister sends UNREGISTER for the VRF.
func (r *Registrar) Unregister(ctx context.Context, reg Registration) error {
	return r.vrfOp(ctx, slapi.SLRegOp_SL_REGOP_UNREGISTER, reg)
}

// VrfCleanup registers the configured VRF and sends EOF.
func (r *Registrar) VrfCleanup(ctx context.Context) error {
	reg := r.GetRegistration()
	if err := r.Register(ctx, reg); err != nil {
		return err
	}
	return r.EndOfFile(ctx, reg)
}

// Cleanup unregisters the configured VRF.
func (r *Registrar) Cleanup(ctx context.Context) error {
	return r.Unregister(ctx, r.GetRegistration())
}

func opName(op slapi.SLRegOp) string {
	switch op {
	case slapi.SLRegOp_SL_REGOP_REGISTER:
		return "register"
	case slapi.SLRegOp_SL_REGOP_UNREGISTER:
		return "unregister"
	case slapi.SLRegOp_SL_REGOP_EOF:
		return "eof"
	}
	return op.String()
}

func (r *Registrar) vrfOp(ctx context.Context, op slapi.SLRegOp, reg Registration) error {
	name := opName(op)
	msg := &slapi.SLVrfRegMsg{
		Oper: op,
		VrfRegMsgs: []*slapi.SLVrfReg{{
			VrfName:                 reg.VrfName,
			AdminDistance:           reg.AdminDistance,
			VrfPurgeIntervalSeconds: uint32(reg.PurgeInterval / time.Second),
		}},
	}

	if r.Config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Config.Timeout)
		defer cancel()
	}

	rsp, err := r.Transport.Routev4().SLRoutev4VrfRegOp(ctx, msg)
	if err != nil {
		r.Stats.VrfOp(name, "error")
		return errors.Wrapf(err, "VRF %s of %s failed", name, reg.VrfName)
	}

	code := rsp.GetStatusSummary().GetStatus()
	fields := logging.Fields{"op": name, "vrf": reg.VrfName, "status": code}
	if code == slapi.SLErrorStatus_SL_SUCCESS {
		r.Stats.VrfOp(name, "success")
		r.Log.WithFields(fields).Info("VRF operation succeeded")
		return nil
	}

	r.Stats.VrfOp(name, "failed")
	r.Log.WithFields(fields).Warn("VRF operation failed")
	for _, res := range rsp.GetResults() {
		r.Log.WithFields(logging.Fields{
			"op":     name,
			"vrf":    res.VrfName,
			"status": res.GetErrStatus().GetStatus(),
		}).Warn("VRF operation result")
	}
	return nil
}
