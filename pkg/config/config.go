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

// Package config loads the configuration file of the route agent and
// converts it into the configuration of the individual plugins.
package config

import (
	"io/ioutil"
	"net"
	"time"

	"github.com/apparentlymart/go-cidr/cidr"
	"github.com/ghodss/yaml"
	goerrors "github.com/go-errors/errors"
	"github.com/pkg/errors"

	"github.com/contiv/slroute/plugins/pathsource"
	"github.com/contiv/slroute/plugins/reconciler"
	"github.com/contiv/slroute/plugins/vrf"
)

// Config is the content of the agent configuration file.
// Durations are in seconds.
type Config struct {
	VRF        VrfConfig         `json:"vrf"`
	Route      RouteConfig       `json:"route"`
	Reconciler ReconcilerConfig  `json:"reconciler"`
	PathSource pathsource.Config `json:"pathSource"`
	Session    SessionConfig     `json:"session"`

	// RPCTimeout bounds every unary SL-API call.
	RPCTimeout uint32 `json:"rpcTimeout"`
}

// VrfConfig is the VRF the agent registers.
type VrfConfig struct {
	Name          string `json:"name"`
	AdminDistance uint32 `json:"adminDistance"`
	PurgeInterval uint32 `json:"purgeInterval"`
}

// RouteConfig is the static part of the programmed route.
type RouteConfig struct {
	Prefix        string `json:"prefix"`
	AdminDistance uint32 `json:"adminDistance"`
	LoadMetric    uint32 `json:"loadMetric"`
}

// ReconcilerConfig configures the path polling.
type ReconcilerConfig struct {
	Source            string            `json:"source"`
	Destination       string            `json:"destination"`
	PollInterval      uint32            `json:"pollInterval"`
	QueryTimeout      uint32            `json:"queryTimeout"`
	NexthopInterfaces map[string]string `json:"nexthopInterfaces"`
}

// SessionConfig configures the SL-API session.
type SessionConfig struct {
	// ShutdownGrace of 0 waits for the notification stream forever.
	ShutdownGrace uint32 `json:"shutdownGrace"`
}

// Default returns the configuration with default values.
func Default() *Config {
	return &Config{
		VRF: VrfConfig{
			Name:          vrf.DefaultVrfName,
			AdminDistance: vrf.DefaultAdminDistance,
			PurgeInterval: uint32(vrf.DefaultPurgeInterval / time.Second),
		},
		Route: RouteConfig{
			AdminDistance: vrf.DefaultAdminDistance,
			LoadMetric:    24,
		},
		Reconciler: ReconcilerConfig{
			PollInterval: uint32(reconciler.DefaultPollInterval / time.Second),
			QueryTimeout: uint32(reconciler.DefaultQueryTimeout / time.Second),
		},
		PathSource: pathsource.Config{
			Type:   pathsource.ArangoType,
			Arango: pathsource.DefaultArangoConfig(),
		},
		Session: SessionConfig{
			ShutdownGrace: 30,
		},
		RPCTimeout: 10,
	}
}

// Load reads the configuration file over the defaults and validates it.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read reads the configuration file over the defaults. An empty path
// returns the defaults.
func Read(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		yamlFile, err := ioutil.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
		if err := yaml.Unmarshal(yamlFile, cfg); err != nil {
			return nil, errors.Wrapf(err, "failed to parse config file %s", path)
		}
	}
	return cfg, nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.VRF.Name == "" {
		return goerrors.New("vrf.name must not be empty")
	}
	if _, _, err := ParsePrefix(c.Route.Prefix); err != nil {
		return err
	}
	if c.Reconciler.Source == "" || c.Reconciler.Destination == "" {
		return goerrors.New("reconciler.source and reconciler.destination are required")
	}
	if c.Reconciler.PollInterval == 0 {
		return goerrors.New("reconciler.pollInterval must be positive")
	}
	for nh := range c.Reconciler.NexthopInterfaces {
		if ip := net.ParseIP(nh); ip == nil || ip.To4() == nil {
			return goerrors.Errorf("reconciler.nexthopInterfaces: %q is not an IPv4 address", nh)
		}
	}
	switch c.PathSource.Type {
	case pathsource.ArangoType:
		if len(c.PathSource.Arango.Endpoints) == 0 {
			return goerrors.New("pathSource.arango.endpoints must not be empty")
		}
	case pathsource.StaticType:
	default:
		return goerrors.Errorf("unknown pathSource.type %q", c.PathSource.Type)
	}
	return nil
}

// ParsePrefix parses IPv4 prefix in CIDR notation. The address must be
// the network address of the prefix.
func ParsePrefix(prefix string) (net.IP, uint32, error) {
	ip, network, err := net.ParseCIDR(prefix)
	if err != nil {
		return nil, 0, goerrors.Errorf("invalid route.prefix %q: %v", prefix, err)
	}
	if ip.To4() == nil {
		return nil, 0, goerrors.Errorf("route.prefix %q is not IPv4", prefix)
	}
	first, _ := cidr.AddressRange(network)
	if !first.Equal(ip) {
		return nil, 0, goerrors.Errorf("route.prefix %q has host bits set, expected %v", prefix, network)
	}
	ones, _ := network.Mask.Size()
	return ip.To4(), uint32(ones), nil
}

// VrfConfig returns the configuration of the VRF registrar.
func (c *Config) VrfConfig() *vrf.Config {
	return &vrf.Config{
		Registration: vrf.Registration{
			VrfName:       c.VRF.Name,
			AdminDistance: c.VRF.AdminDistance,
			PurgeInterval: seconds(c.VRF.PurgeInterval),
		},
		Timeout: c.RPCTimeoutDuration(),
	}
}

// ReconcilerConfig returns the configuration of the route reconciler.
func (c *Config) ReconcilerConfig() (*reconciler.Config, error) {
	prefix, prefixLen, err := ParsePrefix(c.Route.Prefix)
	if err != nil {
		return nil, err
	}
	intfs := make(map[string]string, len(c.Reconciler.NexthopInterfaces))
	for nh, intf := range c.Reconciler.NexthopInterfaces {
		// keys are matched against the canonical form of the nexthop
		intfs[net.ParseIP(nh).String()] = intf
	}
	return &reconciler.Config{
		Source:            c.Reconciler.Source,
		Destination:       c.Reconciler.Destination,
		VrfName:           c.VRF.Name,
		Prefix:            prefix,
		PrefixLen:         prefixLen,
		AdminDistance:     c.Route.AdminDistance,
		LoadMetric:        c.Route.LoadMetric,
		NexthopInterfaces: intfs,
		PollInterval:      seconds(c.Reconciler.PollInterval),
		QueryTimeout:      seconds(c.Reconciler.QueryTimeout),
	}, nil
}

// RPCTimeoutDuration returns the timeout of unary SL-API calls.
func (c *Config) RPCTimeoutDuration() time.Duration {
	return seconds(c.RPCTimeout)
}

// ShutdownGrace returns the session shutdown grace period.
func (c *Config) ShutdownGrace() time.Duration {
	return seconds(c.Session.ShutdownGrace)
}

func seconds(s uint32) time.Duration {
	return time.Duration(s) * time.Second
}
