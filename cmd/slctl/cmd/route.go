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

package cmd

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/contiv/slroute/pkg/config"
	"github.com/contiv/slroute/plugins/route"
	"github.com/contiv/slroute/plugins/vrf"
)

var routeFlags struct {
	vrf           string
	prefix        string
	adminDistance uint32
	nexthop       string
	intf          string
	loadMetric    uint32
	labels        string
}

func newRouteCmd() *cobra.Command {
	routeCmd := &cobra.Command{
		Use:   "route",
		Short: "Adds or removes an IPv4 route",
	}
	flags := routeCmd.PersistentFlags()
	flags.StringVar(&routeFlags.vrf, "vrf", vrf.DefaultVrfName, "VRF name")
	flags.StringVar(&routeFlags.prefix, "prefix", "", "route prefix in CIDR notation")
	flags.Uint32Var(&routeFlags.adminDistance, "admin-distance", vrf.DefaultAdminDistance, "admin distance of the route")
	flags.StringVar(&routeFlags.nexthop, "nexthop", "", "nexthop IP address")
	flags.StringVar(&routeFlags.intf, "interface", "", "nexthop interface")
	flags.Uint32Var(&routeFlags.loadMetric, "load-metric", 24, "load metric of the path")
	flags.StringVar(&routeFlags.labels, "labels", "", "comma separated MPLS label stack, outermost first")

	routeCmd.AddCommand(&cobra.Command{
		Use:   "add",
		Short: "Adds the route",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return pushRoute(route.OpAdd)
		},
	})
	routeCmd.AddCommand(&cobra.Command{
		Use:   "remove",
		Short: "Removes the route",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return pushRoute(route.OpRemove)
		},
	})
	return routeCmd
}

func parseLabels(labels string) ([]uint32, error) {
	var stack []uint32
	for _, label := range strings.Split(labels, ",") {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		val, err := strconv.ParseUint(label, 10, 32)
		if err != nil {
			return nil, errors.Errorf("invalid label %q", label)
		}
		stack = append(stack, uint32(val))
	}
	return stack, nil
}

func routeFromFlags(op route.Op) (*route.Descriptor, error) {
	prefix, prefixLen, err := config.ParsePrefix(routeFlags.prefix)
	if err != nil {
		return nil, err
	}
	d := &route.Descriptor{
		VrfName:       routeFlags.vrf,
		Prefix:        prefix,
		PrefixLen:     prefixLen,
		AdminDistance: routeFlags.adminDistance,
		NexthopIntf:   routeFlags.intf,
		LoadMetric:    routeFlags.loadMetric,
	}
	if routeFlags.nexthop != "" {
		if d.NexthopIP = net.ParseIP(routeFlags.nexthop); d.NexthopIP == nil {
			return nil, errors.Errorf("invalid nexthop %q", routeFlags.nexthop)
		}
	} else if op == route.OpAdd {
		return nil, errors.New("--nexthop is required for add")
	}
	if d.LabelStack, err = parseLabels(routeFlags.labels); err != nil {
		return nil, err
	}
	if op == route.OpRemove {
		return d, d.ValidateKey()
	}
	return d, d.Validate()
}

func pushRoute(op route.Op) error {
	d, err := routeFromFlags(op)
	if err != nil {
		return err
	}

	c, err := connect()
	if err != nil {
		return err
	}
	defer c.close()

	pusher := route.NewPlugin(route.UseDeps(func(deps *route.Deps) {
		deps.Transport = c.client
	}))

	var res *route.BatchResult
	if op == route.OpAdd {
		res, err = pusher.Add(context.Background(), d)
	} else {
		res, err = pusher.Remove(context.Background(), d)
	}
	if err != nil {
		return err
	}
	fmt.Println(res)
	if !res.Success() {
		return errors.Errorf("route %s of %v failed", op, d)
	}
	return nil
}
