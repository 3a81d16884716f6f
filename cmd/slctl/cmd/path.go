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

	"github.com/spf13/cobra"

	"github.com/contiv/slroute/pkg/config"
	"github.com/contiv/slroute/plugins/pathsource"
	"github.com/contiv/slroute/plugins/reconciler"
)

func newPathCmd() *cobra.Command {
	var src, dst string

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Queries the least utilized path and prints the route derived from it",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Read(configFile)
			if err != nil {
				return err
			}
			if src != "" {
				cfg.Reconciler.Source = src
			}
			if dst != "" {
				cfg.Reconciler.Destination = dst
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			recCfg, err := cfg.ReconcilerConfig()
			if err != nil {
				return err
			}

			paths := pathsource.NewPlugin(pathsource.UseDeps(func(deps *pathsource.Deps) {
				deps.Config = &cfg.PathSource
			}))
			if err := paths.Init(); err != nil {
				return err
			}
			defer paths.Close()

			hops, err := paths.GetLeastUtilizedPath(context.Background(), recCfg.Source, recCfg.Destination)
			if err != nil {
				return err
			}
			for i, hop := range hops {
				fmt.Printf("%2d: nexthop %-16s sid %s\n", i, hop.NexthopIP, hop.SID)
			}

			rec := reconciler.NewReconciler(reconciler.UseDeps(func(deps *reconciler.Deps) {
				deps.Config = recCfg
			}))
			d, err := rec.Derive(hops)
			if err != nil {
				return err
			}
			fmt.Printf("route: %v\n", d)
			return nil
		},
	}
	pathCmd.Flags().StringVar(&src, "src", "", "source node, overrides the config file")
	pathCmd.Flags().StringVar(&dst, "dst", "", "destination node, overrides the config file")
	return pathCmd
}
