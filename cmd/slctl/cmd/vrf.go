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
	"time"

	"github.com/spf13/cobra"

	"github.com/contiv/slroute/plugins/vrf"
)

var vrfFlags struct {
	name          string
	adminDistance uint32
	purgeInterval uint32
}

func newVrfCmd() *cobra.Command {
	vrfCmd := &cobra.Command{
		Use:   "vrf",
		Short: "Registers, unregisters or sends EOF for a VRF",
	}
	vrfCmd.PersistentFlags().StringVar(&vrfFlags.name, "name", vrf.DefaultVrfName, "VRF name")
	vrfCmd.PersistentFlags().Uint32Var(&vrfFlags.adminDistance, "admin-distance", vrf.DefaultAdminDistance, "admin distance of the VRF")
	vrfCmd.PersistentFlags().Uint32Var(&vrfFlags.purgeInterval, "purge-interval",
		uint32(vrf.DefaultPurgeInterval/time.Second), "purge interval of stale routes in seconds")

	for _, op := range []struct {
		use   string
		short string
		call  func(r *vrf.Registrar, ctx context.Context, reg vrf.Registration) error
	}{
		{"register", "Registers the VRF", (*vrf.Registrar).Register},
		{"eof", "Sends EOF for the VRF, stale routes are purged", (*vrf.Registrar).EndOfFile},
		{"unregister", "Unregisters the VRF", (*vrf.Registrar).Unregister},
	} {
		op := op
		vrfCmd.AddCommand(&cobra.Command{
			Use:   op.use,
			Short: op.short,
			Args:  cobra.ExactArgs(0),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := connect()
				if err != nil {
					return err
				}
				defer c.close()

				reg := vrf.Registration{
					VrfName:       vrfFlags.name,
					AdminDistance: vrfFlags.adminDistance,
					PurgeInterval: time.Duration(vrfFlags.purgeInterval) * time.Second,
				}
				registrar := vrf.NewRegistrar(vrf.UseDeps(func(deps *vrf.Deps) {
					deps.Transport = c.client
				}))
				if err := op.call(registrar, context.Background(), reg); err != nil {
					return err
				}
				fmt.Printf("VRF %s: %s sent\n", reg.VrfName, op.use)
				return nil
			},
		})
	}
	return vrfCmd
}
