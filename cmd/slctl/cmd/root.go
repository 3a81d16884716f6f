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
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/contiv/slroute/plugins/session"
	"github.com/contiv/slroute/plugins/slclient"
)

var (
	serverIP   string
	serverPort int
	configFile string
	debug      bool
)

var log = logrus.New()

// conn is an established SL-API session without a VRF of its own, closing
// it does not unregister anything.
type conn struct {
	client *slclient.Plugin
	sess   *session.Session
}

func connect() (*conn, error) {
	client := slclient.NewPlugin(slclient.UseDeps(func(deps *slclient.Deps) {
		deps.Config = &slclient.Config{ServerIP: serverIP, ServerPort: serverPort}
	}))
	if err := client.Init(); err != nil {
		return nil, err
	}
	sess := session.NewSession(session.UseDeps(func(deps *session.Deps) {
		deps.Transport = client
		deps.ShutdownGrace = 500 * time.Millisecond
	}))
	log.Debugf("Connecting to %s", client.Config.Address())
	if err := sess.Init(); err != nil {
		sess.Close()
		client.Close()
		return nil, err
	}
	major, minor, sub := sess.Version()
	log.WithFields(logrus.Fields{
		"major": major,
		"minor": minor,
		"sub":   sub,
	}).Debug("SL-API session established")
	return &conn{client: client, sess: sess}, nil
}

func (c *conn) close() {
	c.sess.Close()
	c.client.Close()
}

func envOrDefault(name, def string) string {
	if val, found := os.LookupEnv(name); found {
		return val
	}
	return def
}

func defaultPort() int {
	port, err := strconv.Atoi(envOrDefault("SERVER_PORT", ""))
	if err != nil {
		return slclient.DefaultServerPort
	}
	return port
}

// Execute will execute the command slctl
func Execute() {
	var rootCmd = &cobra.Command{
		Use:          "slctl",
		Short:        "Runs single SL-API operations against a router",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&serverIP, "server-ip", envOrDefault("SERVER_IP", slclient.DefaultServerIP),
		"IP address of the SL-API gRPC server (SERVER_IP)")
	rootCmd.PersistentFlags().IntVar(&serverPort, "server-port", defaultPort(),
		"port of the SL-API gRPC server (SERVER_PORT)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "location of the agent config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")

	rootCmd.AddCommand(cmdGlobals)
	rootCmd.AddCommand(newVrfCmd())
	rootCmd.AddCommand(newRouteCmd())
	rootCmd.AddCommand(newPathCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var cmdGlobals = &cobra.Command{
	Use:   "globals",
	Short: "Shows global limits of the router",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := connect()
		if err != nil {
			return err
		}
		defer c.close()

		rsp, err := c.sess.FetchGlobals(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("MaxVrfNameLength:       %d\n", rsp.MaxVrfNameLength)
		fmt.Printf("MaxInterfaceNameLength: %d\n", rsp.MaxInterfaceNameLength)
		fmt.Printf("MaxPathsPerEntry:       %d\n", rsp.MaxPathsPerEntry)
		fmt.Printf("MaxPrimaryPathPerEntry: %d\n", rsp.MaxPrimaryPathPerEntry)
		fmt.Printf("MaxBackupPathPerEntry:  %d\n", rsp.MaxBackupPathPerEntry)
		fmt.Printf("MaxMplsLabelsPerPath:   %d\n", rsp.MaxMplsLabelsPerPath)
		return nil
	},
}
