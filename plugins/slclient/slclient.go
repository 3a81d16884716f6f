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

package slclient

import (
	"net"
	"strconv"

	"github.com/ligato/cn-infra/infra"
	"github.com/ligato/cn-infra/logging"
	"github.com/ligato/cn-infra/utils/safeclose"
	"github.com/pkg/errors"
	"google.golang.org/grpc"

	"github.com/contiv/slroute/pkg/slapi"
)

const (
	// DefaultServerIP is used when no server address is configured.
	DefaultServerIP = "127.0.0.1"
	// DefaultServerPort is the default port of the SL-API gRPC server.
	DefaultServerPort = 57777
)

// Config holds the address of the SL-API server.
type Config struct {
	ServerIP   string
	ServerPort int
}

// Address returns the host:port form of the server address.
func (c *Config) Address() string {
	return net.JoinHostPort(c.ServerIP, strconv.Itoa(c.ServerPort))
}

// Plugin owns the gRPC connection to the router.
type Plugin struct {
	Deps

	conn    *grpc.ClientConn
	global  slapi.SLGlobalClient
	routev4 slapi.SLRoutev4OperClient
}

// Deps groups the dependencies of the Plugin.
type Deps struct {
	infra.PluginDeps
	Config *Config

	// DialOptions are appended to the default (insecure) dial options.
	DialOptions []grpc.DialOption
}

// Init opens the connection. The connection is established lazily, the
// first RPC fails if the server is not reachable.
func (p *Plugin) Init() (err error) {
	if p.Config == nil {
		p.Config = &Config{ServerIP: DefaultServerIP, ServerPort: DefaultServerPort}
	}
	addr := p.Config.Address()

	opts := append([]grpc.DialOption{grpc.WithInsecure()}, p.DialOptions...)
	p.conn, err = grpc.Dial(addr, opts...)
	if err != nil {
		return errors.Wrapf(err, "failed to dial SL-API server %s", addr)
	}
	p.global = slapi.NewSLGlobalClient(p.conn)
	p.routev4 = slapi.NewSLRoutev4OperClient(p.conn)

	p.Log.WithFields(logging.Fields{"address": addr}).Info("SL-API client initialized")
	return nil
}

// Close closes the connection.
func (p *Plugin) Close() error {
	return safeclose.Close(p.conn)
}

// Global returns client of the SLGlobal service.
func (p *Plugin) Global() slapi.SLGlobalClient {
	return p.global
}

// Routev4 returns client of the SLRoutev4Oper service.
func (p *Plugin) Routev4() slapi.SLRoutev4OperClient {
	return p.routev4
}
