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

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ligato/cn-infra/logging"
	"github.com/ligato/cn-infra/logging/logrus"
	"github.com/namsral/flag"

	"github.com/contiv/slroute/pkg/config"
	"github.com/contiv/slroute/pkg/oneshot"
	"github.com/contiv/slroute/plugins/pathsource"
	"github.com/contiv/slroute/plugins/reconciler"
	"github.com/contiv/slroute/plugins/route"
	"github.com/contiv/slroute/plugins/session"
	"github.com/contiv/slroute/plugins/slclient"
	"github.com/contiv/slroute/plugins/statscollector"
	"github.com/contiv/slroute/plugins/vrf"
)

var (
	serverIP    = flag.String("server-ip", slclient.DefaultServerIP, "IP address of the SL-API gRPC server")
	serverPort  = flag.Int("server-port", slclient.DefaultServerPort, "port of the SL-API gRPC server")
	configFile  = flag.String("config", "", "location of the agent config file")
	logLevel    = flag.String("log-level", "info", "log level of all agent loggers")
	metricsAddr = flag.String("metrics-address", "", "address where prometheus metrics are served, disabled if empty")
)

var logger logging.Logger // global logger

// init initializes the global logger
func init() {
	logger = logrus.DefaultLogger()
	logger.SetOutput(os.Stdout)
}

type plugin interface {
	Init() error
	Close() error
	String() string
}

func main() {
	os.Exit(run())
}

func run() int {
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		logger.Errorf("Error by loading config: %v", err)
		return 1
	}
	recCfg, err := cfg.ReconcilerConfig()
	if err != nil {
		logger.Errorf("Error by loading config: %v", err)
		return 1
	}

	exit := oneshot.New()

	// wire the plugins
	stats := statscollector.NewPlugin()
	client := slclient.NewPlugin(slclient.UseDeps(func(deps *slclient.Deps) {
		deps.Config = &slclient.Config{ServerIP: *serverIP, ServerPort: *serverPort}
	}))
	registrar := vrf.NewRegistrar(vrf.UseDeps(func(deps *vrf.Deps) {
		deps.Transport = client
		deps.Stats = stats
		deps.Config = cfg.VrfConfig()
	}))
	pusher := route.NewPlugin(route.UseDeps(func(deps *route.Deps) {
		deps.Transport = client
		deps.Stats = stats
		deps.RPCTimeout = cfg.RPCTimeoutDuration()
	}))
	sess := session.NewSession(session.UseDeps(func(deps *session.Deps) {
		deps.Transport = client
		deps.Stats = stats
		deps.VRF = registrar
		deps.ExitSignal = exit
		deps.GlobalsTimeout = cfg.RPCTimeoutDuration()
		deps.ShutdownGrace = cfg.ShutdownGrace()
	}))
	paths := pathsource.NewPlugin(pathsource.UseDeps(func(deps *pathsource.Deps) {
		deps.Config = &cfg.PathSource
	}))
	rec := reconciler.NewReconciler(reconciler.UseDeps(func(deps *reconciler.Deps) {
		deps.PathSource = paths
		deps.Pusher = pusher
		deps.Stats = stats
		deps.Limits = sess
		deps.Exit = exit
		deps.Config = recCfg
	}))

	if err := setLogLevel(*logLevel); err != nil {
		logger.Errorf("Error by setting log level: %v", err)
		return 1
	}

	plugins := []plugin{stats, client, paths, registrar, pusher, rec}
	for i, p := range plugins {
		if err := p.Init(); err != nil {
			logger.Errorf("Error by initializing %s: %v", p, err)
			closePlugins(plugins[:i])
			return 1
		}
	}
	defer closePlugins(plugins)

	if *metricsAddr != "" {
		srv := serveMetrics(*metricsAddr, stats)
		defer srv.Close()
	}

	// convert SIGINT/SIGTERM into the exit signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigChan:
			logger.Infof("%v signal received, exiting", sig)
			exit.Set()
		case <-exit.Done():
		}
	}()

	logger.Infof("Connecting to SL-API server %s", client.Config.Address())
	if err := sess.Init(); err != nil {
		sess.Close()
		if err == session.ErrInterrupted {
			logger.Info("Interrupted before the SL-API session was established")
			return 0
		}
		logger.Errorf("SL-API session failed: %v", err)
		return 1
	}

	ctx := context.Background()
	if _, err := sess.FetchGlobals(ctx); err != nil {
		logger.Warnf("Continuing without SL-API globals: %v", err)
	}

	code := 0
	if err := registrar.VrfCleanup(ctx); err != nil {
		logger.Errorf("Error by registering VRF: %v", err)
		code = 1
	} else if err := rec.Run(); err != nil {
		logger.Errorf("Route reconciliation failed: %v", err)
		code = 1
	}

	// the session unregisters the VRF before it ends
	exit.Set()
	sess.Close()
	code = exitCode(code, sess.Err())
	logger.Info("SL route agent stopped")
	return code
}

// exitCode fails the process if the session ended with a fatal error,
// e.g. a rejected version after the handshake.
func exitCode(code int, sessErr error) int {
	if session.IsFatal(sessErr) {
		logger.Errorf("SL-API session failed: %v", sessErr)
		return 1
	}
	return code
}

// setLogLevel applies the level to every registered logger.
func setLogLevel(level string) error {
	for name := range logging.DefaultRegistry.ListLoggers() {
		if err := logging.DefaultRegistry.SetLevel(name, level); err != nil {
			return err
		}
	}
	return nil
}

func closePlugins(plugins []plugin) {
	for i := len(plugins) - 1; i >= 0; i-- {
		if err := plugins[i].Close(); err != nil {
			logger.Warnf("Error by closing %s: %v", plugins[i], err)
		}
	}
}

func serveMetrics(addr string, stats *statscollector.Plugin) *http.Server {
	mux := http.NewServeMux()
	mux.Handle(statscollector.PrometheusStatsPath, stats.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Errorf("Metrics server failed: %v", err)
		}
	}()
	logger.Infof("Serving metrics on %s%s", addr, statscollector.PrometheusStatsPath)
	return srv
}
