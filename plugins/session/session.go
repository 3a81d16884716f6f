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

package session

import (
	"context"
	"sync"
	"time"

	"github.com/ligato/cn-infra/infra"
	"github.com/ligato/cn-infra/logging"
	"github.com/pkg/errors"

	"github.com/contiv/slroute/pkg/oneshot"
	"github.com/contiv/slroute/pkg/slapi"
	"github.com/contiv/slroute/plugins/slclient"
	"github.com/contiv/slroute/plugins/statscollector"
)

const (
	// DefaultStreamTimeout is the deadline of the notification stream.
	DefaultStreamTimeout = 365 * 24 * time.Hour
	// DefaultShutdownGrace is how long Close waits for the watchdog before
	// the notification stream is cancelled.
	DefaultShutdownGrace = 30 * time.Second
	// DefaultGlobalsTimeout bounds the SLGlobalsGet RPC.
	DefaultGlobalsTimeout = 10 * time.Second
	// DefaultUnregisterTimeout bounds the VRF cleanup run on shutdown.
	DefaultUnregisterTimeout = 10 * time.Second
)

// Session owns the global notification stream of the SL-API.
// It performs the version handshake and watches the stream for the
// lifetime of the agent.
type Session struct {
	Deps

	ready  *oneshot.Signal
	done   chan struct{}
	cancel context.CancelFunc

	mu        sync.Mutex
	state     State
	err       error
	remoteVer [3]uint32
	globals   *slapi.SLGlobalsGetMsgRsp
	endReason string
}

// Deps groups the dependencies of the Session.
type Deps struct {
	infra.PluginDeps
	Transport slclient.API
	Stats     statscollector.API

	// VRF is unregistered by the shutdown sequence, can be nil.
	VRF VrfCleaner

	// ExitSignal is shared with the rest of the agent, created by NewSession
	// if not injected.
	ExitSignal *oneshot.Signal

	StreamTimeout  time.Duration
	GlobalsTimeout time.Duration
	// ShutdownGrace <= 0 makes Close wait for the watchdog forever.
	ShutdownGrace time.Duration
}

// Init opens the notification stream, starts the watchdog and blocks until
// the handshake completes. Handshake failures are returned as FatalError.
// ErrInterrupted is returned if the exit signal is set from outside before
// the handshake. A session ended by the router before the handshake is fatal.
func (s *Session) Init() error {
	s.done = make(chan struct{})

	var ctx context.Context
	ctx, s.cancel = context.WithTimeout(context.Background(), s.StreamTimeout)

	s.setState(StateInitializing)
	initMsg := &slapi.SLInitMsg{
		MajorVer: slapi.SL_MAJOR_VERSION,
		MinorVer: slapi.SL_MINOR_VERSION,
		SubVer:   slapi.SL_SUB_VERSION,
	}
	s.Log.WithFields(logging.Fields{
		"major": initMsg.MajorVer,
		"minor": initMsg.MinorVer,
		"sub":   initMsg.SubVer,
	}).Info("Opening SL-API notification stream")

	stream, err := s.Transport.Global().SLGlobalInitNotif(ctx, initMsg)
	if err != nil {
		s.cancel()
		close(s.done)
		err = NewFatalError(errors.Wrap(err, "failed to open notification stream"))
		s.fail(err)
		return err
	}

	go s.watchdog(stream)

	select {
	case <-s.ready.Done():
		return nil
	case <-s.done:
	case <-s.ExitSignal.Done():
		s.cancel()
		<-s.done
	}
	return s.handshakeErr()
}

// handshakeErr tells why the watchdog ended before Init returned.
func (s *Session) handshakeErr() error {
	if s.ready.IsSet() {
		return nil
	}
	if err := s.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	reason := s.endReason
	s.mu.Unlock()
	if reason != "" {
		err := NewFatalError(errors.Errorf("session ended before the handshake completed: %s", reason))
		s.mu.Lock()
		s.err = err
		s.mu.Unlock()
		return err
	}
	return ErrInterrupted
}

// Close sets the exit signal and waits for the watchdog to run the shutdown
// sequence. The stream is cancelled if the watchdog does not finish within
// ShutdownGrace.
func (s *Session) Close() error {
	if s.done == nil {
		return nil
	}
	s.ExitSignal.Set()

	if s.ShutdownGrace > 0 {
		timer := time.NewTimer(s.ShutdownGrace)
		defer timer.Stop()
		select {
		case <-s.done:
		case <-timer.C:
			s.Log.Warnf("Notification stream quiet for %v after exit, cancelling it", s.ShutdownGrace)
			s.cancel()
			<-s.done
		}
	} else {
		<-s.done
	}
	s.cancel()
	return nil
}

// Ready is set once the version handshake succeeded.
func (s *Session) Ready() oneshot.Waiter {
	return s.ready
}

// Exit returns the exit signal.
func (s *Session) Exit() *oneshot.Signal {
	return s.ExitSignal
}

// Done is closed when the watchdog has finished.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// State returns the current session state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Version returns the API version reported by the router.
func (s *Session) Version() (major, minor, sub uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remoteVer[0], s.remoteVer[1], s.remoteVer[2]
}

// Err returns the error that failed the session.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// FetchGlobals reads and logs the global limits of the router.
func (s *Session) FetchGlobals(ctx context.Context) (*slapi.SLGlobalsGetMsgRsp, error) {
	if s.GlobalsTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.GlobalsTimeout)
		defer cancel()
	}

	rsp, err := s.Transport.Global().SLGlobalsGet(ctx, &slapi.SLGlobalsGetMsg{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SL-API globals")
	}
	if code := rsp.GetErrStatus().GetStatus(); code != slapi.SLErrorStatus_SL_SUCCESS {
		return nil, errors.Errorf("SL-API globals returned %s", code)
	}

	s.Log.WithFields(logging.Fields{
		"maxVrfNameLength":       rsp.MaxVrfNameLength,
		"maxInterfaceNameLength": rsp.MaxInterfaceNameLength,
		"maxPathsPerEntry":       rsp.MaxPathsPerEntry,
		"maxMplsLabelsPerPath":   rsp.MaxMplsLabelsPerPath,
	}).Info("SL-API globals")

	s.mu.Lock()
	s.globals = rsp
	s.mu.Unlock()
	return rsp, nil
}

// MaxMplsLabelsPerPath returns the label stack limit, 0 if not known.
func (s *Session) MaxMplsLabelsPerPath() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.globals.GetMaxMplsLabelsPerPath()
}

func (s *Session) setState(state State) {
	s.mu.Lock()
	prev := s.state
	s.state = state
	s.mu.Unlock()

	if prev != state {
		s.Stats.SessionState(state.String())
		s.Log.Debugf("Session state %v -> %v", prev, state)
	}
}
