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
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/onsi/gomega"

	mock "github.com/contiv/slroute/mock/slapi"
	"github.com/contiv/slroute/pkg/oneshot"
	"github.com/contiv/slroute/pkg/slapi"
	"github.com/contiv/slroute/plugins/vrf"
)

type mockVRF struct {
	sync.Mutex
	exit             *oneshot.Signal
	next             VrfCleaner
	calls            int
	exitSetOnCleanup bool
}

func (m *mockVRF) Cleanup(ctx context.Context) error {
	m.Lock()
	m.calls++
	m.exitSetOnCleanup = m.exit.IsSet()
	m.Unlock()
	if m.next != nil {
		return m.next.Cleanup(ctx)
	}
	return nil
}

func (m *mockVRF) Calls() int {
	m.Lock()
	defer m.Unlock()
	return m.calls
}

func newTestSession(transport *mock.MockTransport) (*Session, *mockVRF) {
	exit := oneshot.New()
	cleaner := &mockVRF{exit: exit}
	s := NewSession(UseDeps(func(deps *Deps) {
		deps.Transport = transport
		deps.VRF = cleaner
		deps.ExitSignal = exit
		deps.ShutdownGrace = 100 * time.Millisecond
	}))
	return s, cleaner
}

func TestHandshake(t *testing.T) {
	gomega.RegisterTestingT(t)

	transport := mock.NewMockTransport()
	transport.Stream.PushVersion(slapi.SLErrorStatus_SL_INIT_STATE_READY)
	s, cleaner := newTestSession(transport)

	gomega.Expect(s.Init()).To(gomega.Succeed())
	gomega.Expect(s.Ready().IsSet()).To(gomega.BeTrue())
	gomega.Expect(s.State()).To(gomega.Equal(StateReady))
	major, minor, sub := s.Version()
	gomega.Expect([]uint32{major, minor, sub}).To(gomega.Equal([]uint32{0, 0, 1}))

	calls := transport.Calls()
	gomega.Expect(calls).To(gomega.HaveLen(1))
	gomega.Expect(calls[0].Request).To(gomega.Equal(&slapi.SLInitMsg{
		MajorVer: slapi.SL_MAJOR_VERSION,
		MinorVer: slapi.SL_MINOR_VERSION,
		SubVer:   slapi.SL_SUB_VERSION,
	}))
	deadline, hasDeadline := transport.Stream.Deadline()
	gomega.Expect(hasDeadline).To(gomega.BeTrue())
	gomega.Expect(deadline).To(gomega.BeTemporally(">", time.Now().Add(364*24*time.Hour)))

	// the stream is quiet, Close cancels it after the grace period
	gomega.Expect(s.Close()).To(gomega.Succeed())
	gomega.Expect(s.Exit().IsSet()).To(gomega.BeTrue())
	gomega.Expect(cleaner.Calls()).To(gomega.Equal(1))
	gomega.Expect(s.State()).To(gomega.Equal(StateTerminated))
}

func TestReadinessGating(t *testing.T) {
	gomega.RegisterTestingT(t)

	transport := mock.NewMockTransport()
	s, _ := newTestSession(transport)
	defer s.Close()

	initErr := make(chan error, 1)
	go func() {
		initErr <- s.Init()
	}()

	gomega.Eventually(transport.Stream.Opened()).Should(gomega.BeClosed())
	gomega.Consistently(initErr, 200*time.Millisecond).ShouldNot(gomega.Receive())
	gomega.Expect(s.Ready().IsSet()).To(gomega.BeFalse())
	gomega.Expect(s.State()).To(gomega.Equal(StateInitializing))
	// nothing but the notification stream is opened before the handshake
	gomega.Expect(transport.Methods()).To(gomega.Equal([]string{mock.InitNotifMethod}))

	transport.Stream.PushVersion(slapi.SLErrorStatus_SL_SUCCESS)
	gomega.Eventually(initErr).Should(gomega.Receive(gomega.BeNil()))
	gomega.Expect(s.Ready().IsSet()).To(gomega.BeTrue())
}

func TestHeartbeatAndErrorsKeepSession(t *testing.T) {
	gomega.RegisterTestingT(t)

	transport := mock.NewMockTransport()
	transport.Stream.PushVersion(slapi.SLErrorStatus_SL_INIT_STATE_CLEAR)
	transport.Stream.PushHeartbeat()
	transport.Stream.PushError(slapi.SLErrorStatus_SL_EAGAIN)
	transport.Stream.PushHeartbeat()
	s, cleaner := newTestSession(transport)
	defer s.Close()

	gomega.Expect(s.Init()).To(gomega.Succeed())
	gomega.Consistently(s.Exit().IsSet, 200*time.Millisecond).Should(gomega.BeFalse())
	gomega.Expect(s.State()).To(gomega.Equal(StateReady))
	gomega.Expect(cleaner.Calls()).To(gomega.BeZero())
}

func TestTerminationByRouter(t *testing.T) {
	gomega.RegisterTestingT(t)

	transport := mock.NewMockTransport()
	transport.Stream.PushVersion(slapi.SLErrorStatus_SL_SUCCESS)
	s, cleaner := newTestSession(transport)
	cleaner.next = vrf.NewRegistrar(vrf.UseDeps(func(deps *vrf.Deps) {
		deps.Transport = transport
	}))

	gomega.Expect(s.Init()).To(gomega.Succeed())
	transport.Stream.PushError(slapi.SLErrorStatus_SL_NOTIF_TERM)

	gomega.Eventually(s.Done()).Should(gomega.BeClosed())
	gomega.Expect(s.Exit().IsSet()).To(gomega.BeTrue())
	gomega.Expect(s.State()).To(gomega.Equal(StateTerminated))
	gomega.Expect(s.Err()).To(gomega.BeNil())

	// unregister runs before the exit signal is set
	gomega.Expect(cleaner.Calls()).To(gomega.Equal(1))
	gomega.Expect(cleaner.exitSetOnCleanup).To(gomega.BeFalse())

	msgs := transport.VrfMsgs()
	gomega.Expect(msgs).To(gomega.HaveLen(1))
	gomega.Expect(msgs[0].Oper).To(gomega.Equal(slapi.SLRegOp_SL_REGOP_UNREGISTER))

	gomega.Expect(s.Close()).To(gomega.Succeed())
	gomega.Expect(cleaner.Calls()).To(gomega.Equal(1))
}

func TestFatalVersion(t *testing.T) {
	gomega.RegisterTestingT(t)

	transport := mock.NewMockTransport()
	transport.Stream.PushVersion(slapi.SLErrorStatus_SL_INIT_UNSUPPORTED_VER)
	s, cleaner := newTestSession(transport)

	err := s.Init()
	gomega.Expect(err).ToNot(gomega.BeNil())
	gomega.Expect(IsFatal(err)).To(gomega.BeTrue())
	_, isFatal := err.(*FatalError)
	gomega.Expect(isFatal).To(gomega.BeTrue())

	gomega.Eventually(s.Done()).Should(gomega.BeClosed())
	gomega.Expect(s.Exit().IsSet()).To(gomega.BeTrue())
	gomega.Expect(s.Ready().IsSet()).To(gomega.BeFalse())
	gomega.Expect(s.State()).To(gomega.Equal(StateError))
	gomega.Expect(cleaner.Calls()).To(gomega.BeZero())
	gomega.Expect(s.Close()).To(gomega.Succeed())
}

func TestFatalVersionAfterReady(t *testing.T) {
	gomega.RegisterTestingT(t)

	transport := mock.NewMockTransport()
	transport.Stream.PushVersion(slapi.SLErrorStatus_SL_SUCCESS)
	s, cleaner := newTestSession(transport)

	gomega.Expect(s.Init()).To(gomega.Succeed())
	transport.Stream.PushVersion(slapi.SLErrorStatus_SL_INIT_UNSUPPORTED_VER)

	gomega.Eventually(s.Done()).Should(gomega.BeClosed())
	gomega.Expect(s.Exit().IsSet()).To(gomega.BeTrue())
	gomega.Expect(s.State()).To(gomega.Equal(StateError))
	gomega.Expect(s.Close()).To(gomega.Succeed())
	gomega.Expect(IsFatal(s.Err())).To(gomega.BeTrue())
	gomega.Expect(cleaner.Calls()).To(gomega.BeZero())
}

func TestUnrecognizedEventShutsDown(t *testing.T) {
	gomega.RegisterTestingT(t)

	transport := mock.NewMockTransport()
	transport.Stream.PushVersion(slapi.SLErrorStatus_SL_SUCCESS)
	transport.Stream.Push(&slapi.SLGlobalNotif{
		EventType: slapi.SLGlobalNotifType_SL_GLOBAL_EVENT_TYPE_RESERVED,
	})
	s, cleaner := newTestSession(transport)

	gomega.Expect(s.Init()).To(gomega.Succeed())
	gomega.Eventually(s.Done()).Should(gomega.BeClosed())
	gomega.Expect(s.Exit().IsSet()).To(gomega.BeTrue())
	gomega.Expect(cleaner.Calls()).To(gomega.Equal(1))
}

func TestStreamClosedShutsDown(t *testing.T) {
	gomega.RegisterTestingT(t)

	transport := mock.NewMockTransport()
	transport.Stream.PushVersion(slapi.SLErrorStatus_SL_SUCCESS)
	s, cleaner := newTestSession(transport)

	gomega.Expect(s.Init()).To(gomega.Succeed())
	transport.Stream.Close()

	gomega.Eventually(s.Done()).Should(gomega.BeClosed())
	gomega.Expect(s.Exit().IsSet()).To(gomega.BeTrue())
	gomega.Expect(cleaner.Calls()).To(gomega.Equal(1))
	gomega.Expect(cleaner.exitSetOnCleanup).To(gomega.BeFalse())
}

func TestInterruptedBeforeHandshake(t *testing.T) {
	gomega.RegisterTestingT(t)

	transport := mock.NewMockTransport()
	s, cleaner := newTestSession(transport)

	initErr := make(chan error, 1)
	go func() {
		initErr <- s.Init()
	}()
	gomega.Eventually(transport.Stream.Opened()).Should(gomega.BeClosed())

	s.Exit().Set()
	gomega.Eventually(initErr).Should(gomega.Receive(gomega.Equal(ErrInterrupted)))
	gomega.Expect(s.Done()).To(gomega.BeClosed())
	gomega.Expect(cleaner.Calls()).To(gomega.Equal(1))
	gomega.Expect(s.Close()).To(gomega.Succeed())
}

func TestStreamClosedBeforeHandshake(t *testing.T) {
	gomega.RegisterTestingT(t)

	transport := mock.NewMockTransport()
	transport.Stream.Close()
	s, cleaner := newTestSession(transport)

	err := s.Init()
	gomega.Expect(err).ToNot(gomega.Equal(ErrInterrupted))
	gomega.Expect(IsFatal(err)).To(gomega.BeTrue())
	gomega.Expect(s.Err()).To(gomega.Equal(err))
	gomega.Expect(s.Ready().IsSet()).To(gomega.BeFalse())
	gomega.Expect(s.Exit().IsSet()).To(gomega.BeTrue())
	gomega.Expect(cleaner.Calls()).To(gomega.Equal(1))
	gomega.Expect(s.Close()).To(gomega.Succeed())
}

func TestTerminatedBeforeHandshake(t *testing.T) {
	gomega.RegisterTestingT(t)

	transport := mock.NewMockTransport()
	transport.Stream.PushError(slapi.SLErrorStatus_SL_NOTIF_TERM)
	s, _ := newTestSession(transport)

	err := s.Init()
	gomega.Expect(IsFatal(err)).To(gomega.BeTrue())
	gomega.Expect(s.State()).To(gomega.Equal(StateTerminated))
	gomega.Expect(s.Close()).To(gomega.Succeed())
}

func TestStreamOpenFails(t *testing.T) {
	gomega.RegisterTestingT(t)

	transport := mock.NewMockTransport()
	transport.StreamErr = errors.New("connection refused")
	s, cleaner := newTestSession(transport)

	err := s.Init()
	gomega.Expect(IsFatal(err)).To(gomega.BeTrue())
	gomega.Expect(s.Exit().IsSet()).To(gomega.BeTrue())
	gomega.Expect(s.Close()).To(gomega.Succeed())
	gomega.Expect(cleaner.Calls()).To(gomega.BeZero())
}

func TestFetchGlobals(t *testing.T) {
	gomega.RegisterTestingT(t)

	transport := mock.NewMockTransport()
	transport.Stream.PushVersion(slapi.SLErrorStatus_SL_SUCCESS)
	s, _ := newTestSession(transport)
	defer s.Close()

	gomega.Expect(s.MaxMplsLabelsPerPath()).To(gomega.BeZero())
	gomega.Expect(s.Init()).To(gomega.Succeed())

	rsp, err := s.FetchGlobals(context.Background())
	gomega.Expect(err).To(gomega.BeNil())
	gomega.Expect(rsp.MaxMplsLabelsPerPath).To(gomega.BeEquivalentTo(3))
	gomega.Expect(s.MaxMplsLabelsPerPath()).To(gomega.BeEquivalentTo(3))

	transport.GlobalsRsp = &slapi.SLGlobalsGetMsgRsp{
		ErrStatus: &slapi.SLErrorStatus{Status: slapi.SLErrorStatus_SL_EINVAL},
	}
	_, err = s.FetchGlobals(context.Background())
	gomega.Expect(err).ToNot(gomega.BeNil())
}
