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

package slapi

import (
	"context"
	"io"
	"sync"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/contiv/slroute/pkg/slapi"
)

type streamItem struct {
	notif *slapi.SLGlobalNotif
	err   error
}

// MockNotifStream is a mock of the global notification stream. Events pushed
// by the test are returned from Recv in order.
type MockNotifStream struct {
	sync.Mutex

	ctx    context.Context
	opened chan struct{}
	events chan streamItem
	closed chan struct{}
	once   sync.Once
}

// NewMockNotifStream is a constructor for MockNotifStream.
func NewMockNotifStream() *MockNotifStream {
	return &MockNotifStream{
		opened: make(chan struct{}),
		events: make(chan streamItem, 64),
		closed: make(chan struct{}),
	}
}

func (s *MockNotifStream) open(ctx context.Context) {
	s.Lock()
	defer s.Unlock()
	if s.ctx == nil {
		s.ctx = ctx
		close(s.opened)
	}
}

// Opened returns a channel closed once the stream was opened.
func (s *MockNotifStream) Opened() <-chan struct{} {
	return s.opened
}

// Deadline returns the deadline of the context the stream was opened with.
func (s *MockNotifStream) Deadline() (time.Time, bool) {
	return s.Context().Deadline()
}

// Push queues an event.
func (s *MockNotifStream) Push(notif *slapi.SLGlobalNotif) {
	s.events <- streamItem{notif: notif}
}

// PushVersion queues a VERSION event with the given status and remote
// version 0.0.1.
func (s *MockNotifStream) PushVersion(code slapi.SLErrorStatus_SLErrno) {
	s.Push(&slapi.SLGlobalNotif{
		EventType:  slapi.SLGlobalNotifType_SL_GLOBAL_EVENT_TYPE_VERSION,
		ErrStatus:  &slapi.SLErrorStatus{Status: code},
		InitRspMsg: &slapi.SLInitMsgRsp{MajorVer: 0, MinorVer: 0, SubVer: 1},
	})
}

// PushHeartbeat queues a HEARTBEAT event.
func (s *MockNotifStream) PushHeartbeat() {
	s.Push(&slapi.SLGlobalNotif{
		EventType: slapi.SLGlobalNotifType_SL_GLOBAL_EVENT_TYPE_HEARTBEAT,
		ErrStatus: &slapi.SLErrorStatus{Status: slapi.SLErrorStatus_SL_SUCCESS},
	})
}

// PushError queues an ERROR event with the given status.
func (s *MockNotifStream) PushError(code slapi.SLErrorStatus_SLErrno) {
	s.Push(&slapi.SLGlobalNotif{
		EventType: slapi.SLGlobalNotifType_SL_GLOBAL_EVENT_TYPE_ERROR,
		ErrStatus: &slapi.SLErrorStatus{Status: code},
	})
}

// PushRecvError makes Recv return the given error.
func (s *MockNotifStream) PushRecvError(err error) {
	s.events <- streamItem{err: err}
}

// Close ends the stream, Recv returns io.EOF once the queued events
// are consumed.
func (s *MockNotifStream) Close() {
	s.once.Do(func() { close(s.closed) })
}

// Recv returns the next queued event. It fails with codes.Canceled once
// the stream context is done.
func (s *MockNotifStream) Recv() (*slapi.SLGlobalNotif, error) {
	ctx := s.Context()
	select {
	case item := <-s.events:
		return item.notif, item.err
	default:
	}
	select {
	case item := <-s.events:
		return item.notif, item.err
	case <-s.closed:
		return nil, io.EOF
	case <-ctx.Done():
		return nil, status.Error(codes.Canceled, ctx.Err().Error())
	}
}

// Header returns empty metadata.
func (s *MockNotifStream) Header() (metadata.MD, error) {
	return metadata.MD{}, nil
}

// Trailer returns empty metadata.
func (s *MockNotifStream) Trailer() metadata.MD {
	return metadata.MD{}
}

// CloseSend does nothing.
func (s *MockNotifStream) CloseSend() error {
	return nil
}

// Context returns the context the stream was opened with.
func (s *MockNotifStream) Context() context.Context {
	s.Lock()
	defer s.Unlock()
	if s.ctx == nil {
		return context.Background()
	}
	return s.ctx
}

// SendMsg does nothing.
func (s *MockNotifStream) SendMsg(m interface{}) error {
	return nil
}

// RecvMsg is not supported, use Recv.
func (s *MockNotifStream) RecvMsg(m interface{}) error {
	return status.Error(codes.Unimplemented, "use Recv")
}
