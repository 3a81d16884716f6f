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
	"sync"

	"github.com/gogo/protobuf/proto"
	"google.golang.org/grpc"

	"github.com/contiv/slroute/pkg/slapi"
)

// Call is one RPC recorded by MockTransport.
type Call struct {
	Method  string
	Request proto.Message
}

// RPC method names as recorded in Call.Method.
const (
	InitNotifMethod = "SLGlobalInitNotif"
	GlobalsMethod   = "SLGlobalsGet"
	VrfRegOpMethod  = "SLRoutev4VrfRegOp"
	RouteOpMethod   = "SLRoutev4Op"
)

// RouteResponse is a queued reply to SLRoutev4Op.
type RouteResponse struct {
	Rsp *slapi.SLRoutev4MsgRsp
	Err error
}

// VrfResponse is a queued reply to SLRoutev4VrfRegOp.
type VrfResponse struct {
	Rsp *slapi.SLVrfRegMsgRsp
	Err error
}

// MockTransport is a mock implementation of both SL-API clients. It records
// every call in order and answers from queued responses, replying with
// SL_SUCCESS when the queue is empty.
type MockTransport struct {
	sync.Mutex

	calls     []Call
	routeRsps []RouteResponse
	vrfRsps   []VrfResponse

	// Stream is returned from SLGlobalInitNotif.
	Stream *MockNotifStream
	// StreamErr, when set, fails SLGlobalInitNotif.
	StreamErr error

	// GlobalsRsp and GlobalsErr are the reply to SLGlobalsGet.
	GlobalsRsp *slapi.SLGlobalsGetMsgRsp
	GlobalsErr error
}

// NewMockTransport is a constructor for MockTransport.
func NewMockTransport() *MockTransport {
	return &MockTransport{
		Stream: NewMockNotifStream(),
		GlobalsRsp: &slapi.SLGlobalsGetMsgRsp{
			ErrStatus:            successStatus(),
			MaxMplsLabelsPerPath: 3,
		},
	}
}

func successStatus() *slapi.SLErrorStatus {
	return &slapi.SLErrorStatus{Status: slapi.SLErrorStatus_SL_SUCCESS}
}

// Global returns the mock itself.
func (m *MockTransport) Global() slapi.SLGlobalClient {
	return m
}

// Routev4 returns the mock itself.
func (m *MockTransport) Routev4() slapi.SLRoutev4OperClient {
	return m
}

// QueueRouteResponse adds reply for the next SLRoutev4Op call.
func (m *MockTransport) QueueRouteResponse(rsp *slapi.SLRoutev4MsgRsp, err error) {
	m.Lock()
	defer m.Unlock()
	m.routeRsps = append(m.routeRsps, RouteResponse{Rsp: rsp, Err: err})
}

// QueueRouteStatus adds reply with the given summary status for the next
// SLRoutev4Op call.
func (m *MockTransport) QueueRouteStatus(status slapi.SLErrorStatus_SLErrno) {
	m.QueueRouteResponse(&slapi.SLRoutev4MsgRsp{
		StatusSummary: &slapi.SLErrorStatus{Status: status},
	}, nil)
}

// QueueVrfResponse adds reply for the next SLRoutev4VrfRegOp call.
func (m *MockTransport) QueueVrfResponse(rsp *slapi.SLVrfRegMsgRsp, err error) {
	m.Lock()
	defer m.Unlock()
	m.vrfRsps = append(m.vrfRsps, VrfResponse{Rsp: rsp, Err: err})
}

// Calls returns all recorded calls in order.
func (m *MockTransport) Calls() []Call {
	m.Lock()
	defer m.Unlock()
	return append([]Call(nil), m.calls...)
}

// Methods returns names of all recorded calls in order.
func (m *MockTransport) Methods() []string {
	var methods []string
	for _, call := range m.Calls() {
		methods = append(methods, call.Method)
	}
	return methods
}

// RouteMsgs returns requests of all SLRoutev4Op calls in order.
func (m *MockTransport) RouteMsgs() []*slapi.SLRoutev4Msg {
	var msgs []*slapi.SLRoutev4Msg
	for _, call := range m.Calls() {
		if msg, ok := call.Request.(*slapi.SLRoutev4Msg); ok {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}

// VrfMsgs returns requests of all SLRoutev4VrfRegOp calls in order.
func (m *MockTransport) VrfMsgs() []*slapi.SLVrfRegMsg {
	var msgs []*slapi.SLVrfRegMsg
	for _, call := range m.Calls() {
		if msg, ok := call.Request.(*slapi.SLVrfRegMsg); ok {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}

// Reset forgets recorded calls.
func (m *MockTransport) Reset() {
	m.Lock()
	defer m.Unlock()
	m.calls = nil
}

func (m *MockTransport) record(method string, req proto.Message) {
	m.Lock()
	defer m.Unlock()
	m.calls = append(m.calls, Call{Method: method, Request: req})
}

// SLGlobalInitNotif binds the mock stream to ctx and returns it.
func (m *MockTransport) SLGlobalInitNotif(ctx context.Context, in *slapi.SLInitMsg, opts ...grpc.CallOption) (slapi.SLGlobal_SLGlobalInitNotifClient, error) {
	m.record(InitNotifMethod, in)
	if m.StreamErr != nil {
		return nil, m.StreamErr
	}
	m.Stream.open(ctx)
	return m.Stream, nil
}

// SLGlobalsGet returns GlobalsRsp or GlobalsErr.
func (m *MockTransport) SLGlobalsGet(ctx context.Context, in *slapi.SLGlobalsGetMsg, opts ...grpc.CallOption) (*slapi.SLGlobalsGetMsgRsp, error) {
	m.record(GlobalsMethod, in)
	if m.GlobalsErr != nil {
		return nil, m.GlobalsErr
	}
	return m.GlobalsRsp, nil
}

// SLRoutev4VrfRegOp returns the next queued VRF response.
func (m *MockTransport) SLRoutev4VrfRegOp(ctx context.Context, in *slapi.SLVrfRegMsg, opts ...grpc.CallOption) (*slapi.SLVrfRegMsgRsp, error) {
	m.record(VrfRegOpMethod, in)

	m.Lock()
	defer m.Unlock()
	if len(m.vrfRsps) == 0 {
		return &slapi.SLVrfRegMsgRsp{StatusSummary: successStatus()}, nil
	}
	rsp := m.vrfRsps[0]
	m.vrfRsps = m.vrfRsps[1:]
	return rsp.Rsp, rsp.Err
}

// SLRoutev4Op returns the next queued route response.
func (m *MockTransport) SLRoutev4Op(ctx context.Context, in *slapi.SLRoutev4Msg, opts ...grpc.CallOption) (*slapi.SLRoutev4MsgRsp, error) {
	m.record(RouteOpMethod, in)

	m.Lock()
	defer m.Unlock()
	if len(m.routeRsps) == 0 {
		return &slapi.SLRoutev4MsgRsp{
			Correlator:    in.Correlator,
			VrfName:       in.VrfName,
			StatusSummary: successStatus(),
		}, nil
	}
	rsp := m.routeRsps[0]
	m.routeRsps = m.routeRsps[1:]
	return rsp.Rsp, rsp.Err
}
