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

package vrf

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/onsi/gomega"

	mock "github.com/contiv/slroute/mock/slapi"
	"github.com/contiv/slroute/pkg/slapi"
)

func newTestRegistrar(transport *mock.MockTransport) *Registrar {
	return NewRegistrar(UseDeps(func(deps *Deps) {
		deps.Transport = transport
	}))
}

func TestVrfCleanup(t *testing.T) {
	gomega.RegisterTestingT(t)

	transport := mock.NewMockTransport()
	r := newTestRegistrar(transport)

	gomega.Expect(r.VrfCleanup(context.Background())).To(gomega.Succeed())

	msgs := transport.VrfMsgs()
	gomega.Expect(msgs).To(gomega.HaveLen(2))
	gomega.Expect(msgs[0].Oper).To(gomega.Equal(slapi.SLRegOp_SL_REGOP_REGISTER))
	gomega.Expect(msgs[1].Oper).To(gomega.Equal(slapi.SLRegOp_SL_REGOP_EOF))
	for _, msg := range msgs {
		gomega.Expect(msg.VrfRegMsgs).To(gomega.HaveLen(1))
		gomega.Expect(msg.VrfRegMsgs[0].VrfName).To(gomega.Equal("default"))
		gomega.Expect(msg.VrfRegMsgs[0].AdminDistance).To(gomega.BeEquivalentTo(2))
		gomega.Expect(msg.VrfRegMsgs[0].VrfPurgeIntervalSeconds).To(gomega.BeEquivalentTo(500))
	}
}

func TestCleanupUnregisters(t *testing.T) {
	gomega.RegisterTestingT(t)

	transport := mock.NewMockTransport()
	r := NewRegistrar(UseDeps(func(deps *Deps) {
		deps.Transport = transport
		deps.Config = &Config{
			Registration: Registration{VrfName: "blue", AdminDistance: 5, PurgeInterval: time.Minute},
			Timeout:      time.Second,
		}
	}))

	gomega.Expect(r.Cleanup(context.Background())).To(gomega.Succeed())
	msgs := transport.VrfMsgs()
	gomega.Expect(msgs).To(gomega.HaveLen(1))
	gomega.Expect(msgs[0].Oper).To(gomega.Equal(slapi.SLRegOp_SL_REGOP_UNREGISTER))
	gomega.Expect(msgs[0].VrfRegMsgs[0].VrfName).To(gomega.Equal("blue"))
	gomega.Expect(msgs[0].VrfRegMsgs[0].VrfPurgeIntervalSeconds).To(gomega.BeEquivalentTo(60))
}

func TestFailedStatusIsNotAnError(t *testing.T) {
	gomega.RegisterTestingT(t)

	transport := mock.NewMockTransport()
	transport.QueueVrfResponse(&slapi.SLVrfRegMsgRsp{
		StatusSummary: &slapi.SLErrorStatus{Status: slapi.SLErrorStatus_SL_SOME_ERR},
		Results: []*slapi.SLVrfRegMsgRes{{
			ErrStatus: &slapi.SLErrorStatus{Status: slapi.SLErrorStatus_SL_EINVAL},
			VrfName:   "default",
		}},
	}, nil)
	r := newTestRegistrar(transport)

	gomega.Expect(r.Register(context.Background(), r.GetRegistration())).To(gomega.Succeed())
}

func TestTransportErrorStopsCleanup(t *testing.T) {
	gomega.RegisterTestingT(t)

	transport := mock.NewMockTransport()
	transport.QueueVrfResponse(nil, errors.New("unavailable"))
	r := newTestRegistrar(transport)

	gomega.Expect(r.VrfCleanup(context.Background())).ToNot(gomega.Succeed())
	gomega.Expect(transport.VrfMsgs()).To(gomega.HaveLen(1))
}
