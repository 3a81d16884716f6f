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

	proto "github.com/gogo/protobuf/proto"
	"google.golang.org/grpc"
)

// SLVrfReg is a VRF registration.
type SLVrfReg struct {
	VrfName                 string `protobuf:"bytes,1,opt,name=VrfName,proto3" json:"VrfName,omitempty"`
	AdminDistance           uint32 `protobuf:"varint,2,opt,name=AdminDistance,proto3" json:"AdminDistance,omitempty"`
	VrfPurgeIntervalSeconds uint32 `protobuf:"varint,3,opt,name=VrfPurgeIntervalSeconds,proto3" json:"VrfPurgeIntervalSeconds,omitempty"`
}

func (m *SLVrfReg) Reset()         { *m = SLVrfReg{} }
func (m *SLVrfReg) String() string { return proto.CompactTextString(m) }
func (*SLVrfReg) ProtoMessage()    {}

// SLVrfRegMsg is a batch of VRF registrations sharing one operation.
type SLVrfRegMsg struct {
	Oper       SLRegOp     `protobuf:"varint,1,opt,name=Oper,proto3,enum=service_layer.SLRegOp" json:"Oper,omitempty"`
	VrfRegMsgs []*SLVrfReg `protobuf:"bytes,2,rep,name=VrfRegMsgs,proto3" json:"VrfRegMsgs,omitempty"`
}

func (m *SLVrfRegMsg) Reset()         { *m = SLVrfRegMsg{} }
func (m *SLVrfRegMsg) String() string { return proto.CompactTextString(m) }
func (*SLVrfRegMsg) ProtoMessage()    {}

func (m *SLVrfRegMsg) GetOper() SLRegOp {
	if m != nil {
		return m.Oper
	}
	return SLRegOp_SL_REGOP_RESERVED
}

func (m *SLVrfRegMsg) GetVrfRegMsgs() []*SLVrfReg {
	if m != nil {
		return m.VrfRegMsgs
	}
	return nil
}

// SLVrfRegMsgRes is the result of one VRF registration in a batch.
type SLVrfRegMsgRes struct {
	ErrStatus *SLErrorStatus `protobuf:"bytes,1,opt,name=ErrStatus,proto3" json:"ErrStatus,omitempty"`
	VrfName   string         `protobuf:"bytes,2,opt,name=VrfName,proto3" json:"VrfName,omitempty"`
}

func (m *SLVrfRegMsgRes) Reset()         { *m = SLVrfRegMsgRes{} }
func (m *SLVrfRegMsgRes) String() string { return proto.CompactTextString(m) }
func (*SLVrfRegMsgRes) ProtoMessage()    {}

func (m *SLVrfRegMsgRes) GetErrStatus() *SLErrorStatus {
	if m != nil {
		return m.ErrStatus
	}
	return nil
}

// SLVrfRegMsgRsp is the response to SLVrfRegMsg.
type SLVrfRegMsgRsp struct {
	StatusSummary *SLErrorStatus    `protobuf:"bytes,1,opt,name=StatusSummary,proto3" json:"StatusSummary,omitempty"`
	Results       []*SLVrfRegMsgRes `protobuf:"bytes,2,rep,name=Results,proto3" json:"Results,omitempty"`
}

func (m *SLVrfRegMsgRsp) Reset()         { *m = SLVrfRegMsgRsp{} }
func (m *SLVrfRegMsgRsp) String() string { return proto.CompactTextString(m) }
func (*SLVrfRegMsgRsp) ProtoMessage()    {}

func (m *SLVrfRegMsgRsp) GetStatusSummary() *SLErrorStatus {
	if m != nil {
		return m.StatusSummary
	}
	return nil
}

func (m *SLVrfRegMsgRsp) GetResults() []*SLVrfRegMsgRes {
	if m != nil {
		return m.Results
	}
	return nil
}

// SLRouteCommon holds attributes common to all address families.
type SLRouteCommon struct {
	AdminDistance uint32 `protobuf:"varint,1,opt,name=AdminDistance,proto3" json:"AdminDistance,omitempty"`
	LocalLabel    uint32 `protobuf:"varint,2,opt,name=LocalLabel,proto3" json:"LocalLabel,omitempty"`
	Tag           uint32 `protobuf:"varint,3,opt,name=Tag,proto3" json:"Tag,omitempty"`
}

func (m *SLRouteCommon) Reset()         { *m = SLRouteCommon{} }
func (m *SLRouteCommon) String() string { return proto.CompactTextString(m) }
func (*SLRouteCommon) ProtoMessage()    {}

// SLRoutePath is one path of a route. LabelStack is ordered outermost first.
type SLRoutePath struct {
	NexthopAddress   *SLIpAddress `protobuf:"bytes,1,opt,name=NexthopAddress,proto3" json:"NexthopAddress,omitempty"`
	NexthopInterface *SLInterface `protobuf:"bytes,2,opt,name=NexthopInterface,proto3" json:"NexthopInterface,omitempty"`
	LoadMetric       uint32       `protobuf:"varint,3,opt,name=LoadMetric,proto3" json:"LoadMetric,omitempty"`
	VrfName          string       `protobuf:"bytes,4,opt,name=VrfName,proto3" json:"VrfName,omitempty"`
	Metric           uint32       `protobuf:"varint,5,opt,name=Metric,proto3" json:"Metric,omitempty"`
	PathId           uint32       `protobuf:"varint,6,opt,name=PathId,proto3" json:"PathId,omitempty"`
	LabelStack       []uint32     `protobuf:"varint,8,rep,packed,name=LabelStack,proto3" json:"LabelStack,omitempty"`
}

func (m *SLRoutePath) Reset()         { *m = SLRoutePath{} }
func (m *SLRoutePath) String() string { return proto.CompactTextString(m) }
func (*SLRoutePath) ProtoMessage()    {}

func (m *SLRoutePath) GetLabelStack() []uint32 {
	if m != nil {
		return m.LabelStack
	}
	return nil
}

// SLRoutev4 is an IPv4 route. Prefix is the address in host byte order.
type SLRoutev4 struct {
	Prefix      uint32         `protobuf:"varint,1,opt,name=Prefix,proto3" json:"Prefix,omitempty"`
	PrefixLen   uint32         `protobuf:"varint,2,opt,name=PrefixLen,proto3" json:"PrefixLen,omitempty"`
	RouteCommon *SLRouteCommon `protobuf:"bytes,3,opt,name=RouteCommon,proto3" json:"RouteCommon,omitempty"`
	PathList    []*SLRoutePath `protobuf:"bytes,4,rep,name=PathList,proto3" json:"PathList,omitempty"`
}

func (m *SLRoutev4) Reset()         { *m = SLRoutev4{} }
func (m *SLRoutev4) String() string { return proto.CompactTextString(m) }
func (*SLRoutev4) ProtoMessage()    {}

func (m *SLRoutev4) GetPathList() []*SLRoutePath {
	if m != nil {
		return m.PathList
	}
	return nil
}

// SLRoutev4Msg is a batch of IPv4 routes of one VRF sharing one operation.
type SLRoutev4Msg struct {
	Oper       SLObjectOp   `protobuf:"varint,1,opt,name=Oper,proto3,enum=service_layer.SLObjectOp" json:"Oper,omitempty"`
	Correlator uint64       `protobuf:"varint,2,opt,name=Correlator,proto3" json:"Correlator,omitempty"`
	VrfName    string       `protobuf:"bytes,3,opt,name=VrfName,proto3" json:"VrfName,omitempty"`
	Routes     []*SLRoutev4 `protobuf:"bytes,4,rep,name=Routes,proto3" json:"Routes,omitempty"`
}

func (m *SLRoutev4Msg) Reset()         { *m = SLRoutev4Msg{} }
func (m *SLRoutev4Msg) String() string { return proto.CompactTextString(m) }
func (*SLRoutev4Msg) ProtoMessage()    {}

func (m *SLRoutev4Msg) GetOper() SLObjectOp {
	if m != nil {
		return m.Oper
	}
	return SLObjectOp_SL_OBJOP_RESERVED
}

func (m *SLRoutev4Msg) GetRoutes() []*SLRoutev4 {
	if m != nil {
		return m.Routes
	}
	return nil
}

// SLRoutev4Res is the result of one route in a batch.
type SLRoutev4Res struct {
	ErrStatus *SLErrorStatus `protobuf:"bytes,1,opt,name=ErrStatus,proto3" json:"ErrStatus,omitempty"`
	Prefix    uint32         `protobuf:"varint,2,opt,name=Prefix,proto3" json:"Prefix,omitempty"`
	PrefixLen uint32         `protobuf:"varint,3,opt,name=PrefixLen,proto3" json:"PrefixLen,omitempty"`
}

func (m *SLRoutev4Res) Reset()         { *m = SLRoutev4Res{} }
func (m *SLRoutev4Res) String() string { return proto.CompactTextString(m) }
func (*SLRoutev4Res) ProtoMessage()    {}

func (m *SLRoutev4Res) GetErrStatus() *SLErrorStatus {
	if m != nil {
		return m.ErrStatus
	}
	return nil
}

func (m *SLRoutev4Res) GetPrefix() uint32 {
	if m != nil {
		return m.Prefix
	}
	return 0
}

func (m *SLRoutev4Res) GetPrefixLen() uint32 {
	if m != nil {
		return m.PrefixLen
	}
	return 0
}

// SLRoutev4MsgRsp is the response to SLRoutev4Msg. Results are only
// filled in when StatusSummary is SL_SOME_ERR.
type SLRoutev4MsgRsp struct {
	Correlator    uint64          `protobuf:"varint,1,opt,name=Correlator,proto3" json:"Correlator,omitempty"`
	VrfName       string          `protobuf:"bytes,2,opt,name=VrfName,proto3" json:"VrfName,omitempty"`
	StatusSummary *SLErrorStatus  `protobuf:"bytes,3,opt,name=StatusSummary,proto3" json:"StatusSummary,omitempty"`
	Results       []*SLRoutev4Res `protobuf:"bytes,4,rep,name=Results,proto3" json:"Results,omitempty"`
}

func (m *SLRoutev4MsgRsp) Reset()         { *m = SLRoutev4MsgRsp{} }
func (m *SLRoutev4MsgRsp) String() string { return proto.CompactTextString(m) }
func (*SLRoutev4MsgRsp) ProtoMessage()    {}

func (m *SLRoutev4MsgRsp) GetStatusSummary() *SLErrorStatus {
	if m != nil {
		return m.StatusSummary
	}
	return nil
}

func (m *SLRoutev4MsgRsp) GetResults() []*SLRoutev4Res {
	if m != nil {
		return m.Results
	}
	return nil
}

func init() {
	proto.RegisterType((*SLVrfReg)(nil), "service_layer.SLVrfReg")
	proto.RegisterType((*SLVrfRegMsg)(nil), "service_layer.SLVrfRegMsg")
	proto.RegisterType((*SLVrfRegMsgRes)(nil), "service_layer.SLVrfRegMsgRes")
	proto.RegisterType((*SLVrfRegMsgRsp)(nil), "service_layer.SLVrfRegMsgRsp")
	proto.RegisterType((*SLRouteCommon)(nil), "service_layer.SLRouteCommon")
	proto.RegisterType((*SLRoutePath)(nil), "service_layer.SLRoutePath")
	proto.RegisterType((*SLRoutev4)(nil), "service_layer.SLRoutev4")
	proto.RegisterType((*SLRoutev4Msg)(nil), "service_layer.SLRoutev4Msg")
	proto.RegisterType((*SLRoutev4Res)(nil), "service_layer.SLRoutev4Res")
	proto.RegisterType((*SLRoutev4MsgRsp)(nil), "service_layer.SLRoutev4MsgRsp")
}

// SLRoutev4OperClient is the client API for the SLRoutev4Oper service.
type SLRoutev4OperClient interface {
	// SLRoutev4VrfRegOp registers, unregisters or sends EOF for VRFs.
	SLRoutev4VrfRegOp(ctx context.Context, in *SLVrfRegMsg, opts ...grpc.CallOption) (*SLVrfRegMsgRsp, error)
	// SLRoutev4Op adds, updates or deletes IPv4 routes.
	SLRoutev4Op(ctx context.Context, in *SLRoutev4Msg, opts ...grpc.CallOption) (*SLRoutev4MsgRsp, error)
}

type sLRoutev4OperClient struct {
	cc *grpc.ClientConn
}

// NewSLRoutev4OperClient returns SLRoutev4Oper client bound to the given connection.
func NewSLRoutev4OperClient(cc *grpc.ClientConn) SLRoutev4OperClient {
	return &sLRoutev4OperClient{cc}
}

func (c *sLRoutev4OperClient) SLRoutev4VrfRegOp(ctx context.Context, in *SLVrfRegMsg, opts ...grpc.CallOption) (*SLVrfRegMsgRsp, error) {
	out := new(SLVrfRegMsgRsp)
	err := c.cc.Invoke(ctx, "/service_layer.SLRoutev4Oper/SLRoutev4VrfRegOp", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sLRoutev4OperClient) SLRoutev4Op(ctx context.Context, in *SLRoutev4Msg, opts ...grpc.CallOption) (*SLRoutev4MsgRsp, error) {
	out := new(SLRoutev4MsgRsp)
	err := c.cc.Invoke(ctx, "/service_layer.SLRoutev4Oper/SLRoutev4Op", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
