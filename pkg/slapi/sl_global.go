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

// SLGlobalNotifType is the type of an event received on the global
// notification stream.
type SLGlobalNotifType int32

const (
	SLGlobalNotifType_SL_GLOBAL_EVENT_TYPE_RESERVED  SLGlobalNotifType = 0
	SLGlobalNotifType_SL_GLOBAL_EVENT_TYPE_ERROR     SLGlobalNotifType = 1
	SLGlobalNotifType_SL_GLOBAL_EVENT_TYPE_HEARTBEAT SLGlobalNotifType = 2
	SLGlobalNotifType_SL_GLOBAL_EVENT_TYPE_VERSION   SLGlobalNotifType = 3
)

var SLGlobalNotifType_name = map[int32]string{
	0: "SL_GLOBAL_EVENT_TYPE_RESERVED",
	1: "SL_GLOBAL_EVENT_TYPE_ERROR",
	2: "SL_GLOBAL_EVENT_TYPE_HEARTBEAT",
	3: "SL_GLOBAL_EVENT_TYPE_VERSION",
}

var SLGlobalNotifType_value = map[string]int32{
	"SL_GLOBAL_EVENT_TYPE_RESERVED":  0,
	"SL_GLOBAL_EVENT_TYPE_ERROR":     1,
	"SL_GLOBAL_EVENT_TYPE_HEARTBEAT": 2,
	"SL_GLOBAL_EVENT_TYPE_VERSION":   3,
}

func (x SLGlobalNotifType) String() string {
	return proto.EnumName(SLGlobalNotifType_name, int32(x))
}

// SLInitMsg opens the global notification stream and announces the client version.
type SLInitMsg struct {
	MajorVer uint32 `protobuf:"varint,1,opt,name=MajorVer,proto3" json:"MajorVer,omitempty"`
	MinorVer uint32 `protobuf:"varint,2,opt,name=MinorVer,proto3" json:"MinorVer,omitempty"`
	SubVer   uint32 `protobuf:"varint,3,opt,name=SubVer,proto3" json:"SubVer,omitempty"`
}

func (m *SLInitMsg) Reset()         { *m = SLInitMsg{} }
func (m *SLInitMsg) String() string { return proto.CompactTextString(m) }
func (*SLInitMsg) ProtoMessage()    {}

// SLInitMsgRsp carries the server version.
type SLInitMsgRsp struct {
	MajorVer uint32 `protobuf:"varint,1,opt,name=MajorVer,proto3" json:"MajorVer,omitempty"`
	MinorVer uint32 `protobuf:"varint,2,opt,name=MinorVer,proto3" json:"MinorVer,omitempty"`
	SubVer   uint32 `protobuf:"varint,3,opt,name=SubVer,proto3" json:"SubVer,omitempty"`
}

func (m *SLInitMsgRsp) Reset()         { *m = SLInitMsgRsp{} }
func (m *SLInitMsgRsp) String() string { return proto.CompactTextString(m) }
func (*SLInitMsgRsp) ProtoMessage()    {}

func (m *SLInitMsgRsp) GetMajorVer() uint32 {
	if m != nil {
		return m.MajorVer
	}
	return 0
}

func (m *SLInitMsgRsp) GetMinorVer() uint32 {
	if m != nil {
		return m.MinorVer
	}
	return 0
}

func (m *SLInitMsgRsp) GetSubVer() uint32 {
	if m != nil {
		return m.SubVer
	}
	return 0
}

// SLGlobalNotif is one event of the global notification stream.
// InitRspMsg is only present for SL_GLOBAL_EVENT_TYPE_VERSION.
type SLGlobalNotif struct {
	EventType  SLGlobalNotifType `protobuf:"varint,1,opt,name=EventType,proto3,enum=service_layer.SLGlobalNotifType" json:"EventType,omitempty"`
	ErrStatus  *SLErrorStatus    `protobuf:"bytes,2,opt,name=ErrStatus,proto3" json:"ErrStatus,omitempty"`
	InitRspMsg *SLInitMsgRsp     `protobuf:"bytes,3,opt,name=InitRspMsg,proto3" json:"InitRspMsg,omitempty"`
}

func (m *SLGlobalNotif) Reset()         { *m = SLGlobalNotif{} }
func (m *SLGlobalNotif) String() string { return proto.CompactTextString(m) }
func (*SLGlobalNotif) ProtoMessage()    {}

func (m *SLGlobalNotif) GetEventType() SLGlobalNotifType {
	if m != nil {
		return m.EventType
	}
	return SLGlobalNotifType_SL_GLOBAL_EVENT_TYPE_RESERVED
}

func (m *SLGlobalNotif) GetErrStatus() *SLErrorStatus {
	if m != nil {
		return m.ErrStatus
	}
	return nil
}

func (m *SLGlobalNotif) GetInitRspMsg() *SLInitMsgRsp {
	if m != nil {
		return m.InitRspMsg
	}
	return nil
}

// SLGlobalsGetMsg requests the server global limits.
type SLGlobalsGetMsg struct {
}

func (m *SLGlobalsGetMsg) Reset()         { *m = SLGlobalsGetMsg{} }
func (m *SLGlobalsGetMsg) String() string { return proto.CompactTextString(m) }
func (*SLGlobalsGetMsg) ProtoMessage()    {}

// SLGlobalsGetMsgRsp carries the server global limits.
type SLGlobalsGetMsgRsp struct {
	ErrStatus              *SLErrorStatus `protobuf:"bytes,1,opt,name=ErrStatus,proto3" json:"ErrStatus,omitempty"`
	MaxVrfNameLength       uint32         `protobuf:"varint,2,opt,name=MaxVrfNameLength,proto3" json:"MaxVrfNameLength,omitempty"`
	MaxInterfaceNameLength uint32         `protobuf:"varint,3,opt,name=MaxInterfaceNameLength,proto3" json:"MaxInterfaceNameLength,omitempty"`
	MaxPathsPerEntry       uint32         `protobuf:"varint,4,opt,name=MaxPathsPerEntry,proto3" json:"MaxPathsPerEntry,omitempty"`
	MaxPrimaryPathPerEntry uint32         `protobuf:"varint,5,opt,name=MaxPrimaryPathPerEntry,proto3" json:"MaxPrimaryPathPerEntry,omitempty"`
	MaxBackupPathPerEntry  uint32         `protobuf:"varint,6,opt,name=MaxBackupPathPerEntry,proto3" json:"MaxBackupPathPerEntry,omitempty"`
	MaxMplsLabelsPerPath   uint32         `protobuf:"varint,7,opt,name=MaxMplsLabelsPerPath,proto3" json:"MaxMplsLabelsPerPath,omitempty"`
	MinPrimaryPathIdNum    uint32         `protobuf:"varint,8,opt,name=MinPrimaryPathIdNum,proto3" json:"MinPrimaryPathIdNum,omitempty"`
	MaxPrimaryPathIdNum    uint32         `protobuf:"varint,9,opt,name=MaxPrimaryPathIdNum,proto3" json:"MaxPrimaryPathIdNum,omitempty"`
	MinBackupPathIdNum     uint32         `protobuf:"varint,10,opt,name=MinBackupPathIdNum,proto3" json:"MinBackupPathIdNum,omitempty"`
	MaxBackupPathIdNum     uint32         `protobuf:"varint,11,opt,name=MaxBackupPathIdNum,proto3" json:"MaxBackupPathIdNum,omitempty"`
	MaxRemoteAddressNum    uint32         `protobuf:"varint,12,opt,name=MaxRemoteAddressNum,proto3" json:"MaxRemoteAddressNum,omitempty"`
}

func (m *SLGlobalsGetMsgRsp) Reset()         { *m = SLGlobalsGetMsgRsp{} }
func (m *SLGlobalsGetMsgRsp) String() string { return proto.CompactTextString(m) }
func (*SLGlobalsGetMsgRsp) ProtoMessage()    {}

func (m *SLGlobalsGetMsgRsp) GetErrStatus() *SLErrorStatus {
	if m != nil {
		return m.ErrStatus
	}
	return nil
}

func (m *SLGlobalsGetMsgRsp) GetMaxMplsLabelsPerPath() uint32 {
	if m != nil {
		return m.MaxMplsLabelsPerPath
	}
	return 0
}

func init() {
	proto.RegisterEnum("service_layer.SLGlobalNotifType", SLGlobalNotifType_name, SLGlobalNotifType_value)
	proto.RegisterType((*SLInitMsg)(nil), "service_layer.SLInitMsg")
	proto.RegisterType((*SLInitMsgRsp)(nil), "service_layer.SLInitMsgRsp")
	proto.RegisterType((*SLGlobalNotif)(nil), "service_layer.SLGlobalNotif")
	proto.RegisterType((*SLGlobalsGetMsg)(nil), "service_layer.SLGlobalsGetMsg")
	proto.RegisterType((*SLGlobalsGetMsgRsp)(nil), "service_layer.SLGlobalsGetMsgRsp")
}

// SLGlobalClient is the client API for the SLGlobal service.
type SLGlobalClient interface {
	// SLGlobalInitNotif opens the global notification stream. The first
	// event is the version handshake result, followed by heartbeats and
	// errors for the lifetime of the session.
	SLGlobalInitNotif(ctx context.Context, in *SLInitMsg, opts ...grpc.CallOption) (SLGlobal_SLGlobalInitNotifClient, error)
	// SLGlobalsGet returns the server global limits.
	SLGlobalsGet(ctx context.Context, in *SLGlobalsGetMsg, opts ...grpc.CallOption) (*SLGlobalsGetMsgRsp, error)
}

type sLGlobalClient struct {
	cc *grpc.ClientConn
}

// NewSLGlobalClient returns SLGlobal client bound to the given connection.
func NewSLGlobalClient(cc *grpc.ClientConn) SLGlobalClient {
	return &sLGlobalClient{cc}
}

var sLGlobalInitNotifStreamDesc = grpc.StreamDesc{
	StreamName:    "SLGlobalInitNotif",
	ServerStreams: true,
}

func (c *sLGlobalClient) SLGlobalInitNotif(ctx context.Context, in *SLInitMsg, opts ...grpc.CallOption) (SLGlobal_SLGlobalInitNotifClient, error) {
	stream, err := c.cc.NewStream(ctx, &sLGlobalInitNotifStreamDesc, "/service_layer.SLGlobal/SLGlobalInitNotif", opts...)
	if err != nil {
		return nil, err
	}
	x := &sLGlobalSLGlobalInitNotifClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// SLGlobal_SLGlobalInitNotifClient receives events of the global notification stream.
type SLGlobal_SLGlobalInitNotifClient interface {
	Recv() (*SLGlobalNotif, error)
	grpc.ClientStream
}

type sLGlobalSLGlobalInitNotifClient struct {
	grpc.ClientStream
}

func (x *sLGlobalSLGlobalInitNotifClient) Recv() (*SLGlobalNotif, error) {
	m := new(SLGlobalNotif)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *sLGlobalClient) SLGlobalsGet(ctx context.Context, in *SLGlobalsGetMsg, opts ...grpc.CallOption) (*SLGlobalsGetMsgRsp, error) {
	out := new(SLGlobalsGetMsgRsp)
	err := c.cc.Invoke(ctx, "/service_layer.SLGlobal/SLGlobalsGet", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
