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
	proto "github.com/gogo/protobuf/proto"
)

// SLErrorStatus_SLErrno enumerates status codes returned by the server.
type SLErrorStatus_SLErrno int32

const (
	// Success, no errors detected.
	SLErrorStatus_SL_SUCCESS SLErrorStatus_SLErrno = 0x0
	// Client is not connected.
	SLErrorStatus_SL_NOT_CONNECTED SLErrorStatus_SLErrno = 0x1
	// Operation must be retried.
	SLErrorStatus_SL_EAGAIN SLErrorStatus_SLErrno = 0x2
	// One or more components does not have sufficient memory.
	SLErrorStatus_SL_ENOMEM SLErrorStatus_SLErrno = 0x3
	// Too many outstanding requests.
	SLErrorStatus_SL_EBUSY SLErrorStatus_SLErrno = 0x4
	// One or more arguments are invalid.
	SLErrorStatus_SL_EINVAL SLErrorStatus_SLErrno = 0x5
	// Unsupported version.
	SLErrorStatus_SL_UNSUPPORTED_VER SLErrorStatus_SLErrno = 0x6
	// Not available.
	SLErrorStatus_SL_NOT_AVAILABLE SLErrorStatus_SLErrno = 0x7
	// Stream mode not supported.
	SLErrorStatus_SL_STREAM_NOT_SUPPORTED SLErrorStatus_SLErrno = 0x8
	// Operation not supported.
	SLErrorStatus_SL_ENOTSUP SLErrorStatus_SLErrno = 0x9
	// One or more objects in a batch failed, see the per-object results.
	SLErrorStatus_SL_SOME_ERR SLErrorStatus_SLErrno = 0xa
	// Operation timed out.
	SLErrorStatus_SL_TIMEOUT SLErrorStatus_SLErrno = 0xb
	// The client will no longer receive notifications on this channel.
	SLErrorStatus_SL_NOTIF_TERM SLErrorStatus_SLErrno = 0xc

	// Init errors.
	SLErrorStatus_SL_INIT_START_OFFSET SLErrorStatus_SLErrno = 0x500
	// Server has no stale state from a previous client, start clean.
	SLErrorStatus_SL_INIT_STATE_CLEAR SLErrorStatus_SLErrno = 0x501
	// Server kept the state of a previous client, replay may follow.
	SLErrorStatus_SL_INIT_STATE_READY SLErrorStatus_SLErrno = 0x502
	// Server does not support the client's version.
	SLErrorStatus_SL_INIT_UNSUPPORTED_VER SLErrorStatus_SLErrno = 0x503
	// Server is not initialized yet.
	SLErrorStatus_SL_INIT_SERVER_NOT_INITIALIZED SLErrorStatus_SLErrno = 0x504
	// Server mode change failed.
	SLErrorStatus_SL_INIT_SERVER_MODE_CHANGE_FAILED SLErrorStatus_SLErrno = 0x505
)

var SLErrorStatus_SLErrno_name = map[int32]string{
	0x0:   "SL_SUCCESS",
	0x1:   "SL_NOT_CONNECTED",
	0x2:   "SL_EAGAIN",
	0x3:   "SL_ENOMEM",
	0x4:   "SL_EBUSY",
	0x5:   "SL_EINVAL",
	0x6:   "SL_UNSUPPORTED_VER",
	0x7:   "SL_NOT_AVAILABLE",
	0x8:   "SL_STREAM_NOT_SUPPORTED",
	0x9:   "SL_ENOTSUP",
	0xa:   "SL_SOME_ERR",
	0xb:   "SL_TIMEOUT",
	0xc:   "SL_NOTIF_TERM",
	0x500: "SL_INIT_START_OFFSET",
	0x501: "SL_INIT_STATE_CLEAR",
	0x502: "SL_INIT_STATE_READY",
	0x503: "SL_INIT_UNSUPPORTED_VER",
	0x504: "SL_INIT_SERVER_NOT_INITIALIZED",
	0x505: "SL_INIT_SERVER_MODE_CHANGE_FAILED",
}

var SLErrorStatus_SLErrno_value = map[string]int32{
	"SL_SUCCESS":                        0x0,
	"SL_NOT_CONNECTED":                  0x1,
	"SL_EAGAIN":                         0x2,
	"SL_ENOMEM":                         0x3,
	"SL_EBUSY":                          0x4,
	"SL_EINVAL":                         0x5,
	"SL_UNSUPPORTED_VER":                0x6,
	"SL_NOT_AVAILABLE":                  0x7,
	"SL_STREAM_NOT_SUPPORTED":           0x8,
	"SL_ENOTSUP":                        0x9,
	"SL_SOME_ERR":                       0xa,
	"SL_TIMEOUT":                        0xb,
	"SL_NOTIF_TERM":                     0xc,
	"SL_INIT_START_OFFSET":              0x500,
	"SL_INIT_STATE_CLEAR":               0x501,
	"SL_INIT_STATE_READY":               0x502,
	"SL_INIT_UNSUPPORTED_VER":           0x503,
	"SL_INIT_SERVER_NOT_INITIALIZED":    0x504,
	"SL_INIT_SERVER_MODE_CHANGE_FAILED": 0x505,
}

func (x SLErrorStatus_SLErrno) String() string {
	return proto.EnumName(SLErrorStatus_SLErrno_name, int32(x))
}

// SLRegOp is a registration operation.
type SLRegOp int32

const (
	SLRegOp_SL_REGOP_RESERVED   SLRegOp = 0
	SLRegOp_SL_REGOP_REGISTER   SLRegOp = 1
	SLRegOp_SL_REGOP_UNREGISTER SLRegOp = 2
	SLRegOp_SL_REGOP_EOF        SLRegOp = 3
)

var SLRegOp_name = map[int32]string{
	0: "SL_REGOP_RESERVED",
	1: "SL_REGOP_REGISTER",
	2: "SL_REGOP_UNREGISTER",
	3: "SL_REGOP_EOF",
}

var SLRegOp_value = map[string]int32{
	"SL_REGOP_RESERVED":   0,
	"SL_REGOP_REGISTER":   1,
	"SL_REGOP_UNREGISTER": 2,
	"SL_REGOP_EOF":        3,
}

func (x SLRegOp) String() string {
	return proto.EnumName(SLRegOp_name, int32(x))
}

// SLObjectOp is an object (route) operation.
type SLObjectOp int32

const (
	SLObjectOp_SL_OBJOP_RESERVED SLObjectOp = 0
	SLObjectOp_SL_OBJOP_ADD      SLObjectOp = 1
	SLObjectOp_SL_OBJOP_UPDATE   SLObjectOp = 2
	SLObjectOp_SL_OBJOP_DELETE   SLObjectOp = 3
)

var SLObjectOp_name = map[int32]string{
	0: "SL_OBJOP_RESERVED",
	1: "SL_OBJOP_ADD",
	2: "SL_OBJOP_UPDATE",
	3: "SL_OBJOP_DELETE",
}

var SLObjectOp_value = map[string]int32{
	"SL_OBJOP_RESERVED": 0,
	"SL_OBJOP_ADD":      1,
	"SL_OBJOP_UPDATE":   2,
	"SL_OBJOP_DELETE":   3,
}

func (x SLObjectOp) String() string {
	return proto.EnumName(SLObjectOp_name, int32(x))
}

// SLErrorStatus carries a status code.
type SLErrorStatus struct {
	Status SLErrorStatus_SLErrno `protobuf:"varint,1,opt,name=Status,proto3,enum=service_layer.SLErrorStatus_SLErrno" json:"Status,omitempty"`
}

func (m *SLErrorStatus) Reset()         { *m = SLErrorStatus{} }
func (m *SLErrorStatus) String() string { return proto.CompactTextString(m) }
func (*SLErrorStatus) ProtoMessage()    {}

func (m *SLErrorStatus) GetStatus() SLErrorStatus_SLErrno {
	if m != nil {
		return m.Status
	}
	return SLErrorStatus_SL_SUCCESS
}

// SLIpAddress is an IPv4 or IPv6 address. Only one of the fields is set.
type SLIpAddress struct {
	V4Address uint32 `protobuf:"varint,1,opt,name=V4Address,proto3" json:"V4Address,omitempty"`
	V6Address []byte `protobuf:"bytes,2,opt,name=V6Address,proto3" json:"V6Address,omitempty"`
}

func (m *SLIpAddress) Reset()         { *m = SLIpAddress{} }
func (m *SLIpAddress) String() string { return proto.CompactTextString(m) }
func (*SLIpAddress) ProtoMessage()    {}

func (m *SLIpAddress) GetV4Address() uint32 {
	if m != nil {
		return m.V4Address
	}
	return 0
}

// SLInterface identifies an interface by name.
type SLInterface struct {
	Name string `protobuf:"bytes,1,opt,name=Name,proto3" json:"Name,omitempty"`
}

func (m *SLInterface) Reset()         { *m = SLInterface{} }
func (m *SLInterface) String() string { return proto.CompactTextString(m) }
func (*SLInterface) ProtoMessage()    {}

func (m *SLInterface) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func init() {
	proto.RegisterEnum("service_layer.SLErrorStatus_SLErrno", SLErrorStatus_SLErrno_name, SLErrorStatus_SLErrno_value)
	proto.RegisterEnum("service_layer.SLRegOp", SLRegOp_name, SLRegOp_value)
	proto.RegisterEnum("service_layer.SLObjectOp", SLObjectOp_name, SLObjectOp_value)
	proto.RegisterType((*SLErrorStatus)(nil), "service_layer.SLErrorStatus")
	proto.RegisterType((*SLIpAddress)(nil), "service_layer.SLIpAddress")
	proto.RegisterType((*SLInterface)(nil), "service_layer.SLInterface")
}
