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

package route

import (
	"fmt"
	"net"

	"github.com/contiv/slroute/pkg/slapi"
)

// Op is a route operation.
type Op int

const (
	// OpAdd installs a route.
	OpAdd Op = iota
	// OpRemove withdraws a route.
	OpRemove
)

// String returns the name of the operation.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpRemove:
		return "remove"
	}
	return fmt.Sprintf("op-%d", int(op))
}

// Status is the overall outcome of a batch operation.
type Status int

const (
	// Success means that every item of the batch was applied.
	Success Status = iota
	// AllFailed means that the batch was rejected as a whole.
	AllFailed
	// Partial means that some items failed, see BatchResult.Items.
	Partial
)

// String returns the name of the status.
func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case AllFailed:
		return "failed"
	case Partial:
		return "partial"
	}
	return fmt.Sprintf("status-%d", int(s))
}

// ItemResult is the outcome reported for one route of a batch.
type ItemResult struct {
	Prefix    net.IP
	PrefixLen uint32
	Code      slapi.SLErrorStatus_SLErrno
}

// BatchResult is the decoded response of one route batch operation.
type BatchResult struct {
	Op     Op
	Status Status
	// Code is the summary status returned by the router.
	Code  slapi.SLErrorStatus_SLErrno
	Items []ItemResult
}

// Success returns true if the whole batch was applied.
func (r *BatchResult) Success() bool {
	return r != nil && r.Status == Success
}

// String returns human-readable representation of the result.
func (r *BatchResult) String() string {
	if r == nil {
		return "<nil>"
	}
	str := fmt.Sprintf("%s: %s (%s)", r.Op, r.Status, r.Code)
	for _, item := range r.Items {
		str += fmt.Sprintf(", %s/%d: %s", item.Prefix, item.PrefixLen, item.Code)
	}
	return str
}

// DecodeBatchResult interprets the response to SLRoutev4Op. Per-route results
// are only decoded for the SL_SOME_ERR summary.
func DecodeBatchResult(op Op, rsp *slapi.SLRoutev4MsgRsp) *BatchResult {
	res := &BatchResult{
		Op:   op,
		Code: rsp.GetStatusSummary().GetStatus(),
	}
	switch res.Code {
	case slapi.SLErrorStatus_SL_SUCCESS:
		res.Status = Success
	case slapi.SLErrorStatus_SL_SOME_ERR:
		res.Status = Partial
		for _, item := range rsp.GetResults() {
			res.Items = append(res.Items, ItemResult{
				Prefix:    Uint32ToIPv4(item.GetPrefix()),
				PrefixLen: item.GetPrefixLen(),
				Code:      item.GetErrStatus().GetStatus(),
			})
		}
	default:
		res.Status = AllFailed
	}
	return res
}
