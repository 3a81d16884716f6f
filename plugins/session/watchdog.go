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
	"io"

	"github.com/ligato/cn-infra/logging"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/contiv/slroute/pkg/slapi"
)

// watchdog consumes the notification stream until the session ends.
func (s *Session) watchdog(stream slapi.SLGlobal_SLGlobalInitNotifClient) {
	defer close(s.done)

	for {
		if s.ExitSignal.IsSet() {
			s.shutdown("exit requested", true)
			return
		}

		notif, err := stream.Recv()
		if s.ExitSignal.IsSet() {
			s.shutdown("exit requested", true)
			return
		}
		if err != nil {
			s.Stats.StreamEvent("recv-error")
			s.logRecvError(err)
			s.shutdown("notification stream broken", false)
			return
		}

		code := notif.GetErrStatus().GetStatus()
		switch notif.GetEventType() {
		case slapi.SLGlobalNotifType_SL_GLOBAL_EVENT_TYPE_VERSION:
			s.Stats.StreamEvent("version")
			if !s.handleVersion(notif) {
				return
			}

		case slapi.SLGlobalNotifType_SL_GLOBAL_EVENT_TYPE_HEARTBEAT:
			s.Stats.StreamEvent("heartbeat")
			s.Log.Debug("Received heartbeat")

		case slapi.SLGlobalNotifType_SL_GLOBAL_EVENT_TYPE_ERROR:
			s.Stats.StreamEvent("error")
			if code == slapi.SLErrorStatus_SL_NOTIF_TERM {
				s.Log.Warn("Received notice to terminate, another client took over the session")
				s.shutdown("session terminated by router", false)
				return
			}
			s.Log.WithFields(logging.Fields{"status": code}).Error("Error not handled")

		default:
			s.Stats.StreamEvent("unknown")
			s.Log.WithFields(logging.Fields{
				"event":  notif.GetEventType(),
				"status": code,
			}).Warn("Unrecognized notification")
			s.shutdown("unrecognized notification", false)
			return
		}
	}
}

// handleVersion returns false if the handshake failed.
func (s *Session) handleVersion(notif *slapi.SLGlobalNotif) bool {
	code := notif.GetErrStatus().GetStatus()
	rsp := notif.GetInitRspMsg()
	fields := logging.Fields{
		"major":  rsp.GetMajorVer(),
		"minor":  rsp.GetMinorVer(),
		"sub":    rsp.GetSubVer(),
		"status": code,
	}

	switch code {
	case slapi.SLErrorStatus_SL_SUCCESS,
		slapi.SLErrorStatus_SL_INIT_STATE_CLEAR,
		slapi.SLErrorStatus_SL_INIT_STATE_READY:
		s.mu.Lock()
		s.remoteVer = [3]uint32{rsp.GetMajorVer(), rsp.GetMinorVer(), rsp.GetSubVer()}
		s.mu.Unlock()
		if s.ready.Set() {
			s.setState(StateReady)
			s.Log.WithFields(fields).Info("Server returned version")
		}
		return true
	}

	s.Log.WithFields(fields).Error("Version handshake failed")
	s.fail(NewFatalError(errors.Errorf("version handshake failed with %s", code)))
	return false
}

// fail ends the session without the shutdown sequence.
func (s *Session) fail(err error) {
	s.mu.Lock()
	if s.err == nil {
		s.err = err
	}
	s.mu.Unlock()

	s.setState(StateError)
	s.ExitSignal.Set()
}

// shutdown unregisters the VRF and sets the exit signal. Reasons other than
// a requested exit are kept for Init.
func (s *Session) shutdown(reason string, requested bool) {
	if !requested {
		s.mu.Lock()
		s.endReason = reason
		s.mu.Unlock()
	}
	s.setState(StateTerminating)
	s.Log.WithFields(logging.Fields{"reason": reason}).Info("Session shutting down")

	if s.VRF != nil {
		ctx, cancel := context.WithTimeout(context.Background(), DefaultUnregisterTimeout)
		if err := s.VRF.Cleanup(ctx); err != nil {
			s.Log.Errorf("VRF cleanup failed: %v", err)
		}
		cancel()
	}

	s.ExitSignal.Set()
	s.setState(StateTerminated)
}

func (s *Session) logRecvError(err error) {
	if err == io.EOF {
		s.Log.Warn("Notification stream closed by server")
		return
	}
	st, _ := status.FromError(err)
	fields := logging.Fields{"code": st.Code(), "error": st.Message()}
	switch st.Code() {
	case codes.Canceled:
		s.Log.WithFields(fields).Info("Notification stream cancelled")
	case codes.DeadlineExceeded:
		s.Log.WithFields(fields).Warn("Notification stream deadline exceeded")
	default:
		s.Log.WithFields(fields).Error("Notification stream failed")
	}
}
