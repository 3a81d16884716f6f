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
	"github.com/pkg/errors"
)

/********************************* Fatal Error ********************************/

// FatalError tells the caller that the session cannot be established and
// the agent should stop with a failure.
type FatalError struct {
	origErr error
}

// NewFatalError is the constructor for FatalError.
func NewFatalError(origErr error) error {
	return &FatalError{origErr: origErr}
}

// Error delegates the call to the underlying error.
func (e *FatalError) Error() string {
	return e.origErr.Error()
}

// GetOriginalError returns the underlying error.
func (e *FatalError) GetOriginalError() error {
	return e.origErr
}

// IsFatal returns true if err is (or wraps) FatalError.
func IsFatal(err error) bool {
	_, isFatal := errors.Cause(err).(*FatalError)
	return isFatal
}

/***************************** Interrupted Error *****************************/

// ErrInterrupted is returned by Init when the exit signal was set before
// the handshake completed.
var ErrInterrupted = errors.New("session interrupted before the handshake completed")
