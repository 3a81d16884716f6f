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

package main

import (
	"testing"

	"github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/contiv/slroute/plugins/session"
)

func TestExitCode(t *testing.T) {
	gomega.RegisterTestingT(t)

	gomega.Expect(exitCode(0, nil)).To(gomega.Equal(0))
	gomega.Expect(exitCode(1, nil)).To(gomega.Equal(1))
	gomega.Expect(exitCode(0, errors.New("not fatal"))).To(gomega.Equal(0))

	fatal := session.NewFatalError(errors.New("version handshake failed"))
	gomega.Expect(exitCode(0, fatal)).To(gomega.Equal(1))
	gomega.Expect(exitCode(0, errors.Wrap(fatal, "session"))).To(gomega.Equal(1))
}
