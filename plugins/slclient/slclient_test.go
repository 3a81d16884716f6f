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

package slclient

import (
	"testing"

	"github.com/onsi/gomega"
)

func TestInitAndClose(t *testing.T) {
	gomega.RegisterTestingT(t)

	p := NewPlugin(UseDeps(func(deps *Deps) {
		deps.Config = &Config{ServerIP: "192.0.2.1", ServerPort: 57344}
	}))
	gomega.Expect(p.Config.Address()).To(gomega.Equal("192.0.2.1:57344"))
	gomega.Expect(p.Init()).To(gomega.Succeed())
	gomega.Expect(p.Global()).ToNot(gomega.BeNil())
	gomega.Expect(p.Routev4()).ToNot(gomega.BeNil())
	gomega.Expect(p.Close()).To(gomega.Succeed())
}

func TestDefaultConfig(t *testing.T) {
	gomega.RegisterTestingT(t)

	p := NewPlugin()
	gomega.Expect(p.Init()).To(gomega.Succeed())
	defer p.Close()
	gomega.Expect(p.Config.Address()).To(gomega.Equal("127.0.0.1:57777"))
}
