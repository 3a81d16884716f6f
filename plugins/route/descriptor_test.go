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
	"net"
	"testing"

	"github.com/onsi/gomega"
)

func testDescriptor() *Descriptor {
	return &Descriptor{
		VrfName:       "default",
		Prefix:        net.ParseIP("172.31.101.69"),
		PrefixLen:     32,
		AdminDistance: 2,
		NexthopIP:     net.ParseIP("172.31.101.44"),
		NexthopIntf:   "GigabitEthernet0/0/0/1",
		LoadMetric:    1,
		LabelStack:    []uint32{100004, 100006},
	}
}

func TestDescriptorEqual(t *testing.T) {
	gomega.RegisterTestingT(t)

	a := testDescriptor()
	b := testDescriptor()
	b.Prefix = net.IPv4(172, 31, 101, 69).To4()
	gomega.Expect(a.Equal(b)).To(gomega.BeTrue())

	var none *Descriptor
	gomega.Expect(none.Equal(nil)).To(gomega.BeTrue())
	gomega.Expect(none.Equal(a)).To(gomega.BeFalse())
	gomega.Expect(a.Equal(nil)).To(gomega.BeFalse())

	b.LabelStack = []uint32{100006, 100004}
	gomega.Expect(a.Equal(b)).To(gomega.BeFalse())

	b = testDescriptor()
	b.LabelStack = nil
	gomega.Expect(a.Equal(b)).To(gomega.BeFalse())

	b = testDescriptor()
	b.NexthopIP = net.ParseIP("172.31.101.45")
	gomega.Expect(a.Equal(b)).To(gomega.BeFalse())

	b = testDescriptor()
	b.NexthopIP = nil
	gomega.Expect(a.Equal(b)).To(gomega.BeFalse())
}

func TestDescriptorValidate(t *testing.T) {
	gomega.RegisterTestingT(t)

	gomega.Expect(testDescriptor().Validate()).To(gomega.Succeed())

	d := testDescriptor()
	d.VrfName = ""
	gomega.Expect(d.Validate()).ToNot(gomega.Succeed())

	d = testDescriptor()
	d.Prefix = net.ParseIP("2001:db8::1")
	gomega.Expect(d.Validate()).ToNot(gomega.Succeed())

	d = testDescriptor()
	d.PrefixLen = 33
	gomega.Expect(d.Validate()).ToNot(gomega.Succeed())

	d = testDescriptor()
	d.LabelStack = []uint32{MaxLabel + 1}
	gomega.Expect(d.Validate()).ToNot(gomega.Succeed())
}

func TestIPv4Conversion(t *testing.T) {
	gomega.RegisterTestingT(t)

	addr, err := IPv4ToUint32(net.ParseIP("172.31.101.69"))
	gomega.Expect(err).To(gomega.BeNil())
	gomega.Expect(addr).To(gomega.BeEquivalentTo(0xac1f6545))
	gomega.Expect(Uint32ToIPv4(addr).String()).To(gomega.Equal("172.31.101.69"))

	_, err = IPv4ToUint32(net.ParseIP("::1"))
	gomega.Expect(err).ToNot(gomega.BeNil())
}
