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

package cmd

import (
	"testing"

	"github.com/onsi/gomega"

	"github.com/contiv/slroute/plugins/route"
)

func TestParseLabels(t *testing.T) {
	gomega.RegisterTestingT(t)

	labels, err := parseLabels("100004, 100006")
	gomega.Expect(err).To(gomega.BeNil())
	gomega.Expect(labels).To(gomega.Equal([]uint32{100004, 100006}))

	labels, err = parseLabels("")
	gomega.Expect(err).To(gomega.BeNil())
	gomega.Expect(labels).To(gomega.BeEmpty())

	_, err = parseLabels("100004,x")
	gomega.Expect(err).ToNot(gomega.BeNil())
}

func TestRouteFromFlags(t *testing.T) {
	gomega.RegisterTestingT(t)

	routeFlags.vrf = "default"
	routeFlags.prefix = "172.31.101.69/32"
	routeFlags.adminDistance = 2
	routeFlags.nexthop = ""
	routeFlags.labels = ""

	// remove does not need the path
	d, err := routeFromFlags(route.OpRemove)
	gomega.Expect(err).To(gomega.BeNil())
	gomega.Expect(d.Prefix.String()).To(gomega.Equal("172.31.101.69"))

	_, err = routeFromFlags(route.OpAdd)
	gomega.Expect(err).ToNot(gomega.BeNil())

	routeFlags.nexthop = "172.31.101.44"
	routeFlags.labels = "100004,100006"
	d, err = routeFromFlags(route.OpAdd)
	gomega.Expect(err).To(gomega.BeNil())
	gomega.Expect(d.LabelStack).To(gomega.Equal([]uint32{100004, 100006}))

	// path attributes are not checked on remove
	routeFlags.nexthop = "2001:db8::1"
	routeFlags.labels = "2000000"
	d, err = routeFromFlags(route.OpRemove)
	gomega.Expect(err).To(gomega.BeNil())
	gomega.Expect(d.LabelStack).To(gomega.Equal([]uint32{2000000}))

	_, err = routeFromFlags(route.OpAdd)
	gomega.Expect(err).ToNot(gomega.BeNil())
}
