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

package pathsource

import (
	"context"
	"net"
	"testing"

	"github.com/ligato/cn-infra/logging"
	"github.com/onsi/gomega"
)

func TestStaticSource(t *testing.T) {
	gomega.RegisterTestingT(t)

	p := NewPlugin(UseDeps(func(deps *Deps) {
		deps.Config = &Config{
			Type: StaticType,
			Static: []StaticHop{
				{NexthopIP: "172.31.101.44", SID: "100002"},
				{NexthopIP: "10.1.1.1", SID: "100004"},
				{NexthopIP: "10.1.1.2", SID: "100006"},
			},
		}
	}))
	gomega.Expect(p.Init()).To(gomega.Succeed())

	hops, err := p.GetLeastUtilizedPath(context.Background(), "10.0.0.1", "10.0.0.2")
	gomega.Expect(err).To(gomega.BeNil())
	gomega.Expect(hops).To(gomega.HaveLen(3))
	gomega.Expect(hops[0].NexthopIP.Equal(net.ParseIP("172.31.101.44"))).To(gomega.BeTrue())
	gomega.Expect(hops[2].SID).To(gomega.Equal("100006"))

	// returned path is a copy
	hops[0].SID = "changed"
	again, _ := p.GetLeastUtilizedPath(context.Background(), "10.0.0.1", "10.0.0.2")
	gomega.Expect(again[0].SID).To(gomega.Equal("100002"))
}

func TestInvalidConfig(t *testing.T) {
	gomega.RegisterTestingT(t)

	p := NewPlugin(UseDeps(func(deps *Deps) {
		deps.Config = &Config{
			Type:   StaticType,
			Static: []StaticHop{{NexthopIP: "not-an-ip"}},
		}
	}))
	gomega.Expect(p.Init()).ToNot(gomega.Succeed())

	p = NewPlugin(UseDeps(func(deps *Deps) {
		deps.Config = &Config{Type: "bgp"}
	}))
	gomega.Expect(p.Init()).ToNot(gomega.Succeed())

	_, err := p.GetLeastUtilizedPath(context.Background(), "a", "b")
	gomega.Expect(err).ToNot(gomega.BeNil())
}

func TestArangoEdgeDecoding(t *testing.T) {
	gomega.RegisterTestingT(t)

	s, err := NewArangoSource(DefaultArangoConfig(), logging.ForPlugin("arango-test"))
	gomega.Expect(err).To(gomega.BeNil())

	vars := s.bindVars("10.0.0.1", "10.0.0.2")
	gomega.Expect(vars).To(gomega.Equal(map[string]interface{}{
		"src":    "LSNode/10.0.0.1",
		"dst":    "LSNode/10.0.0.2",
		"@edges": "LSv4_Topology",
		"weight": "Percent_Util_Outbound",
	}))

	hop, err := s.edgeToHop(map[string]interface{}{
		"_key":              "e1",
		"Remote_IP":         "172.31.101.44",
		"Remote_Prefix_SID": float64(100004),
	})
	gomega.Expect(err).To(gomega.BeNil())
	gomega.Expect(hop.NexthopIP.String()).To(gomega.Equal("172.31.101.44"))
	gomega.Expect(hop.SID).To(gomega.Equal("100004"))

	hop, err = s.edgeToHop(map[string]interface{}{
		"Remote_IP":         "172.31.101.45",
		"Remote_Prefix_SID": "100006",
	})
	gomega.Expect(err).To(gomega.BeNil())
	gomega.Expect(hop.SID).To(gomega.Equal("100006"))

	_, err = s.edgeToHop(map[string]interface{}{"_key": "e2"})
	gomega.Expect(err).ToNot(gomega.BeNil())
}
