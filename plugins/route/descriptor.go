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
	"encoding/binary"
	"fmt"
	"net"

	"github.com/go-errors/errors"
)

// MaxLabel is the highest value of the 20-bit MPLS label space.
const MaxLabel = 1<<20 - 1

// Descriptor is the full description of one IPv4 route to be programmed
// into a VRF of the router. Descriptors are compared by value with Equal.
type Descriptor struct {
	VrfName       string
	Prefix        net.IP
	PrefixLen     uint32
	AdminDistance uint32

	// path attributes, ignored on delete
	NexthopIP   net.IP
	NexthopIntf string
	LoadMetric  uint32
	// LabelStack is ordered outermost first.
	LabelStack []uint32
}

// Equal returns true if both descriptors describe the same route including
// its path. Two nil descriptors are equal.
func (d *Descriptor) Equal(other *Descriptor) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.VrfName != other.VrfName ||
		d.PrefixLen != other.PrefixLen ||
		d.AdminDistance != other.AdminDistance ||
		d.NexthopIntf != other.NexthopIntf ||
		d.LoadMetric != other.LoadMetric {
		return false
	}
	if !ipEqual(d.Prefix, other.Prefix) || !ipEqual(d.NexthopIP, other.NexthopIP) {
		return false
	}
	if len(d.LabelStack) != len(other.LabelStack) {
		return false
	}
	for i := range d.LabelStack {
		if d.LabelStack[i] != other.LabelStack[i] {
			return false
		}
	}
	return true
}

func ipEqual(a, b net.IP) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

// Validate checks that the descriptor can be sent to the router.
func (d *Descriptor) Validate() error {
	if err := d.ValidateKey(); err != nil {
		return err
	}
	if d.NexthopIP != nil && d.NexthopIP.To4() == nil {
		return errors.Errorf("nexthop %v is not an IPv4 address", d.NexthopIP)
	}
	for _, label := range d.LabelStack {
		if label > MaxLabel {
			return errors.Errorf("label %d is out of the MPLS label range", label)
		}
	}
	return nil
}

// ValidateKey checks only the fields identifying the route. Path attributes
// are ignored, a delete accepts any of them.
func (d *Descriptor) ValidateKey() error {
	if d.VrfName == "" {
		return errors.New("route without VRF name")
	}
	if d.Prefix.To4() == nil {
		return errors.Errorf("prefix %v is not an IPv4 address", d.Prefix)
	}
	if d.PrefixLen > 32 {
		return errors.Errorf("invalid prefix length %d", d.PrefixLen)
	}
	return nil
}

// String returns human-readable representation of the route.
func (d *Descriptor) String() string {
	if d == nil {
		return "<none>"
	}
	return fmt.Sprintf("%s/%d vrf=%s ad=%d via %v dev %s metric=%d labels=%v",
		d.Prefix, d.PrefixLen, d.VrfName, d.AdminDistance,
		d.NexthopIP, d.NexthopIntf, d.LoadMetric, d.LabelStack)
}

// IPv4ToUint32 converts IPv4 address into the integer form used on the wire.
func IPv4ToUint32(ip net.IP) (uint32, error) {
	ip4 := ip.To4()
	if ip4 == nil {
		return 0, errors.Errorf("%v is not an IPv4 address", ip)
	}
	return binary.BigEndian.Uint32(ip4), nil
}

// Uint32ToIPv4 converts the wire form of an IPv4 address into net.IP.
func Uint32ToIPv4(addr uint32) net.IP {
	ip := make(net.IP, net.IPv4len)
	binary.BigEndian.PutUint32(ip, addr)
	return ip
}
