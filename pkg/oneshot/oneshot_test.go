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

package oneshot

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/onsi/gomega"
)

func TestSetIsIdempotent(t *testing.T) {
	gomega.RegisterTestingT(t)

	s := New()
	gomega.Expect(s.IsSet()).To(gomega.BeFalse())
	gomega.Expect(s.Set()).To(gomega.BeTrue())
	gomega.Expect(s.Set()).To(gomega.BeFalse())
	gomega.Expect(s.IsSet()).To(gomega.BeTrue())
	gomega.Expect(s.Done()).To(gomega.BeClosed())
}

func TestConcurrentSet(t *testing.T) {
	gomega.RegisterTestingT(t)

	s := New()
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		first int
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.Set() {
				mu.Lock()
				first++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	gomega.Expect(first).To(gomega.Equal(1))
}

func TestWait(t *testing.T) {
	gomega.RegisterTestingT(t)

	s := New()
	var w Waiter = s

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	gomega.Expect(w.Wait(ctx)).To(gomega.Equal(context.DeadlineExceeded))

	go func() {
		time.Sleep(10 * time.Millisecond)
		s.Set()
	}()
	gomega.Expect(w.Wait(context.Background())).To(gomega.Succeed())
	gomega.Expect(w.IsSet()).To(gomega.BeTrue())
}
