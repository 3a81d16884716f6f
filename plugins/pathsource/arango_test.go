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
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/ligato/cn-infra/logging"
	"github.com/onsi/gomega"
)

const (
	dbCurrentPath = "/_db/jalapeno/_api/database/current"
	cursorPath    = "/_db/jalapeno/_api/cursor"
)

// fakeArango answers the database and cursor requests of the driver.
type fakeArango struct {
	sync.Mutex
	dbOpens  int
	queries  []map[string]interface{}
	edges    []map[string]interface{}
	queryErr bool
}

func (f *fakeArango) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.Lock()
	defer f.Unlock()

	switch {
	case r.URL.Path == dbCurrentPath && r.Method == http.MethodGet:
		f.dbOpens++
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"error": false,
			"code":  http.StatusOK,
			"result": map[string]interface{}{
				"name":     "jalapeno",
				"id":       "1",
				"path":     "/var/lib/arangodb3/databases/database-1",
				"isSystem": false,
			},
		})
	case r.URL.Path == cursorPath && r.Method == http.MethodPost:
		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, arangoError(http.StatusBadRequest, err.Error()))
			return
		}
		f.queries = append(f.queries, body)
		if f.queryErr {
			writeJSON(w, http.StatusBadRequest, arangoError(http.StatusBadRequest, "AQL: syntax error"))
			return
		}
		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"error":   false,
			"code":    http.StatusCreated,
			"hasMore": false,
			"cached":  false,
			"count":   len(f.edges),
			"result":  f.edges,
		})
	default:
		writeJSON(w, http.StatusNotFound, arangoError(http.StatusNotFound, "unknown path "+r.URL.Path))
	}
}

func (f *fakeArango) counts() (dbOpens, queries int) {
	f.Lock()
	defer f.Unlock()
	return f.dbOpens, len(f.queries)
}

func arangoError(code int, msg string) map[string]interface{} {
	return map[string]interface{}{
		"error":        true,
		"code":         code,
		"errorNum":     1501,
		"errorMessage": msg,
	}
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

func newFakeArangoSource(fake *fakeArango) (*ArangoSource, *httptest.Server) {
	srv := httptest.NewServer(fake)
	cfg := DefaultArangoConfig()
	cfg.Endpoints = []string{srv.URL}
	s, err := NewArangoSource(cfg, logging.ForPlugin("arango-test"))
	gomega.Expect(err).To(gomega.BeNil())
	return s, srv
}

func TestArangoQuery(t *testing.T) {
	gomega.RegisterTestingT(t)

	fake := &fakeArango{
		edges: []map[string]interface{}{
			{"_key": "e1", "Remote_IP": "172.31.101.44", "Remote_Prefix_SID": 100002},
			{"_key": "e2", "Remote_IP": "10.1.1.1", "Remote_Prefix_SID": 100004},
			{"_key": "e3", "Remote_IP": "10.1.1.2", "Remote_Prefix_SID": "100006"},
		},
	}
	s, srv := newFakeArangoSource(fake)
	defer srv.Close()

	hops, err := s.GetLeastUtilizedPath(context.Background(), "10.0.0.1", "10.0.0.9")
	gomega.Expect(err).To(gomega.BeNil())
	gomega.Expect(hops).To(gomega.HaveLen(3))
	gomega.Expect(hops[0].NexthopIP.Equal(net.ParseIP("172.31.101.44"))).To(gomega.BeTrue())
	gomega.Expect(hops[1].NexthopIP.Equal(net.ParseIP("10.1.1.1"))).To(gomega.BeTrue())
	gomega.Expect(hops[2].NexthopIP.Equal(net.ParseIP("10.1.1.2"))).To(gomega.BeTrue())
	gomega.Expect([]string{hops[0].SID, hops[1].SID, hops[2].SID}).To(
		gomega.Equal([]string{"100002", "100004", "100006"}))

	fake.Lock()
	query := fake.queries[0]
	fake.Unlock()
	gomega.Expect(query["query"]).To(gomega.Equal(leastUtilizedPathQuery))
	gomega.Expect(query["bindVars"]).To(gomega.Equal(map[string]interface{}{
		"src":    "LSNode/10.0.0.1",
		"dst":    "LSNode/10.0.0.9",
		"@edges": "LSv4_Topology",
		"weight": "Percent_Util_Outbound",
	}))

	// the database is opened only once
	_, err = s.GetLeastUtilizedPath(context.Background(), "10.0.0.1", "10.0.0.9")
	gomega.Expect(err).To(gomega.BeNil())
	dbOpens, queries := fake.counts()
	gomega.Expect(dbOpens).To(gomega.Equal(1))
	gomega.Expect(queries).To(gomega.Equal(2))
}

func TestArangoEmptyPath(t *testing.T) {
	gomega.RegisterTestingT(t)

	s, srv := newFakeArangoSource(&fakeArango{})
	defer srv.Close()

	hops, err := s.GetLeastUtilizedPath(context.Background(), "10.0.0.1", "10.0.0.1")
	gomega.Expect(err).To(gomega.BeNil())
	gomega.Expect(hops).To(gomega.BeEmpty())
}

func TestArangoErrors(t *testing.T) {
	gomega.RegisterTestingT(t)

	// query rejected by the server
	fake := &fakeArango{queryErr: true}
	s, srv := newFakeArangoSource(fake)
	_, err := s.GetLeastUtilizedPath(context.Background(), "10.0.0.1", "10.0.0.9")
	gomega.Expect(err).ToNot(gomega.BeNil())
	gomega.Expect(err.Error()).To(gomega.ContainSubstring("shortest path query failed"))
	srv.Close()

	// edge without a nexthop address
	fake = &fakeArango{
		edges: []map[string]interface{}{
			{"_key": "e1", "Remote_Prefix_SID": 100002},
		},
	}
	s, srv = newFakeArangoSource(fake)
	_, err = s.GetLeastUtilizedPath(context.Background(), "10.0.0.1", "10.0.0.9")
	gomega.Expect(err).ToNot(gomega.BeNil())
	gomega.Expect(err.Error()).To(gomega.ContainSubstring("Remote_IP"))
	srv.Close()

	// database not reachable
	s, srv = newFakeArangoSource(&fakeArango{})
	srv.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err = s.GetLeastUtilizedPath(ctx, "10.0.0.1", "10.0.0.9")
	gomega.Expect(err).ToNot(gomega.BeNil())
	gomega.Expect(err.Error()).To(gomega.ContainSubstring("failed to open database jalapeno"))
}
