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
	"fmt"
	"net"
	"strconv"
	"sync"

	driver "github.com/arangodb/go-driver"
	"github.com/arangodb/go-driver/http"
	"github.com/ligato/cn-infra/logging"
	"github.com/pkg/errors"
)

// shortest path weighted by the outbound utilization of the links,
// the first vertex has no incoming edge
const leastUtilizedPathQuery = `FOR v, e IN OUTBOUND SHORTEST_PATH @src TO @dst @@edges
    OPTIONS {weightAttribute: @weight}
    FILTER e != null
    RETURN e`

// ArangoConfig is the configuration of the Jalapeño topology database.
type ArangoConfig struct {
	Endpoints        []string `json:"endpoints"`
	Username         string   `json:"username"`
	Password         string   `json:"password"`
	Database         string   `json:"database"`
	VertexCollection string   `json:"vertexCollection"`
	EdgeCollection   string   `json:"edgeCollection"`
	WeightAttribute  string   `json:"weightAttribute"`
	NexthopAttribute string   `json:"nexthopAttribute"`
	SIDAttribute     string   `json:"sidAttribute"`
}

// DefaultArangoConfig returns the configuration of a default Jalapeño
// deployment.
func DefaultArangoConfig() ArangoConfig {
	return ArangoConfig{
		Endpoints:        []string{"http://localhost:8529"},
		Username:         "root",
		Database:         "jalapeno",
		VertexCollection: "LSNode",
		EdgeCollection:   "LSv4_Topology",
		WeightAttribute:  "Percent_Util_Outbound",
		NexthopAttribute: "Remote_IP",
		SIDAttribute:     "Remote_Prefix_SID",
	}
}

// ArangoSource queries the shortest path from the Jalapeño topology
// stored in ArangoDB.
type ArangoSource struct {
	cfg    ArangoConfig
	log    logging.Logger
	client driver.Client

	mu sync.Mutex
	db driver.Database
}

// NewArangoSource creates the database client. The database itself is
// opened by the first query.
func NewArangoSource(cfg ArangoConfig, log logging.Logger) (*ArangoSource, error) {
	conn, err := http.NewConnection(http.ConnectionConfig{
		Endpoints: cfg.Endpoints,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create ArangoDB connection")
	}
	client, err := driver.NewClient(driver.ClientConfig{
		Connection:     conn,
		Authentication: driver.BasicAuthentication(cfg.Username, cfg.Password),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create ArangoDB client")
	}
	return &ArangoSource{cfg: cfg, log: log, client: client}, nil
}

func (s *ArangoSource) database(ctx context.Context) (driver.Database, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		return s.db, nil
	}
	db, err := s.client.Database(ctx, s.cfg.Database)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database %s", s.cfg.Database)
	}
	s.db = db
	return db, nil
}

// GetLeastUtilizedPath runs the shortest path query between the two nodes
// identified by their router IDs.
func (s *ArangoSource) GetLeastUtilizedPath(ctx context.Context, src, dst string) ([]Hop, error) {
	db, err := s.database(ctx)
	if err != nil {
		return nil, err
	}

	cursor, err := db.Query(ctx, leastUtilizedPathQuery, s.bindVars(src, dst))
	if err != nil {
		return nil, errors.Wrap(err, "shortest path query failed")
	}
	defer cursor.Close()

	var hops []Hop
	for {
		var edge map[string]interface{}
		_, err := cursor.ReadDocument(ctx, &edge)
		if driver.IsNoMoreDocuments(err) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read path edge")
		}
		hop, err := s.edgeToHop(edge)
		if err != nil {
			return nil, err
		}
		hops = append(hops, hop)
	}

	s.log.WithFields(logging.Fields{"src": src, "dst": dst, "hops": len(hops)}).Debug("Path query finished")
	return hops, nil
}

func (s *ArangoSource) bindVars(src, dst string) map[string]interface{} {
	return map[string]interface{}{
		"src":    s.cfg.VertexCollection + "/" + src,
		"dst":    s.cfg.VertexCollection + "/" + dst,
		"@edges": s.cfg.EdgeCollection,
		"weight": s.cfg.WeightAttribute,
	}
}

func (s *ArangoSource) edgeToHop(edge map[string]interface{}) (Hop, error) {
	rawIP, ok := edge[s.cfg.NexthopAttribute].(string)
	if !ok {
		return Hop{}, errors.Errorf("edge %v has no %s", edge["_key"], s.cfg.NexthopAttribute)
	}
	ip := net.ParseIP(rawIP)
	if ip == nil {
		return Hop{}, errors.Errorf("edge %v: invalid %s %q", edge["_key"], s.cfg.NexthopAttribute, rawIP)
	}
	return Hop{NexthopIP: ip, SID: sidString(edge[s.cfg.SIDAttribute])}, nil
}

func sidString(v interface{}) string {
	switch sid := v.(type) {
	case nil:
		return ""
	case string:
		return sid
	case float64:
		return strconv.FormatFloat(sid, 'f', -1, 64)
	case json.Number:
		return sid.String()
	default:
		return fmt.Sprint(sid)
	}
}
