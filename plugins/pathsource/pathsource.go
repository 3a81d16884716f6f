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
	"sync"

	"github.com/ligato/cn-infra/infra"
	"github.com/ligato/cn-infra/logging"
	"github.com/pkg/errors"
)

const (
	// ArangoType selects the Jalapeño (ArangoDB) path source.
	ArangoType = "arango"
	// StaticType selects the path configured statically.
	StaticType = "static"
)

// Config selects and configures the path source.
type Config struct {
	Type   string       `json:"type"`
	Arango ArangoConfig `json:"arango"`
	Static []StaticHop  `json:"static"`
}

// Plugin provides the configured path source.
type Plugin struct {
	Deps

	sync.Mutex
	source API
}

// Deps groups the dependencies of the Plugin.
type Deps struct {
	infra.PluginDeps
	Config *Config
}

// Init creates the configured path source.
func (p *Plugin) Init() (err error) {
	if p.Config == nil {
		return errors.New("missing path source configuration")
	}

	switch p.Config.Type {
	case ArangoType, "":
		p.source, err = NewArangoSource(p.Config.Arango, p.Log)
	case StaticType:
		p.source, err = NewStaticSource(p.Config.Static)
	default:
		err = errors.Errorf("unknown path source type %q", p.Config.Type)
	}
	if err != nil {
		return err
	}

	p.Log.WithFields(logging.Fields{"type": p.Config.Type}).Info("Path source initialized")
	return nil
}

// Close is NOOP.
func (p *Plugin) Close() error {
	return nil
}

// GetLeastUtilizedPath delegates the query to the configured source.
func (p *Plugin) GetLeastUtilizedPath(ctx context.Context, src, dst string) ([]Hop, error) {
	p.Lock()
	source := p.source
	p.Unlock()
	if source == nil {
		return nil, errors.New("path source not initialized")
	}
	return source.GetLeastUtilizedPath(ctx, src, dst)
}
