// Copyright 2020 ConsenSys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package plonkverifier

import (
	"runtime"

	"github.com/rs/zerolog"
)

// Option configures a Verify call.
type Option func(*verifyConfig)

type verifyConfig struct {
	parallelism int
	log         zerolog.Logger
}

func newVerifyConfig(opts ...Option) verifyConfig {
	cfg := verifyConfig{
		parallelism: runtime.GOMAXPROCS(0),
		log:         zerolog.Nop(),
	}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.parallelism < 1 {
		cfg.parallelism = 1
	}
	return cfg
}

// WithParallelism bounds the number of goroutines the barycentric
// evaluation loop may use. WithParallelism(1) forces that loop onto the
// sequential path, for restricted environments (REDESIGN FLAGS
// "Parallelism", SPEC_FULL.md §D). The linearization and aggregation MSMs
// are not bound by it: they run with gnark-crypto's default task count.
func WithParallelism(n int) Option {
	return func(cfg *verifyConfig) { cfg.parallelism = n }
}

// WithLogger attaches a structured logger to a Verify call.
func WithLogger(l zerolog.Logger) Option {
	return func(cfg *verifyConfig) { cfg.log = l }
}
