// Copyright 2025 walteh LLC
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

package rules

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for rule-set parsers
type Parser interface {
	// 📝 Parse parses a rule set from bytes
	Parse(ctx context.Context, data []byte) (*RuleSet, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📂 Load reads, parses and validates a rule-set file
func Load(ctx context.Context, path string) (*RuleSet, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading rule set")

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser for file: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading rule set: %w", err)
	}

	set, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing rule set: %w", err)
	}

	if err := set.Validate(); err != nil {
		return nil, errors.Errorf("validating rule set: %w", err)
	}

	logger.Debug().Int("rules", len(set.Rules)).Msg("rule set loaded")
	return set, nil
}
