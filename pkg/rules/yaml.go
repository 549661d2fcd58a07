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
	"strings"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

func init() {
	Register(&YAMLParser{})
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

// 📝 Parse parses the rule set from YAML
func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*RuleSet, error) {
	// Define YAML schema
	type yamlRule struct {
		From string `yaml:"from"`
		To   string `yaml:"to"`
		Glob string `yaml:"glob,omitempty"`
	}
	type yamlRuleSet struct {
		Rules []yamlRule `yaml:"rules"`
	}

	// Parse YAML
	var raw yamlRuleSet
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	// Convert to model
	set := &RuleSet{}
	for _, r := range raw.Rules {
		set.Rules = append(set.Rules, Rule{
			From: r.From,
			To:   r.To,
			Glob: r.Glob,
		})
	}

	return set, nil
}
