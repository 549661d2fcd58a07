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
	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/replacerc/pkg/replace"
)

// 📏 Rule is a single declarative replacement
type Rule struct {
	// From is the literal text to search for
	From string `yaml:"from" hcl:"from"`

	// To is the replacement text
	To string `yaml:"to" hcl:"to"`

	// Glob optionally restricts the rule to streams whose name matches
	Glob string `yaml:"glob,omitempty" hcl:"glob,optional"`
}

// 📦 RuleSet is an ordered list of rules; order sets match priority
type RuleSet struct {
	Rules []Rule `yaml:"rules"`
}

// ✅ Validate checks that every rule is well formed
func (s RuleSet) Validate() error {
	for i, r := range s.Rules {
		if r.From == "" {
			return errors.Errorf("rule %d: from is required", i)
		}
		if r.Glob != "" && !doublestar.ValidatePattern(r.Glob) {
			return errors.Errorf("rule %d: invalid glob: %s", i, r.Glob)
		}
	}
	return nil
}

// 🔍 For returns the subset of rules that apply to the named stream
func (s RuleSet) For(name string) RuleSet {
	var out RuleSet
	for _, r := range s.Rules {
		if r.Glob == "" {
			out.Rules = append(out.Rules, r)
			continue
		}
		matched, err := doublestar.Match(r.Glob, name)
		if err == nil && matched {
			out.Rules = append(out.Rules, r)
		}
	}
	return out
}

// 🛠️ Compile validates the set and lowers it to engine rules over bytes
func (s RuleSet) Compile() ([]replace.Rule[byte], error) {
	if err := s.Validate(); err != nil {
		return nil, errors.Errorf("validating rule set: %w", err)
	}

	compiled := make([]replace.Rule[byte], 0, len(s.Rules))
	for _, r := range s.Rules {
		compiled = append(compiled, replace.Rule[byte]{
			From: []byte(r.From),
			To:   []byte(r.To),
		})
	}
	return compiled, nil
}
