/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package mapper

import (
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/dispatch"
	"dirpx.dev/dispatch/apis"
	"dirpx.dev/dispatch/mapper/internal/segmenttrie"
	"dirpx.dev/dispatch/origin"
)

// New constructs an immutable apis.FaultMapper snapshot.
//
// The resulting apis.FaultMapper is fully thread-safe and designed for
// long-lived reuse. Each build creates a self-contained mapper instance — no
// shared references to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with library default sentinel rules.
//  2. Apply user-provided options (overrides, origin prefixes, defaults).
//  3. Validate every rule: sentinel rules must carry a target and a fault.
//  4. Normalize and validate all origin prefixes (via origin.Normalize) and
//     compile them into a segment trie supporting longest-prefix-match with
//     '*' as a single-segment wildcard.
//  5. Freeze rule slices and the trie into the final snapshot.
//
// Errors returned from this function indicate invalid prefixes or nil rule
// components.
func New(opts ...Option) (apis.FaultMapper, error) {
	// (0) Start from a builder seeded with library defaults only.
	b := newBuilder()

	// (1) Apply user-supplied options (overrides, prefixes, defaults).
	for _, opt := range opts {
		opt(b)
	}

	// (2) Validate sentinel rules up front so a broken rule fails the build
	// instead of silently never matching.
	for _, r := range b.overrides {
		if r.target == nil {
			return nil, fmt.Errorf("mapper: override with nil target")
		}
		if r.fault == nil {
			return nil, fmt.Errorf("mapper: override for %q with nil fault", r.target)
		}
	}
	for _, r := range b.defaults {
		if r.target == nil {
			return nil, fmt.Errorf("mapper: default with nil target")
		}
		if r.fault == nil {
			return nil, fmt.Errorf("mapper: default for %q with nil fault", r.target)
		}
	}

	// (3) Build the origin prefix trie. Each rule prefix is normalized and
	// validated before insertion.
	var trie *segmenttrie.Trie[dispatch.Fault]
	if len(b.prefixes) > 0 {
		trie = segmenttrie.New[dispatch.Fault]()
		for _, r := range b.prefixes {
			if r.fault == nil {
				return nil, fmt.Errorf("mapper: origin prefix %q with nil fault", r.prefix)
			}
			p, err := normalizeAndValidatePrefix(r.prefix)
			if err != nil {
				return nil, fmt.Errorf("mapper: invalid origin prefix %q: %w", r.prefix, err)
			}
			if err := trie.Insert(p, r.fault); err != nil {
				return nil, fmt.Errorf("mapper: cannot insert origin prefix %q: %w", p, err)
			}
		}
	}

	// (4) Freeze everything into a read-only snapshot. Rule slices are
	// freshly allocated; the trie is immutable after build.
	return &mapper{
		overrides: freezeRules(b.overrides),
		trie:      trie,
		defaults:  freezeRules(b.defaults),
	}, nil
}

// mapper is an immutable FaultMapper implementation combining exact sentinel
// overrides, a segment-aware origin prefix trie, and default sentinel rules.
// Lookups walk the error chain at most three times and are safe for
// concurrent use once constructed.
type mapper struct {
	// overrides holds exact sentinel rules, checked first.
	overrides []sentinelRule

	// trie resolves faults by longest-prefix-match over the error's origin.
	// Nil when no prefix rules were registered.
	trie *segmenttrie.Trie[dispatch.Fault]

	// defaults holds sentinel rules checked when no override, faulter, or
	// origin rule applied. User rules precede library rules.
	defaults []sentinelRule
}

// Fault resolves err to a fault. It returns nil only when err is nil; every
// non-nil error resolves, worst case to Unspecified.
//
// Resolution order (highest to lowest):
//
//  1. exact sentinel override (errors.Is, registration order);
//  2. apis.Faulter self-description from the error chain;
//  3. longest-prefix-match rule on the error's origin;
//  4. default sentinel rules (user first, then library);
//  5. Unspecified fallback, carrying indices from apis.Indexed when present.
func (m *mapper) Fault(err error) dispatch.Fault {
	if err == nil {
		return nil
	}
	f, _, _ := m.resolve(err)
	return f
}

// resolve runs the tiered lookup and reports which tier produced the fault.
// source is one of "override", "faulter", "prefix", "default", "fallback";
// pattern is set only for prefix matches.
func (m *mapper) resolve(err error) (f dispatch.Fault, source, pattern string) {
	// 1. Exact overrides, registration order.
	for _, r := range m.overrides {
		if errors.Is(err, r.target) {
			return r.fault, "override", ""
		}
	}

	// 2. Self-describing errors.
	var fr apis.Faulter
	if errors.As(err, &fr) {
		if df := fr.DispatchFault(); df != nil {
			return df, "faulter", ""
		}
	}

	// 3. LPM over the error's origin.
	if m.trie != nil {
		var og apis.Originated
		if errors.As(err, &og) {
			if key := origin.Normalize(og.FaultOrigin()); key != "" {
				if v, ok, pat := m.trie.MatchWithPattern(key); ok {
					return v, "prefix", pat
				}
			}
		}
	}

	// 4. Default sentinels.
	for _, r := range m.defaults {
		if errors.Is(err, r.target) {
			return r.fault, "default", ""
		}
	}

	// 5. Total fallback. An error that can name its raw boundary bytes
	// keeps them as breadcrumbs.
	var ix apis.Indexed
	if errors.As(err, &ix) {
		d, e, eb := ix.FaultIndices()
		return dispatch.Unspecified{DispatchErrorIndex: d, ErrorIndex: e, Error: eb}, "fallback", ""
	}
	return dispatch.Unspecified{}, "fallback", ""
}

// Explain produces a textual trace of how the mapper resolved a fault for a
// particular error.
//
// This is primarily a diagnostic tool: it shows which tier matched
// (override, faulter, prefix, default, or fallback) and, for prefix matches,
// which pattern was used.
//
// Example output:
//
//	error="fungibles: balance too low"
//	fault: source=prefix pattern="fungibles.transfer" -> use_case(fungibles(insufficient_balance))
//
// Notes:
//   - source ∈ {override | faulter | prefix | default | fallback}
//   - pattern is the rule as it was stored in the trie (may contain "*")
func (m *mapper) Explain(err error) string {
	if err == nil {
		return "error=<nil>\nfault: source=none"
	}

	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "error=%q\n", err.Error())

	f, source, pattern := m.resolve(err)
	if pattern != "" {
		_, _ = fmt.Fprintf(&b, "fault: source=%s pattern=%q -> %s", source, pattern, f)
	} else {
		_, _ = fmt.Fprintf(&b, "fault: source=%s -> %s", source, f)
	}
	return b.String()
}

// normalizeAndValidatePrefix ensures an origin prefix is canonical and valid.
// It applies the same normalization as full origins (origin.Normalize) but
// additionally admits "*" segments; whole-prefix wildcards are rejected.
func normalizeAndValidatePrefix(raw string) (string, error) {
	p := origin.Normalize(raw)
	if p == "" {
		return "", fmt.Errorf("empty prefix")
	}
	segs := strings.Split(p, ".")
	allWild := true
	for _, seg := range segs {
		if !validPrefixSegment(seg) {
			return "", fmt.Errorf("invalid segment %q", seg)
		}
		if seg != "*" {
			allWild = false
		}
	}
	if allWild {
		return "", fmt.Errorf("prefix cannot consist of '*' only")
	}
	return p, nil
}

// validPrefixSegment reports whether seg is a valid trie segment for prefixes.
// Rules:
//   - empty segments are invalid;
//   - the segment "*" is allowed;
//   - otherwise the segment must match: [a-z][a-z0-9_]*
func validPrefixSegment(seg string) bool {
	if seg == "" {
		return false
	}
	if seg == "*" {
		return true
	}
	if seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return false
	}
	return true
}
