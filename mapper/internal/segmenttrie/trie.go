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

// Package segmenttrie implements the prefix index the mapper uses to match
// fault origins against mapping rules.
package segmenttrie

import (
	"errors"
	"strings"
)

// Trie is a segment-aware prefix index for dot-separated origin keys. Each
// node represents one segment; the wildcard "*" matches exactly one segment.
// Lookups are longest-prefix-match on segment boundaries, so a more specific
// rule always wins over a shorter one, and an exact segment wins over a
// wildcard at equal depth.
//
// A Trie is mutable during construction and must be treated as read-only
// once handed to concurrent readers.
type Trie[T any] struct {
	// children holds the next segments, including "*" for the one-segment
	// wildcard branch.
	children map[string]*Trie[T]
	// hasVal marks that a rule ends at this node.
	hasVal bool
	val    T
	// pattern is the canonical dotted prefix for this node (with '*' where
	// a wildcard was used), set only when hasVal. It is stored so Explain
	// output can show the matched rule without rebuilding strings on the
	// lookup path.
	pattern string
}

// ErrInvalidPrefix is returned when inserting a prefix that is empty, has
// empty or malformed segments, or consists only of wildcards.
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

// New creates an empty trie ready for inserts.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert adds a dot-separated prefix and associates it with val.
//
// Examples:
//
//	"fungibles.transfer"
//	"contracts.call.gas"
//	"fungibles.*.balance"
//
// The wildcard "*" matches exactly one segment. A prefix made only of "*"
// segments is rejected as too generic. Returns ErrInvalidPrefix on
// malformed input.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil {
		return ErrInvalidPrefix
	}
	segs, ok := splitAndValidate(prefix)
	if !ok || len(segs) == 0 {
		return ErrInvalidPrefix
	}

	allWild := true
	for _, s := range segs {
		if s != "*" {
			allWild = false
			break
		}
	}
	if allWild {
		return ErrInvalidPrefix
	}

	cur := t
	for _, s := range segs {
		child, exists := cur.children[s]
		if !exists {
			child = New[T]()
			cur.children[s] = child
		}
		cur = child
	}
	cur.hasVal = true
	cur.val = val
	if cur.pattern == "" {
		cur.pattern = prefix
	}
	return nil
}

// Match finds the deepest rule matching a full origin key and returns its
// value. The key is treated as a dot-separated segment sequence; exact and
// wildcard branches are both explored. Returns the zero value and false when
// the key is malformed or no rule matches.
func (t *Trie[T]) Match(key string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(key)
	return v, ok
}

// MatchWithPattern is Match plus the canonical pattern of the winning rule,
// for diagnostic (Explain) output.
func (t *Trie[T]) MatchWithPattern(key string) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}
	bestDepth := -1
	var bestVal T
	var bestPat string

	// dfs consumes one segment per step, starting at byte offset off with
	// depth segments already matched. Segments are validated in place so
	// the traversal allocates nothing.
	var dfs func(n *Trie[T], off, depth int)
	dfs = func(n *Trie[T], off, depth int) {
		if n.hasVal && depth > bestDepth {
			bestDepth = depth
			bestVal = n.val
			bestPat = n.pattern
		}
		if off >= len(key) {
			return
		}

		// Parse the next segment [off:i), validating [a-z][a-z0-9_]*.
		i := off
		c := key[i]
		if c < 'a' || c > 'z' {
			return
		}
		i++
		for i < len(key) {
			c = key[i]
			if c == '.' {
				break
			}
			if !((c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_') {
				return
			}
			i++
		}
		seg := key[off:i]
		nextOff := i
		if nextOff < len(key) && key[nextOff] == '.' {
			nextOff++
		}

		// Wildcard is explored after the exact branch so that at equal
		// depth the exact rule's value is recorded first and kept.
		if next, ok := n.children[seg]; ok {
			dfs(next, nextOff, depth+1)
		}
		if next, ok := n.children["*"]; ok {
			dfs(next, nextOff, depth+1)
		}
	}

	dfs(t, 0, 0)
	if bestDepth < 0 {
		return zero, false, ""
	}
	return bestVal, true, bestPat
}

// splitAndValidate splits a dot-separated prefix into segments, validating
// each one. The wildcard segment "*" is always allowed here; whole-prefix
// policy (no all-wildcard rules) is enforced by Insert.
func splitAndValidate(s string) ([]string, bool) {
	if s == "" {
		return nil, false
	}
	segs := strings.Split(s, ".")
	for _, seg := range segs {
		if !validSegment(seg) {
			return nil, false
		}
	}
	return segs, true
}

// validSegment reports whether seg is "*" or matches [a-z][a-z0-9_]*.
func validSegment(seg string) bool {
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
