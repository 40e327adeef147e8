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
	"dirpx.dev/dispatch"
)

type sentinelRule struct {
	// target is matched against the error chain with errors.Is.
	target error
	// fault is produced when the rule matches.
	fault dispatch.Fault
}

type prefixRule struct {
	// prefix is the raw, dot-separated origin prefix (may contain "*").
	// It is validated/normalized when we build the trie.
	prefix string
	// fault is produced when this prefix is the longest match for the
	// error's origin.
	fault dispatch.Fault
}

type builder struct {
	// overrides holds exact sentinel rules, checked first in registration
	// order. First match wins.
	overrides []sentinelRule

	// prefixes holds LPM rules keyed by origin, later compiled into a
	// segment trie.
	prefixes []prefixRule

	// defaults holds sentinel rules checked after origin matching. Seeded
	// with library defaults; user entries are prepended so the most recent
	// registration takes precedence.
	defaults []sentinelRule
}

// newBuilder creates a builder seeded with the library default rules.
func newBuilder() *builder {
	return &builder{
		defaults: builtinDefaults(),
	}
}
