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

// Option configures the FaultMapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable FaultMapper.
type Option func(*builder)

// WithOverride registers an exact sentinel rule: any error matching target
// (via errors.Is) resolves to f. Overrides sit above every other tier,
// including an error's own apis.Faulter self-description. Rules are checked
// in registration order; the first match wins.
func WithOverride(target error, f dispatch.Fault) Option {
	return func(b *builder) { b.overrides = append(b.overrides, sentinelRule{target, f}) }
}

// WithOriginPrefix adds a longest-prefix-match rule keyed by fault origin.
// The rule is evaluated against the origin reported by the error chain
// (apis.Originated), dot-separated. A more specific prefix wins. Use "*" to
// match a single segment.
func WithOriginPrefix(prefix string, f dispatch.Fault) Option {
	return func(b *builder) { b.prefixes = append(b.prefixes, prefixRule{prefix, f}) }
}

// WithDefault registers a sentinel rule in the defaults tier, below origin
// matching but above the Unspecified fallback. User defaults take precedence
// over library defaults, and a later registration over an earlier one.
func WithDefault(target error, f dispatch.Fault) Option {
	return func(b *builder) {
		b.defaults = append([]sentinelRule{{target, f}}, b.defaults...)
	}
}
