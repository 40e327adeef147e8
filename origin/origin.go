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

package origin

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Origin is the canonical, validated identifier of the runtime location that
// raised a fault.
//
// It is a dot-separated path with a small fixed depth; each segment names a
// sub-module, component, or operation:
//
//   - "fungibles.transfer.balance"
//   - "fungibles.approve.allowance"
//   - "contracts.call.gas"
//   - "balances.reserve"
//
// Origins exist to be matched on: the mapper's prefix rules treat them as
// hierarchical keys, so the naming should go from the most general segment
// (the sub-module) to the most specific (the operation detail).
type Origin string

// MinLength and MaxLength bound the length of a canonical origin.
//
// The limits are exported so that configuration loaders and tests can check
// inputs against the exact constraints this package enforces.
const (
	// MinLength is the minimum length of a non-empty origin. Three
	// characters rules out degenerate identifiers like "x" while still
	// allowing short module names.
	MinLength = 3

	// MaxLength is the maximum length of a valid origin. 96 characters fits
	// four descriptive segments comfortably; anything longer is almost
	// certainly a mistake or an attempt to encode data in the path.
	MaxLength = 96
)

const (
	// originFmt validates the canonical shape: one to four dot-separated
	// segments, each starting with a lowercase letter and continuing with
	// lowercase letters, digits, or underscore.
	//
	// Matches:
	//
	//	"fungibles.transfer.balance"
	//	"contracts.call.gas"
	//	"balances"
	//
	// Does not match:
	//
	//	"Fungibles.transfer" (uppercase)
	//	"fungibles..transfer" (empty segment)
	//	"2fa.verify" (digit first)
	//
	// The empty string never reaches this pattern; it is handled separately
	// as "origin not provided".
	originFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,3}$`
)

var originRe = regexp.MustCompile(originFmt)

var (
	// ErrOriginInvalidFormat is returned when an origin does not conform to
	// the canonical shape.
	ErrOriginInvalidFormat = errors.New("dispatch: invalid origin format")
	// ErrOriginInvalidLength is returned when an origin is too short or too
	// long.
	ErrOriginInvalidLength = errors.New("dispatch: invalid origin length")
)

// Ensure Origin implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded in mapping configuration structs.
var (
	_ encoding.TextMarshaler   = (*Origin)(nil)
	_ encoding.TextUnmarshaler = (*Origin)(nil)
)

// Empty is the zero-value origin, meaning "not provided". Runtime errors
// without an origin are still mappable — they simply skip the prefix tier.
var Empty Origin = ""

// Normalize brings an arbitrary string closer to the canonical origin form.
//
// Only obvious, non-lossy transformations are applied:
//
//   - trim surrounding spaces;
//   - lowercase;
//   - "::" becomes "." (runtime paths are often written in path syntax);
//   - "/" becomes ".";
//   - "-" becomes "_".
//
// The result is not guaranteed to be valid; follow up with Parse or
// Validate.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "::", ".")
	s = strings.ReplaceAll(s, "/", ".")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse normalizes and validates a user-provided string, returning a
// canonical Origin.
//
// The empty string parses to Empty without error: an origin is an optional
// part of a runtime error.
func Parse(s string) (Origin, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Origin(s), nil
}

// MustParse is the panic-on-error variant of Parse, for declaring
// package-level origin constants.
//
// Unlike Parse, MustParse rejects the empty string — a constant that names
// no location is always a programmer error.
func MustParse(s string) Origin {
	o, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if o == Empty {
		panic("dispatch: empty origin in MustParse")
	}
	return o
}

// Validate checks whether the provided Origin is canonical. Empty is valid
// here; callers that require a location must check for Empty themselves.
func Validate(o Origin) error {
	if o == Empty {
		return nil
	}
	return validate(string(o))
}

// String returns the canonical string representation.
func (o Origin) String() string {
	return string(o)
}

// MarshalText implements encoding.TextMarshaler. The empty origin marshals
// to an empty slice so optional fields survive JSON/YAML encoders.
func (o Origin) MarshalText() ([]byte, error) {
	if err := Validate(o); err != nil {
		return nil, err
	}
	if o == Empty {
		return []byte{}, nil
	}
	return []byte(o), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Input is normalized and
// validated; whitespace-only input produces Empty.
func (o *Origin) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrOriginInvalidLength
	}
	if !originRe.MatchString(s) {
		return ErrOriginInvalidFormat
	}
	return nil
}
