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

// Package dispatch defines the canonical fault taxonomy that crosses the
// boundary between a constrained execution environment (a guest module) and
// the runtime that hosts it.
//
// The taxonomy is a closed tagged union: a fixed set of variants, some of
// which carry a small payload or a nested sub-taxonomy. Values are pure data
// with structural (value) equality — they carry no cause chain, no message,
// and no identity beyond their fields. Construction happens at the
// fault-raising site (usually through dirpx.dev/dispatch/mapper) and the
// value is consumed immediately by the wire codec
// (dirpx.dev/dispatch/wire) or by diagnostic logic on the receiving side.
//
// The set of variants is closed on purpose: the host's own error space is
// open and evolves independently, and anything the taxonomy cannot express
// must be carried through the Unspecified escape hatch rather than dropped.
// See the wire package for how that shows up on the wire.
package dispatch

import "fmt"

// Fault is the closed top-level taxonomy of dispatch faults.
//
// It is a sealed interface: the complete set of implementations lives in this
// package and is fixed at compile time. Variant order is load-bearing — it
// defines the wire discriminant assigned by dirpx.dev/dispatch/wire — so new
// variants may only ever be appended, never reordered or removed.
//
// All implementations are small comparable values; two Fault values are the
// same fault exactly when they compare equal with ==.
type Fault interface {
	fmt.Stringer

	// sealed prevents implementations outside this package. The wire codec
	// relies on the variant set being closed.
	sealed()
}

// Other is an opaque, host-defined fault code. It exists for hosts that need
// to smuggle a private classification through the taxonomy; the byte has no
// meaning on this side of the boundary.
type Other uint8

// CannotLookup reports that a required lookup (account, key, resource
// reference) could not be resolved.
type CannotLookup struct{}

// BadOrigin reports that the call's origin was rejected — the caller is not
// allowed to dispatch this operation from where it stands.
type BadOrigin struct{}

// Module is a fault raised by a specific runtime sub-module that the
// host-side conversion did not translate into a more specific variant.
//
// Index identifies the sub-module; Error is the module-local fault code.
// Both fields are raw bytes and every value is valid — a Module record can
// never itself be malformed.
type Module struct {
	// Index is the position of the raising sub-module in the runtime.
	Index uint8
	// Error is the fault code local to that sub-module. Nested payloads
	// beyond this byte cannot be represented and are narrowed away.
	Error uint8
}

// ConsumerRemaining reports that a resource cannot be released because
// consumers still reference it.
type ConsumerRemaining struct{}

// NoProviders reports that no providers remain for a resource that needs one.
type NoProviders struct{}

// TooManyConsumers reports that the consumer limit for a resource was
// exceeded.
type TooManyConsumers struct{}

// Token is a fault from the token subsystem, carrying the TokenError
// sub-taxonomy.
type Token TokenError

// Arithmetic is an arithmetic fault (overflow and friends), carrying the
// ArithmeticError sub-taxonomy.
type Arithmetic ArithmeticError

// Transactional is a fault from the transactional storage layer, carrying
// the TransactionalError sub-taxonomy.
type Transactional TransactionalError

// Exhausted reports that a resource budget (weight, gas, space) ran out.
type Exhausted struct{}

// Corruption reports that the runtime detected corrupted state. This is
// always a bug on the host side, never a caller error.
type Corruption struct{}

// Unavailable reports that a required resource is temporarily unavailable.
type Unavailable struct{}

// RootNotAllowed reports that a privileged (root-only) operation was
// rejected for the calling origin.
type RootNotAllowed struct{}

// UseCase carries the curated, use-case oriented sub-taxonomy. These are the
// faults the system deliberately surfaces to developers with full fidelity;
// the host-side conversion prefers producing a UseCase fault over any of the
// generic variants whenever it can.
type UseCase struct {
	Err UseCaseError
}

// Unspecified is the escape hatch for fault shapes this taxonomy predates.
//
// When a newer producer emits a variant the consumer does not know, or when
// the host-side conversion finds no mapping at all, the three positional
// bytes of the unrecognized shape are preserved here so the fault remains
// diagnosable after the fact. The fields are breadcrumbs, not semantics:
// they identify a position in the producer's taxonomy, nothing more. Any
// position that was never reached is zero.
type Unspecified struct {
	// DispatchErrorIndex is the top-level discriminant of the
	// unrecognized fault.
	DispatchErrorIndex uint8
	// ErrorIndex is the discriminant one level down, when one was reached.
	ErrorIndex uint8
	// Error is the payload byte one level further, when one was reached.
	Error uint8
}

func (Other) sealed()             {}
func (CannotLookup) sealed()      {}
func (BadOrigin) sealed()         {}
func (Module) sealed()            {}
func (ConsumerRemaining) sealed() {}
func (NoProviders) sealed()       {}
func (TooManyConsumers) sealed()  {}
func (Token) sealed()             {}
func (Arithmetic) sealed()        {}
func (Transactional) sealed()     {}
func (Exhausted) sealed()         {}
func (Corruption) sealed()        {}
func (Unavailable) sealed()       {}
func (RootNotAllowed) sealed()    {}
func (UseCase) sealed()           {}
func (Unspecified) sealed()       {}

// String renders the fault for logs and Explain output. The format is
// stable enough to grep but is not part of the wire contract.
func (o Other) String() string { return fmt.Sprintf("other(0x%02x)", uint8(o)) }

func (CannotLookup) String() string { return "cannot_lookup" }

func (BadOrigin) String() string { return "bad_origin" }

func (m Module) String() string {
	return fmt.Sprintf("module(index=%d, error=%d)", m.Index, m.Error)
}

func (ConsumerRemaining) String() string { return "consumer_remaining" }

func (NoProviders) String() string { return "no_providers" }

func (TooManyConsumers) String() string { return "too_many_consumers" }

func (t Token) String() string { return fmt.Sprintf("token(%s)", TokenError(t)) }

func (a Arithmetic) String() string {
	return fmt.Sprintf("arithmetic(%s)", ArithmeticError(a))
}

func (t Transactional) String() string {
	return fmt.Sprintf("transactional(%s)", TransactionalError(t))
}

func (Exhausted) String() string { return "exhausted" }

func (Corruption) String() string { return "corruption" }

func (Unavailable) String() string { return "unavailable" }

func (RootNotAllowed) String() string { return "root_not_allowed" }

func (u UseCase) String() string {
	if u.Err == nil {
		return "use_case(<nil>)"
	}
	return fmt.Sprintf("use_case(%s)", u.Err)
}

func (u Unspecified) String() string {
	return fmt.Sprintf("unspecified(dispatch_error_index=%d, error_index=%d, error=%d)",
		u.DispatchErrorIndex, u.ErrorIndex, u.Error)
}
