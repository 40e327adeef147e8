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

package apis

import "dirpx.dev/dispatch"

// Faulter represents a runtime-native error that knows its own taxonomy
// value.
//
// This is the highest-fidelity production path: the error was raised by code
// that understands the dispatch taxonomy and can name its variant directly,
// so no mapping heuristics are needed. Mappers consult this interface before
// any rule tier except explicit per-sentinel overrides.
//
// Implementations MUST return a fully constructed, non-nil Fault. Returning
// nil here is treated the same as not implementing the interface.
type Faulter interface {
	error

	// DispatchFault returns the taxonomy value this error corresponds to.
	DispatchFault() dispatch.Fault
}

// Originated represents a runtime-native error that can name the runtime
// location it was raised from.
//
// The returned string should be a canonical origin in the sense of
// dirpx.dev/dispatch/origin ("fungibles.transfer.balance"); mappers
// normalize it before matching, so minor formatting drift ("::", "/", "-")
// is tolerated. An empty string means "no location available" and simply
// skips the origin-based mapping tier.
type Originated interface {
	error

	// FaultOrigin returns the dot-separated runtime location of the fault.
	// May return "".
	FaultOrigin() string
}

// Indexed represents a runtime-native error that carries the positional
// bytes of a fault shape the taxonomy cannot express.
//
// When no mapping tier produces a taxonomy value, mappers fall back to
// dispatch.Unspecified; an error implementing Indexed supplies the three
// breadcrumb bytes for that record so the original position in the
// producer's error space is preserved. Errors that do not implement Indexed
// fall back to an all-zero Unspecified.
type Indexed interface {
	error

	// FaultIndices returns, in order: the top-level index of the error in
	// the producer's taxonomy, the index within that variant (0 if none was
	// reached), and the payload byte below that (0 if none was reached).
	FaultIndices() (dispatchErrorIndex, errorIndex, errorByte uint8)
}

// FaultMapper is the collaborator the codec boundary consumes: given a
// runtime-native error, produce the taxonomy value that should cross the
// wire.
//
// Implementations must be total — any non-nil error resolves to some
// dispatch.Fault, degrading to dispatch.Unspecified when nothing more
// specific applies — and safe for concurrent use.
type FaultMapper interface {
	// Fault resolves err into its taxonomy value.
	Fault(err error) dispatch.Fault

	// Explain returns a human-readable description of which rule tier
	// resolved err. Implementations may return an empty string in
	// production builds.
	Explain(err error) string
}
