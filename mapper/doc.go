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

// Package mapper provides deterministic, immutable mappings from Go errors
// to dispatch faults (dirpx.dev/dispatch).
//
// # Overview
//
// Host-side code deals in ordinary Go errors: wrapped sentinels, errors from
// storage and transport layers, errors produced by runtime call handlers. The
// boundary deals in faults — the closed taxonomy defined by package dispatch,
// with a fixed four-byte wire form. Package mapper bridges the two in a way
// that is:
//
//   - total — every error resolves to some fault, worst case Unspecified;
//   - immutable — a FaultMapper is a snapshot, safe for concurrent reuse;
//   - overridable — callers can pin specific sentinel errors to faults;
//   - prefix-aware — callers can add rules keyed by fault origin.
//
// # Resolution model
//
// A FaultMapper resolves an error in the following order:
//
//  1. exact override: the error matches (errors.Is) a registered sentinel;
//  2. self-description: the error chain carries an apis.Faulter;
//  3. longest-prefix-match (LPM) on the error's origin (apis.Originated);
//  4. built-in or user-registered default sentinels;
//  5. fallback: Unspecified, with breadcrumb indices taken from apis.Indexed
//     when the error chain provides them, zeros otherwise.
//
// Prefix rules are segment-aware: origins are treated as "."-separated
// segments, and "*" matches exactly one segment. For example:
//
//	WithOriginPrefix("fungibles.transfer", dispatch.UseCase{Err: dispatch.Fungibles(dispatch.FungiblesInsufficientBalance)})
//	WithOriginPrefix("contracts.*.gas", dispatch.Exhausted{})
//
// The more specific prefix wins.
//
// # Building a mapper
//
// A FaultMapper is created once and reused:
//
//	fm, err := mapper.New(
//	    mapper.WithOverride(storage.ErrNotFound, dispatch.CannotLookup{}),
//	    mapper.WithOriginPrefix("fungibles", dispatch.UseCase{Err: dispatch.Fungibles(dispatch.FungiblesUnknown)}),
//	)
//	if err != nil {
//	    // invalid prefix, nil rule, etc.
//	}
//
//	f := fm.Fault(err) // never nil for non-nil err
//
// # Diagnostics
//
// For debugging and tests, FaultMapper.Explain returns a human-readable trace
// of how a particular error was resolved, including which tier matched and,
// for prefix rules, which pattern was used.
package mapper
