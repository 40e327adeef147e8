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

// Package wire implements the fixed-width binary encoding of the dispatch
// fault taxonomy: every dispatch.Fault maps to exactly 4 bytes, and every 4
// bytes map back to exactly one dispatch.Fault.
//
// # Layout
//
// A fault serializes as a tagged union: one discriminant byte per union
// level, followed by that level's payload bytes in field order. The
// discriminant is the variant's zero-based declaration position — that order
// is the wire contract and is frozen in this package's tag constants. The
// serialized form is then right-padded with zeros, or truncated, to exactly
// 4 bytes. Truncation is deliberate: it is how arbitrarily nested producer
// faults are narrowed to the fixed wire budget, and the discriminant-first
// ordering guarantees the most distinguishing byte always survives.
//
// When a scalar is more convenient than a byte array at the boundary, the
// 4 bytes travel as a little-endian uint32 (EncodeU32 / DecodeU32).
//
// # Totality
//
// Both directions are total. Encode cannot fail because every variant's
// serialized form is defined and the pad/truncate step accepts any length.
// Decode cannot fail because every unrecognized shape — an unknown top-level
// discriminant, or an unknown discriminant nested inside a known variant —
// resolves to a dispatch.Unspecified value carrying the positional bytes
// consumed up to that point. A decoder built from an older taxonomy than its
// producer therefore degrades to a diagnosable value instead of crashing.
//
// Decode is a left inverse of Encode: decoding an encoded fault always
// reproduces it. The reverse does not hold for byte patterns no valid encode
// produces (trailing garbage after a short variant, unknown discriminants);
// those decode to a well-formed fault whose re-encoding is canonical and may
// differ from the input bytes.
package wire
