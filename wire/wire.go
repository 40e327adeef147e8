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

package wire

import (
	"encoding/binary"

	"dirpx.dev/dispatch"
)

// Size is the fixed wire width of an encoded fault, in bytes.
const Size = 4

// Top-level discriminants, assigned by declaration position of the variants
// in dispatch.Fault. These values are the wire contract: they must match on
// both sides of the boundary and may only ever be extended, never changed.
const (
	tagOther uint8 = iota
	tagCannotLookup
	tagBadOrigin
	tagModule
	tagConsumerRemaining
	tagNoProviders
	tagTooManyConsumers
	tagToken
	tagArithmetic
	tagTransactional
	tagExhausted
	tagCorruption
	tagUnavailable
	tagRootNotAllowed
	tagUseCase
	tagUnspecified
)

// Discriminants of the UseCaseError sub-union, one level below tagUseCase.
const (
	subFungibles uint8 = iota
)

// Encode serializes a fault into its 4-byte wire form.
//
// Encode is total: it never fails. Variants shorter than 4 bytes are
// right-padded with zeros; a nil Fault encodes as the zero Unspecified
// record, since nil is not a taxonomy value and must still produce a
// well-formed wire image.
func Encode(f dispatch.Fault) [Size]byte {
	var b [Size]byte
	switch v := f.(type) {
	case dispatch.Other:
		b[0], b[1] = tagOther, uint8(v)
	case dispatch.CannotLookup:
		b[0] = tagCannotLookup
	case dispatch.BadOrigin:
		b[0] = tagBadOrigin
	case dispatch.Module:
		b[0], b[1], b[2] = tagModule, v.Index, v.Error
	case dispatch.ConsumerRemaining:
		b[0] = tagConsumerRemaining
	case dispatch.NoProviders:
		b[0] = tagNoProviders
	case dispatch.TooManyConsumers:
		b[0] = tagTooManyConsumers
	case dispatch.Token:
		b[0], b[1] = tagToken, uint8(v)
	case dispatch.Arithmetic:
		b[0], b[1] = tagArithmetic, uint8(v)
	case dispatch.Transactional:
		b[0], b[1] = tagTransactional, uint8(v)
	case dispatch.Exhausted:
		b[0] = tagExhausted
	case dispatch.Corruption:
		b[0] = tagCorruption
	case dispatch.Unavailable:
		b[0] = tagUnavailable
	case dispatch.RootNotAllowed:
		b[0] = tagRootNotAllowed
	case dispatch.UseCase:
		b[0] = tagUseCase
		switch u := v.Err.(type) {
		case dispatch.Fungibles:
			b[1], b[2] = subFungibles, uint8(u)
		default:
			// A UseCase with a nil sub-error is not constructible
			// through normal use; encode it as the bare use-case tag
			// so the wire image stays well-formed.
		}
	case dispatch.Unspecified:
		b[0], b[1], b[2], b[3] = tagUnspecified, v.DispatchErrorIndex, v.ErrorIndex, v.Error
	default:
		// nil Fault. The sealed interface rules out foreign variants.
		b[0] = tagUnspecified
	}
	return b
}

// EncodeU32 serializes a fault and returns the 4 wire bytes interpreted as a
// little-endian uint32 — the scalar form used when the boundary passes a
// single machine word instead of a byte buffer.
func EncodeU32(f dispatch.Fault) uint32 {
	b := Encode(f)
	return binary.LittleEndian.Uint32(b[:])
}

// Decode maps an arbitrary 4-byte value back to a fault.
//
// Decode is total: every input yields a well-formed dispatch.Fault. Inputs
// produced by Encode decode to the original value. Anything else — unknown
// top-level discriminants, unknown nested discriminants, out-of-range enum
// bytes — resolves to dispatch.Unspecified carrying the positional bytes
// consumed before recognition failed; positions never reached stay zero.
// Trailing bytes past a variant's payload are ignored, mirroring the
// zero-padding applied during encode.
func Decode(b [Size]byte) dispatch.Fault {
	switch b[0] {
	case tagOther:
		return dispatch.Other(b[1])
	case tagCannotLookup:
		return dispatch.CannotLookup{}
	case tagBadOrigin:
		return dispatch.BadOrigin{}
	case tagModule:
		return dispatch.Module{Index: b[1], Error: b[2]}
	case tagConsumerRemaining:
		return dispatch.ConsumerRemaining{}
	case tagNoProviders:
		return dispatch.NoProviders{}
	case tagTooManyConsumers:
		return dispatch.TooManyConsumers{}
	case tagToken:
		if dispatch.TokenError(b[1]) == dispatch.TokenUnknown {
			return dispatch.Token(b[1])
		}
		return dispatch.Unspecified{DispatchErrorIndex: tagToken, ErrorIndex: b[1]}
	case tagArithmetic:
		if dispatch.ArithmeticError(b[1]) == dispatch.ArithmeticOverflow {
			return dispatch.Arithmetic(b[1])
		}
		return dispatch.Unspecified{DispatchErrorIndex: tagArithmetic, ErrorIndex: b[1]}
	case tagTransactional:
		if dispatch.TransactionalError(b[1]) == dispatch.TransactionalMaxLayersReached {
			return dispatch.Transactional(b[1])
		}
		return dispatch.Unspecified{DispatchErrorIndex: tagTransactional, ErrorIndex: b[1]}
	case tagExhausted:
		return dispatch.Exhausted{}
	case tagCorruption:
		return dispatch.Corruption{}
	case tagUnavailable:
		return dispatch.Unavailable{}
	case tagRootNotAllowed:
		return dispatch.RootNotAllowed{}
	case tagUseCase:
		switch b[1] {
		case subFungibles:
			if dispatch.FungiblesError(b[2]) <= dispatch.FungiblesUnknown {
				return dispatch.UseCase{Err: dispatch.Fungibles(b[2])}
			}
			return dispatch.Unspecified{DispatchErrorIndex: tagUseCase, ErrorIndex: b[1], Error: b[2]}
		default:
			return dispatch.Unspecified{DispatchErrorIndex: tagUseCase, ErrorIndex: b[1]}
		}
	case tagUnspecified:
		return dispatch.Unspecified{DispatchErrorIndex: b[1], ErrorIndex: b[2], Error: b[3]}
	default:
		return dispatch.Unspecified{DispatchErrorIndex: b[0]}
	}
}

// DecodeU32 decodes the scalar wire form: the uint32 is split back into its
// little-endian bytes and handed to Decode.
func DecodeU32(v uint32) dispatch.Fault {
	var b [Size]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return Decode(b)
}
