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

package adapter

import (
	"fmt"
	"strconv"

	"dirpx.dev/dispatch"
	"dirpx.dev/dispatch/apis"
	"dirpx.dev/dispatch/wire"
)

// Name returns the short machine token of a fault's top-level variant, e.g.
// "bad_origin", "module", "use_case". Unlike Fault.String it never includes
// payload or nesting, which makes it suitable as a stable classifier in
// views, metrics labels, and gRPC error-info reasons.
func Name(f dispatch.Fault) string {
	switch f.(type) {
	case dispatch.Other:
		return "other"
	case dispatch.CannotLookup:
		return "cannot_lookup"
	case dispatch.BadOrigin:
		return "bad_origin"
	case dispatch.Module:
		return "module"
	case dispatch.ConsumerRemaining:
		return "consumer_remaining"
	case dispatch.NoProviders:
		return "no_providers"
	case dispatch.TooManyConsumers:
		return "too_many_consumers"
	case dispatch.Token:
		return "token"
	case dispatch.Arithmetic:
		return "arithmetic"
	case dispatch.Transactional:
		return "transactional"
	case dispatch.Exhausted:
		return "exhausted"
	case dispatch.Corruption:
		return "corruption"
	case dispatch.Unavailable:
		return "unavailable"
	case dispatch.RootNotAllowed:
		return "root_not_allowed"
	case dispatch.UseCase:
		return "use_case"
	case dispatch.Unspecified:
		return "unspecified"
	default:
		return "unspecified"
	}
}

// Code renders a fault's 4-byte wire value as "0x"-prefixed lowercase hex of
// the little-endian uint32. This is the exact scalar a guest sees for the
// fault and the form the adapters expose in headers and metadata.
func Code(f dispatch.Fault) string {
	return fmt.Sprintf("0x%08x", wire.EncodeU32(f))
}

// ToDescriptor converts a fault together with its resolved transport status
// into a portable FaultDescriptor for structured logging, tracing, or
// message-bus propagation.
func ToDescriptor(f dispatch.Fault, st apis.Status) apis.FaultDescriptor {
	if f == nil {
		return apis.FaultDescriptor{}
	}
	return apis.FaultDescriptor{
		Fault:      Name(f),
		Code:       Code(f),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    f.String(),
	}
}

// ToView converts a fault into the public FaultView. Payload-carrying
// variants expose their fields as flat details; the wire code is always
// present, so a client can re-decode the exact value independently.
func ToView(f dispatch.Fault) apis.FaultView {
	if f == nil {
		return apis.FaultView{}
	}
	v := apis.FaultView{
		Fault:   Name(f),
		Code:    Code(f),
		Message: f.String(),
	}
	switch x := f.(type) {
	case dispatch.Other:
		v.Details = []apis.Detail{byteDetail("code", uint8(x))}
	case dispatch.Module:
		v.Details = []apis.Detail{
			byteDetail("index", x.Index),
			byteDetail("error", x.Error),
		}
	case dispatch.Unspecified:
		v.Details = []apis.Detail{
			byteDetail("dispatch_error_index", x.DispatchErrorIndex),
			byteDetail("error_index", x.ErrorIndex),
			byteDetail("error", x.Error),
		}
	}
	return v
}

func byteDetail(name string, b uint8) apis.Detail {
	return apis.Detail{Name: name, Value: strconv.Itoa(int(b))}
}
