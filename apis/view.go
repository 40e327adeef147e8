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

// FaultView is a minimal, serializable representation of a decoded fault.
//
// This is the shape we are comfortable exposing over the wire or logging —
// not the taxonomy value itself. Keeping it here (in apis) lets the HTTP and
// gRPC adapters share one struct.
type FaultView struct {
	// Fault is the short machine token of the variant, e.g. "bad_origin",
	// "module", "use_case".
	Fault string `json:"fault"`

	// Code is the 4-byte wire value rendered as "0x"-prefixed lowercase
	// hex of the little-endian uint32, e.g. "0x00020103". It is the exact
	// value a guest received or would receive for this fault.
	Code string `json:"code"`

	// Message is the diagnostic rendering of the full fault, including any
	// nested sub-taxonomy, e.g. "use_case(fungibles(insufficient_balance))".
	Message string `json:"message,omitempty"`

	// Details carries the fault's payload fields, when the variant has
	// any, as flat key/value entries (module index, positional bytes, …).
	Details []Detail `json:"details,omitempty"`
}

// FaultDescriptor is a flat, transport-friendly description of a fault
// together with its resolved transport statuses. It is intended for
// structured logging, tracing, or message-bus propagation.
type FaultDescriptor struct {
	// Fault is the short machine token of the variant.
	Fault string `json:"fault"`

	// Code is the hex wire value, as in FaultView.Code.
	Code string `json:"code"`

	// HTTPStatus is the HTTP status this fault resolves to. 0 means "not
	// resolved".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the gRPC status (as integer) this fault resolves to.
	GRPCCode int `json:"grpc_code,omitempty"`

	// Message is the diagnostic rendering of the full fault.
	Message string `json:"message,omitempty"`
}

// Detail is a single structured payload field attached to a fault view.
//
// Typical usages: the sub-module index of a Module fault, the positional
// breadcrumb bytes of an Unspecified fault, the nested enumeration value of
// a use-case fault.
type Detail struct {
	// Name identifies the payload field, e.g. "index", "error",
	// "dispatch_error_index".
	Name string `json:"name"`

	// Value is the field's value rendered as a decimal string. All taxonomy
	// payloads are single bytes, so the string form keeps the type simple
	// and JSON-stable.
	Value string `json:"value"`
}
