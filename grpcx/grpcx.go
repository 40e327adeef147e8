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

// Package grpcx projects dispatch faults onto gRPC status errors and back.
//
// Server side, UnaryServerInterceptor resolves handler errors through an
// apis.FaultMapper, picks a gRPC code via an apis.StatusMapper, and attaches
// a google.rpc.ErrorInfo detail carrying the fault's symbolic name and its
// canonical four-byte wire code in hex. Client side, ExtractFault recovers
// the fault from such an error without any schema beyond the standard
// errdetails types.
package grpcx

import (
	"context"
	"strconv"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/dispatch"
	"dirpx.dev/dispatch/adapter"
	"dirpx.dev/dispatch/apis"
	"dirpx.dev/dispatch/wire"
)

// Domain is the value placed in google.rpc.ErrorInfo.Domain for faults
// produced by this package.
const Domain = "dispatch.dirpx.dev"

// codeKey is the ErrorInfo metadata key holding the hex wire code.
const codeKey = "code"

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// handler errors into gRPC status errors with a google.rpc.ErrorInfo detail.
//
// The provided apis.FaultMapper resolves the error to a fault; the
// apis.StatusMapper picks the transport status for it. The ErrorInfo carries:
//
//   - Reason: the fault's symbolic name, upper-cased ("CANNOT_LOOKUP");
//   - Domain: the Domain constant;
//   - Metadata["code"]: the canonical wire form as "0x%08x".
//
// The original error message is preserved as the status message. Errors that
// are already gRPC status errors pass through untouched so faults resolved
// by a nested interceptor are not double-wrapped.
func UnaryServerInterceptor(fm apis.FaultMapper, sm apis.StatusMapper) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		if _, ok := gstatus.FromError(err); ok {
			// Already a status error — return as-is.
			return nil, err
		}

		f := fm.Fault(err)
		base := gstatus.New(sm.GRPCStatus(f), err.Error())

		ei := &errdetails.ErrorInfo{
			Reason:   strings.ToUpper(adapter.Name(f)),
			Domain:   Domain,
			Metadata: map[string]string{codeKey: adapter.Code(f)},
		}

		// Try to attach the detail. If it fails — return base.
		if with, err := base.WithDetails(ei); err == nil {
			return nil, with.Err()
		}

		return nil, base.Err()
	}
}

// ExtractFault recovers a fault from a gRPC error produced by
// UnaryServerInterceptor. It looks for an ErrorInfo detail in this package's
// Domain and decodes the hex wire code from its metadata. Decoding is total,
// so any well-formed code yields a fault; malformed or missing details
// report false.
func ExtractFault(err error) (dispatch.Fault, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		ei, ok := d.(*errdetails.ErrorInfo)
		if !ok || ei.Domain != Domain {
			continue
		}
		u, ok := parseHexCode(ei.Metadata[codeKey])
		if !ok {
			continue
		}
		return wire.DecodeU32(u), true
	}
	return nil, false
}

// parseHexCode parses the "0x%08x" form emitted by adapter.Code.
func parseHexCode(s string) (uint32, bool) {
	if len(s) != 10 || !strings.HasPrefix(s, "0x") {
		return 0, false
	}
	u, err := strconv.ParseUint(s[2:], 16, 32)
	if err != nil {
		return 0, false
	}
	return uint32(u), true
}
