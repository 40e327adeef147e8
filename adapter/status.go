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
	"net/http"

	"dirpx.dev/dispatch"
	"dirpx.dev/dispatch/apis"
	"google.golang.org/grpc/codes"
)

// Status resolves the default transport projection for a fault.
//
// The table stays close to common REST and gRPC conventions while preserving
// the taxonomy's semantics: origin and privilege rejections map to
// authorization statuses, resource-lifecycle faults to conflict statuses,
// budget exhaustion to back-pressure statuses, and anything opaque
// (Other, Module, Unspecified, corruption) to server-side errors. Boundaries
// that need a different policy implement apis.StatusMapper themselves.
func Status(f dispatch.Fault) apis.Status {
	switch f.(type) {
	case dispatch.CannotLookup:
		// A referenced object could not be resolved.
		return apis.Status{HTTP: http.StatusNotFound, GRPC: codes.NotFound}
	case dispatch.BadOrigin:
		// The caller is known but not allowed to dispatch from here.
		return apis.Status{HTTP: http.StatusForbidden, GRPC: codes.PermissionDenied}
	case dispatch.RootNotAllowed:
		// Privileged operation rejected; same class as BadOrigin.
		return apis.Status{HTTP: http.StatusForbidden, GRPC: codes.PermissionDenied}
	case dispatch.ConsumerRemaining:
		// Resource cannot change state while still referenced.
		return apis.Status{HTTP: http.StatusConflict, GRPC: codes.FailedPrecondition}
	case dispatch.NoProviders:
		// Required provider is gone; the state precondition failed.
		return apis.Status{HTTP: http.StatusConflict, GRPC: codes.FailedPrecondition}
	case dispatch.TooManyConsumers:
		// Consumer limit reached — a quota-style rejection.
		return apis.Status{HTTP: http.StatusTooManyRequests, GRPC: codes.ResourceExhausted}
	case dispatch.Token:
		// Token-subsystem precondition (funds, existence) not met.
		return apis.Status{HTTP: http.StatusBadRequest, GRPC: codes.FailedPrecondition}
	case dispatch.Arithmetic:
		// Overflow and friends: the supplied values left the valid range.
		return apis.Status{HTTP: http.StatusBadRequest, GRPC: codes.OutOfRange}
	case dispatch.Transactional:
		// Storage transaction layering failed mid-operation.
		return apis.Status{HTTP: http.StatusInternalServerError, GRPC: codes.Aborted}
	case dispatch.Exhausted:
		// Weight/gas/space budget ran out.
		return apis.Status{HTTP: http.StatusTooManyRequests, GRPC: codes.ResourceExhausted}
	case dispatch.Corruption:
		// Host-side state corruption; always a server error.
		return apis.Status{HTTP: http.StatusInternalServerError, GRPC: codes.DataLoss}
	case dispatch.Unavailable:
		return apis.Status{HTTP: http.StatusServiceUnavailable, GRPC: codes.Unavailable}
	case dispatch.UseCase:
		// Curated developer-facing faults are caller-actionable.
		return apis.Status{HTTP: http.StatusBadRequest, GRPC: codes.FailedPrecondition}
	case dispatch.Other, dispatch.Unspecified:
		// Opaque or unrecognized shapes: nothing actionable for the caller.
		return apis.Status{HTTP: http.StatusInternalServerError, GRPC: codes.Unknown}
	case dispatch.Module:
		// Untranslated sub-module fault; treated as internal until the
		// conversion layer learns it.
		return apis.Status{HTTP: http.StatusInternalServerError, GRPC: codes.Internal}
	default:
		// nil fault.
		return apis.Status{HTTP: http.StatusInternalServerError, GRPC: codes.Internal}
	}
}

// StatusMapper is the default apis.StatusMapper backed by the Status table.
// The zero value is ready to use.
type StatusMapper struct{}

// HTTPStatus implements apis.StatusMapper.
func (StatusMapper) HTTPStatus(f dispatch.Fault) int { return Status(f).HTTP }

// GRPCStatus implements apis.StatusMapper.
func (StatusMapper) GRPCStatus(f dispatch.Fault) codes.Code { return Status(f).GRPC }

// Status implements apis.StatusMapper.
func (StatusMapper) Status(f dispatch.Fault) apis.Status { return Status(f) }
