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

import (
	"dirpx.dev/dispatch"
	"google.golang.org/grpc/codes"
)

// StatusMapper resolves a decoded fault into transport statuses for HTTP and
// gRPC. Implementations must be immutable and safe for concurrent use.
type StatusMapper interface {
	// HTTPStatus returns the HTTP status code for the given fault.
	HTTPStatus(f dispatch.Fault) int

	// GRPCStatus returns the gRPC status code for the given fault.
	GRPCStatus(f dispatch.Fault) codes.Code

	// Status resolves both transports in a single call, using the same
	// classification, so HTTP and gRPC decisions never diverge for one
	// fault.
	Status(f dispatch.Fault) Status
}

// Status is a resolved pair of transport statuses for a single fault. It is
// the final output of a StatusMapper and can be written directly to an HTTP
// response or a gRPC status.
type Status struct {
	HTTP int        // Resolved HTTP status code (net/http compatible).
	GRPC codes.Code // Resolved gRPC status code.
}
