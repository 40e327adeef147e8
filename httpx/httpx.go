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

// Package httpx projects dispatch faults onto HTTP responses.
package httpx

import (
	"encoding/json"
	"net/http"

	"dirpx.dev/dispatch"
	"dirpx.dev/dispatch/adapter"
	"dirpx.dev/dispatch/apis"
)

// CodeHeader carries the canonical four-byte wire form of the fault in hex,
// so machine clients can recover the exact fault without parsing the body.
const CodeHeader = "X-Dispatch-Code"

// Writer is a thin adapter that knows how to turn a fault into an HTTP
// response using the provided status mapper.
type Writer struct {
	Status apis.StatusMapper
}

// Write serializes an apis.FaultView for the fault and writes it to the
// response writer. The HTTP status is resolved via the status mapper; the
// wire code is mirrored into the CodeHeader header.
//
// A nil fault writes nothing, letting handlers call Write unconditionally
// after mapping.
func (w Writer) Write(rw http.ResponseWriter, f dispatch.Fault) {
	if f == nil {
		return
	}

	view := adapter.ToView(f)

	rw.Header().Set("Content-Type", "application/json")
	rw.Header().Set(CodeHeader, view.Code)
	rw.WriteHeader(w.Status.HTTPStatus(f))

	b, _ := json.Marshal(view)
	_, _ = rw.Write(b)
}

// WriteError resolves err through the fault mapper and writes the result.
// It reports whether a response was written; a nil error writes nothing.
func (w Writer) WriteError(rw http.ResponseWriter, fm apis.FaultMapper, err error) bool {
	if err == nil {
		return false
	}
	w.Write(rw, fm.Fault(err))
	return true
}
