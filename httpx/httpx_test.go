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

package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"dirpx.dev/dispatch"
	"dirpx.dev/dispatch/adapter"
	"dirpx.dev/dispatch/apis"
	"dirpx.dev/dispatch/mapper"
)

func TestWriteFault(t *testing.T) {
	w := Writer{Status: adapter.StatusMapper{}}
	rec := httptest.NewRecorder()

	w.Write(rec, dispatch.Module{Index: 1, Error: 2})

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; want 500", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("Content-Type = %q", ct)
	}
	if got := rec.Header().Get(CodeHeader); got != "0x00020103" {
		t.Fatalf("%s = %q; want %q", CodeHeader, got, "0x00020103")
	}

	var view apis.FaultView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if view.Fault != "module" {
		t.Errorf("fault = %q; want %q", view.Fault, "module")
	}
	if view.Code != "0x00020103" {
		t.Errorf("code = %q; want %q", view.Code, "0x00020103")
	}
}

func TestWriteStatusPerFault(t *testing.T) {
	w := Writer{Status: adapter.StatusMapper{}}
	tests := []struct {
		f    dispatch.Fault
		want int
	}{
		{dispatch.CannotLookup{}, http.StatusNotFound},
		{dispatch.BadOrigin{}, http.StatusForbidden},
		{dispatch.Exhausted{}, http.StatusTooManyRequests},
		{dispatch.Unavailable{}, http.StatusServiceUnavailable},
		{dispatch.UseCase{Err: dispatch.Fungibles(dispatch.FungiblesInsufficientBalance)}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		w.Write(rec, tt.f)
		if rec.Code != tt.want {
			t.Errorf("Write(%v) status = %d; want %d", tt.f, rec.Code, tt.want)
		}
	}
}

func TestWriteNilFaultWritesNothing(t *testing.T) {
	w := Writer{Status: adapter.StatusMapper{}}
	rec := httptest.NewRecorder()

	w.Write(rec, nil)

	if rec.Body.Len() != 0 {
		t.Fatalf("body written for nil fault: %q", rec.Body.String())
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want untouched recorder default", rec.Code)
	}
}

func TestWriteError(t *testing.T) {
	errMissing := errors.New("account missing")
	fm, err := mapper.New(mapper.WithOverride(errMissing, dispatch.CannotLookup{}))
	if err != nil {
		t.Fatalf("mapper.New: %v", err)
	}
	w := Writer{Status: adapter.StatusMapper{}}

	rec := httptest.NewRecorder()
	if !w.WriteError(rec, fm, errMissing) {
		t.Fatal("WriteError reported nothing written")
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d; want 404", rec.Code)
	}

	rec = httptest.NewRecorder()
	if w.WriteError(rec, fm, nil) {
		t.Fatal("WriteError wrote a response for nil error")
	}
}
