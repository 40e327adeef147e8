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

package mapper

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"dirpx.dev/dispatch"
	"dirpx.dev/dispatch/apis"
)

// faultyErr is a self-describing error carrying its own fault.
type faultyErr struct {
	msg string
	f   dispatch.Fault
}

func (e *faultyErr) Error() string { return e.msg }

func (e *faultyErr) DispatchFault() dispatch.Fault { return e.f }

// originErr is an error tagged with a fault origin.
type originErr struct {
	msg    string
	origin string
}

func (e *originErr) Error() string { return e.msg }

func (e *originErr) FaultOrigin() string { return e.origin }

// indexedErr carries raw boundary breadcrumb bytes.
type indexedErr struct {
	msg     string
	d, i, b uint8
}

func (e *indexedErr) Error() string { return e.msg }
func (e *indexedErr) FaultIndices() (dispatchErrorIndex, errorIndex, errorByte uint8) {
	return e.d, e.i, e.b
}

func mustNew(t *testing.T, opts ...Option) apis.FaultMapper {
	t.Helper()
	fm, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return fm
}

func TestFaultNilError(t *testing.T) {
	fm := mustNew(t)
	if f := fm.Fault(nil); f != nil {
		t.Fatalf("Fault(nil) = %v; want nil", f)
	}
}

func TestFaultFallbackIsUnspecified(t *testing.T) {
	fm := mustNew(t)
	f := fm.Fault(errors.New("no rule knows this"))
	if f != (dispatch.Unspecified{}) {
		t.Fatalf("Fault = %v; want zero Unspecified", f)
	}
}

func TestFaultOverride(t *testing.T) {
	errNotFound := errors.New("not found")
	fm := mustNew(t, WithOverride(errNotFound, dispatch.CannotLookup{}))

	// The sentinel matches through wrapping.
	err := fmt.Errorf("loading account: %w", errNotFound)
	if f := fm.Fault(err); f != (dispatch.CannotLookup{}) {
		t.Fatalf("Fault = %v; want cannot_lookup", f)
	}
}

func TestFaultOverrideBeatsFaulter(t *testing.T) {
	base := &faultyErr{msg: "self-described", f: dispatch.Corruption{}}
	fm := mustNew(t, WithOverride(error(base), dispatch.BadOrigin{}))

	if f := fm.Fault(base); f != (dispatch.BadOrigin{}) {
		t.Fatalf("Fault = %v; want override to win over faulter", f)
	}
}

func TestFaultOverrideFirstMatchWins(t *testing.T) {
	sentinel := errors.New("dup")
	fm := mustNew(t,
		WithOverride(sentinel, dispatch.Exhausted{}),
		WithOverride(sentinel, dispatch.Corruption{}),
	)
	if f := fm.Fault(sentinel); f != (dispatch.Exhausted{}) {
		t.Fatalf("Fault = %v; want first registered rule", f)
	}
}

func TestFaultFaulter(t *testing.T) {
	fm := mustNew(t)
	want := dispatch.Module{Index: 1, Error: 2}
	err := fmt.Errorf("call failed: %w", &faultyErr{msg: "pallet rejected", f: want})
	if f := fm.Fault(err); f != want {
		t.Fatalf("Fault = %v; want %v", f, want)
	}
}

func TestFaultFaulterNilFaultFallsThrough(t *testing.T) {
	fm := mustNew(t)
	err := &faultyErr{msg: "describes nothing"}
	if f := fm.Fault(err); f != (dispatch.Unspecified{}) {
		t.Fatalf("Fault = %v; want fallback past nil faulter", f)
	}
}

func TestFaultOriginPrefix(t *testing.T) {
	insufficient := dispatch.UseCase{Err: dispatch.Fungibles(dispatch.FungiblesInsufficientBalance)}
	unknown := dispatch.UseCase{Err: dispatch.Fungibles(dispatch.FungiblesUnknown)}
	fm := mustNew(t,
		WithOriginPrefix("fungibles", unknown),
		WithOriginPrefix("fungibles.transfer.balance", insufficient),
		WithOriginPrefix("contracts.*.gas", dispatch.Exhausted{}),
	)

	tests := []struct {
		origin string
		want   dispatch.Fault
	}{
		{"fungibles.mint", unknown},
		{"fungibles.transfer.balance", insufficient},
		{"fungibles.transfer.balance.min", insufficient},
		{"contracts.call.gas", dispatch.Exhausted{}},
		// Normalization applies to the looked-up origin too.
		{"Fungibles::Transfer/Balance", insufficient},
		{"contracts.call", dispatch.Unspecified{}},
		{"", dispatch.Unspecified{}},
	}
	for _, tt := range tests {
		err := fmt.Errorf("op: %w", &originErr{msg: "boom", origin: tt.origin})
		if f := fm.Fault(err); f != tt.want {
			t.Errorf("Fault(origin=%q) = %v; want %v", tt.origin, f, tt.want)
		}
	}
}

func TestFaultDefaults(t *testing.T) {
	fm := mustNew(t)
	tests := []struct {
		err  error
		want dispatch.Fault
	}{
		{context.DeadlineExceeded, dispatch.Exhausted{}},
		{fmt.Errorf("rpc: %w", context.Canceled), dispatch.Unavailable{}},
		{os.ErrNotExist, dispatch.CannotLookup{}},
		{os.ErrPermission, dispatch.BadOrigin{}},
	}
	for _, tt := range tests {
		if f := fm.Fault(tt.err); f != tt.want {
			t.Errorf("Fault(%v) = %v; want %v", tt.err, f, tt.want)
		}
	}
}

func TestFaultUserDefaultPrecedesLibrary(t *testing.T) {
	fm := mustNew(t, WithDefault(context.DeadlineExceeded, dispatch.Unavailable{}))
	if f := fm.Fault(context.DeadlineExceeded); f != (dispatch.Unavailable{}) {
		t.Fatalf("Fault = %v; want user default to win", f)
	}
}

func TestFaultIndexedFallback(t *testing.T) {
	fm := mustNew(t)
	err := fmt.Errorf("boundary: %w", &indexedErr{msg: "raw", d: 42, i: 7, b: 9})
	want := dispatch.Unspecified{DispatchErrorIndex: 42, ErrorIndex: 7, Error: 9}
	if f := fm.Fault(err); f != want {
		t.Fatalf("Fault = %v; want %v", f, want)
	}
}

func TestNewRejectsBadRules(t *testing.T) {
	cases := []struct {
		name string
		opt  Option
	}{
		{"nil override target", WithOverride(nil, dispatch.Corruption{})},
		{"nil override fault", WithOverride(errors.New("x"), nil)},
		{"nil default target", WithDefault(nil, dispatch.Corruption{})},
		{"nil default fault", WithDefault(errors.New("x"), nil)},
		{"nil prefix fault", WithOriginPrefix("fungibles", nil)},
		{"empty prefix", WithOriginPrefix("", dispatch.Corruption{})},
		{"malformed prefix", WithOriginPrefix("Fungi bles", dispatch.Corruption{})},
		{"all-wildcard prefix", WithOriginPrefix("*.*", dispatch.Corruption{})},
	}
	for _, tc := range cases {
		if _, err := New(tc.opt); err == nil {
			t.Errorf("%s: New returned nil error", tc.name)
		}
	}
}

func TestNewNormalizesPrefixes(t *testing.T) {
	fm := mustNew(t, WithOriginPrefix("Fungibles::Transfer", dispatch.TooManyConsumers{}))
	err := &originErr{msg: "x", origin: "fungibles.transfer.balance"}
	if f := fm.Fault(err); f != (dispatch.TooManyConsumers{}) {
		t.Fatalf("Fault = %v; want prefix rule after normalization", f)
	}
}

func BenchmarkFaultPrefix(b *testing.B) {
	fm, err := New(
		WithOriginPrefix("fungibles", dispatch.UseCase{Err: dispatch.Fungibles(dispatch.FungiblesUnknown)}),
		WithOriginPrefix("fungibles.transfer.balance", dispatch.UseCase{Err: dispatch.Fungibles(dispatch.FungiblesInsufficientBalance)}),
	)
	if err != nil {
		b.Fatal(err)
	}
	oe := &originErr{msg: "boom", origin: "fungibles.transfer.balance.min"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		fm.Fault(oe)
	}
}
