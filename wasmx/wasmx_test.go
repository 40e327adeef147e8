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

package wasmx

import (
	"context"
	"errors"
	"testing"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"dirpx.dev/dispatch"
	"dirpx.dev/dispatch/apis"
	"dirpx.dev/dispatch/mapper"
	"dirpx.dev/dispatch/wire"
)

func newMapper(t testing.TB, opts ...mapper.Option) apis.FaultMapper {
	t.Helper()
	fm, err := mapper.New(opts...)
	if err != nil {
		t.Fatalf("mapper.New: %v", err)
	}
	return fm
}

func TestErrno(t *testing.T) {
	errMissing := errors.New("account missing")
	fm := newMapper(t, mapper.WithOverride(errMissing, dispatch.CannotLookup{}))

	if got := Errno(fm, nil); got != OK {
		t.Fatalf("Errno(nil) = %#x; want OK", got)
	}
	if got, want := Errno(fm, errMissing), wire.EncodeU32(dispatch.CannotLookup{}); got != want {
		t.Fatalf("Errno = %#x; want %#x", got, want)
	}
	// Unmapped errors still produce a decodable errno.
	got := Errno(fm, errors.New("nobody mapped this"))
	if f := wire.DecodeU32(got); f != (dispatch.Unspecified{}) {
		t.Fatalf("DecodeU32(Errno) = %v; want zero Unspecified", f)
	}
}

func TestFuncLeavesErrnoOnStack(t *testing.T) {
	errLow := errors.New("balance too low")
	want := dispatch.UseCase{Err: dispatch.Fungibles(dispatch.FungiblesInsufficientBalance)}
	fm := newMapper(t, mapper.WithOverride(errLow, want))

	fail := Func(fm, func(ctx context.Context, mod api.Module, stack []uint64) error {
		return errLow
	})
	stack := []uint64{7}
	fail(context.Background(), nil, stack)
	if f := wire.DecodeU32(uint32(stack[0])); f != want {
		t.Fatalf("stack[0] decodes to %v; want %v", f, want)
	}

	ok := Func(fm, func(ctx context.Context, mod api.Module, stack []uint64) error {
		return nil
	})
	stack[0] = 7
	ok(context.Background(), nil, stack)
	if stack[0] != uint64(OK) {
		t.Fatalf("stack[0] = %d; want OK", stack[0])
	}
}

func TestModuleBuilderInstantiates(t *testing.T) {
	ctx := context.Background()
	r := wazero.NewRuntime(ctx)
	defer r.Close(ctx)

	fm := newMapper(t)
	mod, err := NewModuleBuilder(r, "dispatch_host", fm).
		Func("transfer", func(ctx context.Context, mod api.Module, stack []uint64) error {
			return nil
		}, api.ValueTypeI32, api.ValueTypeI64).
		Func("balance_of", func(ctx context.Context, mod api.Module, stack []uint64) error {
			return errors.New("unmapped")
		}, api.ValueTypeI32).
		Instantiate(ctx)
	if err != nil {
		t.Fatalf("Instantiate: %v", err)
	}
	defer mod.Close(ctx)

	for _, name := range []string{"transfer", "balance_of"} {
		fn := mod.ExportedFunction(name)
		if fn == nil {
			t.Fatalf("exported function %q missing", name)
		}
		def := fn.Definition()
		if n := len(def.ResultTypes()); n != 1 || def.ResultTypes()[0] != api.ValueTypeI32 {
			t.Fatalf("%q results = %v; want single i32 errno", name, def.ResultTypes())
		}
	}

	// Host functions are directly callable once instantiated.
	res, err := mod.ExportedFunction("balance_of").Call(ctx, 1)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if f := wire.DecodeU32(uint32(res[0])); f != (dispatch.Unspecified{}) {
		t.Fatalf("errno decodes to %v; want zero Unspecified", f)
	}

	res, err = mod.ExportedFunction("transfer").Call(ctx, 1, 2)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if uint32(res[0]) != OK {
		t.Fatalf("errno = %d; want OK", res[0])
	}
}
