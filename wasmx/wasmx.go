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

// Package wasmx carries dispatch faults across a wazero guest boundary.
//
// Host functions exposed to a guest return a single i32 errno: 0 for
// success, otherwise the canonical four-byte wire form of the fault the
// host-side error resolved to. The guest decodes that u32 with the same
// total decoder the host uses, so the two sides can never disagree on what
// a status value means.
//
// Because OK is the zero word, hosts must not hand out the fault Other(0)
// — it encodes to 0 and would be indistinguishable from success. Reserve
// nonzero payloads for Other.
package wasmx

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"dirpx.dev/dispatch"
	"dirpx.dev/dispatch/apis"
	"dirpx.dev/dispatch/wire"
)

// OK is the errno a host function returns when its error is nil.
const OK uint32 = 0

// HostFunc is the host-side shape of a guest-callable function. It receives
// the raw wazero stack (parameters in stack[0:]) and reports failure as an
// ordinary Go error; Func turns that error into the errno the guest sees.
type HostFunc func(ctx context.Context, mod api.Module, stack []uint64) error

// Errno resolves err through the fault mapper and encodes the result.
// A nil error yields OK.
func Errno(fm apis.FaultMapper, err error) uint32 {
	if err == nil {
		return OK
	}
	return wire.EncodeU32(fm.Fault(err))
}

// Func adapts a HostFunc into a wazero host function that leaves the errno
// in stack[0]. The wrapped function's i32 result slot must be declared by
// the caller (ModuleBuilder does this).
func Func(fm apis.FaultMapper, fn HostFunc) api.GoModuleFunc {
	return api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
		stack[0] = uint64(Errno(fm, fn(ctx, mod, stack)))
	})
}

// WriteFault writes the four-byte wire form of f into guest memory at off.
// It reports false when the write falls outside the guest's memory.
func WriteFault(mem api.Memory, off uint32, f dispatch.Fault) bool {
	b := wire.Encode(f)
	return mem.Write(off, b[:])
}

type funcDef struct {
	name   string
	fn     HostFunc
	params []api.ValueType
}

// ModuleBuilder assembles a host module whose exported functions all follow
// the errno convention: declared parameters plus a single i32 result.
type ModuleBuilder struct {
	runtime wazero.Runtime
	name    string
	fm      apis.FaultMapper
	funcs   []funcDef
}

// NewModuleBuilder starts building a host module with the given name. Every
// function registered on it resolves its errors through fm.
func NewModuleBuilder(runtime wazero.Runtime, name string, fm apis.FaultMapper) *ModuleBuilder {
	return &ModuleBuilder{runtime: runtime, name: name, fm: fm}
}

// Func adds a guest-callable function to the module. params describes the
// guest-visible parameters; the i32 errno result is implied.
func (b *ModuleBuilder) Func(name string, fn HostFunc, params ...api.ValueType) *ModuleBuilder {
	b.funcs = append(b.funcs, funcDef{name: name, fn: fn, params: params})
	return b
}

// Instantiate builds the host module into the wazero runtime.
func (b *ModuleBuilder) Instantiate(ctx context.Context) (api.Module, error) {
	builder := b.runtime.NewHostModuleBuilder(b.name)
	for _, f := range b.funcs {
		builder.NewFunctionBuilder().
			WithGoModuleFunction(Func(b.fm, f.fn), f.params, []api.ValueType{api.ValueTypeI32}).
			Export(f.name)
	}
	return builder.Instantiate(ctx)
}
