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

// Package apis defines the public Go-level contracts around the dispatch
// fault taxonomy.
//
// The taxonomy itself (dirpx.dev/dispatch) and its codec
// (dirpx.dev/dispatch/wire) are self-contained; everything that surrounds
// them — producing faults from runtime-native errors, projecting decoded
// faults onto transports, exposing them in API responses — is specified here
// as small, composable interfaces. Concrete implementations live in sibling
// packages (mapper, adapter, grpcx, httpx, wasmx), but callers should target
// these contracts rather than the concrete types.
//
// This package must remain lightweight: interfaces and small view types
// only, no heavy dependencies.
package apis
