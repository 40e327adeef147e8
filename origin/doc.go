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

// Package origin defines the canonical identifier for where inside the
// runtime a fault was raised.
//
// Origins are dot-separated hierarchical paths naming the sub-module,
// component, and operation that produced a runtime error — for example
// "fungibles.transfer.balance" or "contracts.call.gas". They are attached to
// runtime-native errors and used by dirpx.dev/dispatch/mapper as the match
// key for its prefix rules, so that families of runtime faults can be mapped
// onto taxonomy values without enumerating every leaf.
//
// The format is deliberately strict (lowercase, limited depth, limited
// length) so that origins are cheap to index and stable enough to appear in
// mapping configuration.
package origin
