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
	"os"

	"dirpx.dev/dispatch"
)

// builtinDefaults returns the library-level sentinel rules seeded into every
// builder. They cover the errors any host-side call path can surface
// regardless of domain. User rules registered via WithDefault are checked
// before these.
func builtinDefaults() []sentinelRule {
	return []sentinelRule{
		// A call that ran out of its deadline exhausted its budget.
		{target: context.DeadlineExceeded, fault: dispatch.Exhausted{}},
		// A canceled call is indistinguishable from the callee going away.
		{target: context.Canceled, fault: dispatch.Unavailable{}},
		// Missing files and processes surface as failed lookups.
		{target: os.ErrNotExist, fault: dispatch.CannotLookup{}},
		// Permission errors map to the origin check failure.
		{target: os.ErrPermission, fault: dispatch.BadOrigin{}},
	}
}
