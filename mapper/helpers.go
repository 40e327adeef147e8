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

// freezeRules makes an immutable copy of a sentinel rule slice.
// Used when finalizing the mapper so later mutations to the builder
// cannot affect the snapshot.
func freezeRules(src []sentinelRule) []sentinelRule {
	if len(src) == 0 {
		return nil
	}
	dst := make([]sentinelRule, len(src))
	copy(dst, src)
	return dst
}
