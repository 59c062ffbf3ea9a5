/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

/*
Package window provides the windowing primitives used by the bucketing and session transforms.

Unlike a streaming window, everything here works on a complete, in-memory column: the
caller passes all values of one invocation and receives the assignment for each of them.

# Tumbling buckets

A bucket is a fixed-width partition of an integer (usually nanosecond) axis anchored at the
minimum value observed in the column:

	bucket = min + floor((v - min) / size) * size

	buckets, err := window.Buckets([]any{int64(100), int64(250), int64(700)}, 300)
	// buckets == []any{int64(100), int64(100), int64(700)}

Absent values stay absent and do not take part in finding the minimum. Applying Buckets
to its own output with the same size returns the same values.

# Sessions

Runs finds maximal runs of true flags, the activity-based counterpart of a session window:

	window.Runs([]bool{true, true, false, true}, false) // [2 1]
	window.Runs([]bool{true, true, false, true}, true)  // [2], trailing run still open
*/
package window
