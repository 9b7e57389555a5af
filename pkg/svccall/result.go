// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package svccall

// Result is the tagged outcome of a single invocation. Exactly one of Data
// and Err is meaningful, selected by OK: a success-range HTTP status yields
// {OK: true, Data}, any other status yields {OK: false, Err}. A Result is
// returned to the caller and not retained; the persisted lifecycle view
// lives in the service's state container.
type Result[Out, Fail any] struct {
	// OK reports whether the service answered with a success-range status.
	OK bool

	// Data is the decoded response payload when OK is true.
	Data Out

	// Err is the decoded response payload when OK is false.
	Err Fail
}
