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

import "testing"

func BenchmarkContainerApply(b *testing.B) {
	c := NewContainer[successBody, errorBody]()
	data := successBody{Msg: "success!"}
	patch := Patch[successBody, errorBody]{
		Pending: boolPtr(false),
		Success: boolPtr(true),
		Data:    &data,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Apply(patch)
	}
}

func BenchmarkContainerApplyWithSubscribers(b *testing.B) {
	c := NewContainer[successBody, errorBody]()
	for i := 0; i < 8; i++ {
		c.Subscribe(func(State[successBody, errorBody]) {})
	}
	patch := Patch[successBody, errorBody]{Pending: boolPtr(true)}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Apply(patch)
	}
}
