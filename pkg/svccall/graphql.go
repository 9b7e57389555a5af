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

import (
	"github.com/shurcooL/graphql"
)

// NewGraphQLClient builds a GraphQL client that talks to the descriptor's
// URL over the descriptor-derived transport. GraphQL is JSON over POST, so
// the descriptor's headers, credential policy, redirect policy and
// keepalive setting all apply; the query/response plumbing is handled by
// the graphql package rather than Execute.
func NewGraphQLClient(desc Descriptor, opts ...Option) (*graphql.Client, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.client == nil {
		o.client = newHTTPClient(desc)
	}

	return graphql.NewClient(desc.URL, o.client), nil
}
