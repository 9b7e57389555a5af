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

// Package svccall issues single JSON HTTP requests against statically
// described service endpoints and exposes each request's lifecycle
// (pending, success, error) through an observable state container.
//
// A Descriptor describes the endpoint once: URL, method, credential
// policy, redirect policy, extra headers. A Service binds a descriptor to
// concrete request, response and error payload types:
//
//	svc, err := svccall.New[LoginRequest, Session, APIError](svccall.Descriptor{
//		URL:    "https://api.example.com/v1/login",
//		Method: svccall.MethodPost,
//	})
//	if err != nil {
//		// invalid descriptor
//	}
//
//	res, err := svc.Execute(ctx, &LoginRequest{User: "anna"})
//	switch {
//	case err != nil:
//		// transport failure or undecodable response body
//	case res.OK:
//		use(res.Data) // Session
//	default:
//		use(res.Err) // APIError, decoded from a non-2xx response
//	}
//
// The lifecycle of the most recent invocation is always readable via
// StateSnapshot and observable via Subscribe, which is how UI-style
// consumers drive rendering:
//
//	cancel := svc.Subscribe(func(st svccall.State[Session, APIError]) {
//		// st.Pending, then st.Success selects st.Data vs st.Err
//	})
//	defer cancel()
//
// There are no retries, no caching and no cancellation of in-flight
// requests; one invocation is one request.
package svccall
