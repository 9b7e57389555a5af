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

// Command svccall invokes JSON HTTP services described in a configuration
// file (or ad hoc via --url) and writes the decoded results as NDJSON or
// human-readable text.
//
// Exit codes:
//
//	0 - the call completed (including calls the service answered with an
//	    error status; that is a result, not a failure)
//	1 - unexpected error
//	2 - unknown service or invalid descriptor
//	3 - network failure
//	4 - the response body was not valid JSON
package main
