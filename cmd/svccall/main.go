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

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	svcerrors "github.com/sirseerhq/sirseer-svccall/internal/errors"
	"github.com/sirseerhq/sirseer-svccall/internal/neterror"
	"github.com/sirseerhq/sirseer-svccall/pkg/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "svccall",
		Short: "Call JSON HTTP services defined by static descriptors",
		Long: `svccall issues single JSON requests against services described in a
configuration file (or ad hoc via --url), tracks each request's lifecycle,
and writes the decoded result as NDJSON or human-readable text.

A call that completes with an error status from the service is a normal
result. Only transport failures and undecodable response bodies are
reported as errors.`,
		Version:       version.Version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
	}

	rootCmd.AddCommand(newCallCommand())
	rootCmd.AddCommand(newServicesCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if action, ok := neterror.UserAction(err); ok {
			fmt.Fprintf(os.Stderr, "%s\n", action)
		}
		os.Exit(mapErrorToExitCode(err))
	}
}

// mapErrorToExitCode translates sentinel errors into stable exit codes so
// scripts can branch on the failure class.
func mapErrorToExitCode(err error) int {
	switch {
	case errors.Is(err, svcerrors.ErrServiceNotFound),
		errors.Is(err, svcerrors.ErrInvalidDescriptor):
		return 2
	case errors.Is(err, svcerrors.ErrNetworkFailure):
		return 3
	case errors.Is(err, svcerrors.ErrDecodeFailure):
		return 4
	default:
		return 1
	}
}
