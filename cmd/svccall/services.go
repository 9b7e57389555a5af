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
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/sirseerhq/sirseer-svccall/internal/config"
)

// newServicesCommand builds the services command, which lists the
// services defined in the configuration.
func newServicesCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "services",
		Short: "List the services defined in the configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}

			names := make([]string, 0, len(cfg.Services))
			for name := range cfg.Services {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				svc := cfg.Services[name]
				method := svc.Method
				if method == "" {
					method = "GET"
				}
				marker := " "
				if name == cfg.DefaultService {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-20s %-7s %s\n", marker, name, method, svc.URL)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Config file path (default: standard locations)")

	return cmd
}
