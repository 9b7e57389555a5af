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

package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteConfigFile writes a svccall YAML config into a temp directory and
// returns its path.
func WriteConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

// SingleServiceConfig renders a config file defining one service pointing
// at the given URL.
func SingleServiceConfig(t *testing.T, name, url, method string) string {
	t.Helper()
	content := fmt.Sprintf(`
default_service: %s
services:
  %s:
    url: %s
`, name, name, url)
	if method != "" {
		content += fmt.Sprintf("    method: %s\n", method)
	}
	return WriteConfigFile(t, content)
}
