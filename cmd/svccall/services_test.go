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
	"bytes"
	"strings"
	"testing"

	"github.com/sirseerhq/sirseer-svccall/test/testutil"
)

func TestServicesCommandListsServices(t *testing.T) {
	configPath := testutil.WriteConfigFile(t, `
default_service: whoami
services:
  whoami:
    url: https://api.example.com/v1/whoami
  login:
    url: https://api.example.com/v1/login
    method: POST
`)

	cmd := newServicesCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--config", configPath})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("services command failed: %v", err)
	}

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d:\n%s", len(lines), out)
	}
	// Sorted by name: login before whoami.
	if !strings.Contains(lines[0], "login") || !strings.Contains(lines[0], "POST") {
		t.Errorf("unexpected first line: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "*") || !strings.Contains(lines[1], "whoami") {
		t.Errorf("default service should be marked, got %q", lines[1])
	}
}
