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
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestNewJSONServer(t *testing.T) {
	server := NewJSONServer(t, 401, map[string]string{"errorMsg": "error!"})

	req, err := http.NewRequest(http.MethodPost, server.URL, strings.NewReader(`{"user":"anna"}`))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("X-Probe", "yes")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 401 {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("response body is not JSON: %v", err)
	}
	if body["errorMsg"] != "error!" {
		t.Errorf("unexpected body: %v", body)
	}

	if server.RequestCount() != 1 {
		t.Errorf("request count = %d, want 1", server.RequestCount())
	}
	if got := server.LastHeaders().Get("X-Probe"); got != "yes" {
		t.Errorf("recorded header = %q, want yes", got)
	}
	if got := string(server.LastBody()); got != `{"user":"anna"}` {
		t.Errorf("recorded body = %q", got)
	}
}

func TestNewMalformedServer(t *testing.T) {
	server := NewMalformedServer(t, 200)

	resp, err := http.Get(server.URL)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if json.Valid(raw) {
		t.Errorf("body %q should not be valid JSON", raw)
	}
}

func TestNewRedirectServer(t *testing.T) {
	server := NewRedirectServer(t, http.StatusFound, map[string]string{"msg": "target"})

	resp, err := http.Get(server.URL)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("target body is not JSON: %v", err)
	}
	if body["msg"] != "target" {
		t.Errorf("unexpected body: %v", body)
	}
	if server.RequestCount() != 2 {
		t.Errorf("request count = %d, want 2 (redirect + target)", server.RequestCount())
	}
}
