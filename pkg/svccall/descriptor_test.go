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

func TestDescriptorValidate(t *testing.T) {
	tests := []struct {
		name      string
		desc      Descriptor
		wantError bool
	}{
		{
			name:      "minimal valid",
			desc:      Descriptor{URL: "https://api.example.com/v1/whoami"},
			wantError: false,
		},
		{
			name: "all fields valid",
			desc: Descriptor{
				URL:              "http://localhost:8080/health",
				Method:           MethodPost,
				Credentials:      CredentialsInclude,
				Keepalive:        true,
				Mode:             ModeSameOrigin,
				Redirect:         RedirectManual,
				Headers:          map[string]string{"X-Tenant": "acme"},
				MaxResponseBytes: 1 << 20,
			},
			wantError: false,
		},
		{
			name:      "missing url",
			desc:      Descriptor{},
			wantError: true,
		},
		{
			name:      "relative url",
			desc:      Descriptor{URL: "/v1/whoami"},
			wantError: true,
		},
		{
			name:      "unsupported scheme",
			desc:      Descriptor{URL: "ftp://example.com/file"},
			wantError: true,
		},
		{
			name:      "unsupported method",
			desc:      Descriptor{URL: "https://example.com", Method: "PATCH"},
			wantError: true,
		},
		{
			name:      "unsupported credentials",
			desc:      Descriptor{URL: "https://example.com", Credentials: "always"},
			wantError: true,
		},
		{
			name:      "unsupported mode",
			desc:      Descriptor{URL: "https://example.com", Mode: "websocket"},
			wantError: true,
		},
		{
			name:      "unsupported redirect",
			desc:      Descriptor{URL: "https://example.com", Redirect: "bounce"},
			wantError: true,
		},
		{
			name:      "negative response bound",
			desc:      Descriptor{URL: "https://example.com", MaxResponseBytes: -1},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.desc.Validate()
			if tt.wantError && err == nil {
				t.Error("expected a validation error")
			}
			if !tt.wantError && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestDescriptorDefaults(t *testing.T) {
	d := Descriptor{URL: "https://example.com"}

	if got := d.method(); got != MethodGet {
		t.Errorf("default method = %q, want GET", got)
	}
	if got := d.credentials(); got != CredentialsSameOrigin {
		t.Errorf("default credentials = %q, want same-origin", got)
	}
	if got := d.mode(); got != ModeCORS {
		t.Errorf("default mode = %q, want cors", got)
	}
	if got := d.redirect(); got != RedirectFollow {
		t.Errorf("default redirect = %q, want follow", got)
	}
}
