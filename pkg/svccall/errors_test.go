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
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestDecodeErrorUnwrap(t *testing.T) {
	cause := errors.New("invalid character 'n'")
	err := newDecodeError(200, []byte("not json"), cause)

	if !errors.Is(err, cause) {
		t.Error("DecodeError must unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "status 200") {
		t.Errorf("unexpected message: %v", err)
	}
	if err.Body != "not json" {
		t.Errorf("unexpected body snippet: %q", err.Body)
	}
}

func TestDecodeErrorSnippetBounds(t *testing.T) {
	long := strings.Repeat("a", 4*maxBodySnippet)
	err := newDecodeError(500, []byte(long), errors.New("x"))

	if len(err.Body) != maxBodySnippet {
		t.Errorf("snippet length = %d, want %d", len(err.Body), maxBodySnippet)
	}
}

func TestDecodeErrorSnippetTrimsSplitRune(t *testing.T) {
	// A body of multi-byte runes whose boundary does not land on
	// maxBodySnippet exactly.
	body := strings.Repeat("é", maxBodySnippet) // 2 bytes per rune
	err := newDecodeError(500, []byte(body), errors.New("x"))

	if !utf8.ValidString(err.Body) {
		t.Error("snippet must remain valid UTF-8")
	}
	if len(err.Body) > maxBodySnippet {
		t.Errorf("snippet length = %d, want <= %d", len(err.Body), maxBodySnippet)
	}
}
