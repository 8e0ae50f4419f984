/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

//nolint:testpackage // This is a white-box test file for an internal package. It needs to be in the same package to test unexported functions.
package grammar

import (
	"strings"
	"testing"
)

// TestError_Error tests the formatting of Error for the different
// combinations of its fields.
func TestError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{name: "Message Only", err: &Error{Message: "base message"}, expected: "base message"},
		{name: "Message with Character", err: &Error{Message: "invalid character", Char: '<'}, expected: "invalid character '<'"},
		{name: "Message with Details", err: &Error{Message: "invalid sequence", Details: "%2G"}, expected: "invalid sequence '%2G'"},
		{
			name:     "Character takes precedence over Details",
			err:      &Error{Message: "invalid character with details", Char: '>', Details: "some detail"},
			expected: "invalid character with details '>'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// TestScanComponent checks escape handling and lax encoding in isolation.
func TestScanComponent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "Plain", input: "abc-._~", want: "abc-._~"},
		{name: "Escape kept verbatim", input: "a%2fb", want: "a%2fb"},
		{name: "Lax space", input: "a b", want: "a%20b"},
		{name: "Lax braces", input: "{x}", want: "%7Bx%7D"},
		{name: "Unicode", input: "日本", want: "日本"},
		{name: "Trailing percent", input: "abc%", wantErr: true},
		{name: "Non hex escape", input: "%g0", wantErr: true},
		{name: "Invalid UTF-8", input: "a\xffb", wantErr: true},
		{name: "Reserved slash", input: "a/b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var b strings.Builder
			err := scanComponent(tt.input, isRegNameChar, &b)
			if tt.wantErr {
				if err == nil {
					t.Errorf("scanComponent(%q) expected an error, got output %q", tt.input, b.String())
				}
				return
			}
			if err != nil {
				t.Fatalf("scanComponent(%q) returned error: %v", tt.input, err)
			}
			if got := b.String(); got != tt.want {
				t.Errorf("scanComponent(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestPercentEncodeNonASCII checks that ASCII, escapes included, is left as is.
func TestPercentEncodeNonASCII(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":          "",
		"abc/%20?":  "abc/%20?",
		"é":         "%C3%A9",
		"a€b":       "a%E2%82%ACb",
		"\U0001F600": "%F0%9F%98%80",
	}
	for in, want := range tests {
		var b strings.Builder
		percentEncodeNonASCII(in, &b)
		if got := b.String(); got != want {
			t.Errorf("percentEncodeNonASCII(%q) = %q, want %q", in, got, want)
		}
	}
}

// TestValidateBidiComponent checks the two structural rules of RFC 3987, Section 4.2.
func TestValidateBidiComponent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "Empty", input: ""},
		{name: "LTR only", input: "abc"},
		{name: "RTL only", input: "שלום"},
		{name: "RTL with inner digits", input: "ש1ם"},
		{name: "Neutral only", input: "123"},
		{name: "Mixed", input: "aש", wantErr: true},
		{name: "RTL ending with digit", input: "ש1", wantErr: true},
		{name: "RTL starting with digit", input: "1ש", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := validateBidiComponent(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateBidiComponent(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

// TestValidateBidiHost checks that labels are validated one by one.
func TestValidateBidiHost(t *testing.T) {
	t.Parallel()

	if err := validateBidiHost("[::1]"); err != nil {
		t.Errorf("IP literals are exempt, got %v", err)
	}
	if err := validateBidiHost("example.שלום"); err != nil {
		t.Errorf("labels with a single direction each should pass, got %v", err)
	}

	err := validateBidiHost("aש.com")
	e, ok := err.(*Error)
	if !ok {
		t.Fatalf("validateBidiHost() error = %v, want *Error", err)
	}
	if e.Message != "Invalid URI host label" {
		t.Errorf("Message = %q, want %q", e.Message, "Invalid URI host label")
	}
	if !strings.Contains(e.Details, "in host 'aש.com'") {
		t.Errorf("Details = %q, want the full host", e.Details)
	}
}

// TestCharPredicates spot-checks the per-component character sets.
func TestCharPredicates(t *testing.T) {
	t.Parallel()

	checks := []struct {
		name string
		fn   func(rune) bool
		r    rune
		want bool
	}{
		{"userinfo colon", isUserinfoChar, ':', true},
		{"userinfo at", isUserinfoChar, '@', false},
		{"host colon", isRegNameChar, ':', false},
		{"path at", isPathChar, '@', true},
		{"path question", isPathChar, '?', false},
		{"first segment colon", isNoSchemeSegmentChar, ':', false},
		{"query question", isQueryChar, '?', true},
		{"query private use", isQueryChar, '\uE000', true},
		{"fragment private use", isFragmentChar, '\uE000', false},
		{"fragment hash", isFragmentChar, '#', false},
		{"scheme plus", isSchemeChar, '+', true},
		{"scheme underscore", isSchemeChar, '_', false},
		{"hex upper", isASCIIHexDigit, 'F', true},
		{"hex out of range", isASCIIHexDigit, 'g', false},
		{"lax backslash", isLaxASCII, '\\', true},
		{"lax percent", isLaxASCII, '%', false},
	}

	for _, c := range checks {
		if got := c.fn(c.r); got != c.want {
			t.Errorf("%s: predicate(%q) = %v, want %v", c.name, c.r, got, c.want)
		}
	}
}
