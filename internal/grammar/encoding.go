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

package grammar

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// scanComponent copies s into b, validating each character with valid.
// Percent-encoded triplets are kept verbatim, never decoded. Lax ASCII
// characters are percent-encoded instead of rejected.
func scanComponent(s string, valid func(rune) bool, b *strings.Builder) error {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return &Error{Message: "Invalid UTF-8 sequence", Details: s[i : i+1]}
		}
		switch {
		case r == '%':
			if err := checkEscape(s[i:]); err != nil {
				return err
			}
			b.WriteString(s[i : i+3])
			i += 3
			continue
		case valid(r):
			b.WriteRune(r)
		case isLaxASCII(r):
			percentEncodeRune(r, b)
		default:
			return &Error{Message: "Invalid URI character", Char: r}
		}
		i += size
	}
	return nil
}

// checkEscape validates the "%XX" triplet at the start of s.
func checkEscape(s string) error {
	if len(s) < 3 || !isASCIIHexDigit(rune(s[1])) || !isASCIIHexDigit(rune(s[2])) {
		details := s
		if len(details) > 3 {
			details = details[:3]
		}
		return &Error{Message: "Invalid URI percent encoding", Details: details}
	}
	return nil
}

// percentEncodeRune writes the UTF-8 octets of r as "%XX" triplets unless r
// is unreserved.
func percentEncodeRune(r rune, b *strings.Builder) {
	if isUnreserved(r) {
		b.WriteRune(r)
		return
	}
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	for i := range n {
		fmt.Fprintf(b, "%%%02X", buf[i])
	}
}

// percentEncodeNonASCII percent-encodes every character above US-ASCII and
// leaves the rest, including existing escapes, untouched.
func percentEncodeNonASCII(s string, b *strings.Builder) {
	for _, r := range s {
		if r <= unicode.MaxASCII {
			b.WriteRune(r)
			continue
		}
		percentEncodeRune(r, b)
	}
}
