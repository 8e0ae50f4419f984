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

import "strings"

func isASCIILetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

func isASCIIDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isASCIIHexDigit(r rune) bool {
	return isASCIIDigit(r) || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

// isSchemeChar reports whether r may follow the first letter of a scheme.
func isSchemeChar(r rune) bool {
	return isASCIILetter(r) || isASCIIDigit(r) || r == '+' || r == '-' || r == '.'
}

// isLaxASCII reports whether c is one of the US-ASCII characters that are
// not allowed in URIs but are accepted and percent-encoded by a lenient
// parser (RFC 3987, Section 3.1). '#', '%', '[' and ']' are never part of it.
func isLaxASCII(c rune) bool {
	return strings.ContainsRune("<>\" {}|\\^`", c)
}

// isForbiddenBidiFormatting reports the LRM, RLM, LRE, RLE, PDF, LRO and RLO
// characters, which RFC 3987, Section 4.1 forbids anywhere in an IRI.
func isForbiddenBidiFormatting(c rune) bool {
	return (c >= '\u202A' && c <= '\u202E') || c == '\u200E' || c == '\u200F'
}

// isUnreserved checks the RFC 3986 unreserved set.
func isUnreserved(c rune) bool {
	return isASCIILetter(c) || isASCIIDigit(c) || c == '-' || c == '.' || c == '_' || c == '~'
}

// isUnreservedOrSubDelims checks the RFC 3986 unreserved and sub-delims
// sets (US-ASCII only).
func isUnreservedOrSubDelims(c rune) bool {
	return isUnreserved(c) || strings.ContainsRune("!$&'()*+,;=", c)
}

// isIUnreservedOrSubDelims extends isUnreservedOrSubDelims with the ucschar
// ranges of RFC 3987.
func isIUnreservedOrSubDelims(c rune) bool {
	if isForbiddenBidiFormatting(c) {
		return false
	}
	if isUnreservedOrSubDelims(c) {
		return true
	}

	switch {
	case c >= '\u00A0' && c <= '\uD7FF',
		c >= '\uF900' && c <= '\uFDCF',
		c >= '\uFDF0' && c <= '\uFFEF',
		c >= 0x10000 && c <= 0x1FFFD,
		c >= 0x20000 && c <= 0x2FFFD,
		c >= 0x30000 && c <= 0x3FFFD,
		c >= 0x40000 && c <= 0x4FFFD,
		c >= 0x50000 && c <= 0x5FFFD,
		c >= 0x60000 && c <= 0x6FFFD,
		c >= 0x70000 && c <= 0x7FFFD,
		c >= 0x80000 && c <= 0x8FFFD,
		c >= 0x90000 && c <= 0x9FFFD,
		c >= 0xA0000 && c <= 0xAFFFD,
		c >= 0xB0000 && c <= 0xBFFFD,
		c >= 0xC0000 && c <= 0xCFFFD,
		c >= 0xD0000 && c <= 0xDFFFD,
		c >= 0xE1000 && c <= 0xEFFFD:
		return true
	}
	return false
}

func isIPrivate(c rune) bool {
	return (c >= '\uE000' && c <= '\uF8FF') ||
		(c >= 0xF0000 && c <= 0xFFFFD) ||
		(c >= 0x100000 && c <= 0x10FFFD)
}

// Per-component character sets. Percent-encoded triplets are handled by
// the scanner before these are consulted.

func isUserinfoChar(c rune) bool {
	return isIUnreservedOrSubDelims(c) || c == ':'
}

func isRegNameChar(c rune) bool {
	return isIUnreservedOrSubDelims(c)
}

func isPathChar(c rune) bool {
	return isIUnreservedOrSubDelims(c) || c == ':' || c == '@' || c == '/'
}

// isNoSchemeSegmentChar is isPathChar without ':' for the first segment of
// a relative-path reference (RFC 3986, Section 4.2).
func isNoSchemeSegmentChar(c rune) bool {
	return isIUnreservedOrSubDelims(c) || c == '@'
}

func isQueryChar(c rune) bool {
	return isPathChar(c) || c == '?' || isIPrivate(c)
}

func isFragmentChar(c rune) bool {
	return isPathChar(c) || c == '?'
}
