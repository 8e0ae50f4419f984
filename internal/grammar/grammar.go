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

// Package grammar splits URI and IRI text into its generic components
// (RFC 3986 and RFC 3987) and composes components back into text.
//
// Components are validated but never percent-decoded: an escape such as
// "%20" survives a Parse and String round trip unchanged. Characters that
// are not allowed in a URI but are harmless (space, '<', '>', ...) are
// percent-encoded while parsing instead of being rejected.
package grammar

import (
	"strings"

	// TODO: At some point implement my own IDNA2003 module (RFC 3490).
	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

// Components holds the generic components of a URI reference. Host keeps
// the brackets of an IP literal. The Has* flags record delimiters that were
// present in the source text even when the component itself is empty, so
// "http://h/?#" survives a round trip.
type Components struct {
	Scheme   string
	Username string
	Password string
	Host     string
	Port     string
	Path     string
	RawQuery string
	Fragment string

	HasAuthority bool
	HasQuery     bool
	HasFragment  bool
}

// Parse splits s into its components and validates each one against the
// generic grammar.
func Parse(s string) (Components, error) {
	var c Components

	scheme, rest, err := cutScheme(s)
	if err != nil {
		return Components{}, err
	}
	c.Scheme = scheme

	if strings.HasPrefix(rest, "//") {
		rest = rest[authorityPrefixLength:]
		end := strings.IndexAny(rest, "/?#")
		if end == -1 {
			end = len(rest)
		}
		c.HasAuthority = true
		if err = c.parseAuthority(rest[:end]); err != nil {
			return Components{}, err
		}
		rest = rest[end:]
	}

	rest, fragment, hasFragment := strings.Cut(rest, "#")
	path, query, hasQuery := strings.Cut(rest, "?")

	if c.Path, err = parsePath(path, c.Scheme == "" && !c.HasAuthority); err != nil {
		return Components{}, err
	}
	if hasQuery {
		c.HasQuery = true
		if c.RawQuery, err = parseBidiComponent(query, isQueryChar, "&="); err != nil {
			return Components{}, err
		}
	}
	if hasFragment {
		c.HasFragment = true
		if c.Fragment, err = parseFragment(fragment); err != nil {
			return Components{}, err
		}
	}

	return c, nil
}

// cutScheme returns the scheme of s and the text that follows its colon.
// Text that does not start with a valid scheme is a relative reference and
// comes back whole with an empty scheme.
func cutScheme(s string) (string, string, error) {
	if s == "" {
		return "", s, nil
	}
	if s[0] == ':' {
		return "", "", errNoScheme
	}
	if !isASCIILetter(rune(s[0])) {
		return "", s, nil
	}
	for i := 1; i < len(s); i++ {
		switch {
		case s[i] == ':':
			return s[:i], s[i+1:], nil
		case !isSchemeChar(rune(s[i])):
			return "", s, nil
		}
	}
	return "", s, nil
}

// parsePath validates a path. In a relative-path reference the first
// segment cannot hold a colon.
func parsePath(path string, relative bool) (string, error) {
	var b strings.Builder
	b.Grow(len(path))

	rest := path
	if relative && !strings.HasPrefix(path, "/") {
		first, tail, _ := strings.Cut(path, "/")
		if strings.ContainsRune(first, ':') {
			return "", errColonInFirstSegment
		}
		if err := scanComponent(first, isNoSchemeSegmentChar, &b); err != nil {
			return "", err
		}
		rest = tail
		if len(first) < len(path) {
			b.WriteByte('/')
		}
	}
	if err := scanComponent(rest, isPathChar, &b); err != nil {
		return "", err
	}

	out := b.String()
	if err := validateBidiSegments(out, "/"); err != nil {
		return "", err
	}
	return out, nil
}

// parseBidiComponent scans s with valid and applies the bidi rules to each
// part of the result delimited by seps, so that "q=שלום" is read as a
// left-to-right name and a right-to-left value.
func parseBidiComponent(s string, valid func(rune) bool, seps string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	if err := scanComponent(s, valid, &b); err != nil {
		return "", err
	}
	out := b.String()
	if err := validateBidiSegments(out, seps); err != nil {
		return "", err
	}
	return out, nil
}

// parseFragment scans a fragment. Fragments are free text, so only the
// forbidden bidi formatting characters are rejected (by isFragmentChar),
// not the structural direction rules.
func parseFragment(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	if err := scanComponent(s, isFragmentChar, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (c Components) hasAuthority() bool {
	return c.HasAuthority || c.Host != "" || c.Username != "" || c.Password != "" || c.Port != ""
}

// String composes the components into URI text. Delimiters are written
// when their component is non-empty or when the matching Has* flag is set.
// The userinfo and port have no flag: an empty password, userinfo or port
// is written without its ':' or '@', so "http://u:@h:/p" becomes
// "http://u@h/p".
// The output stays unambiguous: a path is separated from an authority by
// '/', and a path that would read back as an authority or a scheme is
// prefixed with "/." or "./".
func (c Components) String() string {
	var b strings.Builder
	b.Grow(len(c.Scheme) + len(c.Username) + len(c.Password) + len(c.Host) +
		len(c.Port) + len(c.Path) + len(c.RawQuery) + len(c.Fragment) + 8)

	if c.Scheme != "" {
		b.WriteString(c.Scheme)
		b.WriteByte(':')
	}

	if c.hasAuthority() {
		b.WriteString("//")
		if c.Username != "" || c.Password != "" {
			b.WriteString(c.Username)
			if c.Password != "" {
				b.WriteByte(':')
				b.WriteString(c.Password)
			}
			b.WriteByte('@')
		}
		b.WriteString(c.Host)
		if c.Port != "" {
			b.WriteByte(':')
			b.WriteString(c.Port)
		}
		if c.Path != "" && c.Path[0] != '/' {
			b.WriteByte('/')
		}
	} else {
		switch {
		case strings.HasPrefix(c.Path, "//"):
			b.WriteString("/.")
		case c.Scheme == "" && firstSegmentHasColon(c.Path):
			b.WriteString("./")
		}
	}

	b.WriteString(c.Path)

	if c.HasQuery || c.RawQuery != "" {
		b.WriteByte('?')
		b.WriteString(c.RawQuery)
	}
	if c.HasFragment || c.Fragment != "" {
		b.WriteByte('#')
		b.WriteString(c.Fragment)
	}

	return b.String()
}

func firstSegmentHasColon(path string) bool {
	first, _, _ := strings.Cut(path, "/")
	return strings.ContainsRune(first, ':')
}

// ToASCII maps the components to a plain URI following RFC 3987,
// Section 3.1: every component is put in NFC, non-ASCII characters are
// percent-encoded from their UTF-8 octets and a registered host name goes
// through IDNA ToASCII so that it stays resolvable in DNS.
func (c Components) ToASCII() string {
	a := c
	a.Username = asciiComponent(c.Username)
	a.Password = asciiComponent(c.Password)
	a.Host = asciiHost(c.Host)
	a.Path = asciiComponent(c.Path)
	a.RawQuery = asciiComponent(c.RawQuery)
	a.Fragment = asciiComponent(c.Fragment)
	return a.String()
}

func asciiComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	percentEncodeNonASCII(norm.NFC.String(s), &b)
	return b.String()
}

func asciiHost(host string) string {
	if host == "" || strings.HasPrefix(host, "[") {
		return host
	}
	normalized := norm.NFC.String(host)
	if ascii, err := idna.ToASCII(normalized); err == nil {
		return ascii
	}
	return asciiComponent(normalized)
}
