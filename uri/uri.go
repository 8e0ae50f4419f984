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

// Package uri provides a mutable model of a URI: text is parsed once into
// its components, each component can be read and replaced, and the model is
// written back out as URI text.
//
// On top of the generic components the model keeps two structured views:
//   - Queries: the query string as an ordered list of name/value pairs.
//     Names may repeat; lookups return the first match.
//   - Path segments: the '/'-delimited parts of the path, with operations
//     to replace, append and prepend segments.
//
// Component values are stored exactly as they appear in the text, percent
// escapes included. Nothing is decoded on parse or encoded on output, so a
// URI that is parsed and not modified is written back as the same text.
//
// A URI is a plain value owned by its caller. It is not safe for concurrent
// modification; use Clone to hand a copy to another goroutine.
package uri

import (
	"encoding/json"
	"slices"

	"braces.dev/errtrace"
	"golang.org/x/text/unicode/norm"

	"github.com/jplu/urikit/internal/grammar"
)

// URI is the component model of a parsed URI. The zero value is an empty
// relative reference; values are normally obtained from Parse.
type URI struct {
	scheme   string
	username string
	password string
	domain   string
	port     string
	path     string
	anchor   string
	queries  Queries

	// hasAuthority keeps "//" for URIs such as "file:///etc" whose
	// authority is present but empty.
	hasAuthority bool
}

// Parse parses s into a URI. The text must match the generic URI (or IRI)
// grammar; the returned error is a *ParseError describing the first
// violation. The query string is split into pairs on '&', and each pair on
// its first '='.
func Parse(s string) (*URI, error) {
	c, err := grammar.Parse(s)
	if err != nil {
		return nil, errtrace.Wrap(newParseError(err))
	}
	return fromComponents(c), nil
}

// ParseNormalized is Parse applied to the Unicode Normalization Form C of
// s. Use it when canonically equivalent IRIs must produce equal models.
func ParseNormalized(s string) (*URI, error) {
	return errtrace.Wrap2(Parse(norm.NFC.String(s)))
}

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse(s string) *URI {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

func fromComponents(c grammar.Components) *URI {
	return &URI{
		scheme:       c.Scheme,
		username:     c.Username,
		password:     c.Password,
		domain:       c.Host,
		port:         c.Port,
		path:         c.Path,
		anchor:       c.Fragment,
		queries:      ParseQueries(c.RawQuery),
		hasAuthority: c.HasAuthority,
	}
}

func (u *URI) components() grammar.Components {
	return grammar.Components{
		Scheme:       u.scheme,
		Username:     u.username,
		Password:     u.password,
		Host:         u.domain,
		Port:         u.port,
		Path:         u.path,
		RawQuery:     u.queries.Encode(),
		Fragment:     u.anchor,
		HasAuthority: u.hasAuthority,
	}
}

// Scheme returns the scheme, e.g. "http", or "" for a relative reference.
func (u *URI) Scheme() string { return u.scheme }

// Username returns the user name of the userinfo.
func (u *URI) Username() string { return u.username }

// Password returns the text after the first ':' of the userinfo.
func (u *URI) Password() string { return u.password }

// Domain returns the host name. IP literals keep their brackets, e.g. "[::1]".
func (u *URI) Domain() string { return u.domain }

// Port returns the port as written, without the leading ':'.
func (u *URI) Port() string { return u.port }

// Path returns the full path, e.g. "/a/b/c".
func (u *URI) Path() string { return u.path }

// Anchor returns the fragment, without the leading '#'.
func (u *URI) Anchor() string { return u.anchor }

// IsAbsolute reports whether the URI has a scheme.
func (u *URI) IsAbsolute() bool { return u.scheme != "" }

// The setters below replace a component as is. They never validate nor
// escape their argument.

// SetScheme replaces the scheme.
func (u *URI) SetScheme(scheme string) { u.scheme = scheme }

// SetUsername replaces the user name.
func (u *URI) SetUsername(username string) { u.username = username }

// SetPassword replaces the password.
func (u *URI) SetPassword(password string) { u.password = password }

// SetDomain replaces the host name.
func (u *URI) SetDomain(domain string) { u.domain = domain }

// SetPort replaces the port.
func (u *URI) SetPort(port string) { u.port = port }

// SetPath replaces the whole path.
func (u *URI) SetPath(path string) { u.path = path }

// SetAnchor replaces the fragment.
func (u *URI) SetAnchor(anchor string) { u.anchor = anchor }

// String writes the URI back out as text. The query string is rebuilt from
// the pairs in order, each one as "name=value", a pair without value as
// "name=". An empty query list or fragment is omitted together with its
// delimiter.
func (u *URI) String() string {
	return u.components().String()
}

// ToASCII returns the URI text with every non-ASCII character mapped away,
// following RFC 3987, Section 3.1: components are put in NFC and
// percent-encoded, and the host name is converted with IDNA ToASCII.
func (u *URI) ToASCII() string {
	return u.components().ToASCII()
}

// Clone returns a deep copy of u.
func (u *URI) Clone() *URI {
	if u == nil {
		return nil
	}
	c := *u
	c.queries = slices.Clone(u.queries)
	return &c
}

// MarshalText implements encoding.TextMarshaler.
func (u *URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is parsed as
// by Parse.
func (u *URI) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return errtrace.Wrap(err)
	}
	*u = *parsed
	return nil
}

// MarshalJSON implements the json.Marshaler interface, encoding the URI as
// a JSON string.
func (u *URI) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(json.Marshal(u.String()))
}

// UnmarshalJSON implements the json.Unmarshaler interface. It decodes a
// JSON string and parses it as by Parse.
func (u *URI) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(u.UnmarshalText([]byte(s)))
}
