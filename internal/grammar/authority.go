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
	"net"
	"strings"
)

const (
	// authorityPrefixLength is the length of the string "//".
	authorityPrefixLength = 2
	// ipvFutureParts is the number of dot-separated parts of an IPvFuture
	// literal such as "v1.abc".
	ipvFutureParts = 2
)

// parseAuthority validates the text between "//" and the path and stores
// its userinfo, host and port.
func (c *Components) parseAuthority(authority string) error {
	userinfo, host, port := splitAuthority(authority)

	if userinfo != "" {
		checked, err := parseBidiComponent(userinfo, isUserinfoChar, ":")
		if err != nil {
			return err
		}
		c.Username, c.Password, _ = strings.Cut(checked, ":")
	}

	checkedHost, err := parseHost(host)
	if err != nil {
		return err
	}
	c.Host = checkedHost

	for _, r := range port {
		if !isASCIIDigit(r) {
			return &Error{Message: "Invalid port character", Char: r}
		}
	}
	c.Port = port

	return nil
}

// parseHost validates an IP literal or a registered name.
func parseHost(host string) (string, error) {
	if host == "" {
		return "", nil
	}

	if strings.HasPrefix(host, "[") {
		if !strings.HasSuffix(host, "]") {
			return "", &Error{Message: "Invalid host IP: unterminated IP literal", Details: host}
		}
		if err := validateIPLiteral(host[1 : len(host)-1]); err != nil {
			return "", err
		}
		return host, nil
	}

	var b strings.Builder
	b.Grow(len(host))
	if err := scanComponent(host, isRegNameChar, &b); err != nil {
		return "", err
	}
	out := b.String()
	if err := validateBidiHost(out); err != nil {
		return "", err
	}
	return out, nil
}

// validateIPLiteral checks the inside of brackets: an IPv6 address or an
// IPvFuture literal.
func validateIPLiteral(ipLiteral string) error {
	if strings.HasPrefix(ipLiteral, "v") || strings.HasPrefix(ipLiteral, "V") {
		return validateIPVFuture(ipLiteral)
	}
	if !strings.Contains(ipLiteral, ":") || net.ParseIP(ipLiteral) == nil {
		return &Error{Message: "Invalid host IP", Details: ipLiteral}
	}
	return nil
}

// validateIPVFuture validates an IPvFuture literal (e.g., "v1.something").
func validateIPVFuture(ip string) error {
	parts := strings.SplitN(ip[1:], ".", ipvFutureParts)
	if len(parts) != ipvFutureParts {
		return &Error{Message: "Invalid IPvFuture format: no dot separator", Details: ip}
	}
	version, address := parts[0], parts[1]
	if version == "" {
		return &Error{Message: "Invalid IPvFuture: missing version", Details: ip}
	}
	for _, r := range version {
		if !isASCIIHexDigit(r) {
			return &Error{Message: "Invalid IPvFuture version char", Char: r}
		}
	}
	if address == "" {
		return &Error{Message: "Invalid IPvFuture: empty address part", Details: ip}
	}
	for _, r := range address {
		if !isUnreservedOrSubDelims(r) && r != ':' {
			return &Error{Message: "Invalid IPvFuture address char", Char: r}
		}
	}
	return nil
}

// splitAuthority splits an authority into userinfo, host and port. The
// userinfo ends at the last '@'; the port starts after the last ':' that
// is not inside an IP literal.
func splitAuthority(authority string) (userinfo, host, port string) {
	hostport := authority
	if i := strings.LastIndex(authority, "@"); i != -1 {
		userinfo = authority[:i]
		hostport = authority[i+1:]
	}

	if strings.HasPrefix(hostport, "[") {
		endBracket := strings.LastIndex(hostport, "]")
		if endBracket == -1 {
			return userinfo, hostport, ""
		}
		literal, tail := hostport[:endBracket+1], hostport[endBracket+1:]
		switch {
		case tail == "":
			return userinfo, literal, ""
		case tail[0] == ':':
			return userinfo, literal, tail[1:]
		default:
			// Garbage after the literal: hand back the whole thing so the
			// host validation reports it.
			return userinfo, hostport, ""
		}
	}

	if i := strings.LastIndex(hostport, ":"); i != -1 {
		return userinfo, hostport[:i], hostport[i+1:]
	}
	return userinfo, hostport, ""
}
