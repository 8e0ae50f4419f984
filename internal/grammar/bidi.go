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
	"errors"
	"strings"

	"golang.org/x/text/unicode/bidi"
)

// isRTL reports whether r has a strong right-to-left bidi class.
func isRTL(r rune) bool {
	prop, _ := bidi.LookupRune(r)
	class := prop.Class()
	return class == bidi.R || class == bidi.AL
}

// validateBidiComponent applies the structural rules of RFC 3987,
// Section 4.2 to one component: no mix of left-to-right and right-to-left
// characters, and a right-to-left component starts and ends with a
// right-to-left character.
func validateBidiComponent(component string) error {
	if component == "" {
		return nil
	}

	var hasLTR, hasRTL bool
	for _, r := range component {
		prop, _ := bidi.LookupRune(r)
		switch prop.Class() {
		case bidi.R, bidi.AL:
			hasRTL = true
		case bidi.L:
			hasLTR = true
		default:
		}
	}

	if hasLTR && hasRTL {
		return &Error{
			Message: "Invalid URI component: mixed left-to-right and right-to-left characters",
			Details: component,
		}
	}
	if !hasRTL {
		return nil
	}

	runes := []rune(component)
	if !isRTL(runes[0]) || !isRTL(runes[len(runes)-1]) {
		return &Error{
			Message: "Invalid URI component: right-to-left parts must start and end with right-to-left characters",
			Details: component,
		}
	}
	return nil
}

// validateBidiSegments validates every part of s delimited by any of the
// characters of seps as its own bidi component. Host labels, path
// segments, userinfo fields and query names and values are checked this way.
func validateBidiSegments(s string, seps string) error {
	isSep := func(r rune) bool { return strings.ContainsRune(seps, r) }
	for _, part := range strings.FieldsFunc(s, isSep) {
		if err := validateBidiComponent(part); err != nil {
			return err
		}
	}
	return nil
}

// validateBidiHost checks each dot-separated label of a registered name.
// IP literals are exempt.
func validateBidiHost(host string) error {
	if strings.HasPrefix(host, "[") {
		return nil
	}
	err := validateBidiSegments(host, ".")
	var e *Error
	if errors.As(err, &e) {
		e.Message = "Invalid URI host label"
		e.Details += " in host '" + host + "'"
	}
	return err
}
