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

import "fmt"

var (
	// errNoScheme is returned when the text starts with a colon: a scheme
	// separator without any scheme name in front of it.
	errNoScheme = &Error{Message: "No scheme found before ':'"}
	// errColonInFirstSegment is returned for a relative reference whose first
	// path segment contains a colon, which would be read back as a scheme.
	errColonInFirstSegment = &Error{Message: "Invalid URI character in first path segment", Char: ':'}
)

// Error describes why a piece of URI text does not match the generic
// grammar. Char holds the offending character when there is a single one,
// Details the offending fragment otherwise.
type Error struct {
	Message string
	Char    rune
	Details string
}

// Error formats the message with the character, or the details when no
// character is set.
func (e *Error) Error() string {
	msg := e.Message
	if e.Char != 0 {
		msg = fmt.Sprintf("%s '%c'", msg, e.Char)
	} else if e.Details != "" {
		msg = fmt.Sprintf("%s '%s'", msg, e.Details)
	}
	return msg
}
