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

package uri

import (
	"strings"

	"braces.dev/errtrace"
)

// PathSegments returns the '/'-delimited segments of the path, left to
// right. The empty first element of an absolute path is dropped:
//
//	""       -> []
//	"/"      -> [""]
//	"/a/b"   -> ["a" "b"]
//	"/a/b/"  -> ["a" "b" ""]
//	"a/b"    -> ["a" "b"]
func (u *URI) PathSegments() []string {
	if u.path == "" {
		return nil
	}
	segments := strings.Split(u.path, "/")
	if segments[0] == "" {
		return segments[1:]
	}
	return segments
}

// PathSegment returns the segment at index. An index outside of
// PathSegments returns an *IndexError matching ErrIndexOutOfRange.
func (u *URI) PathSegment(index int) (string, error) {
	segments := u.PathSegments()
	if index < 0 || index >= len(segments) {
		return "", errtrace.Wrap(&IndexError{Index: index, Len: len(segments)})
	}
	return segments[index], nil
}

// SetPathSegments rebuilds the path as "/" + segment for every segment in
// order. No segments give an empty path, not "/".
func (u *URI) SetPathSegments(segments []string) {
	var b strings.Builder
	for _, segment := range segments {
		b.WriteByte('/')
		b.WriteString(segment)
	}
	u.path = b.String()
}

// SetPathSegment replaces the segment at index and rebuilds the path with
// SetPathSegments, which makes a rootless path absolute. An index outside
// of the current segments leaves the path untouched: the path is never
// grown to reach the index.
func (u *URI) SetPathSegment(value string, index int) {
	segments := u.PathSegments()
	if index < 0 || index >= len(segments) {
		return
	}
	segments[index] = value
	u.SetPathSegments(segments)
}

// AppendPathSegment adds segment at the end of the path with exactly one
// '/' in between. One trailing '/' of the path and one leading '/' of
// segment are dropped first, so "/a/b/" and "/c" give "/a/b/c".
func (u *URI) AppendPathSegment(segment string) {
	u.path = strings.TrimSuffix(u.path, "/") + "/" + strings.TrimPrefix(segment, "/")
}

// PrependPathSegment adds segment in front of the path with exactly one
// '/' in between and one '/' in front. One leading '/' of the path and one
// trailing '/' of segment are dropped first. Prepending to an empty path
// gives "/" + segment, without a trailing '/'.
func (u *URI) PrependPathSegment(segment string) {
	segment = strings.TrimSuffix(segment, "/")
	if !strings.HasPrefix(segment, "/") {
		segment = "/" + segment
	}
	rest := strings.TrimPrefix(u.path, "/")
	if rest == "" {
		u.path = segment
		return
	}
	u.path = segment + "/" + rest
}
