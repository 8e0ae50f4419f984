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
	"slices"
	"strings"
)

// Query is one name/value pair of a query string. HasValue is false when
// the pair was written without '=' ("?flag"); Value is then empty.
type Query struct {
	Name     string
	Value    string
	HasValue bool
}

// String returns the pair as "name=value". A pair without value is written
// as "name=".
func (q Query) String() string {
	return q.Name + "=" + q.Value
}

// Queries is an ordered list of query pairs. Names are not unique.
type Queries []Query

// ParseQueries splits a raw query string on '&', then each part on its
// first '='. Values are kept as written, escapes included. Empty parts
// ("a=1&&b=2", a trailing '&', an empty query) produce no pair; when no
// pair is left the result is nil.
func ParseQueries(raw string) Queries {
	if raw == "" {
		return nil
	}
	qs := make(Queries, 0, strings.Count(raw, "&")+1)
	for part := range strings.SplitSeq(raw, "&") {
		if part == "" {
			continue
		}
		name, value, hasValue := strings.Cut(part, "=")
		qs = append(qs, Query{Name: name, Value: value, HasValue: hasValue})
	}
	if len(qs) == 0 {
		return nil
	}
	return qs
}

// Encode joins the pairs, in order, with '&'.
func (qs Queries) Encode() string {
	var b strings.Builder
	for i, q := range qs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(q.Name)
		b.WriteByte('=')
		b.WriteString(q.Value)
	}
	return b.String()
}

func (qs Queries) index(name string) int {
	return slices.IndexFunc(qs, func(q Query) bool { return q.Name == name })
}

// Lookup returns the first pair named name.
func (qs Queries) Lookup(name string) (Query, bool) {
	if i := qs.index(name); i >= 0 {
		return qs[i], true
	}
	return Query{}, false
}

// Get returns the value of the first pair named name, or "".
func (qs Queries) Get(name string) string {
	q, _ := qs.Lookup(name)
	return q.Value
}

// Values returns the values of every pair named name, in order.
func (qs Queries) Values(name string) []string {
	var values []string
	for _, q := range qs {
		if q.Name == name {
			values = append(values, q.Value)
		}
	}
	return values
}

// Queries returns a copy of the query pairs. Changing it does not change u.
func (u *URI) Queries() Queries {
	return slices.Clone(u.queries)
}

// Query returns the value of the first pair named name, or "" when there is
// none. A linear scan; query lists are expected to be short.
func (u *URI) Query(name string) string {
	return u.QueryOr(name, "")
}

// QueryOr returns the value of the first pair named name, or def when there
// is none.
func (u *URI) QueryOr(name, def string) string {
	if q, ok := u.queries.Lookup(name); ok {
		return q.Value
	}
	return def
}

// LookupQuery returns the first pair named name and whether it exists.
func (u *URI) LookupQuery(name string) (Query, bool) {
	return u.queries.Lookup(name)
}

// QueryValues returns the values of every pair named name, in order.
func (u *URI) QueryValues(name string) []string {
	return u.queries.Values(name)
}

// SetAllQueries replaces the whole query list with a copy of qs.
func (u *URI) SetAllQueries(qs Queries) {
	u.queries = slices.Clone(qs)
}

// SetQuery sets the value of the first pair named name in place, or
// appends a new pair when there is none.
//
// With overwrite false the call is a no-op when name already has a
// non-empty value. A pair whose value is empty counts as unset and is
// still replaced.
func (u *URI) SetQuery(name, value string, overwrite bool) {
	if !overwrite && u.Query(name) != "" {
		return
	}
	if i := u.queries.index(name); i >= 0 {
		u.queries[i].Value = value
		u.queries[i].HasValue = true
		return
	}
	u.queries = append(u.queries, Query{Name: name, Value: value, HasValue: true})
}

// SetQueries calls SetQuery for every pair of qs, in order. Pairs already
// in u and absent from qs are kept.
func (u *URI) SetQueries(qs Queries, overwrite bool) {
	for _, q := range qs {
		u.SetQuery(q.Name, q.Value, overwrite)
	}
}

// DeleteQuery removes every pair named name.
func (u *URI) DeleteQuery(name string) {
	u.queries = slices.DeleteFunc(u.queries, func(q Query) bool { return q.Name == name })
}
