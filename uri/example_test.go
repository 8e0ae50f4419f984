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

package uri_test

import (
	"errors"
	"fmt"

	"github.com/jplu/urikit/uri"
)

func Example() {
	u, err := uri.Parse("http://www.google.com/index.html?test=my%20data&test2=something1234")
	if err != nil {
		panic(err)
	}

	fmt.Println(u.Domain())
	fmt.Println(u.Query("test"))
	fmt.Println(u.Query("test2"))
	fmt.Println(u)
	// Output:
	// www.google.com
	// my%20data
	// something1234
	// http://www.google.com/index.html?test=my%20data&test2=something1234
}

func ExampleURI_AppendPathSegment() {
	u := uri.MustParse("https://example.com/path/to/location")
	u.AppendPathSegment("extra")
	fmt.Println(u.Path())
	u.PrependPathSegment("new")
	fmt.Println(u.Path())
	// Output:
	// /path/to/location/extra
	// /new/path/to/location/extra
}

func ExampleURI_SetPathSegment() {
	u := uri.MustParse("https://example.com/new/path/example")
	u.SetPathSegment("changed", 1)
	fmt.Println(u.Path())

	// Past the last segment: nothing happens.
	u.SetPathSegment("x", 99)
	fmt.Println(u.Path())

	_, err := u.PathSegment(99)
	fmt.Println(errors.Is(err, uri.ErrIndexOutOfRange))
	// Output:
	// /new/changed/example
	// /new/changed/example
	// true
}

func ExampleURI_SetQuery() {
	u := uri.MustParse("https://example.com/?ex1=hello&ex2=world")

	fmt.Println(u.QueryOr("ex3", "DEFAULT"))

	u.SetQuery("ex1", "test", false)
	u.SetQuery("ex4", "another", false)
	fmt.Println(u)

	u.SetQueries(uri.Queries{{Name: "ex1", Value: "new"}}, true)
	fmt.Println(u)

	u.SetAllQueries(uri.Queries{{Name: "new", Value: "value1"}})
	fmt.Println(u)
	// Output:
	// DEFAULT
	// https://example.com/?ex1=hello&ex2=world&ex4=another
	// https://example.com/?ex1=new&ex2=world&ex4=another
	// https://example.com/?new=value1
}

func ExampleURI_ToASCII() {
	u := uri.MustParse("https://bücher.example/straße")
	fmt.Println(u.ToASCII())
	// Output:
	// https://xn--bcher-kva.example/stra%C3%9Fe
}
