/*
   Copyright 2025 The SmartConfig Authors.

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

package schema

import (
	"errors"
	"reflect"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrNilValue is returned when FromStruct is given nil.
	ErrNilValue = errors.New("schema: nil value provided")
	// ErrNotStruct is returned when FromStruct is given a non-struct value.
	ErrNotStruct = errors.New("schema: value is not a struct")
)

// maxDeref bounds pointer unwrapping in FromStruct as a guard against
// pathological nesting.
const maxDeref = 8

// FromStruct derives a Schema from a struct instance: the struct type
// name becomes the schema name and every exported non-zero field
// becomes a property default. Field names are lowered to
// lowerCamelCase; a `config:"name"` tag overrides the derived key and
// `config:"-"` skips the field. Pointers are dereferenced first.
//
// This is the Go rendition of a defaults-carrying blueprint: authoring
//
//	cfg, err := schema.FromStruct(DBConfig{Port: 5432})
//
// is equivalent to schema.New("DBConfig", schema.WithDefault("port", 5432)).
// Options run after field extraction, so namespacing and token
// metadata attach the usual way.
func FromStruct(v any, opts ...Option) (*Schema, error) {
	if v == nil {
		return nil, ErrNilValue
	}

	rv := reflect.ValueOf(v)
	for i := 0; i < maxDeref && rv.Kind() == reflect.Ptr; i++ {
		if rv.IsNil() {
			return nil, ErrNilValue
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, ErrNotStruct
	}

	rt := rv.Type()
	s := &Schema{name: rt.Name()}
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		key := lowerCamel(f.Name)
		if tag, ok := f.Tag.Lookup("config"); ok {
			if tag == "-" {
				continue
			}
			if tag != "" {
				key = tag
			}
		}
		fv := rv.Field(i)
		if fv.IsZero() {
			// Zero fields have no default: the property must come
			// from the caller-supplied input.
			continue
		}
		if s.defaults == nil {
			s.defaults = make(map[string]any, rt.NumField())
		}
		s.defaults[key] = fv.Interface()
	}

	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// lowerCamel lowers the first rune of name.
func lowerCamel(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError || unicode.IsLower(r) {
		return name
	}
	return string(unicode.ToLower(r)) + name[size:]
}
