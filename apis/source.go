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

package apis

import "context"

// Object is a raw configuration object: the combined root input a
// composition closure is invoked with, and the shape every
// instantiated configuration takes. A key that is absent counts as
// "not provided"; a key present with a nil value counts as an explicit
// null and participates in merging.
type Object = map[string]any

// Source is the closed set of root-input variants. Exactly two forms
// exist: Static (an eager Object) and *Dynamic (resolution deferred to
// the host container). Use AsDynamic / AsObject to branch; they are
// the only canonical variant tests and must not be re-derived
// structurally elsewhere.
type Source interface {
	source()
}

// Static is an eagerly available configuration object.
type Static Object

func (Static) source() {}

// Dynamic defers configuration resolution to the host container: the
// container resolves Inject tokens, passes them positionally to
// UseFactory, and awaits the result at bootstrap time.
type Dynamic struct {
	// Imports are modules the injected dependencies come from.
	Imports []*Module
	// Inject lists tokens resolved and passed positionally to UseFactory.
	Inject []Token
	// UseFactory produces the raw configuration object.
	UseFactory func(ctx context.Context, deps ...any) (Object, error)
}

func (*Dynamic) source() {}

// AsDynamic reports whether s is the deferred variant and returns it.
func AsDynamic(s Source) (*Dynamic, bool) {
	d, ok := s.(*Dynamic)
	if !ok || d == nil {
		return nil, false
	}
	return d, true
}

// AsObject returns the eager configuration object carried by s.
// A nil Source behaves as an empty static object ("no configuration
// block provided"); the deferred variant yields (nil, false).
func AsObject(s Source) (Object, bool) {
	if s == nil {
		return nil, true
	}
	o, ok := s.(Static)
	if !ok {
		return nil, false
	}
	return Object(o), true
}
