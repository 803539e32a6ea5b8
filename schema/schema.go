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

import "smartconfig.dev/compose/apis"

// Schema is a configuration blueprint: a named set of property
// defaults plus optional namespacing and identity metadata. It is
// authored once, read-only at composition time, and never mutated.
// The *Schema pointer doubles as the default injection token for the
// configuration instance it produces.
type Schema struct {
	// name drives the synthetic module name derived from this schema.
	name string
	// defaults are the property defaults merged under caller input.
	defaults apis.Object
	// label nests this schema's properties under one key of the input.
	label string
	// prefix namespaces this schema's properties by key prefix.
	prefix string
	// token overrides the identity the instance is registered under.
	token apis.Token
}

// New constructs a Schema named name with the given options.
func New(name string, opts ...Option) *Schema {
	s := &Schema{name: name}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Option is a functional option that mutates a Schema during construction.
type Option func(*Schema)

// WithDefaults sets the schema's property defaults. The map is copied,
// so later mutation of defaults by the caller does not leak in.
func WithDefaults(defaults apis.Object) Option {
	return func(s *Schema) {
		if len(defaults) == 0 {
			return
		}
		s.defaults = make(apis.Object, len(defaults))
		for k, v := range defaults {
			s.defaults[k] = v
		}
	}
}

// WithDefault sets a single property default.
func WithDefault(key string, value any) Option {
	return func(s *Schema) {
		if s.defaults == nil {
			s.defaults = make(apis.Object, 1)
		}
		s.defaults[key] = value
	}
}

// WithLabel sets the schema's static label.
func WithLabel(label string) Option {
	return func(s *Schema) {
		s.label = label
	}
}

// WithPrefix sets the schema's static prefix.
func WithPrefix(prefix string) Option {
	return func(s *Schema) {
		s.prefix = prefix
	}
}

// WithToken sets the schema's static injection token.
func WithToken(token apis.Token) Option {
	return func(s *Schema) {
		s.token = token
	}
}

// Name returns the schema's name.
func (s *Schema) Name() string { return s.name }

// Label returns the schema's static label, or "" if none.
func (s *Schema) Label() string { return s.label }

// Prefix returns the schema's static prefix, or "" if none.
func (s *Schema) Prefix() string { return s.prefix }

// Token returns the schema's static token, or nil if none. Token
// defaulting (falling back to the schema identity itself) happens in
// Ref.EffectiveToken, not here.
func (s *Schema) Token() apis.Token { return s.token }

// Defaults returns a copy of the schema's property defaults.
func (s *Schema) Defaults() apis.Object {
	out := make(apis.Object, len(s.defaults))
	for k, v := range s.defaults {
		out[k] = v
	}
	return out
}
