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

// Ref is an extended schema reference: call-site overrides for a
// schema's static label, prefix, and token. A zero override falls back
// to the schema's static value; inline values always win.
type Ref struct {
	// Schema is the referenced blueprint.
	Schema *Schema
	// Label overrides the schema's static label when non-empty.
	Label string
	// Prefix overrides the schema's static prefix when non-empty.
	Prefix string
	// Token overrides the schema's static token when non-nil.
	Token apis.Token
}

// Resolve is the canonical detection routine for configuration-source
// variants. It accepts a *Schema, a *Ref, or a Ref value and returns
// the normalized reference form; anything else yields (nil, false).
// All call sites branch through Resolve so the recognition rule lives
// in exactly one place.
func Resolve(v any) (*Ref, bool) {
	switch x := v.(type) {
	case *Schema:
		if x == nil {
			return nil, false
		}
		return &Ref{Schema: x}, true
	case *Ref:
		if x == nil || x.Schema == nil {
			return nil, false
		}
		return x, true
	case Ref:
		if x.Schema == nil {
			return nil, false
		}
		return &x, true
	}
	return nil, false
}

// EffectiveLabel returns the call-site label if set, else the schema's
// static label.
func (r *Ref) EffectiveLabel() string {
	if r.Label != "" {
		return r.Label
	}
	return r.Schema.label
}

// EffectivePrefix returns the call-site prefix if set, else the
// schema's static prefix.
func (r *Ref) EffectivePrefix() string {
	if r.Prefix != "" {
		return r.Prefix
	}
	return r.Schema.prefix
}

// EffectiveToken returns the injection token for this reference:
// the call-site override, else the schema's static token, else the
// schema identity itself.
func (r *Ref) EffectiveToken() apis.Token {
	if r.Token != nil {
		return r.Token
	}
	if r.Schema.token != nil {
		return r.Schema.token
	}
	return r.Schema
}
