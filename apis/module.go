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

// Token identifies a provider within the host container. A schema's
// own identity (its *schema.Schema pointer) is the default token for
// the configuration instance it produces; call sites may substitute
// any comparable value (typically a string or a dedicated pointer).
type Token = any

// Identity is a nominal module identity. Every synthesized module gets
// a freshly allocated Identity; identities are never interned or
// cached, so two invocations of the same composition closure yield
// structurally equal trees with distinct identities.
type Identity struct {
	// DebugName is a diagnostic name such as "DBConfigSmartConfigModule".
	// It carries no behavioral weight.
	DebugName string
}

// NewIdentity allocates a fresh Identity tagged with debugName.
func NewIdentity(debugName string) *Identity {
	return &Identity{DebugName: debugName}
}

// Module is the unit consumed by the host framework's bootstrap:
// an identity plus its imports, providers, exports, and controllers.
type Module struct {
	// Module is the nominal identity of this module.
	Module *Identity
	// Imports are the modules this module depends on, in declaration order.
	Imports []*Module
	// Providers are the injectables this module contributes.
	Providers []Provider
	// Exports lists the tokens visible to importing modules.
	Exports []Token
	// Controllers are opaque to this library and copied through unchanged.
	Controllers []any
	// Global marks the module as globally visible in the host container.
	Global bool
}

// FactoryFunc produces a provider value once its injected dependencies
// have been resolved by the host container. deps arrive positionally,
// matching the provider's Inject tokens.
type FactoryFunc func(ctx context.Context, deps ...any) (any, error)

// Provider registers a value under a token. Exactly one of UseValue
// and UseFactory is meaningful: a nil UseFactory marks an eager value
// provider, a non-nil UseFactory a deferred one.
type Provider struct {
	// Provide is the token the value is registered under.
	Provide Token
	// UseValue is the eagerly computed value (value providers only).
	UseValue any
	// UseFactory computes the value at resolution time (factory providers only).
	UseFactory FactoryFunc
	// Inject lists the tokens resolved and passed positionally to UseFactory.
	Inject []Token
	// Imports are modules the factory's dependencies come from.
	Imports []*Module
}

// IsFactory reports whether p is a deferred (factory-backed) provider.
func (p Provider) IsFactory() bool {
	return p.UseFactory != nil
}
