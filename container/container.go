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

// Package container is a minimal reference resolver for composed
// module trees. It stands in for the host framework's provider
// machinery in tests and small programs: it walks a module tree,
// materializes every provider, and resolves factory injections
// positionally.
//
// It deliberately implements only what the composition engine's
// output requires. Export visibility is not enforced (every
// materialized token is globally readable) and providers for an
// already-known token overwrite it, last write wins. A real host
// container is stricter on both counts.
package container

import (
	"context"
	"errors"

	"github.com/davecgh/go-spew/spew"

	"smartconfig.dev/compose/apis"
)

var (
	// ErrNilModule is returned when Boot is given a nil module.
	ErrNilModule = errors.New("container: nil module provided")
)

// MissingTokenError reports a factory injection whose token has no
// materialized provider.
type MissingTokenError struct {
	Token apis.Token
}

// Error implements the error interface.
func (e *MissingTokenError) Error() string {
	return "container: no provider for token " + spew.Sprintf("%#v", e.Token)
}

// Container holds materialized provider values keyed by token.
// Boot and Get are single-goroutine, bootstrap-time operations; the
// container is not meant for concurrent mutation.
type Container struct {
	values map[apis.Token]any
}

// New constructs an empty Container.
func New() *Container {
	return &Container{values: make(map[apis.Token]any)}
}

// Boot materializes every provider reachable from m: imports first,
// depth-first in declaration order, then m's own providers. Value
// providers register immediately; factory providers have their
// Imports booted and their Inject tokens resolved positionally before
// the factory runs. Factory errors abort the boot and propagate
// unwrapped.
func (c *Container) Boot(ctx context.Context, m *apis.Module) error {
	if m == nil {
		return ErrNilModule
	}
	for _, imp := range m.Imports {
		if err := c.Boot(ctx, imp); err != nil {
			return err
		}
	}
	for _, p := range m.Providers {
		if err := c.provide(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// provide materializes a single provider.
func (c *Container) provide(ctx context.Context, p apis.Provider) error {
	if !p.IsFactory() {
		c.values[p.Provide] = p.UseValue
		return nil
	}
	for _, imp := range p.Imports {
		if err := c.Boot(ctx, imp); err != nil {
			return err
		}
	}
	deps := make([]any, len(p.Inject))
	for i, tok := range p.Inject {
		v, ok := c.values[tok]
		if !ok {
			return &MissingTokenError{Token: tok}
		}
		deps[i] = v
	}
	v, err := p.UseFactory(ctx, deps...)
	if err != nil {
		return err
	}
	c.values[p.Provide] = v
	return nil
}

// Get returns the materialized value for token.
func (c *Container) Get(token apis.Token) (any, bool) {
	v, ok := c.values[token]
	return v, ok
}

// MustGet returns the value for token or panics. Useful in examples
// and tests where a missing token should fail fast.
func (c *Container) MustGet(token apis.Token) any {
	v, ok := c.values[token]
	if !ok {
		panic(&MissingTokenError{Token: token})
	}
	return v
}

// Count returns the number of materialized tokens.
func (c *Container) Count() int {
	return len(c.values)
}
