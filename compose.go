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

package compose

import (
	"errors"

	"github.com/davecgh/go-spew/spew"

	"smartconfig.dev/compose/apis"
	"smartconfig.dev/compose/schema"
	"smartconfig.dev/compose/synth"
)

// ErrInvalidDescriptor matches any InvalidDescriptorError via errors.Is.
var ErrInvalidDescriptor = errors.New("compose: invalid module descriptor")

// InvalidDescriptorError reports a Compose argument that is neither a
// Descriptor nor a Factory.
type InvalidDescriptorError struct {
	Value any
}

// Error implements the error interface.
func (e *InvalidDescriptorError) Error() string {
	return "compose: invalid module descriptor " + spew.Sprintf("%#v", e.Value)
}

// Unwrap makes the error match ErrInvalidDescriptor.
func (e *InvalidDescriptorError) Unwrap() error { return ErrInvalidDescriptor }

// Descriptor declares the static parts of a composed module: its
// holder name, ordinary host-framework wiring, the configuration
// schemas it consumes, and the nested composable modules it depends
// on. Descriptors are read-only at composition time.
type Descriptor struct {
	// Name is the holder the descriptor is attached to; the assembled
	// module's identity is named "<Name>SmartModule". May be empty.
	Name string
	// Imports are the descriptor's own declared imports, placed ahead
	// of every synthesized module.
	Imports []*apis.Module
	// Providers are copied through unchanged.
	Providers []apis.Provider
	// Exports are copied through unchanged.
	Exports []apis.Token
	// Controllers are copied through unchanged.
	Controllers []any
	// Global is copied through unchanged.
	Global bool
	// ConfigSchemas lists *schema.Schema or schema.Ref entries, one
	// synthetic configuration module each.
	ConfigSchemas []any
	// NestedModules lists Composer or apis.NestedRef entries, one
	// delegated module each.
	NestedModules []any
}

// Factory builds a Descriptor from the already-synthesized inline
// schema modules and, on the eager path only, the instantiated inline
// configuration objects (one per inline schema, in declaration order).
// On the deferred path configs is empty: resolved values do not exist
// until the host container awaits them, so the factory body cannot
// branch on them. This restriction is deliberate and kept visible
// rather than papered over.
type Factory func(inline []*apis.Module, configs ...apis.Object) *Descriptor

// Composer assembles a module tree for a root input. Composers are
// ordinary apis.ModuleFunc values, so a composed module can appear in
// another descriptor's NestedModules directly.
type Composer = apis.ModuleFunc

// Compose builds the composition closure for a module descriptor.
//
// descriptor is either a *Descriptor (static form) or a Factory
// (factory form); inlineSchemas are additional schema or schema.Ref
// entries synthesized ahead of the descriptor's own declarations and,
// in the factory form, passed into the factory.
//
// The returned closure is invoked once per application wiring with the
// concrete root input. Each invocation is an independent, side-effect
// free construction: imports land in the deterministic order declared
// imports, inline schemas, config schemas, nested modules; structural
// errors abort the whole construction.
func Compose(descriptor any, inlineSchemas ...any) Composer {
	return func(src apis.Source) (*apis.Module, error) {
		inline := make([]*apis.Module, 0, len(inlineSchemas))
		for _, s := range inlineSchemas {
			m, err := synth.FromSchema(s, src)
			if err != nil {
				return nil, err
			}
			inline = append(inline, m)
		}

		desc, err := effective(descriptor, inline, inlineSchemas, src)
		if err != nil {
			return nil, err
		}

		schemaMods := make([]*apis.Module, 0, len(desc.ConfigSchemas))
		for _, s := range desc.ConfigSchemas {
			// Every schema sees the full combined root input; the
			// namespaced slice is taken by each consumer on its own.
			m, err := synth.FromSchema(s, src)
			if err != nil {
				return nil, err
			}
			schemaMods = append(schemaMods, m)
		}

		nestedMods := make([]*apis.Module, 0, len(desc.NestedModules))
		for _, n := range desc.NestedModules {
			m, err := synth.FromNestedModule(n, src)
			if err != nil {
				return nil, err
			}
			nestedMods = append(nestedMods, m)
		}

		imports := make([]*apis.Module, 0,
			len(desc.Imports)+len(inline)+len(schemaMods)+len(nestedMods))
		imports = append(imports, desc.Imports...)
		imports = append(imports, inline...)
		imports = append(imports, schemaMods...)
		imports = append(imports, nestedMods...)

		return &apis.Module{
			Module:      apis.NewIdentity(desc.Name + "SmartModule"),
			Imports:     imports,
			Providers:   desc.Providers,
			Exports:     desc.Exports,
			Controllers: desc.Controllers,
			Global:      desc.Global,
		}, nil
	}
}

// effective normalizes the descriptor argument: the static form is
// used directly, the factory form is invoked per the Factory contract.
func effective(descriptor any, inline []*apis.Module, inlineSchemas []any, src apis.Source) (*Descriptor, error) {
	switch d := descriptor.(type) {
	case *Descriptor:
		if d == nil {
			break
		}
		return d, nil
	case Descriptor:
		return &d, nil
	case Factory:
		if d == nil {
			break
		}
		return invoke(d, inline, inlineSchemas, src)
	case func([]*apis.Module, ...apis.Object) *Descriptor:
		if d == nil {
			break
		}
		return invoke(d, inline, inlineSchemas, src)
	}
	return nil, &InvalidDescriptorError{Value: descriptor}
}

// invoke calls the user factory. On the eager path it instantiates
// every inline schema against the root object first; on the deferred
// path it passes the inline modules only.
func invoke(f Factory, inline []*apis.Module, inlineSchemas []any, src apis.Source) (*Descriptor, error) {
	var desc *Descriptor
	if _, isDyn := apis.AsDynamic(src); isDyn {
		desc = f(inline)
	} else {
		obj, _ := apis.AsObject(src)
		configs := make([]apis.Object, 0, len(inlineSchemas))
		for _, s := range inlineSchemas {
			// Already validated while synthesizing the inline modules.
			ref, _ := schema.Resolve(s)
			configs = append(configs, schema.Instantiate(ref, obj))
		}
		desc = f(inline, configs...)
	}
	if desc == nil {
		return nil, &InvalidDescriptorError{Value: desc}
	}
	return desc, nil
}
