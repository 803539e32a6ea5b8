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

// Package synth turns configuration schemas and nested-module
// references into the synthetic internal modules the orchestrator
// assembles: one module per schema providing the resolved
// configuration under its injection token, and one per nested module
// delegating to the inner composition closure.
package synth

import (
	"context"

	"smartconfig.dev/compose/apis"
	"smartconfig.dev/compose/namespace"
	"smartconfig.dev/compose/schema"
)

// FromSchema synthesizes the internal module providing the resolved
// configuration for a schema or extended schema reference against src.
//
// The module carries exactly one provider, registered and exported
// under the reference's effective token. A static src is instantiated
// immediately into a value provider; a dynamic src becomes a factory
// provider whose Imports/Inject pass through unchanged and whose
// factory instantiates the schema against the resolved object.
//
// A v that is neither a *schema.Schema nor a schema.Ref yields an
// *InvalidConfigSourceError.
func FromSchema(v any, src apis.Source) (*apis.Module, error) {
	ref, ok := schema.Resolve(v)
	if !ok {
		return nil, &InvalidConfigSourceError{Value: v, Input: src}
	}

	token := ref.EffectiveToken()
	ident := apis.NewIdentity(ref.Schema.Name() + "SmartConfigModule")

	var p apis.Provider
	if dyn, isDyn := apis.AsDynamic(src); isDyn {
		orig := dyn.UseFactory
		p = apis.Provider{
			Provide: token,
			UseFactory: func(ctx context.Context, deps ...any) (any, error) {
				raw, err := orig(ctx, deps...)
				if err != nil {
					return nil, err
				}
				return schema.Instantiate(ref, raw), nil
			},
			Inject:  dyn.Inject,
			Imports: dyn.Imports,
		}
	} else {
		obj, _ := apis.AsObject(src)
		p = apis.Provider{
			Provide:  token,
			UseValue: schema.Instantiate(ref, obj),
		}
	}

	return &apis.Module{
		Module:    ident,
		Providers: []apis.Provider{p},
		Exports:   []apis.Token{token},
	}, nil
}

// FromNestedModule synthesizes the module for a nested-module
// reference against src.
//
// A bare composition closure is invoked with src as-is: the inner
// module sees the full combined input. A NestedRef applies its
// label/prefix first: on the static path the extraction happens before
// the call, on the dynamic path the user factory is wrapped so the
// extraction applies to the resolved object (Imports/Inject pass
// through unchanged).
//
// A v that is neither callable nor a NestedRef yields an
// *InvalidImportSourceError. Errors from the inner closure propagate
// unwrapped.
func FromNestedModule(v any, src apis.Source) (*apis.Module, error) {
	switch ref := v.(type) {
	case apis.ModuleFunc:
		if ref != nil {
			return ref(src)
		}
	case func(apis.Source) (*apis.Module, error):
		if ref != nil {
			return ref(src)
		}
	case *apis.NestedRef:
		if ref != nil && ref.Nested != nil {
			return nested(ref, src)
		}
	case apis.NestedRef:
		if ref.Nested != nil {
			return nested(&ref, src)
		}
	}
	return nil, &InvalidImportSourceError{Value: v, Input: src}
}

// nested hands the namespaced slice of src down to ref.Nested.
func nested(ref *apis.NestedRef, src apis.Source) (*apis.Module, error) {
	if dyn, isDyn := apis.AsDynamic(src); isDyn {
		orig := dyn.UseFactory
		wrapped := &apis.Dynamic{
			Imports: dyn.Imports,
			Inject:  dyn.Inject,
			UseFactory: func(ctx context.Context, deps ...any) (apis.Object, error) {
				raw, err := orig(ctx, deps...)
				if err != nil {
					return nil, err
				}
				return namespace.Extract(raw, ref.Label, ref.Prefix), nil
			},
		}
		return ref.Nested(wrapped)
	}

	obj, _ := apis.AsObject(src)
	return ref.Nested(apis.Static(namespace.Extract(obj, ref.Label, ref.Prefix)))
}
