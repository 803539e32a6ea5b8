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

// Package compose is a configuration-composition layer for
// dependency-injection containers.
//
// A service declares, in one Descriptor, the configuration schemas it
// needs, the other composable modules it depends on, and its ordinary
// provider/export wiring. At application start a single combined
// configuration object is supplied at the root; compose walks the
// declared graph, slices the combined object into the sub-objects each
// nested consumer expects (renaming/nesting via labels or prefixes),
// and synthesizes one internal module per schema, wired together
// through the host framework's module-import mechanism.
//
// # Design
//
// The engine is four layers, leaves first:
//
//   - namespace: pure extraction of the sub-object a labeled or
//     prefixed consumer should see.
//
//   - schema: configuration blueprints (defaults + namespacing +
//     identity metadata) and the instantiator that merges blueprint
//     defaults under caller-supplied properties.
//
//   - synth: per-schema and per-nested-module synthetic modules, with
//     deterministic diagnostic names ("<Schema>SmartConfigModule",
//     "<Holder>SmartModule") and eager or deferred providers.
//
//   - compose (this package): the orchestrator. Compose returns a
//     closure that, invoked with the concrete root input, assembles
//     the full module tree in one deterministic pass.
//
// Construction is pure: no state survives an invocation, and calling
// the same closure twice with equal inputs yields structurally equal
// trees with freshly allocated identities each time. The only
// asynchronous boundary is the host container awaiting a Dynamic
// source's factory; compose merely shapes how the resolved object
// flows once awaited.
//
// # Usage
//
//	DBConfig := schema.New("DBConfig",
//		schema.WithPrefix("db_"),
//		schema.WithDefault("port", 5432),
//	)
//
//	Database := compose.Compose(&compose.Descriptor{
//		Name:          "Database",
//		ConfigSchemas: []any{DBConfig},
//	})
//
//	App := compose.Compose(&compose.Descriptor{
//		Name:          "App",
//		NestedModules: []any{Database},
//	})
//
//	root, err := App(apis.Static{
//		"db_host": "localhost",
//	})
//
// The returned *apis.Module is handed to the host framework's
// bootstrap (or to the in-tree reference container for tests and
// small programs).
//
// # Errors
//
// Structural misconfiguration (a bogus schema entry, a non-callable
// nested-module reference) surfaces synchronously from the closure as
// a typed error naming the offending value. Errors thrown by
// caller-supplied factories are never wrapped: they propagate to the
// closure's caller on the eager path and to the host container on the
// deferred path. No partially assembled tree is ever returned.
package compose
