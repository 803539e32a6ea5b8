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

// ModuleFunc is a composition closure: given a root input it assembles
// and returns a complete module tree. Closures produced by the
// orchestrator have this type, which makes nesting ordinary recursion:
// a composed module may list other closures as nested modules.
type ModuleFunc func(Source) (*Module, error)

// NestedRef wraps a nested composition closure with namespacing: the
// sub-object handed down to Nested is the label/prefix extraction of
// whatever root input reaches the wrapper. Nested modules carry no
// token override; unlike schemas they are not directly injectable.
type NestedRef struct {
	// Nested is the inner composition closure.
	Nested ModuleFunc
	// Label nests the inner module's configuration under one key.
	Label string
	// Prefix namespaces the inner module's configuration by key prefix.
	Prefix string
}
