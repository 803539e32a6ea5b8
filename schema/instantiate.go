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
	"smartconfig.dev/compose/apis"
	"smartconfig.dev/compose/namespace"
)

// Instantiate produces a concrete configuration object for ref against
// the raw combined input: the schema's defaults overlaid with every
// key present in the namespaced slice of raw.
//
// raw is never mutated and a fresh map is always returned. Keys absent
// from the slice keep their defaults; keys present with a nil value
// override (nil is an explicit null, not "not provided"). Keys the
// schema never declared are copied through unchanged: the schema is a
// default carrier, not a strict contract.
//
// Instantiate cannot fail. Missing properties simply stay absent from
// the result unless a default covers them.
func Instantiate(ref *Ref, raw apis.Object) apis.Object {
	extracted := namespace.Extract(raw, ref.EffectiveLabel(), ref.EffectivePrefix())

	out := make(apis.Object, len(ref.Schema.defaults)+len(extracted))
	for k, v := range ref.Schema.defaults {
		out[k] = v
	}
	for k, v := range extracted {
		out[k] = v
	}
	return out
}
