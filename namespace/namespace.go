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

// Package namespace holds the pure extraction functions that slice a
// combined configuration object into the sub-object a namespaced
// consumer should see.
package namespace

import (
	"strings"

	"smartconfig.dev/compose/apis"
)

// Extract returns the sub-object of in addressed by label and/or
// prefix. Label is applied first: in[label] replaces in (nil if the
// key is absent or not an object). Prefix then filters to keys with
// that prefix and strips it. With neither set, in is returned
// unchanged: the same map, no copy.
//
// A nil input with a label yields nil; it represents "no configuration
// block provided" and callers must tolerate it.
func Extract(in apis.Object, label, prefix string) apis.Object {
	if label == "" && prefix == "" {
		return in
	}

	cur := in
	if label != "" {
		if v, ok := cur[label].(map[string]any); ok {
			cur = v
		} else {
			cur = nil
		}
	}
	if prefix == "" {
		return cur
	}

	out := make(apis.Object, len(cur))
	for k, v := range cur {
		if strings.HasPrefix(k, prefix) {
			out[strings.TrimPrefix(k, prefix)] = v
		}
	}
	return out
}
