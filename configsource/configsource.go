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

// Package configsource loads root configuration objects from YAML.
// It is a convenience at the edge of the system: the composition
// engine itself never touches files.
package configsource

import (
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"smartconfig.dev/compose/apis"
)

// Load decodes a single YAML document from r into a root configuration
// object. An empty document yields an empty object. Nested mappings
// decode as map[string]any, matching the shape label extraction
// expects.
func Load(r io.Reader) (apis.Object, error) {
	var obj apis.Object
	if err := yaml.NewDecoder(r).Decode(&obj); err != nil {
		if errors.Is(err, io.EOF) {
			return apis.Object{}, nil
		}
		return nil, err
	}
	if obj == nil {
		obj = apis.Object{}
	}
	return obj, nil
}

// LoadFile reads path and decodes it with Load.
func LoadFile(path string) (apis.Object, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}
