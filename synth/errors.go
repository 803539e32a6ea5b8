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

package synth

import (
	"errors"

	"github.com/davecgh/go-spew/spew"
)

var (
	// ErrInvalidConfigSource matches any InvalidConfigSourceError via errors.Is.
	ErrInvalidConfigSource = errors.New("synth: invalid configuration source")
	// ErrInvalidImportSource matches any InvalidImportSourceError via errors.Is.
	ErrInvalidImportSource = errors.New("synth: invalid import source")
)

// InvalidConfigSourceError reports a value declared as a configuration
// schema that is neither a schema nor an extended schema reference.
// Value is the offending entry and Input the root input being
// processed; both are serialized into the message so the malformed
// declaration can be located.
type InvalidConfigSourceError struct {
	Value any
	Input any
}

// Error implements the error interface.
func (e *InvalidConfigSourceError) Error() string {
	return "synth: invalid configuration source " + spew.Sprintf("%#v", e.Value) +
		" (processing input " + spew.Sprintf("%#v", e.Input) + ")"
}

// Unwrap makes the error match ErrInvalidConfigSource.
func (e *InvalidConfigSourceError) Unwrap() error { return ErrInvalidConfigSource }

// InvalidImportSourceError reports a value declared as a nested-module
// reference that is neither a composition closure nor a NestedRef.
// Diagnostic contract matches InvalidConfigSourceError.
type InvalidImportSourceError struct {
	Value any
	Input any
}

// Error implements the error interface.
func (e *InvalidImportSourceError) Error() string {
	return "synth: invalid import source " + spew.Sprintf("%#v", e.Value) +
		" (processing input " + spew.Sprintf("%#v", e.Input) + ")"
}

// Unwrap makes the error match ErrInvalidImportSource.
func (e *InvalidImportSourceError) Unwrap() error { return ErrInvalidImportSource }
