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

package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartconfig.dev/compose/apis"
	"smartconfig.dev/compose/schema"
)

func TestNew_Options(t *testing.T) {
	t.Parallel()

	tok := "custom.token"
	s := schema.New("DBConfig",
		schema.WithLabel("db"),
		schema.WithPrefix("db_"),
		schema.WithToken(tok),
		schema.WithDefault("port", 5432),
	)

	assert.Equal(t, "DBConfig", s.Name())
	assert.Equal(t, "db", s.Label())
	assert.Equal(t, "db_", s.Prefix())
	assert.Equal(t, tok, s.Token())
	assert.Equal(t, apis.Object{"port": 5432}, s.Defaults())
}

func TestNew_NoMetadata(t *testing.T) {
	t.Parallel()

	s := schema.New("Plain")

	assert.Empty(t, s.Label())
	assert.Empty(t, s.Prefix())
	assert.Nil(t, s.Token())
	assert.Empty(t, s.Defaults())
}

func TestWithDefaults_CopiesMap(t *testing.T) {
	t.Parallel()

	defaults := apis.Object{"port": 5432}
	s := schema.New("DBConfig", schema.WithDefaults(defaults))

	defaults["port"] = 9999
	assert.Equal(t, 5432, s.Defaults()["port"])
}

func TestDefaults_ReturnsCopy(t *testing.T) {
	t.Parallel()

	s := schema.New("DBConfig", schema.WithDefault("port", 5432))

	d := s.Defaults()
	d["port"] = 9999
	assert.Equal(t, 5432, s.Defaults()["port"])
}

func TestResolve_Variants(t *testing.T) {
	t.Parallel()

	s := schema.New("Config")

	ref, ok := schema.Resolve(s)
	require.True(t, ok)
	assert.Same(t, s, ref.Schema)

	wrapped := &schema.Ref{Schema: s, Label: "cfg"}
	ref, ok = schema.Resolve(wrapped)
	require.True(t, ok)
	assert.Same(t, wrapped, ref)

	ref, ok = schema.Resolve(schema.Ref{Schema: s, Prefix: "p_"})
	require.True(t, ok)
	assert.Equal(t, "p_", ref.Prefix)
}

func TestResolve_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
	}{
		{"string", "oops"},
		{"nil", nil},
		{"nil schema", (*schema.Schema)(nil)},
		{"nil ref", (*schema.Ref)(nil)},
		{"ref without schema", &schema.Ref{}},
		{"plain object", apis.Object{"a": 1}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, ok := schema.Resolve(tc.in)
			assert.False(t, ok)
		})
	}
}

func TestRef_EffectiveValues_InlineWins(t *testing.T) {
	t.Parallel()

	s := schema.New("Config",
		schema.WithLabel("static"),
		schema.WithPrefix("s_"),
		schema.WithToken("static.token"),
	)

	ref := &schema.Ref{Schema: s, Label: "inline", Prefix: "i_", Token: "inline.token"}
	assert.Equal(t, "inline", ref.EffectiveLabel())
	assert.Equal(t, "i_", ref.EffectivePrefix())
	assert.Equal(t, "inline.token", ref.EffectiveToken())

	bare := &schema.Ref{Schema: s}
	assert.Equal(t, "static", bare.EffectiveLabel())
	assert.Equal(t, "s_", bare.EffectivePrefix())
	assert.Equal(t, "static.token", bare.EffectiveToken())
}

func TestRef_EffectiveToken_Chain(t *testing.T) {
	t.Parallel()

	plain := schema.New("Plain")
	withStatic := schema.New("Static", schema.WithToken("static.token"))

	tests := []struct {
		name string
		ref  *schema.Ref
		want apis.Token
	}{
		{"inline over static", &schema.Ref{Schema: withStatic, Token: "inline.token"}, "inline.token"},
		{"inline without static", &schema.Ref{Schema: plain, Token: "inline.token"}, "inline.token"},
		{"static only", &schema.Ref{Schema: withStatic}, "static.token"},
		{"schema identity fallback", &schema.Ref{Schema: plain}, plain},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.ref.EffectiveToken())
		})
	}
}
