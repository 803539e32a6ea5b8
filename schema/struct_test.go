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

type dbConfig struct {
	Host     string
	Port     int    `config:"db_port"`
	Password string `config:"-"`
	secret   string
}

func TestFromStruct_DerivesNameAndDefaults(t *testing.T) {
	t.Parallel()

	s, err := schema.FromStruct(dbConfig{Host: "localhost", Port: 5432, Password: "x", secret: "y"})
	require.NoError(t, err)

	assert.Equal(t, "dbConfig", s.Name())
	assert.Equal(t, apis.Object{
		"host":    "localhost",
		"db_port": 5432,
	}, s.Defaults())
}

func TestFromStruct_ZeroFieldsHaveNoDefault(t *testing.T) {
	t.Parallel()

	s, err := schema.FromStruct(dbConfig{Port: 5432})
	require.NoError(t, err)

	_, ok := s.Defaults()["host"]
	assert.False(t, ok)
}

func TestFromStruct_DereferencesPointers(t *testing.T) {
	t.Parallel()

	s, err := schema.FromStruct(&dbConfig{Host: "localhost"})
	require.NoError(t, err)
	assert.Equal(t, "localhost", s.Defaults()["host"])
}

func TestFromStruct_OptionsApply(t *testing.T) {
	t.Parallel()

	s, err := schema.FromStruct(dbConfig{Port: 1}, schema.WithPrefix("db_"), schema.WithToken("db.token"))
	require.NoError(t, err)
	assert.Equal(t, "db_", s.Prefix())
	assert.Equal(t, "db.token", s.Token())
}

func TestFromStruct_Errors(t *testing.T) {
	t.Parallel()

	_, err := schema.FromStruct(nil)
	assert.ErrorIs(t, err, schema.ErrNilValue)

	_, err = schema.FromStruct((*dbConfig)(nil))
	assert.ErrorIs(t, err, schema.ErrNilValue)

	_, err = schema.FromStruct("not a struct")
	assert.ErrorIs(t, err, schema.ErrNotStruct)
}
