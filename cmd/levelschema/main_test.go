package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/invopop/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSchemaRequiredFields(t *testing.T) {
	defs := buildSchema().Definitions

	tests := []struct {
		def      string
		required []string
		optional []string
	}{
		{"GemConfig", []string{"x", "y", "color"}, []string{"w", "h"}},
		{"CrateConfig", []string{"x", "y"}, []string{"w", "h"}},
		{"PlatformConfig", []string{"x", "y", "w", "h"}, []string{"color", "lethal"}},
		{"LevelConfig", []string{"id", "width", "height", "gravity", "spawns", "exits"}, []string{"tether", "risingHazard"}},
	}

	for _, tt := range tests {
		t.Run(tt.def, func(t *testing.T) {
			def, ok := defs[tt.def]
			require.True(t, ok)
			for _, f := range tt.required {
				assert.Contains(t, def.Required, f)
			}
			for _, f := range tt.optional {
				assert.NotContains(t, def.Required, f)
			}
		})
	}
}

// TestShippedLevelsMatchSchema 仓库中的关卡文件都满足生成的 schema 的必填字段和属性名
func TestShippedLevelsMatchSchema(t *testing.T) {
	schema := buildSchema()

	files, err := filepath.Glob(filepath.Join("..", "..", "data", "levels", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, f := range files {
		t.Run(filepath.Base(f), func(t *testing.T) {
			data, err := os.ReadFile(f)
			require.NoError(t, err)

			var doc map[string]any
			require.NoError(t, yaml.Unmarshal(data, &doc))

			checkAgainst(t, schema.Definitions, schema, doc, "$")
		})
	}
}

// checkAgainst 按 schema 检查必填字段、未知属性，并递归检查对象和数组
func checkAgainst(t *testing.T, defs jsonschema.Definitions, s *jsonschema.Schema, v any, path string) {
	t.Helper()

	if s.Ref != "" {
		def, ok := defs[strings.TrimPrefix(s.Ref, "#/$defs/")]
		require.True(t, ok, "%s: unresolved ref %s", path, s.Ref)
		s = def
	}

	switch val := v.(type) {
	case map[string]any:
		for _, key := range s.Required {
			assert.Contains(t, val, key, "%s: missing required field", path)
		}
		if s.Properties == nil {
			return
		}
		for key, child := range val {
			prop, ok := s.Properties.Get(key)
			if !ok {
				assert.NotSame(t, jsonschema.FalseSchema, s.AdditionalProperties, "%s: unknown field %q", path, key)
				continue
			}
			checkAgainst(t, defs, prop.(*jsonschema.Schema), child, path+"."+key)
		}
	case []any:
		if s.Items == nil {
			return
		}
		for i, item := range val {
			checkAgainst(t, defs, s.Items, item, fmt.Sprintf("%s[%d]", path, i))
		}
	}
}
