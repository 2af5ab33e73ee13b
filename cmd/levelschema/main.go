// levelschema 生成关卡 YAML 文件的 JSON Schema，供编辑器做补全和校验
//
// 用法:
//
//	go run ./cmd/levelschema --out data/levels/schema.json
//	go run ./cmd/levelschema            # 输出到标准输出
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/decker502/emberwave/pkg/config"
	"github.com/invopop/jsonschema"
)

func main() {
	var outPath string
	flag.StringVar(&outPath, "out", "", "schema 输出路径，为空时写到标准输出")
	flag.Parse()

	data, err := json.MarshalIndent(buildSchema(), "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshal schema: %v\n", err)
		os.Exit(1)
	}
	data = append(data, '\n')

	if outPath == "" {
		os.Stdout.Write(data)
		return
	}
	if err := writeSchema(outPath, data); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write schema: %v\n", err)
		os.Exit(1)
	}
}

// defaultedFields 关卡文件可以省略、由 LevelConfig.ApplyDefaults 补齐的字段
// geom.Rect 的 w/h 没有 omitempty，反射出来总是必填
var defaultedFields = map[string][]string{
	"GemConfig":   {"w", "h"},
	"CrateConfig": {"w", "h"},
}

func buildSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
	}
	schema := reflector.Reflect(new(config.LevelConfig))
	schema.Title = "Emberwave Level"
	schema.Description = "Validates level definitions in data/levels/*.yaml"

	for name, fields := range defaultedFields {
		if def, ok := schema.Definitions[name]; ok {
			def.Required = without(def.Required, fields)
		}
	}
	return schema
}

func without(list, drop []string) []string {
	var out []string
	for _, s := range list {
		if !slices.Contains(drop, s) {
			out = append(out, s)
		}
	}
	return out
}

// writeSchema 先写临时文件再改名，避免留下写了一半的 schema
func writeSchema(outPath string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}
	return nil
}
