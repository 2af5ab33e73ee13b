package config

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/decker502/emberwave/pkg/embedded"
)

const (
	// LevelsDir 嵌入关卡目录
	LevelsDir = "data/levels"
	// PhysicsConfigPath 嵌入物理配置路径
	PhysicsConfigPath = "data/physics.yaml"
)

// LoadEmbeddedLevel 从嵌入资源加载关卡
//
// 参数:
//   - id: 关卡ID，如 "1-1"，对应 data/levels/1-1.yaml
//
// 返回:
//   - *LevelConfig: 校验后的关卡配置
//   - error: 读取或校验失败
func LoadEmbeddedLevel(id string) (*LevelConfig, error) {
	p := path.Join(LevelsDir, id+".yaml")
	data, err := embedded.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded level %s: %w", id, err)
	}
	return ParseLevelConfig(data, p)
}

// ListEmbeddedLevels 返回所有嵌入关卡的ID（按字典序）
func ListEmbeddedLevels() ([]string, error) {
	files, err := embedded.Glob(LevelsDir + "/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded levels: %w", err)
	}

	ids := make([]string, 0, len(files))
	for _, f := range files {
		ids = append(ids, strings.TrimSuffix(path.Base(f), ".yaml"))
	}
	sort.Strings(ids)
	return ids, nil
}

// NextLevelID 返回 current 之后的关卡ID，没有下一关时返回空字符串
func NextLevelID(ids []string, current string) string {
	for i, id := range ids {
		if id == current && i+1 < len(ids) {
			return ids[i+1]
		}
	}
	return ""
}

// LoadEmbeddedPhysicsConfig 加载嵌入的物理配置，文件不存在时返回默认配置
func LoadEmbeddedPhysicsConfig() (*PhysicsConfig, error) {
	if !embedded.Exists(PhysicsConfigPath) {
		return DefaultPhysicsConfig(), nil
	}
	data, err := embedded.ReadFile(PhysicsConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded physics config: %w", err)
	}
	return ParsePhysicsConfig(data)
}
