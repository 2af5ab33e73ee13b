package game

import (
	"fmt"

	"github.com/decker502/emberwave/pkg/logger"
	"github.com/quasilyte/gdata/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// LevelRecord 单个关卡的最佳成绩
type LevelRecord struct {
	Completed    bool    `yaml:"completed"`
	Attempts     int     `yaml:"attempts"`     // 通关次数
	BestTime     float64 `yaml:"bestTime"`     // 最短通关时间（秒）
	FewestDeaths int     `yaml:"fewestDeaths"` // 通关时的最少死亡次数
	MaxGems      int     `yaml:"maxGems"`      // 单次通关收集的最多宝石数
	AllGems      bool    `yaml:"allGems"`      // 是否曾在一次通关中收集全部宝石
}

// Completion 一次通关的统计
type Completion struct {
	Elapsed float64
	Deaths  int
	Gems    int
	AllGems bool
}

// ProgressManager 玩家进度管理器
//
// 只保存每个关卡的成绩记录，不保存关卡内的动态状态。
// gdataManager 为 nil 时进入降级模式：记录只保存在内存中。
type ProgressManager struct {
	gdataManager *gdata.Manager
	records      map[string]*LevelRecord
}

const (
	progressObject   = "progress"
	progressProperty = "levels"
)

// NewProgressManager 创建进度管理器并加载已保存的记录
// 加载失败不影响创建，此时从空记录开始。
func NewProgressManager(gdataManager *gdata.Manager) *ProgressManager {
	pm := &ProgressManager{
		gdataManager: gdataManager,
		records:      make(map[string]*LevelRecord),
	}

	if err := pm.Load(); err != nil {
		logger.Log.Warnf("[ProgressManager] Failed to load progress: %v (starting fresh)", err)
	}

	return pm
}

// Load 从 gdata 加载进度
func (pm *ProgressManager) Load() error {
	pm.records = make(map[string]*LevelRecord)

	if pm.gdataManager == nil || !pm.gdataManager.ObjectPropExists(progressObject, progressProperty) {
		return nil
	}

	data, err := pm.gdataManager.LoadObjectProp(progressObject, progressProperty)
	if err != nil {
		return fmt.Errorf("failed to load progress: %w", err)
	}

	records := make(map[string]*LevelRecord)
	if err := yaml.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("failed to unmarshal progress: %w", err)
	}
	for id, r := range records {
		if r != nil {
			pm.records[id] = r
		}
	}
	return nil
}

// Save 保存进度到 gdata（降级模式下直接返回 nil）
func (pm *ProgressManager) Save() error {
	if pm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(pm.records)
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}
	if err := pm.gdataManager.SaveObjectProp(progressObject, progressProperty, data); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

// Record 返回关卡记录的副本，没有记录时 ok 为 false
func (pm *ProgressManager) Record(levelID string) (LevelRecord, bool) {
	r, ok := pm.records[levelID]
	if !ok {
		return LevelRecord{}, false
	}
	return *r, true
}

// RecordCompletion 记录一次通关，并返回是否刷新了任一项最佳成绩
func (pm *ProgressManager) RecordCompletion(levelID string, c Completion) bool {
	r, ok := pm.records[levelID]
	if !ok {
		r = &LevelRecord{}
		pm.records[levelID] = r
	}

	first := !r.Completed
	improved := first

	r.Completed = true
	r.Attempts++
	if first || c.Elapsed < r.BestTime {
		r.BestTime = c.Elapsed
		improved = true
	}
	if first || c.Deaths < r.FewestDeaths {
		r.FewestDeaths = c.Deaths
		improved = true
	}
	if c.Gems > r.MaxGems {
		r.MaxGems = c.Gems
		improved = true
	}
	if c.AllGems && !r.AllGems {
		r.AllGems = true
		improved = true
	}

	logger.Log.WithFields(logrus.Fields{
		"level":    levelID,
		"elapsed":  c.Elapsed,
		"deaths":   c.Deaths,
		"improved": improved,
	}).Info("[ProgressManager] Level completed")

	return improved
}

// IsUnlocked 第一个关卡总是解锁，其余关卡在前一个关卡通关后解锁
//
// 参数：
//   - order: 按顺序排列的全部关卡 ID
//   - levelID: 要检查的关卡
func (pm *ProgressManager) IsUnlocked(order []string, levelID string) bool {
	for i, id := range order {
		if id != levelID {
			continue
		}
		if i == 0 {
			return true
		}
		prev, ok := pm.records[order[i-1]]
		return ok && prev.Completed
	}
	return false
}
