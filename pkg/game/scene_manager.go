package game

import (
	"github.com/decker502/emberwave/pkg/logger"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 用于创建指定ID的关卡场景，避免循环依赖；创建失败时返回错误
type SceneFactory func(levelID string) (Scene, error)

// SceneManager 管理当前活动的场景
type SceneManager struct {
	currentScene Scene
	currentLevel string
	sceneFactory SceneFactory
}

// NewSceneManager 创建场景管理器，初始没有活动场景
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo 切换到指定场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentLevel 返回最近一次成功加载的关卡 ID
func (sm *SceneManager) CurrentLevel() string {
	return sm.currentLevel
}

// LoadLevel 加载指定ID的关卡场景
// 创建失败时保留当前场景，并返回 false
func (sm *SceneManager) LoadLevel(levelID string) bool {
	log := logger.Log.WithField("level", levelID)

	if sm.sceneFactory == nil {
		log.Error("[SceneManager] SceneFactory not set")
		return false
	}

	scene, err := sm.sceneFactory(levelID)
	if err != nil {
		log.WithError(err).Error("[SceneManager] Failed to create level scene")
		return false
	}

	sm.SwitchTo(scene)
	sm.currentLevel = levelID
	log.Info("[SceneManager] Switched level")
	return true
}

// Update 更新当前场景，没有活动场景时什么也不做
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景，没有活动场景时什么也不做
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
