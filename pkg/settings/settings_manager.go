// Package settings 管理查看器的窗口偏好设置
//
// 只保存窗口相关的偏好（全屏、窗口尺寸），动画状态从不持久化。
package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ViewerSettings 查看器偏好设置
type ViewerSettings struct {
	// 显示设置
	Fullscreen   bool `yaml:"fullscreen"`   // 启动时是否全屏
	WindowWidth  int  `yaml:"windowWidth"`  // 窗口宽度（非全屏）
	WindowHeight int  `yaml:"windowHeight"` // 窗口高度（非全屏）
}

// 窗口尺寸范围
const (
	minWindowSize = 120
	maxWindowSize = 8192
)

// DefaultSettings 返回默认设置
//
// 默认窗口为竖屏比例，模拟手机屏幕
func DefaultSettings() *ViewerSettings {
	return &ViewerSettings{
		Fullscreen:   false,
		WindowWidth:  480,
		WindowHeight: 800,
	}
}

// SettingsManager 设置管理器
// 负责设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *ViewerSettings
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "viewer"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 保留给调用方的错误位，加载失败不会返回错误
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或数据不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.WindowWidth = clampWindowSize(loaded.WindowWidth)
	loaded.WindowHeight = clampWindowSize(loaded.WindowHeight)

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *ViewerSettings {
	return sm.settings
}

// SetFullscreen 设置全屏模式
//
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetWindowSize 设置窗口尺寸
//
// 尺寸会被限制在合理范围内
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetWindowSize(width, height int) {
	sm.settings.WindowWidth = clampWindowSize(width)
	sm.settings.WindowHeight = clampWindowSize(height)
}

// clampWindowSize 将窗口尺寸限制在 minWindowSize ~ maxWindowSize 范围内
func clampWindowSize(size int) int {
	if size < minWindowSize {
		return minWindowSize
	}
	if size > maxWindowSize {
		return maxWindowSize
	}
	return size
}

// OpenStore 打开应用的 gdata 存储
//
// 失败时返回错误，调用方应以 nil 管理器进入降级模式
func OpenStore(appName string) (*gdata.Manager, error) {
	if err := EnsureStorageDir(); err != nil {
		return nil, fmt.Errorf("storage dir not ready: %w", err)
	}
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open gdata store: %w", err)
	}
	return manager, nil
}
