package game

import (
	"fmt"
	"log"

	"github.com/decker502/vantalu/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultSettingsPath 内置设置文件路径
const DefaultSettingsPath = "data/settings.yaml"

// GameSettings 全局游戏设置
// 设置只在启动时读取，运行期间的修改不会写回磁盘
type GameSettings struct {
	// 音频设置
	SoundVolume  float64 `yaml:"soundVolume"`  // 音效音量 0.0 ~ 1.0
	SoundEnabled bool    `yaml:"soundEnabled"` // 音效开关

	// 显示设置
	Fullscreen bool `yaml:"fullscreen"` // 启动时是否全屏
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		SoundVolume:  0.8,
		SoundEnabled: true,
		Fullscreen:   false,
	}
}

// SettingsManager 设置管理器
// 负责从 YAML 读取设置，并在内存中维护当前值
type SettingsManager struct {
	settings *GameSettings
}

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - path: 设置文件路径，为空时使用内置的 data/settings.yaml
//
// 返回：
//   - *SettingsManager: 设置管理器实例，加载失败时使用默认设置
//   - error: 加载失败的原因（不影响创建）
func NewSettingsManager(path string) (*SettingsManager, error) {
	sm := &SettingsManager{
		settings: DefaultSettings(),
	}

	if path == "" {
		path = DefaultSettingsPath
	}

	if err := sm.Load(path); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
		return sm, err
	}
	return sm, nil
}

// Load 从 YAML 文件加载设置
// 文件中缺失的字段保留默认值；失败时恢复为默认设置
func (sm *SettingsManager) Load(path string) error {
	data, err := embedded.ReadFileOrDisk(path)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}
	return sm.parse(data)
}

// parse 解析 YAML 设置数据
func (sm *SettingsManager) parse(data []byte) error {
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	loaded.SoundVolume = clampVolume(loaded.SoundVolume)
	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded: sound=%v volume=%.2f fullscreen=%v",
		loaded.SoundEnabled, loaded.SoundVolume, loaded.Fullscreen)
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetFullscreen 记录当前全屏状态（仅内存）
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// clampVolume 将音量值限制在 0.0 ~ 1.0 范围内
func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
