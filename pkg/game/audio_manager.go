package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// 音效资源ID
const (
	SoundSuccess = "SOUND_SUCCESS"
	SoundError   = "SOUND_ERROR"
)

// AudioManager 音频管理器
// 职责：
//   - 统一管理游戏中所有音效的播放
//   - 应用 SettingsManager 中的音效开关与音量
//   - 音效缺失或无法解码时静默跳过，不影响游戏流程
type AudioManager struct {
	resourceManager *ResourceManager         // 资源管理器（用于加载音频）
	settingsManager *SettingsManager         // 设置管理器（可为 nil）
	soundPlayers    map[string]*audio.Player // 音效播放器缓存（资源ID -> 播放器）
	unavailable     map[string]bool          // 加载失败的音效ID，只警告一次
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于加载音频文件）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
//
// 返回：
//   - *AudioManager: 音频管理器实例
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
		unavailable:     make(map[string]bool),
	}
}

// PlaySound 播放音效（尽力而为）
// nil 接收者、音效被禁用或加载失败时都直接返回 false
//
// 参数：
//   - soundID: 音效资源ID（如 SoundSuccess, SoundError）
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if am == nil {
		return false
	}

	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())

	// 重置并播放
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()

	return true
}

// getSoundPlayer 获取或加载音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}
	if am.unavailable[soundID] || am.resourceManager == nil {
		return nil
	}

	filePath, exists := am.resourceManager.ResourcePath(soundID)
	if !exists {
		log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
		am.unavailable[soundID] = true
		return nil
	}

	player, err := am.resourceManager.LoadSoundEffect(filePath)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to load sound %s: %v", soundID, err)
		am.unavailable[soundID] = true
		return nil
	}

	am.soundPlayers[soundID] = player
	return player
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 0.8 // 默认值
}

// PreloadSounds 预加载音效，避免首次播放时的延迟
//
// 参数：
//   - soundIDs: 要预加载的音效资源ID列表
func (am *AudioManager) PreloadSounds(soundIDs []string) {
	loaded := 0
	for _, soundID := range soundIDs {
		if am.getSoundPlayer(soundID) != nil {
			loaded++
		}
	}
	log.Printf("[AudioManager] Preloaded %d/%d sounds", loaded, len(soundIDs))
}
