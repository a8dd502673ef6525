package game

import (
	"path/filepath"
	"testing"
)

// TestPlaySoundNilManager nil AudioManager 不会 panic
func TestPlaySoundNilManager(t *testing.T) {
	var am *AudioManager
	if am.PlaySound(SoundSuccess) {
		t.Error("nil AudioManager should not report playback")
	}
}

// TestPlaySoundDisabled 音效关闭时不播放
func TestPlaySoundDisabled(t *testing.T) {
	sm := &SettingsManager{settings: DefaultSettings()}
	sm.settings.SoundEnabled = false

	am := NewAudioManager(NewResourceManager(testAudioContext, ""), sm)
	if am.PlaySound(SoundSuccess) {
		t.Error("PlaySound should return false when sound is disabled")
	}
}

// TestPlaySoundUnknownID 未注册的音效ID被记住，不重复查找
func TestPlaySoundUnknownID(t *testing.T) {
	am := NewAudioManager(NewResourceManager(testAudioContext, ""), nil)

	if am.PlaySound("SOUND_UNKNOWN") {
		t.Error("PlaySound should fail for unknown IDs")
	}
	if !am.unavailable["SOUND_UNKNOWN"] {
		t.Error("Expected unknown ID to be marked unavailable")
	}
}

// TestPlaySoundMissingFile 音效文件缺失时静默失败
func TestPlaySoundMissingFile(t *testing.T) {
	rm := NewResourceManager(testAudioContext, t.TempDir())
	rm.resourceMap[SoundError] = filepath.Join(rm.assetsDir, "sounds", "error.wav")
	am := NewAudioManager(rm, nil)

	if am.PlaySound(SoundError) {
		t.Error("PlaySound should fail for a missing file")
	}
	if am.PlaySound(SoundError) {
		t.Error("PlaySound should keep failing after the first miss")
	}
	if len(am.soundPlayers) != 0 {
		t.Error("No player should be cached for a missing file")
	}
}

// TestPreloadSounds 预加载缺失音效不会 panic
func TestPreloadSounds(t *testing.T) {
	am := NewAudioManager(NewResourceManager(nil, ""), nil)
	am.PreloadSounds([]string{SoundSuccess, SoundError})

	if !am.unavailable[SoundSuccess] || !am.unavailable[SoundError] {
		t.Error("Expected both sounds to be marked unavailable")
	}
}

// TestGetSoundVolume 测试音量读取
func TestGetSoundVolume(t *testing.T) {
	am := NewAudioManager(nil, nil)
	if am.getSoundVolume() != 0.8 {
		t.Errorf("Expected default volume 0.8, got %v", am.getSoundVolume())
	}

	sm := &SettingsManager{settings: DefaultSettings()}
	sm.settings.SoundVolume = 0.3
	am = NewAudioManager(nil, sm)
	if am.getSoundVolume() != 0.3 {
		t.Errorf("Expected volume 0.3, got %v", am.getSoundVolume())
	}
}
