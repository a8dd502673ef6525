//go:build !mobile

package utils

import "testing"

// TestIsMobileDesktop 桌面端默认不是移动模式
func TestIsMobileDesktop(t *testing.T) {
	t.Setenv(MobileEmulateEnv, "")
	if IsMobile() {
		t.Error("IsMobile() should return false on desktop")
	}
}

// TestIsMobileEmulated 环境变量可以强制启用移动模式
func TestIsMobileEmulated(t *testing.T) {
	t.Setenv(MobileEmulateEnv, "1")
	if !IsMobile() {
		t.Errorf("IsMobile() should return true when %s=1", MobileEmulateEnv)
	}
}
