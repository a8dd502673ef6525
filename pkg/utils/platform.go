//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 设置为 1 时桌面端按移动端行为运行（用于本地调试触摸流程）
const MobileEmulateEnv = "VANTALU_MOBILE_EMULATE"

// IsMobile 检测当前是否在移动设备上运行
// 移动端没有窗口和键盘，全屏切换等桌面功能会被跳过
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
