package scenes

import (
	"log"

	"github.com/decker502/vantalu/pkg/config"
	"github.com/decker502/vantalu/pkg/cooking"
	"github.com/decker502/vantalu/pkg/game"
	"github.com/decker502/vantalu/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	helpButtonLabel = "సహాయం"
	helpTitle       = "సహాయం - Help"
	noHelpText      = "No help available for this stage"

	helpPanelBorderWidth = 2
)

// HelpKey 返回当前应显示的帮助文本键
// 烹饪模式下使用阶段名，其余模式使用模式名
func HelpKey(state *game.GameState, ctrl *cooking.Controller) string {
	if state.Mode() == game.ModeCooking {
		return ctrl.Stage().String()
	}
	return state.Mode().String()
}

// HelpOverlay 帮助按钮和帮助面板，叠加在所有场景之上
type HelpOverlay struct {
	env  *Env
	open bool
}

// NewHelpOverlay 创建帮助面板（初始关闭）
func NewHelpOverlay(env *Env) *HelpOverlay {
	return &HelpOverlay{env: env}
}

// IsOpen 面板是否打开
func (h *HelpOverlay) IsOpen() bool {
	return h.open
}

// HandleEvent 处理指针事件，返回 true 表示事件已被面板消费
//   - 面板关闭时：点击帮助按钮打开面板
//   - 面板打开时：所有事件都被消费，只有点击关闭按钮才会关闭
func (h *HelpOverlay) HandleEvent(ev utils.PointerEvent) bool {
	if !h.open {
		if isClick(ev, config.HelpButtonRect) {
			h.open = true
			log.Printf("[HelpOverlay] Opened (%s)", HelpKey(h.env.State, h.env.Controller))
			return true
		}
		return false
	}

	if isClick(ev, config.CloseHelpRect) {
		h.open = false
		log.Printf("[HelpOverlay] Closed")
	}
	return true
}

// Lines 返回当前帮助文本，没有配置时返回默认提示
func (h *HelpOverlay) Lines() []string {
	lines := h.env.Book.HelpLines(HelpKey(h.env.State, h.env.Controller))
	if len(lines) == 0 {
		return []string{noHelpText}
	}
	return lines
}

// Draw 绘制帮助按钮，面板打开时绘制面板
func (h *HelpOverlay) Draw(screen *ebiten.Image) {
	fonts := h.env.Fonts
	drawButton(screen, config.HelpButtonRect, helpButtonLabel, fonts.Small, config.ColorHelpButton, config.ColorBlack)
	if !h.open {
		return
	}

	panel := config.HelpPanelRect
	utils.FillRect(screen, panel, config.ColorWhite)
	utils.StrokeRect(screen, panel, helpPanelBorderWidth, config.ColorBlack)
	drawButton(screen, config.CloseHelpRect, "X", fonts.Small, config.ColorRed, config.ColorWhite)

	centerX := float64(panel.Min.X + panel.Dx()/2)
	utils.DrawTextCenteredX(screen, helpTitle, fonts.Title, centerX, float64(panel.Min.Y+config.HelpTitleOffsetY), config.ColorBlack)

	for i, line := range h.Lines() {
		utils.DrawText(screen, line, fonts.Small,
			float64(panel.Min.X+config.HelpLinesOffsetX),
			float64(panel.Min.Y+config.HelpLinesOffsetY+i*config.HelpLineSpacing),
			config.ColorBlack)
	}
}
