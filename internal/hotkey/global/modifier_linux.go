package global

import (
	xhotkey "golang.design/x/hotkey"

	"github.com/google/perfoverlay/internal/hotkey"
)

// X11 maps Alt to Mod1 and Super to Mod4 on virtually every layout.
func platformModifier(m hotkey.Modifier) (xhotkey.Modifier, bool) {
	switch m {
	case hotkey.ModAlt:
		return xhotkey.Mod1, true
	case hotkey.ModCtrl:
		return xhotkey.ModCtrl, true
	case hotkey.ModShift:
		return xhotkey.ModShift, true
	case hotkey.ModSuper:
		return xhotkey.Mod4, true
	}
	return 0, false
}
