package global

import (
	xhotkey "golang.design/x/hotkey"

	"github.com/google/perfoverlay/internal/hotkey"
)

func platformModifier(m hotkey.Modifier) (xhotkey.Modifier, bool) {
	switch m {
	case hotkey.ModAlt:
		return xhotkey.ModAlt, true
	case hotkey.ModCtrl:
		return xhotkey.ModCtrl, true
	case hotkey.ModShift:
		return xhotkey.ModShift, true
	case hotkey.ModSuper:
		return xhotkey.ModWin, true
	}
	return 0, false
}
