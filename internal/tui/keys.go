// internal/tui/keys.go
package tui

import "time"

// Терминал не сообщает об отпускании клавиш, поэтому нажатие считается
// удерживаемым, пока автоповтор присылает его чаще, чем раз в окно.
const defaultHoldWindow = 150 * time.Millisecond

type direction int

const (
	dirLeft direction = iota
	dirRight
	dirUp
	dirDown
	dirCount
)

type heldKeys struct {
	window time.Duration
	last   [dirCount]time.Duration
	down   [dirCount]bool
}

func newHeldKeys(window time.Duration) heldKeys {
	return heldKeys{window: window}
}

func (h *heldKeys) press(d direction, now time.Duration) {
	h.last[d] = now
	h.down[d] = true
	// opposite keys cancel each other, like a real release would
	switch d {
	case dirLeft:
		h.down[dirRight] = false
	case dirRight:
		h.down[dirLeft] = false
	case dirUp:
		h.down[dirDown] = false
	case dirDown:
		h.down[dirUp] = false
	}
}

func (h *heldKeys) held(d direction, now time.Duration) bool {
	return h.down[d] && now-h.last[d] < h.window
}

func (h *heldKeys) releaseAll() {
	h.down = [dirCount]bool{}
}
