package main

import "github.com/gdamore/tcell/v2"

type action int

const (
	actionNone action = iota
	actionQuit
	actionPause
	actionRestart
	actionMute
	actionHUD
)

// keyAction maps a key press to a show control
func keyAction(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyTab:
		return actionHUD
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return actionQuit
		case ' ':
			return actionPause
		case 'r', 'R':
			return actionRestart
		case 'm', 'M':
			return actionMute
		}
	}
	return actionNone
}
