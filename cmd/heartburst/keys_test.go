package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyAction(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want action
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), actionQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), actionQuit},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), actionQuit},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), actionPause},
		{"r", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), actionRestart},
		{"M", tcell.NewEventKey(tcell.KeyRune, 'M', tcell.ModNone), actionMute},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), actionHUD},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), actionNone},
		{"arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), actionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keyAction(tt.ev); got != tt.want {
				t.Errorf("keyAction = %v, want %v", got, tt.want)
			}
		})
	}
}
