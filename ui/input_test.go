package ui

import (
	"testing"

	"classic-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		key  int32
		want types.Input
	}{
		{rl.KeyUp, types.MoveUp},
		{rl.KeyS, types.MoveDown},
		{rl.KeyA, types.MoveLeft},
		{rl.KeyRight, types.MoveRight},
		{rl.KeyR, types.Restart},
		{rl.KeyEscape, types.Quit},
		{rl.KeyF12, types.Screenshot},
	}
	for _, tt := range tests {
		if got, ok := TranslateKey(tt.key); !ok || got != tt.want {
			t.Errorf("TranslateKey(%d) = (%v, %v), want %v", tt.key, got, ok, tt.want)
		}
	}

	if _, ok := TranslateKey(rl.KeySpace); ok {
		t.Error("space should not be bound")
	}
}
