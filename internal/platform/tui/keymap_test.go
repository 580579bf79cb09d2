package tui

import (
	"testing"

	"github.com/vovakirdan/tui-bouncer/internal/engine"
)

func TestDirectionForTap(t *testing.T) {
	// 80 columns over 800 world units: 10 world units per column, dead zone
	// of 50 world units = 5 columns either side of center column 40.
	tests := []struct {
		name     string
		col      int
		screenW  int
		worldW   float64
		expected engine.Direction
	}{
		{"center", 40, 80, 800, engine.DirNone},
		{"inside dead zone left", 36, 80, 800, engine.DirNone},
		{"inside dead zone right", 44, 80, 800, engine.DirNone},
		{"dead zone edge right", 45, 80, 800, engine.DirNone},
		{"past dead zone right", 46, 80, 800, engine.DirRight},
		{"far right", 79, 80, 800, engine.DirRight},
		{"dead zone edge left", 35, 80, 800, engine.DirNone},
		{"past dead zone left", 34, 80, 800, engine.DirLeft},
		{"far left", 0, 80, 800, engine.DirLeft},
		{"zero screen width", 40, 0, 800, engine.DirNone},
		{"zero world width", 40, 80, 0, engine.DirNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DirectionForTap(tt.col, tt.screenW, tt.worldW)
			if got != tt.expected {
				t.Errorf("DirectionForTap(%d, %d, %v) = %v, expected %v",
					tt.col, tt.screenW, tt.worldW, got, tt.expected)
			}
		})
	}
}
