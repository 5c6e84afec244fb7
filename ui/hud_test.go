package ui

import (
	"testing"

	"github.com/pthm-cable/starvingfish/camera"
	"github.com/pthm-cable/starvingfish/game"
)

func TestLayoutForAnchorsLabels(t *testing.T) {
	cam := camera.New(390, 844, 390, 844)
	l := layoutFor(cam, game.Frame{Width: 390, Height: 844})

	if l.ScoreX != 20 || l.ScoreY != 844-20 {
		t.Errorf("score anchor = (%d, %d), want (20, 824)", l.ScoreX, l.ScoreY)
	}
	if l.CenterX != 195 {
		t.Errorf("center x = %d, want 195", l.CenterX)
	}
	// The title sits above the body on screen.
	if l.TitleY >= l.BodyY {
		t.Errorf("title y %d should be above body y %d", l.TitleY, l.BodyY)
	}
	if l.BodyY != 422 {
		t.Errorf("body y = %d, want 422", l.BodyY)
	}
}
