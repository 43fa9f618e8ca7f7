package concepts

import (
	"strings"
	"testing"

	"github.com/ConceptN8/poker-study-tool/server/study"
)

func TestNarrateNeverEmpty(t *testing.T) {
	states := []study.HandState{
		{},
		{HeroHand: "QJo", Position: "CO", EffectiveBB: 15},
		{HeroHand: "???", Position: "nowhere", EffectiveBB: 999},
	}
	for _, s := range states {
		if got := Narrate(s); strings.TrimSpace(got) == "" {
			t.Errorf("Narrate(%+v) returned empty text", s)
		}
	}
}

func TestNarrateReflectsStackDepth(t *testing.T) {
	short := Narrate(study.HandState{HeroHand: "AKs", Position: "BTN", EffectiveBB: 8})
	if !strings.Contains(short, "short stacks") {
		t.Errorf("short-stack note missing: %q", short)
	}
	deep := Narrate(study.HandState{HeroHand: "AKs", Position: "BTN", EffectiveBB: 60})
	if !strings.Contains(deep, "deep stacks") {
		t.Errorf("deep-stack note missing: %q", deep)
	}
}

func TestNarrateIncludesBoardTexture(t *testing.T) {
	withBoard := Narrate(study.HandState{
		HeroHand:    "QJo",
		Position:    "CO",
		EffectiveBB: 20,
		Board:       []string{"7c", "7d", "2s"},
	})
	if !strings.Contains(withBoard, "Board 7c 7d 2s") {
		t.Errorf("board note missing: %q", withBoard)
	}
}
