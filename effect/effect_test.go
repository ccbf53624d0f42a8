package effect

import (
	"math/rand"
	"testing"
	"time"

	"github.com/hoshinonyaruko/pacman-in-im/entity"
	"github.com/hoshinonyaruko/pacman-in-im/structs"
	"github.com/hoshinonyaruko/pacman-in-im/timer"
)

func setup() (*entity.Player, []*entity.Adversary, *timer.ManualClock) {
	clock := timer.NewManualClock(time.Unix(0, 0))
	rng := rand.New(rand.NewSource(5))
	p := entity.NewPlayer(structs.Cell{Col: 1, Row: 1})
	advs := []*entity.Adversary{
		entity.NewAdversary(structs.Cell{Col: 3, Row: 3}, clock, rng),
		entity.NewAdversary(structs.Cell{Col: 4, Row: 3}, clock, rng),
	}
	return p, advs, clock
}

func TestInvulnerabilityMutatesInPlace(t *testing.T) {
	p, _, _ := setup()
	if !Apply(Invulnerability, p, p, DefaultOptions()) {
		t.Fatal("apply reported no-op")
	}
	if !p.Invulnerable || p.Color() != entity.InvulnerableColor {
		t.Fatal("player not decorated")
	}
}

func TestFrightForcesFleeForWindow(t *testing.T) {
	p, advs, clock := setup()
	opts := DefaultOptions()
	for _, a := range advs {
		Apply(Fright, a, p, opts)
	}
	for _, a := range advs {
		if a.Strategy != structs.StrategyFlee || a.Color() != entity.FrightenedColor {
			t.Fatalf("adversary not frightened: %v %v", a.Strategy, a.Color())
		}
		if a.Reroll.Duration() != opts.Window || !a.Reroll.IsRunning() {
			t.Fatal("fright window not armed on the reroll timer")
		}
	}
	if !p.Invulnerable {
		t.Fatal("fright should also make the player invulnerable")
	}
	if p.Color() != entity.PlayerColor {
		t.Fatal("fright must not recolor the player")
	}
	clock.Advance(opts.Window)
	if advs[0].Reroll.IsRunning() {
		t.Fatal("fright window did not expire")
	}
}

func TestFrightWithoutInvulnerabilityCoupling(t *testing.T) {
	p, advs, _ := setup()
	opts := DefaultOptions()
	opts.FrightGrantsInvulnerability = false
	Apply(Fright, advs[0], p, opts)
	if p.Invulnerable {
		t.Fatal("player became invulnerable with coupling disabled")
	}
}

func TestApplyIgnoresMismatchedTarget(t *testing.T) {
	p, advs, _ := setup()
	if Apply(Invulnerability, advs[0], p, DefaultOptions()) {
		t.Fatal("invulnerability applied to an adversary")
	}
	if Apply(Fright, p, p, DefaultOptions()) {
		t.Fatal("fright applied to the player")
	}
	if p.Invulnerable {
		t.Fatal("mismatched apply mutated the player")
	}
}

func TestResetAll(t *testing.T) {
	p, advs, _ := setup()
	opts := DefaultOptions()
	Invulnerable(p)
	for _, a := range advs {
		Frighten(a, p, opts)
	}
	ResetAll(p, advs)
	if p.Invulnerable || p.Color() != entity.PlayerColor {
		t.Fatal("player not reset")
	}
	for _, a := range advs {
		if a.Color() != entity.AdversaryColor || a.Strategy == structs.StrategyFlee {
			t.Fatal("adversary not reset")
		}
	}
}
