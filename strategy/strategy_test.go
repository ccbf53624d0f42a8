package strategy

import (
	"math/rand"
	"testing"
	"time"

	"github.com/hoshinonyaruko/pacman-in-im/entity"
	"github.com/hoshinonyaruko/pacman-in-im/maze"
	"github.com/hoshinonyaruko/pacman-in-im/structs"
	"github.com/hoshinonyaruko/pacman-in-im/timer"
)

func cell(col, row int) structs.Cell { return structs.Cell{Col: col, Row: row} }

func openGrid(t *testing.T, w, h int) *maze.Grid {
	t.Helper()
	rows := make([]byte, 0, (w+1)*h)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			rows = append(rows, ' ')
		}
		if r < h-1 {
			rows = append(rows, '\n')
		}
	}
	g, err := maze.New(string(rows), w, h)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestChasePicksClosest(t *testing.T) {
	g := openGrid(t, 5, 5)
	adv := entity.NewPickup(cell(2, 2))
	cases := []struct {
		player structs.Cell
		want   structs.Cell
	}{
		{cell(0, 2), cell(1, 2)},
		{cell(4, 2), cell(3, 2)},
		{cell(2, 0), cell(2, 1)},
		{cell(2, 4), cell(2, 3)},
		// 左和上距离相同，左先枚举
		{cell(0, 0), cell(1, 2)},
		// 玩家在同一格：四个方向距离都是 1，取左
		{cell(2, 2), cell(1, 2)},
	}
	for _, tc := range cases {
		got, ok := Chase(adv, g, entity.NewPlayer(tc.player))
		if !ok || got != tc.want {
			t.Errorf("player at %v: got %v ok=%v, want %v", tc.player, got, ok, tc.want)
		}
	}
}

func TestFleePicksFarthest(t *testing.T) {
	g := openGrid(t, 5, 5)
	adv := entity.NewPickup(cell(2, 2))
	cases := []struct {
		player structs.Cell
		want   structs.Cell
	}{
		{cell(0, 2), cell(3, 2)},
		{cell(4, 2), cell(1, 2)},
		{cell(2, 0), cell(2, 3)},
		// 右和下距离相同，右先枚举
		{cell(0, 0), cell(3, 2)},
	}
	for _, tc := range cases {
		got, ok := Flee(adv, g, entity.NewPlayer(tc.player))
		if !ok || got != tc.want {
			t.Errorf("player at %v: got %v ok=%v, want %v", tc.player, got, ok, tc.want)
		}
	}
}

func TestFleeNeedsPositiveDistance(t *testing.T) {
	// 1x2 走廊：幽灵唯一的移动就是走到玩家所在格子，距离为 0
	g := openGrid(t, 2, 1)
	adv := entity.NewPickup(cell(0, 0))
	if _, ok := Flee(adv, g, entity.NewPlayer(cell(1, 0))); ok {
		t.Fatal("flee moved onto the player")
	}
}

func TestNoLegalMoves(t *testing.T) {
	g, err := maze.New("###\n# #\n###", 3, 3)
	if err != nil {
		t.Fatal(err)
	}
	adv := entity.NewPickup(cell(1, 1))
	player := entity.NewPlayer(cell(1, 1))
	rng := rand.New(rand.NewSource(1))
	for _, k := range []structs.StrategyKind{structs.StrategyRandom, structs.StrategyChase, structs.StrategyFlee} {
		if _, ok := Decide(k, adv, g, player, rng); ok {
			t.Errorf("%v moved out of a sealed cell", k)
		}
	}
}

func TestRandomStaysLegal(t *testing.T) {
	g := maze.Default()
	rng := rand.New(rand.NewSource(7))
	seen := map[structs.Cell]bool{}
	adv := entity.NewPickup(cell(1, 1))
	for i := 0; i < 200; i++ {
		next, ok := Random(adv, g, rng)
		if !ok {
			t.Fatal("no move from an open corridor")
		}
		if g.IsWall(next.Col, next.Row) {
			t.Fatalf("random stepped into wall at %v", next)
		}
		seen[next] = true
	}
	// (1,1) 只能往右或往下
	if len(seen) != 2 || !seen[cell(2, 1)] || !seen[cell(1, 2)] {
		t.Fatalf("random choices = %v", seen)
	}
}

func TestStepRerollsWhenExpired(t *testing.T) {
	g := openGrid(t, 5, 5)
	clock := timer.NewManualClock(time.Unix(0, 0))
	rng := rand.New(rand.NewSource(11))
	adv := entity.NewAdversary(cell(2, 2), clock, rng)
	adv.Strategy = structs.StrategyFlee
	player := entity.NewPlayer(cell(0, 2))

	// 计时器还在运行：保持逃跑
	if !Step(adv, g, player, rng) {
		t.Fatal("expected a move")
	}
	if adv.Strategy != structs.StrategyFlee || adv.Cell() != cell(3, 2) {
		t.Fatalf("strategy=%v cell=%v", adv.Strategy, adv.Cell())
	}

	clock.Advance(8 * time.Second)
	Step(adv, g, player, rng)
	if adv.Strategy == structs.StrategyFlee {
		t.Fatal("expired timer did not reroll")
	}
	d := adv.Reroll.Duration()
	if d < time.Second || d > 3*time.Second || !adv.Reroll.IsRunning() {
		t.Fatalf("reroll window %v running=%v", d, adv.Reroll.IsRunning())
	}
}
