// 幽灵的移动策略：随机、追逐、逃跑
package strategy

import (
	"math"
	"math/rand"

	"github.com/hoshinonyaruko/pacman-in-im/entity"
	"github.com/hoshinonyaruko/pacman-in-im/maze"
	"github.com/hoshinonyaruko/pacman-in-im/structs"
)

// Decide 按策略类型选出下一个格子；没有合法移动时 ok 为 false
func Decide(kind structs.StrategyKind, adv entity.Entity, grid *maze.Grid, player entity.Entity, rng *rand.Rand) (structs.Cell, bool) {
	switch kind {
	case structs.StrategyRandom:
		return Random(adv, grid, rng)
	case structs.StrategyChase:
		return Chase(adv, grid, player)
	case structs.StrategyFlee:
		return Flee(adv, grid, player)
	}
	return structs.Cell{}, false
}

// Random 在合法移动中均匀随机选一个
func Random(adv entity.Entity, grid *maze.Grid, rng *rand.Rand) (structs.Cell, bool) {
	from := adv.Cell()
	moves := grid.LegalMoves(from.Col, from.Row)
	if len(moves) == 0 {
		return structs.Cell{}, false
	}
	return moves[rng.Intn(len(moves))].To, true
}

// Chase 选离玩家欧氏距离最近的合法移动，平局取先枚举到的
func Chase(adv entity.Entity, grid *maze.Grid, player entity.Entity) (structs.Cell, bool) {
	from, target := adv.Cell(), player.Cell()
	best := math.Inf(1)
	var pick structs.Cell
	found := false
	for _, m := range grid.LegalMoves(from.Col, from.Row) {
		if d := distance(m.To, target); d < best {
			best, pick, found = d, m.To, true
		}
	}
	return pick, found
}

// Flee 选离玩家最远的合法移动；距离必须严格大于 0 才会移动
func Flee(adv entity.Entity, grid *maze.Grid, player entity.Entity) (structs.Cell, bool) {
	from, target := adv.Cell(), player.Cell()
	best := 0.0
	var pick structs.Cell
	found := false
	for _, m := range grid.LegalMoves(from.Col, from.Row) {
		if d := distance(m.To, target); d > best {
			best, pick, found = d, m.To, true
		}
	}
	return pick, found
}

func distance(a, b structs.Cell) float64 {
	return math.Hypot(float64(a.Col-b.Col), float64(a.Row-b.Row))
}

// Step 执行一帧：重选计时器到期时从策略池中重新抽取并重置计时器，然后执行当前策略
func Step(adv *entity.Adversary, grid *maze.Grid, player entity.Entity, rng *rand.Rand) bool {
	if !adv.Reroll.IsRunning() {
		adv.Strategy = entity.StrategyPool[rng.Intn(len(entity.StrategyPool))]
		adv.Reroll.Restart(entity.RandomSeconds(rng, entity.RerollRange))
	}
	next, ok := Decide(adv.Strategy, adv, grid, player, rng)
	if !ok {
		return false
	}
	adv.SetCell(next)
	return true
}
