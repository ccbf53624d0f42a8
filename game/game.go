// 游戏世界的搭建与逐帧推进
package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/hoshinonyaruko/pacman-in-im/collision"
	"github.com/hoshinonyaruko/pacman-in-im/command"
	"github.com/hoshinonyaruko/pacman-in-im/effect"
	"github.com/hoshinonyaruko/pacman-in-im/entity"
	"github.com/hoshinonyaruko/pacman-in-im/maze"
	"github.com/hoshinonyaruko/pacman-in-im/strategy"
	"github.com/hoshinonyaruko/pacman-in-im/structs"
	"github.com/hoshinonyaruko/pacman-in-im/timer"
)

// Setup 描述开局布置
type Setup struct {
	Layout      string
	Width       int
	Height      int
	Player      structs.Cell
	Adversaries []structs.Cell
	PowerUps    []structs.Cell
}

// DefaultSetup 固定迷宫：玩家在上方中间，三个幽灵在中央，四个角各一颗樱桃
func DefaultSetup() Setup {
	return Setup{
		Layout: maze.DefaultLayout,
		Width:  21,
		Height: 13,
		Player: structs.Cell{Col: 10, Row: 1},
		Adversaries: []structs.Cell{
			{Col: 10, Row: 7},
			{Col: 11, Row: 7},
			{Col: 9, Row: 7},
		},
		PowerUps: []structs.Cell{
			{Col: 1, Row: 1},
			{Col: 19, Row: 1},
			{Col: 1, Row: 11},
			{Col: 19, Row: 11},
		},
	}
}

type Options struct {
	Clock  timer.Clock
	Rand   *rand.Rand
	Effect effect.Options
	RunID  string
	// Logf 记录状态变化 (掉命、吃到樱桃、效果结束、输赢)，nil 时不输出
	Logf func(format string, args ...interface{})
}

func DefaultOptions() Options {
	return Options{Effect: effect.DefaultOptions()}
}

// Input 是一帧内收集到的按键
type Input struct {
	Keys []command.Key
}

// Result 描述一帧发生了什么
type Result struct {
	Moved       bool
	Hits        []collision.Hit
	EffectEnded bool
	Status      structs.Status
}

type Game struct {
	ID          string
	grid        *maze.Grid
	player      *entity.Player
	adversaries []*entity.Adversary
	dispatcher  *collision.Dispatcher
	controller  *command.Controller
	events      *timer.Events
	rng         *rand.Rand
	opts        Options
	total       int
	status      structs.Status
}

// New 搭建世界：玩家、幽灵、樱桃，然后在每个空闲通道上放一枚金币
func New(setup Setup, opts Options) (*Game, error) {
	if opts.Clock == nil {
		opts.Clock = timer.SystemClock{}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Effect.Window <= 0 {
		opts.Effect.Window = effect.DefaultOptions().Window
	}
	if opts.RunID == "" {
		opts.RunID = uuid.NewString()
	}

	grid, err := maze.New(setup.Layout, setup.Width, setup.Height)
	if err != nil {
		return nil, fmt.Errorf("build maze: %w", err)
	}
	check := func(what string, c structs.Cell) error {
		if !grid.InBounds(c) || grid.IsWall(c.Col, c.Row) {
			return fmt.Errorf("%s at %v is not an open cell", what, c)
		}
		return nil
	}

	if err := check("player", setup.Player); err != nil {
		return nil, err
	}
	g := &Game{
		ID:     opts.RunID,
		grid:   grid,
		player: entity.NewPlayer(setup.Player),
		events: timer.NewEvents(opts.Clock),
		rng:    opts.Rand,
		opts:   opts,
	}
	grid.Add(g.player)

	for _, c := range setup.Adversaries {
		if err := check("adversary", c); err != nil {
			return nil, err
		}
		a := entity.NewAdversary(c, opts.Clock, opts.Rand)
		g.adversaries = append(g.adversaries, a)
		grid.Add(a)
	}
	for _, c := range setup.PowerUps {
		if err := check("power-up", c); err != nil {
			return nil, err
		}
		grid.Add(entity.NewPowerUp(c))
	}
	for _, c := range grid.OpenCells() {
		if grid.IsUnoccupiedOpenCell(c.Col, c.Row) {
			grid.Add(entity.NewPickup(c))
			g.total++
		}
	}

	g.dispatcher = collision.NewDefault(grid, g.adversaries, g.events, opts.Effect)
	g.controller = command.NewDefault(g.player, grid)
	return g, nil
}

// Tick 推进一帧：按键、幽灵移动、碰撞、效果结束、胜负判定
func (g *Game) Tick(in Input) Result {
	if g.status != structs.Running {
		return Result{Status: g.status}
	}
	var res Result

	// 只执行这一帧最后一个按键
	if n := len(in.Keys); n > 0 {
		res.Moved = g.controller.Execute(in.Keys[n-1])
	}

	for _, a := range g.adversaries {
		strategy.Step(a, g.grid, g.player, g.rng)
	}

	res.Hits = g.dispatcher.Scan(g.player)
	for _, hit := range res.Hits {
		switch {
		case hit.LifeLost:
			g.logf("life lost at %v, %d left", hit.Cell, g.player.Lives)
		case hit.Kind == structs.KindPowerUp:
			g.logf("power-up taken at %v", hit.Cell)
		}
	}

	if timer.Fired(g.events.Poll(), collision.EffectEnd) {
		effect.ResetAll(g.player, g.adversaries)
		g.events.Set(collision.EffectEnd, 0)
		res.EffectEnded = true
		g.logf("effect ended")
	}

	switch {
	case g.player.Lives <= 0:
		g.status = structs.Lost
		g.logf("game %s lost with %d/%d coins", g.ID, g.player.Coins, g.total)
	case g.player.Coins == g.total:
		g.status = structs.Won
		g.logf("game %s won", g.ID)
	}
	res.Status = g.status
	return res
}

func (g *Game) logf(format string, args ...interface{}) {
	if g.opts.Logf != nil {
		g.opts.Logf(format, args...)
	}
}

func (g *Game) Grid() *maze.Grid                 { return g.grid }
func (g *Game) Player() *entity.Player           { return g.player }
func (g *Game) Adversaries() []*entity.Adversary { return g.adversaries }
func (g *Game) Status() structs.Status           { return g.status }
func (g *Game) Total() int                       { return g.total }

// HUD 返回信息面板的数据
func (g *Game) HUD() structs.HUD {
	return structs.HUD{
		RunID:  g.ID,
		Lives:  g.player.Lives,
		Coins:  g.player.Coins,
		Total:  g.total,
		Status: g.status,
	}
}
