// 迷宫中的实体：玩家、幽灵、金币、樱桃
package entity

import (
	"math/rand"
	"time"

	"github.com/hoshinonyaruko/pacman-in-im/structs"
	"github.com/hoshinonyaruko/pacman-in-im/timer"
)

var (
	PlayerColor        = structs.Color{R: 255, G: 255, B: 0}
	AdversaryColor     = structs.Color{R: 255, G: 255, B: 255}
	PickupColor        = structs.Color{R: 255, G: 165, B: 0}
	PowerUpColor       = structs.Color{R: 255, G: 0, B: 0}
	InvulnerableColor  = structs.Color{R: 255, G: 100, B: 100}
	FrightenedColor    = structs.Color{R: 180, G: 0, B: 255}
	UnknownColor       = structs.Color{R: 128, G: 128, B: 128}
	DefaultLives       = 3
	DefaultStrategy    = structs.StrategyRandom
	StrategyPool       = []structs.StrategyKind{structs.StrategyChase, structs.StrategyRandom}
	InitialRerollRange = [2]int{3, 7} // 秒，闭区间
	RerollRange        = [2]int{1, 3}
)

// Entity 是所有可放置、可绘制对象的公共接口
type Entity interface {
	Kind() structs.Kind
	X() int
	Y() int
	Cell() structs.Cell
	SetCell(c structs.Cell)
	Width() int
	Height() int
	SetExtents(width, height int)
	Color() structs.Color
	SetColor(c structs.Color)
}

// Element 保存像素坐标、尺寸和颜色；坐标只会落在格子中心
type Element struct {
	x, y          int
	width, height int
	color         structs.Color
}

func newElement(c structs.Cell, width, height int, color structs.Color) Element {
	x, y := c.Center()
	return Element{x: x, y: y, width: width, height: height, color: color}
}

func (e *Element) X() int                       { return e.x }
func (e *Element) Y() int                       { return e.y }
func (e *Element) Cell() structs.Cell           { return structs.CellAt(e.x, e.y) }
func (e *Element) Width() int                   { return e.width }
func (e *Element) Height() int                  { return e.height }
func (e *Element) Color() structs.Color         { return e.color }
func (e *Element) SetColor(c structs.Color)     { e.color = c }
func (e *Element) SetExtents(width, height int) { e.width, e.height = width, height }

// SetCell 移动到格子 c 的中心
func (e *Element) SetCell(c structs.Cell) {
	e.x, e.y = c.Center()
}

// Player 玩家 (吃豆人)
type Player struct {
	Element
	Lives        int
	Coins        int
	Invulnerable bool
}

func NewPlayer(c structs.Cell) *Player {
	return &Player{
		Element: newElement(c, 20, 20, PlayerColor),
		Lives:   DefaultLives,
	}
}

func (p *Player) Kind() structs.Kind { return structs.KindPlayer }

// Reset 恢复默认颜色并取消无敌
func (p *Player) Reset() {
	p.color = PlayerColor
	p.Invulnerable = false
}

// Adversary 幽灵，持有当前策略和重新选择策略的计时器
type Adversary struct {
	Element
	Strategy structs.StrategyKind
	Reroll   *timer.Timer
}

// NewAdversary 创建幽灵，重选计时器的初始时长在 InitialRerollRange 内随机
func NewAdversary(c structs.Cell, clock timer.Clock, rng *rand.Rand) *Adversary {
	a := &Adversary{
		Element:  newElement(c, 20, 20, AdversaryColor),
		Strategy: DefaultStrategy,
		Reroll:   timer.New(clock, RandomSeconds(rng, InitialRerollRange)),
	}
	a.Reroll.Start()
	return a
}

func (a *Adversary) Kind() structs.Kind { return structs.KindAdversary }

// Reset 恢复默认颜色；如果还在逃跑则回到默认策略，并让下一帧重新抽取策略
func (a *Adversary) Reset() {
	a.color = AdversaryColor
	if a.Strategy == structs.StrategyFlee {
		a.Strategy = DefaultStrategy
		a.Reroll.Stop()
	}
}

// Pickup 金币
type Pickup struct {
	Element
}

func NewPickup(c structs.Cell) *Pickup {
	return &Pickup{Element: newElement(c, 5, 5, PickupColor)}
}

func (p *Pickup) Kind() structs.Kind { return structs.KindPickup }

// PowerUp 樱桃，吃到后短暂无敌
type PowerUp struct {
	Element
}

func NewPowerUp(c structs.Cell) *PowerUp {
	return &PowerUp{Element: newElement(c, 15, 15, PowerUpColor)}
}

func (p *PowerUp) Kind() structs.Kind { return structs.KindPowerUp }

// RandomSeconds 在 [lo, hi] 秒内均匀取一个整数秒
func RandomSeconds(rng *rand.Rand, bounds [2]int) time.Duration {
	lo, hi := bounds[0], bounds[1]
	return time.Duration(lo+rng.Intn(hi-lo+1)) * time.Second
}

// DefaultColor 返回某种实体未受效果影响时的颜色
func DefaultColor(kind structs.Kind) structs.Color {
	switch kind {
	case structs.KindPlayer:
		return PlayerColor
	case structs.KindAdversary:
		return AdversaryColor
	case structs.KindPickup:
		return PickupColor
	case structs.KindPowerUp:
		return PowerUpColor
	}
	return UnknownColor
}
