// 碰撞检测与分发：按实体类型查表执行反应，金币和樱桃被吃掉后立即从世界移除
package collision

import (
	"math"

	"github.com/hoshinonyaruko/pacman-in-im/effect"
	"github.com/hoshinonyaruko/pacman-in-im/entity"
	"github.com/hoshinonyaruko/pacman-in-im/maze"
	"github.com/hoshinonyaruko/pacman-in-im/structs"
	"github.com/hoshinonyaruko/pacman-in-im/timer"
)

// EffectEnd 是效果结束事件的 id
const EffectEnd timer.EventID = 1

// Hit 记录一次分发的结果
type Hit struct {
	Kind     structs.Kind
	Cell     structs.Cell
	LifeLost bool
	Consumed bool
}

// Reaction 是某种实体与玩家重叠时的反应
type Reaction interface {
	React(d *Dispatcher, target entity.Entity, player *entity.Player) Hit
}

// Dispatcher 持有反应表以及反应需要的世界、幽灵列表和事件设施
type Dispatcher struct {
	reactions   map[structs.Kind]Reaction
	grid        *maze.Grid
	adversaries []*entity.Adversary
	events      *timer.Events
	opts        effect.Options
}

func New(grid *maze.Grid, adversaries []*entity.Adversary, events *timer.Events, opts effect.Options) *Dispatcher {
	return &Dispatcher{
		reactions:   make(map[structs.Kind]Reaction),
		grid:        grid,
		adversaries: adversaries,
		events:      events,
		opts:        opts,
	}
}

// NewDefault 注册金币、樱桃、幽灵三种反应
func NewDefault(grid *maze.Grid, adversaries []*entity.Adversary, events *timer.Events, opts effect.Options) *Dispatcher {
	d := New(grid, adversaries, events, opts)
	d.Register(structs.KindPickup, PickupReaction{})
	d.Register(structs.KindPowerUp, PowerUpReaction{})
	d.Register(structs.KindAdversary, AdversaryReaction{})
	return d
}

func (d *Dispatcher) Register(kind structs.Kind, r Reaction) {
	d.reactions[kind] = r
}

// Overlap 轴对齐包围盒测试，两个轴都是严格小于
func Overlap(a, b entity.Entity) bool {
	dx := math.Abs(float64(a.X() - b.X()))
	dy := math.Abs(float64(a.Y() - b.Y()))
	return dx < float64(a.Width()+b.Width())/2.0 && dy < float64(a.Height()+b.Height())/2.0
}

// Dispatch 查表执行反应；未注册的类型直接忽略
func (d *Dispatcher) Dispatch(e entity.Entity, player *entity.Player) (Hit, bool) {
	r, ok := d.reactions[e.Kind()]
	if !ok {
		return Hit{}, false
	}
	hit := r.React(d, e, player)
	if e.Kind().Consumable() {
		d.grid.Remove(e)
		hit.Consumed = true
	}
	return hit, true
}

// Scan 按世界中的顺序逐个检测与玩家的重叠；本轮已被移除的实体不会再次分发
func (d *Dispatcher) Scan(player *entity.Player) []Hit {
	var hits []Hit
	for _, e := range d.grid.Entities() {
		if !d.grid.Contains(e) || !Overlap(player, e) {
			continue
		}
		if hit, ok := d.Dispatch(e, player); ok {
			hits = append(hits, hit)
		}
	}
	return hits
}

func (d *Dispatcher) armEffectEnd() {
	d.events.Set(EffectEnd, d.opts.Window)
}

// PickupReaction 金币：计数加一
type PickupReaction struct{}

func (PickupReaction) React(d *Dispatcher, target entity.Entity, player *entity.Player) Hit {
	player.Coins++
	return Hit{Kind: target.Kind(), Cell: target.Cell()}
}

// PowerUpReaction 樱桃：玩家无敌，安排效果结束事件
type PowerUpReaction struct{}

func (PowerUpReaction) React(d *Dispatcher, target entity.Entity, player *entity.Player) Hit {
	effect.Apply(effect.Invulnerability, player, player, d.opts)
	d.armEffectEnd()
	return Hit{Kind: target.Kind(), Cell: target.Cell()}
}

// AdversaryReaction 幽灵：玩家不无敌时掉一条命，并让所有幽灵进入惊吓状态
type AdversaryReaction struct{}

func (AdversaryReaction) React(d *Dispatcher, target entity.Entity, player *entity.Player) Hit {
	hit := Hit{Kind: target.Kind(), Cell: target.Cell()}
	if player.Invulnerable {
		return hit
	}
	player.Lives--
	for _, a := range d.adversaries {
		effect.Apply(effect.Fright, a, player, d.opts)
	}
	d.armEffectEnd()
	hit.LifeLost = true
	return hit
}
