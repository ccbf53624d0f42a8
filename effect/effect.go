// 临时效果：直接修改目标实体的颜色和一个行为字段，到期后由调用方统一 Reset
package effect

import (
	"time"

	"github.com/hoshinonyaruko/pacman-in-im/entity"
	"github.com/hoshinonyaruko/pacman-in-im/structs"
)

type Kind int

const (
	Invulnerability Kind = iota // 吃到樱桃
	Fright                      // 玩家掉命后作用于每个幽灵
)

func (k Kind) String() string {
	if k == Invulnerability {
		return "invulnerability"
	}
	return "fright"
}

// Options 控制效果的细节
type Options struct {
	// Window 是效果持续时间，也用作幽灵逃跑状态的重选计时
	Window time.Duration
	// FrightGrantsInvulnerability 为 true 时，幽灵进入惊吓状态的同时玩家也变为无敌
	FrightGrantsInvulnerability bool
}

func DefaultOptions() Options {
	return Options{Window: 5 * time.Second, FrightGrantsInvulnerability: true}
}

// Invulnerable 让玩家无敌
func Invulnerable(p *entity.Player) {
	p.SetColor(entity.InvulnerableColor)
	p.Invulnerable = true
}

// Frighten 让幽灵在 Window 内逃离玩家
func Frighten(a *entity.Adversary, p *entity.Player, opts Options) {
	a.SetColor(entity.FrightenedColor)
	a.Strategy = structs.StrategyFlee
	a.Reroll.Restart(opts.Window)
	if opts.FrightGrantsInvulnerability {
		p.Invulnerable = true
	}
}

// Apply 按效果类型修改 target；类型与目标不匹配时什么都不做
func Apply(kind Kind, target entity.Entity, player *entity.Player, opts Options) bool {
	switch kind {
	case Invulnerability:
		if p, ok := target.(*entity.Player); ok {
			Invulnerable(p)
			return true
		}
	case Fright:
		if a, ok := target.(*entity.Adversary); ok {
			Frighten(a, player, opts)
			return true
		}
	}
	return false
}

// ResetAll 效果结束：玩家和所有幽灵恢复默认状态
func ResetAll(player *entity.Player, adversaries []*entity.Adversary) {
	player.Reset()
	for _, a := range adversaries {
		a.Reset()
	}
}
