// 按键到动作的绑定
package command

import (
	"github.com/hoshinonyaruko/pacman-in-im/entity"
	"github.com/hoshinonyaruko/pacman-in-im/maze"
	"github.com/hoshinonyaruko/pacman-in-im/structs"
)

// Key 是与具体输入库无关的按键标识
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

type Command interface {
	Execute() bool
}

// Move 把玩家往一个方向移动一格，目标是墙或越界时什么都不做
type Move struct {
	Player    entity.Entity
	Grid      *maze.Grid
	Direction structs.Direction
}

func (m Move) Execute() bool {
	target := m.Player.Cell().Step(m.Direction)
	if !m.Grid.InBounds(target) || m.Grid.IsWall(target.Col, target.Row) {
		return false
	}
	m.Player.SetCell(target)
	return true
}

// Controller 保存按键绑定
type Controller struct {
	commands map[Key]Command
}

func NewController() *Controller {
	return &Controller{commands: make(map[Key]Command)}
}

// NewDefault 绑定四个方向键
func NewDefault(player entity.Entity, grid *maze.Grid) *Controller {
	c := NewController()
	c.Bind(KeyLeft, Move{Player: player, Grid: grid, Direction: structs.Left})
	c.Bind(KeyRight, Move{Player: player, Grid: grid, Direction: structs.Right})
	c.Bind(KeyUp, Move{Player: player, Grid: grid, Direction: structs.Up})
	c.Bind(KeyDown, Move{Player: player, Grid: grid, Direction: structs.Down})
	return c
}

func (c *Controller) Bind(key Key, cmd Command) {
	c.commands[key] = cmd
}

// Execute 执行按键绑定的命令；未绑定的按键返回 false
func (c *Controller) Execute(key Key) bool {
	cmd, ok := c.commands[key]
	if !ok {
		return false
	}
	return cmd.Execute()
}
