// 终端前端：用 tcell 绘制迷宫并收集每帧的按键
package terminal

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/hoshinonyaruko/pacman-in-im/command"
	"github.com/hoshinonyaruko/pacman-in-im/game"
	"github.com/hoshinonyaruko/pacman-in-im/maze"
	"github.com/hoshinonyaruko/pacman-in-im/structs"
)

// CellWidth 每个迷宫格子占两列，让格子看起来接近正方形
const CellWidth = 2

// Keys 方向键映射
var Keys = map[tcell.Key]command.Key{
	tcell.KeyLeft:  command.KeyLeft,
	tcell.KeyRight: command.KeyRight,
	tcell.KeyUp:    command.KeyUp,
	tcell.KeyDown:  command.KeyDown,
}

var glyphs = map[structs.Kind]rune{
	structs.KindPlayer:    '@',
	structs.KindAdversary: 'G',
	structs.KindPickup:    '.',
	structs.KindPowerUp:   '*',
}

// 数字大的后画，盖住同一格里的其他实体
var layer = map[structs.Kind]int{
	structs.KindPickup:    0,
	structs.KindPowerUp:   1,
	structs.KindAdversary: 2,
	structs.KindPlayer:    3,
}

// Batch 是一帧内收集到的输入
type Batch struct {
	Input    game.Input
	Quit     bool
	Snapshot bool
}

type Frontend struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
	exited chan struct{}
	stop   sync.Once
}

func New(screen tcell.Screen) *Frontend {
	return &Frontend{
		screen: screen,
		events: make(chan tcell.Event, 32),
		done:   make(chan struct{}),
		exited: make(chan struct{}),
	}
}

// Start 在后台读取 tcell 事件，屏幕 Fini 后 PollEvent 返回 nil，goroutine 退出；
// Stop 之后不再向 events 投递，缓冲区满也不会卡住
func (f *Frontend) Start() {
	go func() {
		defer close(f.exited)
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				close(f.events)
				return
			}
			select {
			case f.events <- ev:
			case <-f.done:
				return
			}
		}
	}()
}

// Stop 通知读取 goroutine 退出，可重复调用
func (f *Frontend) Stop() {
	f.stop.Do(func() { close(f.done) })
}

// Drain 取出当前所有待处理事件，不阻塞
func (f *Frontend) Drain() Batch {
	var b Batch
	for {
		select {
		case ev, ok := <-f.events:
			if !ok {
				b.Quit = true
				return b
			}
			f.Handle(ev, &b)
		default:
			return b
		}
	}
}

// Handle 把一个 tcell 事件记入 batch
func (f *Frontend) Handle(ev tcell.Event, b *Batch) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		f.screen.Sync()
	case *tcell.EventKey:
		if k, ok := Keys[ev.Key()]; ok {
			b.Input.Keys = append(b.Input.Keys, k)
			return
		}
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			b.Quit = true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				b.Quit = true
			case 'p', 'P':
				b.Snapshot = true
			}
		}
	}
}

func toTcell(c structs.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Draw 画出迷宫、实体和右侧信息
func (f *Frontend) Draw(g *maze.Grid, hud structs.HUD) {
	s := f.screen
	s.Clear()
	wall := tcell.StyleDefault.Background(tcell.NewRGBColor(0, 0, 255))
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			if g.IsWall(col, row) {
				s.SetContent(col*CellWidth, row, ' ', nil, wall)
				s.SetContent(col*CellWidth+1, row, ' ', nil, wall)
			}
		}
	}

	entities := g.Entities()
	sort.SliceStable(entities, func(i, j int) bool {
		return layer[entities[i].Kind()] < layer[entities[j].Kind()]
	})
	for _, e := range entities {
		c := e.Cell()
		style := tcell.StyleDefault.Foreground(toTcell(e.Color()))
		s.SetContent(c.Col*CellWidth, c.Row, glyphs[e.Kind()], nil, style)
	}

	x := g.Width()*CellWidth + 2
	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	f.print(x, 1, fmt.Sprintf("Lives: %d", hud.Lives), white)
	f.print(x, 3, fmt.Sprintf("Coins: %d/%d", hud.Coins, hud.Total), white)
	f.print(x, 5, "arrows move, p snapshot, q quit", tcell.StyleDefault.Foreground(tcell.ColorGray))
	s.Show()
}

// Banner 在迷宫中央显示结束提示
func (f *Frontend) Banner(g *maze.Grid, message string) {
	x := (g.Width()*CellWidth - len(message)) / 2
	if x < 0 {
		x = 0
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	f.print(x, g.Height()/2, message, style)
	f.screen.Show()
}

func (f *Frontend) print(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		f.screen.SetContent(x+i, y, r, nil, style)
	}
}
