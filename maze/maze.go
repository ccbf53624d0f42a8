// 迷宫：墙体布局、边界/相邻查询，以及世界中存活实体的容器
package maze

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hoshinonyaruko/pacman-in-im/entity"
	"github.com/hoshinonyaruko/pacman-in-im/structs"
)

// DefaultLayout 是固定的 21x13 迷宫，'#' 为墙，其余为通道
const DefaultLayout = `
#####################
#ooooooooooooooooooo#
#o####o#o###o#o####o#
#oooooooo###oooooooo#
##o#o###########o#o##
##ooooooooooooooooo##
##o#o#o###o###o#o#o##
##ooo#o#ooooo#o#ooo##
##o#o#o#######o#o#o##
#oooooooo###oooooooo#
#o####o#o###o#o####o#
#ooooooooooooooooooo#
#####################
`

const wallChar = '#'

// Grid 的墙体布局在构造后不可变；实体列表按加入顺序保存
type Grid struct {
	walls    [][]bool
	width    int
	height   int
	entities []entity.Entity
}

// New 解析布局字符串，只去掉首尾各一个换行（原始字符串常量的外框），
// 较短的行用通道补齐到 width，全是空格的布局也合法
func New(layout string, width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid maze size %dx%d", width, height)
	}
	layout = strings.TrimPrefix(layout, "\n")
	layout = strings.TrimSuffix(layout, "\n")
	if layout == "" {
		return nil, errors.New("empty maze layout")
	}
	lines := strings.Split(layout, "\n")
	if len(lines) != height {
		return nil, fmt.Errorf("maze layout has %d rows, want %d", len(lines), height)
	}

	walls := make([][]bool, height)
	for row, line := range lines {
		line = strings.TrimRight(line, "\r")
		if len(line) > width {
			return nil, fmt.Errorf("maze row %d is %d cells wide, want at most %d", row, len(line), width)
		}
		walls[row] = make([]bool, width)
		for col := 0; col < len(line); col++ {
			walls[row][col] = line[col] == wallChar
		}
	}
	return &Grid{walls: walls, width: width, height: height}, nil
}

// Default 返回固定布局的迷宫
func Default() *Grid {
	g, err := New(DefaultLayout, 21, 13)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Grid) Width() int    { return g.width }
func (g *Grid) Height() int   { return g.height }
func (g *Grid) CellSize() int { return structs.CellSize }

func (g *Grid) InBounds(c structs.Cell) bool {
	return c.Col >= 0 && c.Col < g.width && c.Row >= 0 && c.Row < g.height
}

// IsWall 调用方需保证坐标在边界内
func (g *Grid) IsWall(col, row int) bool {
	return g.walls[row][col]
}

// LegalMoves 按 左、右、上、下 的顺序返回所有在边界内且不是墙的相邻格子
func (g *Grid) LegalMoves(col, row int) []structs.Move {
	from := structs.Cell{Col: col, Row: row}
	var moves []structs.Move
	for _, d := range structs.Directions {
		to := from.Step(d)
		if g.InBounds(to) && !g.IsWall(to.Col, to.Row) {
			moves = append(moves, structs.Move{Direction: d, To: to})
		}
	}
	return moves
}

// IsUnoccupiedOpenCell 不是墙，并且没有实体位于该格子中心
func (g *Grid) IsUnoccupiedOpenCell(col, row int) bool {
	if g.IsWall(col, row) {
		return false
	}
	x, y := structs.Cell{Col: col, Row: row}.Center()
	for _, e := range g.entities {
		if e.X() == x && e.Y() == y {
			return false
		}
	}
	return true
}

// OpenCells 按行优先顺序列出所有通道格子
func (g *Grid) OpenCells() []structs.Cell {
	var cells []structs.Cell
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			if !g.walls[row][col] {
				cells = append(cells, structs.Cell{Col: col, Row: row})
			}
		}
	}
	return cells
}

func (g *Grid) Add(e entity.Entity) {
	g.entities = append(g.entities, e)
}

// Remove 立即生效，同一帧后续的遍历看不到被移除的实体
func (g *Grid) Remove(e entity.Entity) {
	for i, existing := range g.entities {
		if existing == e {
			g.entities = append(g.entities[:i:i], g.entities[i+1:]...)
			return
		}
	}
}

func (g *Grid) Contains(e entity.Entity) bool {
	for _, existing := range g.entities {
		if existing == e {
			return true
		}
	}
	return false
}

// Entities 返回当前实体列表的副本
func (g *Grid) Entities() []entity.Entity {
	out := make([]entity.Entity, len(g.entities))
	copy(out, g.entities)
	return out
}

// Count 统计某种实体的存活数量
func (g *Grid) Count(kind structs.Kind) int {
	n := 0
	for _, e := range g.entities {
		if e.Kind() == kind {
			n++
		}
	}
	return n
}
