package command

import (
	"testing"

	"github.com/hoshinonyaruko/pacman-in-im/entity"
	"github.com/hoshinonyaruko/pacman-in-im/maze"
	"github.com/hoshinonyaruko/pacman-in-im/structs"
)

func TestMoveCommands(t *testing.T) {
	g, err := maze.New("#  \n   ", 3, 2)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		name  string
		start structs.Cell
		key   Key
		want  structs.Cell
		moved bool
	}{
		{"right", structs.Cell{Col: 1, Row: 0}, KeyRight, structs.Cell{Col: 2, Row: 0}, true},
		{"down", structs.Cell{Col: 1, Row: 0}, KeyDown, structs.Cell{Col: 1, Row: 1}, true},
		{"into wall", structs.Cell{Col: 1, Row: 0}, KeyLeft, structs.Cell{Col: 1, Row: 0}, false},
		{"off top edge", structs.Cell{Col: 1, Row: 0}, KeyUp, structs.Cell{Col: 1, Row: 0}, false},
		{"off right edge", structs.Cell{Col: 2, Row: 1}, KeyRight, structs.Cell{Col: 2, Row: 1}, false},
		{"left on bottom row", structs.Cell{Col: 1, Row: 1}, KeyLeft, structs.Cell{Col: 0, Row: 1}, true},
		{"unbound", structs.Cell{Col: 1, Row: 1}, KeyNone, structs.Cell{Col: 1, Row: 1}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := entity.NewPlayer(tc.start)
			c := NewDefault(p, g)
			if got := c.Execute(tc.key); got != tc.moved {
				t.Fatalf("Execute = %v, want %v", got, tc.moved)
			}
			if p.Cell() != tc.want {
				t.Fatalf("player at %v, want %v", p.Cell(), tc.want)
			}
			x, y := tc.want.Center()
			if p.X() != x || p.Y() != y {
				t.Fatal("player left the cell-center lattice")
			}
		})
	}
}

type counter struct{ n int }

func (c *counter) Execute() bool { c.n++; return true }

func TestBindOverrides(t *testing.T) {
	c := NewController()
	first, second := &counter{}, &counter{}
	c.Bind(KeyUp, first)
	c.Bind(KeyUp, second)
	c.Execute(KeyUp)
	if first.n != 0 || second.n != 1 {
		t.Fatalf("first=%d second=%d", first.n, second.n)
	}
}
