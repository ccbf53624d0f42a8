package render

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/hoshinonyaruko/pacman-in-im/entity"
	"github.com/hoshinonyaruko/pacman-in-im/maze"
	"github.com/hoshinonyaruko/pacman-in-im/memimg"
	"github.com/hoshinonyaruko/pacman-in-im/structs"
)

func rgb(img image.Image, x, y int) structs.Color {
	r, g, b, _ := img.At(x, y).RGBA()
	return structs.Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

func TestFrame(t *testing.T) {
	g := maze.Default()
	p := entity.NewPlayer(structs.Cell{Col: 10, Row: 1})
	g.Add(p)
	g.Add(entity.NewPowerUp(structs.Cell{Col: 1, Row: 1}))

	r := New(nil)
	img := r.Frame(g, structs.HUD{Lives: 3})
	w, h := Size(g)
	if b := img.Bounds(); b.Dx() != w || b.Dy() != h {
		t.Fatalf("bounds = %v, want %dx%d", b, w, h)
	}
	if w != 27*40 || h != 13*40 {
		t.Fatalf("size = %dx%d", w, h)
	}

	blue := structs.Color{B: 255}
	if got := rgb(img, 20, 20); got != blue {
		t.Fatalf("wall pixel = %v", got)
	}
	if got := rgb(img, p.X(), p.Y()); got != entity.PlayerColor {
		t.Fatalf("player pixel = %v", got)
	}
	if got := rgb(img, 60, 60); got != entity.PowerUpColor {
		t.Fatalf("power-up pixel = %v", got)
	}
	// 通道是黑色
	if got := rgb(img, 60+15, 60); got != (structs.Color{}) {
		t.Fatalf("open cell pixel = %v", got)
	}

	p.SetColor(entity.InvulnerableColor)
	if got := rgb(r.Frame(g, structs.HUD{}), p.X(), p.Y()); got != entity.InvulnerableColor {
		t.Fatalf("effect color not drawn: %v", got)
	}
}

func TestSkinUsedOnlyWithoutEffect(t *testing.T) {
	dir := t.TempDir()
	if err := imaging.Save(imaging.New(4, 4, color.NRGBA{G: 200, A: 255}), filepath.Join(dir, "player.png")); err != nil {
		t.Fatal(err)
	}
	skins := memimg.New(dir)
	if err := skins.Load(); err != nil {
		t.Fatal(err)
	}
	g, err := maze.New("   ", 3, 1)
	if err != nil {
		t.Fatal(err)
	}
	p := entity.NewPlayer(structs.Cell{Col: 1})
	g.Add(p)
	r := New(skins)

	if got := rgb(r.Frame(g, structs.HUD{}), p.X(), p.Y()); got != (structs.Color{G: 200}) {
		t.Fatalf("skin not drawn: %v", got)
	}
	p.SetColor(entity.InvulnerableColor)
	if got := rgb(r.Frame(g, structs.HUD{}), p.X(), p.Y()); got != entity.InvulnerableColor {
		t.Fatalf("skin hid the effect color: %v", got)
	}
}

func TestBannerAndSave(t *testing.T) {
	g := maze.Default()
	frame := New(nil).Frame(g, structs.HUD{Status: structs.Won})
	msg := Message(structs.Won)
	if msg == "" || Message(structs.Running) != "" {
		t.Fatal("unexpected messages")
	}
	banner := Banner(frame, msg)
	if banner.Bounds() != frame.Bounds() {
		t.Fatalf("banner bounds = %v", banner.Bounds())
	}

	path := filepath.Join(t.TempDir(), "out", "run.png")
	if err := SavePNG(banner, path); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Fatalf("snapshot not written: %v", err)
	}
}
