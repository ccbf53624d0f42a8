// 绘图：迷宫、实体和信息面板画到 gg 画布上，可保存为 png
package render

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/hoshinonyaruko/pacman-in-im/entity"
	"github.com/hoshinonyaruko/pacman-in-im/maze"
	"github.com/hoshinonyaruko/pacman-in-im/memimg"
	"github.com/hoshinonyaruko/pacman-in-im/structs"
)

// PanelCells 是右侧信息面板的宽度 (格子数)
const PanelCells = 6

type Renderer struct {
	skins *memimg.Cache
	// 墙体图层缓存，按迷宫缓存
	walls sync.Map
}

// New 的 skins 可以为 nil，此时实体一律画成圆
func New(skins *memimg.Cache) *Renderer {
	return &Renderer{skins: skins}
}

// Size 返回画布尺寸
func Size(g *maze.Grid) (int, int) {
	return (g.Width() + PanelCells) * g.CellSize(), g.Height() * g.CellSize()
}

// Frame 渲染一帧
func (r *Renderer) Frame(g *maze.Grid, hud structs.HUD) image.Image {
	width, height := Size(g)
	dc := gg.NewContext(width, height)
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	dc.DrawImage(r.wallLayer(g), 0, 0)

	for _, e := range g.Entities() {
		r.drawEntity(dc, e)
	}
	drawHUD(dc, g, hud)
	return dc.Image()
}

func (r *Renderer) wallLayer(g *maze.Grid) image.Image {
	if cached, ok := r.walls.Load(g); ok {
		return cached.(image.Image)
	}
	width, height := Size(g)
	size := float64(g.CellSize())
	dc := gg.NewContext(width, height)
	dc.SetRGB255(0, 0, 255)
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			if g.IsWall(col, row) {
				dc.DrawRectangle(float64(col)*size, float64(row)*size, size, size)
			}
		}
	}
	dc.Fill()
	img := dc.Image()
	r.walls.Store(g, img)
	return img
}

func (r *Renderer) drawEntity(dc *gg.Context, e entity.Entity) {
	// 带效果的实体不用皮肤，保留颜色提示
	if r.skins != nil && e.Color() == entity.DefaultColor(e.Kind()) {
		if skin, ok := r.skins.Get(e.Kind().String(), e.Width()); ok {
			dc.DrawImageAnchored(skin, e.X(), e.Y(), 0.5, 0.5)
			return
		}
	}
	c := e.Color()
	dc.SetRGB255(int(c.R), int(c.G), int(c.B))
	dc.DrawCircle(float64(e.X()), float64(e.Y()), float64(e.Width())/2)
	dc.Fill()
}

func drawHUD(dc *gg.Context, g *maze.Grid, hud structs.HUD) {
	x := float64(g.Width()*g.CellSize() + 10)
	dc.SetRGB(1, 1, 1)
	dc.DrawString(fmt.Sprintf("Lives: %d", hud.Lives), x, 30)
	dc.DrawString(fmt.Sprintf("Coins: %d/%d", hud.Coins, hud.Total), x, 70)
}

// Message 返回结束时的提示文字
func Message(status structs.Status) string {
	switch status {
	case structs.Won:
		return "You won!"
	case structs.Lost:
		return "You lost!"
	}
	return ""
}

// Banner 把画面模糊后在中间写上提示
func Banner(frame image.Image, message string) image.Image {
	blurred := imaging.Blur(frame, 4)
	dc := gg.NewContextForImage(blurred)
	w, h := float64(dc.Width()), float64(dc.Height())
	dc.SetRGB(1, 1, 1)
	dc.ScaleAbout(3, 3, w/2, h/2)
	dc.DrawStringAnchored(message, w/2, h/2, 0.5, 0.5)
	return dc.Image()
}

// SavePNG 保存图片，目录不存在时创建
func SavePNG(img image.Image, fileName string) error {
	if err := os.MkdirAll(filepath.Dir(fileName), os.ModePerm); err != nil {
		return err
	}
	return gg.SavePNG(fileName, img)
}
