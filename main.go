package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hoshinonyaruko/pacman-in-im/config"
	"github.com/hoshinonyaruko/pacman-in-im/effect"
	"github.com/hoshinonyaruko/pacman-in-im/game"
	"github.com/hoshinonyaruko/pacman-in-im/memimg"
	"github.com/hoshinonyaruko/pacman-in-im/render"
	"github.com/hoshinonyaruko/pacman-in-im/structs"
	"github.com/hoshinonyaruko/pacman-in-im/terminal"
)

func main() {
	// Initialize the configuration
	cfg, err := config.LoadConfig("./config.json")
	if err != nil {
		log.Fatalf("Failed to load config: %s", err)
	}
	EnsureFoldersExist(cfg.OutputDir, cfg.SkinDir)

	// 终端被游戏占用，日志写到文件
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		log.Fatalf("Failed to open log file %s: %s", cfg.LogFile, err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	// 载入皮肤并监听热更新
	skins := memimg.New(cfg.SkinDir)
	if err := skins.Load(); err != nil {
		log.Printf("Failed to load skins: %s", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if err := skins.Watch(ctx, nil); err != nil {
			log.Printf("Skin watcher stopped: %s", err)
		}
	}()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts := game.DefaultOptions()
	opts.Rand = rand.New(rand.NewSource(seed))
	opts.Effect = effect.Options{
		Window:                      time.Duration(cfg.EffectWindowMs) * time.Millisecond,
		FrightGrantsInvulnerability: cfg.FrightInvulnerable,
	}
	opts.Logf = log.Printf
	g, err := game.New(game.DefaultSetup(), opts)
	if err != nil {
		log.Fatalf("Failed to set up game: %s", err)
	}
	log.Printf("game %s started, seed %d, %d coins", g.ID, seed, g.Total())

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %s", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %s", err)
	}
	defer screen.Fini()

	run(g, terminal.New(screen), render.New(skins))
}

// run 是帧循环：收集输入、推进一帧、绘制
func run(g *game.Game, front *terminal.Frontend, painter *render.Renderer) {
	front.Start()
	defer front.Stop()
	// 从配置单例读取帧率和输出目录
	tickRate := config.GetConfigValue("tickrate").(int)
	outputDir := config.GetConfigValue("outputdir").(string)
	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	snapshot := func(name string, status structs.Status) {
		img := painter.Frame(g.Grid(), g.HUD())
		if msg := render.Message(status); msg != "" {
			img = render.Banner(img, msg)
		}
		fileName := filepath.Join(outputDir, name+".png")
		if err := render.SavePNG(img, fileName); err != nil {
			log.Printf("Failed to save snapshot %s: %s", fileName, err)
			return
		}
		log.Printf("snapshot saved to %s", fileName)
	}

	frame := 0
	for range ticker.C {
		frame++
		batch := front.Drain()
		if batch.Quit {
			log.Printf("game %s quit", g.ID)
			return
		}
		res := g.Tick(batch.Input)
		front.Draw(g.Grid(), g.HUD())
		if batch.Snapshot {
			snapshot(fmt.Sprintf("%s_%d", g.ID, frame), res.Status)
		}

		if res.Status != structs.Running {
			front.Banner(g.Grid(), render.Message(res.Status))
			snapshot(g.ID, res.Status)
			time.Sleep(3 * time.Second)
			return
		}
	}
}

// EnsureFoldersExist 检查并创建必需的文件夹
func EnsureFoldersExist(folders ...string) {
	for _, folder := range folders {
		if _, err := os.Stat(folder); os.IsNotExist(err) {
			// 文件夹不存在，尝试创建它
			if err := os.MkdirAll(folder, 0755); err != nil {
				log.Fatalf("Failed to create %s directory: %s", folder, err)
			}
			log.Printf("Created %s directory", folder)
		}
	}
}
