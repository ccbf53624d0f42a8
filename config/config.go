package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// AppConfig holds the structure of the configuration
type AppConfig struct {
	TickRate           int    `json:"tickrate"`           // 每秒帧数
	EffectWindowMs     int    `json:"effectwindowms"`     // 无敌/惊吓效果持续时间
	Seed               int64  `json:"seed"`               // 随机种子，0 表示使用当前时间
	OutputDir          string `json:"outputdir"`          // 截图输出目录
	SkinDir            string `json:"skindir"`            // 实体皮肤目录
	LogFile            string `json:"logfile"`            // 日志文件，终端被游戏占用
	FrightInvulnerable bool   `json:"frightinvulnerable"` // 掉命后玩家是否同时无敌
}

var (
	instance *AppConfig
	once     sync.Once
	loadErr  error
)

func defaults() *AppConfig {
	return &AppConfig{
		TickRate:           10,
		EffectWindowMs:     5000,
		Seed:               0,
		OutputDir:          "./output",
		SkinDir:            "./skins",
		LogFile:            "pacman.log",
		FrightInvulnerable: true,
	}
}

// LoadConfig initializes and returns the instance of AppConfig
func LoadConfig(filePath string) (*AppConfig, error) {
	once.Do(func() {
		instance, loadErr = readOrCreate(filePath)
	})
	return instance, loadErr
}

// readOrCreate loads the config file if it exists, otherwise writes the defaults to it
func readOrCreate(filePath string) (*AppConfig, error) {
	cfg := defaults()
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		if err := saveConfig(filePath, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err := loadConfig(filePath, cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", filePath, err)
	}
	return cfg, nil
}

// loadConfig loads the settings from the file over the defaults
func loadConfig(filePath string, cfg *AppConfig) error {
	file, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(cfg); err != nil {
		return fmt.Errorf("decode %s: %w", filePath, err)
	}
	return nil
}

// saveConfig saves the current settings to the file
func saveConfig(filePath string, cfg *AppConfig) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(cfg)
}

func (c *AppConfig) validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("tickrate must be positive, got %d", c.TickRate)
	}
	if c.EffectWindowMs <= 0 {
		return fmt.Errorf("effectwindowms must be positive, got %d", c.EffectWindowMs)
	}
	return nil
}

// GetConfigValue returns the value of the configuration by key
func GetConfigValue(key string) interface{} {
	if instance == nil {
		return ""
	}
	switch key {
	case "tickrate":
		return instance.TickRate
	case "effectwindowms":
		return instance.EffectWindowMs
	case "seed":
		return instance.Seed
	case "outputdir":
		return instance.OutputDir
	case "skindir":
		return instance.SkinDir
	case "logfile":
		return instance.LogFile
	case "frightinvulnerable":
		return instance.FrightInvulnerable
	default:
		return ""
	}
}
