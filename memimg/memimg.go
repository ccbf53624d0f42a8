// 皮肤缓存：skins 目录下的 png 按文件名 (不含扩展名) 对应实体类型，修改后热更新
package memimg

import (
	"context"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/fsnotify/fsnotify"
)

type sizedKey struct {
	name string
	size int
}

// Cache 保存原图和按尺寸缩放后的图
type Cache struct {
	dir    string
	mu     sync.RWMutex
	skins  map[string]image.Image
	scaled map[sizedKey]image.Image
}

func New(dir string) *Cache {
	return &Cache{
		dir:    dir,
		skins:  make(map[string]image.Image),
		scaled: make(map[sizedKey]image.Image),
	}
}

// Load 载入目录下所有 png；目录不存在时视为没有皮肤
func (c *Cache) Load() error {
	entries, err := os.ReadDir(c.dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() || !isSkin(e.Name()) {
			continue
		}
		if err := c.loadFile(filepath.Join(c.dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

func isSkin(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".png")
}

func skinName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (c *Cache) loadFile(path string) error {
	img, err := imaging.Open(path)
	if err != nil {
		return fmt.Errorf("load skin %s: %w", path, err)
	}
	c.put(skinName(path), img)
	return nil
}

func (c *Cache) put(name string, img image.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.skins[name] = img
	c.dropScaled(name)
}

func (c *Cache) remove(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.skins, name)
	c.dropScaled(name)
}

// dropScaled 调用方需持有写锁
func (c *Cache) dropScaled(name string) {
	for k := range c.scaled {
		if k.name == name {
			delete(c.scaled, k)
		}
	}
}

// Get 返回缩放到 size x size 的皮肤
func (c *Cache) Get(name string, size int) (image.Image, bool) {
	key := sizedKey{name: name, size: size}
	c.mu.RLock()
	img, ok := c.scaled[key]
	src, found := c.skins[name]
	c.mu.RUnlock()
	if ok {
		return img, true
	}
	if !found || size <= 0 {
		return nil, false
	}

	img = imaging.Resize(src, size, size, imaging.Lanczos)
	c.storeScaled(key, src, img)
	return img, true
}

// storeScaled 只在原图未被热重载替换时缓存缩放结果
func (c *Cache) storeScaled(key sizedKey, src, img image.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cur, ok := c.skins[key.name]; ok && cur == src {
		c.scaled[key] = img
	}
}

// Len 返回已载入的皮肤数量
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.skins)
}

// Watch 监听目录变化并热更新，直到 ctx 结束
func (c *Cache) Watch(ctx context.Context, ready chan<- struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return err
	}
	if err := watcher.Add(c.dir); err != nil {
		return err
	}
	if ready != nil {
		close(ready)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isSkin(event.Name) {
				continue
			}
			switch {
			case event.Op&(fsnotify.Write|fsnotify.Create) != 0:
				// 文件可能还没写完，解码失败时等下一次写事件
				if err := c.loadFile(event.Name); err != nil {
					log.Printf("skin reload: %v", err)
				}
			case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				c.remove(skinName(event.Name))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("skin watcher error: %v", err)
		}
	}
}
