package game

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
)

var spriteFiles = [spriteCount]string{
	SpritePlayer: "player.png",
	SpriteBullet: "bullet.png",
}

// LoadSprites decodes the sprite textures from the resource directory
// and uploads them. A missing or corrupt file is a fatal startup error.
func (r *Renderer) LoadSprites(dir string) error {
	for id, name := range spriteFiles {
		path := filepath.Join(dir, "img", name)
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("sprite: %w", err)
		}
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("decode %s: %w", name, err)
		}
		r.textures[id] = uploadTexture(img)
	}
	return nil
}
