package window

import (
	"fmt"
	_ "image/png" // PNG decoder for sprite files
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/missile-protector/internal/config"
)

// Sprites holds the images a variant draws with. A nil image is drawn as a
// plain shape.
type Sprites struct {
	Object *ebiten.Image
	Paddle *ebiten.Image
}

// SpritePaths returns the files a variant needs, resolved against dir.
func SpritePaths(dir string, cfg config.SpritesConfig) (object, paddle string) {
	if cfg.Object != "" {
		object = filepath.Join(dir, cfg.Object)
	}
	if cfg.Paddle != "" {
		paddle = filepath.Join(dir, cfg.Paddle)
	}
	return object, paddle
}

// LoadSprites loads the images named by cfg from dir. Any file that cannot
// be loaded is an error; the game cannot run without its assets.
func LoadSprites(dir string, cfg config.SpritesConfig) (Sprites, error) {
	var s Sprites
	objectPath, paddlePath := SpritePaths(dir, cfg)

	var err error
	if s.Object, err = loadImage(objectPath); err != nil {
		return Sprites{}, err
	}
	if s.Paddle, err = loadImage(paddlePath); err != nil {
		return Sprites{}, err
	}
	return s, nil
}

func loadImage(path string) (*ebiten.Image, error) {
	if path == "" {
		return nil, nil
	}
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot load sprite %s: %w", path, err)
	}
	return img, nil
}
