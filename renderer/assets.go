package renderer

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/komodo/components"
	"github.com/pthm-cable/komodo/config"
	"github.com/pthm-cable/komodo/game"
)

const placeholderSize = 64

// Assets loads frame sequences from disk as textures. Anything that fails to
// load is replaced with magenta placeholder frames so the game keeps running.
// Must be used after the raylib window is created.
type Assets struct {
	dir    string
	cfg    *config.Config
	logger *slog.Logger

	cache  map[string]components.Frames
	frames []*Frame
}

// NewAssets creates an asset provider rooted at dir.
func NewAssets(dir string, cfg *config.Config, logger *slog.Logger) *Assets {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assets{
		dir:    dir,
		cfg:    cfg,
		logger: logger,
		cache:  make(map[string]components.Frames),
	}
}

// LoadFrames implements game.Assets. Results are cached per id.
func (a *Assets) LoadFrames(id string) components.Frames {
	if frames, ok := a.cache[id]; ok {
		return frames
	}

	var frames components.Frames
	if id == game.FramesBurst {
		frames = a.burstFrames()
	} else {
		frames = a.load(id)
	}
	a.cache[id] = frames
	return frames
}

func (a *Assets) load(id string) components.Frames {
	ac, ok := a.cfg.Assets[id]
	if !ok {
		a.logger.Warn("asset_placeholder", "id", id, "reason", "not configured")
		return a.placeholders(1, placeholderSize, placeholderSize)
	}
	count := max(ac.Count, 1)
	w, h := a.scaleOf(ac)

	if ac.Sheet != [2]float32{} {
		return a.loadSheet(id, ac, count, w, h)
	}

	frames := make(components.Frames, 0, count)
	for i := 0; i < count; i++ {
		path := ac.Path
		if strings.Contains(path, "%d") {
			path = fmt.Sprintf(path, i+1)
		}
		img := rl.LoadImage(filepath.Join(a.dir, path))
		if !imageValid(img) {
			a.logger.Warn("asset_placeholder", "id", id, "path", path, "frame", i)
			frames = append(frames, a.placeholder(w, h))
			continue
		}
		frames = append(frames, a.upload(img, w, h))
		rl.UnloadImage(img)
	}
	return frames
}

// loadSheet slices a horizontal sheet into count frames.
func (a *Assets) loadSheet(id string, ac config.AssetConfig, count int, w, h int32) components.Frames {
	sheet := rl.LoadImage(filepath.Join(a.dir, ac.Path))
	if !imageValid(sheet) {
		a.logger.Warn("asset_placeholder", "id", id, "path", ac.Path)
		return a.placeholders(count, w, h)
	}
	defer rl.UnloadImage(sheet)

	fw, fh := ac.Sheet[0], ac.Sheet[1]
	frames := make(components.Frames, 0, count)
	for i := 0; i < count; i++ {
		sub := rl.ImageFromImage(*sheet, rl.NewRectangle(float32(i)*fw, 0, fw, fh))
		frames = append(frames, a.upload(&sub, w, h))
		rl.UnloadImage(&sub)
	}
	return frames
}

// scaleOf returns the target frame size, falling back to the pet sprite size.
func (a *Assets) scaleOf(ac config.AssetConfig) (int32, int32) {
	if ac.Scale != [2]float32{} {
		return int32(ac.Scale[0]), int32(ac.Scale[1])
	}
	if ac.Sheet != [2]float32{} {
		return int32(ac.Sheet[0]), int32(ac.Sheet[1])
	}
	size := int32(a.cfg.Pet.SpriteSize)
	return size, size
}

// upload resizes img in place when needed and turns it into a texture.
func (a *Assets) upload(img *rl.Image, w, h int32) *Frame {
	if w > 0 && h > 0 && (img.Width != w || img.Height != h) {
		rl.ImageResize(img, w, h)
	}
	f := &Frame{Texture: rl.LoadTextureFromImage(img)}
	a.frames = append(a.frames, f)
	return f
}

// placeholder draws a magenta tile with a crossed outline.
func (a *Assets) placeholder(w, h int32) *Frame {
	img := rl.GenImageColor(int(w), int(h), rl.Magenta)
	rl.ImageDrawRectangleLines(img, rl.NewRectangle(0, 0, float32(w), float32(h)), 2, rl.Black)
	rl.ImageDrawLine(img, 0, 0, w-1, h-1, rl.Black)
	rl.ImageDrawLine(img, w-1, 0, 0, h-1, rl.Black)
	f := a.upload(img, w, h)
	rl.UnloadImage(img)
	return f
}

func (a *Assets) placeholders(n int, w, h int32) components.Frames {
	frames := make(components.Frames, n)
	for i := range frames {
		frames[i] = a.placeholder(w, h)
	}
	return frames
}

// burstFrames generates the transition effect: a white disc that swells and
// shrinks back.
func (a *Assets) burstFrames() components.Frames {
	frames := make(components.Frames, 0, len(a.cfg.Effect.Sizes))
	for _, size := range a.cfg.Effect.Sizes {
		d := int32(size)
		img := rl.GenImageColor(size, size, rl.Blank)
		rl.ImageDrawCircle(img, d/2, d/2, d/2, rl.NewColor(255, 240, 200, 230))
		frames = append(frames, a.upload(img, d, d))
		rl.UnloadImage(img)
	}
	return frames
}

// Texture returns the first frame of id, for backgrounds and logos.
func (a *Assets) Texture(id string) rl.Texture2D {
	frames := a.LoadFrames(id)
	return frames[0].(*Frame).Texture
}

// Unload frees every texture handed out.
func (a *Assets) Unload() {
	for _, f := range a.frames {
		rl.UnloadTexture(f.Texture)
	}
	a.frames = nil
	a.cache = make(map[string]components.Frames)
}

func imageValid(img *rl.Image) bool {
	return img != nil && img.Width > 0 && img.Height > 0
}
