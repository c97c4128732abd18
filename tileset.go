package tileworld

import (
	"encoding/json"
	"fmt"
	"image"
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// TileKind identifies one tile in a tileset. The set of kinds is closed and
// known at build time; tilesets map each kind to a sheet region.
type TileKind uint8

const (
	TileFloorNormal TileKind = iota
	TileFloorTextured1
	TileFloorTextured2
	TileFloorTextured3
	TileFloorTextured4
	TileHeroRest0
	TileHeroRest1
	TileHeroRest2
	TileHeroN0
	TileHeroN1
	TileHeroS0
	TileHeroS1
	TileHeroE0
	TileHeroE1
	TileHeroW0
	TileHeroW1
	tileKindCount // sentinel
)

var tileKindNames = [tileKindCount]string{
	TileFloorNormal:    "floor_normal",
	TileFloorTextured1: "floor_textured_1",
	TileFloorTextured2: "floor_textured_2",
	TileFloorTextured3: "floor_textured_3",
	TileFloorTextured4: "floor_textured_4",
	TileHeroRest0:      "hero_rest_0",
	TileHeroRest1:      "hero_rest_1",
	TileHeroRest2:      "hero_rest_2",
	TileHeroN0:         "hero_n_0",
	TileHeroN1:         "hero_n_1",
	TileHeroS0:         "hero_s_0",
	TileHeroS1:         "hero_s_1",
	TileHeroE0:         "hero_e_0",
	TileHeroE1:         "hero_e_1",
	TileHeroW0:         "hero_w_0",
	TileHeroW1:         "hero_w_1",
}

// String returns the sheet name of the kind, or "tile(N)" for values outside
// the enumeration.
func (k TileKind) String() string {
	if k < tileKindCount {
		return tileKindNames[k]
	}
	return fmt.Sprintf("tile(%d)", uint8(k))
}

// ParseTileKind resolves a sheet name to its TileKind.
func ParseTileKind(name string) (TileKind, error) {
	for k, n := range tileKindNames {
		if n == name {
			return TileKind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTile, name)
}

// TextureRegion describes a sub-rectangle within a tileset sheet, in sheet pixels.
type TextureRegion struct {
	X, Y          uint16
	Width, Height uint16
}

// Rect returns the region as an image.Rectangle suitable for SubImage.
func (r TextureRegion) Rect() image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.X)+int(r.Width), int(r.Y)+int(r.Height))
}

// TileRecord is everything needed to paint one tile: the sheet it comes from,
// the source rectangle on that sheet, its on-screen size and a tint.
// Records are plain values; each grid cell holds its own copies.
type TileRecord struct {
	Kind   TileKind
	Width  int // destination width in pixels
	Height int // destination height in pixels
	Source *ebiten.Image
	Region TextureRegion
	// Tint multiplies the tile's colors. The zero Color means untinted and
	// paints like ColorWhite; use a non-zero color with A == 0 to hide a tile.
	Tint   Color
}

// paintTint returns the color a record is multiplied by when painted.
func (r TileRecord) paintTint() Color {
	if r.Tint == (Color{}) {
		return ColorWhite
	}
	return r.Tint
}

type tileEntry struct {
	registered     bool
	xIndex, yIndex int
	w, h           int // in base tiles
}

// Tileset maps every registered TileKind to a region of one sheet image.
type Tileset struct {
	page        *ebiten.Image
	baseWidth   int
	baseHeight  int
	scaleFactor int
	entries     [tileKindCount]tileEntry
}

// NewTileset creates an empty tileset over page. baseWidth and baseHeight are
// the size of one sheet cell; scaleFactor multiplies the on-screen size.
// page may be nil for headless use.
func NewTileset(page *ebiten.Image, baseWidth, baseHeight, scaleFactor int) *Tileset {
	if scaleFactor <= 0 {
		scaleFactor = 1
	}
	return &Tileset{
		page:        page,
		baseWidth:   max(baseWidth, 1),
		baseHeight:  max(baseHeight, 1),
		scaleFactor: scaleFactor,
	}
}

// simpleMoodCells are the sheet cells of the 16x16 simple-mood sheet, all one
// base tile in size.
var simpleMoodCells = [tileKindCount]struct{ x, y int }{
	TileFloorNormal:    {11, 13},
	TileFloorTextured1: {0, 11},
	TileFloorTextured2: {1, 11},
	TileFloorTextured3: {2, 11},
	TileFloorTextured4: {0, 0},

	TileHeroRest0: {0, 4},
	TileHeroRest1: {1, 0},
	TileHeroRest2: {2, 0},

	TileHeroN0: {14, 1},
	TileHeroN1: {8, 1},
	TileHeroS0: {15, 1},
	TileHeroS1: {9, 1},
	TileHeroE0: {0, 1},
	TileHeroE1: {10, 1},
	TileHeroW0: {1, 1},
	TileHeroW1: {11, 1},
}

// NewSimpleMoodTileset returns the tileset for the 16x16 simple-mood sheet,
// scaled 2x so every tile is 32x32 on screen.
func NewSimpleMoodTileset(page *ebiten.Image) *Tileset {
	ts := NewTileset(page, 16, 16, 2)
	for k, c := range simpleMoodCells {
		if err := ts.Register(TileKind(k), c.x, c.y, 1, 1); err != nil {
			panic(err)
		}
	}
	return ts
}

// Register assigns the sheet cell range starting at (xIndex, yIndex) and
// spanning w x h base tiles to kind. The range must start at a non-negative
// index, span at least one tile and lie within the 65535 pixel range of a
// TextureRegion; otherwise ErrInvalidRegion is returned and the tileset is
// unchanged.
func (ts *Tileset) Register(kind TileKind, xIndex, yIndex, w, h int) error {
	if kind >= tileKindCount {
		return fmt.Errorf("register %s: %w", kind, ErrUnknownTile)
	}
	if xIndex < 0 || yIndex < 0 || w < 1 || h < 1 ||
		!fitsRegion(xIndex, w, ts.baseWidth) || !fitsRegion(yIndex, h, ts.baseHeight) {
		return fmt.Errorf("register %s at (%d,%d) size %dx%d: %w", kind, xIndex, yIndex, w, h, ErrInvalidRegion)
	}
	ts.entries[kind] = tileEntry{registered: true, xIndex: xIndex, yIndex: yIndex, w: w, h: h}
	return nil
}

// fitsRegion reports whether cells [index, index+span) of size base end
// within the uint16 range of a TextureRegion.
func fitsRegion(index, span, base int) bool {
	const limit = math.MaxUint16
	return index <= limit/base && span <= limit/base && (index+span)*base <= limit
}

// Page returns the sheet image.
func (ts *Tileset) Page() *ebiten.Image {
	return ts.page
}

// Record returns a white-tinted TileRecord for kind, or an error wrapping
// ErrUnknownTile if the kind was never registered.
func (ts *Tileset) Record(kind TileKind) (TileRecord, error) {
	if kind >= tileKindCount || !ts.entries[kind].registered {
		return TileRecord{}, fmt.Errorf("%w: %s", ErrUnknownTile, kind)
	}
	e := ts.entries[kind]
	return TileRecord{
		Kind:   kind,
		Width:  e.w * ts.baseWidth * ts.scaleFactor,
		Height: e.h * ts.baseHeight * ts.scaleFactor,
		Source: ts.page,
		Region: TextureRegion{
			X:      uint16(e.xIndex * ts.baseWidth),
			Y:      uint16(e.yIndex * ts.baseHeight),
			Width:  uint16(e.w * ts.baseWidth),
			Height: uint16(e.h * ts.baseHeight),
		},
		Tint: ColorWhite,
	}, nil
}

// RandomFloor picks a floor kind: one in fifty for each of the four textured
// variants, the plain floor otherwise.
func RandomFloor(rng *rand.Rand) TileKind {
	switch chance := rng.IntN(50); chance {
	case 0, 1, 2, 3:
		return TileFloorTextured1 + TileKind(chance)
	default:
		return TileFloorNormal
	}
}

// tilesetFile is the JSON layout accepted by LoadTilesetJSON.
type tilesetFile struct {
	BaseWidth  int                        `json:"baseWidth"`
	BaseHeight int                        `json:"baseHeight"`
	Scale      int                        `json:"scale"`
	Tiles      map[string]tilesetFileCell `json:"tiles"`
}

type tilesetFileCell struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// LoadTilesetJSON parses a tileset description and binds it to page. Every
// tile name must be a known TileKind name.
func LoadTilesetJSON(jsonData []byte, page *ebiten.Image) (*Tileset, error) {
	var f tilesetFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("parse tileset: %w", err)
	}
	if f.BaseWidth <= 0 || f.BaseHeight <= 0 {
		return nil, fmt.Errorf("parse tileset: base size %dx%d must be positive", f.BaseWidth, f.BaseHeight)
	}
	ts := NewTileset(page, f.BaseWidth, f.BaseHeight, f.Scale)
	for name, c := range f.Tiles {
		kind, err := ParseTileKind(name)
		if err != nil {
			return nil, fmt.Errorf("parse tileset: %w", err)
		}
		w, h := c.W, c.H
		if w == 0 {
			w = 1
		}
		if h == 0 {
			h = 1
		}
		if err := ts.Register(kind, c.X, c.Y, w, h); err != nil {
			return nil, fmt.Errorf("parse tileset: %w", err)
		}
	}
	return ts, nil
}
