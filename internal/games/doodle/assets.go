package doodle

import (
	"fmt"

	"github.com/vovakirdan/tui-doodle/internal/core"
)

// Frame is one image of a sprite: a rune pattern repeated across the
// sprite's width, drawn in a single color.
type Frame struct {
	Pattern string
	Color   core.Color
}

// AssetTable holds every sprite the game draws. It is built once at startup
// and passed into sessions.
type AssetTable struct {
	Platforms map[Kind][]Frame

	ActorLeft  Frame
	ActorRight Frame
	ActorFront Frame // Shown while boosting

	Hat []Frame
}

// DefaultAssets returns the built-in terminal sprites.
func DefaultAssets() *AssetTable {
	return &AssetTable{
		Platforms: map[Kind][]Frame{
			KindStill: {
				{Pattern: "▀", Color: core.ColorGreen},
			},
			KindMoving: {
				{Pattern: "◂▀▀▸", Color: core.ColorBlue},
				{Pattern: "▀◂▸▀", Color: core.ColorBlue},
			},
			KindBreakable: {
				{Pattern: "▀", Color: core.ColorOrange},
				{Pattern: "▀▀▀ ", Color: core.ColorOrange},
				{Pattern: "▀ ▀ ", Color: core.ColorOrange},
				{Pattern: "▘  ▝", Color: core.ColorOrange},
			},
			KindCloud: {
				{Pattern: "▓", Color: core.ColorBrightWhite},
				{Pattern: "▒", Color: core.ColorWhite},
				{Pattern: "░", Color: core.ColorGray},
				{Pattern: "·  ", Color: core.ColorGray},
			},
			KindBounce: {
				{Pattern: "▄", Color: core.ColorYellow},
				{Pattern: "▂", Color: core.ColorYellow},
				{Pattern: "▁", Color: core.ColorYellow},
				{Pattern: "▂", Color: core.ColorYellow},
			},
			KindSpiked: {
				{Pattern: "▲▀", Color: core.ColorRed},
				{Pattern: "▀▲", Color: core.ColorRed},
			},
		},
		ActorLeft:  Frame{Pattern: "◀▌", Color: core.ColorCyan},
		ActorRight: Frame{Pattern: "▐▶", Color: core.ColorCyan},
		ActorFront: Frame{Pattern: "▐▌", Color: core.ColorCyan},
		Hat: []Frame{
			{Pattern: "^", Color: core.ColorMagenta},
			{Pattern: "ᐱ", Color: core.ColorMagenta},
		},
	}
}

// Validate checks that every spawnable kind and the hat have frames.
func (t *AssetTable) Validate() error {
	for _, k := range spawnableKinds {
		if len(t.Platforms[k]) == 0 {
			return fmt.Errorf("%w: no frames for %s platform", ErrMissingCollaborator, k)
		}
	}
	if len(t.Hat) == 0 {
		return fmt.Errorf("%w: no hat frames", ErrMissingCollaborator)
	}
	return nil
}
