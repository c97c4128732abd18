package tileworld

import "errors"

var (
	// ErrOutOfBounds is returned when a grid write targets a cell outside the
	// grid extent. The grid is left unchanged.
	ErrOutOfBounds = errors.New("tileworld: cell out of bounds")

	// ErrUnknownTile is returned when a Tileset is asked for a TileKind it has
	// no record for. It indicates a configuration mistake and aborts the
	// current build step.
	ErrUnknownTile = errors.New("tileworld: unregistered tile kind")

	// ErrInvalidRegion is returned when a tile is registered at a sheet
	// position that cannot be expressed as a TextureRegion.
	ErrInvalidRegion = errors.New("tileworld: invalid sheet region")
)
