package image

import (
	"fmt"

	"github.com/exrgo/exr/errs"
	"github.com/exrgo/exr/level"
)

// levelKind identifies which resolution-pyramid shape a Levels[T] holds.
type levelKind uint8

const (
	levelSingular levelKind = iota
	levelMip
	levelRip
)

// Levels is a value optionally replicated across a MIP or RIP resolution
// pyramid. A non-tiled layer's channels are always Singular; a tiled
// layer's channels are Singular, Mip, or Rip according to its Tiles.Mode.
// The zero value is not useful; build one with SingularLevel, MipLevels,
// or RipLevels.
type Levels[T any] struct {
	kind     levelKind
	singular T
	mip      []T
	rip      []T
	ripX     int
	ripY     int
}

// SingularLevel wraps a single value with no resolution pyramid.
func SingularLevel[T any](v T) Levels[T] {
	return Levels[T]{kind: levelSingular, singular: v}
}

// MipLevels wraps a MIP pyramid: one value per level, indexed by the
// shared level index produced by level.LevelCount.
func MipLevels[T any](v []T) Levels[T] {
	return Levels[T]{kind: levelMip, mip: v}
}

// RipLevels wraps a RIP pyramid: levelCountX * levelCountY values in
// row-major (y-major) order, matching level.RipIndex.
func RipLevels[T any](data []T, levelCountX, levelCountY int) Levels[T] {
	return Levels[T]{kind: levelRip, rip: data, ripX: levelCountX, ripY: levelCountY}
}

// Kind reports which pyramid shape l holds: "singular", "mip", or "rip".
func (l Levels[T]) Kind() string {
	switch l.kind {
	case levelMip:
		return "mip"
	case levelRip:
		return "rip"
	default:
		return "singular"
	}
}

// IsSingular reports whether l wraps exactly one value.
func (l Levels[T]) IsSingular() bool { return l.kind == levelSingular }

// At returns the value at pyramid level (levelX, levelY).
//
// A Singular Levels only answers (0, 0). A Mip Levels only answers levels
// where levelX == levelY, per the format's own MIP-map symmetry rule. A
// Rip Levels answers any (levelX, levelY) within its extent, flattened
// via level.RipIndex. Any other request is errs.ErrInvalidLevelIndex.
func (l Levels[T]) At(levelX, levelY int) (T, error) {
	var zero T

	switch l.kind {
	case levelSingular:
		if levelX != 0 || levelY != 0 {
			return zero, fmt.Errorf("%w: singular level (%d, %d)", errs.ErrInvalidLevelIndex, levelX, levelY)
		}

		return l.singular, nil

	case levelMip:
		if levelX != levelY {
			return zero, fmt.Errorf("%w: mip level (%d, %d), x and y must match", errs.ErrInvalidLevelIndex, levelX, levelY)
		}
		if levelX < 0 || levelX >= len(l.mip) {
			return zero, fmt.Errorf("%w: mip level %d, have %d", errs.ErrInvalidLevelIndex, levelX, len(l.mip))
		}

		return l.mip[levelX], nil

	case levelRip:
		if levelX < 0 || levelX >= l.ripX || levelY < 0 || levelY >= l.ripY {
			return zero, fmt.Errorf("%w: rip level (%d, %d), have %dx%d", errs.ErrInvalidLevelIndex, levelX, levelY, l.ripX, l.ripY)
		}

		return l.rip[level.RipIndex(levelX, levelY, l.ripX)], nil

	default:
		return zero, fmt.Errorf("%w: uninitialized Levels", errs.ErrInvalidLevelIndex)
	}
}

// Count returns the number of levels along x and y: (1, 1) for Singular,
// (n, n) for Mip, (levelCountX, levelCountY) for Rip.
func (l Levels[T]) Count() (x, y int) {
	switch l.kind {
	case levelMip:
		return len(l.mip), len(l.mip)
	case levelRip:
		return l.ripX, l.ripY
	default:
		return 1, 1
	}
}

// All iterates every (levelX, levelY, value) triple in l in ascending
// level order: the single entry for Singular, 0..n for Mip, y-major for
// Rip.
func (l Levels[T]) All(yield func(levelX, levelY int, v T) bool) {
	switch l.kind {
	case levelSingular:
		yield(0, 0, l.singular)

	case levelMip:
		for i, v := range l.mip {
			if !yield(i, i, v) {
				return
			}
		}

	case levelRip:
		for y := 0; y < l.ripY; y++ {
			for x := 0; x < l.ripX; x++ {
				if !yield(x, y, l.rip[level.RipIndex(x, y, l.ripX)]) {
					return
				}
			}
		}
	}
}
