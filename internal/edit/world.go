package edit

import "voxedit.dev/internal/block"

// Reader is the host world's read primitive. It must be defined for all
// loaded positions; unloaded space is the host's concern.
type Reader interface {
	ReadBlock(p block.Pos) block.State
}

// Writer is the host world's write primitive. The host mutates world
// state on one designated goroutine; see Dispatcher.
type Writer interface {
	WriteBlock(p block.Pos, s block.State)
}

// World combines both sides of the host accessor.
type World interface {
	Reader
	Writer
}

// Write is one pending block mutation within a plan's batch.
type Write struct {
	Pos   block.Pos
	State block.State
}

// snapshot reads a dims-sized footprint anchored at min into a fresh
// volume. The volume's origin records the anchor so writes can be
// replayed later.
func snapshot(r Reader, min, dims block.Pos) *block.Volume {
	vol, _ := block.NewVolume(dims.X, dims.Y, dims.Z, min)
	for y := 0; y < dims.Y; y++ {
		for z := 0; z < dims.Z; z++ {
			for x := 0; x < dims.X; x++ {
				vol.Set(x, y, z, r.ReadBlock(block.Pos{X: min.X + x, Y: min.Y + y, Z: min.Z + z}))
			}
		}
	}
	return vol
}
