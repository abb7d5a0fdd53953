package edit

import "voxedit.dev/internal/block"

// Region operations. Each Plan* method admits the session's selection
// (both corners set, footprint within MaxBlocks), snapshots the prior
// cells for undo, and returns the write batch; rejection leaves the
// world, clipboard and undo slot untouched. The paired convenience
// method plans and applies in one call.

// PlanFill sets every cell of the selection to target.
func (s *Session) PlanFill(r Reader, target block.State) (*Plan, error) {
	return s.planRegion(r, "fill", func(cur block.State) (block.State, bool) {
		return target, true
	})
}

func (s *Session) Fill(r Reader, a Applier, target block.State) (int, error) {
	p, err := s.PlanFill(r, target)
	return apply(a, p, err)
}

// PlanReplace sets cells currently equal to from to to; other cells are
// visited but not rewritten.
func (s *Session) PlanReplace(r Reader, from, to block.State) (*Plan, error) {
	return s.planRegion(r, "replace", func(cur block.State) (block.State, bool) {
		return to, cur == from
	})
}

func (s *Session) Replace(r Reader, a Applier, from, to block.State) (int, error) {
	p, err := s.PlanReplace(r, from, to)
	return apply(a, p, err)
}

// PlanClear fills the selection with air.
func (s *Session) PlanClear(r Reader) (*Plan, error) {
	return s.planRegion(r, "clear", func(cur block.State) (block.State, bool) {
		return block.Air, true
	})
}

func (s *Session) Clear(r Reader, a Applier) (int, error) {
	p, err := s.PlanClear(r)
	return apply(a, p, err)
}

// PlanWalls sets target on every cell whose x or z lies on the
// selection's boundary, across the full height; interior columns are
// untouched.
func (s *Session) PlanWalls(r Reader, target block.State) (*Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	min, dims, err := s.sel.footprint()
	if err != nil {
		return nil, err
	}
	prior := snapshot(r, min, dims)
	var writes []Write
	for y := 0; y < dims.Y; y++ {
		for z := 0; z < dims.Z; z++ {
			for x := 0; x < dims.X; x++ {
				if x != 0 && x != dims.X-1 && z != 0 && z != dims.Z-1 {
					continue
				}
				writes = append(writes, Write{
					Pos:   block.Pos{X: min.X + x, Y: min.Y + y, Z: min.Z + z},
					State: target,
				})
			}
		}
	}
	return s.newPlan("walls", writes, prior), nil
}

func (s *Session) Walls(r Reader, a Applier, target block.State) (int, error) {
	p, err := s.PlanWalls(r, target)
	return apply(a, p, err)
}

// PlanHollow clears every cell strictly inside all six faces, keeping
// the boundary shell, floor and ceiling included. Selections with any
// dimension of 2 or less have no interior and plan zero writes.
func (s *Session) PlanHollow(r Reader) (*Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	min, dims, err := s.sel.footprint()
	if err != nil {
		return nil, err
	}
	prior := snapshot(r, min, dims)
	var writes []Write
	for y := 1; y < dims.Y-1; y++ {
		for z := 1; z < dims.Z-1; z++ {
			for x := 1; x < dims.X-1; x++ {
				writes = append(writes, Write{
					Pos:   block.Pos{X: min.X + x, Y: min.Y + y, Z: min.Z + z},
					State: block.Air,
				})
			}
		}
	}
	return s.newPlan("hollow", writes, prior), nil
}

func (s *Session) Hollow(r Reader, a Applier) (int, error) {
	p, err := s.PlanHollow(r)
	return apply(a, p, err)
}

// planRegion snapshots the selection footprint and builds writes from a
// per-cell rule over the prior state.
func (s *Session) planRegion(r Reader, op string, rule func(cur block.State) (block.State, bool)) (*Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	min, dims, err := s.sel.footprint()
	if err != nil {
		return nil, err
	}
	prior := snapshot(r, min, dims)
	var writes []Write
	prior.ForEach(func(x, y, z int, cur block.State) {
		next, ok := rule(cur)
		if !ok {
			return
		}
		writes = append(writes, Write{
			Pos:   block.Pos{X: min.X + x, Y: min.Y + y, Z: min.Z + z},
			State: next,
		})
	})
	return s.newPlan(op, writes, prior), nil
}

func apply(a Applier, p *Plan, err error) (int, error) {
	if err != nil {
		return 0, err
	}
	return a.ApplyBatch(p), nil
}
