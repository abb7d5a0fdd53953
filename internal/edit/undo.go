package edit

import "voxedit.dev/internal/block"

// PlanUndo replays the prior-state snapshot of the most recent mutating
// operation. Applying the plan clears the slot, so a second undo with
// no intervening mutation fails with ErrNoHistory.
func (s *Session) PlanUndo() (*Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.undo == nil {
		return nil, ErrNoHistory
	}
	min := s.undo.Origin()
	writes := make([]Write, 0, s.undo.Len())
	s.undo.ForEach(func(x, y, z int, st block.State) {
		writes = append(writes, Write{
			Pos:   block.Pos{X: min.X + x, Y: min.Y + y, Z: min.Z + z},
			State: st,
		})
	})
	p := s.newPlan("undo", writes, nil)
	w, h, l := s.undo.Dims()
	p.origin, p.dims = min, block.Pos{X: w, Y: h, Z: l}
	return p, nil
}

func (s *Session) Undo(a Applier) (int, error) {
	p, err := s.PlanUndo()
	return apply(a, p, err)
}
