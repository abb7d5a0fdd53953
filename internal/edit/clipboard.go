package edit

import "voxedit.dev/internal/block"

// Clipboard holds a captured volume plus the capture-time anchor:
// CaptureOffset is the player position minus the selection min, so a
// later paste at target places the volume at target-CaptureOffset.
type Clipboard struct {
	Volume        *block.Volume
	CaptureOffset block.Pos
}

// Copy captures the selection footprint into a fresh clipboard,
// replacing any previous one. Selection admission matches the region
// operations. Returns the captured cell count.
func (s *Session) Copy(r Reader, playerPos block.Pos) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	min, dims, err := s.sel.footprint()
	if err != nil {
		return 0, err
	}
	vol := snapshot(r, min, dims)
	s.clip = &Clipboard{Volume: vol, CaptureOffset: playerPos.Sub(min)}
	return vol.Len(), nil
}

// SetClipboard installs a volume loaded from a schematic file. Loaded
// clipboards anchor at the paste target, so the capture offset is zero
// unless the caller supplies one.
func (s *Session) SetClipboard(vol *block.Volume, captureOffset block.Pos) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clip = &Clipboard{Volume: vol, CaptureOffset: captureOffset}
}

// Clipboard returns the current clipboard volume, or ErrNoClipboard.
// The volume is shared; callers must not mutate it.
func (s *Session) Clipboard() (*block.Volume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.clip == nil {
		return nil, ErrNoClipboard
	}
	return s.clip.Volume, nil
}

// PlanPaste stamps the clipboard at target-CaptureOffset. Air cells in
// the clipboard overwrite the destination. The destination footprint is
// snapshotted for undo before any write.
func (s *Session) PlanPaste(r Reader, target block.Pos) (*Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.clip == nil {
		return nil, ErrNoClipboard
	}
	origin := target.Sub(s.clip.CaptureOffset)
	w, h, l := s.clip.Volume.Dims()
	prior := snapshot(r, origin, block.Pos{X: w, Y: h, Z: l})
	writes := make([]Write, 0, s.clip.Volume.Len())
	s.clip.Volume.ForEach(func(x, y, z int, st block.State) {
		writes = append(writes, Write{
			Pos:   block.Pos{X: origin.X + x, Y: origin.Y + y, Z: origin.Z + z},
			State: st,
		})
	})
	return s.newPlan("paste", writes, prior), nil
}

func (s *Session) Paste(r Reader, a Applier, target block.Pos) (int, error) {
	p, err := s.PlanPaste(r, target)
	return apply(a, p, err)
}
