package edit

import (
	"voxedit.dev/internal/block"
	"voxedit.dev/internal/persistence/schemstore"
)

// SchemLoad decodes a stored schematic into the clipboard, replacing
// any previous one. A loaded clipboard anchors at the paste target.
func (s *Session) SchemLoad(store *schemstore.Store, name string) error {
	vol, err := store.Load(name)
	if err != nil {
		return err
	}
	s.SetClipboard(vol, block.Pos{})
	return nil
}

// SchemSave writes the clipboard to the store as Sponge v2 and returns
// the stored file name.
func (s *Session) SchemSave(store *schemstore.Store, name string, overwrite bool) (string, error) {
	vol, err := s.Clipboard()
	if err != nil {
		return "", err
	}
	return store.Save(name, vol, overwrite)
}
