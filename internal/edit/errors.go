package edit

import (
	"errors"
	"io/fs"

	"voxedit.dev/internal/catalogs"
	"voxedit.dev/internal/nbt"
	"voxedit.dev/internal/persistence/schemstore"
)

var (
	ErrSelectionIncomplete = errors.New("selection incomplete")
	ErrSelectionTooLarge   = errors.New("selection too large")
	ErrNoClipboard         = errors.New("no clipboard")
	ErrNoHistory           = errors.New("no undo history")
)

// Stable codes for the command layer. The engine never renders
// user-facing text; callers translate these.
const (
	CodeSelectionIncomplete = "E_SELECTION_INCOMPLETE"
	CodeSelectionTooLarge   = "E_SELECTION_TOO_LARGE"
	CodeUnknownBlock        = "E_UNKNOWN_BLOCK"
	CodeNoClipboard         = "E_NO_CLIPBOARD"
	CodeNoHistory           = "E_NO_HISTORY"
	CodeFormat              = "E_FORMAT"
	CodeCompression         = "E_COMPRESSION"
	CodeFileNotFound        = "E_FILE_NOT_FOUND"
	CodeFileExists          = "E_FILE_EXISTS"
	CodeIO                  = "E_IO"
)

// Code classifies err into one of the stable codes above, or "" for nil.
func Code(err error) string {
	var fe *nbt.FormatError
	var ce *nbt.CompressionError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrSelectionIncomplete):
		return CodeSelectionIncomplete
	case errors.Is(err, ErrSelectionTooLarge):
		return CodeSelectionTooLarge
	case errors.Is(err, catalogs.ErrUnknownBlock):
		return CodeUnknownBlock
	case errors.Is(err, ErrNoClipboard):
		return CodeNoClipboard
	case errors.Is(err, ErrNoHistory):
		return CodeNoHistory
	case errors.As(err, &fe):
		return CodeFormat
	case errors.As(err, &ce):
		return CodeCompression
	case errors.Is(err, schemstore.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return CodeFileNotFound
	case errors.Is(err, schemstore.ErrExists):
		return CodeFileExists
	default:
		return CodeIO
	}
}
