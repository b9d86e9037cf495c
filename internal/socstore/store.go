// Package socstore writes command output atomically: either the whole
// file lands, or the original is left untouched. Adapted from
// cmd/soc/store.go's fsStore/pendingUpdateFile/pendingCreateFile, which
// hand-rolled the same rename-into-place trick renameio.TempFile already
// gives cmd/poc/main.go's streamStore.save — this package follows the
// latter's simpler direct use of the library instead of re-deriving it.
package socstore

import (
	"io"
	"os"

	"github.com/google/renameio"
)

// WriteFile atomically replaces path's contents with data: written to a
// temp file in the same directory, then renamed into place. An error
// leaves any existing file at path untouched.
func WriteFile(path string, data []byte, perm os.FileMode) (rerr error) {
	t, err := renameio.TempFile("", path)
	if err != nil {
		return err
	}
	defer func() {
		if rerr != nil {
			rerr2 := t.Cleanup()
			if rerr == nil {
				rerr = rerr2
			}
		}
	}()

	if err := t.Chmod(perm); err != nil {
		return err
	}
	if _, err := t.Write(data); err != nil {
		return err
	}
	return t.CloseAtomicallyReplace()
}

// WriteTo atomically replaces path's contents with whatever fill writes,
// for callers that want to stream output rather than build it in memory
// first.
func WriteTo(path string, perm os.FileMode, fill func(w io.Writer) error) (rerr error) {
	t, err := renameio.TempFile("", path)
	if err != nil {
		return err
	}
	defer func() {
		if rerr != nil {
			rerr2 := t.Cleanup()
			if rerr == nil {
				rerr = rerr2
			}
		}
	}()

	if err := t.Chmod(perm); err != nil {
		return err
	}
	if err := fill(t); err != nil {
		return err
	}
	return t.CloseAtomicallyReplace()
}
