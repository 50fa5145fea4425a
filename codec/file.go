// SPDX-License-Identifier: MIT

package codec

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/sparsemx/matrix"
)

// outputPerm is the permission used for files created by Save.
const outputPerm = 0o644

// Load opens path, decodes it fully and closes it.
//
// Errors:
//   - ErrIO (wrapping *fs.PathError) when the file cannot be opened or read;
//     errors.Is(err, fs.ErrNotExist) works for a missing file.
//   - *FormatError for malformed content. No partial matrix is returned.
func Load(path string, opts ...Option) (*matrix.Sparse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", ioErrorf(err))
	}
	defer f.Close() // read-only handle: a close error carries no data loss

	m, err := Decode(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}

	return m, nil
}

// Save writes m to path in the text format, creating or truncating the file.
// The handle is always closed; a failing Close is reported because it may
// mean buffered data never reached the disk.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil m (no file is created).
//   - ErrIO for create, write or close failures.
func Save(m *matrix.Sparse, path string) (err error) {
	if err = matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, outputPerm)
	if err != nil {
		return fmt.Errorf("Save: %w", ioErrorf(err))
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("Save: %w", ioErrorf(cerr)))
		}
	}()

	if err = Encode(f, m); err != nil {
		return fmt.Errorf("Save(%s): %w", path, err)
	}

	return nil
}
