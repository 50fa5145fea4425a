// SPDX-License-Identifier: MIT

package codec_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsemx/codec"
	"github.com/katalvlaran/sparsemx/matrix"
)

func TestLoad_Fixture(t *testing.T) {
	t.Parallel()

	m, err := codec.Load(filepath.Join("testdata", "valid.txt"))
	require.NoError(t, err)
	require.Equal(t, []matrix.Entry{
		{Row: 0, Col: 0, Value: 1},
		{Row: 0, Col: 2, Value: 8},
		{Row: 1, Col: 2, Value: -4},
	}, m.Entries())
}

func TestLoad_MalformedFixture(t *testing.T) {
	t.Parallel()

	path := filepath.Join("testdata", "malformed.txt")
	m, err := codec.Load(path)
	require.Nil(t, m)
	require.ErrorIs(t, err, codec.ErrFormat)
	require.NotErrorIs(t, err, codec.ErrIO)
	require.Contains(t, err.Error(), path)

	var fe *codec.FormatError
	require.True(t, errors.As(err, &fe))
	require.Equal(t, 4, fe.Line)
}

func TestLoad_Missing(t *testing.T) {
	t.Parallel()

	_, err := codec.Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.ErrorIs(t, err, codec.ErrIO)
	require.ErrorIs(t, err, fs.ErrNotExist)

	var pe *fs.PathError
	require.True(t, errors.As(err, &pe))
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Parallel()

	m := mustFromEntries(t, 4, 2,
		matrix.Entry{Row: 3, Col: 1, Value: 42},
		matrix.Entry{Row: 0, Col: 0, Value: -1},
	)
	path := filepath.Join(t.TempDir(), "m.txt")
	require.NoError(t, codec.Save(m, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "rows=4\ncols=2\n(0, 0, -1)\n(3, 1, 42)\n", string(raw))

	back, err := codec.Load(path)
	require.NoError(t, err)
	require.True(t, m.Equal(back))
}

func TestSave_Truncates(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "m.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer than the result\n"), 0o644))
	require.NoError(t, codec.Save(mustFromEntries(t, 1, 1), path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "rows=1\ncols=1\n", string(raw))
}

func TestSave_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	err := codec.Save(mustFromEntries(t, 1, 1), filepath.Join(dir, "missing", "m.txt"))
	require.ErrorIs(t, err, codec.ErrIO)
	require.ErrorIs(t, err, fs.ErrNotExist)

	path := filepath.Join(dir, "nil.txt")
	require.ErrorIs(t, codec.Save(nil, path), matrix.ErrNilMatrix)
	_, statErr := os.Stat(path)
	require.ErrorIs(t, statErr, fs.ErrNotExist)
}
