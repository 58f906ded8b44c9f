package download

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	assert.Equal(t, "report.xlsx", FileName("report"))
	assert.Equal(t, "report.xlsx.xlsx", FileName("report.xlsx"))
}

func TestDirDownloader(t *testing.T) {
	tmpDir := t.TempDir()
	outDir := filepath.Join(tmpDir, "nested", "out")
	d := DirDownloader{Dir: outDir}

	path, err := d.Download(context.Background(), []byte("payload"), "numbers")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "numbers.xlsx"), path)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(got))
}

func TestDirDownloader_Overwrites(t *testing.T) {
	d := DirDownloader{Dir: t.TempDir()}

	_, err := d.Download(context.Background(), []byte("first"), "same")
	require.NoError(t, err)
	path, err := d.Download(context.Background(), []byte("second"), "same")
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))
}

func TestDirDownloader_RejectsPaths(t *testing.T) {
	d := DirDownloader{Dir: t.TempDir()}

	for _, name := range []string{"../escape", "a/b", `a\b`, ".", ".."} {
		t.Run(name, func(t *testing.T) {
			_, err := d.Download(context.Background(), []byte("x"), name)
			assert.ErrorIs(t, err, ErrInvalidFileName)
		})
	}
}

func TestDirDownloader_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := DirDownloader{Dir: t.TempDir()}.Download(ctx, []byte("x"), "out")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuffer(t *testing.T) {
	var b Buffer

	name, err := b.Download(context.Background(), []byte{1, 2, 3}, "data")
	require.NoError(t, err)
	assert.Equal(t, "data.xlsx", name)
	assert.Equal(t, "data.xlsx", b.Name)
	assert.Equal(t, []byte{1, 2, 3}, b.Data)
}
