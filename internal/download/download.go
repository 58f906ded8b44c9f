package download

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	Extension   = ".xlsx"
	ContentType = "application/octet-stream"
)

var ErrInvalidFileName = errors.New("invalid file name")

// Downloader delivers a finished workbook under the given base name.
// It returns where the file ended up.
type Downloader interface {
	Download(ctx context.Context, data []byte, fileName string) (string, error)
}

// FileName appends the fixed workbook extension to base.
func FileName(base string) string {
	return base + Extension
}

// DirDownloader saves workbooks into a local directory.
type DirDownloader struct {
	Dir string
}

func (d DirDownloader) Download(ctx context.Context, data []byte, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if strings.ContainsAny(fileName, `/\`) || fileName == "." || fileName == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidFileName, fileName)
	}

	dir := d.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(dir, FileName(fileName))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	return path, nil
}

// Buffer keeps the last download in memory for hosts that send the bytes
// themselves, like an HTTP response.
type Buffer struct {
	Name string
	Data []byte
}

func (b *Buffer) Download(_ context.Context, data []byte, fileName string) (string, error) {
	b.Name = FileName(fileName)
	b.Data = data
	return b.Name, nil
}
