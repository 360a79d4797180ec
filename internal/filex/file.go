// Package filex contains file helpers for handling profile photos on the
// client side: cache directory management, image sniffing, and copying a
// selected photo into the local cache.
package filex

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotAnImage is returned when a selected file does not look like an image.
var ErrNotAnImage = errors.New("file is not an image")

// EnsureDir creates dir (and parents) if needed and returns its absolute path.
func EnsureDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", dir, err)
	}
	if err := os.MkdirAll(abs, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", abs, err)
	}
	return abs, nil
}

// DetectImageType sniffs the content type of the file at path and returns it
// (e.g. "image/png"). Returns ErrNotAnImage for anything that is not an
// image/* type.
func DetectImageType(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	// 512 bytes is all http.DetectContentType looks at.
	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	ct := http.DetectContentType(buf[:n])
	if !strings.HasPrefix(ct, "image/") {
		return "", ErrNotAnImage
	}
	return ct, nil
}

// CopyToDir copies the file at src into dir under name, preserving the
// original extension, and returns the destination path.
func CopyToDir(src, dir, name string) (string, error) {
	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	dst := filepath.Join(dir, name+filepath.Ext(src))

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return "", fmt.Errorf("copy %s: %w", dst, err)
	}
	return dst, nil
}
