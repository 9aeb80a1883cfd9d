package tagtree

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"editor-assets/internal/diagnostic"
)

// ReadFile loads and decodes a tag forest from path.
func ReadFile(path string) ([]*Node, *diagnostic.Diagnostics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &diagnostic.Diagnostics{}, fmt.Errorf("failed to read tag file %s: %w", path, err)
	}

	nodes, diags, err := Decode(data)
	if err != nil {
		return nil, diags, fmt.Errorf("%s: %w", path, err)
	}

	return nodes, diags, nil
}

// WriteFile encodes the forest and replaces path with it. The new content
// is written to a temporary file in the same directory and renamed over
// the target, so readers never observe a partial file.
func WriteFile(path string, nodes []*Node) error {
	data, err := Encode(nodes)
	if err != nil {
		return err
	}

	return writeAtomic(path, data)
}

func writeAtomic(path string, data []byte) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}

	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()

		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}

	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()

		return fmt.Errorf("failed to sync %s: %w", tmpName, err)
	}

	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}

	if err := os.Chmod(tmpName, mode); err != nil {
		cleanup()
		return fmt.Errorf("failed to chmod %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return nil
}
