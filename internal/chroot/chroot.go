// Package chroot is the sole path-safety boundary between carved artifact
// names (which may be derived from untrusted file contents, e.g. an MBR
// partition's OS-type label or a tarball member name) and the real
// filesystem. Every extractor in internal/extract writes through a Chroot
// rather than touching a path directly.
package chroot

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// Chroot confines writes beneath Root on Fs. Fs is an afero.Fs so production
// code can use afero.NewOsFs() while tests exercise path-traversal rejection
// against afero.NewMemMapFs() without touching a real directory.
type Chroot struct {
	Fs   afero.Fs
	Root string
}

// New creates (if absent) and validates root as a Chroot boundary.
func New(fs afero.Fs, root string) (*Chroot, error) {
	if root == "" {
		return nil, fmt.Errorf("chroot: empty root")
	}
	clean := filepath.Clean(root)
	if err := fs.MkdirAll(clean, 0o755); err != nil {
		return nil, fmt.Errorf("chroot: create root %s: %w", clean, err)
	}
	return &Chroot{Fs: fs, Root: clean}, nil
}

// resolve computes the absolute path for a child name, refusing any name
// that would resolve outside Root, however many ".." segments or absolute
// prefixes it carries.
func (c *Chroot) resolve(name string) (string, bool) {
	name = strings.TrimPrefix(name, string(filepath.Separator))
	joined := filepath.Join(c.Root, name)
	rootWithSep := c.Root
	if !strings.HasSuffix(rootWithSep, string(filepath.Separator)) {
		rootWithSep += string(filepath.Separator)
	}
	if joined != c.Root && !strings.HasPrefix(joined, rootWithSep) {
		return "", false
	}
	return joined, true
}

// CarveFile writes buffer[start:start+size] to name beneath Root. Returns
// false on any I/O failure or path-safety violation; never partially writes
// outside the root.
func (c *Chroot) CarveFile(name string, buffer []byte, start, size int) bool {
	if start < 0 || size < 0 || start+size > len(buffer) {
		return false
	}
	path, ok := c.resolve(name)
	if !ok {
		return false
	}
	if err := c.Fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false
	}
	f, err := c.Fs.Create(path)
	if err != nil {
		return false
	}
	defer f.Close()

	if _, err := f.Write(buffer[start : start+size]); err != nil {
		return false
	}
	return true
}

// CreateDirectory makes a subdirectory beneath Root; name == "" generates a
// unique scratch name.
func (c *Chroot) CreateDirectory(name string) bool {
	if name == "" {
		name = uuid.NewString()
	}
	path, ok := c.resolve(name)
	if !ok {
		return false
	}
	return c.Fs.MkdirAll(path, 0o755) == nil
}

// UniqueName appends a numeric suffix to avoid collisions, the scheme used
// by the MBR partition carver ("<os_name>_partition.<i>").
func UniqueName(base string, index int) string {
	return fmt.Sprintf("%s.%d", base, index)
}
