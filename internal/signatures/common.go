// Package signatures registers every format recognizer with the catalog
// (internal/sig) via each file's init(). Importing this package for its
// side effects (as the root package does) populates the process-wide
// registry.
package signatures

import (
	"fmt"

	"github.com/shirou/binscan/internal/sig"
)

// withSize appends the conventional ", total size: N bytes" suffix to a
// description.
func withSize(description string, size int) string {
	return fmt.Sprintf("%s, total size: %d bytes", description, size)
}

// dryRun invokes an Internal extractor with no output directory and
// reports whether it succeeded with a known size, the shape every validator
// that delegates sizing to its extractor shares.
func dryRun(ext *sig.Extractor, buffer []byte, offset int) (int, bool) {
	if ext == nil || ext.Internal == nil {
		return 0, false
	}
	res := ext.Internal(buffer, offset, "")
	if !res.Success || !res.HasSize {
		return 0, false
	}
	return res.Size, true
}
