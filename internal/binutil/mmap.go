package binutil

import (
	"fmt"

	"golang.org/x/exp/mmap"
)

// ReadFileViaMmap memory-maps path read-only and copies its contents into a
// plain []byte. Firmware images handed to this system are routinely
// hundreds of megabytes; mapping avoids a second page-cache-backed copy
// during the initial read, at the cost of the one copy into the buffer the
// scanner's API requires.
func ReadFileViaMmap(path string) ([]byte, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mmap open %s: %w", path, err)
	}
	defer r.Close()

	buffer := make([]byte, r.Len())
	if _, err := r.ReadAt(buffer, 0); err != nil {
		return nil, fmt.Errorf("mmap read %s: %w", path, err)
	}
	return buffer, nil
}
