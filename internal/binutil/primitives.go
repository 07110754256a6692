package binutil

import (
	"fmt"
	"hash/crc32"
	"time"
)

// CRC32 computes the standard reflected CRC32 (polynomial 0xEDB88320, init
// all-ones, final XOR all-ones) used by cramfs, 7-zip, and the xz footer.
func CRC32(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}

// CString extracts a NUL-terminated ASCII run from the front of data. If no
// NUL byte is present the entire slice is returned as a string.
func CString(data []byte) string {
	for i, b := range data {
		if b == 0 {
			return string(data[:i])
		}
	}
	return string(data)
}

// CStringMax behaves like CString but caps the returned string at maxLen
// bytes, for building bounded description strings from untrusted input.
func CStringMax(data []byte, maxLen int) string {
	s := CString(data)
	if len(s) > maxLen {
		return s[:maxLen]
	}
	return s
}

// Step asserts forward progress for validators that walk a sequence of
// variable-length records: current must be strictly greater than previous
// and not exceed available. Used by cpio, lzop and lz4.
func Step(available, current, previous int) error {
	if current <= previous {
		return fmt.Errorf("binutil: no forward progress (previous=%d current=%d)", previous, current)
	}
	if current > available {
		return fmt.Errorf("binutil: step out of bounds (current=%d available=%d)", current, available)
	}
	return nil
}

// MinInt returns the smaller of a and b.
func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// EpochToString renders a u32 Unix timestamp as a human-readable UTC string,
// used by the uimage signature to format its creation-time field.
func EpochToString(epoch uint32) string {
	return time.Unix(int64(epoch), 0).UTC().Format("2006-01-02 15:04:05 -0700")
}
