package structures

import (
	"strconv"

	"github.com/shirou/binscan/internal/sig"
)

const (
	tarballBlockSize        = 512
	tarballMinExpectedHeaders = 10
)

// Tarball is the result of walking a POSIX ustar archive's header stream.
type Tarball struct {
	TotalSize   int
	HeaderCount int
}

// ParseTarball walks 512-byte-aligned ustar headers (validating the "ustar"
// magic at offset 257 and the octal file-size field) until two consecutive
// all-zero blocks terminate the archive. At least tarballMinExpectedHeaders
// valid headers are required: an archive with fewer is a parse error and is
// not reported at any confidence. Header checksums are not verified.
func ParseTarball(data []byte) (Tarball, *sig.StructureError) {
	pos := 0
	headers := 0
	zeroRun := 0

	for pos+tarballBlockSize <= len(data) {
		block := data[pos : pos+tarballBlockSize]

		if isZeroBlock(block) {
			zeroRun++
			pos += tarballBlockSize
			if zeroRun >= 2 {
				return Tarball{TotalSize: pos, HeaderCount: headers}, nil
			}
			continue
		}
		zeroRun = 0

		if string(block[257:262]) != "ustar" {
			break
		}
		size, err := octalField(block[124:136])
		if err != nil {
			break
		}
		headers++

		dataBlocks := (size + tarballBlockSize - 1) / tarballBlockSize
		pos += tarballBlockSize * (1 + dataBlocks)
	}

	if headers < tarballMinExpectedHeaders {
		return Tarball{}, sig.StructErrf("too few tar headers (%d)", headers)
	}
	return Tarball{TotalSize: pos, HeaderCount: headers}, nil
}

func isZeroBlock(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}

func octalField(b []byte) (int, error) {
	s := string(b)
	for i, c := range s {
		if c == 0 || c == ' ' {
			s = s[:i]
			break
		}
	}
	if s == "" {
		return 0, sig.StructErrf("empty octal field")
	}
	v, err := strconv.ParseInt(s, 8, 64)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}
