package structures

import (
	"bytes"

	"github.com/shirou/binscan/internal/binutil"
	"github.com/shirou/binscan/internal/sig"
)

// LinuxBootImage is a parsed x86 Linux kernel boot sector.
type LinuxBootImage struct {
	HasSetupSig bool
}

// ParseLinuxBootImage checks for the "HdrS" setup-header signature 514
// bytes into the image, which the boot sector alone does not guarantee.
func ParseLinuxBootImage(data []byte) (LinuxBootImage, *sig.StructureError) {
	const setupSigOffset = 514
	if len(data) < setupSigOffset+4 {
		return LinuxBootImage{}, sig.StructErrf("buffer too small for setup header check")
	}
	if !bytes.Equal(data[setupSigOffset:setupSigOffset+4], []byte("HdrS")) {
		return LinuxBootImage{}, sig.StructErrf("missing HdrS setup signature")
	}
	return LinuxBootImage{HasSetupSig: true}, nil
}

// ParseLinuxKernelVersion extracts the bare ASCII version string following
// the "Linux version " marker.
func ParseLinuxKernelVersion(data []byte) (string, *sig.StructureError) {
	const prefix = "Linux version "
	if len(data) < len(prefix) || string(data[:len(prefix)]) != prefix {
		return "", sig.StructErrf("missing Linux version prefix")
	}
	rest := data[len(prefix):]
	end := bytes.IndexAny(rest, "\x00\n")
	if end == -1 {
		end = binutil.MinInt(len(rest), 128)
	}
	return string(rest[:end]), nil
}
