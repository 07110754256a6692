package structures

import (
	"encoding/binary"

	"github.com/shirou/binscan/internal/sig"
)

const (
	iso9660SystemAreaSize = 32768
	iso9660LogicalBlockOff = 128
)

// ISO9660 is the parsed primary volume descriptor.
type ISO9660 struct {
	ImageSize int
}

// ParseISO9660 reads the primary volume descriptor at sector 16 (byte
// offset 32768) and multiplies volume_space_size by logical_block_size to
// derive the image's total size.
func ParseISO9660(data []byte, pvdOffset int) (ISO9660, *sig.StructureError) {
	const pvdSize = 2048
	if pvdOffset < 0 || pvdOffset+pvdSize > len(data) {
		return ISO9660{}, sig.StructErrf("PVD out of bounds")
	}
	pvd := data[pvdOffset : pvdOffset+pvdSize]
	if pvd[0] != 1 || string(pvd[1:6]) != "CD001" {
		return ISO9660{}, sig.StructErrf("missing CD001 magic")
	}

	volumeSpaceSize := binary.LittleEndian.Uint32(pvd[80:84])
	logicalBlockSize := binary.LittleEndian.Uint16(pvd[iso9660LogicalBlockOff : iso9660LogicalBlockOff+2])

	size := int(volumeSpaceSize) * int(logicalBlockSize)
	if size <= 0 || size > len(data) {
		return ISO9660{}, sig.StructErrf("image size out of range")
	}
	return ISO9660{ImageSize: size}, nil
}
