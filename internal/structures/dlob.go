package structures

import (
	"github.com/shirou/binscan/internal/binutil"
	"github.com/shirou/binscan/internal/sig"
)

var dlobLayout = binutil.Layout{
	{Name: "magic1", Type: binutil.U32},
	{Name: "size", Type: binutil.U32},
}

// DLOB is a parsed DLOB firmware header (two mirrored magic+size records).
type DLOB struct {
	Size int
}

// ParseDLOB validates that the header's two mirrored magic+size records
// agree with each other.
func ParseDLOB(data []byte) (DLOB, *sig.StructureError) {
	const headerSize = 16
	if len(data) < headerSize {
		return DLOB{}, sig.StructErrf("buffer too small for dlob header")
	}
	first, err := binutil.Parse(data[0:8], dlobLayout, binutil.BigEndian)
	if err != nil {
		return DLOB{}, sig.StructErrf("%v", err)
	}
	second, err := binutil.Parse(data[8:16], dlobLayout, binutil.BigEndian)
	if err != nil {
		return DLOB{}, sig.StructErrf("%v", err)
	}
	if first["magic1"] != second["magic1"] || first["size"] != second["size"] {
		return DLOB{}, sig.StructErrf("mirrored dlob headers disagree")
	}
	size := int(first["size"])
	if size <= 0 || size > len(data) {
		return DLOB{}, sig.StructErrf("dlob size out of range")
	}
	return DLOB{Size: size}, nil
}
