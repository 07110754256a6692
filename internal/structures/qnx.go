package structures

import (
	"github.com/shirou/binscan/internal/binutil"
	"github.com/shirou/binscan/internal/sig"
)

var qnxLayout = binutil.Layout{
	{Name: "magic", Type: binutil.U32},
	{Name: "version", Type: binutil.U16},
	{Name: "flags", Type: binutil.U16},
	{Name: "image_size", Type: binutil.U32},
}

// QNX is a parsed QNX IFS (image file system) header.
type QNX struct {
	TotalSize int
}

// ParseQNX validates the little-endian magic and version==1, then reads
// the total image size field.
func ParseQNX(data []byte) (QNX, *sig.StructureError) {
	rec, err := binutil.Parse(data, qnxLayout, binutil.LittleEndian)
	if err != nil {
		return QNX{}, sig.StructErrf("%v", err)
	}
	if rec["version"] != 1 {
		return QNX{}, sig.StructErrf("unsupported qnx ifs version %d", rec["version"])
	}
	total := int(rec["image_size"])
	if total <= qnxLayout.Size() || total > len(data) {
		return QNX{}, sig.StructErrf("qnx image_size out of range")
	}
	return QNX{TotalSize: total}, nil
}
