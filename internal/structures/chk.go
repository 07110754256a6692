package structures

import (
	"github.com/shirou/binscan/internal/binutil"
	"github.com/shirou/binscan/internal/sig"
)

var chkLayout = binutil.Layout{
	{Name: "header_size", Type: binutil.U32},
	{Name: "kernel_size", Type: binutil.U32},
	{Name: "rootfs_size", Type: binutil.U32},
	{Name: "board_id", Type: binutil.U32},
}

// CHK is a parsed Broadcom CHK firmware image header.
type CHK struct {
	TotalSize int
	BoardID   uint32
}

// ParseCHK validates the header_size/kernel_size/rootfs_size fields: the
// total image size must fit within available data and must strictly
// exceed the header size alone.
func ParseCHK(data []byte) (CHK, *sig.StructureError) {
	rec, err := binutil.Parse(data, chkLayout, binutil.BigEndian)
	if err != nil {
		return CHK{}, sig.StructErrf("%v", err)
	}
	headerSize := int(rec["header_size"])
	total := headerSize + int(rec["kernel_size"]) + int(rec["rootfs_size"])
	if total <= headerSize || total > len(data) {
		return CHK{}, sig.StructErrf("chk total size out of range")
	}
	return CHK{TotalSize: total, BoardID: uint32(rec["board_id"])}, nil
}
