package structures

import (
	"github.com/shirou/binscan/internal/binutil"
	"github.com/shirou/binscan/internal/sig"
)

var cabLayout = binutil.Layout{
	{Name: "signature", Type: binutil.U32},
	{Name: "reserved1", Type: binutil.U32},
	{Name: "total_size", Type: binutil.U32},
	{Name: "reserved2", Type: binutil.U32},
	{Name: "offset_files", Type: binutil.U32},
	{Name: "reserved3", Type: binutil.U32},
	{Name: "version_minor", Type: binutil.U8},
	{Name: "version_major", Type: binutil.U8},
	{Name: "folder_count", Type: binutil.U16},
	{Name: "file_count", Type: binutil.U16},
}

// Cab is the parsed Microsoft Cabinet file header.
type Cab struct {
	TotalSize   int
	FileCount   int
	FolderCount int
}

// ParseCab validates the "MSCF" signature and the reserved-zero field, then
// reads file_count/folder_count/total_size.
func ParseCab(data []byte) (Cab, *sig.StructureError) {
	rec, err := binutil.Parse(data, cabLayout, binutil.LittleEndian)
	if err != nil {
		return Cab{}, sig.StructErrf("%v", err)
	}
	if rec["signature"] != 0x4643534D { // "MSCF"
		return Cab{}, sig.StructErrf("bad cab signature")
	}
	if rec["reserved1"] != 0 {
		return Cab{}, sig.StructErrf("reserved field not zero")
	}
	total := int(rec["total_size"])
	if total <= cabLayout.Size() || total > len(data) {
		return Cab{}, sig.StructErrf("cab total_size out of range")
	}
	return Cab{TotalSize: total, FileCount: int(rec["file_count"]), FolderCount: int(rec["folder_count"])}, nil
}
