package structures

import (
	"github.com/shirou/binscan/internal/binutil"
	"github.com/shirou/binscan/internal/sig"
)

var trxLayout = binutil.Layout{
	{Name: "magic", Type: binutil.U32},
	{Name: "total_size", Type: binutil.U32},
	{Name: "crc32", Type: binutil.U32},
	{Name: "flags_version", Type: binutil.U32},
	{Name: "boot_partition", Type: binutil.U32},
	{Name: "kernel_partition", Type: binutil.U32},
	{Name: "rootfs_partition", Type: binutil.U32},
}

// TRX is a parsed Broadcom TRX firmware image header.
type TRX struct {
	TotalSize       int
	Version         int
	BootPartition   int
	KernelPartition int
	RootFSPartition int
}

// ParseTRX validates the "HDR0" magic and reads the total_size and
// partition-offset fields.
func ParseTRX(data []byte) (TRX, *sig.StructureError) {
	rec, err := binutil.Parse(data, trxLayout, binutil.LittleEndian)
	if err != nil {
		return TRX{}, sig.StructErrf("%v", err)
	}
	total := int(rec["total_size"])
	if total < trxLayout.Size() || total > len(data) {
		return TRX{}, sig.StructErrf("trx total_size out of range")
	}
	return TRX{
		TotalSize:       total,
		Version:         int(rec["flags_version"] >> 24),
		BootPartition:   int(rec["boot_partition"]),
		KernelPartition: int(rec["kernel_partition"]),
		RootFSPartition: int(rec["rootfs_partition"]),
	}, nil
}
