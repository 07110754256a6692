package structures

import (
	"github.com/shirou/binscan/internal/binutil"
	"github.com/shirou/binscan/internal/sig"
)

const dtbMagic = 0xD00DFEED

var dtbLayout = binutil.Layout{
	{Name: "magic", Type: binutil.U32},
	{Name: "totalsize", Type: binutil.U32},
	{Name: "off_dt_struct", Type: binutil.U32},
	{Name: "off_dt_strings", Type: binutil.U32},
	{Name: "off_mem_rsvmap", Type: binutil.U32},
	{Name: "version", Type: binutil.U32},
	{Name: "last_comp_version", Type: binutil.U32},
	{Name: "boot_cpuid_phys", Type: binutil.U32},
	{Name: "size_dt_strings", Type: binutil.U32},
	{Name: "size_dt_struct", Type: binutil.U32},
}

// DTB is a parsed Flattened Device Tree header.
type DTB struct {
	TotalSize      int
	Version        int
	BootCPUIDPhys  int
}

// ParseDTB parses the big-endian flattened device tree header.
func ParseDTB(data []byte) (DTB, *sig.StructureError) {
	rec, err := binutil.Parse(data, dtbLayout, binutil.BigEndian)
	if err != nil {
		return DTB{}, sig.StructErrf("%v", err)
	}
	if rec["magic"] != dtbMagic {
		return DTB{}, sig.StructErrf("bad dtb magic")
	}
	total := int(rec["totalsize"])
	if total < dtbLayout.Size() || total > len(data) {
		return DTB{}, sig.StructErrf("totalsize out of range")
	}
	return DTB{
		TotalSize:     total,
		Version:       int(rec["version"]),
		BootCPUIDPhys: int(rec["boot_cpuid_phys"]),
	}, nil
}
