package structures

import (
	"github.com/shirou/binscan/internal/binutil"
	"github.com/shirou/binscan/internal/sig"
)

const uimageHeaderSize = 64
const uimageNameSize = 32
const uimageNameOffset = 32

var uimageLayout = binutil.Layout{
	{Name: "magic", Type: binutil.U32},
	{Name: "header_crc", Type: binutil.U32},
	{Name: "timestamp", Type: binutil.U32},
	{Name: "size", Type: binutil.U32},
	{Name: "load", Type: binutil.U32},
	{Name: "entry", Type: binutil.U32},
	{Name: "data_crc", Type: binutil.U32},
	{Name: "os", Type: binutil.U8},
	{Name: "arch", Type: binutil.U8},
	{Name: "imgtype", Type: binutil.U8},
	{Name: "comp", Type: binutil.U8},
}

var uimageOSNames = map[uint64]string{0: "Invalid", 5: "Linux", 8: "VxWorks", 20: "U-Boot"}
var uimageArchNames = map[uint64]string{2: "ARM", 5: "MIPS", 3: "x86", 12: "PowerPC", 22: "AArch64"}
var uimageTypeNames = map[uint64]string{2: "Kernel", 3: "RAMDisk", 4: "Multi-File", 5: "Firmware"}
var uimageCompNames = map[uint64]string{0: "none", 1: "gzip", 2: "bzip2", 3: "lzma", 4: "lzo", 5: "lz4"}

// UImage is a parsed U-Boot legacy image header.
type UImage struct {
	TotalSize       int
	DataSize        int
	Timestamp       uint32
	Name            string
	OS, Arch, Type, Compression string
}

// ParseUImage validates the fixed 64-byte legacy U-Boot header and decodes
// the os/arch/imgtype/comp enum fields to human-readable names.
func ParseUImage(data []byte) (UImage, *sig.StructureError) {
	if len(data) < uimageHeaderSize {
		return UImage{}, sig.StructErrf("buffer too small for uimage header")
	}
	rec, err := binutil.Parse(data, uimageLayout, binutil.BigEndian)
	if err != nil {
		return UImage{}, sig.StructErrf("%v", err)
	}
	const uimageMagic = 0x27051956
	if rec["magic"] != uimageMagic {
		return UImage{}, sig.StructErrf("bad uimage magic")
	}

	dataSize := int(rec["size"])
	total := uimageHeaderSize + dataSize
	if total > len(data) {
		return UImage{}, sig.StructErrf("uimage data_size out of range")
	}
	name := binutil.CStringMax(data[uimageNameOffset:uimageNameOffset+uimageNameSize], uimageNameSize)

	return UImage{
		TotalSize:   total,
		DataSize:    dataSize,
		Timestamp:   uint32(rec["timestamp"]),
		Name:        name,
		OS:          lookupOrUnknown(uimageOSNames, rec["os"]),
		Arch:        lookupOrUnknown(uimageArchNames, rec["arch"]),
		Type:        lookupOrUnknown(uimageTypeNames, rec["imgtype"]),
		Compression: lookupOrUnknown(uimageCompNames, rec["comp"]),
	}, nil
}

func lookupOrUnknown(m map[uint64]string, v uint64) string {
	if n, ok := m[v]; ok {
		return n
	}
	return "unknown"
}
