package structures

import (
	"github.com/shirou/binscan/internal/binutil"
	"github.com/shirou/binscan/internal/sig"
)

var pchromLayout = binutil.Layout{
	{Name: "header_size", Type: binutil.U32},
	{Name: "data_size", Type: binutil.U32},
}

// PCHROM is a parsed Intel Platform Controller Hub flash descriptor region
// header.
type PCHROM struct {
	TotalSize int
}

// ParsePCHROM reads the header_size/data_size pair immediately following
// the (magic-offset-shifted) artifact start.
func ParsePCHROM(data []byte) (PCHROM, *sig.StructureError) {
	rec, err := binutil.Parse(data, pchromLayout, binutil.LittleEndian)
	if err != nil {
		return PCHROM{}, sig.StructErrf("%v", err)
	}
	total := int(rec["header_size"]) + int(rec["data_size"])
	if total <= 0 || total > len(data) {
		return PCHROM{}, sig.StructErrf("pchrom size out of range")
	}
	return PCHROM{TotalSize: total}, nil
}
