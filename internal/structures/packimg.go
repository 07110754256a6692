package structures

import (
	"github.com/shirou/binscan/internal/binutil"
	"github.com/shirou/binscan/internal/sig"
)

var packimgLayout = binutil.Layout{
	{Name: "header_size", Type: binutil.U32},
	{Name: "data_size", Type: binutil.U32},
}

// PackImg is a parsed "--PaCkImGs--" firmware container header.
type PackImg struct {
	TotalSize int
}

// ParsePackImg reads the header_size/data_size pair that follows the
// "--PaCkImGs--" magic.
func ParsePackImg(data []byte) (PackImg, *sig.StructureError) {
	rec, err := binutil.Parse(data, packimgLayout, binutil.BigEndian)
	if err != nil {
		return PackImg{}, sig.StructErrf("%v", err)
	}
	total := int(rec["header_size"]) + int(rec["data_size"])
	if total <= 0 || total > len(data) {
		return PackImg{}, sig.StructErrf("packimg size out of range")
	}
	return PackImg{TotalSize: total}, nil
}
