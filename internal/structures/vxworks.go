package structures

import (
	"github.com/shirou/binscan/internal/binutil"
	"github.com/shirou/binscan/internal/sig"
)

var vxworksSymEntryLayout = binutil.Layout{
	{Name: "name_ptr", Type: binutil.U32},
	{Name: "value", Type: binutil.U32},
	{Name: "flags", Type: binutil.U16},
	{Name: "unused", Type: binutil.U16},
	{Name: "typ", Type: binutil.U8},
	{Name: "group", Type: binutil.U8},
}

// VxWorksSymTab is the parsed result of walking a VxWorks symbol table.
type VxWorksSymTab struct {
	TotalSize   int
	SymbolCount int
}

// ParseVxWorksSymTab walks fixed-size (name_ptr, value, flags, type, group)
// entries starting at data until a zero entry terminates the table.
func ParseVxWorksSymTab(data []byte) (VxWorksSymTab, *sig.StructureError) {
	entrySize := vxworksSymEntryLayout.Size()
	pos := 0
	count := 0
	for {
		if pos+entrySize > len(data) {
			return VxWorksSymTab{}, sig.StructErrf("unterminated symbol table")
		}
		rec, err := binutil.Parse(data[pos:], vxworksSymEntryLayout, binutil.BigEndian)
		if err != nil {
			return VxWorksSymTab{}, sig.StructErrf("%v", err)
		}
		if rec["name_ptr"] == 0 && rec["value"] == 0 && rec["flags"] == 0 {
			return VxWorksSymTab{TotalSize: pos + entrySize, SymbolCount: count}, nil
		}
		count++
		pos += entrySize
	}
}

// VxWorksKernelVersion extracts the bare C-string WIND kernel version that
// follows a fixed magic in the WIND version signature.
func VxWorksKernelVersion(data []byte) (string, *sig.StructureError) {
	const magic = "VxWorks WIND version "
	if len(data) >= len(magic) && string(data[:len(magic)]) == magic {
		data = data[len(magic):]
	}
	if len(data) == 0 {
		return "", sig.StructErrf("empty buffer")
	}
	return binutil.CStringMax(data, 64), nil
}
