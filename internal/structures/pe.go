package structures

import (
	"encoding/binary"
	"fmt"

	"github.com/shirou/binscan/internal/sig"
)

var peMachineNames = map[uint16]string{
	0x014c: "Intel 80386",
	0x0200: "Intel Itanium",
	0x8664: "x86-64",
	0x01c0: "ARM little endian",
	0xaa64: "ARM64 little endian",
	0x01c4: "ARMv7 (thumb mode)",
	0x0166: "MIPS little endian",
	0x5032: "RISC-V 32-bit",
	0x5064: "RISC-V 64-bit",
}

// PE is the parsed MS-DOS + PE/COFF file header pair.
type PE struct {
	MachineName string
	PEOffset    int
}

// ParsePE follows the MZ header's e_lfanew pointer to the "PE\0\0" signature
// and decodes the COFF file header's machine field to a human-readable name.
func ParsePE(data []byte) (PE, *sig.StructureError) {
	const dosHeaderSize = 0x40
	if len(data) < dosHeaderSize || data[0] != 'M' || data[1] != 'Z' {
		return PE{}, sig.StructErrf("missing MZ magic")
	}
	lfanew := int(binary.LittleEndian.Uint32(data[0x3C:0x40]))
	if lfanew < dosHeaderSize || lfanew+24 > len(data) {
		return PE{}, sig.StructErrf("e_lfanew out of range")
	}
	if string(data[lfanew:lfanew+4]) != "PE\x00\x00" {
		return PE{}, sig.StructErrf("missing PE signature")
	}
	machine := binary.LittleEndian.Uint16(data[lfanew+4 : lfanew+6])
	name, ok := peMachineNames[machine]
	if !ok {
		name = fmt.Sprintf("unknown machine type 0x%04x", machine)
	}
	return PE{MachineName: name, PEOffset: lfanew}, nil
}
