package structures

import (
	"encoding/binary"

	"github.com/shirou/binscan/internal/sig"
)

var elfClassNames = map[byte]string{1: "32-bit", 2: "64-bit"}
var elfDataNames = map[byte]string{1: "little endian", 2: "big endian"}
var elfTypeNames = map[uint16]string{
	1: "relocatable", 2: "executable", 3: "shared object", 4: "core",
}
var elfMachineNames = map[uint16]string{
	0x03: "Intel 80386", 0x08: "MIPS", 0x14: "PowerPC", 0x28: "ARM",
	0x32: "IA-64", 0x3E: "x86-64", 0xB7: "AArch64", 0xF3: "RISC-V",
}

// ELF is the parsed ELF identification + file header.
type ELF struct {
	Class       string
	DataEncoding string
	Type        string
	Machine     string
}

// ParseELF decodes the e_ident class/data bytes and the e_type/e_machine
// fields, each rendered to a human-readable name.
func ParseELF(data []byte) (ELF, *sig.StructureError) {
	const identSize = 16
	if len(data) < identSize+18 {
		return ELF{}, sig.StructErrf("buffer too small for ELF header")
	}
	if string(data[0:4]) != "\x7fELF" {
		return ELF{}, sig.StructErrf("missing ELF magic")
	}

	class, ok := elfClassNames[data[4]]
	if !ok {
		return ELF{}, sig.StructErrf("invalid EI_CLASS")
	}
	dataEnc, ok := elfDataNames[data[5]]
	if !ok {
		return ELF{}, sig.StructErrf("invalid EI_DATA")
	}

	var order binary.ByteOrder = binary.LittleEndian
	if data[5] == 2 {
		order = binary.BigEndian
	}

	eType := order.Uint16(data[identSize : identSize+2])
	eMachine := order.Uint16(data[identSize+2 : identSize+4])

	typeName, ok := elfTypeNames[eType]
	if !ok {
		typeName = "unknown"
	}
	machineName, ok := elfMachineNames[eMachine]
	if !ok {
		machineName = "unknown"
	}

	return ELF{Class: class, DataEncoding: dataEnc, Type: typeName, Machine: machineName}, nil
}
