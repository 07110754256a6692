package structures

import (
	"github.com/coregx/ahocorasick"

	"github.com/shirou/binscan/internal/sig"
)

var rar4EOF = []byte{0xC4, 0x3D, 0x7B, 0x00, 0x40, 0x07, 0x00}
var rar5EOF = []byte{0x1D, 0x77, 0x56, 0x52, 0x00, 0x05, 0x00}

// RAR is the result of locating a RAR archive's end-of-archive marker.
type RAR struct {
	TotalSize int
	Version   int
}

// ParseRAR picks the EOF marker sequence to grep for based on the archive
// version byte read from the signature header (4 for RAR4, 5 for RAR5).
func ParseRAR(data []byte, version int) (RAR, *sig.StructureError) {
	var marker []byte
	switch version {
	case 4:
		marker = rar4EOF
	case 5:
		marker = rar5EOF
	default:
		return RAR{}, sig.StructErrf("unsupported rar version %d", version)
	}

	automaton, err := ahocorasick.NewAutomaton([][]byte{marker})
	if err != nil {
		return RAR{}, sig.StructErrf("automaton build: %v", err)
	}
	matches := automaton.Match(data)
	if len(matches) == 0 {
		return RAR{}, sig.StructErrf("no rar EOF marker found")
	}
	last := matches[len(matches)-1]
	return RAR{TotalSize: last.Start + len(marker), Version: version}, nil
}
