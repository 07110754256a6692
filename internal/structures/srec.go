package structures

import (
	"bytes"

	"github.com/coregx/ahocorasick"

	"github.com/shirou/binscan/internal/sig"
)

var srecFooterPrefixes = [][]byte{[]byte("\nS9"), []byte("\nS8"), []byte("\nS7")}

// SRec is the result of locating an S-record footer (S9/S8/S7 termination
// record) following an S-record start.
type SRec struct {
	TotalSize int
}

// ParseSRec greps forward from the start of the S-record stream for an
// S9/S8/S7 termination line and scans to its terminating newline
// (tolerating a trailing \r before it).
func ParseSRec(data []byte) (SRec, *sig.StructureError) {
	automaton, err := ahocorasick.NewAutomaton(srecFooterPrefixes)
	if err != nil {
		return SRec{}, sig.StructErrf("automaton build: %v", err)
	}

	matches := automaton.Match(data)
	if len(matches) == 0 {
		return SRec{}, sig.StructErrf("no S-record footer found")
	}
	last := matches[len(matches)-1]
	lineStart := last.Start + 1 // skip the leading \n

	end := bytes.IndexByte(data[lineStart:], '\n')
	if end == -1 {
		return SRec{}, sig.StructErrf("unterminated S-record footer line")
	}
	total := lineStart + end + 1
	return SRec{TotalSize: total}, nil
}
