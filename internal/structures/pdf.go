package structures

import "github.com/shirou/binscan/internal/sig"

// PDF records which line-ending convention precedes a PDF's "%PDF-" magic.
// This distinction is purely cosmetic: it only changes the description
// string.
type PDF struct {
	WindowsStyle bool // a \r immediately precedes the magic
}

// ParsePDF checks the byte immediately before offset for a carriage return
// to distinguish a "Windows" PDF from a "Unix" one.
func ParsePDF(buffer []byte, offset int) PDF {
	if offset > 0 && buffer[offset-1] == '\r' {
		return PDF{WindowsStyle: true}
	}
	return PDF{}
}
