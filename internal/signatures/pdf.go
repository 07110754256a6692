package signatures

import (
	"github.com/shirou/binscan/internal/sig"
	"github.com/shirou/binscan/internal/structures"
)

func init() {
	sig.Register(sig.Signature{
		Name:          "pdf",
		AlwaysDisplay: true,
		Magic:         [][]byte{[]byte("%PDF-")},
		Description:   "PDF document",
		Parser:        pdfParser,
	})
}

func pdfParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	p := structures.ParsePDF(buffer, offset)
	style := "Unix"
	if p.WindowsStyle {
		style = "Windows"
	}
	return sig.Result{
		Offset:      offset,
		Description: "PDF document, " + style + " line endings",
		Confidence:  sig.ConfidenceMedium,
	}, nil
}
