package structures

import (
	"bytes"

	"github.com/coregx/ahocorasick"

	"github.com/shirou/binscan/internal/sig"
)

var (
	svgOpenTag  = []byte("<svg ")
	svgCloseTag = []byte("</svg>")
	svgHeadTag  = []byte(`xmlns="http://www.w3.org/2000/svg"`)
)

// SVGImage is the result of parsing an SVG document to determine its total
// on-disk size.
type SVGImage struct {
	TotalSize int
}

// ParseSVG scans svgData for <svg ...> / </svg> tag pairs to find the extent
// of a single well-formed SVG document: it tracks unclosed-tag depth and
// requires exactly one tag carrying the SVG namespace declaration before
// depth returns to zero.
func ParseSVG(svgData []byte) (SVGImage, *sig.StructureError) {
	automaton, err := ahocorasick.NewAutomaton([][]byte{svgOpenTag, svgCloseTag})
	if err != nil {
		return SVGImage{}, sig.StructErrf("automaton build: %v", err)
	}

	headTagCount := 0
	unclosed := 0

	for _, m := range automaton.Match(svgData) {
		tag, perr := parseSVGTag(svgData[m.Start:])
		if perr != nil {
			break
		}

		if tag.isHead {
			headTagCount++
		}
		if tag.isOpen {
			unclosed++
		}
		if tag.isClose {
			unclosed--
		}
		if headTagCount > 1 {
			break
		}
		if headTagCount == 1 && unclosed == 0 {
			return SVGImage{TotalSize: m.Start + len(svgCloseTag)}, nil
		}
	}

	return SVGImage{}, sig.StructErrf("no complete SVG document found")
}

type svgTag struct {
	isHead, isOpen, isClose bool
}

func parseSVGTag(tagData []byte) (svgTag, *sig.StructureError) {
	const endByte = '>'

	for i := 0; i < len(tagData); i++ {
		if tagData[i] != endByte {
			continue
		}
		chunk := tagData[:i+1]
		return svgTag{
			isOpen:  bytes.HasPrefix(chunk, svgOpenTag),
			isClose: bytes.HasPrefix(chunk, svgCloseTag),
			isHead:  bytes.Contains(chunk, svgHeadTag),
		}, nil
	}
	return svgTag{}, sig.StructErrf("unterminated tag")
}
