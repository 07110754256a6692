package extract

import (
	"github.com/shirou/binscan/internal/structures"
	"github.com/shirou/binscan/internal/sig"
)

// SVG carves a single "image.svg" file. Its children (embedded raster
// images, scripts) are not binary artifacts worth re-scanning, so its
// catalog entry sets DoNotRecurse.
func SVG(buffer []byte, offset int, outputDir string) sig.ExtractionResult {
	if offset < 0 || offset > len(buffer) {
		return sig.ExtractionResult{}
	}
	measure := func(buffer []byte, offset int) (int, bool) {
		img, err := structures.ParseSVG(buffer[offset:])
		if err != nil {
			return 0, false
		}
		return img.TotalSize, true
	}
	return singleFile("image.svg", measure)(buffer, offset, outputDir)
}
