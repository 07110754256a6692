package extract

import (
	"github.com/shirou/binscan/internal/structures"
	"github.com/shirou/binscan/internal/sig"
)

// PNG carves a single "image.png" file after walking the chunk stream to
// determine its extent.
func PNG(buffer []byte, offset int, outputDir string) sig.ExtractionResult {
	measure := func(buffer []byte, offset int) (int, bool) {
		img, err := structures.ParsePNG(buffer[offset:])
		if err != nil {
			return 0, false
		}
		return img.TotalSize, true
	}
	return singleFile("image.png", measure)(buffer, offset, outputDir)
}

// JPEG carves a single "image.jpg" file after walking its marker segments
// to determine its extent.
func JPEG(buffer []byte, offset int, outputDir string) sig.ExtractionResult {
	measure := func(buffer []byte, offset int) (int, bool) {
		img, err := structures.ParseJPEG(buffer[offset:])
		if err != nil {
			return 0, false
		}
		return img.TotalSize, true
	}
	return singleFile("image.jpg", measure)(buffer, offset, outputDir)
}
