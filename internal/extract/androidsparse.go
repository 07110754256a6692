package extract

import (
	"github.com/shirou/binscan/internal/structures"
	"github.com/shirou/binscan/internal/sig"
)

// AndroidSparse carves the whole sparse image as one file; expanding it to
// a raw block image is left to an external tool.
func AndroidSparse(buffer []byte, offset int, outputDir string) sig.ExtractionResult {
	measure := func(buffer []byte, offset int) (int, bool) {
		img, err := structures.ParseAndroidSparse(buffer[offset:])
		if err != nil {
			return 0, false
		}
		return img.TotalSize, true
	}
	return singleFile("sparse.img", measure)(buffer, offset, outputDir)
}
