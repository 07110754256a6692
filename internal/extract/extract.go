// Package extract holds this system's internal extractors: functions that,
// given a buffer and a validated artifact offset, either dry-run (measure
// without writing) or carve the artifact to disk through a chroot.
package extract

import (
	"github.com/spf13/afero"

	"github.com/shirou/binscan/internal/chroot"
	"github.com/shirou/binscan/internal/sig"
)

// singleFile builds an Internal extractor for the common case: a structure
// parser determines total size, and a real run carves exactly one file
// under a fixed name.
func singleFile(fileName string, measure func(buffer []byte, offset int) (size int, ok bool)) func(buffer []byte, offset int, outputDir string) sig.ExtractionResult {
	return func(buffer []byte, offset int, outputDir string) sig.ExtractionResult {
		size, ok := measure(buffer, offset)
		if !ok {
			return sig.ExtractionResult{}
		}
		if outputDir == "" {
			return sig.ExtractionResult{Success: true, Size: size, HasSize: true}
		}

		c, err := chroot.New(afero.NewOsFs(), outputDir)
		if err != nil {
			return sig.ExtractionResult{}
		}
		if !c.CarveFile(fileName, buffer, offset, size) {
			return sig.ExtractionResult{}
		}
		return sig.ExtractionResult{Success: true, Size: size, HasSize: true}
	}
}
