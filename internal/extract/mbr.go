package extract

import (
	"github.com/spf13/afero"

	"github.com/shirou/binscan/internal/chroot"
	"github.com/shirou/binscan/internal/sig"
	"github.com/shirou/binscan/internal/structures"
)

// MBR carves each accepted partition of a Master Boot Record image to its
// own file, named "<os_name>_partition.<i>". A dry run (outputDir == "")
// only parses and reports the header's total image size. A real run aborts
// on the first carve failure, keeps whatever partitions it already wrote,
// and reports the failure through Success.
func MBR(buffer []byte, offset int, outputDir string) sig.ExtractionResult {
	if offset < 0 || offset > len(buffer) {
		return sig.ExtractionResult{}
	}
	header, err := structures.ParseMBR(buffer[offset:])
	if err != nil {
		return sig.ExtractionResult{}
	}

	if outputDir == "" {
		return sig.ExtractionResult{Success: true, Size: header.ImageSize, HasSize: true}
	}

	c, cerr := chroot.New(afero.NewOsFs(), outputDir)
	if cerr != nil {
		return sig.ExtractionResult{}
	}

	success := true
	for i, part := range header.Partitions {
		name := chroot.UniqueName(part.Name+"_partition", i)
		if !c.CarveFile(name, buffer, offset+part.Start, part.Size) {
			success = false
			break
		}
	}

	return sig.ExtractionResult{Success: success, Size: header.ImageSize, HasSize: true}
}
