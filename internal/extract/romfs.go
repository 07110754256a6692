package extract

import (
	"github.com/shirou/binscan/internal/structures"
	"github.com/shirou/binscan/internal/sig"
)

// RomFS carves the whole filesystem image as one file; decomposing its
// internal files is out of this system's scope.
func RomFS(buffer []byte, offset int, outputDir string) sig.ExtractionResult {
	measure := func(buffer []byte, offset int) (int, bool) {
		fs, err := structures.ParseRomFS(buffer[offset:])
		if err != nil {
			return 0, false
		}
		return fs.FullSize, true
	}
	return singleFile("romfs.img", measure)(buffer, offset, outputDir)
}

// VxWorksSymTab carves the whole symbol table as one file.
func VxWorksSymTab(buffer []byte, offset int, outputDir string) sig.ExtractionResult {
	measure := func(buffer []byte, offset int) (int, bool) {
		tab, err := structures.ParseVxWorksSymTab(buffer[offset:])
		if err != nil {
			return 0, false
		}
		return tab.TotalSize, true
	}
	return singleFile("vxworks_symtab.bin", measure)(buffer, offset, outputDir)
}
