package structures

import (
	"encoding/binary"

	"github.com/shirou/binscan/internal/sig"
)

var yaffsPageSpareCombos = [][2]int{{512, 16}, {2048, 64}, {4096, 128}, {4096, 64}, {8192, 256}, {8192, 400}}

const (
	yaffsObjTypeFile = 1
	yaffsObjHeaderSize = 512
)

// YAFFS has no fixed file header; its page/spare geometry is inferred by
// finding the (page, spare) combination whose object-header stride yields a
// second valid object header.
type YAFFS struct {
	PageSize  int
	SpareSize int
	ChunkSize int
}

// ParseYAFFS brute-forces the page/spare size combination that makes the
// first chunk's object header look valid and a second object header appear
// at the next page-aligned chunk boundary.
func ParseYAFFS(data []byte) (YAFFS, *sig.StructureError) {
	for _, combo := range yaffsPageSpareCombos {
		pageSize, spareSize := combo[0], combo[1]
		chunkSize := pageSize + spareSize
		if len(data) < chunkSize+yaffsObjHeaderSize {
			continue
		}
		if !looksLikeObjectHeader(data[:yaffsObjHeaderSize]) {
			continue
		}
		second := data[chunkSize:]
		if len(second) < yaffsObjHeaderSize || !looksLikeObjectHeader(second[:yaffsObjHeaderSize]) {
			continue
		}
		return YAFFS{PageSize: pageSize, SpareSize: spareSize, ChunkSize: chunkSize}, nil
	}
	return YAFFS{}, sig.StructErrf("no valid yaffs page/spare geometry found")
}

func looksLikeObjectHeader(header []byte) bool {
	objType := binary.LittleEndian.Uint32(header[0:4])
	return objType >= 1 && objType <= 6
}
