package structures

import (
	"github.com/shirou/binscan/internal/binutil"
	"github.com/shirou/binscan/internal/sig"
)

var androidSparseHeaderLayout = binutil.Layout{
	{Name: "magic", Type: binutil.U32},
	{Name: "major_version", Type: binutil.U16},
	{Name: "minor_version", Type: binutil.U16},
	{Name: "file_hdr_sz", Type: binutil.U16},
	{Name: "chunk_hdr_sz", Type: binutil.U16},
	{Name: "blk_sz", Type: binutil.U32},
	{Name: "total_blks", Type: binutil.U32},
	{Name: "total_chunks", Type: binutil.U32},
	{Name: "image_checksum", Type: binutil.U32},
}

var androidSparseChunkLayout = binutil.Layout{
	{Name: "chunk_type", Type: binutil.U16},
	{Name: "reserved1", Type: binutil.U16},
	{Name: "chunk_sz", Type: binutil.U32},
	{Name: "total_sz", Type: binutil.U32},
}

// AndroidSparse is the result of walking an Android sparse image's chunk
// stream.
type AndroidSparse struct {
	TotalSize  int
	ChunkCount int
}

// ParseAndroidSparse validates the sparse image file header and walks
// total_chunks chunk headers, summing their total_sz fields.
func ParseAndroidSparse(data []byte) (AndroidSparse, *sig.StructureError) {
	rec, err := binutil.Parse(data, androidSparseHeaderLayout, binutil.LittleEndian)
	if err != nil {
		return AndroidSparse{}, sig.StructErrf("%v", err)
	}
	const sparseMagic = 0xED26FF3A
	if rec["magic"] != sparseMagic {
		return AndroidSparse{}, sig.StructErrf("bad sparse magic")
	}

	pos := int(rec["file_hdr_sz"])
	if pos < androidSparseHeaderLayout.Size() {
		return AndroidSparse{}, sig.StructErrf("file_hdr_sz too small")
	}
	chunkHdrSize := int(rec["chunk_hdr_sz"])
	chunks := int(rec["total_chunks"])

	for i := 0; i < chunks; i++ {
		if pos+chunkHdrSize > len(data) {
			return AndroidSparse{}, sig.StructErrf("truncated chunk header at %d", pos)
		}
		crec, err := binutil.Parse(data[pos:], androidSparseChunkLayout, binutil.LittleEndian)
		if err != nil {
			return AndroidSparse{}, sig.StructErrf("%v", err)
		}
		totalSz := int(crec["total_sz"])
		if totalSz < chunkHdrSize {
			return AndroidSparse{}, sig.StructErrf("chunk total_sz smaller than header")
		}
		next := pos + totalSz
		if next > len(data) || next <= pos {
			return AndroidSparse{}, sig.StructErrf("chunk extends past buffer")
		}
		pos = next
	}

	return AndroidSparse{TotalSize: pos, ChunkCount: chunks}, nil
}
