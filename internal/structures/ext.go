package structures

import (
	"github.com/shirou/binscan/internal/binutil"
	"github.com/shirou/binscan/internal/sig"
)

const (
	extSuperblockOffset = 1024
	extMagic            = 0xEF53
)

var extLayout = binutil.Layout{
	{Name: "s_inodes_count", Type: binutil.U32},
	{Name: "s_blocks_count", Type: binutil.U32},
	{Name: "s_r_blocks_count", Type: binutil.U32},
	{Name: "s_free_blocks_count", Type: binutil.U32},
	{Name: "s_free_inodes_count", Type: binutil.U32},
	{Name: "s_first_data_block", Type: binutil.U32},
	{Name: "s_log_block_size", Type: binutil.U32},
}

// Ext is the parsed subset of an ext2/3/4 superblock this system cares
// about. s_magic/s_state/s_errors/s_minor_rev_level live past extLayout and
// are read directly since they serve only as disambiguating fields.
type Ext struct {
	BlocksCount     int
	FreeBlocksCount int
	InodesCount     int
	LogBlockSize    int
	CreatorOS       int
}

var extCreatorOSNames = map[uint32]string{0: "Linux", 1: "GNU Hurd", 2: "Masix", 3: "FreeBSD", 4: "Lites"}

// ParseExt parses an ext2/3/4 superblock located at offset ext.go's caller
// has already translated to the artifact start (the superblock itself
// begins at file offset 1024).
func ParseExt(data []byte) (Ext, *sig.StructureError) {
	if len(data) < extSuperblockOffset+264 {
		return Ext{}, sig.StructErrf("buffer too small for ext superblock")
	}
	sb := data[extSuperblockOffset:]

	rec, err := binutil.Parse(sb, extLayout, binutil.LittleEndian)
	if err != nil {
		return Ext{}, sig.StructErrf("%v", err)
	}

	magic := uint16(sb[56]) | uint16(sb[57])<<8
	if magic != extMagic {
		return Ext{}, sig.StructErrf("bad ext magic")
	}
	creatorOS := uint32(sb[88]) | uint32(sb[89])<<8 | uint32(sb[90])<<16 | uint32(sb[91])<<24

	return Ext{
		BlocksCount:     int(rec["s_blocks_count"]),
		FreeBlocksCount: int(rec["s_free_blocks_count"]),
		InodesCount:     int(rec["s_inodes_count"]),
		LogBlockSize:    int(rec["s_log_block_size"]),
		CreatorOS:       int(creatorOS),
	}, nil
}

// ExtCreatorOSName renders the s_creator_os field to a human string.
func ExtCreatorOSName(v int) string {
	if n, ok := extCreatorOSNames[uint32(v)]; ok {
		return n
	}
	return "unknown"
}
