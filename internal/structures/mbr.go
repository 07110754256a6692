package structures

import (
	"github.com/shirou/binscan/internal/binutil"
	"github.com/shirou/binscan/internal/sig"
)

const (
	mbrBlockSize           = 512
	mbrMinImageSize        = mbrBlockSize * 2
	mbrPartitionCount      = 4
	mbrPartitionTableOffset = 446
)

var mbrPartitionLayout = binutil.Layout{
	{Name: "status", Type: binutil.U8},
	{Name: "chs_start", Type: binutil.U24},
	{Name: "os_type", Type: binutil.U8},
	{Name: "chs_end", Type: binutil.U24},
	{Name: "lba_start", Type: binutil.U32},
	{Name: "lba_size", Type: binutil.U32},
}

var mbrKnownOSTypes = map[uint64]string{
	0x07: "NTFS_IFS_HPFS_exFAT",
	0x0B: "FAT32",
	0x0C: "FAT32",
	0x43: "Linux",
	0x4D: "QNX Primary Volume",
	0x4E: "QNX Secondary Volume",
	0x81: "Minix",
	0x83: "Linux",
	0x8E: "Linux LVM",
	0x96: "ISO-9660",
	0xB1: "QNXv6 File System",
	0xB2: "QNXv6 File System",
	0xB3: "QNXv6 File System",
	0xEE: "EFI GPT Protective",
	0xEF: "EFI System Partition",
}

// MBRPartition is one accepted partition table entry.
type MBRPartition struct {
	Start int
	Size  int
	Name  string
}

// MBRHeader is the result of parsing a Master Boot Record image.
type MBRHeader struct {
	ImageSize  int
	Partitions []MBRPartition
}

// ParseMBR parses a Master Boot Record partition table out of mbrData.
// Partitions with a zero OS type or a zero LBA size are ignored; of the
// remainder, only status values 0x00/0x80 are accepted. The partition
// occupying offset 0 (the MBR sector itself) is excluded from the returned
// list but its end offset still counts toward ImageSize.
func ParseMBR(mbrData []byte) (MBRHeader, *sig.StructureError) {
	entrySize := mbrPartitionLayout.Size()
	tableStart := mbrPartitionTableOffset
	tableEnd := tableStart + entrySize*mbrPartitionCount

	if len(mbrData) < tableEnd {
		return MBRHeader{}, sig.StructErrf("buffer too small for partition table")
	}
	table := mbrData[tableStart:tableEnd]

	var header MBRHeader
	allowedStatus := map[uint64]bool{0: true, 0x80: true}

	for i := 0; i < mbrPartitionCount; i++ {
		entry, err := binutil.Parse(table[i*entrySize:], mbrPartitionLayout, binutil.LittleEndian)
		if err != nil {
			return MBRHeader{}, sig.StructErrf("partition %d: %v", i, err)
		}

		if entry["os_type"] == 0 || entry["lba_size"] == 0 {
			continue
		}
		if !allowedStatus[entry["status"]] {
			continue
		}

		name := "Unknown"
		if n, ok := mbrKnownOSTypes[entry["os_type"]]; ok {
			name = n
		}

		part := MBRPartition{
			Start: int(entry["lba_start"]) * mbrBlockSize,
			Size:  int(entry["lba_size"]) * mbrBlockSize,
			Name:  name,
		}
		end := part.Start + part.Size
		if end > len(mbrData) {
			continue
		}

		if part.Start != 0 {
			header.Partitions = append(header.Partitions, part)
		}
		if end > header.ImageSize {
			header.ImageSize = end
		}
	}

	if len(header.Partitions) == 0 {
		return MBRHeader{}, sig.StructErrf("no valid partitions found")
	}
	if header.ImageSize <= mbrMinImageSize {
		return MBRHeader{}, sig.StructErrf("image size %d below minimum", header.ImageSize)
	}
	return header, nil
}
