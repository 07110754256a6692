package signatures

import (
	"github.com/shirou/binscan/internal/extract"
	"github.com/shirou/binscan/internal/sig"
	"github.com/shirou/binscan/internal/structures"
)

func init() {
	sig.Register(sig.Signature{
		Name:        "vxworks_symtab",
		Magic:       [][]byte{{0x00, 0x00, 0x00, 0x00, 'V', 'x', 'W', 'o'}},
		MagicOffset: 0,
		Description: "VxWorks symbol table",
		Parser:      vxworksSymTabParser,
		Extractor:   &sig.Extractor{Internal: extract.VxWorksSymTab},
	})
	sig.Register(sig.Signature{
		Name:        "vxworks_version",
		Short:       false,
		Magic:       [][]byte{[]byte("VxWorks WIND version ")},
		Description: "VxWorks WIND kernel version",
		Parser:      vxworksVersionParser,
	})
}

func vxworksSymTabParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	ext := &sig.Extractor{Internal: extract.VxWorksSymTab}
	size, ok := dryRun(ext, buffer, offset)
	if !ok {
		return sig.Result{}, sig.Errf("vxworks symtab dry run failed")
	}
	return sig.Result{
		Offset:      offset,
		Description: withSize("VxWorks symbol table", size),
		Confidence:  sig.ConfidenceLow,
		Size:        size,
	}, nil
}

func vxworksVersionParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	if offset > len(buffer) {
		return sig.Result{}, sig.Errf("offset out of range")
	}
	version, err := structures.VxWorksKernelVersion(buffer[offset:])
	if err != nil {
		return sig.Result{}, sig.Errf("%v", err)
	}
	return sig.Result{
		Offset:      offset,
		Description: "VxWorks WIND kernel version \"" + version + "\"",
		Confidence:  sig.ConfidenceLow,
		Size:        0,
	}, nil
}
