package signatures

import (
	"github.com/shirou/binscan/internal/sig"
	"github.com/shirou/binscan/internal/structures"
)

func init() {
	sig.Register(sig.Signature{
		Name:        "linux_boot_image",
		Short:       true,
		Magic:       [][]byte{{0xEB}},
		Description: "Linux boot image",
		Parser:      linuxBootParser,
	})
	sig.Register(sig.Signature{
		Name:        "linux_kernel_version",
		Magic:       [][]byte{[]byte("Linux version ")},
		Description: "Linux kernel version string",
		Parser:      linuxVersionParser,
	})
}

func linuxBootParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	if offset != 0 {
		return sig.Result{}, sig.Errf("boot sector only meaningful at offset 0")
	}
	if _, err := structures.ParseLinuxBootImage(buffer); err != nil {
		return sig.Result{}, sig.Errf("%v", err)
	}
	return sig.Result{
		Offset:      0,
		Description: "Linux boot image",
		Confidence:  sig.ConfidenceMedium,
	}, nil
}

func linuxVersionParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	if offset > len(buffer) {
		return sig.Result{}, sig.Errf("offset out of range")
	}
	version, err := structures.ParseLinuxKernelVersion(buffer[offset:])
	if err != nil {
		return sig.Result{}, sig.Errf("%v", err)
	}
	return sig.Result{
		Offset:      offset,
		Description: "Linux kernel version \"" + version + "\"",
		Confidence:  sig.ConfidenceMedium,
	}, nil
}
