package extract

import "testing"

func TestExternal(t *testing.T) {
	ext := External("xz", []string{"-d", "-k"}, "decompressed.bin")
	if ext.Internal != nil {
		t.Errorf("External() set Internal, want nil")
	}
	if !ext.IsExternal() {
		t.Errorf("IsExternal() = false, want true")
	}
	if ext.External.Command != "xz" {
		t.Errorf("Command = %q, want xz", ext.External.Command)
	}
	if len(ext.External.Args) != 2 || ext.External.Args[0] != "-d" || ext.External.Args[1] != "-k" {
		t.Errorf("Args = %v, want [-d -k]", ext.External.Args)
	}
	if len(ext.External.ExpectedOutputs) != 1 || ext.External.ExpectedOutputs[0] != "decompressed.bin" {
		t.Errorf("ExpectedOutputs = %v, want [decompressed.bin]", ext.External.ExpectedOutputs)
	}
}

func TestExternalNoExpectedOutputs(t *testing.T) {
	ext := External("ar", []string{"x"})
	if len(ext.External.ExpectedOutputs) != 0 {
		t.Errorf("ExpectedOutputs = %v, want empty", ext.External.ExpectedOutputs)
	}
}
