package binutil

import "testing"

func TestParse(t *testing.T) {
	layout := Layout{
		{Name: "magic", Type: U32},
		{Name: "version", Type: U16},
		{Name: "flag", Type: U8},
	}

	tests := []struct {
		name    string
		data    []byte
		endian  Endian
		want    Record
		wantErr bool
	}{
		{
			name:   "little endian",
			data:   []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07},
			endian: LittleEndian,
			want:   Record{"magic": 0x04030201, "version": 0x0605, "flag": 0x07},
		},
		{
			name:   "big endian",
			data:   []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07},
			endian: BigEndian,
			want:   Record{"magic": 0x01020304, "version": 0x0506, "flag": 0x07},
		},
		{
			name:    "too short",
			data:    []byte{0x01, 0x02},
			endian:  LittleEndian,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := Parse(tt.data, layout, tt.endian)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			for k, v := range tt.want {
				if rec[k] != v {
					t.Errorf("field %q = %#x, want %#x", k, rec[k], v)
				}
			}
		})
	}
}

func TestLayoutSize(t *testing.T) {
	l := Layout{{Type: U32}, {Type: U16}, {Type: U8}}
	if got, want := l.Size(), 7; got != want {
		t.Errorf("Layout.Size() = %d, want %d", got, want)
	}
}

func TestU24Decode(t *testing.T) {
	layout := Layout{{Name: "v", Type: U24}}
	rec, err := Parse([]byte{0x01, 0x02, 0x03}, layout, BigEndian)
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	if rec["v"] != 0x010203 {
		t.Errorf("U24 big endian = %#x, want 0x010203", rec["v"])
	}

	rec, err = Parse([]byte{0x01, 0x02, 0x03}, layout, LittleEndian)
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	if rec["v"] != 0x030201 {
		t.Errorf("U24 little endian = %#x, want 0x030201", rec["v"])
	}
}
