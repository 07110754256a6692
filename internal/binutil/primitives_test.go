package binutil

import "testing"

func TestCRC32(t *testing.T) {
	// Known IEEE CRC32 of "123456789" is 0xCBF43926.
	if got := CRC32([]byte("123456789")); got != 0xCBF43926 {
		t.Errorf("CRC32() = %#x, want 0xCBF43926", got)
	}
}

func TestCString(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"terminated", []byte("hello\x00world"), "hello"},
		{"no terminator", []byte("hello"), "hello"},
		{"empty", []byte{}, ""},
		{"leading nul", []byte{0x00, 'a'}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CString(tt.data); got != tt.want {
				t.Errorf("CString(%q) = %q, want %q", tt.data, got, tt.want)
			}
		})
	}
}

func TestCStringMax(t *testing.T) {
	if got := CStringMax([]byte("abcdefgh\x00"), 4); got != "abcd" {
		t.Errorf("CStringMax() = %q, want %q", got, "abcd")
	}
	if got := CStringMax([]byte("ab\x00"), 10); got != "ab" {
		t.Errorf("CStringMax() = %q, want %q", got, "ab")
	}
}

func TestStep(t *testing.T) {
	tests := []struct {
		name                         string
		available, current, previous int
		wantErr                      bool
	}{
		{"forward progress", 100, 10, 5, false},
		{"no progress", 100, 5, 5, true},
		{"backward", 100, 4, 5, true},
		{"out of bounds", 100, 101, 5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Step(tt.available, tt.current, tt.previous)
			if tt.wantErr && err == nil {
				t.Errorf("Step() expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Step() unexpected error: %v", err)
			}
		})
	}
}

func TestMinInt(t *testing.T) {
	if MinInt(3, 5) != 3 {
		t.Errorf("MinInt(3, 5) != 3")
	}
	if MinInt(5, 3) != 3 {
		t.Errorf("MinInt(5, 3) != 3")
	}
}

func TestEpochToString(t *testing.T) {
	got := EpochToString(0)
	want := "1970-01-01 00:00:00 +0000"
	if got != want {
		t.Errorf("EpochToString(0) = %q, want %q", got, want)
	}
}
