package structures

import "testing"

func TestParsePDF(t *testing.T) {
	tests := []struct {
		name   string
		buffer []byte
		offset int
		want   bool
	}{
		{"at buffer start", []byte("%PDF-1.4"), 0, false},
		{"preceded by CR", []byte("\r%PDF-1.4"), 1, true},
		{"preceded by LF only", []byte("\n%PDF-1.4"), 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePDF(tt.buffer, tt.offset)
			if got.WindowsStyle != tt.want {
				t.Errorf("ParsePDF() WindowsStyle = %v, want %v", got.WindowsStyle, tt.want)
			}
		})
	}
}
