package mode

import "testing"

func TestUnmarshalText(t *testing.T) {
	tests := []struct {
		text    string
		want    Mode
		wantErr bool
	}{
		{"r", Refraction, false},
		{"v", Variation, false},
		{"i", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := UnmarshalText(tt.text)
		if (err != nil) != tt.wantErr {
			t.Fatalf("UnmarshalText(%q) error = %v", tt.text, err)
		}
		if got != tt.want {
			t.Errorf("UnmarshalText(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
