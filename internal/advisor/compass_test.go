package advisor

import "testing"

func TestDegreesToCardinal(t *testing.T) {
	tests := []struct {
		degrees float64
		want    string
	}{
		{0, "N"},
		{360, "N"}, // periodic mod 360
		{359, "N"}, // rounds up past the 348.75 boundary
		{348.75, "N"},
		{348.74, "NNW"},
		{11.24, "N"},
		{11.25, "NNE"},
		{45, "NE"},
		{90, "E"},
		{135, "SE"},
		{180, "S"},
		{200, "SSW"}, // 200/22.5 rounds to point 9, past the S sector
		{225, "SW"},
		{270, "W"},
		{315, "NW"},
		{292.5, "WNW"},
	}

	for _, tt := range tests {
		if got := DegreesToCardinal(tt.degrees); got != tt.want {
			t.Errorf("DegreesToCardinal(%v) = %q, want %q", tt.degrees, got, tt.want)
		}
	}
}
