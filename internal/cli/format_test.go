package cli

import "testing"

func TestFormatMass(t *testing.T) {
	tests := []struct {
		kg   float64
		want string
	}{
		{0, "0 g"},
		{0.021, "21 g"},
		{0.5, "500 g"},
		{1, "1 kg"},
		{40, "40 kg"},
		{999, "999 kg"},
		{1750, "1.8 t"},
		{60000, "60.0 t"},
	}

	for _, tt := range tests {
		if got := FormatMass(tt.kg); got != tt.want {
			t.Errorf("FormatMass(%v) = %q, want %q", tt.kg, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{45716, "45,716"},
		{1234567, "1,234,567"},
		{-5000, "-5,000"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.n); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatCoord(t *testing.T) {
	tests := []struct {
		deg   float64
		isLat bool
		want  string
	}{
		{27.2, true, "27.200°N"},
		{-19.583, true, "19.583°S"},
		{6.083, false, "6.083°E"},
		{-3.4, false, "3.400°W"},
	}

	for _, tt := range tests {
		if got := FormatCoord(tt.deg, tt.isLat); got != tt.want {
			t.Errorf("FormatCoord(%v, %v) = %q, want %q", tt.deg, tt.isLat, got, tt.want)
		}
	}
}

func TestFormatYearRange(t *testing.T) {
	if got := FormatYearRange(860, 2013); got != "860 – 2013" {
		t.Errorf("FormatYearRange = %q", got)
	}
	if got := FormatYearRange(1998, 1998); got != "1998" {
		t.Errorf("single-year range = %q", got)
	}
}

func TestRenderSparkline(t *testing.T) {
	if got := RenderSparkline(nil); got != "" {
		t.Errorf("empty input = %q, want empty", got)
	}

	line := RenderSparkline([]float64{0, 1, 2, 4})
	if len([]rune(line)) != 4 {
		t.Errorf("sparkline length = %d, want 4", len([]rune(line)))
	}

	// All-zero input should not divide by zero.
	if got := RenderSparkline([]float64{0, 0}); len([]rune(got)) != 2 {
		t.Errorf("all-zero sparkline = %q", got)
	}
}

func TestRenderHorizontalBar(t *testing.T) {
	if got := RenderHorizontalBar(5, 10, 10); len([]rune(got)) != 5 {
		t.Errorf("half bar = %q", got)
	}
	if got := RenderHorizontalBar(20, 10, 10); len([]rune(got)) != 10 {
		t.Errorf("overflow bar should clamp, got %q", got)
	}
	if got := RenderHorizontalBar(5, 0, 10); got != "" {
		t.Errorf("zero max = %q, want empty", got)
	}
}
