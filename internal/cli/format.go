// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMass formats a mass in kilograms with a sensible unit.
// e.g., 0.021 -> "21 g", 640 -> "640 kg", 60000 -> "60.0 t"
func FormatMass(kg float64) string {
	abs := math.Abs(kg)
	switch {
	case abs >= 1000:
		return fmt.Sprintf("%.1f t", kg/1000)
	case abs >= 1:
		return FormatNumber(int64(math.Round(kg))) + " kg"
	case abs > 0:
		return fmt.Sprintf("%.0f g", kg*1000)
	default:
		return "0 g"
	}
}

// FormatMassKg formats a mass strictly in kilograms, the canonical unit
// of the table. e.g., 1750 -> "1750.00 kg"
func FormatMassKg(kg float64) string {
	if kg >= 1000 {
		return FormatNumber(int64(math.Round(kg))) + " kg"
	}
	return strconv.FormatFloat(round2(kg), 'f', -1, 64) + " kg"
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatCoord formats a latitude or longitude in degrees with a
// hemisphere suffix. isLat selects N/S vs E/W.
func FormatCoord(deg float64, isLat bool) string {
	suffix := "E"
	if isLat {
		suffix = "N"
		if deg < 0 {
			suffix = "S"
		}
	} else if deg < 0 {
		suffix = "W"
	}
	return fmt.Sprintf("%.3f°%s", math.Abs(deg), suffix)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-100 percentage value.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatYearRange formats an inclusive year span. e.g., "860 – 2013"
func FormatYearRange(min, max int) string {
	if min == max {
		return strconv.Itoa(min)
	}
	return fmt.Sprintf("%d – %d", min, max)
}
