// File: prettyprint.go
// Role: PrettyStr -- deterministic, human-readable formatting for Numbers
// (spec §6 "pretty_str(value) is deterministic"). SI prefix is chosen from
// a fixed table keyed on the representative magnitude of the value; numeric
// formatting uses PrintDigits significant digits.

package literal

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/atopile/atopile-sub011/units"
)

// siPrefixes pairs a power-of-ten threshold with its SI prefix symbol, in
// descending order (spec §4.7: "T,G,M,k,_,m,µ,n,p").
var siPrefixes = []struct {
	exp    int
	symbol string
}{
	{12, "T"}, {9, "G"}, {6, "M"}, {3, "k"}, {0, ""},
	{-3, "m"}, {-6, "µ"}, {-9, "n"}, {-12, "p"},
}

// representativeMagnitude picks the value used to choose an SI prefix: the
// largest finite absolute bound across all intervals, or 0 when every
// bound is zero or infinite.
func representativeMagnitude(s NumericSet) float64 {
	var max float64
	for _, iv := range s.intervals {
		for _, v := range [2]float64{iv.Min, iv.Max} {
			if math.IsInf(v, 0) {
				continue
			}
			if a := math.Abs(v); a > max {
				max = a
			}
		}
	}

	return max
}

func prefixFor(magnitude float64) (float64, string) {
	if magnitude == 0 {
		return 1, ""
	}
	for _, p := range siPrefixes {
		threshold := math.Pow(10, float64(p.exp))
		if magnitude >= threshold {
			return threshold, p.symbol
		}
	}

	return math.Pow(10, -12), "p"
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', PrintDigits, 64)
}

// PrettyStr renders n deterministically (spec §6):
//   - singleton -> "valueunit" (no space, e.g. "1.5V")
//   - all-singleton (discrete) set -> "{v1, v2, ...}unit"
//   - interval with center and < 25% relative tolerance -> "center±tol%unit"
//   - otherwise -> "lo..hiunit"
//   - infinite bounds render as ℝ, ℝ+, ℝ⁻, ≥v, ≤v.
func (n Numbers) PrettyStr() string {
	scale, prefix := prefixFor(representativeMagnitude(n.Set))
	symbol := prefix + units.CompactRepr(n.Unit)

	if n.Set.IsEmpty() {
		return "{}" + symbol
	}

	if n.Set.IsSingleton() {
		v, _ := n.Set.GetSingle()
		return fmt.Sprintf("%s%s", formatNumber(v/scale), symbol)
	}

	allSingleton := true
	for _, iv := range n.Set.intervals {
		if !iv.isSingleton() {
			allSingleton = false
			break
		}
	}
	if allSingleton {
		parts := make([]string, len(n.Set.intervals))
		for i, iv := range n.Set.intervals {
			parts[i] = formatNumber(iv.Min / scale)
		}
		return fmt.Sprintf("{%s}%s", strings.Join(parts, ", "), symbol)
	}

	if len(n.Set.intervals) == 1 {
		iv := n.Set.intervals[0]
		if s, ok := formatUnboundedInterval(iv, scale, symbol); ok {
			return s
		}

		center := (iv.Min + iv.Max) / 2
		tol := (iv.Max - iv.Min) / 2
		if center != 0 {
			relTol := math.Abs(tol / center)
			if relTol < 0.25 {
				return fmt.Sprintf("%s±%s%%%s", formatNumber(center/scale), formatNumber(relTol*100), symbol)
			}
		}

		return fmt.Sprintf("%s..%s%s", formatNumber(iv.Min/scale), formatNumber(iv.Max/scale), symbol)
	}

	parts := make([]string, len(n.Set.intervals))
	for i, iv := range n.Set.intervals {
		parts[i] = fmt.Sprintf("%s..%s", formatNumber(iv.Min/scale), formatNumber(iv.Max/scale))
	}

	return fmt.Sprintf("{%s}%s", strings.Join(parts, ", "), symbol)
}

func formatUnboundedInterval(iv Interval, scale float64, symbol string) (string, bool) {
	negInf, posInf := math.IsInf(iv.Min, -1), math.IsInf(iv.Max, 1)

	switch {
	case negInf && posInf:
		return "ℝ" + symbol, true
	case posInf && iv.Min == 0:
		return "ℝ+" + symbol, true
	case negInf && iv.Max == 0:
		return "ℝ⁻" + symbol, true
	case negInf:
		return fmt.Sprintf("≤%s%s", formatNumber(iv.Max/scale), symbol), true
	case posInf:
		return fmt.Sprintf("≥%s%s", formatNumber(iv.Min/scale), symbol), true
	default:
		return "", false
	}
}
