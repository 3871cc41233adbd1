// SPDX-License-Identifier: MIT

package naca

import "regexp"

// canonical4 lists the 4-digit profiles of NACA Report 460: the symmetric
// 00xx sections plus every M∈{2,4,6}, P∈{2..7} combination at the six
// standard thicknesses.
var canonical4 = [...]string{
	"0006", "0009", "0012", "0015", "0018", "0021", "0025",

	"2206", "2209", "2212", "2215", "2218", "2221",
	"2306", "2309", "2312", "2315", "2318", "2321",
	"2406", "2409", "2412", "2415", "2418", "2421",
	"2506", "2509", "2512", "2515", "2518", "2521",
	"2606", "2609", "2612", "2615", "2618", "2621",
	"2706", "2709", "2712", "2715", "2718", "2721",

	"4206", "4209", "4212", "4215", "4218", "4221",
	"4306", "4309", "4312", "4315", "4318", "4321",
	"4406", "4409", "4412", "4415", "4418", "4421",
	"4506", "4509", "4512", "4515", "4518", "4521",
	"4606", "4609", "4612", "4615", "4618", "4621",
	"4706", "4709", "4712", "4715", "4718", "4721",

	"6206", "6209", "6212", "6215", "6218", "6221",
	"6306", "6309", "6312", "6315", "6318", "6321",
	"6406", "6409", "6412", "6415", "6418", "6421",
	"6506", "6509", "6512", "6515", "6518", "6521",
	"6606", "6609", "6612", "6615", "6618", "6621",
	"6706", "6709", "6712", "6715", "6718", "6721",
}

// canonical5 lists the 5-digit profiles of NACA Report 537 (L=2, TT=12).
var canonical5 = [...]string{
	"21012", "22012", "23012", "24012", "25012",
	"21112", "22112", "23112", "24112", "25112",
}

// canonicalSet indexes both lists. Built once at package init and only read afterwards.
var canonicalSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(canonical4)+len(canonical5))
	for _, d := range canonical4 {
		set[d] = struct{}{}
	}
	for _, d := range canonical5 {
		set[d] = struct{}{}
	}

	return set
}()

// reasonable4 accepts symmetric or fully cambered (M and P both non-zero)
// 4-digit profiles between 1 % and 40 % thick.
var reasonable4 = regexp.MustCompile(`^(00|[1-9][1-9])(0[1-9]|[1-3][0-9]|40)$`)

// IsCanonical reports whether designator is one of the historically
// standardized NACA profiles. Malformed input is simply not canonical.
func IsCanonical(designator string) bool {
	_, ok := canonicalSet[designator]

	return ok
}

// IsReasonable reports whether a 4-digit designator describes a sensible,
// if not canonical, profile. Every canonical 4-digit profile is reasonable.
// 5-digit and malformed designators are never reasonable.
func IsReasonable(designator string) bool {
	return reasonable4.MatchString(designator)
}

// Canonical4 returns a copy of the canonical 4-digit designators.
func Canonical4() []string {
	return append([]string(nil), canonical4[:]...)
}

// Canonical5 returns a copy of the canonical 5-digit designators.
func Canonical5() []string {
	return append([]string(nil), canonical5[:]...)
}

// Class groups designators for display purposes.
type Class int

const (
	// Unusual designators parse but are neither canonical nor reasonable.
	Unusual Class = iota
	// Reasonable 4-digit designators outside the canonical list.
	Reasonable
	// Canonical designators from the NACA reports.
	Canonical
)

// Classify returns Canonical, Reasonable or Unusual for designator.
func Classify(designator string) Class {
	switch {
	case IsCanonical(designator):
		return Canonical
	case IsReasonable(designator):
		return Reasonable
	default:
		return Unusual
	}
}

// String returns the lower-case class name.
func (c Class) String() string {
	switch c {
	case Canonical:
		return "canonical"
	case Reasonable:
		return "reasonable"
	default:
		return "unusual"
	}
}
