// Package reward implements the threat model that couples the rewards
// of the Guard and the Hostile.
//
// The threat posed to the VIP decays exponentially with the distance
// between the VIP and the Hostile. A Guard which stands between the two
// covers the VIP and reduces the threat, in proportion to how closely
// it is aligned with the Hostile as seen from the VIP.
package reward

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/samuelfneumann/bodyguard/grid"
)

const (
	// ThreatScale scales the distance threat, which decays as
	// exp(-distance)
	ThreatScale float64 = 70

	// CoverageScale is the maximum threat removed by a covering Guard
	CoverageScale float64 = 10

	// StrayPenalty is charged to the Guard when it stands on the VIP or
	// strays further than StrayDst2 from it
	StrayPenalty float64 = 10

	// StrayDst2 is the largest squared distance from the VIP at which
	// the Guard is not penalized
	StrayDst2 float64 = 4

	// SufferingBaseline is the suffering setting that leaves rewards
	// unchanged
	SufferingBaseline float64 = 26
)

// ThreatLevel returns the threat posed by the Hostile to the VIP, given
// the position of the Guard. If the Hostile stands on the VIP the
// threat is 0.
func ThreatLevel(vip, guard, hostile grid.Cell) float64 {
	tv := hostile.Sub(vip).Vec()
	gv := guard.Sub(vip).Vec()

	tv2 := r2.Norm2(tv)
	if tv2 == 0 {
		return 0
	}

	threat := ThreatScale * math.Exp(-math.Sqrt(grid.Dst2(vip, hostile)))

	if gv2 := r2.Norm2(gv); gv2 != 0 && gv2 < tv2 {
		coverage := CoverageScale * math.Max(r2.Dot(tv, gv), 0) /
			math.Sqrt(tv2*gv2)
		threat -= coverage
	}

	return threat
}

// Guard returns the reward of the Guard standing at guard
func Guard(vip, guard, hostile grid.Cell) float64 {
	r := -1 - ThreatLevel(vip, guard, hostile)

	if dst2 := grid.Dst2(vip, guard); dst2 > StrayDst2 || dst2 <= 0 {
		r -= StrayPenalty
	}
	return r
}

// Hostile returns the reward of the Hostile standing at hostile
func Hostile(vip, guard, hostile grid.Cell) float64 {
	return -1 + ThreatLevel(vip, guard, hostile)
}

// Suffer returns the reward r adjusted by a suffering offset. Only the
// reward used for learning is adjusted, statistics use r.
func Suffer(r, offset float64) float64 {
	return r - offset
}

// SufferingOffset converts a suffering setting into the offset passed
// to Suffer
func SufferingOffset(suffering float64) float64 {
	return suffering - SufferingBaseline
}
