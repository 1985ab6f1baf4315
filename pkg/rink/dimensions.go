package rink

import "github.com/matzehuels/rinkplot/pkg/geom"

// Rink dimensions in feet.
const (
	HalfLength = 100.0
	HalfWidth  = 42.5

	CornerRadius = 28.0

	// GoalLineX is the distance from center ice to each goal line,
	// 11 ft from the end boards.
	GoalLineX = 89.0

	// BlueLineX is the inner edge of each blue line; the neutral zone is 50 ft.
	BlueLineX = 25.0

	FaceoffRadius   = 15.0
	FaceoffDotX     = 69.0
	FaceoffDotY     = 22.0
	NeutralDotX     = 20.0
	DotRadius       = 1.0
	CenterDotRadius = 0.5

	RefereeCreaseRadius = 10.0

	// HashmarkHalfGap is half of the 5'7" gap between hashmarks.
	HashmarkHalfGap = 67.0 / 24
	HashmarkLength  = 2.0

	NetDepth     = 20.0 / 12
	NetHalfWidth = 3.0

	CreaseDepth     = 4.5
	CreaseCap       = 2.0
	CreaseHalfWidth = 4.0

	// Restricted area lines run from the goal line 8' outside the posts
	// (11 ft from center) to the end boards 11' outside the posts (14 ft).
	RestrictedInnerY = 11.0
	RestrictedOuterY = 14.0
)

// HashmarkEdge is how far above and below a faceoff dot the hashmarks
// start: the offset of the chord of the faceoff circle whose half-length
// is HashmarkHalfGap.
func HashmarkEdge() float64 {
	return geom.ChordOffset(FaceoffRadius, HashmarkHalfGap)
}

// EndBoardY is the half-length of a goal line. The goal line stops where
// it meets the corner arc: the arc's center sits CornerRadius-11 ft from
// the goal line and HalfWidth-CornerRadius ft from the long axis.
func EndBoardY() float64 {
	endGap := HalfLength - GoalLineX
	return geom.ChordOffset(CornerRadius, CornerRadius-endGap) + (HalfWidth - CornerRadius)
}
