package rink

// Shapes returns the full catalog of rink markings in drawing order. The
// result is freshly allocated on every call and the same for every
// viewport and orientation.
func Shapes() []Shape {
	shapes := make([]Shape, 0, 96)
	shapes = append(shapes, centerIce()...)
	for _, side := range [...]float64{-1, 1} {
		shapes = append(shapes, blueLine(side))
		shapes = append(shapes, faceoffSpots(side)...)
		shapes = append(shapes, faceoffMarks(side)...)
		shapes = append(shapes, net(side)...)
		shapes = append(shapes, crease(side)...)
		shapes = append(shapes, restrictedArea(side)...)
		shapes = append(shapes, boards(side)...)
		shapes = append(shapes, goalLine(side))
	}
	return shapes
}

// centerIce holds the only unmirrored markings.
func centerIce() []Shape {
	return []Shape{
		// 1' wide; the other red lines are 2" but drawn thicker
		rect("center-red-line", -0.5, -HalfWidth, 1, 2*HalfWidth, Red, LayerMarkings, 0),
		circle("center-dot", 0, 0, CenterDotRadius, Blue, true, LayerMarkings, 0),
		circle("center-circle", 0, 0, FaceoffRadius, Red, false, LayerMarkings, 0),
		arc("referee-crease", 0, -HalfWidth, 2*RefereeCreaseRadius, 2*RefereeCreaseRadius, 0, 180, Red, LayerMarkings, 0),
	}
}

func blueLine(side float64) Shape {
	return rect("blue-line", BlueLineX*side, -HalfWidth, side, 2*HalfWidth, Blue, LayerMarkings, int(side))
}

// faceoffSpots returns the zone dots, the neutral zone dots and the
// faceoff circles on one side of center.
func faceoffSpots(side float64) []Shape {
	var out []Shape
	for _, y := range [...]float64{-FaceoffDotY, FaceoffDotY} {
		out = append(out,
			circle("faceoff-dot", FaceoffDotX*side, y, DotRadius, Red, true, LayerMarkings, int(side)),
			circle("neutral-dot", NeutralDotX*side, y, DotRadius, Red, true, LayerMarkings, int(side)),
			circle("faceoff-circle", FaceoffDotX*side, y, FaceoffRadius, Red, false, LayerMarkings, int(side)),
		)
	}
	return out
}

// faceoffMarks returns the L-shaped faceoff lines and the hashmarks that
// face direction side, for both end zone circles at once. Calling it for
// both sides covers each circle from the left and the right.
func faceoffMarks(side float64) []Shape {
	const (
		lineStart = 2.0  // from the dot along x
		lineEnd   = 6.0  // 4' long
		lineY     = 1.75 // from the dot along y
		lineTop   = 4.75 // 3' tall
	)
	edge := HashmarkEdge()
	s := int(side)

	var out []Shape
	for _, y := range [...]float64{-FaceoffDotY, FaceoffDotY} {
		for _, circleSide := range [...]float64{-1, 1} {
			cx := FaceoffDotX * circleSide
			x0 := cx + lineStart*side
			x1 := cx + lineEnd*side
			out = append(out,
				line("faceoff-line", x0, y+lineY, x1, y+lineY, Red, LayerMarkings, s),
				line("faceoff-line", x0, y-lineY, x1, y-lineY, Red, LayerMarkings, s),
				line("faceoff-line", x0, y+lineY, x0, y+lineTop, Red, LayerMarkings, s),
				line("faceoff-line", x0, y-lineY, x0, y-lineTop, Red, LayerMarkings, s),
			)

			hx := cx + HashmarkHalfGap*side
			out = append(out,
				line("hashmark", hx, y-edge, hx, y-edge-HashmarkLength, Red, LayerMarkings, s),
				line("hashmark", hx, y+edge, hx, y+edge+HashmarkLength, Red, LayerMarkings, s),
			)
		}
	}
	return out
}

// net is the goal frame on the goal line with its rounded back.
func net(side float64) []Shape {
	s := int(side)
	backX := (GoalLineX + NetDepth) * side
	return []Shape{
		rect("net", GoalLineX*side, -NetHalfWidth, NetDepth*side, 2*NetHalfWidth, Grey, LayerBoards, s),
		halfEllipse("net-back", backX, 0, NetDepth, NetHalfWidth, 270+180*side, 270, Grey, LayerBoards, s),
	}
}

// crease is the shaded goal crease plus its red outline: a rectangle 4'6"
// out from the goal line capped by a half-ellipse 2' deep.
func crease(side float64) []Shape {
	s := int(side)
	capX := (GoalLineX - CreaseDepth) * side
	return []Shape{
		rect("crease", GoalLineX*side, -CreaseHalfWidth, -CreaseDepth*side, 2*CreaseHalfWidth, LightBlue, LayerCrease, s),
		halfEllipse("crease-cap", capX, 0, CreaseCap, CreaseHalfWidth, 270-180*side, 270, LightBlue, LayerCrease, s),
		line("crease-outline", GoalLineX*side, -CreaseHalfWidth, capX, -CreaseHalfWidth, Red, LayerOutlines, s),
		line("crease-outline", GoalLineX*side, CreaseHalfWidth, capX, CreaseHalfWidth, Red, LayerOutlines, s),
		arc("crease-outline-arc", capX, 0, 2*CreaseCap, 2*CreaseHalfWidth, 90*side, 270*side, Red, LayerOutlines, s),
	}
}

// restrictedArea is the trapezoid behind the net where goaltenders may
// play the puck.
func restrictedArea(side float64) []Shape {
	s := int(side)
	return []Shape{
		line("restricted-area", GoalLineX*side, -RestrictedInnerY, HalfLength*side, -RestrictedOuterY, Red, LayerMarkings, s),
		line("restricted-area", GoalLineX*side, RestrictedInnerY, HalfLength*side, RestrictedOuterY, Red, LayerMarkings, s),
	}
}

// boards returns the two corner arcs at one end, the straight end boards
// between them, and the side boards along y = HalfWidth*side. A side board
// spans both ends and is its own mirror image, so it carries side 0.
func boards(side float64) []Shape {
	s := int(side)
	cx := (HalfLength - CornerRadius) * side
	cy := HalfWidth - CornerRadius
	d := 2 * CornerRadius
	return []Shape{
		arc("corner-boards", cx, cy, d, d, 45-45*side, 135-45*side, Black, LayerBoards, s),
		arc("corner-boards", cx, -cy, d, d, 225+45*side, 135-135*side, Black, LayerBoards, s),
		line("side-boards", HalfLength-CornerRadius, HalfWidth*side, CornerRadius-HalfLength, HalfWidth*side, Black, LayerBoards, 0),
		line("end-boards", HalfLength*side, cy, HalfLength*side, -cy, Black, LayerBoards, s),
	}
}

func goalLine(side float64) Shape {
	y := EndBoardY()
	return line("goal-line", GoalLineX*side, -y, GoalLineX*side, y, Red, LayerOutlines, int(side))
}
