package lattice

// NumDirections is the number of neighbor slots around a lattice node.
const NumDirections = 6

// Direction identifies one of the six cyclic neighbor directions of a hex
// lattice node, in cyclic order Right, TopRight, TopLeft, Left,
// BottomLeft, BottomRight.
type Direction uint8

const (
	// Right is the (+1, 0) direction.
	Right Direction = iota
	// TopRight is the (0, +1) direction.
	TopRight
	// TopLeft is the (-1, +1) direction.
	TopLeft
	// Left is the (-1, 0) direction.
	Left
	// BottomLeft is the (0, -1) direction.
	BottomLeft
	// BottomRight is the (+1, -1) direction.
	BottomRight
)

// offsets maps each Direction to its squished-axis 2D offset. Kept as an
// explicit table so the rectangular storage and the hex-visual layout can
// never disagree.
var offsets = [NumDirections][2]int{
	{1, 0},  // Right
	{0, 1},  // TopRight
	{-1, 1}, // TopLeft
	{-1, 0}, // Left
	{0, -1}, // BottomLeft
	{1, -1}, // BottomRight
}

var directionNames = [NumDirections]string{
	"Right", "TopRight", "TopLeft", "Left", "BottomLeft", "BottomRight",
}

// Opposite returns the direction pointing the other way along the same
// axis. Involutive. Complexity: O(1).
func (d Direction) Opposite() Direction {
	return (d + 3) % NumDirections
}

// RotateCW rotates the direction one step clockwise on the 6-cycle.
// Complexity: O(1).
func (d Direction) RotateCW() Direction {
	return (d + 1) % NumDirections
}

// RotateCCW rotates the direction one step counter-clockwise on the
// 6-cycle. Inverse of RotateCW. Complexity: O(1).
func (d Direction) RotateCCW() Direction {
	return (d + 5) % NumDirections
}

// Offset returns the squished-axis (dx, dy) step for the direction.
// Panics if d is not one of the six declared directions.
// Complexity: O(1).
func (d Direction) Offset() (dx, dy int) {
	return offsets[d][0], offsets[d][1]
}

// String returns the direction name, e.g. "TopRight".
func (d Direction) String() string {
	return directionNames[d]
}
