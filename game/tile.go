package game

// TileID identifies a letter tile within one session. Zero is never a valid
// id, so it doubles as "no tile".
type TileID uint32

// NoTile is the zero TileID.
const NoTile TileID = 0

// Palette is the fixed cosmetic tile palette, assigned cyclically by creation
// index. Colors never carry gameplay meaning.
var Palette = [8][3]uint8{
	{239, 83, 80},   // red
	{255, 167, 38},  // orange
	{255, 213, 79},  // yellow
	{102, 187, 106}, // green
	{38, 198, 218},  // cyan
	{66, 165, 245},  // blue
	{171, 71, 188},  // purple
	{236, 64, 122},  // pink
}

// Tile is one draggable letter. Position eases toward the target whenever the
// tile is not being dragged.
type Tile struct {
	ID     TileID
	Letter rune

	X, Y             float64
	TargetX, TargetY float64

	// Color indexes Palette.
	Color int

	Dragging bool
	InTray   bool
	// TrayIndex is the tile's slot in the tray, or -1 when not in the tray.
	TrayIndex int
}

// SetTarget moves the tile's settle target.
func (t *Tile) SetTarget(x, y float64) {
	t.TargetX = x
	t.TargetY = y
}

// Snap moves the tile and its target together, skipping any settle animation.
func (t *Tile) Snap(x, y float64) {
	t.X = x
	t.Y = y
	t.TargetX = x
	t.TargetY = y
}
