package gridmap

// ArenaLayout is the stock 20x20 arena. The centre is open so a player can spawn there.
var ArenaLayout = []string{
	"....................",
	"....................",
	"..##............##..",
	"..#..............#..",
	"....................",
	"......##....##......",
	"......#......#......",
	"....................",
	"....................",
	"...#............#...",
	"...#............#...",
	"....................",
	"....................",
	"......#......#......",
	"......##....##......",
	"....................",
	"..#..............#..",
	"..##............##..",
	"....................",
	"....................",
}

// NewArena returns the stock arena with the given cell size.
func NewArena(cellSize float64) *Grid {
	return MustParse(ArenaLayout, cellSize)
}
