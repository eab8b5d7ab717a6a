package garden

import "github.com/lixenwraith/muckpond/vmath"

// CellID indexes a cell in the graph arena
type CellID int

// AgentID indexes a forager in its owner's arena
type AgentID int

const (
	NoCell  CellID  = -1
	NoAgent AgentID = -1
)

// Cell is one growth site of the pond
// Static fields are set at construction, state is mutated only through Graph
type Cell struct {
	ID        CellID
	Row, Col  int
	Rest      vmath.Vec2 // Fixed grid position
	Neighbors []CellID

	// Presentation-adjacent smoothing, nudged away from a pressed pointer
	Display vmath.Vec2
	Goal    vmath.Vec2

	ripe     bool
	mucky    bool
	occupant AgentID

	// landing is set while the occupant has jumped onto a ripe cell and not eaten it yet
	landing bool

	// generation invalidates scheduled spread tasks when the cell is cleaned or reset
	generation uint64
}

func (c *Cell) Ripe() bool { return c.ripe }

func (c *Cell) Mucky() bool { return c.mucky }

func (c *Cell) Occupant() AgentID { return c.occupant }

func (c *Cell) Occupied() bool { return c.occupant != NoAgent }

// Landing reports whether the occupant is about to eat this cell
func (c *Cell) Landing() bool { return c.landing }

// Generation returns the liveness stamp of the cell's spread chain
func (c *Cell) Generation() uint64 { return c.generation }

func (c *Cell) reset() {
	c.ripe = false
	c.mucky = false
	c.occupant = NoAgent
	c.landing = false
	c.generation++
	c.Display = c.Rest
	c.Goal = c.Rest
}

// Predicates for RandomNeighbor

// Clean matches cells without muck
func Clean(c *Cell) bool { return !c.mucky }

// Edible matches unoccupied ripe cells
func Edible(c *Cell) bool { return !c.Occupied() && c.ripe }

// EdibleMucky matches unoccupied ripe mucky cells
func EdibleMucky(c *Cell) bool { return !c.Occupied() && c.ripe && c.mucky }

// Any matches every cell
func Any(*Cell) bool { return true }
