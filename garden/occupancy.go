package garden

import "github.com/lixenwraith/muckpond/core"

// Place links agent to an unoccupied, unripe cell
func (g *Graph) Place(agent AgentID, id CellID) bool {
	c := &g.cells[id]
	if c.Occupied() || c.ripe {
		return false
	}
	c.occupant = agent
	return true
}

// Move relocates agent from one cell to an unoccupied neighbor in a single step
// Both links change together so no cell is ever seen with two occupants or none mid-move
// Moving onto a ripe cell marks it landing until Consume
func (g *Graph) Move(agent AgentID, from, to CellID) bool {
	src, dst := &g.cells[from], &g.cells[to]
	if src.occupant != agent || dst.Occupied() {
		return false
	}
	src.occupant, dst.occupant = NoAgent, agent
	src.landing = false
	dst.landing = dst.ripe
	core.Assert(src.occupant == NoAgent && dst.occupant == agent, "move %d: %d -> %d", agent, from, to)
	return true
}

// Release unlinks agent from its cell, used when a forager is torn down
func (g *Graph) Release(agent AgentID, id CellID) {
	c := &g.cells[id]
	if c.occupant == agent {
		c.occupant = NoAgent
		c.landing = false
	}
}

// Occupant returns the agent on id, or NoAgent
func (g *Graph) Occupant(id CellID) AgentID {
	return g.cells[id].occupant
}
