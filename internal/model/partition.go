package model

// Partition is a complete assignment of a lobby snapshot into teams.
// Team order and the order of members within a team are deterministic
// for a given input order.
type Partition struct {
	Teams [][]LobbyMember
}

// TeamCount returns the number of teams in the partition
func (p *Partition) TeamCount() int {
	return len(p.Teams)
}

// PlayerCount returns the total number of players across all teams
func (p *Partition) PlayerCount() int {
	total := 0
	for _, team := range p.Teams {
		total += len(team)
	}
	return total
}
