// Package partition implements the team-balancing algorithm. It is pure:
// the same lobby order and bounds always produce the same partition.
package partition

import (
	"github.com/JunFolioGame/API-BackEnd/internal/model"
)

// Service computes team partitions
type Service struct{}

// New creates a new partition service
func New() *Service {
	return &Service{}
}

// Partition splits players into teams under the given bounds. Players keep
// their input (join) order; team k receives the players at positions
// k, k+n, k+2n, ... so team sizes never differ by more than one, with
// earlier teams taking the extra member.
//
// Returns model.ErrInfeasiblePartition if no team count satisfies the
// bounds for this population.
func (s *Service) Partition(players []model.LobbyMember, bounds model.TeamBounds) (*model.Partition, error) {
	n, err := s.teamCount(len(players), bounds)
	if err != nil {
		return nil, err
	}

	teams := make([][]model.LobbyMember, n)
	for i, p := range players {
		teams[i%n] = append(teams[i%n], p)
	}

	return &model.Partition{Teams: teams}, nil
}

// teamCount selects the number of teams for the given population.
//
// The scan runs twice over the allowed per-team sizes in increasing order:
// the first pass only accepts sizes that divide the population exactly
// (perfectly even teams), the second accepts the first size whose quotient
// fits the team-count bound, leaving a remainder for round-robin to spread.
func (s *Service) teamCount(playerCount int, bounds model.TeamBounds) (int, error) {
	for size := bounds.TeamPlayersMin; size <= bounds.TeamPlayersMax; size++ {
		if playerCount%size != 0 {
			continue
		}
		if n := playerCount / size; n >= 1 && n <= bounds.TeamMax {
			return n, nil
		}
	}

	for size := bounds.TeamPlayersMin; size <= bounds.TeamPlayersMax; size++ {
		if playerCount%size == 0 {
			continue
		}
		if n := playerCount / size; n >= 1 && n <= bounds.TeamMax {
			return n, nil
		}
	}

	return 0, model.ErrInfeasiblePartition
}
