package partition

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/JunFolioGame/API-BackEnd/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New()
}

func players(n int) []model.LobbyMember {
	out := make([]model.LobbyMember, n)
	for i := range out {
		out[i] = model.LobbyMember{
			PlayerID:    model.PlayerID(fmt.Sprintf("player-%d", i)),
			DisplayName: fmt.Sprintf("Player %d", i),
		}
	}
	return out
}

func defaultBounds() model.TeamBounds {
	return model.TeamBounds{TeamMin: 2, TeamMax: 4, TeamPlayersMin: 4, TeamPlayersMax: 6}
}

func (s *ServiceSuite) teamSizes(p *model.Partition) []int {
	sizes := make([]int, len(p.Teams))
	for i, team := range p.Teams {
		sizes[i] = len(team)
	}
	return sizes
}

func (s *ServiceSuite) TestEightPlayersMakeTwoEvenTeams() {
	p, err := s.service.Partition(players(8), defaultBounds())
	s.Require().NoError(err)

	s.Equal(2, p.TeamCount())
	s.Equal([]int{4, 4}, s.teamSizes(p))
}

func (s *ServiceSuite) TestNinePlayersGiveFirstTeamTheExtra() {
	p, err := s.service.Partition(players(9), defaultBounds())
	s.Require().NoError(err)

	s.Equal(2, p.TeamCount())
	s.Equal([]int{5, 4}, s.teamSizes(p))
}

func (s *ServiceSuite) TestThirteenPlayersMakeThreeTeams() {
	p, err := s.service.Partition(players(13), defaultBounds())
	s.Require().NoError(err)

	s.Equal(3, p.TeamCount())
	s.Equal([]int{5, 4, 4}, s.teamSizes(p))
}

func (s *ServiceSuite) TestFullCapacityPrefersEvenTeams() {
	// 24 players: size 4 would need 6 teams (over the limit),
	// size 6 divides exactly into 4 teams
	p, err := s.service.Partition(players(24), defaultBounds())
	s.Require().NoError(err)

	s.Equal(4, p.TeamCount())
	s.Equal([]int{6, 6, 6, 6}, s.teamSizes(p))
}

func (s *ServiceSuite) TestRoundRobinAssignmentOrder() {
	p, err := s.service.Partition(players(9), defaultBounds())
	s.Require().NoError(err)

	// Team 0 gets positions 0, 2, 4, 6, 8; team 1 gets 1, 3, 5, 7
	s.Equal(model.PlayerID("player-0"), p.Teams[0][0].PlayerID)
	s.Equal(model.PlayerID("player-2"), p.Teams[0][1].PlayerID)
	s.Equal(model.PlayerID("player-8"), p.Teams[0][4].PlayerID)
	s.Equal(model.PlayerID("player-1"), p.Teams[1][0].PlayerID)
	s.Equal(model.PlayerID("player-7"), p.Teams[1][3].PlayerID)
}

func (s *ServiceSuite) TestPartitionIsDeterministic() {
	first, err := s.service.Partition(players(13), defaultBounds())
	s.Require().NoError(err)

	for i := 0; i < 10; i++ {
		again, err := s.service.Partition(players(13), defaultBounds())
		s.Require().NoError(err)
		s.Equal(first, again)
	}
}

func (s *ServiceSuite) TestSingleSizeBounds() {
	bounds := model.TeamBounds{TeamMin: 1, TeamMax: 8, TeamPlayersMin: 3, TeamPlayersMax: 3}

	p, err := s.service.Partition(players(12), bounds)
	s.Require().NoError(err)
	s.Equal(4, p.TeamCount())
	s.Equal([]int{3, 3, 3, 3}, s.teamSizes(p))
}

func (s *ServiceSuite) TestInfeasibleWhenTeamCountTooHigh() {
	// Every allowed size forces more teams than permitted
	bounds := model.TeamBounds{TeamMin: 1, TeamMax: 3, TeamPlayersMin: 1, TeamPlayersMax: 1}

	_, err := s.service.Partition(players(10), bounds)
	s.ErrorIs(err, model.ErrInfeasiblePartition)
}

func (s *ServiceSuite) TestInfeasibleWhenPopulationBelowAnySize() {
	// Two players cannot fill even the smallest allowed team
	bounds := model.TeamBounds{TeamMin: 1, TeamMax: 2, TeamPlayersMin: 3, TeamPlayersMax: 4}

	_, err := s.service.Partition(players(2), bounds)
	s.ErrorIs(err, model.ErrInfeasiblePartition)
}

func (s *ServiceSuite) TestSizesBalancedAcrossSweep() {
	bounds := defaultBounds()

	for n := bounds.MinPopulation(); n <= bounds.Capacity(); n++ {
		p, err := s.service.Partition(players(n), bounds)
		s.Require().NoError(err, "population %d", n)
		s.Equal(n, p.PlayerCount(), "population %d", n)

		sizes := s.teamSizes(p)
		min, max := sizes[0], sizes[0]
		for _, size := range sizes {
			if size < min {
				min = size
			}
			if size > max {
				max = size
			}
		}
		s.LessOrEqual(max-min, 1, "population %d: sizes %v", n, sizes)
	}
}
