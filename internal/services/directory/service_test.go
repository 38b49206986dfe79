package directory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/JunFolioGame/API-BackEnd/internal/dependencies/mocks"
	"github.com/JunFolioGame/API-BackEnd/internal/model"
	"github.com/JunFolioGame/API-BackEnd/internal/storage/memory"
	"github.com/JunFolioGame/API-BackEnd/internal/testutil"
)

type DirectoryServiceTestSuite struct {
	suite.Suite

	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
}

func TestDirectoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DirectoryServiceTestSuite))
}

func (s *DirectoryServiceTestSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, DefaultConfig(), testutil.NopLogger())
}

func (s *DirectoryServiceTestSuite) TestCreateGuest() {
	token, err := s.service.CreateGuest(context.Background(), "Ayesha")
	s.Require().NoError(err)

	s.NotEmpty(token.Value)
	s.Equal("Ayesha", token.Player.DisplayName)
	s.True(token.Player.IsGuest)

	stored, err := s.storage.GetPlayer(context.Background(), token.PlayerID)
	s.Require().NoError(err)
	s.Equal("Ayesha", stored.DisplayName)
}

func (s *DirectoryServiceTestSuite) TestCreateGuestDefaultsDisplayName() {
	token, err := s.service.CreateGuest(context.Background(), "")
	s.Require().NoError(err)
	s.Equal(model.DefaultDisplayName, token.Player.DisplayName)
}

func (s *DirectoryServiceTestSuite) TestGuestsGetDistinctIDs() {
	a, err := s.service.CreateGuest(context.Background(), "a")
	s.Require().NoError(err)
	b, err := s.service.CreateGuest(context.Background(), "b")
	s.Require().NoError(err)
	s.NotEqual(a.PlayerID, b.PlayerID)
}

func (s *DirectoryServiceTestSuite) TestRegisterAndLogin() {
	_, err := s.service.Register(context.Background(), "mel", "hunter2!", "Mel")
	s.Require().NoError(err)

	token, err := s.service.Login(context.Background(), "mel", "hunter2!")
	s.Require().NoError(err)
	s.Equal("Mel", token.Player.DisplayName)
	s.False(token.Player.IsGuest)
}

func (s *DirectoryServiceTestSuite) TestRegisterDuplicateUsername() {
	_, err := s.service.Register(context.Background(), "mel", "hunter2!", "Mel")
	s.Require().NoError(err)

	_, err = s.service.Register(context.Background(), "mel", "other", "Other Mel")
	s.ErrorIs(err, ErrUsernameExists)
}

func (s *DirectoryServiceTestSuite) TestLoginWrongPassword() {
	_, err := s.service.Register(context.Background(), "mel", "hunter2!", "Mel")
	s.Require().NoError(err)

	_, err = s.service.Login(context.Background(), "mel", "wrong")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *DirectoryServiceTestSuite) TestLoginUnknownUsername() {
	_, err := s.service.Login(context.Background(), "nobody", "whatever")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *DirectoryServiceTestSuite) TestValidateToken() {
	token, err := s.service.CreateGuest(context.Background(), "guest")
	s.Require().NoError(err)

	validated, err := s.service.ValidateToken(token.Value)
	s.Require().NoError(err)
	s.Equal(token.PlayerID, validated.PlayerID)
}

func (s *DirectoryServiceTestSuite) TestValidateUnknownToken() {
	_, err := s.service.ValidateToken("tok_nope")
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *DirectoryServiceTestSuite) TestTokenExpiry() {
	token, err := s.service.CreateGuest(context.Background(), "guest")
	s.Require().NoError(err)

	s.clock.Advance(25 * time.Hour)

	_, err = s.service.ValidateToken(token.Value)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *DirectoryServiceTestSuite) TestInvalidateToken() {
	token, err := s.service.CreateGuest(context.Background(), "guest")
	s.Require().NoError(err)

	s.service.InvalidateToken(token.Value)

	_, err = s.service.ValidateToken(token.Value)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *DirectoryServiceTestSuite) TestResolveDisplayName() {
	token, err := s.service.CreateGuest(context.Background(), "Ayesha")
	s.Require().NoError(err)

	name, err := s.service.ResolveDisplayName(context.Background(), token.PlayerID)
	s.Require().NoError(err)
	s.Equal("Ayesha", name)
}

func (s *DirectoryServiceTestSuite) TestResolveDisplayNameUnknownPlayer() {
	_, err := s.service.ResolveDisplayName(context.Background(), "missing")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}
