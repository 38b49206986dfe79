package factory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JunFolioGame/API-BackEnd/internal/factory"
	"github.com/JunFolioGame/API-BackEnd/internal/model"
)

// Full flow through wired services: guests get identities from the
// directory, a session is created and filled, and finalize partitions
// the lobby into teams.
func TestSessionFlow(t *testing.T) {
	app := factory.NewTestApp()
	ctx := context.Background()

	creator, err := app.Directory.CreateGuest(ctx, "Hana")
	require.NoError(t, err)

	app.MockRandom.QueueCode("FLOWAB")
	bounds := model.TeamBounds{TeamMin: 2, TeamMax: 4, TeamPlayersMin: 4, TeamPlayersMax: 6}
	sess, err := app.SessionController.Create(ctx, creator.PlayerID, bounds)
	require.NoError(t, err)
	assert.Equal(t, model.SessionID("FLOWAB"), sess.Code)
	assert.True(t, sess.Active)

	for i := 0; i < 8; i++ {
		guest, err := app.Directory.CreateGuest(ctx, "")
		require.NoError(t, err)
		require.NoError(t, app.SessionController.Join(ctx, sess.Code, guest.PlayerID))
	}

	finalized, partition, err := app.SessionController.Finalize(ctx, sess.Code, creator.PlayerID)
	require.NoError(t, err)
	assert.False(t, finalized.Active)
	require.NotNil(t, finalized.FinalTeamCount)
	assert.Equal(t, 2, *finalized.FinalTeamCount)
	require.Equal(t, 2, partition.TeamCount())
	assert.Len(t, partition.Teams[0], 4)
	assert.Len(t, partition.Teams[1], 4)

	// Members carry the directory's default display name
	assert.Equal(t, model.DefaultDisplayName, partition.Teams[0][0].DisplayName)

	// Finalize is one-shot
	_, _, err = app.SessionController.Finalize(ctx, sess.Code, creator.PlayerID)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestSessionCapacityAcrossServices(t *testing.T) {
	app := factory.NewTestApp()
	ctx := context.Background()

	creator, err := app.Directory.CreateGuest(ctx, "host")
	require.NoError(t, err)

	app.MockRandom.QueueCode("CAPFUL")
	bounds := model.TeamBounds{TeamMin: 1, TeamMax: 1, TeamPlayersMin: 1, TeamPlayersMax: 2}
	sess, err := app.SessionController.Create(ctx, creator.PlayerID, bounds)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		guest, err := app.Directory.CreateGuest(ctx, "")
		require.NoError(t, err)
		require.NoError(t, app.SessionController.Join(ctx, sess.Code, guest.PlayerID))
	}

	extra, err := app.Directory.CreateGuest(ctx, "")
	require.NoError(t, err)
	err = app.SessionController.Join(ctx, sess.Code, extra.PlayerID)
	assert.ErrorIs(t, err, model.ErrSessionFull)
}

func TestFactoryDefaultsToMemoryStorage(t *testing.T) {
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)
	require.NotNil(t, app.Storage)
	require.NotNil(t, app.SessionController)
	require.NotNil(t, app.Directory)
}

func TestFactoryRejectsUnknownStorageType(t *testing.T) {
	_, err := factory.New(factory.Config{StorageType: "postgres"})
	assert.Error(t, err)
}

func TestFactoryRequiresRedisConfig(t *testing.T) {
	_, err := factory.New(factory.Config{StorageType: factory.StorageTypeRedis})
	assert.Error(t, err)
}
