package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/dom/teyvat-archive/internal/domain"
	"github.com/dom/teyvat-archive/internal/repository/postgres"
	"github.com/dom/teyvat-archive/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func newTeam(name string, createdAt time.Time, characterIDs ...string) *domain.Team {
	return &domain.Team{
		ID:           uuid.New().String(),
		Name:         name,
		CharacterIDs: characterIDs,
		Description:  "",
		Synergies:    []string{},
		CreatedAt:    createdAt,
	}
}

func TestTeamRepository(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewTeamRepository(testDB.DB)
	ctx := context.Background()

	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "create and get",
			run: func(t *testing.T) {
				team := newTeam("National", time.Now(), "xiangling", "bennett", "furina", "kazuha")
				team.Synergies = []string{"Vaporize", "Swirl"}
				require.NoError(t, repo.Create(ctx, team))

				got, err := repo.GetByID(ctx, team.ID)
				require.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, "National", got.Name)
				assert.Equal(t, []string{"xiangling", "bennett", "furina", "kazuha"}, []string(got.CharacterIDs))
				assert.Equal(t, []string{"Vaporize", "Swirl"}, []string(got.Synergies))
			},
		},
		{
			name: "get unknown id",
			run: func(t *testing.T) {
				got, err := repo.GetByID(ctx, uuid.New().String())
				require.NoError(t, err)
				assert.Nil(t, got)
			},
		},
		{
			name: "get all ordered by creation",
			run: func(t *testing.T) {
				teams, err := repo.GetAll(ctx)
				require.NoError(t, err)
				assert.NotNil(t, teams)
				assert.Empty(t, teams)

				base := time.Now()
				second := newTeam("second", base.Add(time.Minute), "diluc")
				first := newTeam("first", base, "ganyu")
				require.NoError(t, repo.Create(ctx, second))
				require.NoError(t, repo.Create(ctx, first))

				teams, err = repo.GetAll(ctx)
				require.NoError(t, err)
				require.Len(t, teams, 2)
				assert.Equal(t, "first", teams[0].Name)
				assert.Equal(t, "second", teams[1].Name)
				assert.NotNil(t, teams[0].Synergies)
			},
		},
		{
			name: "delete",
			run: func(t *testing.T) {
				team := newTeam("doomed", time.Now(), "nahida")
				require.NoError(t, repo.Create(ctx, team))

				require.NoError(t, repo.Delete(ctx, team.ID))
				require.NoError(t, repo.Delete(ctx, team.ID), "deleting twice is a no-op")
				require.NoError(t, repo.Delete(ctx, "never-existed"))

				got, err := repo.GetByID(ctx, team.ID)
				require.NoError(t, err)
				assert.Nil(t, got)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDB.Truncate(t)
			tt.run(t)
		})
	}
}

func TestTestDB_Truncate(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewTeamRepository(testDB.DB)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTeam("leftover", time.Now(), "ganyu")))
	testDB.Truncate(t)

	teams, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, teams)
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected logger.LogLevel
	}{
		{"debug", logger.Info},
		{"info", logger.Warn},
		{"WARN", logger.Warn},
		{"error", logger.Error},
		{"fatal", logger.Error},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, postgres.LogLevel(tt.level))
		})
	}
}
