package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dom/teyvat-archive/internal/domain"
	"github.com/dom/teyvat-archive/internal/metrics"
	"github.com/dom/teyvat-archive/internal/repository/memory"
	"github.com/dom/teyvat-archive/internal/service"
	"github.com/dom/teyvat-archive/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTeamService() *service.TeamService {
	return service.NewTeamService(memory.NewTeamRepository(), metrics.NewManager())
}

func TestTeamService_CreateTeam_Validation(t *testing.T) {
	svc := newTeamService()
	ctx := context.Background()

	tests := []struct {
		name      string
		input     service.CreateTeamInput
		wantField string
	}{
		{
			name:      "no characters",
			input:     testutil.NewTeamInputBuilder().WithCharacters().Input(),
			wantField: "characterIds",
		},
		{
			name:      "five characters",
			input:     testutil.NewTeamInputBuilder().WithCharacters("diluc", "hu-tao", "bennett", "furina", "kazuha").Input(),
			wantField: "characterIds",
		},
		{
			name: "missing characters",
			input: func() service.CreateTeamInput {
				in := testutil.NewTeamInputBuilder().Input()
				in.CharacterIDs = nil
				return in
			}(),
			wantField: "characterIds",
		},
		{
			name:      "missing name",
			input:     testutil.NewTeamInputBuilder().WithName("").Input(),
			wantField: "name",
		},
		{
			name: "missing description",
			input: func() service.CreateTeamInput {
				in := testutil.NewTeamInputBuilder().Input()
				in.Description = nil
				return in
			}(),
			wantField: "description",
		},
		{
			name: "missing synergies",
			input: func() service.CreateTeamInput {
				in := testutil.NewTeamInputBuilder().Input()
				in.Synergies = nil
				return in
			}(),
			wantField: "synergies",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			team, err := svc.CreateTeam(ctx, tt.input)
			require.Error(t, err)
			assert.Nil(t, team)
			assert.True(t, errors.Is(err, domain.ErrInvalidTeam))

			var ve *domain.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}

	teams, err := svc.ListTeams(ctx)
	require.NoError(t, err)
	assert.Empty(t, teams, "rejected input must not be stored")
}

func TestTeamService_CreateTeam(t *testing.T) {
	svc := newTeamService()
	ctx := context.Background()

	for size := 1; size <= domain.MaxTeamSize; size++ {
		ids := []string{"diluc", "bennett", "furina", "kazuha"}[:size]
		team, err := svc.CreateTeam(ctx, testutil.NewTeamInputBuilder().WithCharacters(ids...).Input())
		require.NoError(t, err)

		_, err = uuid.Parse(team.ID)
		assert.NoError(t, err, "id should be a UUID")
		assert.Equal(t, ids, []string(team.CharacterIDs))
		assert.False(t, team.CreatedAt.IsZero())
	}

	teams, err := svc.ListTeams(ctx)
	require.NoError(t, err)
	assert.Len(t, teams, domain.MaxTeamSize)

	ids := make(map[string]bool)
	for _, team := range teams {
		ids[team.ID] = true
	}
	assert.Len(t, ids, domain.MaxTeamSize, "ids are unique")
}

func TestTeamService_CreateTeam_AcceptsUnknownCharacters(t *testing.T) {
	svc := newTeamService()

	team, err := svc.CreateTeam(context.Background(), testutil.NewTeamInputBuilder().WithCharacters("paimon").Input())
	require.NoError(t, err)
	assert.Equal(t, []string{"paimon"}, []string(team.CharacterIDs))
}

func TestTeamService_CreateTeam_CopiesInput(t *testing.T) {
	svc := newTeamService()
	ctx := context.Background()

	input := testutil.NewTeamInputBuilder().
		WithCharacters("ganyu", "ayaka").
		WithDescription("Freeze").
		WithSynergies("Frozen").
		Input()
	team, err := svc.CreateTeam(ctx, input)
	require.NoError(t, err)

	input.CharacterIDs[0] = "diluc"
	input.Synergies[0] = "Melt"

	got, err := svc.GetTeam(ctx, team.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []string{"ganyu", "ayaka"}, []string(got.CharacterIDs))
	assert.Equal(t, []string{"Frozen"}, []string(got.Synergies))
	assert.Equal(t, "Freeze", got.Description)
}

func TestTeamService_RoundTrip(t *testing.T) {
	svc := newTeamService()
	ctx := context.Background()

	a := testutil.NewTeamInputBuilder().WithName("Hyperbloom").Build(t, svc)
	b := testutil.NewTeamInputBuilder().WithName("Freeze").Build(t, svc)

	teams, err := svc.ListTeams(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, a.ID, teams[0].ID)
	assert.Equal(t, b.ID, teams[1].ID)

	require.NoError(t, svc.DeleteTeam(ctx, a.ID))

	teams, err = svc.ListTeams(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, "Freeze", teams[0].Name)

	got, err := svc.GetTeam(ctx, a.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTeamService_DeleteUnknownIsNoop(t *testing.T) {
	svc := newTeamService()
	ctx := context.Background()
	testutil.NewTeamInputBuilder().Build(t, svc)

	require.NoError(t, svc.DeleteTeam(ctx, "does-not-exist"))

	teams, err := svc.ListTeams(ctx)
	require.NoError(t, err)
	assert.Len(t, teams, 1)
}

func TestTeamService_NilMetrics(t *testing.T) {
	svc := service.NewTeamService(memory.NewTeamRepository(), nil)

	team, err := svc.CreateTeam(context.Background(), testutil.NewTeamInputBuilder().Input())
	require.NoError(t, err)
	assert.NoError(t, svc.DeleteTeam(context.Background(), team.ID))
}
