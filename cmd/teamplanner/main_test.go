package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/dom/teyvat-archive/internal/service"
	"github.com/dom/teyvat-archive/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// flag values live in package vars; reset them between runs
	apiURL, jsonOutput = "", false
	filter = service.CharacterFilter{}
	filterElem, filterWeap, filterReg = "", "", ""
	teamName, teamDescription, teamSynergies = "", "", nil

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCharactersCommand(t *testing.T) {
	out, err := execute(t, "characters", "--element", "Cryo")
	require.NoError(t, err)

	assert.Contains(t, out, "ganyu")
	assert.Contains(t, out, "ayaka")
	assert.NotContains(t, out, "diluc")
	assert.Contains(t, out, "Showing 2 of 12 characters")
}

func TestAnalyzeCommand(t *testing.T) {
	out, err := execute(t, "analyze", "kazuha", "xiangling", "furina", "bennett")
	require.NoError(t, err)

	assert.Contains(t, out, "Team Composition (4/4)")
	assert.Contains(t, out, "Elemental Reactions (3)")
	assert.Contains(t, out, "Vaporize")
	assert.Contains(t, out, "Element coverage: ###.. 3/5")
	assert.Contains(t, out, "Tip: "+service.RecommendHealer)
	assert.Contains(t, out, "Excellent")
}

func TestAnalyzeCommand_Rejects(t *testing.T) {
	_, err := execute(t, "analyze", "kazuha", "paimon")
	assert.Error(t, err)

	_, err = execute(t, "analyze", "a", "b", "c", "d", "e")
	assert.Error(t, err)
}

func TestRemoteCommands(t *testing.T) {
	ts := testutil.NewTestServer(t)

	out, err := execute(t, "--api-url", ts.BaseURL(), "teams")
	require.NoError(t, err)
	assert.Contains(t, out, "No saved teams")

	out, err = execute(t, "--api-url", ts.BaseURL(), "--json", "save", "--name", "Hyperbloom", "--synergy", "Bloom", "nahida", "furina", "raiden-shogun")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Hyperbloom"`)

	teams, err := ts.Services.Team.ListTeams(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 1)
	id := teams[0].ID
	assert.Equal(t, []string{"Bloom"}, []string(teams[0].Synergies))

	out, err = execute(t, "--api-url", ts.BaseURL(), "teams")
	require.NoError(t, err)
	assert.Contains(t, out, id)

	out, err = execute(t, "--api-url", ts.BaseURL(), "inspect", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Quicken")

	_, err = execute(t, "--api-url", ts.BaseURL(), "inspect", "missing")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "Team not found"))

	_, err = execute(t, "--api-url", ts.BaseURL(), "remove", id)
	require.NoError(t, err)

	teams, err = ts.Services.Team.ListTeams(context.Background())
	require.NoError(t, err)
	assert.Empty(t, teams)
}

func TestAPIClient_CreateTeamValidation(t *testing.T) {
	ts := testutil.NewTestServer(t)
	client := NewAPIClient(ts.BaseURL())

	_, err := client.CreateTeam(context.Background(), testutil.NewTeamInputBuilder().WithCharacters().Input())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400 Invalid team data")
}
