package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dom/teyvat-archive/internal/domain"
	"github.com/dom/teyvat-archive/internal/metrics"
	"github.com/dom/teyvat-archive/internal/repository/memory"
	"github.com/dom/teyvat-archive/internal/service"
	"github.com/spf13/cobra"
)

var (
	apiURL     string
	jsonOutput bool

	filter     service.CharacterFilter
	filterElem string
	filterWeap string
	filterReg  string

	teamName        string
	teamDescription string
	teamSynergies   []string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "teamplanner",
		Short: "Plan team compositions against the Teyvat Archive catalog",
		Long: `teamplanner browses the bundled catalog and scores team compositions
offline, or saves and inspects teams on a running archive server.

ENVIRONMENT:
  TEYVAT_API_URL   Backend URL for the save/teams/remove/inspect commands (default: http://localhost:8080)`,
		SilenceUsage: true,
	}

	defaultURL := "http://localhost:8080"
	if envURL := os.Getenv("TEYVAT_API_URL"); envURL != "" {
		defaultURL = envURL
	}
	root.PersistentFlags().StringVar(&apiURL, "api-url", defaultURL, "archive server URL")
	root.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print JSON instead of text")

	charactersCmd := &cobra.Command{
		Use:   "characters",
		Short: "List catalog characters, optionally filtered",
		Args:  cobra.NoArgs,
		RunE:  runCharacters,
	}
	charactersCmd.Flags().StringVar(&filterElem, "element", "", "only characters of this element")
	charactersCmd.Flags().StringVar(&filterWeap, "weapon", "", "only characters using this weapon type")
	charactersCmd.Flags().StringVar(&filterReg, "region", "", "only characters from this region")
	charactersCmd.Flags().IntVar(&filter.Rarity, "rarity", 0, "only characters of this rarity (4 or 5)")

	analyzeCmd := &cobra.Command{
		Use:     "analyze CHARACTER_ID...",
		Short:   "Show reactions and synergy for up to 4 characters",
		Example: "  teamplanner analyze kazuha xiangling furina bennett",
		Args:    cobra.RangeArgs(1, domain.MaxTeamSize),
		RunE:    runAnalyze,
	}

	saveCmd := &cobra.Command{
		Use:   "save CHARACTER_ID...",
		Short: "Save a team on the archive server",
		Args:  cobra.RangeArgs(1, domain.MaxTeamSize),
		RunE:  runSave,
	}
	saveCmd.Flags().StringVar(&teamName, "name", "", "team name")
	saveCmd.Flags().StringVar(&teamDescription, "description", "", "team description")
	saveCmd.Flags().StringSliceVar(&teamSynergies, "synergy", nil, "synergy note (repeatable)")
	saveCmd.MarkFlagRequired("name")

	teamsCmd := &cobra.Command{
		Use:   "teams",
		Short: "List teams saved on the archive server",
		Args:  cobra.NoArgs,
		RunE:  runTeams,
	}

	removeCmd := &cobra.Command{
		Use:   "remove TEAM_ID",
		Short: "Delete a saved team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := NewAPIClient(apiURL).DeleteTeam(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Team %s deleted\n", args[0])
			return nil
		},
	}

	inspectCmd := &cobra.Command{
		Use:   "inspect TEAM_ID",
		Short: "Analyze a team saved on the archive server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			analysis, err := NewAPIClient(apiURL).AnalyzeTeam(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), analysis)
			}
			printAnalysis(cmd.OutOrStdout(), analysis)
			return nil
		},
	}

	root.AddCommand(charactersCmd, analyzeCmd, saveCmd, teamsCmd, removeCmd, inspectCmd)
	return root
}

func localServices() (*service.Services, error) {
	repos, err := memory.NewRepositories()
	if err != nil {
		return nil, err
	}
	return service.NewServices(repos, metrics.NewManager()), nil
}

func runCharacters(cmd *cobra.Command, args []string) error {
	services, err := localServices()
	if err != nil {
		return err
	}

	filter.Element = domain.Element(filterElem)
	filter.Weapon = domain.WeaponType(filterWeap)
	filter.Region = domain.Region(filterReg)

	all, err := services.Catalog.ListCharacters(cmd.Context())
	if err != nil {
		return err
	}
	characters := filter.Apply(all)

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, characters)
	}
	for _, c := range characters {
		fmt.Fprintf(out, "%-16s %-20s %-8s %-9s %d* %s\n", c.ID, c.Name, c.Element, c.Weapon, c.Rarity, c.Role)
	}
	fmt.Fprintf(out, "Showing %d of %d characters\n", len(characters), len(all))
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	services, err := localServices()
	if err != nil {
		return err
	}

	analysis, err := services.TeamBuilder.AnalyzeSelection(cmd.Context(), args)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), analysis)
	}
	printAnalysis(cmd.OutOrStdout(), analysis)
	return nil
}

func runSave(cmd *cobra.Command, args []string) error {
	synergies := teamSynergies
	if synergies == nil {
		synergies = []string{}
	}
	description := teamDescription

	team, err := NewAPIClient(apiURL).CreateTeam(cmd.Context(), service.CreateTeamInput{
		Name:         teamName,
		CharacterIDs: args,
		Description:  &description,
		Synergies:    synergies,
	})
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), team)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved team %q as %s\n", team.Name, team.ID)
	return nil
}

func runTeams(cmd *cobra.Command, args []string) error {
	teams, err := NewAPIClient(apiURL).ListTeams(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, teams)
	}
	if len(teams) == 0 {
		fmt.Fprintln(out, "No saved teams")
		return nil
	}
	for _, t := range teams {
		fmt.Fprintf(out, "%s  %-24s %s\n", t.ID, t.Name, strings.Join(t.CharacterIDs, ", "))
	}
	return nil
}

func printAnalysis(w io.Writer, a *service.TeamAnalysis) {
	names := make([]string, 0, len(a.Characters))
	for _, c := range a.Characters {
		names = append(names, fmt.Sprintf("%s (%s %s)", c.Name, c.Element, c.Role))
	}
	fmt.Fprintf(w, "Team Composition (%d/%d): %s\n", len(a.Characters), domain.MaxTeamSize, strings.Join(names, ", "))

	fmt.Fprintf(w, "\nElemental Reactions (%d)\n", len(a.Reactions))
	for _, r := range a.Reactions {
		fmt.Fprintf(w, "  %-16s %s + %s  %s", r.Name, r.Elements[0], r.Elements[1], r.Effect)
		if r.DamageType != "" {
			fmt.Fprintf(w, " [%s]", r.DamageType)
		}
		fmt.Fprintln(w)
	}

	s := a.Synergy
	fmt.Fprintf(w, "\nElement coverage: %s%s %d/%d\n",
		strings.Repeat("#", s.Coverage), strings.Repeat(".", service.MaxCoverage-s.Coverage), s.Coverage, service.MaxCoverage)

	fmt.Fprintln(w, "Roles:")
	for _, role := range domain.AllRoles {
		fmt.Fprintf(w, "  %-8s %d\n", role, s.RoleBalance[role])
	}

	for _, warning := range s.Warnings {
		fmt.Fprintf(w, "Warning: %s\n", warning)
	}
	for _, rec := range s.Recommendations {
		fmt.Fprintf(w, "Tip: %s\n", rec)
	}

	if len(s.Pairs) > 0 {
		fmt.Fprintln(w, "\nPair synergy:")
		for _, p := range s.Pairs {
			fmt.Fprintf(w, "  %-10s %s + %s", p.Rating, p.First, p.Second)
			if p.Reaction != "" {
				fmt.Fprintf(w, " (%s)", p.Reaction)
			}
			fmt.Fprintln(w)
		}
	}
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
