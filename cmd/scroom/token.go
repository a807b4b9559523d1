package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scroom/internal/auth"
	"scroom/internal/model"
	"scroom/internal/repository"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a session token for a user",
	Long: `Issue a session token for a user.

With --team the user is first created (or moved) as admin of a new team,
which is how the first team of an installation is bootstrapped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getCfg(cmd)
		userID, _ := cmd.Flags().GetString("user")
		teamName, _ := cmd.Flags().GetString("team")

		if teamName != "" {
			project, _ := cmd.Flags().GetString("project")
			name, _ := cmd.Flags().GetString("name")
			email, _ := cmd.Flags().GetString("email")
			if project == "" {
				project = teamName
			}
			if name == "" {
				name = userID
			}

			db, err := repository.NewPostgres(cmd.Context(), cfg.DatabaseDSN)
			if err != nil {
				return fmt.Errorf("init postgres: %w", err)
			}
			defer db.Pool.Close()

			team, err := repository.NewTeamRepo(db).CreateTeamWithMembers(cmd.Context(),
				model.Team{Name: teamName, ProjectName: project},
				[]model.User{{ID: userID, Name: name, Email: email, Role: model.RoleAdmin}},
			)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "team %s created with admin %s\n", team.ID, userID)
		}

		token, err := auth.NewIssuer(cfg.JWTSecret, cfg.JWTTTL).GenerateToken(userID)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().String("user", "", "User id (token subject)")
	tokenCmd.Flags().String("team", "", "Create a team with this name and make the user its admin")
	tokenCmd.Flags().String("project", "", "Project name of the new team (defaults to the team name)")
	tokenCmd.Flags().String("name", "", "Display name of the user")
	tokenCmd.Flags().String("email", "", "Email of the user")
	_ = tokenCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(tokenCmd)
}
