/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"time"

	"github.com/josephgoksu/smarttask/internal/config"
	"github.com/josephgoksu/smarttask/internal/ui"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:     "login",
	Short:   "Log in as a registered student",
	Example: `  smarttask login --email ada@uni.edu`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		if email == "" {
			return fmt.Errorf("--email is required")
		}
		if password == "" {
			pw, err := readPassword(cmd, "Password: ")
			if err != nil {
				return err
			}
			password = pw
		}

		ctx, closeApp, err := openApp()
		if err != nil {
			return err
		}
		defer closeApp()

		s, err := ctx.Login(email, password)
		if err != nil {
			return err
		}
		if err := config.SaveSession(config.Session{Email: s.Email, LoggedInAt: time.Now()}); err != nil {
			return fmt.Errorf("save session: %w", err)
		}

		if isJSON() {
			return printJSON(cmd.OutOrStdout(), s)
		}
		if !isQuiet() {
			fmt.Fprintln(cmd.OutOrStdout(), ui.StyleSuccess.Render("✓ Welcome, "+s.FullName()))
			stats := ctx.Tasks.StatsFor(s.Email)
			if stats.Overdue > 0 || stats.DueToday > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.StyleWarning.Render(
					fmt.Sprintf("%d overdue, %d due today", stats.Overdue, stats.DueToday)))
			}
		}
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the logged-in student",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.ClearSession(); err != nil {
			return err
		}
		if !isQuiet() && !isJSON() {
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
		}
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in student",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, closeApp, err := openApp()
		if err != nil {
			return err
		}
		defer closeApp()

		s, err := currentStudent(ctx)
		if err != nil {
			return err
		}

		if isJSON() {
			return printJSON(cmd.OutOrStdout(), s)
		}
		if isQuiet() {
			fmt.Fprintln(cmd.OutOrStdout(), s.Email)
			return nil
		}
		body := fmt.Sprintf("Email:      %s\nStudent ID: %s\nMajor:      %s", s.Email, s.StudentID, s.Major)
		if s.LastLoginAt != nil {
			body += "\nLast login: " + s.LastLoginAt.Format(ui.DateTimeLayout)
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.RenderPanel(s.FullName(), body))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd)
	loginCmd.Flags().String("email", "", "email address")
	loginCmd.Flags().String("password", "", "password (prompted when omitted)")
}
