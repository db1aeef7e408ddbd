/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/josephgoksu/smarttask/internal/ui"
	"github.com/josephgoksu/smarttask/models"
	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a student account",
	Long: `Create a student account.

Email must be a valid address and the password at least 6 characters.
When --password is omitted in a terminal, it is read without echo.`,
	Example: `  smarttask register --first Ada --last Lovelace --email ada@uni.edu --major Mathematics`,
	Args:    cobra.NoArgs,
	RunE:    runRegister,
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().String("first", "", "first name")
	registerCmd.Flags().String("last", "", "last name")
	registerCmd.Flags().String("email", "", "email address")
	registerCmd.Flags().String("student-id", "", "student id")
	registerCmd.Flags().String("major", "", "major")
	registerCmd.Flags().String("password", "", "password (prompted when omitted)")
}

func runRegister(cmd *cobra.Command, args []string) error {
	in := models.RegisterInput{}
	in.FirstName, _ = cmd.Flags().GetString("first")
	in.LastName, _ = cmd.Flags().GetString("last")
	in.Email, _ = cmd.Flags().GetString("email")
	in.StudentID, _ = cmd.Flags().GetString("student-id")
	in.Major, _ = cmd.Flags().GetString("major")
	in.Password, _ = cmd.Flags().GetString("password")

	if in.Password == "" {
		pw, err := readPassword(cmd, "Password: ")
		if err != nil {
			return err
		}
		confirm, err := readPassword(cmd, "Confirm password: ")
		if err != nil {
			return err
		}
		if pw != confirm {
			return errors.New("passwords do not match")
		}
		in.Password = pw
	}

	ctx, closeApp, err := openApp()
	if err != nil {
		return err
	}
	defer closeApp()

	s, err := ctx.Register(in)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), s)
	}
	if !isQuiet() {
		fmt.Fprintln(cmd.OutOrStdout(), ui.StyleSuccess.Render(fmt.Sprintf("✓ Registered %s (%s)", s.FullName(), s.Email)))
		fmt.Fprintln(cmd.OutOrStdout(), ui.StyleSubtle.Render("Log in with: smarttask login --email "+s.Email))
	}
	return nil
}
