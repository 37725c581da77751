package client

import (
	"fmt"

	"github.com/ZaidAmirMahdi10/goal-tracker/models"
	"github.com/spf13/cobra"
)

func (a *App) registerCommand() *cobra.Command {
	var req models.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.Register(cmd.Context(), req); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "User registered successfully")
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Username, "username", "", "unique user name")
	cmd.Flags().StringVar(&req.Email, "email", "", "unique email address")
	cmd.Flags().StringVar(&req.Password, "password", "", "account password")

	return cmd
}

func (a *App) loginCommand() *cobra.Command {
	var req models.LoginRequest

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.client.Login(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), session)
		},
	}
	cmd.Flags().StringVar(&req.Email, "email", "", "account email address")
	cmd.Flags().StringVar(&req.Password, "password", "", "account password")

	return cmd
}
