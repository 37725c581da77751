package client

import (
	"fmt"

	"github.com/ZaidAmirMahdi10/goal-tracker/models"
	"github.com/spf13/cobra"
)

// goalFlags collects the fields shared by create and update.
type goalFlags struct {
	title       string
	startDate   string
	deadline    string
	description string
	progress    int
}

func (f *goalFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "goal title")
	cmd.Flags().StringVar(&f.startDate, "start", "", "start date, YYYY-MM-DD")
	cmd.Flags().StringVar(&f.deadline, "deadline", "", "deadline, YYYY-MM-DD")
	cmd.Flags().StringVar(&f.description, "description", "", "optional description")
	cmd.Flags().IntVar(&f.progress, "progress", 0, "progress in percent")
}

// request only sends description and progress when they were given.
func (f *goalFlags) request(cmd *cobra.Command, userID int64) models.CreateGoalRequest {
	req := models.CreateGoalRequest{
		Title:     f.title,
		StartDate: f.startDate,
		Deadline:  f.deadline,
		UserID:    models.NumericID(userID),
	}
	if cmd.Flags().Changed("description") {
		req.Description = &f.description
	}
	if cmd.Flags().Changed("progress") {
		req.Progress = &f.progress
	}
	return req
}

func (a *App) createCommand(who *identity) *cobra.Command {
	var flags goalFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := who.resolve()
			if err != nil {
				return err
			}

			goal, err := a.client.CreateGoal(cmd.Context(), flags.request(cmd, userID))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), goal)
		},
	}
	flags.register(cmd)

	return cmd
}

func (a *App) listCommand(who *identity) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all goals of the user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := who.resolve()
			if err != nil {
				return err
			}

			goals, err := a.client.ListAll(cmd.Context(), userID)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), goals)
		},
	}
}

func (a *App) pageCommand(who *identity) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "page",
		Short: fmt.Sprintf("List one page of %d goals", models.GoalsPageSize),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := who.resolve()
			if err != nil {
				return err
			}

			goalPage, err := a.client.ListPaged(cmd.Context(), userID, page)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), goalPage)
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number, starting at 1")

	return cmd
}

func (a *App) getCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseGoalID(args[0])
			if err != nil {
				return err
			}

			goal, err := a.client.GetGoal(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), goal)
		},
	}
}

func (a *App) progressCommand() *cobra.Command {
	var value int

	cmd := &cobra.Command{
		Use:   "progress <id>",
		Short: "Set the progress of a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseGoalID(args[0])
			if err != nil {
				return err
			}

			goal, err := a.client.SetProgress(cmd.Context(), id, value)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), goal)
		},
	}
	cmd.Flags().IntVar(&value, "value", 0, "progress in percent")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func (a *App) completeCommand() *cobra.Command {
	var req models.SetCompletionRequest

	cmd := &cobra.Command{
		Use:   "complete <id>",
		Short: "Set the completion flag and progress of a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseGoalID(args[0])
			if err != nil {
				return err
			}

			goal, err := a.client.SetCompletion(cmd.Context(), id, req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), goal)
		},
	}
	cmd.Flags().BoolVar(&req.Completed, "completed", true, "completion flag to store")
	cmd.Flags().IntVar(&req.Progress, "progress", 100, "progress to store alongside the flag")

	return cmd
}

func (a *App) updateCommand(who *identity) *cobra.Command {
	var flags goalFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace the fields of a goal owned by the user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseGoalID(args[0])
			if err != nil {
				return err
			}

			userID, err := who.resolve()
			if err != nil {
				return err
			}

			goal, err := a.client.ReplaceGoal(cmd.Context(), id, flags.request(cmd, userID))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), goal)
		},
	}
	flags.register(cmd)

	return cmd
}

func (a *App) deleteCommand(who *identity) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a goal owned by the user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseGoalID(args[0])
			if err != nil {
				return err
			}

			userID, err := who.resolve()
			if err != nil {
				return err
			}

			if err = a.client.DeleteGoal(cmd.Context(), id, userID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Goal %d deleted\n", id)
			return nil
		},
	}
}
