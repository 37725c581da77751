package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"strconv"

	"github.com/ZaidAmirMahdi10/goal-tracker/internal/adapter"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/logger"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/utils"
	"github.com/ZaidAmirMahdi10/goal-tracker/models"
	"github.com/spf13/cobra"
)

var _ Client = (*App)(nil)

type App struct {
	client    adapter.Client
	buildInfo models.AppBuildInfo
	token     string
	logger    *logger.Logger
}

// NewApp returns goalctl bound to client. token is the default of the
// --token flag.
func NewApp(client adapter.Client, buildInfo models.AppBuildInfo, token string, logger *logger.Logger) *App {
	return &App{
		client:    client,
		buildInfo: buildInfo,
		token:     token,
		logger:    logger,
	}
}

// Run builds a fresh command tree, so flag values never leak between calls.
func (a *App) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		a.logger.Debug().Err(err).Str("func", "*App.Run").Msg("command failed")
		return err
	}
	return nil
}

// identity is the acting user shared by all goal commands.
type identity struct {
	userID       int64
	token        string
	defaultToken string
}

// resolve prefers an explicit user id and falls back to the id carried by
// the session token. The token signature is not checked here.
func (i *identity) resolve() (int64, error) {
	if i.userID > 0 {
		return i.userID, nil
	}

	token := i.token
	if token == "" {
		token = i.defaultToken
	}
	if token == "" {
		return 0, ErrNoIdentity
	}

	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return userID, nil
}

func (a *App) rootCommand() *cobra.Command {
	who := &identity{defaultToken: a.token}

	root := &cobra.Command{
		Use:           "goalctl",
		Short:         "Command-line client of the user and goal services",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.logger.Debug().Str("command", cmd.Name()).Msg("running command")
		},
	}
	root.PersistentFlags().Int64Var(&who.userID, "user-id", 0, "id of the acting user")
	root.PersistentFlags().StringVar(&who.token, "token", "", "session token, used for the user id when --user-id is not set (default $ADAPTER_TOKEN)")

	root.AddCommand(
		a.registerCommand(),
		a.loginCommand(),
		a.createCommand(who),
		a.listCommand(who),
		a.pageCommand(who),
		a.getCommand(),
		a.progressCommand(),
		a.completeCommand(),
		a.updateCommand(who),
		a.deleteCommand(who),
		a.versionCommand(),
	)

	return root
}

func (a *App) versionCommand() *cobra.Command {
	var service string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the build information of goalctl and optionally of a service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", orNA(a.buildInfo.BuildVersion()))
			fmt.Fprintf(out, "Build date: %s\n", orNA(a.buildInfo.BuildDate()))
			fmt.Fprintf(out, "Build commit: %s\n", orNA(a.buildInfo.BuildCommit()))
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())

			if service == "" {
				return nil
			}

			version, err := a.client.Version(cmd.Context(), adapter.Service(service))
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s service version: %s\n", service, version)
			return nil
		},
	}
	cmd.Flags().StringVar(&service, "service", "", "also ask a running service for its version (user or goal)")

	return cmd
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func parseGoalID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, arg)
	}
	return id, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
