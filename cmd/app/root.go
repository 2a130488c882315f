package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/akyairhashvil/searchhist/internal/config"
	"github.com/akyairhashvil/searchhist/internal/remote"
	"github.com/akyairhashvil/searchhist/internal/tui"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "Search a remote collection and keep a history of what you picked",
		Long:          `Starts the terminal search. Type to search, enter to save, ctrl+l to clear the field, ctrl+x to clear the history.`,
		Version:       tui.VersionLabel(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTUI,
	}
	root.AddCommand(newHistoryCmd(), newExportCmd(), newImportCmd())
	return root
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	client := remote.New(remote.Config{
		Endpoint: a.cfg.Remote.Endpoint,
		Timeout:  a.cfg.Remote.Timeout,
	}, a.logger)

	model := tui.NewModel(ctx, client, a.store, a.logger, tui.Options{
		DropStale: a.cfg.Remote.DropStale,
		Theme:     a.cfg.Theme,
	})

	a.logger.Info("starting",
		zap.String("version", tui.VersionLabel()),
		zap.String("endpoint", a.cfg.Remote.Endpoint),
		zap.String("db", a.db.Path()),
	)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}
