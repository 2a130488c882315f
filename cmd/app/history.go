package main

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect or reset the search history",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Print the saved searches in the order they were first saved",
			Args:  cobra.NoArgs,
			RunE:  runHistoryList,
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Delete the whole search history",
			Args:  cobra.NoArgs,
			RunE:  runHistoryClear,
		},
	)
	return cmd
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	h, err := a.store.Load(cmd.Context())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if h.Len() == 0 {
		fmt.Fprintln(out, "No search history.")
		return nil
	}

	entries := h.Entries()
	maxLen := 0
	for _, e := range entries {
		if w := ansi.StringWidth(e.Title); w > maxLen {
			maxLen = w
		}
	}
	for _, e := range entries {
		pad := maxLen - ansi.StringWidth(e.Title)
		fmt.Fprintf(out, "  %s%*s  %s\n", e.Title, pad, "", e.Time)
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.store.Clear(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
	return nil
}
