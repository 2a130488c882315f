package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/akyairhashvil/searchhist/internal/export"
	"github.com/akyairhashvil/searchhist/internal/tui"
	"github.com/akyairhashvil/searchhist/internal/util"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the search history to a file",
	}

	pdfCmd := &cobra.Command{
		Use:   "pdf [path]",
		Short: "Write the search history as a PDF report",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExportPDF,
	}

	var encrypt bool
	jsonCmd := &cobra.Command{
		Use:   "json [path]",
		Short: "Write the search history as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExportJSON(cmd, args, encrypt)
		},
	}
	jsonCmd.Flags().BoolVar(&encrypt, "encrypt", false, "encrypt the export with a passphrase")

	cmd.AddCommand(pdfCmd, jsonCmd)
	return cmd
}

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Merge a previous export into the search history",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "json <path>",
		Short: "Upsert every entry of a JSON export, in file order",
		Args:  cobra.ExactArgs(1),
		RunE:  runImportJSON,
	})
	return cmd
}

// outputPath is the explicit path argument, or a dated file in the export
// directory.
func outputPath(args []string, dir, ext string) string {
	if len(args) > 0 {
		return args[0]
	}
	return util.ExportPath(dir, ext, time.Now())
}

func runExportPDF(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	h, err := a.store.Load(cmd.Context())
	if err != nil {
		return err
	}
	path := outputPath(args, a.cfg.Storage.ExportDir, "pdf")
	if err := export.WritePDF(path, h, time.Now()); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d entries to %s\n", h.Len(), path)
	return nil
}

func runExportJSON(cmd *cobra.Command, args []string, encrypt bool) error {
	var passphrase string
	if encrypt {
		pass, err := readPassphrase("Export passphrase: ")
		if err != nil {
			return err
		}
		if err := util.ValidatePassphrase(pass); err != nil {
			return fmt.Errorf("passphrase too weak: %w", err)
		}
		passphrase = pass
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	h, err := a.store.Load(cmd.Context())
	if err != nil {
		return err
	}
	path := outputPath(args, a.cfg.Storage.ExportDir, "json")
	doc := export.NewDocument(h, tui.AppVersion, time.Now())
	if err := export.WriteJSON(path, doc, passphrase); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d entries to %s\n", len(doc.Entries), path)
	return nil
}

func runImportJSON(cmd *cobra.Command, args []string) error {
	path := args[0]
	encrypted, err := export.IsEncrypted(path)
	if err != nil {
		return err
	}
	var passphrase string
	if encrypted {
		if passphrase, err = readPassphrase("Import passphrase: "); err != nil {
			return err
		}
	}
	doc, err := export.ReadJSON(path, passphrase)
	if err != nil {
		return err
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	h, err := a.store.Import(cmd.Context(), doc.Entries)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries (%d in history)\n", len(doc.Entries), h.Len())
	return nil
}
