package app

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/mindwell/internal/backup"
	"github.com/blackwell-systems/mindwell/internal/output"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write all check-ins and journal entries as JSON",
	Long: `Export your full history as a single JSON document. The layout uses the
same keys as the browser app's local storage, so the file can be imported
there or back into mindwell.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Merge check-ins and journal entries from a JSON export",
	Long: `Import a JSON export produced by 'mindwell export' or a dump of the
browser app's local storage. Records already present are skipped, so
importing the same file twice is safe. Your streak is recomputed afterwards.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")
	rootCmd.AddCommand(exportCmd, importCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	w := os.Stdout
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("creating %s: %w", exportOutput, err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	if err := backup.Export(cmd.Context(), s.db, w, time.Now()); err != nil {
		return fmt.Errorf("exporting: %w", err)
	}
	if exportOutput != "" {
		fmt.Fprintf(os.Stderr, "Exported to %s\n", exportOutput)
	}
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening %s: %w", args[0], err)
	}
	defer func() { _ = f.Close() }()

	res, err := backup.Import(cmd.Context(), s.db, f, time.Now())
	if err != nil {
		return fmt.Errorf("importing %s: %w", args[0], err)
	}

	if flagJSON {
		return writeJSON(os.Stdout, res)
	}
	fmt.Printf(" %s Imported %d check-ins and %d journal entries\n",
		output.StyleSuccess.Render("✓"), res.CheckInsAdded, res.JournalAdded)
	if res.Skipped > 0 || res.Invalid > 0 {
		fmt.Printf("   %s\n", output.StyleMuted.Render(fmt.Sprintf("%d already present, %d invalid", res.Skipped, res.Invalid)))
	}
	fmt.Printf("   Streak: %s\n", output.StyleBold.Render(fmt.Sprintf("%d days", res.Streak)))
	return nil
}
