package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ramanasai/journal/internal/export"
	"github.com/ramanasai/journal/internal/logging"
	"github.com/ramanasai/journal/internal/utils"
)

var (
	exportFrom string
	exportTo   string
	exportName string
	exportDir  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export entries of a date range to PDF",
	Long: `Writes one page per entry, oldest first, into export.dir (default the
current directory).

Examples:
	journal export --from 2024-01-01 --to 2024-01-31 --name january
	journal export --from "last month" --dir ~/Documents`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logging.FromContext(cmd.Context())
		now := today()

		from, to := now, now
		var err error
		if exportFrom != "" {
			if from, err = utils.ParseDay(exportFrom, now); err != nil {
				return fmt.Errorf("invalid --from date %q: %w", exportFrom, err)
			}
		}
		if exportTo != "" {
			if to, err = utils.ParseDay(exportTo, now); err != nil {
				return fmt.Errorf("invalid --to date %q: %w", exportTo, err)
			}
		}

		dir := exportDir
		if dir == "" {
			dir = cfg.Export.Dir
		}
		if dir == "" {
			if dir, err = os.Getwd(); err != nil {
				return err
			}
		}
		name := exportName
		if name == "" {
			name = cfg.Export.DefaultName
		}

		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Close()

		entries, err := s.store.Range(from, to)
		if err != nil {
			return err
		}

		path, err := export.NewExporter(export.PDFWriter{Dir: dir, Font: cfg.Export.Font}).WithLocation(cfg.Location()).Export(entries, from, to, name)
		switch {
		case errors.Is(err, export.ErrNoData):
			fmt.Fprintf(cmd.OutOrStdout(), "No entries between %s and %s.\n", from.Format("2006-01-02"), to.Format("2006-01-02"))
			return nil
		case err != nil:
			log.Error("export failed", slog.Any("error", err))
			return err
		}
		log.Info("export written", slog.String("path", path))
		fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFrom, "from", "", "First day (default today)")
	exportCmd.Flags().StringVar(&exportTo, "to", "", "Last day (default today)")
	exportCmd.Flags().StringVarP(&exportName, "name", "o", "", "File name (default export.default_name)")
	exportCmd.Flags().StringVar(&exportDir, "dir", "", "Output directory (default export.dir or the current directory)")
}
