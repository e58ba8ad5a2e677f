package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/tentapress/tentapress/internal/config"
	"github.com/tentapress/tentapress/internal/export"
)

// newExportCmd creates the export command
func newExportCmd() *cobra.Command {
	var outputPath string
	var withSettings, withTheme, withPlugins, withSeo bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export site data as a portable zip archive",
		Long: `Export the site's data domains as a single zip archive.

The archive always contains pages.json and manifest.json. The other
entries are gated by flags (all included by default):

  settings.json   --settings    key/value configuration
  theme.json      --theme       active theme and its layouts
  plugins.json    --plugins     enabled extensions
  seo.json        --seo         per-page metadata, when installed

A domain whose backing storage is missing degrades to an error-annotated
document instead of failing the export; manifest.json records what was
actually included.

Examples:
  tentapress export                         # everything, path printed
  tentapress export -o backup.zip           # move the archive to backup.zip
  tentapress export --settings=false        # skip configuration`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}

			assembler, cleanup := buildAssembler(cfg)
			defer cleanup()

			opts := export.Options{
				Settings: withSettings,
				Theme:    withTheme,
				Plugins:  withPlugins,
				Seo:      withSeo,
			}
			res, err := assembler.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}

			dest := res.Path
			if outputPath != "" {
				if err := moveFile(res.Path, outputPath); err != nil {
					return fmt.Errorf("move archive to %s: %w", outputPath, err)
				}
				dest = outputPath
			}

			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(export.ArchiveResult{
					Path:     dest,
					Filename: res.Filename,
				})
			}
			if isatty.IsTerminal(os.Stdout.Fd()) {
				fmt.Printf("✓ Export written to %s\n", dest)
			} else {
				fmt.Println(dest)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "move the finished archive to this path")
	cmd.Flags().BoolVar(&withSettings, "settings", true, "include settings.json")
	cmd.Flags().BoolVar(&withTheme, "theme", true, "include theme.json")
	cmd.Flags().BoolVar(&withPlugins, "plugins", true, "include plugins.json")
	cmd.Flags().BoolVar(&withSeo, "seo", true, "include seo.json when the metadata table exists")

	return cmd
}
