package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"openrepo/internal/scanner"
)

func newListCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the repository URL of every workspace folder",
		Long: `Print one line per repository found for the --workspace folders:
the project name and the URL of its branch. Folders that share a repository
are listed once; folders outside any repository print "-".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(o.workspaces) == 0 {
				return errors.New("list needs at least one --workspace folder")
			}
			cfg, err := o.config(cmd)
			if err != nil {
				return err
			}
			entries := scanner.Scan(cmd.Context(), o.resolver(cfg), o.workspaces, cfg.Display.TextTransform)
			for _, e := range entries {
				url := e.URL
				if url == "" {
					url = "-"
				}
				if e.Err != nil {
					o.logger.Error("resolve failed", "folder", e.Folder, "err", e.Err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", e.Name, url)
			}
			return nil
		},
	}
}
