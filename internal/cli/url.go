package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"openrepo/internal/run"
)

var (
	openURL = run.OpenURL
	copyURL = run.CopyToClipboard
)

const targetHelp = `TARGET is a file path, optionally followed by line state:
  path        no selection
  path:N      cursor on line N
  path:A-B    lines A through B selected
  path:A-B,N  several selections (no line anchor is produced)
Without TARGET the URL of the repository's branch is resolved.`

func newURLCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "url [TARGET]",
		Short: "Print the browser URL",
		Long:  "Print the browser URL of a file.\n\n" + targetHelp,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, _, err := o.resolve(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.URL)
			return nil
		},
	}
}

func newOpenCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "open [TARGET]",
		Short: "Open the browser URL",
		Long:  "Open the browser URL of a file in the default browser.\n\n" + targetHelp,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, cfg, err := o.resolve(cmd, args)
			if err != nil {
				return err
			}
			o.logger.Info("opening", "url", res.URL, "hint", res.Tooltip)
			return openURL(res.URL, cfg.Browser)
		},
	}
}

func newCopyCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "copy [TARGET]",
		Short: "Copy the browser URL to the clipboard",
		Long:  "Copy the browser URL of a file to the clipboard.\n\n" + targetHelp,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, _, err := o.resolve(cmd, args)
			if err != nil {
				return err
			}
			if err := copyURL(res.URL); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.URL)
			return nil
		},
	}
}
