package cli

import (
	"fmt"

	"github.com/arthur-debert/xctemplates/pkg/config"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	var defaults, path bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    "Config prints the effective configuration as TOML.",
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			switch {
			case defaults:
				_, err := fmt.Fprintln(out, config.GenerateConfigContent())
				return err
			case path:
				p, _ := config.UserConfigPath()
				_, err := fmt.Fprintln(out, p)
				return err
			}

			cfg, err := config.LoadConfiguration()
			if err != nil {
				return err
			}
			rendered, err := config.Render(cfg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(out, rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	cmd.Flags().BoolVar(&path, "path", false, MsgFlagPath)
	cmd.MarkFlagsMutuallyExclusive("defaults", "path")
	return cmd
}
