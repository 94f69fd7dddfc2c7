package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fastcat.org/go/matchpick/config"
)

func init() {
	addCommandBuilders(configCmd)
}

func configCmd(a *app) *cobra.Command {
	cfg := &cobra.Command{
		Use:   "config",
		Short: "Show or create the settings file",
		// just a parent for other commands
	}

	cfg.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective settings as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.settings(cmd)
			if err != nil {
				return err
			}
			state := "present"
			if !a.file.Exists {
				state = "not present"
			}
			data, err := config.Marshal(s)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s (%s)\n", a.file.Path, state) // nolint:errcheck
			_, err = out.Write(data)
			return err
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective settings to the settings file",
		Long: "Writes the built-in defaults, overridden by any pattern or --match " +
			"flags given, to the settings file.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.file.Exists && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", a.file.Path)
			}
			s, err := a.settings(cmd)
			if err != nil {
				return err
			}
			a.file.Settings = s
			if err := a.file.Save(); err != nil {
				return err
			}
			a.log.Info("wrote settings", "file", a.file.Path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", force,
		"overwrite an existing settings file")
	cfg.AddCommand(initCmd)

	return cfg
}
