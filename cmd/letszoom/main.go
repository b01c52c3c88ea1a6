package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"letszoom/internal/config"
	"letszoom/internal/hotkey"
)

// version is set with -ldflags "-X main.version=...".
var version = "1.0.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:          "letszoom",
		Short:        "Screen zoom and annotation from the tray",
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return runApp(debug)
		},
	}
	root.Flags().BoolVar(&debug, "debug", false, "write a debug log next to the executable")

	root.AddCommand(newConfigPathCmd())
	root.AddCommand(newSetHotkeyCmd())
	return root
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config-path",
		Short: "Print the settings file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.GetConfigPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func newSetHotkeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-hotkey <zoom|draw|zoomdraw|screenshot> <combo>",
		Short: "Rebind a hotkey, e.g. set-hotkey zoom ctrl+alt+z",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			action, err := hotkey.ParseAction(args[0])
			if err != nil {
				return err
			}
			combo, err := hotkey.ParseCombo(args[1])
			if err != nil {
				return err
			}

			path, err := config.GetConfigPath()
			if err != nil {
				return err
			}
			var s config.Settings
			if err := s.Load(path); err != nil {
				return err
			}
			if err := hotkey.SetBinding(&s, action, combo); err != nil {
				return err
			}
			if err := s.Save(path); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s hotkey set to %s\n", action, hotkey.FormatCombo(combo))
			return nil
		},
	}
}
