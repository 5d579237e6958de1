package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danmuck/chanwire/internal/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage channel presets",
}

var configInitCmd = &cobra.Command{
	Use:   "init <path>",
	Short: "Write a starter channel preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return config.WriteTemplate(args[0], configForce)
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Load and validate a channel preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadChannelPreset(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: version=%#04x max_payload=%d start_id=%d stats=%s\n",
			cfg.Name, cfg.ProtocolVersion, cfg.MaxPayload, cfg.StartID, cfg.StatsBackend)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd, configValidateCmd)
}
