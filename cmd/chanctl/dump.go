package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/danmuck/chanwire/internal/sender"
	"github.com/danmuck/chanwire/internal/serdes"
)

var dumpStartID uint8

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Frame stdin as a single value and write the wire bytes to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}

		ser := serdes.SerializerFunc[[]byte](func(v []byte) ([]byte, error) { return v, nil })
		s := sender.New[[]byte](cmd.OutOrStdout(), ser, sender.WithStartID[[]byte](dumpStartID))
		if err := s.Send(payload); err != nil {
			return fmt.Errorf("send: %w", err)
		}
		return nil
	},
}

func init() {
	dumpCmd.Flags().Uint8Var(&dumpStartID, "start-id", 0, "frame id to write into the header")
	dumpCmd.SetOut(os.Stdout)
}
