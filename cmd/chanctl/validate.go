package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/danmuck/chanwire/internal/wire"
	"github.com/danmuck/chanwire/internal/wireio"
)

var validateInput string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a raw packet stream header by header",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := cmd.InOrStdin()
		if validateInput != "" {
			f, err := os.Open(validateInput)
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			defer f.Close()
			in = f
		}
		return runValidate(cmd.OutOrStdout(), in)
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateInput, "input", "", "path to a packet stream (defaults to stdin)")
}

func runValidate(out io.Writer, in io.Reader) error {
	header := make([]byte, wire.HeaderSize)
	count := 0
	for {
		if err := wireio.ReadExact(in, header); err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintf(out, "%d packet(s) validated\n", count)
				return nil
			}
			return fmt.Errorf("packet %d: truncated stream: %w", count, err)
		}

		h, err := wire.DecodeHeader(header)
		if err != nil {
			fmt.Fprintf(out, "packet %d: INVALID: %v\n", count, err)
			return err
		}

		payload := make([]byte, h.PayloadLen())
		if len(payload) > 0 {
			if err := wireio.ReadExact(in, payload); err != nil {
				return fmt.Errorf("packet %d: truncated payload: %w", count, err)
			}
		}

		fmt.Fprintf(out, "packet %d: id=%d more_data=%v length=%d payload=%d\n",
			count, h.ID, h.MoreData(), h.Length, len(payload))
		count++
	}
}
