package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/voxelcore/voxelblocks/internal/codec"
	"github.com/voxelcore/voxelblocks/internal/encoding"
)

func newDumpHeaderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump-header <blob-file>",
		Short: "Print the wire-format header of a compressed chunk blob",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			h, payload, err := encoding.ReadHeader(data)
			if err != nil {
				return err
			}
			var strategyName string
			switch h.Encoding {
			case encoding.StrategyFastChannelSplit:
				strategyName = "fast-channel-split"
			case encoding.StrategyGenericSerialized:
				strategyName = "generic-serialized"
			default:
				strategyName = fmt.Sprintf("unknown(%d)", h.Encoding)
			}
			var codecName codec.Tag = h.Codec
			fmt.Fprintf(cmd.OutOrStdout(), "strategy:       %s\n", strategyName)
			fmt.Fprintf(cmd.OutOrStdout(), "codec:          %s\n", codecName)
			fmt.Fprintf(cmd.OutOrStdout(), "extent min:     %v\n", h.ExtentMin)
			fmt.Fprintf(cmd.OutOrStdout(), "extent shape:   %v\n", h.ExtentShape)
			fmt.Fprintf(cmd.OutOrStdout(), "channels:       %d\n", h.NumChannels)
			fmt.Fprintf(cmd.OutOrStdout(), "channel sizes:  %v\n", h.ChannelSizes)
			fmt.Fprintf(cmd.OutOrStdout(), "payload bytes:  %d\n", len(payload))
			return nil
		},
	}
}
