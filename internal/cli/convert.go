package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Lzww0608/uuid"
)

// newConvertCommand constructs the `convert` command group, which moves
// identifiers between the canonical and the mixed-endian (GUID) byte layout.
// Mixed-endian bytes are read and written as 32 hex digits.
func newConvertCommand(logger *zap.Logger) *cobra.Command {
	convertCmd := &cobra.Command{Use: "convert", Short: "Convert between byte layouts"}

	convertCmd.AddCommand(
		&cobra.Command{
			Use:   "to-mixed <uuid>",
			Short: "Print the mixed-endian bytes of a UUID as hex",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := uuid.Parse(args[0])
				if err != nil {
					return fmt.Errorf("parse %q: %w", args[0], err)
				}
				mixed := id.MixedEndian()
				logger.Debug("converted to mixed-endian", zap.Stringer("uuid", id))
				fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(mixed[:]))
				return nil
			},
		},
		&cobra.Command{
			Use:   "from-mixed <hex>",
			Short: "Print the UUID whose mixed-endian bytes are given as 32 hex digits",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				raw, err := uuid.DecodeFromHex(args[0])
				if err != nil {
					return fmt.Errorf("decode %q: %w", args[0], err)
				}
				id := uuid.FromMixedEndian(raw.Array())
				logger.Debug("converted from mixed-endian", zap.Stringer("uuid", id))
				fmt.Fprintln(cmd.OutOrStdout(), id)
				return nil
			},
		},
	)

	return convertCmd
}
