package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Lzww0608/uuid"
)

// newGenCommand constructs the `gen` command.
func newGenCommand(logger *zap.Logger, gen *uuid.Generator) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate random (version 4) UUIDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			count, _ := cmd.Flags().GetInt("count")
			urn, _ := cmd.Flags().GetBool("urn")
			if count < 0 {
				return fmt.Errorf("count cannot be less than 0")
			}

			out := cmd.OutOrStdout()
			var buf [uuid.URNLen + 1]byte
			for i := 0; i < count; i++ {
				id, err := gen.NewV4()
				if err != nil {
					return fmt.Errorf("generate uuid: %w", err)
				}

				var text []byte
				if urn {
					text = id.PutURN(buf[:])
				} else {
					text = id.PutString(buf[:])
				}
				buf[len(text)] = '\n'
				if _, err := out.Write(buf[:len(text)+1]); err != nil {
					return err
				}
			}

			logger.Debug("generated uuids", zap.Int("count", count), zap.Bool("urn", urn))
			return nil
		},
	}
	cmd.Flags().IntP("count", "n", 1, "number of uuids to create")
	cmd.Flags().Bool("urn", false, "print the urn:uuid: form")
	return cmd
}
