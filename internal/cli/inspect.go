package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Lzww0608/uuid"
)

// newInspectCommand constructs the `inspect` command.
func newInspectCommand(logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <uuid>",
		Short: "Show the fields of a UUID given in canonical or URN form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[0], err)
			}

			version, ok := id.LookupVersion()
			if !ok {
				logger.Warn("unrecognised version tag",
					zap.Stringer("uuid", id),
					zap.Uint8("tag", uint8(version)))
			}
			mixed := id.MixedEndian()

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "canonical: %s\n", id)
			fmt.Fprintf(w, "urn:       %s\n", id.URN())
			fmt.Fprintf(w, "variant:   %s\n", id.Variant())
			fmt.Fprintf(w, "version:   %s\n", version)
			fmt.Fprintf(w, "nil:       %t\n", id.IsNil())
			fmt.Fprintf(w, "mixed:     %s\n", hex.EncodeToString(mixed[:]))
			return nil
		},
	}
}
