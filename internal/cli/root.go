// Package cli contains the Cobra commands of the uuid tool.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Lzww0608/uuid"
)

// NewRoot constructs the root command. gen supplies the identifiers printed
// by `uuid gen`.
func NewRoot(logger *zap.Logger, gen *uuid.Generator) *cobra.Command {
	root := &cobra.Command{
		Use:           "uuid",
		Short:         "Generate, inspect and convert UUIDs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newGenCommand(logger, gen),
		newInspectCommand(logger),
		newConvertCommand(logger),
	)
	return root
}
