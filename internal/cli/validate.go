package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/fastfhir/fhir-r5-go/encoding"
	"github.com/fastfhir/fhir-r5-go/model"
	"github.com/fastfhir/fhir-r5-go/outcome"
)

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file|->...",
		Short: "Validate resources, printing an OperationOutcome for each failure",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, name := range args {
				err := a.validateOne(cmd, name)
				if err == nil {
					log.Info().Str("file", name).Msg("valid")
					continue
				}
				failed++
				log.Warn().Err(err).Str("file", name).Msg("invalid")

				oo := outcome.FromError(errors.Wrap(err, name))
				err = encoding.Encode(cmd.OutOrStdout(), oo, a.format())
				model.Release(oo)
				if err != nil {
					return err
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d resources failed validation", failed, len(args))
			}
			return nil
		},
	}
}

func (a *app) validateOne(cmd *cobra.Command, name string) error {
	res, err := a.decode(cmd, name)
	if err != nil {
		return err
	}
	defer model.Release(res)
	return model.Validate(res)
}
