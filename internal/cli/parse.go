package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/fastfhir/fhir-r5-go/encoding"
	"github.com/fastfhir/fhir-r5-go/model"
)

func (a *app) parseCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "parse <file|->",
		Short: "Parse a resource and write it back in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.decode(cmd, args[0])
			if err != nil {
				return err
			}
			defer model.Release(res)

			log.Debug().
				Str("type", res.ResourceType().String()).
				Str("display", model.DisplayName(res)).
				Msg("parsed resource")

			if check {
				if err := model.Validate(res); err != nil {
					return err
				}
			}
			return encoding.Encode(cmd.OutOrStdout(), res, a.format())
		},
	}
	cmd.Flags().BoolVar(&check, "validate", false, "fail if the resource does not validate")
	return cmd
}
