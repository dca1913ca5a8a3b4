package cli

import (
	"github.com/google/uuid"
	"github.com/iancoleman/strcase"
	"github.com/spf13/cobra"

	"github.com/fastfhir/fhir-r5-go/encoding"
	"github.com/fastfhir/fhir-r5-go/model"
)

func (a *app) newCmd() *cobra.Command {
	var (
		id       string
		assignID bool
	)

	cmd := &cobra.Command{
		Use:     "new <type>",
		Short:   "Create an empty resource with its defaults",
		Example: "  fhirtool new care-plan --assign-id\n  fhirtool new Patient --id example",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, ok := model.DefaultRegistry().Lookup(strcase.ToCamel(args[0]))
			if !ok {
				return model.NewError(model.KindNotFound, "type", "unknown resource type: %s", args[0])
			}
			if assignID {
				id = uuid.NewString()
			}
			res, err := reg.New(id)
			if err != nil {
				return err
			}
			defer model.Release(res)
			return encoding.Encode(cmd.OutOrStdout(), res, a.format())
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "resource id")
	cmd.Flags().BoolVar(&assignID, "assign-id", false, "assign a random UUID as id")
	cmd.MarkFlagsMutuallyExclusive("id", "assign-id")
	cmd.MarkFlagsOneRequired("id", "assign-id")
	return cmd
}
