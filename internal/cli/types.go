package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fastfhir/fhir-r5-go/model"
)

func (a *app) typesCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the resource types that can be parsed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if !all {
				for _, reg := range model.DefaultRegistry().Entries() {
					fmt.Fprintln(out, reg.Name)
				}
				return nil
			}
			for _, t := range model.ResourceTypes() {
				mark := " "
				if _, ok := model.DefaultRegistry().LookupType(t); ok {
					mark = "*"
				}
				fmt.Fprintf(out, "%s %s\n", mark, t)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "list every R5 resource type, marking the supported ones")
	return cmd
}
