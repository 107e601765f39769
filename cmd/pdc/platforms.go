package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/penbridge/directive-converter/directive"
)

func newPlatformsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "platforms",
		Short: "List configured publishing platforms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := resolverFromFlags(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, id := range resolver.Platforms() {
				config := resolver.Config(id)
				fmt.Fprintf(out, "%s (%s)\n", config.Platform, config.Name)
				fmt.Fprintf(out, "  supportsHtml: %t  default: %s\n", config.SupportsHTML, config.DefaultStrategy)
				for _, align := range directive.Alignments() {
					fmt.Fprintf(out, "  %-8s %s\n", align, config.StrategyFor(align))
				}
			}
			return nil
		},
	}

	return cmd
}
