package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/penbridge/directive-converter/directive"
	"github.com/penbridge/directive-converter/mdparser"
)

func newCheckCmd() *cobra.Command {
	var detectHTMLAlign bool

	cmd := &cobra.Command{
		Use:   "check <input-file>",
		Short: "Inventory the directives in a markdown article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
				color.NoColor = true
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			parser, err := mdparser.New(parserConfig(detectHTMLAlign))
			if err != nil {
				return err
			}
			parsed, err := parser.Parse(string(data))
			if err != nil {
				return err
			}

			registry := directive.Builtin()
			out := cmd.OutOrStdout()
			count := 0
			walkDirectives(parsed.Doc, func(node directive.Node) {
				count++
				status := "known"
				if _, ok := registry.Lookup(node.Name); !ok {
					status = "fallback"
				}
				fmt.Fprintf(out, "%-10s %-20s %s\n", node.Kind, node.Name, status)
			})
			if count == 0 {
				fmt.Fprintln(out, "no directives found")
			}

			printWarnings(parsed.Warnings)
			return nil
		},
	}

	cmd.Flags().BoolVar(&detectHTMLAlign, "detect-html-align", false, "convert aligned HTML divs into alignment directives")

	return cmd
}

func walkDirectives(node directive.Node, visit func(directive.Node)) {
	if node.IsDirective() {
		visit(node)
	}
	for _, child := range node.Children {
		walkDirectives(child, visit)
	}
}
