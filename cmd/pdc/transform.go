package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/penbridge/directive-converter/mdparser"
	"github.com/penbridge/directive-converter/publish"
)

func newTransformCmd() *cobra.Command {
	var (
		platformID      string
		outputPath      string
		detectHTMLAlign bool
		forceHTML       bool
	)

	cmd := &cobra.Command{
		Use:   "transform <input-file>",
		Short: "Rewrite a markdown article for a target platform",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			resolver, err := resolverFromFlags(cmd)
			if err != nil {
				return err
			}

			parser, err := mdparser.New(parserConfig(detectHTMLAlign))
			if err != nil {
				return err
			}
			parsed, err := parser.Parse(string(data))
			if err != nil {
				return err
			}

			htmlFallback := publish.HTMLFallbackText
			if forceHTML {
				htmlFallback = publish.HTMLFallbackForce
			}
			transformer, err := publish.New(publish.Config{
				Platform:     platformID,
				Resolver:     resolver,
				HTMLFallback: htmlFallback,
			})
			if err != nil {
				return err
			}
			result, err := transformer.Transform(parsed.Doc)
			if err != nil {
				return err
			}

			printWarnings(parsed.Warnings)
			printWarnings(result.Warnings)

			if outputPath != "" {
				return os.WriteFile(outputPath, []byte(result.Markdown), 0o644)
			}
			fmt.Fprint(cmd.OutOrStdout(), result.Markdown)
			return nil
		},
	}

	cmd.Flags().StringVarP(&platformID, "platform", "p", "", "target platform identifier (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write output to file instead of stdout")
	cmd.Flags().BoolVar(&detectHTMLAlign, "detect-html-align", false, "convert aligned HTML divs into alignment directives")
	cmd.Flags().BoolVar(&forceHTML, "force-html", false, "emit HTML even on platforms that do not accept it")
	_ = cmd.MarkFlagRequired("platform")

	return cmd
}

func parserConfig(detectHTMLAlign bool) mdparser.Config {
	cfg := mdparser.Config{}
	if detectHTMLAlign {
		cfg.HTMLAlignDetection = mdparser.HTMLAlignDetectDiv
	}
	return cfg
}
