// Command pdc transforms directive-extended markdown articles for publishing
// platforms.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/penbridge/directive-converter/directive"
	"github.com/penbridge/directive-converter/platform"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pdc",
		Short: "Transform directive markdown for publishing platforms",
		Long: `pdc parses markdown with directive syntax (:::name containers, ::name
leaves, :name[text] inlines) and rewrites each directive per the target
platform's strategy table (keep, toHtml, toText, remove).

Unknown directives are preserved opaquely; prose is never lost.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("platforms-file", "", "YAML file with additional platform configs")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	cmd.AddCommand(newTransformCmd())
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newPlatformsCmd())

	return cmd
}

// resolverFromFlags builds the platform resolver, merging a user-provided
// platform file over the built-in table.
func resolverFromFlags(cmd *cobra.Command) (*platform.Resolver, error) {
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		color.NoColor = true
	}

	path, _ := cmd.Flags().GetString("platforms-file")
	if path == "" {
		return platform.BuiltinResolver(), nil
	}
	overrides, err := platform.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return platform.NewResolverWithOverrides(platform.Builtin(), overrides)
}

func printWarnings(warnings []directive.Warning) {
	yellow := color.New(color.FgYellow)
	for _, warning := range warnings {
		if warning.Directive != "" {
			yellow.Fprintf(os.Stderr, "warning: %s (%s): %s\n", warning.Type, warning.Directive, warning.Message)
			continue
		}
		yellow.Fprintf(os.Stderr, "warning: %s: %s\n", warning.Type, warning.Message)
	}
}
