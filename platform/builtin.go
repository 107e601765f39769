package platform

import "github.com/penbridge/directive-converter/directive"

// Builtin platform identifiers.
const (
	Source = "source"
	Cloud  = "cloud"
	Juejin = "juejin"
	CSDN   = "csdn"
)

// Builtin returns the shipped platform table.
//
// "source" keeps every directive verbatim and backs lossless serialization.
// The cloud community editor renders the alignment directives natively, so
// they stay as-is there; CSDN accepts embedded HTML, so alignments project to
// styled divs; Juejin strips markup it does not know, so everything reduces
// to bare content.
func Builtin() []Config {
	alignKeep := make(map[string]Strategy, 4)
	alignHTML := make(map[string]Strategy, 4)
	alignRemove := make(map[string]Strategy, 4)
	for _, align := range directive.Alignments() {
		alignKeep[align] = StrategyKeep
		alignHTML[align] = StrategyToHTML
		alignRemove[align] = StrategyRemove
	}

	return []Config{
		{
			Platform:        Source,
			Name:            "Source Markdown",
			SupportsHTML:    true,
			DefaultStrategy: StrategyKeep,
		},
		{
			Platform:        Cloud,
			Name:            "Tencent Cloud Developer Community",
			SupportsHTML:    true,
			Strategies:      alignKeep,
			DefaultStrategy: StrategyToHTML,
		},
		{
			Platform:        CSDN,
			Name:            "CSDN",
			SupportsHTML:    true,
			Strategies:      alignHTML,
			DefaultStrategy: StrategyToHTML,
		},
		{
			Platform:        Juejin,
			Name:            "Juejin",
			SupportsHTML:    false,
			Strategies:      alignRemove,
			DefaultStrategy: StrategyRemove,
		},
	}
}

// BuiltinResolver returns a resolver over the shipped platform table.
func BuiltinResolver() *Resolver {
	resolver, err := NewResolver(Builtin()...)
	if err != nil {
		// The shipped table is validated by tests; reaching this is a
		// programming error.
		panic(err)
	}
	return resolver
}
