package app

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
	"go.uber.org/zap"
)

// introspectionGraphName is the named dependency the /introspect page renders.
const introspectionGraphName = "introspection-graph-mermaid"

// MermaidGraphIntrospector publishes the wiring report as a Mermaid graph for
// the /introspect page and logs which configuration keys fell back to defaults.
type MermaidGraphIntrospector struct{}

// Introspect implements introspection.Introspector.
func (MermaidGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	depend.RegisterNamed(mermaid.GenerateIntrospectionGraph(r), introspectionGraphName)

	logger, err := depend.Resolve[*zap.Logger]()
	if err != nil {
		return nil
	}
	logger.Info("configuration defaults in use", zap.Strings("keys", defaultedKeys(r)))
	return nil
}

func defaultedKeys(r introspection.Report) []string {
	keys := []string{}
	for _, c := range r.Configs {
		if c.UsedDefault {
			keys = append(keys, c.Key)
		}
	}
	return keys
}
