package app

import (
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMermaidGraphIntrospector_Introspect(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	depend.Register(zap.New(core))

	report := introspection.Report{
		Configs: []introspection.ConfigAccess{
			{Key: "HTTP_PORT", UsedDefault: true},
			{Key: "JWT_SECRET", UsedDefault: false},
			{Key: "JWT_TTL", UsedDefault: true},
		},
	}

	err := MermaidGraphIntrospector{}.Introspect(t.Context(), report)
	require.NoError(t, err)

	graph, err := depend.ResolveNamed[string](introspectionGraphName)
	require.NoError(t, err)
	assert.NotEmpty(t, graph)

	entries := logs.FilterMessage("configuration defaults in use").All()
	require.Len(t, entries, 1)
	assert.Equal(t, []any{"HTTP_PORT", "JWT_TTL"}, entries[0].ContextMap()["keys"])
}

func TestDefaultedKeys_NoDefaults(t *testing.T) {
	report := introspection.Report{
		Configs: []introspection.ConfigAccess{{Key: "JWT_SECRET"}},
	}
	assert.Empty(t, defaultedKeys(report))
}
