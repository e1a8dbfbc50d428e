package spec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/pkordes/fleet-analytics/spec"
)

type document struct {
	OpenAPI string                               `yaml:"openapi"`
	Paths   map[string]map[string]map[string]any `yaml:"paths"`
}

func TestOpenAPI_DeclaresEveryRoute(t *testing.T) {
	var doc document
	require.NoError(t, yaml.Unmarshal(spec.OpenAPI, &doc))
	assert.Equal(t, "3.0.3", doc.OpenAPI)

	want := map[string][]string{
		"/healthz":                       {"get"},
		"/trips":                         {"get"},
		"/trips/{id}":                    {"get"},
		"/analytics/trips":               {"get"},
		"/analytics/routes":              {"get"},
		"/analytics/status":              {"get"},
		"/analytics/monthly-distance":    {"get"},
		"/analytics/top-routes":          {"get"},
		"/trucks":                        {"get", "post"},
		"/trucks/by-trucker/{truckerId}": {"get"},
		"/truckers":                      {"get"},
		"/truckers/unassigned":           {"get"},
		"/truckers/assignments":          {"get"},
	}
	assert.Len(t, doc.Paths, len(want))
	for path, methods := range want {
		ops, ok := doc.Paths[path]
		if !assert.Truef(t, ok, "path %s missing", path) {
			continue
		}
		for _, m := range methods {
			op, ok := ops[m]
			if assert.Truef(t, ok, "%s %s missing", m, path) {
				assert.NotEmpty(t, op["operationId"])
			}
		}
	}
}
