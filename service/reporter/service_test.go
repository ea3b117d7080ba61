package reporter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogNamesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, def := range catalog {
		assert.False(t, seen[def.Name], "duplicate report name %q", def.Name)
		seen[def.Name] = true
		assert.NotEmpty(t, def.EntityType, "report %q has no entity type", def.Name)
		assert.NotEmpty(t, def.PruneSpecs, "report %q has no columns", def.Name)
	}
}

func TestReportNamesSorted(t *testing.T) {
	svc := NewService()
	names := svc.ReportNames()
	require.NotEmpty(t, names)
	assert.IsIncreasing(t, names)
}

func TestEntityTypesDeduplicates(t *testing.T) {
	svc := NewServiceWithDefinitions([]Definition{
		{Name: "r1", EntityType: "vpc", PruneSpecs: []PruneSpec{{Name: "A", Path: "A"}}},
		{Name: "r2", EntityType: "vpc", PruneSpecs: []PruneSpec{{Name: "B", Path: "B"}}},
		{Name: "r3", EntityType: "subnet", PruneSpecs: []PruneSpec{{Name: "C", Path: "C"}}},
	})

	types, err := svc.EntityTypes("r1", "r2", "r3")
	require.NoError(t, err)
	assert.Equal(t, []string{"vpc", "subnet"}, types)
}

func TestEntityTypesUnknownReport(t *testing.T) {
	svc := NewService()
	_, err := svc.EntityTypes("vpcs", "no-such-report")
	assert.ErrorContains(t, err, `unknown report "no-such-report"`)
}

func TestDefinitionLookup(t *testing.T) {
	svc := NewService()

	def, ok := svc.Definition("vpcs")
	require.True(t, ok)
	assert.Equal(t, "vpc", def.EntityType)

	_, ok = svc.Definition("bogus")
	assert.False(t, ok)
}
