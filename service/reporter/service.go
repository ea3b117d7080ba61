package reporter

import (
	"fmt"
	"slices"
)

func (s *service) ReportNames() []string {
	names := make([]string, 0, len(s.definitions))
	for _, def := range s.definitions {
		names = append(names, def.Name)
	}
	slices.Sort(names)
	return names
}

func (s *service) ReportDefinitions() []Definition {
	out := make([]Definition, len(s.definitions))
	copy(out, s.definitions)
	return out
}

func (s *service) Definition(name string) (Definition, bool) {
	def, ok := s.byName[name]
	return def, ok
}

func (s *service) EntityTypes(reportNames ...string) ([]string, error) {
	var types []string
	for _, name := range reportNames {
		def, ok := s.byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown report %q (run with no arguments to list reports)", name)
		}
		if !slices.Contains(types, def.EntityType) {
			types = append(types, def.EntityType)
		}
	}
	return types, nil
}
