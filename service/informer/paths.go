package informer

import (
	"sort"
	"strings"
)

// Paths returns the sorted dot-separated paths of every leaf field in the
// informer's document. Traversal descends transparently through slices, so a
// list of rules contributes one path per distinct rule field.
func (i *Informer) Paths() []string {
	seen := make(map[string]struct{})
	collectPaths("", i.data, seen)

	paths := make([]string, 0, len(seen))
	for p := range seen {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func collectPaths(prefix string, v any, seen map[string]struct{}) {
	switch val := v.(type) {
	case map[string]any:
		if len(val) == 0 && prefix != "" {
			seen[prefix] = struct{}{}
			return
		}
		for k, child := range val {
			collectPaths(joinPath(prefix, k), child, seen)
		}
	case []any:
		if len(val) == 0 && prefix != "" {
			seen[prefix] = struct{}{}
			return
		}
		for _, elem := range val {
			collectPaths(prefix, elem, seen)
		}
	default:
		if prefix != "" {
			seen[prefix] = struct{}{}
		}
	}
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// Value resolves a dot-separated path against the document. A slice along
// the path fans out: matches from every element are collected into a []any.
// The boolean is false when nothing in the document matches the path.
func (i *Informer) Value(path string) (any, bool) {
	segments := strings.Split(path, ".")
	return resolve(i.data, segments)
}

func resolve(v any, segments []string) (any, bool) {
	if len(segments) == 0 {
		return v, true
	}

	switch val := v.(type) {
	case map[string]any:
		child, ok := val[segments[0]]
		if !ok {
			return nil, false
		}
		return resolve(child, segments[1:])
	case []any:
		var matches []any
		for _, elem := range val {
			if got, ok := resolve(elem, segments); ok {
				matches = append(matches, got)
			}
		}
		if len(matches) == 0 {
			return nil, false
		}
		return matches, true
	default:
		return nil, false
	}
}
