// Package informer wraps discovered AWS resources as path-addressable documents.
package informer

import (
	"context"
	"encoding/json"
	"fmt"
)

// Metadata identifies where an informer's resource was discovered.
type Metadata struct {
	Profile string
	Region  string
	Account string
}

// ExpandFunc enriches an informer with related data, mutating it in place.
type ExpandFunc func(ctx context.Context, inf *Informer) error

// Informer wraps one discovered cloud resource. The resource is held as a
// nested document so reports can select fields by dot-separated paths.
type Informer struct {
	entityType string
	data       map[string]any
	expandFn   ExpandFunc
	expanded   bool
}

// New creates an informer for a raw SDK value. The value is decoded into a
// document via a JSON round trip, tag lists are normalized to maps, and the
// discovery metadata is stamped into the document so reports can select it.
func New(entityType string, raw any, meta Metadata, expand ExpandFunc) (*Informer, error) {
	data, err := ToDocument(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s informer: %w", entityType, err)
	}

	data["EntityType"] = entityType
	data["Profile"] = meta.Profile
	data["Region"] = meta.Region
	data["Account"] = meta.Account

	return &Informer{
		entityType: entityType,
		data:       data,
		expandFn:   expand,
	}, nil
}

// EntityType returns the entity type this informer was discovered as.
func (i *Informer) EntityType() string {
	return i.entityType
}

// Data returns the underlying document.
func (i *Informer) Data() map[string]any {
	return i.data
}

// Expanded reports whether Expand has already run.
func (i *Informer) Expanded() bool {
	return i.expanded
}

// Expand enriches the informer with related data. It is idempotent: the
// enrichment callback runs at most once, and informers without one are a no-op.
func (i *Informer) Expand(ctx context.Context) error {
	if i.expanded || i.expandFn == nil {
		i.expanded = true
		return nil
	}
	if err := i.expandFn(ctx, i); err != nil {
		return fmt.Errorf("failed to expand %s informer: %w", i.entityType, err)
	}
	i.expanded = true
	return nil
}

// Set stores a scalar value at a top-level key.
func (i *Informer) Set(key string, value any) {
	i.data[key] = value
}

// Merge decodes a raw SDK value and stores the resulting document at key.
// Expansion callbacks use it to attach related data.
func (i *Informer) Merge(key string, raw any) error {
	doc, err := ToDocument(raw)
	if err != nil {
		return fmt.Errorf("failed to merge %q: %w", key, err)
	}
	i.data[key] = doc
	return nil
}

// MergeInto decodes a raw SDK value and folds its top-level fields into the
// informer's document, overwriting existing keys.
func (i *Informer) MergeInto(raw any) error {
	doc, err := ToDocument(raw)
	if err != nil {
		return fmt.Errorf("failed to merge document: %w", err)
	}
	for k, v := range doc {
		i.data[k] = v
	}
	return nil
}

// ToDocument converts a raw SDK value into a nested document via a JSON
// round trip, then normalizes AWS tag lists into maps.
func ToDocument(raw any) (map[string]any, error) {
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to encode resource: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode resource: %w", err)
	}
	normalizeTags(doc)
	return doc, nil
}

// Keys under which AWS APIs return tag lists.
var tagListKeys = []string{"Tags", "TagList", "TagSet"}

// normalizeTags rewrites [{Key, Value}] tag lists as string maps, recursing
// into nested documents, so paths like Tags.Name select tag values.
func normalizeTags(doc map[string]any) {
	for _, key := range tagListKeys {
		if tags, ok := asTagMap(doc[key]); ok {
			doc[key] = tags
		}
	}
	for _, v := range doc {
		switch nested := v.(type) {
		case map[string]any:
			normalizeTags(nested)
		case []any:
			for _, elem := range nested {
				if m, ok := elem.(map[string]any); ok {
					normalizeTags(m)
				}
			}
		}
	}
}

func asTagMap(v any) (map[string]any, bool) {
	list, ok := v.([]any)
	if !ok || len(list) == 0 {
		return nil, false
	}
	tags := make(map[string]any, len(list))
	for _, elem := range list {
		m, ok := elem.(map[string]any)
		if !ok {
			return nil, false
		}
		key, ok := m["Key"].(string)
		if !ok {
			return nil, false
		}
		value, ok := m["Value"].(string)
		if !ok {
			return nil, false
		}
		tags[key] = value
	}
	return tags, true
}
