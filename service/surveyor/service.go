package surveyor

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/thirukguru/aws-reporter/service/informer"
	"github.com/thirukguru/aws-reporter/shared/logging"
	"golang.org/x/sync/errgroup"
)

// discoveryConcurrency bounds parallel API fan-out across regions and sources.
const discoveryConcurrency = 8

func (s *service) Survey(ctx context.Context, entityTypes ...string) error {
	requested := dedupe(entityTypes)
	if len(requested) == 0 {
		return fmt.Errorf("no entity types requested")
	}

	s.mu.Lock()
	s.informers = nil
	s.mu.Unlock()

	profiles := s.profiles
	if len(profiles) == 0 {
		profiles = []string{""} // default credential chain
	}

	for _, profile := range profiles {
		if err := s.surveyProfile(ctx, profile, requested); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Deterministic order regardless of goroutine completion order.
	slices.SortStableFunc(s.informers, func(a, b *informer.Informer) int {
		return strings.Compare(a.EntityType(), b.EntityType())
	})
	logging.L().Info().Int("informers", len(s.informers)).Msg("survey complete")
	return nil
}

func (s *service) surveyProfile(ctx context.Context, profile string, requested []string) error {
	cfg, err := s.cfgService.GetAWSCfg(ctx, "", profile)
	if err != nil {
		return fmt.Errorf("failed to load AWS config for profile %q: %w", profile, err)
	}

	account, err := s.resolveAccount(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to resolve account for profile %q: %w", profile, err)
	}

	regions := []string{cfg.Region}
	if s.allRegions {
		regions, err = s.resolveRegions(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to resolve regions for profile %q: %w", profile, err)
		}
	}

	var regional, global []string
	for _, t := range requested {
		if globalEntityTypes[t] {
			global = append(global, t)
		} else {
			regional = append(regional, t)
		}
	}

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(discoveryConcurrency)

	// Global entity types once per profile, in the profile's home region.
	if len(global) > 0 {
		meta := informer.Metadata{Profile: profile, Region: "global", Account: account}
		s.scheduleDiscovery(groupCtx, g, cfg, meta, global)
	}

	for _, region := range regions {
		regionCfg := cfg.Copy()
		regionCfg.Region = region
		meta := informer.Metadata{Profile: profile, Region: region, Account: account}
		s.scheduleDiscovery(groupCtx, g, regionCfg, meta, regional)
	}

	return g.Wait()
}

func (s *service) scheduleDiscovery(ctx context.Context, g *errgroup.Group, cfg aws.Config, meta informer.Metadata, requested []string) {
	for _, src := range s.sources(cfg, meta) {
		covered := src.EntityTypes()
		for _, entityType := range requested {
			if !slices.Contains(covered, entityType) {
				continue
			}
			src, entityType := src, entityType
			g.Go(func() error {
				found, err := src.Discover(ctx, entityType)
				if err != nil {
					return fmt.Errorf("discovery of %s failed in %s: %w", entityType, meta.Region, err)
				}
				logging.L().Debug().
					Str("entity_type", entityType).
					Str("region", meta.Region).
					Int("count", len(found)).
					Msg("discovered")
				s.mu.Lock()
				s.informers = append(s.informers, found...)
				s.mu.Unlock()
				return nil
			})
		}
	}
}

func (s *service) Expand(ctx context.Context) error {
	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(discoveryConcurrency)

	for _, inf := range s.Informers() {
		inf := inf
		g.Go(func() error {
			return inf.Expand(groupCtx)
		})
	}

	return g.Wait()
}

func (s *service) Informers() []*informer.Informer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*informer.Informer, len(s.informers))
	copy(out, s.informers)
	return out
}

func (s *service) InformersByType(entityType string) []*informer.Informer {
	var out []*informer.Informer
	for _, inf := range s.Informers() {
		if inf.EntityType() == entityType {
			out = append(out, inf)
		}
	}
	return out
}

func (s *service) AllPaths() []string {
	seen := make(map[string]struct{})
	for _, inf := range s.Informers() {
		for _, p := range inf.Paths() {
			seen[p] = struct{}{}
		}
	}

	paths := make([]string, 0, len(seen))
	for p := range seen {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}

func (s *service) Profiles() []string {
	return s.profiles
}

func dedupe(input []string) []string {
	out := make([]string, 0, len(input))
	for _, t := range input {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	return out
}
