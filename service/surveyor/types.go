// Package surveyor discovers cloud resources across profiles and regions.
package surveyor

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/thirukguru/aws-reporter/service/awsconfig"
	"github.com/thirukguru/aws-reporter/service/informer"
)

// Source discovers informers for the entity types it covers.
type Source interface {
	EntityTypes() []string
	Discover(ctx context.Context, entityType string) ([]*informer.Informer, error)
}

// SourceFactory builds the sources for one profile/region configuration.
type SourceFactory func(cfg aws.Config, meta informer.Metadata) []Source

// AccountResolver resolves the account ID behind a loaded configuration.
type AccountResolver func(ctx context.Context, cfg aws.Config) (string, error)

// RegionResolver lists the enabled regions for a loaded configuration.
type RegionResolver func(ctx context.Context, cfg aws.Config) ([]string, error)

// Service runs resource discovery and holds the resulting informers.
type Service interface {
	// Survey discovers informers for exactly the given entity types across
	// all configured profiles. Results of a previous call are replaced.
	Survey(ctx context.Context, entityTypes ...string) error
	// Expand enriches every informer in place.
	Expand(ctx context.Context) error
	Informers() []*informer.Informer
	InformersByType(entityType string) []*informer.Informer
	// AllPaths returns the union of field paths across all informers, sorted.
	AllPaths() []string
	// Profiles returns the configured profile identifiers.
	Profiles() []string
}

type service struct {
	cfgService awsconfig.Service
	profiles   []string
	allRegions bool

	sources        SourceFactory
	resolveAccount AccountResolver
	resolveRegions RegionResolver

	mu        sync.Mutex
	informers []*informer.Informer
}

// Entity types surveyed once per profile instead of once per region.
var globalEntityTypes = map[string]bool{
	"iam-user":    true,
	"iam-role":    true,
	"hosted-zone": true,
	"s3-bucket":   true,
}

// NewService creates a surveyor for the given profiles. An empty profile
// list surveys the default credential chain. allRegions widens discovery of
// regional entity types to every enabled region.
func NewService(cfgService awsconfig.Service, profiles []string, allRegions bool) Service {
	return &service{
		cfgService:     cfgService,
		profiles:       profiles,
		allRegions:     allRegions,
		sources:        defaultSources,
		resolveAccount: resolveAccountID,
		resolveRegions: resolveEnabledRegions,
	}
}

// NewServiceWithResolvers creates a surveyor with injected source factory and
// resolvers (for testing).
func NewServiceWithResolvers(cfgService awsconfig.Service, profiles []string, allRegions bool, sources SourceFactory, account AccountResolver, regions RegionResolver) Service {
	return &service{
		cfgService:     cfgService,
		profiles:       profiles,
		allRegions:     allRegions,
		sources:        sources,
		resolveAccount: account,
		resolveRegions: regions,
	}
}
