package surveyor

import (
	"context"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirukguru/aws-reporter/service/informer"
)

type fakeCfgService struct{}

func (fakeCfgService) GetAWSCfg(ctx context.Context, region, profile string) (aws.Config, error) {
	return aws.Config{Region: "us-east-1"}, nil
}

type stubSource struct {
	mu    sync.Mutex
	types []string
	meta  informer.Metadata
	calls []string // entityType@region per Discover call
}

func (s *stubSource) EntityTypes() []string { return s.types }

func (s *stubSource) Discover(ctx context.Context, entityType string) ([]*informer.Informer, error) {
	s.mu.Lock()
	s.calls = append(s.calls, entityType+"@"+s.meta.Region)
	s.mu.Unlock()

	inf, err := informer.New(entityType, map[string]string{"Id": entityType + "-1"}, s.meta, nil)
	if err != nil {
		return nil, err
	}
	return []*informer.Informer{inf}, nil
}

type sourceRecorder struct {
	mu      sync.Mutex
	sources []*stubSource
}

func (r *sourceRecorder) factory(types ...string) SourceFactory {
	return func(cfg aws.Config, meta informer.Metadata) []Source {
		src := &stubSource{types: types, meta: meta}
		r.mu.Lock()
		r.sources = append(r.sources, src)
		r.mu.Unlock()
		return []Source{src}
	}
}

func (r *sourceRecorder) allCalls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, src := range r.sources {
		src.mu.Lock()
		out = append(out, src.calls...)
		src.mu.Unlock()
	}
	return out
}

func fixedAccount(ctx context.Context, cfg aws.Config) (string, error) {
	return "111122223333", nil
}

func twoRegions(ctx context.Context, cfg aws.Config) ([]string, error) {
	return []string{"us-east-1", "us-west-2"}, nil
}

func TestSurveyRequiresEntityTypes(t *testing.T) {
	rec := &sourceRecorder{}
	svc := NewServiceWithResolvers(fakeCfgService{}, nil, false, rec.factory("vpc"), fixedAccount, twoRegions)

	err := svc.Survey(context.Background())
	assert.ErrorContains(t, err, "no entity types requested")

	err = svc.Survey(context.Background(), " ", "")
	assert.ErrorContains(t, err, "no entity types requested")
}

func TestSurveyDeduplicatesRequestedTypes(t *testing.T) {
	rec := &sourceRecorder{}
	svc := NewServiceWithResolvers(fakeCfgService{}, nil, false, rec.factory("vpc"), fixedAccount, twoRegions)

	require.NoError(t, svc.Survey(context.Background(), "vpc", "vpc", " vpc "))

	assert.Equal(t, []string{"vpc@us-east-1"}, rec.allCalls())
	assert.Len(t, svc.Informers(), 1)
}

func TestSurveyAllRegionsFansOut(t *testing.T) {
	rec := &sourceRecorder{}
	svc := NewServiceWithResolvers(fakeCfgService{}, nil, true, rec.factory("vpc"), fixedAccount, twoRegions)

	require.NoError(t, svc.Survey(context.Background(), "vpc"))

	calls := rec.allCalls()
	assert.ElementsMatch(t, []string{"vpc@us-east-1", "vpc@us-west-2"}, calls)
	assert.Len(t, svc.Informers(), 2)
}

func TestSurveyGlobalTypesRunOncePerProfile(t *testing.T) {
	rec := &sourceRecorder{}
	svc := NewServiceWithResolvers(fakeCfgService{}, nil, true, rec.factory("iam-user", "vpc"), fixedAccount, twoRegions)

	require.NoError(t, svc.Survey(context.Background(), "iam-user", "vpc"))

	calls := rec.allCalls()
	assert.ElementsMatch(t, []string{"iam-user@global", "vpc@us-east-1", "vpc@us-west-2"}, calls)
}

func TestSurveyStampsMetadata(t *testing.T) {
	rec := &sourceRecorder{}
	svc := NewServiceWithResolvers(fakeCfgService{}, []string{"dev"}, false, rec.factory("vpc"), fixedAccount, twoRegions)

	require.NoError(t, svc.Survey(context.Background(), "vpc"))

	infs := svc.InformersByType("vpc")
	require.Len(t, infs, 1)
	data := infs[0].Data()
	assert.Equal(t, "111122223333", data["Account"])
	assert.Equal(t, "dev", data["Profile"])
	assert.Equal(t, "us-east-1", data["Region"])
}

func TestSurveyReplacesPreviousResults(t *testing.T) {
	rec := &sourceRecorder{}
	svc := NewServiceWithResolvers(fakeCfgService{}, nil, false, rec.factory("vpc", "subnet"), fixedAccount, twoRegions)

	require.NoError(t, svc.Survey(context.Background(), "vpc", "subnet"))
	require.Len(t, svc.Informers(), 2)

	require.NoError(t, svc.Survey(context.Background(), "vpc"))
	assert.Len(t, svc.Informers(), 1)
}

func TestSurveySortsInformersByEntityType(t *testing.T) {
	rec := &sourceRecorder{}
	svc := NewServiceWithResolvers(fakeCfgService{}, nil, false, rec.factory("vpc", "subnet", "ebs-volume"), fixedAccount, twoRegions)

	require.NoError(t, svc.Survey(context.Background(), "vpc", "subnet", "ebs-volume"))

	var types []string
	for _, inf := range svc.Informers() {
		types = append(types, inf.EntityType())
	}
	assert.IsIncreasing(t, types)
}

func TestAllPathsUnionSorted(t *testing.T) {
	rec := &sourceRecorder{}
	svc := NewServiceWithResolvers(fakeCfgService{}, nil, false, rec.factory("vpc", "subnet"), fixedAccount, twoRegions)

	require.NoError(t, svc.Survey(context.Background(), "vpc", "subnet"))

	paths := svc.AllPaths()
	assert.IsIncreasing(t, paths)
	assert.Contains(t, paths, "Id")
	assert.Contains(t, paths, "EntityType")
}

func TestExpandRunsEveryInformer(t *testing.T) {
	var mu sync.Mutex
	expanded := 0
	factory := func(cfg aws.Config, meta informer.Metadata) []Source {
		return []Source{&expandSource{meta: meta, onExpand: func() {
			mu.Lock()
			expanded++
			mu.Unlock()
		}}}
	}
	svc := NewServiceWithResolvers(fakeCfgService{}, nil, false, factory, fixedAccount, twoRegions)

	require.NoError(t, svc.Survey(context.Background(), "vpc"))
	require.NoError(t, svc.Expand(context.Background()))
	require.NoError(t, svc.Expand(context.Background()))

	assert.Equal(t, 1, expanded, "expansion must run at most once per informer")
}

type expandSource struct {
	meta     informer.Metadata
	onExpand func()
}

func (s *expandSource) EntityTypes() []string { return []string{"vpc"} }

func (s *expandSource) Discover(ctx context.Context, entityType string) ([]*informer.Informer, error) {
	inf, err := informer.New(entityType, map[string]string{"Id": "vpc-1"}, s.meta, func(ctx context.Context, inf *informer.Informer) error {
		s.onExpand()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return []*informer.Informer{inf}, nil
}
