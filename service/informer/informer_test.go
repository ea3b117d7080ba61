package informer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVpc struct {
	VpcId     string
	CidrBlock string
	IsDefault bool
	Tags      []fakeTag
}

type fakeTag struct {
	Key   string
	Value string
}

func newTestInformer(t *testing.T, expand ExpandFunc) *Informer {
	t.Helper()
	inf, err := New("vpc", fakeVpc{
		VpcId:     "vpc-123",
		CidrBlock: "10.0.0.0/16",
		IsDefault: true,
		Tags:      []fakeTag{{Key: "Name", Value: "core"}, {Key: "env", Value: "prod"}},
	}, Metadata{Profile: "dev", Region: "eu-west-1", Account: "123456789012"}, expand)
	require.NoError(t, err)
	return inf
}

func TestNewStampsMetadata(t *testing.T) {
	inf := newTestInformer(t, nil)

	assert.Equal(t, "vpc", inf.EntityType())
	assert.Equal(t, "dev", inf.Data()["Profile"])
	assert.Equal(t, "eu-west-1", inf.Data()["Region"])
	assert.Equal(t, "123456789012", inf.Data()["Account"])
	assert.Equal(t, "vpc", inf.Data()["EntityType"])
}

func TestTagNormalization(t *testing.T) {
	inf := newTestInformer(t, nil)

	name, ok := inf.Value("Tags.Name")
	require.True(t, ok)
	assert.Equal(t, "core", name)

	env, ok := inf.Value("Tags.env")
	require.True(t, ok)
	assert.Equal(t, "prod", env)
}

func TestExpandRunsOnce(t *testing.T) {
	calls := 0
	inf := newTestInformer(t, func(_ context.Context, inf *Informer) error {
		calls++
		inf.Set("Extra", "value")
		return nil
	})

	require.NoError(t, inf.Expand(context.Background()))
	require.NoError(t, inf.Expand(context.Background()))
	assert.Equal(t, 1, calls)
	assert.True(t, inf.Expanded())

	got, ok := inf.Value("Extra")
	require.True(t, ok)
	assert.Equal(t, "value", got)
}

func TestExpandNilFuncIsNoOp(t *testing.T) {
	inf := newTestInformer(t, nil)
	require.NoError(t, inf.Expand(context.Background()))
	assert.True(t, inf.Expanded())
}

func TestExpandError(t *testing.T) {
	boom := errors.New("boom")
	inf := newTestInformer(t, func(context.Context, *Informer) error { return boom })

	err := inf.Expand(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.False(t, inf.Expanded())
}

func TestMerge(t *testing.T) {
	inf := newTestInformer(t, nil)
	require.NoError(t, inf.Merge("Status", struct{ IsLogging bool }{IsLogging: true}))

	got, ok := inf.Value("Status.IsLogging")
	require.True(t, ok)
	assert.Equal(t, true, got)
}

func TestMergeInto(t *testing.T) {
	inf := newTestInformer(t, nil)
	require.NoError(t, inf.MergeInto(struct{ State string }{State: "available"}))

	got, ok := inf.Value("State")
	require.True(t, ok)
	assert.Equal(t, "available", got)

	// existing fields survive
	_, ok = inf.Value("VpcId")
	assert.True(t, ok)
}
