package surveyor

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/thirukguru/aws-reporter/service/cloudtrailinventory"
	"github.com/thirukguru/aws-reporter/service/dynamoinventory"
	"github.com/thirukguru/aws-reporter/service/ec2inventory"
	"github.com/thirukguru/aws-reporter/service/ecrinventory"
	"github.com/thirukguru/aws-reporter/service/ecsinventory"
	"github.com/thirukguru/aws-reporter/service/eksinventory"
	"github.com/thirukguru/aws-reporter/service/elbinventory"
	"github.com/thirukguru/aws-reporter/service/iaminventory"
	"github.com/thirukguru/aws-reporter/service/informer"
	"github.com/thirukguru/aws-reporter/service/kmsinventory"
	"github.com/thirukguru/aws-reporter/service/lambdainventory"
	"github.com/thirukguru/aws-reporter/service/messaginginventory"
	"github.com/thirukguru/aws-reporter/service/rdsinventory"
	"github.com/thirukguru/aws-reporter/service/route53inventory"
	"github.com/thirukguru/aws-reporter/service/s3inventory"
	"github.com/thirukguru/aws-reporter/service/secretsinventory"
	awssts "github.com/thirukguru/aws-reporter/service/sts"
)

// defaultSources wires every inventory service for one profile/region config.
func defaultSources(cfg aws.Config, meta informer.Metadata) []Source {
	return []Source{
		ec2inventory.NewService(cfg, meta),
		s3inventory.NewService(cfg, meta),
		iaminventory.NewService(cfg, meta),
		lambdainventory.NewService(cfg, meta),
		rdsinventory.NewService(cfg, meta),
		dynamoinventory.NewService(cfg, meta),
		route53inventory.NewService(cfg, meta),
		messaginginventory.NewService(cfg, meta),
		cloudtrailinventory.NewService(cfg, meta),
		kmsinventory.NewService(cfg, meta),
		elbinventory.NewService(cfg, meta),
		secretsinventory.NewService(cfg, meta),
		ecsinventory.NewService(cfg, meta),
		eksinventory.NewService(cfg, meta),
		ecrinventory.NewService(cfg, meta),
	}
}

// SupportedEntityTypes returns every entity type the default sources cover.
func SupportedEntityTypes() []string {
	var types []string
	for _, src := range defaultSources(aws.Config{}, informer.Metadata{}) {
		types = append(types, src.EntityTypes()...)
	}
	slices.Sort(types)
	return types
}

func resolveAccountID(ctx context.Context, cfg aws.Config) (string, error) {
	return awssts.NewService(cfg).GetAccountID(ctx)
}

func resolveEnabledRegions(ctx context.Context, cfg aws.Config) ([]string, error) {
	client := ec2.NewFromConfig(cfg)
	out, err := client.DescribeRegions(ctx, &ec2.DescribeRegionsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to discover regions: %w", err)
	}

	regions := make([]string, 0, len(out.Regions))
	for _, r := range out.Regions {
		name := strings.TrimSpace(aws.ToString(r.RegionName))
		if name == "" {
			continue
		}
		if !slices.Contains(regions, name) {
			regions = append(regions, name)
		}
	}
	if len(regions) == 0 {
		return nil, fmt.Errorf("no enabled regions discovered")
	}
	slices.Sort(regions)
	return regions, nil
}
