package ec2inventory

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/thirukguru/aws-reporter/service/informer"
)

func (s *service) EntityTypes() []string {
	return []string{EntityVpc, EntitySubnet, EntitySecurityGroup, EntityInstance, EntityVolume}
}

func (s *service) Discover(ctx context.Context, entityType string) ([]*informer.Informer, error) {
	switch entityType {
	case EntityVpc:
		return s.discoverVpcs(ctx)
	case EntitySubnet:
		return s.discoverSubnets(ctx)
	case EntitySecurityGroup:
		return s.discoverSecurityGroups(ctx)
	case EntityInstance:
		return s.discoverInstances(ctx)
	case EntityVolume:
		return s.discoverVolumes(ctx)
	default:
		return nil, fmt.Errorf("unsupported entity type: %s", entityType)
	}
}

func (s *service) discoverVpcs(ctx context.Context) ([]*informer.Informer, error) {
	var informers []*informer.Informer

	paginator := ec2.NewDescribeVpcsPaginator(s.client, &ec2.DescribeVpcsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe VPCs: %w", err)
		}
		for _, vpc := range page.Vpcs {
			vpcID := aws.ToString(vpc.VpcId)
			inf, err := informer.New(EntityVpc, vpc, s.meta, s.expandVpc(vpcID))
			if err != nil {
				return nil, err
			}
			informers = append(informers, inf)
		}
	}

	return informers, nil
}

// expandVpc attaches the DNS attributes DescribeVpcs does not return.
func (s *service) expandVpc(vpcID string) informer.ExpandFunc {
	return func(ctx context.Context, inf *informer.Informer) error {
		support, err := s.client.DescribeVpcAttribute(ctx, &ec2.DescribeVpcAttributeInput{
			VpcId:     aws.String(vpcID),
			Attribute: types.VpcAttributeNameEnableDnsSupport,
		})
		if err != nil {
			return fmt.Errorf("failed to describe vpc attribute: %w", err)
		}
		hostnames, err := s.client.DescribeVpcAttribute(ctx, &ec2.DescribeVpcAttributeInput{
			VpcId:     aws.String(vpcID),
			Attribute: types.VpcAttributeNameEnableDnsHostnames,
		})
		if err != nil {
			return fmt.Errorf("failed to describe vpc attribute: %w", err)
		}

		if support.EnableDnsSupport != nil {
			inf.Set("EnableDnsSupport", aws.ToBool(support.EnableDnsSupport.Value))
		}
		if hostnames.EnableDnsHostnames != nil {
			inf.Set("EnableDnsHostnames", aws.ToBool(hostnames.EnableDnsHostnames.Value))
		}
		return nil
	}
}

func (s *service) discoverSubnets(ctx context.Context) ([]*informer.Informer, error) {
	var informers []*informer.Informer

	paginator := ec2.NewDescribeSubnetsPaginator(s.client, &ec2.DescribeSubnetsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe subnets: %w", err)
		}
		for _, subnet := range page.Subnets {
			inf, err := informer.New(EntitySubnet, subnet, s.meta, nil)
			if err != nil {
				return nil, err
			}
			informers = append(informers, inf)
		}
	}

	return informers, nil
}

func (s *service) discoverSecurityGroups(ctx context.Context) ([]*informer.Informer, error) {
	var informers []*informer.Informer

	paginator := ec2.NewDescribeSecurityGroupsPaginator(s.client, &ec2.DescribeSecurityGroupsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe security groups: %w", err)
		}
		for _, sg := range page.SecurityGroups {
			inf, err := informer.New(EntitySecurityGroup, sg, s.meta, nil)
			if err != nil {
				return nil, err
			}
			informers = append(informers, inf)
		}
	}

	return informers, nil
}

func (s *service) discoverInstances(ctx context.Context) ([]*informer.Informer, error) {
	var informers []*informer.Informer

	paginator := ec2.NewDescribeInstancesPaginator(s.client, &ec2.DescribeInstancesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe instances: %w", err)
		}
		for _, reservation := range page.Reservations {
			for _, instance := range reservation.Instances {
				inf, err := informer.New(EntityInstance, instance, s.meta, nil)
				if err != nil {
					return nil, err
				}
				informers = append(informers, inf)
			}
		}
	}

	return informers, nil
}

func (s *service) discoverVolumes(ctx context.Context) ([]*informer.Informer, error) {
	var informers []*informer.Informer

	paginator := ec2.NewDescribeVolumesPaginator(s.client, &ec2.DescribeVolumesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe volumes: %w", err)
		}
		for _, volume := range page.Volumes {
			inf, err := informer.New(EntityVolume, volume, s.meta, nil)
			if err != nil {
				return nil, err
			}
			informers = append(informers, inf)
		}
	}

	return informers, nil
}
