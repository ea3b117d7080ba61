package ec2inventory

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirukguru/aws-reporter/service/informer"
)

type mockClient struct {
	vpcAttributeCalls int
}

func (m *mockClient) DescribeVpcs(ctx context.Context, params *ec2.DescribeVpcsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeVpcsOutput, error) {
	return &ec2.DescribeVpcsOutput{
		Vpcs: []types.Vpc{
			{
				VpcId:     aws.String("vpc-0abc"),
				CidrBlock: aws.String("10.0.0.0/16"),
				IsDefault: aws.Bool(false),
				Tags:      []types.Tag{{Key: aws.String("Name"), Value: aws.String("core")}},
			},
		},
	}, nil
}

func (m *mockClient) DescribeVpcAttribute(ctx context.Context, params *ec2.DescribeVpcAttributeInput, optFns ...func(*ec2.Options)) (*ec2.DescribeVpcAttributeOutput, error) {
	m.vpcAttributeCalls++
	if params.Attribute == types.VpcAttributeNameEnableDnsSupport {
		return &ec2.DescribeVpcAttributeOutput{
			EnableDnsSupport: &types.AttributeBooleanValue{Value: aws.Bool(true)},
		}, nil
	}
	return &ec2.DescribeVpcAttributeOutput{
		EnableDnsHostnames: &types.AttributeBooleanValue{Value: aws.Bool(false)},
	}, nil
}

func (m *mockClient) DescribeSubnets(ctx context.Context, params *ec2.DescribeSubnetsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSubnetsOutput, error) {
	return &ec2.DescribeSubnetsOutput{
		Subnets: []types.Subnet{
			{SubnetId: aws.String("subnet-1"), VpcId: aws.String("vpc-0abc"), CidrBlock: aws.String("10.0.1.0/24")},
			{SubnetId: aws.String("subnet-2"), VpcId: aws.String("vpc-0abc"), CidrBlock: aws.String("10.0.2.0/24")},
		},
	}, nil
}

func (m *mockClient) DescribeSecurityGroups(ctx context.Context, params *ec2.DescribeSecurityGroupsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSecurityGroupsOutput, error) {
	return &ec2.DescribeSecurityGroupsOutput{
		SecurityGroups: []types.SecurityGroup{
			{
				GroupId:   aws.String("sg-1"),
				GroupName: aws.String("web"),
				IpPermissions: []types.IpPermission{
					{
						FromPort: aws.Int32(443),
						IpRanges: []types.IpRange{{CidrIp: aws.String("0.0.0.0/0")}},
					},
				},
			},
		},
	}, nil
}

func (m *mockClient) DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error) {
	return &ec2.DescribeInstancesOutput{
		Reservations: []types.Reservation{
			{Instances: []types.Instance{{InstanceId: aws.String("i-1")}, {InstanceId: aws.String("i-2")}}},
		},
	}, nil
}

func (m *mockClient) DescribeVolumes(ctx context.Context, params *ec2.DescribeVolumesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeVolumesOutput, error) {
	return &ec2.DescribeVolumesOutput{
		Volumes: []types.Volume{{VolumeId: aws.String("vol-1"), Size: aws.Int32(100)}},
	}, nil
}

func testMeta() informer.Metadata {
	return informer.Metadata{Profile: "dev", Region: "us-east-1", Account: "111122223333"}
}

func TestDiscoverVpcs(t *testing.T) {
	client := &mockClient{}
	svc := NewServiceWithClient(client, testMeta())

	infs, err := svc.Discover(context.Background(), EntityVpc)
	require.NoError(t, err)
	require.Len(t, infs, 1)

	data := infs[0].Data()
	assert.Equal(t, "vpc-0abc", data["VpcId"])
	assert.Equal(t, "us-east-1", data["Region"])

	name, ok := infs[0].Value("Tags.Name")
	require.True(t, ok)
	assert.Equal(t, "core", name)
}

func TestExpandVpcAttachesDnsAttributes(t *testing.T) {
	client := &mockClient{}
	svc := NewServiceWithClient(client, testMeta())

	infs, err := svc.Discover(context.Background(), EntityVpc)
	require.NoError(t, err)
	require.Len(t, infs, 1)

	require.NoError(t, infs[0].Expand(context.Background()))
	assert.Equal(t, 2, client.vpcAttributeCalls)

	data := infs[0].Data()
	assert.Equal(t, true, data["EnableDnsSupport"])
	assert.Equal(t, false, data["EnableDnsHostnames"])
}

func TestDiscoverSubnets(t *testing.T) {
	svc := NewServiceWithClient(&mockClient{}, testMeta())

	infs, err := svc.Discover(context.Background(), EntitySubnet)
	require.NoError(t, err)
	assert.Len(t, infs, 2)
}

func TestDiscoverSecurityGroupPaths(t *testing.T) {
	svc := NewServiceWithClient(&mockClient{}, testMeta())

	infs, err := svc.Discover(context.Background(), EntitySecurityGroup)
	require.NoError(t, err)
	require.Len(t, infs, 1)

	cidrs, ok := infs[0].Value("IpPermissions.IpRanges.CidrIp")
	require.True(t, ok)
	assert.Equal(t, []any{"0.0.0.0/0"}, cidrs)
}

func TestDiscoverInstancesFlattensReservations(t *testing.T) {
	svc := NewServiceWithClient(&mockClient{}, testMeta())

	infs, err := svc.Discover(context.Background(), EntityInstance)
	require.NoError(t, err)
	assert.Len(t, infs, 2)
}

func TestDiscoverUnsupportedEntityType(t *testing.T) {
	svc := NewServiceWithClient(&mockClient{}, testMeta())

	_, err := svc.Discover(context.Background(), "nat-gateway")
	assert.ErrorContains(t, err, "unsupported entity type")
}
