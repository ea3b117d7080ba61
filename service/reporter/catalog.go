package reporter

// catalog is the built-in report catalog: one report per supported entity
// type. Column order is the column order of the written report.
var catalog = []Definition{
	{
		Name:       "vpcs",
		EntityType: "vpc",
		PruneSpecs: []PruneSpec{
			{Name: "Account", Path: "Account"},
			{Name: "Region", Path: "Region"},
			{Name: "VpcId", Path: "VpcId"},
			{Name: "Name", Path: "Tags.Name"},
			{Name: "CidrBlock", Path: "CidrBlock"},
			{Name: "State", Path: "State"},
			{Name: "IsDefault", Path: "IsDefault"},
			{Name: "DnsSupport", Path: "EnableDnsSupport"},
			{Name: "DnsHostnames", Path: "EnableDnsHostnames"},
		},
	},
	{
		Name:       "subnets",
		EntityType: "subnet",
		PruneSpecs: []PruneSpec{
			{Name: "Account", Path: "Account"},
			{Name: "Region", Path: "Region"},
			{Name: "SubnetId", Path: "SubnetId"},
			{Name: "Name", Path: "Tags.Name"},
			{Name: "VpcId", Path: "VpcId"},
			{Name: "CidrBlock", Path: "CidrBlock"},
			{Name: "AvailabilityZone", Path: "AvailabilityZone"},
			{Name: "AvailableIps", Path: "AvailableIpAddressCount"},
			{Name: "PublicOnLaunch", Path: "MapPublicIpOnLaunch"},
		},
	},
	{
		Name:       "security-groups",
		EntityType: "security-group",
		PruneSpecs: []PruneSpec{
			{Name: "Account", Path: "Account"},
			{Name: "Region", Path: "Region"},
			{Name: "GroupId", Path: "GroupId"},
			{Name: "GroupName", Path: "GroupName"},
			{Name: "VpcId", Path: "VpcId"},
			{Name: "Description", Path: "Description"},
			{Name: "IngressPorts", Path: "IpPermissions.FromPort"},
			{Name: "IngressCidrs", Path: "IpPermissions.IpRanges.CidrIp"},
		},
	},
	{
		Name:       "ec2-instances",
		EntityType: "ec2-instance",
		PruneSpecs: []PruneSpec{
			{Name: "Account", Path: "Account"},
			{Name: "Region", Path: "Region"},
			{Name: "InstanceId", Path: "InstanceId"},
			{Name: "Name", Path: "Tags.Name"},
			{Name: "InstanceType", Path: "InstanceType"},
			{Name: "State", Path: "State.Name"},
			{Name: "AvailabilityZone", Path: "Placement.AvailabilityZone"},
			{Name: "VpcId", Path: "VpcId"},
			{Name: "SubnetId", Path: "SubnetId"},
			{Name: "PrivateIp", Path: "PrivateIpAddress"},
			{Name: "PublicIp", Path: "PublicIpAddress"},
			{Name: "ImageId", Path: "ImageId"},
			{Name: "LaunchTime", Path: "LaunchTime"},
		},
	},
	{
		Name:       "ebs-volumes",
		EntityType: "ebs-volume",
		PruneSpecs: []PruneSpec{
			{Name: "Account", Path: "Account"},
			{Name: "Region", Path: "Region"},
			{Name: "VolumeId", Path: "VolumeId"},
			{Name: "Name", Path: "Tags.Name"},
			{Name: "SizeGiB", Path: "Size"},
			{Name: "VolumeType", Path: "VolumeType"},
			{Name: "State", Path: "State"},
			{Name: "Encrypted", Path: "Encrypted"},
			{Name: "AvailabilityZone", Path: "AvailabilityZone"},
			{Name: "AttachedTo", Path: "Attachments.InstanceId"},
		},
	},
	{
		Name:       "s3-buckets",
		EntityType: "s3-bucket",
		PruneSpecs: []PruneSpec{
			{Name: "Account", Path: "Account"},
			{Name: "Name", Path: "Name"},
			{Name: "CreationDate", Path: "CreationDate"},
			{Name: "Location", Path: "Location"},
			{Name: "Versioning", Path: "Versioning"},
			{Name: "Encryption", Path: "Encryption.Rules.ApplyServerSideEncryptionByDefault.SSEAlgorithm"},
		},
	},
	{
		Name:       "iam-users",
		EntityType: "iam-user",
		PruneSpecs: []PruneSpec{
			{Name: "Account", Path: "Account"},
			{Name: "UserName", Path: "UserName"},
			{Name: "UserId", Path: "UserId"},
			{Name: "Arn", Path: "Arn"},
			{Name: "CreateDate", Path: "CreateDate"},
			{Name: "PasswordLastUsed", Path: "PasswordLastUsed"},
			{Name: "AttachedPolicies", Path: "AttachedPolicies"},
			{Name: "AccessKeyIds", Path: "AccessKeys.AccessKeyId"},
			{Name: "AccessKeyStatus", Path: "AccessKeys.Status"},
		},
	},
	{
		Name:       "iam-roles",
		EntityType: "iam-role",
		PruneSpecs: []PruneSpec{
			{Name: "Account", Path: "Account"},
			{Name: "RoleName", Path: "RoleName"},
			{Name: "RoleId", Path: "RoleId"},
			{Name: "Arn", Path: "Arn"},
			{Name: "CreateDate", Path: "CreateDate"},
			{Name: "Description", Path: "Description"},
			{Name: "MaxSessionDuration", Path: "MaxSessionDuration"},
			{Name: "AttachedPolicies", Path: "AttachedPolicies"},
		},
	},
	{
		Name:       "lambda-functions",
		EntityType: "lambda-function",
		PruneSpecs: []PruneSpec{
			{Name: "Account", Path: "Account"},
			{Name: "Region", Path: "Region"},
			{Name: "FunctionName", Path: "FunctionName"},
			{Name: "Runtime", Path: "Runtime"},
			{Name: "Handler", Path: "Handler"},
			{Name: "MemorySize", Path: "MemorySize"},
			{Name: "Timeout", Path: "Timeout"},
			{Name: "CodeSize", Path: "CodeSize"},
			{Name: "LastModified", Path: "LastModified"},
		},
	},
	{
		Name:       "rds-instances",
		EntityType: "rds-instance",
		PruneSpecs: []PruneSpec{
			{Name: "Account", Path: "Account"},
			{Name: "Region", Path: "Region"},
			{Name: "DBInstanceIdentifier", Path: "DBInstanceIdentifier"},
			{Name: "Engine", Path: "Engine"},
			{Name: "EngineVersion", Path: "EngineVersion"},
			{Name: "InstanceClass", Path: "DBInstanceClass"},
			{Name: "Status", Path: "DBInstanceStatus"},
			{Name: "AllocatedStorage", Path: "AllocatedStorage"},
			{Name: "MultiAZ", Path: "MultiAZ"},
			{Name: "PubliclyAccessible", Path: "PubliclyAccessible"},
			{Name: "Endpoint", Path: "Endpoint.Address"},
		},
	},
	{
		Name:       "dynamodb-tables",
		EntityType: "dynamodb-table",
		PruneSpecs: []PruneSpec{
			{Name: "Account", Path: "Account"},
			{Name: "Region", Path: "Region"},
			{Name: "TableName", Path: "TableName"},
			{Name: "Status", Path: "TableStatus"},
			{Name: "ItemCount", Path: "ItemCount"},
			{Name: "SizeBytes", Path: "TableSizeBytes"},
			{Name: "BillingMode", Path: "BillingModeSummary.BillingMode"},
			{Name: "KeyAttributes", Path: "KeySchema.AttributeName"},
			{Name: "CreationDateTime", Path: "CreationDateTime"},
		},
	},
	{
		Name:       "hosted-zones",
		EntityType: "hosted-zone",
		PruneSpecs: []PruneSpec{
			{Name: "Account", Path: "Account"},
			{Name: "ZoneId", Path: "Id"},
			{Name: "ZoneName", Path: "Name"},
			{Name: "PrivateZone", Path: "Config.PrivateZone"},
			{Name: "RecordCount", Path: "ResourceRecordSetCount"},
			{Name: "Comment", Path: "Config.Comment"},
		},
	},
	{
		Name:       "sns-topics",
		EntityType: "sns-topic",
		PruneSpecs: []PruneSpec{
			{Name: "Account", Path: "Account"},
			{Name: "Region", Path: "Region"},
			{Name: "TopicArn", Path: "TopicArn"},
			{Name: "DisplayName", Path: "Attributes.DisplayName"},
			{Name: "SubscriptionsConfirmed", Path: "Attributes.SubscriptionsConfirmed"},
			{Name: "SubscriptionsPending", Path: "Attributes.SubscriptionsPending"},
		},
	},
	{
		Name:       "sqs-queues",
		EntityType: "sqs-queue",
		PruneSpecs: []PruneSpec{
			{Name: "Account", Path: "Account"},
			{Name: "Region", Path: "Region"},
			{Name: "QueueUrl", Path: "QueueUrl"},
			{Name: "QueueArn", Path: "Attributes.QueueArn"},
			{Name: "Messages", Path: "Attributes.ApproximateNumberOfMessages"},
			{Name: "VisibilityTimeout", Path: "Attributes.VisibilityTimeout"},
			{Name: "CreatedTimestamp", Path: "Attributes.CreatedTimestamp"},
		},
	},
	{
		Name:       "cloudtrail-trails",
		EntityType: "cloudtrail-trail",
		PruneSpecs: []PruneSpec{
			{Name: "Account", Path: "Account"},
			{Name: "Region", Path: "Region"},
			{Name: "Name", Path: "Name"},
			{Name: "HomeRegion", Path: "HomeRegion"},
			{Name: "S3Bucket", Path: "S3BucketName"},
			{Name: "MultiRegion", Path: "IsMultiRegionTrail"},
			{Name: "LogFileValidation", Path: "LogFileValidationEnabled"},
			{Name: "IsLogging", Path: "Status.IsLogging"},
			{Name: "LatestDelivery", Path: "Status.LatestDeliveryTime"},
		},
	},
	{
		Name:       "kms-keys",
		EntityType: "kms-key",
		PruneSpecs: []PruneSpec{
			{Name: "Account", Path: "Account"},
			{Name: "Region", Path: "Region"},
			{Name: "KeyId", Path: "KeyId"},
			{Name: "Description", Path: "Description"},
			{Name: "Enabled", Path: "Enabled"},
			{Name: "KeyState", Path: "KeyState"},
			{Name: "KeyUsage", Path: "KeyUsage"},
			{Name: "CreationDate", Path: "CreationDate"},
		},
	},
	{
		Name:       "load-balancers",
		EntityType: "load-balancer",
		PruneSpecs: []PruneSpec{
			{Name: "Account", Path: "Account"},
			{Name: "Region", Path: "Region"},
			{Name: "Name", Path: "LoadBalancerName"},
			{Name: "DNSName", Path: "DNSName"},
			{Name: "Type", Path: "Type"},
			{Name: "Scheme", Path: "Scheme"},
			{Name: "State", Path: "State.Code"},
			{Name: "VpcId", Path: "VpcId"},
			{Name: "Zones", Path: "AvailabilityZones.ZoneName"},
			{Name: "ListenerPorts", Path: "Listeners.Port"},
		},
	},
	{
		Name:       "secrets",
		EntityType: "secret",
		PruneSpecs: []PruneSpec{
			{Name: "Account", Path: "Account"},
			{Name: "Region", Path: "Region"},
			{Name: "Name", Path: "Name"},
			{Name: "Description", Path: "Description"},
			{Name: "RotationEnabled", Path: "RotationEnabled"},
			{Name: "LastChangedDate", Path: "LastChangedDate"},
			{Name: "LastAccessedDate", Path: "LastAccessedDate"},
		},
	},
	{
		Name:       "ecs-clusters",
		EntityType: "ecs-cluster",
		PruneSpecs: []PruneSpec{
			{Name: "Account", Path: "Account"},
			{Name: "Region", Path: "Region"},
			{Name: "ClusterName", Path: "ClusterName"},
			{Name: "Status", Path: "Status"},
			{Name: "RunningTasks", Path: "RunningTasksCount"},
			{Name: "ActiveServices", Path: "ActiveServicesCount"},
			{Name: "ContainerInstances", Path: "RegisteredContainerInstancesCount"},
			{Name: "ServiceArns", Path: "ServiceArns"},
		},
	},
	{
		Name:       "eks-clusters",
		EntityType: "eks-cluster",
		PruneSpecs: []PruneSpec{
			{Name: "Account", Path: "Account"},
			{Name: "Region", Path: "Region"},
			{Name: "Name", Path: "Name"},
			{Name: "Version", Path: "Version"},
			{Name: "Status", Path: "Status"},
			{Name: "Endpoint", Path: "Endpoint"},
			{Name: "PlatformVersion", Path: "PlatformVersion"},
			{Name: "CreatedAt", Path: "CreatedAt"},
		},
	},
	{
		Name:       "ecr-repositories",
		EntityType: "ecr-repository",
		PruneSpecs: []PruneSpec{
			{Name: "Account", Path: "Account"},
			{Name: "Region", Path: "Region"},
			{Name: "RepositoryName", Path: "RepositoryName"},
			{Name: "RepositoryUri", Path: "RepositoryUri"},
			{Name: "TagMutability", Path: "ImageTagMutability"},
			{Name: "Encryption", Path: "EncryptionConfiguration.EncryptionType"},
			{Name: "CreatedAt", Path: "CreatedAt"},
		},
	},
}
