package iaminventory

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/thirukguru/aws-reporter/service/informer"
)

func (s *service) EntityTypes() []string {
	return []string{EntityUser, EntityRole}
}

func (s *service) Discover(ctx context.Context, entityType string) ([]*informer.Informer, error) {
	switch entityType {
	case EntityUser:
		return s.discoverUsers(ctx)
	case EntityRole:
		return s.discoverRoles(ctx)
	default:
		return nil, fmt.Errorf("unsupported entity type: %s", entityType)
	}
}

func (s *service) discoverUsers(ctx context.Context) ([]*informer.Informer, error) {
	var informers []*informer.Informer

	paginator := iam.NewListUsersPaginator(s.client, &iam.ListUsersInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list users: %w", err)
		}
		for _, user := range page.Users {
			userName := aws.ToString(user.UserName)
			inf, err := informer.New(EntityUser, user, s.meta, s.expandUser(userName))
			if err != nil {
				return nil, err
			}
			informers = append(informers, inf)
		}
	}

	return informers, nil
}

func (s *service) expandUser(userName string) informer.ExpandFunc {
	return func(ctx context.Context, inf *informer.Informer) error {
		policies, err := s.client.ListAttachedUserPolicies(ctx, &iam.ListAttachedUserPoliciesInput{
			UserName: aws.String(userName),
		})
		if err != nil {
			return fmt.Errorf("failed to list attached policies for user %s: %w", userName, err)
		}
		names := make([]string, 0, len(policies.AttachedPolicies))
		for _, p := range policies.AttachedPolicies {
			names = append(names, aws.ToString(p.PolicyName))
		}
		inf.Set("AttachedPolicies", names)

		keys, err := s.client.ListAccessKeys(ctx, &iam.ListAccessKeysInput{UserName: aws.String(userName)})
		if err != nil {
			return fmt.Errorf("failed to list access keys for user %s: %w", userName, err)
		}
		keyDocs := make([]any, 0, len(keys.AccessKeyMetadata))
		for _, key := range keys.AccessKeyMetadata {
			doc, err := informer.ToDocument(key)
			if err != nil {
				return err
			}
			keyDocs = append(keyDocs, doc)
		}
		inf.Set("AccessKeys", keyDocs)
		return nil
	}
}

func (s *service) discoverRoles(ctx context.Context) ([]*informer.Informer, error) {
	var informers []*informer.Informer

	paginator := iam.NewListRolesPaginator(s.client, &iam.ListRolesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list roles: %w", err)
		}
		for _, role := range page.Roles {
			roleName := aws.ToString(role.RoleName)
			inf, err := informer.New(EntityRole, role, s.meta, s.expandRole(roleName))
			if err != nil {
				return nil, err
			}
			informers = append(informers, inf)
		}
	}

	return informers, nil
}

func (s *service) expandRole(roleName string) informer.ExpandFunc {
	return func(ctx context.Context, inf *informer.Informer) error {
		policies, err := s.client.ListAttachedRolePolicies(ctx, &iam.ListAttachedRolePoliciesInput{
			RoleName: aws.String(roleName),
		})
		if err != nil {
			return fmt.Errorf("failed to list attached policies for role %s: %w", roleName, err)
		}
		names := make([]string, 0, len(policies.AttachedPolicies))
		for _, p := range policies.AttachedPolicies {
			names = append(names, aws.ToString(p.PolicyName))
		}
		inf.Set("AttachedPolicies", names)
		return nil
	}
}
