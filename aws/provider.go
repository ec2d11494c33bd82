package aws

import (
	"context"
	"fmt"
	"time"

	"nimbus-ctl/log"
)

// ResourceProvider stands in for the cloud SDK layer. Switching
// profile or region reinitializes clients; service operations act on
// the currently selected profile/region pair.
type ResourceProvider interface {
	SwitchProfile(ctx context.Context, name string) error
	SwitchRegion(ctx context.Context, name string) error
	ListResources(ctx context.Context, service ServiceType) ([]Resource, error)
	ExecuteAction(ctx context.Context, service ServiceType, action, resourceID string) error
}

// StubProvider implements ResourceProvider without any real cloud
// calls: every operation succeeds and logs. Listing returns a fixed
// sample set stamped with the current region.
type StubProvider struct {
	profile string
	region  string
}

// NewStubProvider creates a provider pointed at the given profile and
// region.
func NewStubProvider(profile, region string) *StubProvider {
	return &StubProvider{profile: profile, region: region}
}

func (p *StubProvider) SwitchProfile(_ context.Context, name string) error {
	log.InfoLog.Printf("provider: switching profile %q -> %q", p.profile, name)
	p.profile = name
	return nil
}

func (p *StubProvider) SwitchRegion(_ context.Context, name string) error {
	log.InfoLog.Printf("provider: switching region %q -> %q", p.region, name)
	p.region = name
	return nil
}

func (p *StubProvider) ExecuteAction(_ context.Context, service ServiceType, action, resourceID string) error {
	log.InfoLog.Printf("provider: %s %s resource=%q profile=%q region=%q",
		service.DisplayName(), action, resourceID, p.profile, p.region)
	return nil
}

// ListResources returns sample entries for the service. IAM entries
// are global and keep their region as-is.
func (p *StubProvider) ListResources(_ context.Context, service ServiceType) ([]Resource, error) {
	log.InfoLog.Printf("provider: listing %s resources profile=%q region=%q",
		service.DisplayName(), p.profile, p.region)

	resources := sampleResources(service)
	for i := range resources {
		if resources[i].Region != "global" {
			resources[i].Region = p.region
		}
	}
	return resources, nil
}

func sampleResources(service ServiceType) []Resource {
	now := time.Now()
	account := "123456789012"
	switch service {
	case EC2:
		return []Resource{
			{
				ID: "i-1234567890abcdef0", Name: "web-server-prod", Service: EC2,
				Region: "us-east-1", State: "running",
				ARN:       fmt.Sprintf("arn:aws:ec2:us-east-1:%s:instance/i-1234567890abcdef0", account),
				Tags:      map[string]string{"Environment": "production", "Role": "web"},
				CreatedAt: now.Add(-90 * 24 * time.Hour),
			},
			{
				ID: "i-0987654321fedcba9", Name: "api-server-prod", Service: EC2,
				Region: "us-east-1", State: "running",
				ARN:       fmt.Sprintf("arn:aws:ec2:us-east-1:%s:instance/i-0987654321fedcba9", account),
				Tags:      map[string]string{"Environment": "production", "Role": "api"},
				CreatedAt: now.Add(-60 * 24 * time.Hour),
			},
			{
				ID: "i-abcdef1234567890", Name: "background-worker", Service: EC2,
				Region: "us-east-1", State: "stopped",
				ARN:       fmt.Sprintf("arn:aws:ec2:us-east-1:%s:instance/i-abcdef1234567890", account),
				Tags:      map[string]string{"Environment": "staging", "Role": "worker"},
				CreatedAt: now.Add(-30 * 24 * time.Hour),
			},
		}
	case S3:
		return []Resource{
			{
				ID: "assets-prod-bucket", Name: "assets-prod-bucket", Service: S3,
				Region: "us-east-1", State: "active",
				ARN:       "arn:aws:s3:::assets-prod-bucket",
				Tags:      map[string]string{"Environment": "production"},
				CreatedAt: now.Add(-200 * 24 * time.Hour),
			},
			{
				ID: "logs-bucket", Name: "logs-bucket", Service: S3,
				Region: "us-east-1", State: "active",
				ARN:       "arn:aws:s3:::logs-bucket",
				Tags:      map[string]string{"Environment": "production", "Retention": "90d"},
				CreatedAt: now.Add(-400 * 24 * time.Hour),
			},
		}
	case RDS:
		return []Resource{
			{
				ID: "db-prod-mysql", Name: "production-database", Service: RDS,
				Region: "us-east-1", State: "available",
				ARN:       fmt.Sprintf("arn:aws:rds:us-east-1:%s:db:db-prod-mysql", account),
				Tags:      map[string]string{"Environment": "production", "Engine": "mysql"},
				CreatedAt: now.Add(-300 * 24 * time.Hour),
			},
		}
	case IAM:
		return []Resource{
			{
				ID: "user-1", Name: "admin-user", Service: IAM,
				Region: "global", State: "active",
				ARN:       fmt.Sprintf("arn:aws:iam::%s:user/admin-user", account),
				Tags:      map[string]string{"Team": "platform"},
				CreatedAt: now.Add(-500 * 24 * time.Hour),
			},
		}
	case Secrets:
		return []Resource{
			{
				ID: "secret-1", Name: "db-password", Service: Secrets,
				Region: "us-east-1", State: "active",
				ARN:       fmt.Sprintf("arn:aws:secretsmanager:us-east-1:%s:secret:db-password", account),
				Tags:      map[string]string{"Environment": "production"},
				CreatedAt: now.Add(-120 * 24 * time.Hour),
			},
		}
	case EKS:
		return []Resource{
			{
				ID: "cluster-1", Name: "production-cluster", Service: EKS,
				Region: "us-east-1", State: "active",
				ARN:       fmt.Sprintf("arn:aws:eks:us-east-1:%s:cluster/production-cluster", account),
				Tags:      map[string]string{"Environment": "production", "Version": "1.29"},
				CreatedAt: now.Add(-150 * 24 * time.Hour),
			},
		}
	default:
		return nil
	}
}
