// Package aws holds the domain model the dashboard operates on:
// service types, profiles, regions, and generic resources. No real
// cloud SDK is wired in; the provider in this package is a stub.
package aws

import (
	"fmt"
	"time"
)

// ServiceType identifies one of the six supported resource domains.
type ServiceType int

const (
	EC2 ServiceType = iota
	S3
	RDS
	IAM
	Secrets
	EKS
)

// AllServices returns every service in canonical display order.
func AllServices() []ServiceType {
	return []ServiceType{EC2, S3, RDS, IAM, Secrets, EKS}
}

// DisplayName returns the human-facing service name.
func (s ServiceType) DisplayName() string {
	switch s {
	case EC2:
		return "EC2"
	case S3:
		return "S3"
	case RDS:
		return "RDS"
	case IAM:
		return "IAM"
	case Secrets:
		return "Secrets Manager"
	case EKS:
		return "EKS"
	default:
		return "Unknown"
	}
}

// Slug returns the lowercase identifier used in command IDs and
// navigation keys.
func (s ServiceType) Slug() string {
	switch s {
	case EC2:
		return "ec2"
	case S3:
		return "s3"
	case RDS:
		return "rds"
	case IAM:
		return "iam"
	case Secrets:
		return "secrets"
	case EKS:
		return "eks"
	default:
		return "unknown"
	}
}

func (s ServiceType) String() string {
	return s.Slug()
}

// ServiceTypeFromSlug resolves a slug back to its service.
func ServiceTypeFromSlug(slug string) (ServiceType, bool) {
	for _, s := range AllServices() {
		if s.Slug() == slug {
			return s, true
		}
	}
	return 0, false
}

// MarshalText renders the slug so persisted JSON stays readable and
// stable if constants are reordered.
func (s ServiceType) MarshalText() ([]byte, error) {
	return []byte(s.Slug()), nil
}

// UnmarshalText parses a slug.
func (s *ServiceType) UnmarshalText(text []byte) error {
	parsed, ok := ServiceTypeFromSlug(string(text))
	if !ok {
		return fmt.Errorf("unknown service %q", string(text))
	}
	*s = parsed
	return nil
}

// Icon returns the glyph shown next to the service name.
func (s ServiceType) Icon() string {
	switch s {
	case EC2:
		return "💻"
	case S3:
		return "🪣"
	case RDS:
		return "🗄️"
	case IAM:
		return "👤"
	case Secrets:
		return "🔐"
	case EKS:
		return "⚙️"
	default:
		return "❓"
	}
}

// Keywords returns the short search terms used by quick navigation.
func (s ServiceType) Keywords() []string {
	switch s {
	case EC2:
		return []string{"ec2", "compute", "instances", "virtual"}
	case S3:
		return []string{"s3", "storage", "bucket", "object"}
	case RDS:
		return []string{"rds", "database", "mysql", "postgres"}
	case IAM:
		return []string{"iam", "identity", "access", "users", "roles"}
	case Secrets:
		return []string{"secrets", "secret", "password", "keys"}
	case EKS:
		return []string{"eks", "kubernetes", "k8s", "cluster"}
	default:
		return nil
	}
}

// Profile is one set of credentials/settings the provider can assume.
// Only Name is guaranteed non-empty; everything else is optional.
type Profile struct {
	Name            string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	RoleARN         string
	SourceProfile   string
}

// Region pairs an API region name with its display name.
type Region struct {
	Name        string
	DisplayName string
}

// Resource is the generic shape every service's entries are presented
// as. Service-specific detail lives in Tags and State.
type Resource struct {
	ID           string
	Name         string
	Service      ServiceType
	Region       string
	ARN          string
	State        string
	Tags         map[string]string
	CreatedAt    time.Time
	LastModified time.Time
}
