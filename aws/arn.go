package aws

import (
	"strings"

	"nimbus-ctl/apperr"
)

// ARN fields by colon-separated position: arn:partition:service:region:account:resource.

// ServiceTypeFromARN extracts the owning service from an ARN-like
// identifier.
func ServiceTypeFromARN(arn string) (ServiceType, error) {
	parts := strings.Split(arn, ":")
	if len(parts) < 3 {
		return 0, apperr.New(apperr.CodeParse, "invalid ARN format: %s", arn)
	}
	switch parts[2] {
	case "ec2":
		return EC2, nil
	case "s3":
		return S3, nil
	case "rds":
		return RDS, nil
	case "iam":
		return IAM, nil
	case "secretsmanager":
		return Secrets, nil
	case "eks":
		return EKS, nil
	default:
		return 0, apperr.New(apperr.CodeParse, "unknown service type in ARN: %s", arn)
	}
}

// ResourceIDFromARN returns the trailing resource identifier, dropping
// any path prefix (e.g. "instance/i-123" yields "i-123").
func ResourceIDFromARN(arn string) (string, error) {
	parts := strings.Split(arn, ":")
	if len(parts) < 6 {
		return "", apperr.New(apperr.CodeParse, "invalid ARN format: %s", arn)
	}
	resource := parts[5]
	if idx := strings.LastIndex(resource, "/"); idx >= 0 {
		return resource[idx+1:], nil
	}
	return resource, nil
}

// RegionFromARN returns the region field. Global services leave it
// empty, which is returned as-is.
func RegionFromARN(arn string) (string, error) {
	parts := strings.Split(arn, ":")
	if len(parts) < 4 {
		return "", apperr.New(apperr.CodeParse, "invalid ARN format: %s", arn)
	}
	return parts[3], nil
}
