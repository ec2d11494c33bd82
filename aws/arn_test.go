package aws

import (
	"testing"

	"nimbus-ctl/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceTypeFromARN(t *testing.T) {
	tests := []struct {
		name string
		arn  string
		want ServiceType
	}{
		{"ec2 instance", "arn:aws:ec2:us-east-1:123456789012:instance/i-123", EC2},
		{"s3 bucket", "arn:aws:s3:::assets-prod-bucket", S3},
		{"rds database", "arn:aws:rds:us-east-1:123456789012:db:db-prod-mysql", RDS},
		{"iam user", "arn:aws:iam::123456789012:user/admin-user", IAM},
		{"secrets manager", "arn:aws:secretsmanager:us-east-1:123456789012:secret:db-password", Secrets},
		{"eks cluster", "arn:aws:eks:us-east-1:123456789012:cluster/prod", EKS},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ServiceTypeFromARN(tt.arn)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestServiceTypeFromARNErrors(t *testing.T) {
	tests := []struct {
		name string
		arn  string
	}{
		{"empty", ""},
		{"too few fields", "arn:aws"},
		{"unknown service", "arn:aws:lambda:us-east-1:123456789012:function:fn"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ServiceTypeFromARN(tt.arn)
			require.Error(t, err)
			assert.Equal(t, apperr.CodeParse, apperr.CodeOf(err))
		})
	}
}

func TestResourceIDFromARN(t *testing.T) {
	tests := []struct {
		name string
		arn  string
		want string
	}{
		{"path prefix dropped", "arn:aws:ec2:us-east-1:123456789012:instance/i-123", "i-123"},
		{"no path", "arn:aws:s3:::logs-bucket", "logs-bucket"},
		{"nested path keeps last segment", "arn:aws:iam::123456789012:role/service/app-role", "app-role"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResourceIDFromARN(tt.arn)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ResourceIDFromARN("arn:aws:ec2:us-east-1")
	require.Error(t, err)
	assert.Equal(t, apperr.CodeParse, apperr.CodeOf(err))
}

func TestRegionFromARN(t *testing.T) {
	region, err := RegionFromARN("arn:aws:ec2:eu-west-1:123456789012:instance/i-123")
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", region)

	// Global services carry an empty region field.
	region, err = RegionFromARN("arn:aws:iam::123456789012:user/admin-user")
	require.NoError(t, err)
	assert.Equal(t, "", region)

	_, err = RegionFromARN("arn:aws:s3")
	require.Error(t, err)
}
