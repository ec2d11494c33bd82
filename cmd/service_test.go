package cmd

import (
	"testing"

	"nimbus-ctl/aws"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForServiceReturnsCommandsInPaletteOrder(t *testing.T) {
	testCases := []struct {
		name     string
		service  aws.ServiceType
		expected []ServiceCommand
	}{
		{
			name:    "EC2 commands",
			service: aws.EC2,
			expected: []ServiceCommand{
				ListInstances, CreateInstance, StartInstance, StopInstance,
				RebootInstance, TerminateInstance, DescribeInstance,
			},
		},
		{
			name:    "S3 commands",
			service: aws.S3,
			expected: []ServiceCommand{
				ListBuckets, CreateBucket, DeleteBucket, GetBucketInfo,
				ListObjects, UploadObject, DownloadObject,
			},
		},
		{
			name:    "RDS commands",
			service: aws.RDS,
			expected: []ServiceCommand{
				ListDatabases, StartDatabase, StopDatabase, RebootDatabase,
				DescribeDatabase, CreateSnapshot, RestoreSnapshot,
			},
		},
		{
			name:    "IAM commands",
			service: aws.IAM,
			expected: []ServiceCommand{
				ListUsers, ListRoles, CreateUser, DeleteUser,
				CreateRole, DeleteRole, AttachPolicy, DetachPolicy,
			},
		},
		{
			name:    "Secrets Manager commands",
			service: aws.Secrets,
			expected: []ServiceCommand{
				ListSecrets, CreateSecret, UpdateSecret, DeleteSecret,
				DescribeSecret, GetSecretValue,
			},
		},
		{
			name:    "EKS commands",
			service: aws.EKS,
			expected: []ServiceCommand{
				ListClusters, CreateCluster, DeleteCluster, DescribeCluster,
				UpdateKubeconfig, ListNodeGroups,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ForService(tc.service))
		})
	}
}

func TestEveryServiceCommandBelongsToExactlyOneService(t *testing.T) {
	total := 0
	for _, service := range aws.AllServices() {
		for _, sc := range ForService(service) {
			assert.Equal(t, service, sc.Service())
			total++
		}
	}
	assert.Equal(t, int(serviceCommandCount), total, "every command must appear in exactly one service's list")
}

func TestRequiresResource(t *testing.T) {
	requiring := map[ServiceCommand]bool{
		StartInstance: true, StopInstance: true, RebootInstance: true,
		TerminateInstance: true, DescribeInstance: true,
		DeleteBucket: true, GetBucketInfo: true, ListObjects: true, UploadObject: true,
		StartDatabase: true, StopDatabase: true, RebootDatabase: true,
		DescribeDatabase: true, CreateSnapshot: true,
		DeleteUser: true, DeleteRole: true, AttachPolicy: true, DetachPolicy: true,
		UpdateSecret: true, DeleteSecret: true, DescribeSecret: true, GetSecretValue: true,
		DeleteCluster: true, DescribeCluster: true, UpdateKubeconfig: true, ListNodeGroups: true,
	}

	for c := ServiceCommand(0); c < serviceCommandCount; c++ {
		assert.Equal(t, requiring[c], c.RequiresResource(), "requiresResource mismatch for %s", c)
	}

	// List/create style commands act on the service as a whole.
	assert.False(t, DownloadObject.RequiresResource())
	assert.False(t, RestoreSnapshot.RequiresResource())
}

func TestDestructiveCommands(t *testing.T) {
	destructive := map[ServiceCommand]bool{
		TerminateInstance: true,
		DeleteBucket:      true,
		DeleteUser:        true,
		DeleteRole:        true,
		DeleteSecret:      true,
		DeleteCluster:     true,
	}

	for c := ServiceCommand(0); c < serviceCommandCount; c++ {
		assert.Equal(t, destructive[c], c.Destructive(), "destructive mismatch for %s", c)
	}
}

func TestServiceCommandSlug(t *testing.T) {
	testCases := []struct {
		command  ServiceCommand
		expected string
	}{
		{ListInstances, "listinstances"},
		{GetBucketInfo, "getbucketinfo"},
		{CreateSnapshot, "createsnapshot"},
		{GetSecretValue, "getsecretvalue"},
		{UpdateKubeconfig, "updatekubeconfig"},
		{ListNodeGroups, "listnodegroups"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.command.Slug())
		})
	}
}

func TestServiceCommandDisplayName(t *testing.T) {
	// List and create entries carry the service in their palette name.
	assert.Equal(t, "List EC2 Instances", ListInstances.DisplayName())
	assert.Equal(t, "Create S3 Bucket", CreateBucket.DisplayName())
	assert.Equal(t, "List RDS Databases", ListDatabases.DisplayName())

	// Resource commands keep the short form.
	assert.Equal(t, "Start Instance", StartInstance.DisplayName())
	assert.Equal(t, "Delete Bucket", DeleteBucket.DisplayName())
}

func TestServiceCommandKeywords(t *testing.T) {
	// Lowercased short name plus verb synonyms.
	assert.Equal(t, []string{"start instance", "start", "run", "launch"}, StartInstance.Keywords())
	assert.Equal(t, []string{"terminate instance", "terminate", "destroy", "delete"}, TerminateInstance.Keywords())

	// The short name stays searchable even when the palette name is
	// service-qualified.
	assert.Equal(t, []string{"list instances", "list", "show", "view"}, ListInstances.Keywords())

	// Commands without a verb set keep just the name.
	assert.Equal(t, []string{"describe instance"}, DescribeInstance.Keywords())
	assert.Equal(t, []string{"update kubeconfig"}, UpdateKubeconfig.Keywords())
}

func TestServiceCommandOutOfRange(t *testing.T) {
	bogus := ServiceCommand(999)
	require.Equal(t, "Unknown", bogus.DisplayName())
	assert.False(t, bogus.RequiresResource())
}
