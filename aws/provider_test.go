package aws

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubProviderStampsRegion(t *testing.T) {
	p := NewStubProvider("default", "eu-central-1")

	resources, err := p.ListResources(context.Background(), EC2)
	require.NoError(t, err)
	require.NotEmpty(t, resources)
	for _, res := range resources {
		assert.Equal(t, "eu-central-1", res.Region)
	}

	// IAM entries are global and must not be stamped.
	resources, err = p.ListResources(context.Background(), IAM)
	require.NoError(t, err)
	require.NotEmpty(t, resources)
	for _, res := range resources {
		assert.Equal(t, "global", res.Region)
	}
}

func TestStubProviderListsEveryService(t *testing.T) {
	p := NewStubProvider("default", "us-east-1")
	for _, service := range AllServices() {
		resources, err := p.ListResources(context.Background(), service)
		require.NoError(t, err)
		assert.NotEmpty(t, resources, "service %s has no sample resources", service.DisplayName())
		for _, res := range resources {
			assert.Equal(t, service, res.Service)
			assert.NotEmpty(t, res.ID)
			assert.NotEmpty(t, res.ARN)
		}
	}
}

func TestServiceTypeSlugRoundTrip(t *testing.T) {
	for _, service := range AllServices() {
		parsed, ok := ServiceTypeFromSlug(service.Slug())
		require.True(t, ok, "slug %q did not resolve", service.Slug())
		assert.Equal(t, service, parsed)
	}

	_, ok := ServiceTypeFromSlug("lambda")
	assert.False(t, ok)
}
