package cmd

import (
	"testing"

	"nimbus-ctl/aws"

	"github.com/stretchr/testify/assert"
)

func svcPtr(s aws.ServiceType) *aws.ServiceType {
	return &s
}

func TestContextSatisfies(t *testing.T) {
	ec2Ctx := Context{
		CurrentPage:      ResourceListPage(aws.EC2),
		SelectedService:  svcPtr(aws.EC2),
		SelectedResource: "i-1234567890abcdef0",
		AvailableProfiles: []aws.Profile{
			{Name: "default", Region: "us-east-1"},
		},
		AvailableRegions: aws.DefaultRegions(),
		CurrentProfile:   "default",
		CurrentRegion:    "us-east-1",
	}

	emptyCtx := Context{CurrentPage: DashboardPage()}

	testCases := []struct {
		name     string
		ctx      Context
		req      ContextRequirement
		expected bool
	}{
		{"service selected matches", ec2Ctx, ServiceSelected(aws.EC2), true},
		{"service selected mismatch", ec2Ctx, ServiceSelected(aws.S3), false},
		{"service selected with nil selection", emptyCtx, ServiceSelected(aws.EC2), false},
		{"resource selected", ec2Ctx, ResourceSelected(), true},
		{"resource selected when empty", emptyCtx, ResourceSelected(), false},
		{"resource of matching type", ec2Ctx, ResourceOfTypeSelected(aws.EC2), true},
		{"resource of different type", ec2Ctx, ResourceOfTypeSelected(aws.S3), false},
		{"resource of type without resource", emptyCtx, ResourceOfTypeSelected(aws.EC2), false},
		{"profiles available", ec2Ctx, ProfilesAvailable(), true},
		{"profiles unavailable", emptyCtx, ProfilesAvailable(), false},
		{"regions available", ec2Ctx, RegionsAvailable(), true},
		{"regions unavailable", emptyCtx, RegionsAvailable(), false},
		{"on page matches", ec2Ctx, OnPage(ResourceListPage(aws.EC2)), true},
		{"on page mismatch", ec2Ctx, OnPage(DashboardPage()), false},
		{"not on page holds elsewhere", ec2Ctx, NotOnPage(DashboardPage()), true},
		{"not on page fails on that page", emptyCtx, NotOnPage(DashboardPage()), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.ctx.Satisfies(tc.req))
		})
	}
}

func TestResourceOfTypeNeedsBothResourceAndService(t *testing.T) {
	// A selected resource alone is not enough; the selected service
	// must match the required type.
	ctx := Context{
		CurrentPage:      ResourceListPage(aws.S3),
		SelectedService:  svcPtr(aws.S3),
		SelectedResource: "assets-prod-bucket",
	}

	assert.True(t, ctx.Satisfies(ResourceOfTypeSelected(aws.S3)))
	assert.False(t, ctx.Satisfies(ResourceOfTypeSelected(aws.EC2)))

	ctx.SelectedResource = ""
	assert.False(t, ctx.Satisfies(ResourceOfTypeSelected(aws.S3)))
}

func TestSatisfiesAll(t *testing.T) {
	ctx := Context{
		CurrentPage:      ResourceListPage(aws.RDS),
		SelectedService:  svcPtr(aws.RDS),
		SelectedResource: "db-prod-mysql",
	}

	assert.True(t, ctx.SatisfiesAll(nil), "empty requirement list always holds")
	assert.True(t, ctx.SatisfiesAll([]ContextRequirement{
		ServiceSelected(aws.RDS),
		ResourceOfTypeSelected(aws.RDS),
	}))
	assert.False(t, ctx.SatisfiesAll([]ContextRequirement{
		ServiceSelected(aws.RDS),
		ProfilesAvailable(),
	}), "one failing requirement fails the set")
}

func TestServiceFromPage(t *testing.T) {
	listCtx := Context{CurrentPage: ResourceListPage(aws.EKS)}
	svc, ok := listCtx.ServiceFromPage()
	assert.True(t, ok)
	assert.Equal(t, aws.EKS, svc)

	detailCtx := Context{CurrentPage: ResourceDetailPage(aws.IAM, "admin-user")}
	svc, ok = detailCtx.ServiceFromPage()
	assert.True(t, ok)
	assert.Equal(t, aws.IAM, svc)

	dashCtx := Context{CurrentPage: DashboardPage()}
	_, ok = dashCtx.ServiceFromPage()
	assert.False(t, ok)
}

func TestHasProfileAndRegion(t *testing.T) {
	ctx := Context{
		AvailableProfiles: []aws.Profile{{Name: "default"}, {Name: "production"}},
		AvailableRegions:  aws.DefaultRegions(),
	}

	assert.True(t, ctx.HasProfile("production"))
	assert.False(t, ctx.HasProfile("staging"))
	assert.True(t, ctx.HasRegion("eu-west-1"))
	assert.False(t, ctx.HasRegion("mars-north-1"))
}
