package aws

// AllRegions returns the full region table with display names.
func AllRegions() []Region {
	return []Region{
		{Name: "us-east-1", DisplayName: "US East (N. Virginia)"},
		{Name: "us-east-2", DisplayName: "US East (Ohio)"},
		{Name: "us-west-1", DisplayName: "US West (N. California)"},
		{Name: "us-west-2", DisplayName: "US West (Oregon)"},
		{Name: "eu-west-1", DisplayName: "Europe (Ireland)"},
		{Name: "eu-west-2", DisplayName: "Europe (London)"},
		{Name: "eu-west-3", DisplayName: "Europe (Paris)"},
		{Name: "eu-central-1", DisplayName: "Europe (Frankfurt)"},
		{Name: "ap-northeast-1", DisplayName: "Asia Pacific (Tokyo)"},
		{Name: "ap-northeast-2", DisplayName: "Asia Pacific (Seoul)"},
		{Name: "ap-southeast-1", DisplayName: "Asia Pacific (Singapore)"},
		{Name: "ap-southeast-2", DisplayName: "Asia Pacific (Sydney)"},
		{Name: "ap-south-1", DisplayName: "Asia Pacific (Mumbai)"},
		{Name: "sa-east-1", DisplayName: "South America (São Paulo)"},
	}
}

// DefaultRegions is the curated working set offered at startup.
func DefaultRegions() []Region {
	return []Region{
		{Name: "us-east-1", DisplayName: "US East (N. Virginia)"},
		{Name: "us-west-2", DisplayName: "US West (Oregon)"},
		{Name: "eu-west-1", DisplayName: "Europe (Ireland)"},
		{Name: "ap-southeast-1", DisplayName: "Asia Pacific (Singapore)"},
	}
}

// RegionByName looks a region up in the full table.
func RegionByName(name string) (Region, bool) {
	for _, r := range AllRegions() {
		if r.Name == name {
			return r, true
		}
	}
	return Region{}, false
}

// IsValidRegion reports whether name appears in the full table.
func IsValidRegion(name string) bool {
	_, ok := RegionByName(name)
	return ok
}
