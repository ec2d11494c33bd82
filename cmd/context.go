package cmd

import "nimbus-ctl/aws"

// RequirementKind discriminates context requirements.
type RequirementKind int

const (
	ReqServiceSelected RequirementKind = iota
	ReqResourceSelected
	ReqResourceOfTypeSelected
	ReqProfilesAvailable
	ReqRegionsAvailable
	ReqOnPage
	ReqNotOnPage
)

// ContextRequirement is a pure predicate over a Context. A command
// declares zero or more; all must hold for the command to resolve.
type ContextRequirement struct {
	Kind    RequirementKind
	Service aws.ServiceType
	Page    Page
}

// ServiceSelected requires the given service to be selected.
func ServiceSelected(service aws.ServiceType) ContextRequirement {
	return ContextRequirement{Kind: ReqServiceSelected, Service: service}
}

// ResourceSelected requires any resource to be selected.
func ResourceSelected() ContextRequirement {
	return ContextRequirement{Kind: ReqResourceSelected}
}

// ResourceOfTypeSelected requires a resource of the given service to
// be selected.
func ResourceOfTypeSelected(service aws.ServiceType) ContextRequirement {
	return ContextRequirement{Kind: ReqResourceOfTypeSelected, Service: service}
}

// ProfilesAvailable requires at least one known profile.
func ProfilesAvailable() ContextRequirement {
	return ContextRequirement{Kind: ReqProfilesAvailable}
}

// RegionsAvailable requires at least one known region.
func RegionsAvailable() ContextRequirement {
	return ContextRequirement{Kind: ReqRegionsAvailable}
}

// OnPage requires the user to be on the given page.
func OnPage(page Page) ContextRequirement {
	return ContextRequirement{Kind: ReqOnPage, Page: page}
}

// NotOnPage requires the user to be anywhere but the given page.
func NotOnPage(page Page) ContextRequirement {
	return ContextRequirement{Kind: ReqNotOnPage, Page: page}
}

// Context is the snapshot of navigation/selection/environment state
// commands are resolved against. It is rebuilt, never mutated in
// place, whenever navigation, selection, profile, or region changes.
type Context struct {
	CurrentPage       Page
	SelectedService   *aws.ServiceType
	SelectedResource  string
	AvailableProfiles []aws.Profile
	AvailableRegions  []aws.Region
	CurrentProfile    string
	CurrentRegion     string
}

// NewContext assembles a context snapshot.
func NewContext(
	page Page,
	selectedService *aws.ServiceType,
	selectedResource string,
	profiles []aws.Profile,
	regions []aws.Region,
	currentProfile, currentRegion string,
) Context {
	return Context{
		CurrentPage:       page,
		SelectedService:   selectedService,
		SelectedResource:  selectedResource,
		AvailableProfiles: profiles,
		AvailableRegions:  regions,
		CurrentProfile:    currentProfile,
		CurrentRegion:     currentRegion,
	}
}

// Satisfies evaluates one requirement against the context.
func (c *Context) Satisfies(req ContextRequirement) bool {
	switch req.Kind {
	case ReqServiceSelected:
		return c.SelectedService != nil && *c.SelectedService == req.Service
	case ReqResourceSelected:
		return c.SelectedResource != ""
	case ReqResourceOfTypeSelected:
		return c.SelectedResource != "" && c.SelectedService != nil && *c.SelectedService == req.Service
	case ReqProfilesAvailable:
		return len(c.AvailableProfiles) > 0
	case ReqRegionsAvailable:
		return len(c.AvailableRegions) > 0
	case ReqOnPage:
		return c.CurrentPage == req.Page
	case ReqNotOnPage:
		return c.CurrentPage != req.Page
	default:
		return false
	}
}

// SatisfiesAll evaluates every requirement; an empty list always holds.
func (c *Context) SatisfiesAll(requirements []ContextRequirement) bool {
	for _, req := range requirements {
		if !c.Satisfies(req) {
			return false
		}
	}
	return true
}

// ServiceFromPage returns the service the current page is scoped to.
func (c *Context) ServiceFromPage() (aws.ServiceType, bool) {
	return c.CurrentPage.ServiceOnPage()
}

// HasProfile reports whether the named profile is available.
func (c *Context) HasProfile(name string) bool {
	for _, p := range c.AvailableProfiles {
		if p.Name == name {
			return true
		}
	}
	return false
}

// HasRegion reports whether the named region is available.
func (c *Context) HasRegion(name string) bool {
	for _, r := range c.AvailableRegions {
		if r.Name == name {
			return true
		}
	}
	return false
}
