package cmd

import (
	"fmt"

	"nimbus-ctl/aws"
)

// PageKind discriminates the navigation locations.
type PageKind int

const (
	PageDashboard PageKind = iota
	PageResourceList
	PageResourceDetail
	PageSettings
)

// Page is a navigation location. It is a comparable value: two
// ResourceDetail pages are equal iff both service and resource id
// match, which is what OnPage/NotOnPage requirements rely on.
// Construct pages through the helpers so unused fields stay zeroed.
type Page struct {
	Kind       PageKind
	Service    aws.ServiceType
	ResourceID string
}

// DashboardPage returns the dashboard location.
func DashboardPage() Page {
	return Page{Kind: PageDashboard}
}

// SettingsPage returns the settings location.
func SettingsPage() Page {
	return Page{Kind: PageSettings}
}

// ResourceListPage returns the list location for a service.
func ResourceListPage(service aws.ServiceType) Page {
	return Page{Kind: PageResourceList, Service: service}
}

// ResourceDetailPage returns the detail location for one resource.
func ResourceDetailPage(service aws.ServiceType, resourceID string) Page {
	return Page{Kind: PageResourceDetail, Service: service, ResourceID: resourceID}
}

// Title returns the heading shown for the page.
func (p Page) Title() string {
	switch p.Kind {
	case PageResourceList:
		return fmt.Sprintf("%s Resources", p.Service.DisplayName())
	case PageResourceDetail:
		return fmt.Sprintf("%s: %s", p.Service.DisplayName(), p.ResourceID)
	case PageSettings:
		return "Settings"
	default:
		return "Dashboard"
	}
}

// ServiceOnPage returns the service a list or detail page is scoped
// to, and false for dashboard/settings.
func (p Page) ServiceOnPage() (aws.ServiceType, bool) {
	switch p.Kind {
	case PageResourceList, PageResourceDetail:
		return p.Service, true
	default:
		return 0, false
	}
}
