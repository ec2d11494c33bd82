// Package cmd implements the command palette engine: the command
// vocabulary, the context snapshot commands are gated on, the catalog
// builders, and the palette state machine that filters the catalog
// against free-text input.
package cmd

import "nimbus-ctl/aws"

// CategoryKind discriminates command categories.
type CategoryKind int

const (
	CategoryNavigation CategoryKind = iota
	CategoryProfile
	CategoryRegion
	CategoryService
	CategoryGeneral
)

// Category groups commands in the palette. Service categories carry
// the owning service.
type Category struct {
	Kind    CategoryKind
	Service aws.ServiceType
}

// ServiceCategory returns the category for one service's commands.
func ServiceCategory(service aws.ServiceType) Category {
	return Category{Kind: CategoryService, Service: service}
}

// DisplayName returns the grouping label. Every service shares the
// plain "Service" label; the owning service shows through the icon.
func (c Category) DisplayName() string {
	switch c.Kind {
	case CategoryNavigation:
		return "Navigation"
	case CategoryProfile:
		return "Profile"
	case CategoryRegion:
		return "Region"
	case CategoryService:
		return "Service"
	default:
		return "General"
	}
}

// Icon returns the glyph for the category.
func (c Category) Icon() string {
	switch c.Kind {
	case CategoryNavigation:
		return "🧭"
	case CategoryProfile:
		return "👤"
	case CategoryRegion:
		return "🌍"
	case CategoryService:
		return c.Service.Icon()
	default:
		return "⚙️"
	}
}

// UIElement names the toggleable UI surfaces.
type UIElement int

const (
	UIProfileSelector UIElement = iota
	UIRegionSelector
	UIHelp
	UISettings
)

// ActionKind discriminates command actions.
type ActionKind int

const (
	ActionSwitchProfile ActionKind = iota
	ActionSwitchRegion
	ActionNavigateToService
	ActionNavigateToPage
	ActionExecuteServiceCommand
	ActionShowHelp
	ActionOpenSettings
	ActionToggleUI
)

// Action is the payload executed when a command is selected. Only the
// fields relevant to Kind are populated.
type Action struct {
	Kind           ActionKind
	Profile        string
	Region         string
	Service        aws.ServiceType
	Page           Page
	ServiceCommand ServiceCommand
	UI             UIElement
}

// SwitchProfileAction switches the active profile.
func SwitchProfileAction(name string) Action {
	return Action{Kind: ActionSwitchProfile, Profile: name}
}

// SwitchRegionAction switches the active region.
func SwitchRegionAction(name string) Action {
	return Action{Kind: ActionSwitchRegion, Region: name}
}

// NavigateToServiceAction opens a service's resource list.
func NavigateToServiceAction(service aws.ServiceType) Action {
	return Action{Kind: ActionNavigateToService, Service: service}
}

// NavigateToPageAction navigates to an arbitrary page.
func NavigateToPageAction(page Page) Action {
	return Action{Kind: ActionNavigateToPage, Page: page}
}

// ExecuteServiceCommandAction runs a service operation.
func ExecuteServiceCommandAction(service aws.ServiceType, sc ServiceCommand) Action {
	return Action{Kind: ActionExecuteServiceCommand, Service: service, ServiceCommand: sc}
}

// ShowHelpAction opens the help panel.
func ShowHelpAction() Action {
	return Action{Kind: ActionShowHelp}
}

// OpenSettingsAction navigates to the settings page.
func OpenSettingsAction() Action {
	return Action{Kind: ActionOpenSettings}
}

// ToggleUIAction toggles an overlay or panel.
func ToggleUIAction(el UIElement) Action {
	return Action{Kind: ActionToggleUI, UI: el}
}

// Command is one invocable palette entry. The ID is deterministic for
// a given category/action/parameter so repeated catalog builds in the
// same turn produce stable identities.
type Command struct {
	ID           string
	Name         string
	Description  string
	Category     Category
	Action       Action
	Icon         string
	Keywords     []string
	Enabled      bool
	Requirements []ContextRequirement
}

func newCommand(id, name, description string, category Category, action Action, icon string) Command {
	return Command{
		ID:          id,
		Name:        name,
		Description: description,
		Category:    category,
		Action:      action,
		Icon:        icon,
		Enabled:     true,
	}
}

func (c Command) withKeywords(keywords ...string) Command {
	c.Keywords = keywords
	return c
}

func (c Command) withRequirements(requirements ...ContextRequirement) Command {
	c.Requirements = requirements
	return c
}

func (c Command) withEnabled(enabled bool) Command {
	c.Enabled = enabled
	return c
}
