package cmd

import (
	"fmt"

	"nimbus-ctl/aws"
)

// BuildCatalog produces the full candidate command set for a context,
// before requirement filtering. Pure and deterministic: same context,
// same catalog. Emission order is navigation, profile, region,
// service, general; that order is what the palette shows when no
// query is typed.
func BuildCatalog(ctx *Context) []Command {
	var commands []Command
	commands = append(commands, navigationCommands()...)
	commands = append(commands, profileCommands(ctx)...)
	commands = append(commands, regionCommands(ctx)...)
	commands = append(commands, serviceCommands()...)
	commands = append(commands, generalCommands()...)
	return commands
}

// Resolve reduces the catalog to the commands usable right now: a
// command survives iff it is enabled and the context satisfies every
// requirement. Catalog order is preserved.
func Resolve(catalog []Command, ctx *Context) []Command {
	out := make([]Command, 0, len(catalog))
	for _, c := range catalog {
		if !c.Enabled {
			continue
		}
		if !ctx.SatisfiesAll(c.Requirements) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// ResolvedCommands builds and resolves in one step.
func ResolvedCommands(ctx *Context) []Command {
	return Resolve(BuildCatalog(ctx), ctx)
}

func navigationCommands() []Command {
	commands := []Command{
		newCommand(
			"nav.dashboard",
			"Go to Dashboard",
			"Navigate to the main dashboard",
			Category{Kind: CategoryNavigation},
			NavigateToPageAction(DashboardPage()),
			"🏠",
		).
			withKeywords("dashboard", "home", "main").
			withRequirements(NotOnPage(DashboardPage())),
		newCommand(
			"nav.settings",
			"Go to Settings",
			"Navigate to application settings",
			Category{Kind: CategoryNavigation},
			NavigateToPageAction(SettingsPage()),
			"⚙️",
		).
			withKeywords("settings", "config", "preferences").
			withRequirements(NotOnPage(SettingsPage())),
	}

	for _, service := range aws.AllServices() {
		commands = append(commands, newCommand(
			fmt.Sprintf("nav.service.%s", service.Slug()),
			fmt.Sprintf("Go to %s", service.DisplayName()),
			fmt.Sprintf("Navigate to %s service", service.DisplayName()),
			Category{Kind: CategoryNavigation},
			NavigateToServiceAction(service),
			service.Icon(),
		).withKeywords(serviceNavKeywords(service)...))
	}

	return commands
}

func profileCommands(ctx *Context) []Command {
	commands := []Command{
		newCommand(
			"profile.selector",
			"Show Profile Selector",
			"Open profile selector UI",
			Category{Kind: CategoryProfile},
			ToggleUIAction(UIProfileSelector),
			"👤",
		).
			withKeywords("profile", "selector", "choose", "aws").
			withRequirements(ProfilesAvailable()),
	}

	for _, profile := range ctx.AvailableProfiles {
		// The active profile is never offered as a switch target.
		if profile.Name == ctx.CurrentProfile {
			continue
		}
		commands = append(commands, newCommand(
			fmt.Sprintf("profile.switch.%s", profile.Name),
			fmt.Sprintf("Switch to Profile: %s", profile.Name),
			fmt.Sprintf("Switch to AWS profile '%s'", profile.Name),
			Category{Kind: CategoryProfile},
			SwitchProfileAction(profile.Name),
			"👤",
		).
			withKeywords("profile", "switch", profile.Name, "aws", "account").
			withRequirements(ProfilesAvailable()))
	}

	return commands
}

func regionCommands(ctx *Context) []Command {
	commands := []Command{
		newCommand(
			"region.selector",
			"Show Region Selector",
			"Open region selector UI",
			Category{Kind: CategoryRegion},
			ToggleUIAction(UIRegionSelector),
			"🌍",
		).
			withKeywords("region", "selector", "choose", "aws").
			withRequirements(RegionsAvailable()),
	}

	for _, region := range ctx.AvailableRegions {
		if region.Name == ctx.CurrentRegion {
			continue
		}
		commands = append(commands, newCommand(
			fmt.Sprintf("region.switch.%s", region.Name),
			fmt.Sprintf("Switch to Region: %s", region.DisplayName),
			fmt.Sprintf("Switch to AWS region '%s' (%s)", region.DisplayName, region.Name),
			Category{Kind: CategoryRegion},
			SwitchRegionAction(region.Name),
			"🌍",
		).
			withKeywords("region", "switch", region.Name, region.DisplayName, "aws", "location").
			withRequirements(RegionsAvailable()))
	}

	return commands
}

func serviceCommands() []Command {
	var commands []Command

	for _, service := range aws.AllServices() {
		for _, sc := range ForService(service) {
			requirements := []ContextRequirement{ServiceSelected(service)}
			if sc.RequiresResource() {
				requirements = append(requirements, ResourceOfTypeSelected(service))
			}

			// Every entry matches its service slug, so typing "iam"
			// surfaces the whole IAM command set.
			keywords := append([]string{service.Slug()}, sc.Keywords()...)

			commands = append(commands, newCommand(
				fmt.Sprintf("service.%s.%s", service.Slug(), sc.Slug()),
				sc.DisplayName(),
				sc.Description(),
				ServiceCategory(service),
				ExecuteServiceCommandAction(service, sc),
				service.Icon(),
			).
				withKeywords(keywords...).
				withRequirements(requirements...))
		}
	}

	return commands
}

func generalCommands() []Command {
	return []Command{
		newCommand(
			"general.help",
			"Show Help",
			"Display help information",
			Category{Kind: CategoryGeneral},
			ShowHelpAction(),
			"❓",
		).withKeywords("help", "info", "about", "support"),
		newCommand(
			"general.settings",
			"Open Settings",
			"Open application settings",
			Category{Kind: CategoryGeneral},
			OpenSettingsAction(),
			"⚙️",
		).withKeywords("settings", "config", "preferences", "options"),
	}
}

// serviceNavKeywords is the richer keyword set attached to "Go to X"
// navigation commands. Quick-nav uses the shorter aws.Keywords set.
func serviceNavKeywords(service aws.ServiceType) []string {
	switch service {
	case aws.EC2:
		return []string{"ec2", "compute", "instances", "virtual", "servers"}
	case aws.S3:
		return []string{"s3", "storage", "bucket", "object", "files"}
	case aws.RDS:
		return []string{"rds", "database", "mysql", "postgres", "db"}
	case aws.IAM:
		return []string{"iam", "identity", "access", "users", "roles", "permissions"}
	case aws.Secrets:
		return []string{"secrets", "secret", "password", "keys", "credentials"}
	case aws.EKS:
		return []string{"eks", "kubernetes", "k8s", "cluster", "containers"}
	default:
		return nil
	}
}
