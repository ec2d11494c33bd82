package keys

import "sort"

// HelpCategory organizes keybindings by function
type HelpCategory string

const (
	HelpCategoryPalette    HelpCategory = "Command Palette"
	HelpCategoryNavigation HelpCategory = "Navigation"
	HelpCategoryContext    HelpCategory = "Profiles & Regions"
	HelpCategoryResources  HelpCategory = "Resources"
	HelpCategoryOther      HelpCategory = "Other"
	HelpCategoryUncategory HelpCategory = "Uncategorized" // For keys without categories
)

// KeyHelpInfo adds extended help information to key bindings
type KeyHelpInfo struct {
	Description string       // Extended description for help text
	Category    HelpCategory // Category for organizing in help screens
}

// KeyHelpMap maps KeyNames to their help information
var KeyHelpMap = map[KeyName]KeyHelpInfo{
	// Palette category
	KeyPalette:  {Description: "Toggle the command palette", Category: HelpCategoryPalette},
	KeyQuickNav: {Description: "Quick navigation to any service or page", Category: HelpCategoryPalette},

	// Navigation category
	KeyUp:        {Description: "Move selection up (Vim j/k supported)", Category: HelpCategoryNavigation},
	KeyDown:      {Description: "Move selection down (Vim j/k supported)", Category: HelpCategoryNavigation},
	KeyLeft:      {Description: "Move left", Category: HelpCategoryNavigation},
	KeyRight:     {Description: "Move right", Category: HelpCategoryNavigation},
	KeyEnter:     {Description: "Open the selected resource", Category: HelpCategoryNavigation},
	KeyTab:       {Description: "Cycle dashboard widgets", Category: HelpCategoryNavigation},
	KeyDashboard: {Description: "Jump to the dashboard", Category: HelpCategoryNavigation},
	KeySettings:  {Description: "Open the settings page", Category: HelpCategoryNavigation},

	// Context category
	KeyProfiles: {Description: "Open the AWS profile selector", Category: HelpCategoryContext},
	KeyRegions:  {Description: "Open the AWS region selector", Category: HelpCategoryContext},

	// Resources category
	KeyRefresh:  {Description: "Reload the current resource list", Category: HelpCategoryResources},
	KeyFavorite: {Description: "Pin or unpin the selected resource", Category: HelpCategoryResources},
	KeyCopyARN:  {Description: "Copy the selected resource's ARN to the clipboard", Category: HelpCategoryResources},
	KeyFilter:   {Description: "Filter the resource list by name, id, state, or tag", Category: HelpCategoryResources},

	// Other category
	KeyHelp: {Description: "Show this help screen", Category: HelpCategoryOther},
	KeyEsc:  {Description: "Close the topmost overlay, or go back a page", Category: HelpCategoryOther},
	KeyQuit: {Description: "Quit the application", Category: HelpCategoryOther},
}

// helpCategoryOrder fixes the display order of help sections.
var helpCategoryOrder = []HelpCategory{
	HelpCategoryPalette,
	HelpCategoryNavigation,
	HelpCategoryContext,
	HelpCategoryResources,
	HelpCategoryOther,
}

// GetKeyHelp returns the help information for a key
func GetKeyHelp(keyName KeyName) KeyHelpInfo {
	info, exists := KeyHelpMap[keyName]
	if !exists {
		return KeyHelpInfo{
			Description: "No description",
			Category:    HelpCategoryUncategory,
		}
	}
	return info
}

// GetKeysInCategory returns all key bindings in a given category,
// in a stable order.
func GetKeysInCategory(category HelpCategory) []KeyName {
	var keys []KeyName
	for k, info := range KeyHelpMap {
		if info.Category == category {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// GetAllCategories returns the help categories in display order,
// skipping ones with no keys.
func GetAllCategories() []HelpCategory {
	populated := make(map[HelpCategory]bool)
	for _, info := range KeyHelpMap {
		populated[info.Category] = true
	}

	var categories []HelpCategory
	for _, category := range helpCategoryOrder {
		if populated[category] {
			categories = append(categories, category)
		}
	}
	return categories
}
