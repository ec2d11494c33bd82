package app

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"nimbus-ctl/apperr"
	"nimbus-ctl/aws"
	"nimbus-ctl/cmd"
	"nimbus-ctl/config"
	"nimbus-ctl/keys"
	"nimbus-ctl/log"
	"nimbus-ctl/ui"
	"nimbus-ctl/ui/overlay"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// helpScreenMain flags that the main help screen has been shown once.
const helpScreenMain uint32 = 1

// Run is the main entrypoint into the application.
func Run(ctx context.Context) error {
	p := tea.NewProgram(
		newHome(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Mouse scroll
	)
	_, err := p.Run()
	return err
}

type state int

const (
	stateDefault state = iota
	// stateConfirm is the state when a confirmation modal is displayed.
	stateConfirm
	// stateTextInput is the state when a text input overlay is capturing input.
	stateTextInput
	// stateHelp is the state when a one-shot help screen is displayed.
	stateHelp
)

// notificationTickMsg drives expiry of stale notifications.
type notificationTickMsg struct{}

// configReloadedMsg signals that the config file changed on disk. The
// store has already reloaded it by the time this message arrives.
type configReloadedMsg struct{}

// resourcesLoadedMsg carries the result of an async resource load.
type resourcesLoadedMsg struct {
	service   aws.ServiceType
	resources []aws.Resource
	err       error
}

// autoRefreshTickMsg fires when the background refresh interval elapses.
type autoRefreshTickMsg struct{}

var tickNotificationsCmd = func() tea.Msg {
	time.Sleep(time.Second)
	return notificationTickMsg{}
}

type home struct {
	ctx context.Context

	// -- Storage and Configuration --

	// store is the single handle for reading and mutating user config
	store *config.Store
	// appState stores persistent state like favorites and recent activity
	appState *config.State
	// watcher reloads the store when the config file changes on disk
	watcher *config.Watcher

	// -- AWS --

	// provider executes context switches and resource operations
	provider aws.ResourceProvider
	// profiles and regions are the known switch targets
	profiles []aws.Profile
	regions  []aws.Region

	// -- State --

	// state is the current discrete state of the application
	state state
	// currentPage is where the user is; pageHistory is every page before it
	currentPage cmd.Page
	pageHistory []cmd.Page
	// currentProfile and currentRegion are the active AWS context
	currentProfile string
	currentRegion  string
	// selectedService and selectedResource gate command resolution.
	// Both are derived from the current page, never set directly.
	selectedService  *aws.ServiceType
	selectedResource string
	// helpVisible and settingsPanelVisible track the stacked panels
	helpVisible          bool
	settingsPanelVisible bool

	// -- Command Engine --

	// palette resolves and filters the catalog against a context snapshot
	palette *cmd.Palette

	// -- UI Components --

	paletteView    *ui.PaletteView
	quickNav       *ui.QuickNav
	dashboard      *ui.Dashboard
	resourceList   *ui.ResourceList
	resourceDetail *ui.ResourceDetail
	settingsPage   *ui.SettingsPage
	helpPanel      *ui.HelpPanel
	statusBar      *ui.StatusBar
	menu           *ui.Menu
	notifications  *ui.Notifications

	// -- Overlays --

	profileSelector     *ui.Selector
	regionSelector      *ui.Selector
	confirmationOverlay *overlay.ConfirmationOverlay
	textInputOverlay    *overlay.TextInputOverlay
	// textOverlay displays one-shot help screens
	textOverlay *overlay.TextOverlay
	// Overlay callbacks run inside HandleKeyPress and cannot return
	// commands, so dispatches made from them park the follow-up here.
	overlayCmd tea.Cmd

	// resources caches loaded resources per service for the active
	// profile/region pair. Context switches drop the whole cache.
	resources map[aws.ServiceType][]aws.Resource

	width  int
	height int

	// initCmd runs once from Init
	initCmd tea.Cmd
}

func newHome(ctx context.Context) *home {
	store := config.NewStore()
	cfg := store.Config()
	appState := store.AppState()

	profileManager, err := aws.NewProfileManager()
	if err != nil {
		fmt.Printf("Failed to load AWS profiles: %v\n", err)
		os.Exit(1)
	}

	currentProfile := cfg.AWS.DefaultProfile
	currentRegion := cfg.AWS.DefaultRegion
	startPage := pageFromSlug(cfg.Dashboard.DefaultPage)
	if cfg.Behavior.RememberLastPage {
		if profile, region, page := appState.LastContext(); page != "" {
			currentProfile = profile
			currentRegion = region
			startPage = pageFromSlug(page)
		}
	}

	h := &home{
		ctx:            ctx,
		store:          store,
		appState:       appState,
		provider:       aws.NewStubProvider(currentProfile, currentRegion),
		profiles:       profileManager.Profiles(),
		regions:        aws.AllRegions(),
		state:          stateDefault,
		currentProfile: currentProfile,
		currentRegion:  currentRegion,
		paletteView:    ui.NewPaletteView(),
		quickNav:       ui.NewQuickNav(),
		dashboard:      ui.NewDashboard(cfg.Dashboard.EnabledWidgets),
		resourceDetail: ui.NewResourceDetail(),
		settingsPage:   ui.NewSettingsPage(),
		helpPanel:      ui.NewHelpPanel(),
		statusBar:      ui.NewStatusBar(),
		menu:           ui.NewMenu(),
		notifications:  ui.NewNotifications(),
		resources:      make(map[aws.ServiceType][]aws.Resource),
	}
	h.menu.SetShowHints(cfg.Display.ShowHelpBar)

	watcher, err := config.NewWatcher(store)
	if err != nil {
		log.WarningLog.Printf("config watcher disabled: %v", err)
	} else {
		h.watcher = watcher
	}

	h.initCmd = h.enterPage(startPage)
	if restored := appState.GetUIState(); restored.FilterQuery != "" &&
		h.resourceList != nil && h.resourceList.Service().Slug() == restored.LastService {
		h.resourceList.SetFilter(restored.FilterQuery)
	}

	snapshot := h.commandContext()
	h.palette = cmd.NewPalette(&snapshot)

	// First launch gets the intro screen.
	h.showHelpScreen(helpTypeMain{}, nil)

	return h
}

// pageFromSlug maps a persisted page slug back to a page. Unknown
// slugs fall back to the dashboard.
func pageFromSlug(slug string) cmd.Page {
	switch slug {
	case "", "dashboard":
		return cmd.DashboardPage()
	case "settings":
		return cmd.SettingsPage()
	}
	if service, ok := aws.ServiceTypeFromSlug(slug); ok {
		return cmd.ResourceListPage(service)
	}
	return cmd.DashboardPage()
}

func pageSlug(page cmd.Page) string {
	switch page.Kind {
	case cmd.PageSettings:
		return "settings"
	case cmd.PageResourceList, cmd.PageResourceDetail:
		return page.Service.Slug()
	default:
		return "dashboard"
	}
}

func (m *home) Init() tea.Cmd {
	cmds := []tea.Cmd{tickNotificationsCmd, m.initCmd}
	if m.watcher != nil {
		cmds = append(cmds, m.waitForConfigReload())
	}
	if refresh := m.scheduleAutoRefresh(); refresh != nil {
		cmds = append(cmds, refresh)
	}
	return tea.Batch(cmds...)
}

// scheduleAutoRefresh arms the next background refresh tick. The
// dashboard has its own interval; every other page uses the AWS one.
// A non-positive interval disables the timer.
func (m *home) scheduleAutoRefresh() tea.Cmd {
	cfg := m.store.Config()
	interval := cfg.AWS.AutoRefreshInterval
	if m.currentPage.Kind == cmd.PageDashboard {
		interval = cfg.Dashboard.DashboardRefreshInterval
	}
	if interval <= 0 {
		return nil
	}
	delay := time.Duration(interval) * time.Second
	return func() tea.Msg {
		time.Sleep(delay)
		return autoRefreshTickMsg{}
	}
}

// autoRefresh reloads the current page if background refresh is enabled
// for it. Detail pages are skipped so the fields under the user's eyes
// never swap mid-read, and modal surfaces suppress the reload while
// leaving the timer armed.
func (m *home) autoRefresh() tea.Cmd {
	if m.state != stateDefault || m.palette.IsVisible() || m.quickNav.IsVisible() {
		return nil
	}
	cfg := m.store.Config()
	switch m.currentPage.Kind {
	case cmd.PageDashboard:
		if !cfg.Dashboard.AutoRefreshDashboard {
			return nil
		}
	case cmd.PageResourceList:
		if !cfg.Behavior.AutoRefreshResources {
			return nil
		}
	default:
		return nil
	}
	return m.refreshCurrentPage()
}

// waitForConfigReload blocks until the watcher reports a change.
func (m *home) waitForConfigReload() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
			return nil
		case _, ok := <-m.watcher.Events():
			if !ok {
				return nil
			}
			return configReloadedMsg{}
		}
	}
}

// loadResources fetches one service's resources off the update loop.
func (m *home) loadResources(service aws.ServiceType) tea.Cmd {
	provider := m.provider
	return func() tea.Msg {
		resources, err := provider.ListResources(m.ctx, service)
		return resourcesLoadedMsg{service: service, resources: resources, err: err}
	}
}

// loadMissingCounts fills resource counts for the dashboard widgets.
func (m *home) loadMissingCounts() tea.Cmd {
	var cmds []tea.Cmd
	for _, service := range aws.AllServices() {
		if _, ok := m.resources[service]; !ok {
			cmds = append(cmds, m.loadResources(service))
		}
	}
	return tea.Batch(cmds...)
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notificationTickMsg:
		m.notifications.ExpireBefore(time.Now().Add(-ui.NotificationTTL))
		return m, tickNotificationsCmd
	case configReloadedMsg:
		m.applyConfig()
		m.notifications.Info("Configuration reloaded")
		return m, m.waitForConfigReload()
	case autoRefreshTickMsg:
		return m, tea.Batch(m.autoRefresh(), m.scheduleAutoRefresh())
	case resourcesLoadedMsg:
		return m.handleResourcesLoaded(msg)
	case spinner.TickMsg:
		if m.resourceList != nil {
			return m, m.resourceList.UpdateSpinner(msg)
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.updateHandleWindowSizeEvent(msg)
		return m, nil
	}
	return m, nil
}

func (m *home) handleResourcesLoaded(msg resourcesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		log.ErrorLog.Printf("failed to list %s resources: %v", msg.service.DisplayName(), msg.err)
		m.notifications.Error(fmt.Sprintf("Failed to load %s resources: %v", msg.service.DisplayName(), msg.err))
		if m.resourceList != nil && m.resourceList.Service() == msg.service {
			m.resourceList.SetResources(nil)
		}
		return m, nil
	}
	m.resources[msg.service] = msg.resources
	if m.resourceList != nil && m.resourceList.Service() == msg.service {
		m.resourceList.SetResources(msg.resources)
	}
	return m, nil
}

func (m *home) updateHandleWindowSizeEvent(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height
	m.statusBar.SetWidth(msg.Width)
	m.menu.SetWidth(msg.Width)
	m.dashboard.SetWidth(msg.Width)
	if m.resourceList != nil {
		m.resourceList.SetWidth(msg.Width)
	}
	m.resourceDetail.SetWidth(msg.Width)
	m.settingsPage.SetWidth(min(msg.Width-4, 80))
	m.helpPanel.SetWidth(min(msg.Width-4, 80))
	m.paletteView.SetSize(msg.Width, msg.Height)
	m.quickNav.SetWidth(min(msg.Width-4, 56))
	if m.profileSelector != nil {
		m.profileSelector.SetWidth(min(msg.Width-8, 60))
	}
	if m.regionSelector != nil {
		m.regionSelector.SetWidth(min(msg.Width-8, 60))
	}
}

// handleKeyPress routes a key to the topmost surface that wants it:
// modal overlays first, then escape, then the palette and quick-nav
// inputs, then the selector overlays, then the page keymap.
func (m *home) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state == stateConfirm {
		if m.confirmationOverlay != nil && m.confirmationOverlay.HandleKeyPress(msg) {
			m.state = stateDefault
			m.confirmationOverlay = nil
			return m, m.takeOverlayCmd()
		}
		return m, nil
	}
	if m.state == stateTextInput {
		if m.textInputOverlay != nil && m.textInputOverlay.HandleKeyPress(msg) {
			m.state = stateDefault
			m.textInputOverlay = nil
			return m, m.takeOverlayCmd()
		}
		return m, nil
	}
	if m.state == stateHelp {
		return m.handleHelpState(msg)
	}

	if msg.Type == tea.KeyEsc {
		return m, m.handleEscape()
	}

	if m.palette.IsVisible() {
		return m.handlePaletteKey(msg)
	}
	if m.quickNav.IsVisible() {
		return m.handleQuickNavKey(msg)
	}
	if m.profileSelector != nil {
		if m.profileSelector.HandleKeyPress(msg) {
			m.profileSelector = nil
			return m, m.takeOverlayCmd()
		}
		return m, nil
	}
	if m.regionSelector != nil {
		if m.regionSelector.HandleKeyPress(msg) {
			m.regionSelector = nil
			return m, m.takeOverlayCmd()
		}
		return m, nil
	}

	return m.handleDefaultKey(msg)
}

func (m *home) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		selected, ok := m.palette.SelectedCommand()
		if !ok {
			// Nothing matches the query; the palette stays open.
			return m, nil
		}
		m.palette.Hide()
		return m, m.executeCommand(selected)
	case tea.KeyUp:
		m.palette.SelectPrevious()
	case tea.KeyDown:
		m.palette.SelectNext()
	case tea.KeyBackspace:
		m.palette.Backspace()
	case tea.KeySpace:
		m.palette.TypeRune(' ')
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.palette.TypeRune(r)
		}
	}
	return m, nil
}

func (m *home) handleQuickNavKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		item, ok := m.quickNav.Selected()
		if !ok {
			return m, nil
		}
		m.quickNav.Close()
		return m, m.dispatch(cmd.NavigateToPageAction(item.Target))
	case tea.KeyUp:
		m.quickNav.SelectPrevious()
	case tea.KeyDown:
		m.quickNav.SelectNext()
	case tea.KeyBackspace:
		m.quickNav.Backspace()
	case tea.KeySpace:
		m.quickNav.TypeRune(' ')
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.quickNav.TypeRune(r)
		}
	}
	return m, nil
}

func (m *home) handleDefaultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return m, nil
	}

	switch name {
	case keys.KeyQuit:
		return m.handleQuit()
	case keys.KeyPalette:
		// Opening resolves against a fresh snapshot.
		m.refreshCommandContext()
		m.palette.Toggle()
		if m.palette.IsVisible() {
			m.showHelpScreen(helpTypePalette{}, nil)
		}
	case keys.KeyQuickNav:
		m.quickNav.Toggle()
	case keys.KeyHelp:
		m.helpVisible = !m.helpVisible
	case keys.KeyProfiles:
		return m, m.dispatch(cmd.ToggleUIAction(cmd.UIProfileSelector))
	case keys.KeyRegions:
		return m, m.dispatch(cmd.ToggleUIAction(cmd.UIRegionSelector))
	case keys.KeyDashboard:
		return m, m.dispatch(cmd.NavigateToPageAction(cmd.DashboardPage()))
	case keys.KeySettings:
		return m, m.dispatch(cmd.NavigateToPageAction(cmd.SettingsPage()))
	case keys.KeyTab:
		if m.currentPage.Kind == cmd.PageDashboard {
			m.dashboard.CycleWidget()
		}
	case keys.KeyRefresh:
		return m, m.refreshCurrentPage()
	case keys.KeyFavorite:
		m.toggleFavoriteSelected()
	case keys.KeyCopyARN:
		m.copySelectedARN()
	case keys.KeyFilter:
		return m, m.editListFilter()
	case keys.KeyUp:
		m.moveSelection(-1)
	case keys.KeyDown:
		m.moveSelection(1)
	case keys.KeyEnter:
		return m.handleEnter()
	}
	return m, nil
}

// handleEscape closes the topmost open surface; only when nothing is
// open does it pop navigation history. One press, one layer.
func (m *home) handleEscape() tea.Cmd {
	switch {
	case m.palette.IsVisible():
		m.palette.Hide()
	case m.quickNav.IsVisible():
		m.quickNav.Close()
	case m.helpVisible:
		m.helpVisible = false
	case m.settingsPanelVisible:
		m.settingsPanelVisible = false
	case m.profileSelector != nil:
		m.profileSelector = nil
	case m.regionSelector != nil:
		m.regionSelector = nil
	default:
		if len(m.pageHistory) == 0 {
			return nil
		}
		prev := m.pageHistory[len(m.pageHistory)-1]
		m.pageHistory = m.pageHistory[:len(m.pageHistory)-1]
		followUp := m.enterPage(prev)
		m.refreshCommandContext()
		return followUp
	}
	return nil
}

// moveSelection moves the highlight on the current page. Moving the
// highlight is not selection: commands see a resource only after enter
// opens it.
func (m *home) moveSelection(delta int) {
	switch m.currentPage.Kind {
	case cmd.PageResourceList:
		if m.resourceList == nil {
			return
		}
		if delta > 0 {
			m.resourceList.SelectNext()
		} else {
			m.resourceList.SelectPrevious()
		}
	case cmd.PageSettings:
		if delta > 0 {
			m.settingsPage.SelectNext()
		} else {
			m.settingsPage.SelectPrevious()
		}
	}
}

func (m *home) handleEnter() (tea.Model, tea.Cmd) {
	switch m.currentPage.Kind {
	case cmd.PageResourceList:
		if m.resourceList == nil {
			return m, nil
		}
		res, ok := m.resourceList.Selected()
		if !ok {
			return m, nil
		}
		followUp := m.dispatch(cmd.NavigateToPageAction(cmd.ResourceDetailPage(res.Service, res.ID)))
		m.showHelpScreen(helpTypeResourceActions{service: res.Service}, nil)
		return m, followUp
	case cmd.PageSettings:
		return m, m.editSelectedSetting()
	}
	return m, nil
}

// executeCommand runs a palette command, routing destructive service
// commands through a confirmation modal first.
func (m *home) executeCommand(c cmd.Command) tea.Cmd {
	action := c.Action
	if action.Kind == cmd.ActionExecuteServiceCommand &&
		action.ServiceCommand.Destructive() &&
		m.store.Config().Behavior.ConfirmDestructiveActions {
		m.confirmCommand(c)
		return nil
	}
	return m.dispatch(action)
}

func (m *home) confirmCommand(c cmd.Command) {
	message := fmt.Sprintf("Are you sure you want to %s?", strings.ToLower(c.Name))
	m.confirmationOverlay = overlay.NewConfirmationOverlay(message)
	m.confirmationOverlay.SetWidth(50)
	m.state = stateConfirm
	action := c.Action
	m.confirmationOverlay.OnConfirm = func() {
		m.overlayCmd = m.dispatch(action)
	}
}

// takeOverlayCmd drains the command parked by an overlay callback.
func (m *home) takeOverlayCmd() tea.Cmd {
	c := m.overlayCmd
	m.overlayCmd = nil
	return c
}

// dispatch executes one action and then rebuilds the command context.
// Every state mutation funnels through here, so there is exactly one
// exit path and the palette never resolves against a stale snapshot.
func (m *home) dispatch(action cmd.Action) tea.Cmd {
	var followUp tea.Cmd
	switch action.Kind {
	case cmd.ActionSwitchProfile:
		followUp = m.switchProfile(action.Profile)
	case cmd.ActionSwitchRegion:
		followUp = m.switchRegion(action.Region)
	case cmd.ActionNavigateToService:
		followUp = m.navigateTo(cmd.ResourceListPage(action.Service))
	case cmd.ActionNavigateToPage:
		followUp = m.navigateTo(action.Page)
	case cmd.ActionExecuteServiceCommand:
		followUp = m.executeServiceCommand(action.Service, action.ServiceCommand)
	case cmd.ActionShowHelp:
		m.helpVisible = true
	case cmd.ActionOpenSettings:
		followUp = m.navigateTo(cmd.SettingsPage())
	case cmd.ActionToggleUI:
		m.toggleUIElement(action.UI)
	}
	m.refreshCommandContext()
	return followUp
}

// commandContext snapshots the state commands are resolved against.
func (m *home) commandContext() cmd.Context {
	return cmd.NewContext(
		m.currentPage,
		m.selectedService,
		m.selectedResource,
		m.profiles,
		m.regions,
		m.currentProfile,
		m.currentRegion,
	)
}

func (m *home) refreshCommandContext() {
	snapshot := m.commandContext()
	m.palette.UpdateContext(&snapshot)
}

func (m *home) knownProfile(name string) bool {
	for _, profile := range m.profiles {
		if profile.Name == name {
			return true
		}
	}
	return false
}

func (m *home) knownRegion(name string) bool {
	for _, region := range m.regions {
		if region.Name == name {
			return true
		}
	}
	return false
}

// switchProfile activates another profile. Nothing is mutated until
// the provider reports success, so a failed switch leaves the profile,
// the caches, and the history exactly as they were.
func (m *home) switchProfile(name string) tea.Cmd {
	if name == m.currentProfile {
		return nil
	}
	if !m.knownProfile(name) {
		err := apperr.New(apperr.CodeProfile, "unknown profile %q", name)
		log.WarningLog.Printf("profile switch rejected: %v", err)
		m.notifications.Error(fmt.Sprintf("Failed to switch profile: %v", err))
		return nil
	}
	if err := m.provider.SwitchProfile(m.ctx, name); err != nil {
		log.ErrorLog.Printf("profile switch failed: %v", err)
		m.notifications.Error(fmt.Sprintf("Failed to switch profile: %v", err))
		return nil
	}
	m.currentProfile = name
	m.notifications.Success(fmt.Sprintf("Switched to profile: %s", name))
	return m.reloadAfterContextChange()
}

// switchRegion activates another region with the same never-optimistic
// contract as switchProfile.
func (m *home) switchRegion(name string) tea.Cmd {
	if name == m.currentRegion {
		return nil
	}
	if !m.knownRegion(name) {
		err := apperr.New(apperr.CodeGeneral, "unknown region %q", name)
		log.WarningLog.Printf("region switch rejected: %v", err)
		m.notifications.Error(fmt.Sprintf("Failed to switch region: %v", err))
		return nil
	}
	if err := m.provider.SwitchRegion(m.ctx, name); err != nil {
		log.ErrorLog.Printf("region switch failed: %v", err)
		m.notifications.Error(fmt.Sprintf("Failed to switch region: %v", err))
		return nil
	}
	m.currentRegion = name
	m.notifications.Success(fmt.Sprintf("Switched to region: %s", name))
	return m.reloadAfterContextChange()
}

// reloadAfterContextChange drops every cached resource list and
// reloads whatever the current page displays. Lists from the previous
// profile or region must never leak into the new context.
func (m *home) reloadAfterContextChange() tea.Cmd {
	m.resources = make(map[aws.ServiceType][]aws.Resource)
	service, ok := m.currentPage.ServiceOnPage()
	if !ok {
		return m.loadMissingCounts()
	}
	if m.currentPage.Kind == cmd.PageResourceList && m.resourceList != nil {
		return tea.Batch(m.resourceList.StartLoading(), m.loadResources(service))
	}
	return m.loadResources(service)
}

// navigateTo pushes the current page onto the history stack and enters
// the target page.
func (m *home) navigateTo(page cmd.Page) tea.Cmd {
	m.pageHistory = append(m.pageHistory, m.currentPage)
	return m.enterPage(page)
}

// enterPage makes page current and derives the selection state the
// page implies: resource lists select their service and drop any
// resource selection, detail pages select both, dashboard and settings
// clear both.
func (m *home) enterPage(page cmd.Page) tea.Cmd {
	m.currentPage = page

	switch page.Kind {
	case cmd.PageResourceList:
		service := page.Service
		m.selectedService = &service
		m.selectedResource = ""
		// Returning to the same service keeps the existing list so the
		// row highlight and filter survive the round trip.
		if m.resourceList == nil || m.resourceList.Service() != service {
			m.resourceList = ui.NewResourceList(service)
			m.resourceList.SetMaxRows(m.store.Config().Display.MaxTableRows)
			if m.width > 0 {
				m.resourceList.SetWidth(m.width)
			}
		}
		if cached, ok := m.resources[service]; ok {
			m.resourceList.SetResources(cached)
			return nil
		}
		return tea.Batch(m.resourceList.StartLoading(), m.loadResources(service))
	case cmd.PageResourceDetail:
		service := page.Service
		m.selectedService = &service
		m.selectedResource = page.ResourceID
		if _, ok := m.resources[service]; !ok {
			return m.loadResources(service)
		}
		return nil
	case cmd.PageSettings:
		m.selectedService = nil
		m.selectedResource = ""
		return nil
	default:
		m.selectedService = nil
		m.selectedResource = ""
		m.dashboard.ClearSelection()
		return m.loadMissingCounts()
	}
}

// executeServiceCommand runs one service operation through the
// provider. The activity entry is recorded before the resource check
// so attempted commands show up in the history too.
func (m *home) executeServiceCommand(service aws.ServiceType, sc cmd.ServiceCommand) tea.Cmd {
	m.recordCommandActivity(service, sc)

	if sc.RequiresResource() && m.selectedResource == "" {
		m.notifications.Error(fmt.Sprintf("No %s selected", sc.ResourceNoun()))
		return nil
	}
	if err := m.provider.ExecuteAction(m.ctx, service, sc.Slug(), m.selectedResource); err != nil {
		log.ErrorLog.Printf("%s failed: %v", sc.DisplayName(), err)
		m.notifications.Error(fmt.Sprintf("%s failed: %v", sc.DisplayName(), err))
		return nil
	}
	m.notifications.Success(sc.ResultMessage())
	return nil
}

func (m *home) recordCommandActivity(service aws.ServiceType, sc cmd.ServiceCommand) {
	entry := config.ActivityEntry{
		Action:       fmt.Sprintf("Executed %s", sc.DisplayName()),
		ResourceID:   m.selectedResource,
		ResourceName: m.selectedResourceName(),
		Service:      service,
		Region:       m.currentRegion,
	}
	if err := m.appState.RecordActivity(entry); err != nil {
		log.WarningLog.Printf("failed to record activity: %v", err)
	}
}

func (m *home) selectedResourceName() string {
	if m.selectedResource == "" || m.selectedService == nil {
		return ""
	}
	for _, res := range m.resources[*m.selectedService] {
		if res.ID == m.selectedResource {
			return res.Name
		}
	}
	return m.selectedResource
}

func (m *home) toggleUIElement(el cmd.UIElement) {
	switch el {
	case cmd.UIProfileSelector:
		if m.profileSelector != nil {
			m.profileSelector = nil
			return
		}
		m.openProfileSelector()
	case cmd.UIRegionSelector:
		if m.regionSelector != nil {
			m.regionSelector = nil
			return
		}
		m.openRegionSelector()
	case cmd.UIHelp:
		m.helpVisible = !m.helpVisible
	case cmd.UISettings:
		m.settingsPanelVisible = !m.settingsPanelVisible
	}
}

func (m *home) openProfileSelector() {
	items := make([]ui.SelectorItem, 0, len(m.profiles))
	for _, profile := range m.profiles {
		items = append(items, ui.SelectorItem{
			Name:    profile.Name,
			Detail:  profile.Region,
			Current: profile.Name == m.currentProfile,
		})
	}
	selector := ui.NewSelector("Switch Profile", items)
	if m.width > 0 {
		selector.SetWidth(min(m.width-8, 60))
	}
	selector.OnSelect = func(name string) {
		m.overlayCmd = m.dispatch(cmd.SwitchProfileAction(name))
	}
	m.profileSelector = selector
}

func (m *home) openRegionSelector() {
	items := make([]ui.SelectorItem, 0, len(m.regions))
	for _, region := range m.regions {
		items = append(items, ui.SelectorItem{
			Name:    region.Name,
			Detail:  region.DisplayName,
			Current: region.Name == m.currentRegion,
		})
	}
	selector := ui.NewSelector("Switch Region", items)
	if m.width > 0 {
		selector.SetWidth(min(m.width-8, 60))
	}
	selector.OnSelect = func(name string) {
		m.overlayCmd = m.dispatch(cmd.SwitchRegionAction(name))
	}
	m.regionSelector = selector
}

// refreshCurrentPage reloads whatever the current page displays.
func (m *home) refreshCurrentPage() tea.Cmd {
	service, ok := m.currentPage.ServiceOnPage()
	if !ok {
		m.resources = make(map[aws.ServiceType][]aws.Resource)
		return m.loadMissingCounts()
	}
	delete(m.resources, service)
	if m.currentPage.Kind == cmd.PageResourceList && m.resourceList != nil {
		return tea.Batch(m.resourceList.StartLoading(), m.loadResources(service))
	}
	return m.loadResources(service)
}

func (m *home) toggleFavoriteSelected() {
	if !m.store.Config().Behavior.SaveFavorites {
		m.notifications.Warning("Favorites are disabled in settings")
		return
	}
	res, ok := m.visibleResource()
	if !ok {
		return
	}
	added, err := m.appState.ToggleFavorite(config.Favorite{
		ID:      res.ID,
		Name:    res.Name,
		Service: res.Service,
		Region:  res.Region,
		ARN:     res.ARN,
		Tags:    res.Tags,
	})
	if err != nil {
		log.ErrorLog.Printf("failed to save favorites: %v", err)
		m.notifications.Error(fmt.Sprintf("Failed to update favorites: %v", err))
		return
	}
	if added {
		m.notifications.Success(fmt.Sprintf("Added %s to favorites", res.Name))
		if err := m.appState.PruneFavorites(m.store.Config().Dashboard.MaxFavoriteItems); err != nil {
			log.WarningLog.Printf("failed to prune favorites: %v", err)
		}
		return
	}
	m.notifications.Info(fmt.Sprintf("Removed %s from favorites", res.Name))
}

func (m *home) copySelectedARN() {
	res, ok := m.visibleResource()
	if !ok || res.ARN == "" {
		return
	}
	if err := clipboard.WriteAll(res.ARN); err != nil {
		log.WarningLog.Printf("clipboard write failed: %v", err)
		m.notifications.Error("Failed to copy ARN to clipboard")
		return
	}
	m.notifications.Success("Copied ARN to clipboard")
}

// visibleResource is the resource the current page is focused on: the
// highlighted row on a list page, the opened resource on a detail page.
func (m *home) visibleResource() (aws.Resource, bool) {
	switch m.currentPage.Kind {
	case cmd.PageResourceList:
		if m.resourceList == nil {
			return aws.Resource{}, false
		}
		return m.resourceList.Selected()
	case cmd.PageResourceDetail:
		for _, res := range m.resources[m.currentPage.Service] {
			if res.ID == m.currentPage.ResourceID {
				return res, true
			}
		}
	}
	return aws.Resource{}, false
}

func (m *home) favoriteIDs() map[string]bool {
	ids := make(map[string]bool)
	for _, fav := range m.appState.Favorites() {
		ids[fav.ID] = true
	}
	return ids
}

// editListFilter opens a text input seeded with the current filter.
func (m *home) editListFilter() tea.Cmd {
	if m.currentPage.Kind != cmd.PageResourceList || m.resourceList == nil {
		return nil
	}
	input := overlay.NewTextInputOverlay("Filter Resources", m.resourceList.Filter())
	input.SetWidth(50)
	input.OnSubmit = func(value string) {
		m.resourceList.SetFilter(value)
		if err := m.appState.SetFilterQuery(value); err != nil {
			log.WarningLog.Printf("failed to save filter query: %v", err)
		}
	}
	m.textInputOverlay = input
	m.state = stateTextInput
	return input.Init()
}

// editSelectedSetting flips toggle fields in place and opens a text
// input for text fields. Text input is validated on a scratch copy
// before the store is touched.
func (m *home) editSelectedSetting() tea.Cmd {
	field := m.settingsPage.SelectedField()
	if field.Kind == ui.FieldToggle && field.Toggle != nil {
		if err := m.store.Update(func(c *config.UserConfig) { field.Toggle(c) }); err != nil {
			log.ErrorLog.Printf("failed to save config: %v", err)
			m.notifications.Error(fmt.Sprintf("Failed to save settings: %v", err))
			return nil
		}
		m.applyConfig()
		m.notifications.Success(fmt.Sprintf("%s updated", field.Label))
		return nil
	}
	if field.Value == nil || field.Apply == nil {
		return nil
	}

	input := overlay.NewTextInputOverlay(field.Label, field.Value(m.store.Config()))
	input.SetWidth(50)
	input.OnSubmit = func(value string) {
		scratch := m.store.Config()
		if err := field.Apply(&scratch, value); err != nil {
			m.notifications.Error(fmt.Sprintf("Invalid value for %s: %v", field.Label, err))
			return
		}
		if err := m.store.Update(func(c *config.UserConfig) { _ = field.Apply(c, value) }); err != nil {
			log.ErrorLog.Printf("failed to save config: %v", err)
			m.notifications.Error(fmt.Sprintf("Failed to save settings: %v", err))
			return
		}
		m.applyConfig()
		m.notifications.Success(fmt.Sprintf("%s updated", field.Label))
	}
	m.textInputOverlay = input
	m.state = stateTextInput
	return input.Init()
}

// applyConfig pushes the current config into every component that
// renders from it.
func (m *home) applyConfig() {
	cfg := m.store.Config()
	m.menu.SetShowHints(cfg.Display.ShowHelpBar)
	m.dashboard = ui.NewDashboard(cfg.Dashboard.EnabledWidgets)
	if m.width > 0 {
		m.dashboard.SetWidth(m.width)
	}
	if m.resourceList != nil {
		m.resourceList.SetMaxRows(cfg.Display.MaxTableRows)
	}
}

func (m *home) handleQuit() (tea.Model, tea.Cmd) {
	if m.store.Config().Behavior.RememberLastPage {
		if err := m.appState.SetLastContext(m.currentProfile, m.currentRegion, pageSlug(m.currentPage)); err != nil {
			log.WarningLog.Printf("failed to save last context: %v", err)
		}
	}
	m.persistUIState()
	if m.watcher != nil {
		if err := m.watcher.Close(); err != nil {
			log.WarningLog.Printf("failed to close config watcher: %v", err)
		}
	}
	if err := m.store.Close(); err != nil {
		log.WarningLog.Printf("failed to close config store: %v", err)
	}
	return m, tea.Quit
}

// persistUIState saves the list position so the next launch can
// restore it.
func (m *home) persistUIState() {
	if m.resourceList == nil {
		return
	}
	if err := m.appState.SetSelectedIndex(m.resourceList.SelectedIndex()); err != nil {
		log.WarningLog.Printf("failed to save selection: %v", err)
		return
	}
	if err := m.appState.SetFilterQuery(m.resourceList.Filter()); err != nil {
		log.WarningLog.Printf("failed to save filter: %v", err)
		return
	}
	if err := m.appState.SetLastService(m.resourceList.Service().Slug()); err != nil {
		log.WarningLog.Printf("failed to save last service: %v", err)
	}
}

func (m *home) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	cfg := m.store.Config()
	var sections []string
	if cfg.Display.ShowStatusBar {
		var latest string
		if n, ok := m.notifications.Latest(); ok {
			latest = n.Message
		}
		sections = append(sections, m.statusBar.Render(m.currentProfile, m.currentRegion, m.breadcrumb(), latest))
	}
	sections = append(sections, m.renderPage())
	sections = append(sections, m.menu.Render(m.menuKeys()...))
	view := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if _, ok := m.notifications.Latest(); ok {
		view = overlay.PlaceOverlay(m.width/5, 5, m.notifications.Render(), view, false, false)
	}

	// Overlays stack in reverse escape order: the surface escape would
	// close first renders last, on top.
	if m.regionSelector != nil {
		view = overlay.PlaceOverlay(0, 0, m.regionSelector.Render(), view, true, true)
	}
	if m.profileSelector != nil {
		view = overlay.PlaceOverlay(0, 0, m.profileSelector.Render(), view, true, true)
	}
	if m.settingsPanelVisible {
		view = overlay.PlaceOverlay(0, 0, m.settingsPage.Render(cfg), view, true, true)
	}
	if m.helpVisible {
		view = overlay.PlaceOverlay(0, 0, m.helpPanel.Render(), view, true, true)
	}
	if m.quickNav.IsVisible() {
		view = overlay.PlaceOverlay(0, 0, m.quickNav.Render(), view, true, true)
	}
	if m.palette.IsVisible() {
		view = overlay.PlaceOverlay(0, 0, m.paletteView.Render(m.palette), view, true, true)
	}
	if m.state == stateTextInput && m.textInputOverlay != nil {
		view = overlay.PlaceOverlay(0, 0, m.textInputOverlay.Render(), view, true, true)
	}
	if m.state == stateConfirm && m.confirmationOverlay != nil {
		view = overlay.PlaceOverlay(0, 0, m.confirmationOverlay.Render(), view, true, true)
	}
	if m.state == stateHelp && m.textOverlay != nil {
		view = overlay.PlaceOverlay(0, 0, m.textOverlay.Render(), view, true, true)
	}
	return view
}

func (m *home) renderPage() string {
	switch m.currentPage.Kind {
	case cmd.PageResourceList:
		if m.resourceList == nil {
			return ""
		}
		return m.resourceList.Render(m.favoriteIDs())
	case cmd.PageResourceDetail:
		if res, ok := m.visibleResource(); ok {
			return m.resourceDetail.Render(res)
		}
		return fmt.Sprintf("\n  Resource %s is not loaded.\n", m.currentPage.ResourceID)
	case cmd.PageSettings:
		return m.settingsPage.Render(m.store.Config())
	default:
		return m.dashboard.Render(m.dashboardData())
	}
}

func (m *home) dashboardData() ui.DashboardData {
	cfg := m.store.Config()
	counts := make(map[aws.ServiceType]int, len(m.resources))
	for service, resources := range m.resources {
		counts[service] = len(resources)
	}
	favorites := m.appState.Favorites()
	if limit := cfg.Dashboard.MaxFavoriteItems; limit > 0 && len(favorites) > limit {
		favorites = favorites[:limit]
	}
	return ui.DashboardData{
		Profile:        m.currentProfile,
		Region:         m.currentRegion,
		Favorites:      favorites,
		Activity:       m.appState.RecentActivities(cfg.Dashboard.MaxRecentItems),
		Regions:        m.regions,
		ResourceCounts: counts,
	}
}

// breadcrumb joins the page trail for the status bar, keeping only the
// last few hops so it fits.
func (m *home) breadcrumb() string {
	parts := make([]string, 0, len(m.pageHistory)+1)
	for _, page := range m.pageHistory {
		parts = append(parts, page.Title())
	}
	parts = append(parts, m.currentPage.Title())
	if len(parts) > 4 {
		parts = parts[len(parts)-4:]
	}
	return strings.Join(parts, " › ")
}

// menuKeys picks the bottom-bar hints for the current page.
func (m *home) menuKeys() []keys.KeyName {
	switch m.currentPage.Kind {
	case cmd.PageResourceList:
		return []keys.KeyName{
			keys.KeyPalette, keys.KeyQuickNav, keys.KeyEnter, keys.KeyFilter,
			keys.KeyFavorite, keys.KeyCopyARN, keys.KeyRefresh, keys.KeyEsc, keys.KeyHelp,
		}
	case cmd.PageResourceDetail:
		return []keys.KeyName{
			keys.KeyPalette, keys.KeyFavorite, keys.KeyCopyARN, keys.KeyEsc, keys.KeyHelp,
		}
	case cmd.PageSettings:
		return []keys.KeyName{
			keys.KeyUp, keys.KeyDown, keys.KeyEnter, keys.KeyEsc, keys.KeyHelp,
		}
	default:
		return []keys.KeyName{
			keys.KeyPalette, keys.KeyQuickNav, keys.KeyProfiles, keys.KeyRegions,
			keys.KeyTab, keys.KeySettings, keys.KeyHelp, keys.KeyQuit,
		}
	}
}
