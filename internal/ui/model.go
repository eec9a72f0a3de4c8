package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"jtui/internal/domain"
	"jtui/internal/logging"
	"jtui/internal/ports"
	"jtui/internal/services"
	"jtui/internal/theme"
)

// uiState tracks which view the model is showing
type uiState int

const (
	stateBrowse  uiState = iota // issue list with status bar
	stateDetail                 // single issue with comments
	statePrompt                 // modal text prompt
	stateSession                // hosted terminal session
	stateHelp                   // keyboard shortcut reference
)

// sessionGrace is how long a terminated session gets to exit cleanly
// before it is killed.
const sessionGrace = 2 * time.Second

// ModelParams bundles the dependencies NewModel needs.
type ModelParams struct {
	Binary          string
	DevMode         bool
	ErrorClearDelay time.Duration
	Host            ports.SessionHost
	Issues          *services.IssueService
	KeyMap          KeyMap
	Status          *services.StatusMonitor
}

// Model is the root Bubble Tea model. All state lives here and is only
// mutated from Update, so workers communicate exclusively through messages.
type Model struct {
	binary       string
	detail       *DetailView
	devMode      bool
	dialog       *Dialog
	errorManager *ErrorManager
	height       int
	helpScreen   *HelpScreen
	host         ports.SessionHost
	issues       *services.IssueService
	issueList    *IssueList
	keys         KeyMap
	notice       string
	pending      [slotCount]bool
	prevState    uiState
	prompt       promptKind
	promptIssue  string
	session      *SessionView
	spinner      spinner.Model
	state        uiState
	status       domain.AuthStatus
	statusSvc    *services.StatusMonitor
	tracker      slotTracker
	width        int
}

// NewModel creates the root model.
func NewModel(params ModelParams) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.SpinnerStyle

	return &Model{
		binary:       params.Binary,
		detail:       NewDetailView(),
		devMode:      params.DevMode,
		errorManager: NewErrorManager(params.ErrorClearDelay),
		host:         params.Host,
		issues:       params.Issues,
		issueList:    NewIssueList(),
		keys:         params.KeyMap,
		spinner:      sp,
		state:        stateBrowse,
		statusSvc:    params.Status,
	}
}

// Init kicks off the first status check and issue load.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.dispatchStatusCheck(),
		m.dispatchMyIssues(),
	)
}

// dispatchStatusCheck issues a fresh authentication check.
func (m *Model) dispatchStatusCheck() tea.Cmd {
	seq := m.tracker.Issue(slotStatus)
	m.pending[slotStatus] = true
	return checkStatusCmd(m.statusSvc, seq)
}

// dispatchMyIssues issues a list query for the current user's issues.
func (m *Model) dispatchMyIssues() tea.Cmd {
	seq := m.tracker.Issue(slotList)
	m.pending[slotList] = true
	return listIssuesCmd(m.issues, seq, "My Issues", m.issues.MyIssuesCommand())
}

// dispatchSearch issues a JQL list query.
func (m *Model) dispatchSearch(jql string) tea.Cmd {
	seq := m.tracker.Issue(slotList)
	m.pending[slotList] = true
	return listIssuesCmd(m.issues, seq, "Search Results", m.issues.SearchCommand(jql))
}

// dispatchView issues a detail query for one issue.
func (m *Model) dispatchView(issueKey string) tea.Cmd {
	seq := m.tracker.Issue(slotDetail)
	m.pending[slotDetail] = true
	return viewIssueCmd(m.issues, seq, issueKey)
}

// startSession launches an interactive jira subcommand on the pty host.
func (m *Model) startSession(title string, args ...string) tea.Cmd {
	full := append([]string{m.binary}, args...)
	if err := m.host.Start(full, ""); err != nil {
		return m.reportError(err)
	}

	m.session = NewSessionView(title)
	m.session.SetSize(m.width, m.sessionHeight())
	m.resizeHostPty()
	m.prevState = m.state
	m.state = stateSession

	return tea.Batch(
		waitForSessionOutput(m.host),
		waitForSessionExit(m.host),
	)
}

// quit stops the program. A live session is terminated first and its exit
// awaited off the event loop, so the kill escalation runs to completion
// before the process goes away and no child outlives the UI.
func (m *Model) quit() tea.Cmd {
	if m.host.State() == ports.SessionIdle {
		return tea.Quit
	}
	host := m.host
	exited := host.Done()
	return func() tea.Msg {
		host.Terminate(sessionGrace)
		select {
		case <-exited:
		case <-time.After(sessionGrace + time.Second):
		}
		return tea.Quit()
	}
}

// gateIssueActions blocks issue actions while the external tool cannot
// serve them, pointing at the setup flow instead.
func (m *Model) gateIssueActions() tea.Cmd {
	switch m.status.State {
	case domain.AuthNotInstalled:
		return m.reportError(errors.New("jira binary not found, install jira-cli first"))
	case domain.AuthNotConfigured:
		return m.reportError(fmt.Errorf("jira is not configured, press %s to run jira init", m.keys.Setup.Help().Key))
	}
	return nil
}

// reportError records an error for display and schedules its clearing.
func (m *Model) reportError(err error) tea.Cmd {
	logging.Logger.Error("UI error", "error", err)
	m.errorManager.SetError(err)
	return m.errorManager.ClearAfterDelay()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		if m.state == stateSession {
			m.resizeHostPty()
		}
		if m.helpScreen != nil {
			m.helpScreen.SetSize(msg.Width, msg.Height)
		}
		if m.dialog != nil {
			var cmd tea.Cmd
			_, cmd = m.dialog.Update(msg)
			return m, cmd
		}
		return m, nil

	case spinner.TickMsg:
		if !m.anyPending() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case clearErrorMsg:
		m.errorManager.ClearError()
		return m, nil

	case authStatusMsg:
		if !m.tracker.Current(slotStatus, msg.seq) {
			return m, nil // superseded by a later check
		}
		m.pending[slotStatus] = false
		m.status = msg.status
		logging.Logger.Info("Auth status updated",
			"state", msg.status.State.String(),
			"detail", msg.status.Detail)
		return m, nil

	case issueListMsg:
		if !m.tracker.Current(slotList, msg.seq) {
			return m, nil
		}
		m.pending[slotList] = false
		if msg.err != nil {
			return m, m.reportError(msg.err)
		}
		m.issueList.SetIssues(msg.title, msg.issues)
		m.notice = ""
		if m.state == stateDetail {
			m.state = stateBrowse
		}
		return m, nil

	case issueDetailMsg:
		if !m.tracker.Current(slotDetail, msg.seq) {
			return m, nil
		}
		m.pending[slotDetail] = false
		if msg.err != nil {
			return m, m.reportError(msg.err)
		}
		m.detail.SetDetail(msg.detail)
		if m.state == stateBrowse {
			m.state = stateDetail
		}
		return m, nil

	case commentAddedMsg:
		if msg.err != nil {
			return m, m.reportError(msg.err)
		}
		m.notice = fmt.Sprintf("Comment added to %s", msg.key)
		if m.state == stateDetail && m.detail.Key() == msg.key {
			return m, m.dispatchView(msg.key)
		}
		return m, nil

	case transitionDoneMsg:
		if msg.err != nil {
			return m, m.reportError(msg.err)
		}
		m.notice = fmt.Sprintf("%s moved to %s", msg.key, msg.state)
		cmds := []tea.Cmd{m.dispatchMyIssues()}
		if m.state == stateDetail && m.detail.Key() == msg.key {
			cmds = append(cmds, m.dispatchView(msg.key))
		}
		return m, tea.Batch(cmds...)

	case sessionOutputMsg:
		if m.session != nil {
			m.session.Append(msg.chunk)
		}
		return m, waitForSessionOutput(m.host)

	case sessionExitMsg:
		return m.handleSessionExit(msg.exit)
	}

	switch m.state {
	case stateBrowse:
		return m.updateBrowse(msg)
	case stateDetail:
		return m.updateDetail(msg)
	case statePrompt:
		return m.updatePrompt(msg)
	case stateSession:
		return m.updateSession(msg)
	case stateHelp:
		return m.updateHelp(msg)
	}
	return m, nil
}

// updateBrowse handles input while the issue list is showing.
func (m *Model) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.issueList.Update(msg)
	}

	// While the list filter is active, everything belongs to the filter.
	if m.issueList.Filtering() {
		return m, m.issueList.Update(msg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.ForceQuit), key.Matches(keyMsg, m.keys.Quit):
		return m, m.quit()

	case key.Matches(keyMsg, m.keys.Help):
		m.helpScreen = NewHelpScreen(&m.keys)
		m.helpScreen.SetSize(m.width, m.height)
		m.prevState = m.state
		m.state = stateHelp
		return m, nil

	case key.Matches(keyMsg, m.keys.MyIssues):
		if cmd := m.gateIssueActions(); cmd != nil {
			return m, cmd
		}
		return m, tea.Batch(m.dispatchMyIssues(), m.spinner.Tick)

	case key.Matches(keyMsg, m.keys.RefreshStatus):
		return m, tea.Batch(m.dispatchStatusCheck(), m.spinner.Tick)

	case key.Matches(keyMsg, m.keys.Search):
		if cmd := m.gateIssueActions(); cmd != nil {
			return m, cmd
		}
		return m.openPrompt(promptSearch, "Search Issues", NewSearchForm())

	case key.Matches(keyMsg, m.keys.View):
		issue, ok := m.issueList.Selected()
		if !ok {
			return m, nil
		}
		return m, tea.Batch(m.dispatchView(issue.Key), m.spinner.Tick)

	case key.Matches(keyMsg, m.keys.Comment):
		issue, ok := m.issueList.Selected()
		if !ok {
			return m, nil
		}
		m.promptIssue = issue.Key
		return m.openPrompt(promptComment, "Add Comment", NewCommentForm(issue.Key))

	case key.Matches(keyMsg, m.keys.Transition):
		issue, ok := m.issueList.Selected()
		if !ok {
			return m, nil
		}
		m.promptIssue = issue.Key
		return m.openPrompt(promptTransition, "Transition Issue", NewTransitionForm(issue.Key))

	case key.Matches(keyMsg, m.keys.Create):
		if cmd := m.gateIssueActions(); cmd != nil {
			return m, cmd
		}
		return m, m.startSession("jira issue create", "issue", "create")

	case key.Matches(keyMsg, m.keys.Setup):
		return m, m.startSession("jira init", "init")
	}

	return m, m.issueList.Update(msg)
}

// updateDetail handles input while an issue detail is showing.
func (m *Model) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.detail.Update(msg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.ForceQuit), key.Matches(keyMsg, m.keys.Quit):
		return m, m.quit()

	case key.Matches(keyMsg, m.keys.Back):
		m.state = stateBrowse
		return m, nil

	case key.Matches(keyMsg, m.keys.Help):
		m.helpScreen = NewHelpScreen(&m.keys)
		m.helpScreen.SetSize(m.width, m.height)
		m.prevState = m.state
		m.state = stateHelp
		return m, nil

	case key.Matches(keyMsg, m.keys.Comment):
		m.promptIssue = m.detail.Key()
		return m.openPrompt(promptComment, "Add Comment", NewCommentForm(m.detail.Key()))

	case key.Matches(keyMsg, m.keys.Transition):
		m.promptIssue = m.detail.Key()
		return m.openPrompt(promptTransition, "Transition Issue", NewTransitionForm(m.detail.Key()))
	}

	return m, m.detail.Update(msg)
}

// openPrompt shows a modal prompt form wrapped in a dialog.
func (m *Model) openPrompt(kind promptKind, title string, form *PromptForm) (tea.Model, tea.Cmd) {
	m.prompt = kind
	m.dialog = NewDialog(title, form, m.devMode)
	m.prevState = m.state
	m.state = statePrompt
	return m, m.dialog.Init()
}

// updatePrompt forwards input to the active prompt and dispatches the
// matching query when the form completes.
func (m *Model) updatePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.dialog == nil {
		m.state = m.prevState
		return m, nil
	}

	_, cmd := m.dialog.Update(msg)

	form, ok := m.dialog.Content().(*PromptForm)
	if !ok || !form.Completed {
		return m, cmd
	}

	kind := m.prompt
	issueKey := m.promptIssue
	result := form.Result()
	m.dialog = nil
	m.prompt = promptNone
	m.promptIssue = ""
	m.state = m.prevState

	if result.Cancelled {
		return m, nil
	}

	switch kind {
	case promptSearch:
		return m, tea.Batch(m.dispatchSearch(result.Query), m.spinner.Tick)
	case promptComment:
		return m, addCommentCmd(m.issues, issueKey, result.Body)
	case promptTransition:
		return m, transitionIssueCmd(m.issues, issueKey, result.State)
	}
	return m, nil
}

// updateSession forwards key presses to the hosted process. The detach
// binding is the only key the application keeps for itself.
func (m *Model) updateSession(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, m.keys.Detach) {
		m.host.Terminate(sessionGrace)
		return m, nil
	}

	if b := keyMsgToBytes(keyMsg); b != nil {
		if err := m.host.Write(b); err != nil {
			return m, m.reportError(err)
		}
	}
	return m, nil
}

// updateHelp forwards input to the help screen until it closes.
func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.helpScreen == nil {
		m.state = m.prevState
		return m, nil
	}

	_, cmd := m.helpScreen.Update(msg)
	if m.helpScreen.Completed {
		m.helpScreen = nil
		m.state = m.prevState
	}
	return m, cmd
}

// handleSessionExit returns to the previous view and refreshes whatever
// the finished command may have changed.
func (m *Model) handleSessionExit(exit ports.SessionExit) (tea.Model, tea.Cmd) {
	m.session = nil
	if m.state == stateSession {
		m.state = stateBrowse
	}

	logging.Logger.Info("Session finished",
		"code", exit.Code,
		"force_killed", exit.ForceKilled)

	var cmds []tea.Cmd
	switch {
	case exit.ForceKilled:
		cmds = append(cmds, m.reportError(&domain.SessionError{Kind: domain.SessionForceKilled}))
	case exit.Code != 0:
		cmds = append(cmds, m.reportError(fmt.Errorf("session exited with code %d", exit.Code)))
	}

	// jira init may have changed credentials; creation may have added
	// issues. Refresh both either way.
	cmds = append(cmds, m.dispatchStatusCheck(), m.dispatchMyIssues(), m.spinner.Tick)
	return m, tea.Batch(cmds...)
}

func (m *Model) anyPending() bool {
	for _, p := range m.pending {
		if p {
			return true
		}
	}
	return false
}

// layout distributes the terminal space among the active components.
func (m *Model) layout() {
	contentHeight := m.height - 4 // header, status line, footer
	if contentHeight < 3 {
		contentHeight = 3
	}
	m.issueList.SetSize(m.width, contentHeight)
	m.detail.SetSize(m.width, contentHeight)
	if m.session != nil {
		m.session.SetSize(m.width, m.sessionHeight())
	}
}

func (m *Model) sessionHeight() int {
	h := m.height - 2 // title line and footer hint
	if h < 3 {
		h = 3
	}
	return h
}

func (m *Model) resizeHostPty() {
	if m.width > 0 && m.height > 2 {
		if err := m.host.Resize(m.width, m.sessionHeight()); err != nil {
			logging.Logger.Warn("Failed to resize session pty", "error", err)
		}
	}
}

func (m *Model) View() string {
	switch m.state {
	case statePrompt:
		if m.dialog != nil {
			return m.dialog.View()
		}
	case stateHelp:
		if m.helpScreen != nil {
			return renderDialogHeader(m.devMode, "Keyboard Shortcuts") + m.helpScreen.View()
		}
	case stateSession:
		if m.session != nil {
			title := theme.PaneTitleStyle.Render(m.session.Title())
			hint := theme.HelpStyle.Render(m.keys.Detach.Help().Key + " to end session")
			return title + "\n" + m.session.View() + "\n" + hint
		}
	case stateDetail:
		return m.viewChrome(m.detail.View())
	}
	return m.viewChrome(m.issueList.View())
}

// viewChrome wraps content with the header, status line and footer.
func (m *Model) viewChrome(content string) string {
	var b strings.Builder
	b.WriteString(renderHeader(m.devMode, ""))
	b.WriteString(m.renderStatusLine())
	b.WriteString("\n")
	b.WriteString(content)
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderStatusLine shows the authentication state, any transient notice
// and the current error.
func (m *Model) renderStatusLine() string {
	var status string
	if m.pending[slotStatus] {
		status = m.spinner.View() + theme.CheckingStyle.Render(" checking jira...")
	} else {
		switch m.status.State {
		case domain.AuthReady:
			status = theme.ReadyStyle.Render("● " + m.status.Detail)
		case domain.AuthNotConfigured:
			status = theme.NotConfiguredStyle.Render("◐ not configured, press " + m.keys.Setup.Help().Key + " to run jira init")
		case domain.AuthNotInstalled:
			status = theme.NotInstalledStyle.Render("✗ jira binary not found")
		case domain.AuthError:
			status = theme.NotInstalledStyle.Render("✗ " + m.status.Detail)
		default:
			status = theme.CheckingStyle.Render("… status unknown")
		}
	}

	if m.pending[slotList] || m.pending[slotDetail] {
		status += "  " + m.spinner.View() + theme.MutedStyle.Render(" loading")
	}

	if m.errorManager.HasError() {
		status += "\n" + theme.ErrorStyle.Render(formatErrorForDisplay(m.errorManager.GetError(), m.width))
	} else if m.notice != "" {
		status += "\n" + theme.MutedStyle.Render(m.notice)
	}

	return status
}

// renderFooter shows the short help bar.
func (m *Model) renderFooter() string {
	parts := make([]string, 0, 8)
	for _, b := range m.keys.ShortHelp() {
		parts = append(parts, theme.HelpKeyStyle.Width(0).Render(b.Help().Key)+" "+theme.HelpDescStyle.Render(b.Help().Desc))
	}
	return theme.HelpStyle.Render(strings.Join(parts, "  "))
}
