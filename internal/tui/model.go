package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/finhealth/internal/advisor"
	"github.com/rgehrsitz/finhealth/internal/calculation"
	"github.com/rgehrsitz/finhealth/internal/config"
	"github.com/rgehrsitz/finhealth/internal/domain"
	"github.com/rgehrsitz/finhealth/internal/tui/scenes"
)

// Options configures a new Model
type Options struct {
	SnapshotPath string // optional file used to prefill the form
	Profile      string // profile within SnapshotPath; empty selects the first
	Evaluator    *calculation.HealthEvaluator
	Advisor      advisor.Advisor
	Logger       calculation.Logger
}

// Model represents the entire application state
type Model struct {
	currentScene  Scene
	previousScene Scene

	width  int
	height int

	snapshotPath string
	profileName  string

	evaluator *calculation.HealthEvaluator
	advisor   advisor.Advisor
	logger    calculation.Logger

	// Last submitted snapshot and its result
	data        domain.FinancialData
	result      *domain.FinancialResult
	evaluations int

	form      *scenes.FormModel
	dashboard *scenes.DashboardModel
	chat      *scenes.ChatModel

	err error

	loading        bool
	loadingMessage string
}

// NewModel creates a new application model
func NewModel(opts Options) Model {
	evaluator := opts.Evaluator
	if evaluator == nil {
		evaluator = calculation.NewHealthEvaluator()
	}
	adv := opts.Advisor
	if adv == nil {
		adv = advisor.Disabled{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = calculation.NopLogger{}
	}

	m := Model{
		currentScene: SceneForm,
		snapshotPath: opts.SnapshotPath,
		profileName:  opts.Profile,
		evaluator:    evaluator,
		advisor:      adv,
		logger:       logger,
		form:         scenes.NewFormModel(),
		dashboard:    scenes.NewDashboardModel(),
		chat:         scenes.NewChatModel(nil),
		width:        80,
		height:       24,
	}
	if opts.SnapshotPath != "" {
		m.loading = true
		m.loadingMessage = "Loading snapshot..."
	}
	return m
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	if m.snapshotPath != "" {
		return tea.Batch(m.form.Init(), loadSnapshotCmd(m.snapshotPath, m.profileName))
	}
	return m.form.Init()
}

// loadSnapshotCmd reads one profile from a snapshot file
func loadSnapshotCmd(path, profile string) tea.Cmd {
	return func() tea.Msg {
		p, err := config.NewInputParser().LoadProfile(path, profile)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return SnapshotLoadedMsg{ProfileName: p.Name, Data: p.Data}
	}
}

// evaluate scores a submitted snapshot and opens a fresh chat session on it
func (m Model) evaluate(data domain.FinancialData) Model {
	m.data = data
	m.result = m.evaluator.Evaluate(data)
	m.evaluations++
	m.logger.Debugf("evaluated snapshot: score=%d risk=%s", m.result.Score, m.result.RiskLevel)

	m.dashboard.SetResult(m.profileName, data, m.result)

	session := advisor.NewSession(m.advisor, data, m.result)
	session.SetLogger(m.logger)
	m.chat = scenes.NewChatModel(session)
	m.resize()
	return m
}

func (m *Model) resize() {
	h := m.height - 4
	if h < 5 {
		h = 5
	}
	m.form.SetSize(m.width, h)
	m.dashboard.SetSize(m.width, h)
	m.chat.SetSize(m.width, h)
}

// Result returns the last evaluation, or nil before the first submission
func (m Model) Result() *domain.FinancialResult { return m.result }

// Evaluations counts completed submissions
func (m Model) Evaluations() int { return m.evaluations }

func (m Model) CurrentScene() Scene { return m.currentScene }

// String returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneForm:
		return "New Analysis"
	case SceneDashboard:
		return "Dashboard"
	case SceneChat:
		return "Advisor"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
