package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/finhealth/internal/config"
	"github.com/rgehrsitz/finhealth/internal/domain"
	"github.com/rgehrsitz/finhealth/internal/tui/components"
	"github.com/rgehrsitz/finhealth/internal/tui/tuimsg"
	"github.com/rgehrsitz/finhealth/internal/tui/tuistyles"
)

type formField struct {
	label string
	ref   func(*domain.FinancialData) *decimal.Decimal
	input textinput.Model
}

type formStep struct {
	title       string
	description string
	fields      []formField
}

// FormModel collects a FinancialData snapshot over four steps
type FormModel struct {
	steps     []formStep
	step      int
	focus     int
	submitted bool
	progress  *components.ProgressBar
	width     int
	height    int
}

func NewFormModel() *FormModel {
	m := &FormModel{
		steps: []formStep{
			{
				title:       "Income",
				description: "What are your earnings?",
				fields: []formField{
					newField("Monthly Income", func(d *domain.FinancialData) *decimal.Decimal { return &d.Income.Monthly }),
					newField("Other Income", func(d *domain.FinancialData) *decimal.Decimal { return &d.Income.Other }),
				},
			},
			{
				title:       "Expenses",
				description: "Where does your money go?",
				fields: []formField{
					newField("Rent / Housing", func(d *domain.FinancialData) *decimal.Decimal { return &d.Expenses.Rent }),
					newField("Food & Groceries", func(d *domain.FinancialData) *decimal.Decimal { return &d.Expenses.Food }),
					newField("Transport", func(d *domain.FinancialData) *decimal.Decimal { return &d.Expenses.Transport }),
					newField("Utilities", func(d *domain.FinancialData) *decimal.Decimal { return &d.Expenses.Utilities }),
					newField("Entertainment", func(d *domain.FinancialData) *decimal.Decimal { return &d.Expenses.Entertainment }),
					newField("Others", func(d *domain.FinancialData) *decimal.Decimal { return &d.Expenses.Others }),
				},
			},
			{
				title:       "Loans",
				description: "Do you have any debts?",
				fields: []formField{
					newField("Monthly EMI Amount", func(d *domain.FinancialData) *decimal.Decimal { return &d.Loans.EMI }),
					newField("Total Loan Outstanding", func(d *domain.FinancialData) *decimal.Decimal { return &d.Loans.Outstanding }),
				},
			},
			{
				title:       "Savings",
				description: "How much have you saved?",
				fields: []formField{
					newField("Current Savings", func(d *domain.FinancialData) *decimal.Decimal { return &d.Savings.Current }),
					newField("Emergency Fund", func(d *domain.FinancialData) *decimal.Decimal { return &d.Savings.EmergencyFund }),
				},
			},
		},
	}
	m.progress = components.NewProgressBar(len(m.steps)).WithWidth(32)
	m.progress.Update(1)
	m.focusCurrent()
	return m
}

func newField(label string, ref func(*domain.FinancialData) *decimal.Decimal) formField {
	ti := textinput.New()
	ti.Placeholder = "0.00"
	ti.Prompt = "₹ "
	ti.CharLimit = 18
	ti.Width = 18
	return formField{label: label, ref: ref, input: ti}
}

// Init starts the cursor blinking
func (m *FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// SetData prefills every field; zero amounts are left blank
func (m *FormModel) SetData(data domain.FinancialData) {
	for s := range m.steps {
		for f := range m.steps[s].fields {
			field := &m.steps[s].fields[f]
			v := *field.ref(&data)
			if v.IsZero() {
				field.input.SetValue("")
				continue
			}
			field.input.SetValue(v.String())
		}
	}
}

// Data reads the form. Blank or unparsable fields count as zero.
func (m *FormModel) Data() domain.FinancialData {
	var data domain.FinancialData
	for _, st := range m.steps {
		for _, f := range st.fields {
			*f.ref(&data) = config.ParseAmount(f.input.Value())
		}
	}
	return data
}

// Reset returns to the first step and allows another submission. Field
// values are kept so the next analysis starts from the last one.
func (m *FormModel) Reset() tea.Cmd {
	m.step = 0
	m.focus = 0
	m.submitted = false
	m.progress.Update(1)
	return m.focusCurrent()
}

// PrevStep goes back one step; it reports false on the first step
func (m *FormModel) PrevStep() bool {
	if m.step == 0 || m.submitted {
		return false
	}
	m.step--
	m.focus = 0
	m.progress.Update(m.step + 1)
	m.focusCurrent()
	return true
}

func (m *FormModel) Step() int       { return m.step }
func (m *FormModel) StepCount() int  { return len(m.steps) }
func (m *FormModel) Submitted() bool { return m.submitted }

func (m *FormModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the form scene
func (m *FormModel) Update(msg tea.Msg) (*FormModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.updateFocused(msg)
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("tab", "down"))):
		m.moveFocus(1)
		return m, m.focusCurrent()

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("shift+tab", "up"))):
		m.moveFocus(-1)
		return m, m.focusCurrent()

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter"))):
		return m, m.advance()
	}

	return m, m.updateFocused(msg)
}

func (m *FormModel) advance() tea.Cmd {
	if m.submitted {
		return nil
	}
	if m.step < len(m.steps)-1 {
		m.step++
		m.focus = 0
		m.progress.Update(m.step + 1)
		return m.focusCurrent()
	}

	m.submitted = true
	m.blurAll()
	data := m.Data()
	return func() tea.Msg {
		return tuimsg.SubmitMsg{Data: data}
	}
}

func (m *FormModel) moveFocus(delta int) {
	n := len(m.steps[m.step].fields)
	m.focus = (m.focus + delta + n) % n
}

func (m *FormModel) focusCurrent() tea.Cmd {
	m.blurAll()
	return m.steps[m.step].fields[m.focus].input.Focus()
}

func (m *FormModel) blurAll() {
	for s := range m.steps {
		for f := range m.steps[s].fields {
			m.steps[s].fields[f].input.Blur()
		}
	}
}

func (m *FormModel) updateFocused(msg tea.Msg) tea.Cmd {
	if m.submitted {
		return nil
	}
	field := &m.steps[m.step].fields[m.focus]
	var cmd tea.Cmd
	field.input, cmd = field.input.Update(msg)
	return cmd
}

// View renders the form scene
func (m *FormModel) View() string {
	st := m.steps[m.step]

	var stepper []string
	for i, s := range m.steps {
		label := fmt.Sprintf("%d %s", i+1, s.title)
		switch {
		case i < m.step:
			stepper = append(stepper, tuistyles.MetricPositiveStyle.Render("✓ "+s.title))
		case i == m.step:
			stepper = append(stepper, tuistyles.SelectedItemStyle.Render(label))
		default:
			stepper = append(stepper, tuistyles.UnselectedItemStyle.Render(label))
		}
	}

	var fields strings.Builder
	for i, f := range st.fields {
		label := tuistyles.FieldLabelStyle.Render(f.label)
		if i == m.focus {
			label = tuistyles.FieldLabelStyle.Foreground(tuistyles.ColorPrimary).Bold(true).Render(f.label)
		}
		fields.WriteString(label + " " + f.input.View())
		if i < len(st.fields)-1 {
			fields.WriteString("\n")
		}
	}

	action := "Enter: next step"
	if m.step == len(m.steps)-1 {
		action = "Enter: see results"
	}

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		strings.Join(stepper, "  →  "),
		m.progress.Render(),
		"",
		tuistyles.TitleStyle.Render(st.title),
		tuistyles.SubtitleStyle.Render(st.description),
		"",
		fields.String(),
	)

	help := tuistyles.HelpDescStyle.Render("Tab/↑/↓: move • " + action + " • Esc: previous step")

	return lipgloss.JoinVertical(lipgloss.Left, tuistyles.ActiveBorderStyle.Render(body), help)
}
