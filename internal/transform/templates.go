package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rgehrsitz/finhealth/internal/domain"
	"github.com/shopspring/decimal"
)

// TemplateRegistry manages named what-if templates
type TemplateRegistry struct {
	templates map[string]Template
}

// Template is a named sequence of transforms
type Template struct {
	Name        string
	Category    string
	Description string
	Transforms  []Transform
}

// NewTemplateRegistry creates an empty template registry
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns the registered template names, sorted
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func pct(n int64) decimal.Decimal {
	return decimal.New(n, -2)
}

// Template categories, in help order
const (
	CategorySpending = "Spending"
	CategoryIncome   = "Income"
	CategoryDebt     = "Debt"
	CategoryReserves = "Reserves"
	CategoryCombined = "Combined Plans"
)

var categoryOrder = []string{CategorySpending, CategoryIncome, CategoryDebt, CategoryReserves, CategoryCombined}

// CreateBuiltInTemplates returns the common what-if plans
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()

	registry.Register(Template{
		Name:        "cut_discretionary_20",
		Category:    CategorySpending,
		Description: "Cut entertainment and other spending by 20%",
		Transforms:  []Transform{&ScaleExpense{Category: "discretionary", Factor: pct(80)}},
	})
	registry.Register(Template{
		Name:        "cut_discretionary_50",
		Category:    CategorySpending,
		Description: "Halve entertainment and other spending",
		Transforms:  []Transform{&ScaleExpense{Category: "discretionary", Factor: pct(50)}},
	})
	registry.Register(Template{
		Name:        "no_entertainment",
		Category:    CategorySpending,
		Description: "Drop entertainment spending entirely",
		Transforms:  []Transform{&ScaleExpense{Category: "entertainment", Factor: decimal.Zero}},
	})
	registry.Register(Template{
		Name:        "downsize_housing",
		Category:    CategorySpending,
		Description: "Move somewhere 25% cheaper",
		Transforms:  []Transform{&ScaleExpense{Category: "rent", Factor: pct(75)}},
	})

	registry.Register(Template{
		Name:        "raise_10",
		Category:    CategoryIncome,
		Description: "A 10% raise on all income",
		Transforms:  []Transform{&ScaleIncome{Factor: pct(110)}},
	})
	registry.Register(Template{
		Name:        "income_drop_20",
		Category:    CategoryIncome,
		Description: "Stress test: income falls by 20%",
		Transforms:  []Transform{&ScaleIncome{Factor: pct(80)}},
	})

	registry.Register(Template{
		Name:        "prepay_half",
		Category:    CategoryDebt,
		Description: "Prepay half the outstanding loan from savings",
		Transforms:  []Transform{&PrepayLoan{Fraction: pct(50), FromSavings: true}},
	})
	registry.Register(Template{
		Name:        "clear_loans",
		Category:    CategoryDebt,
		Description: "Loans fully repaid (EMI and outstanding go to zero)",
		Transforms:  []Transform{&PrepayLoan{Fraction: one}},
	})

	registry.Register(Template{
		Name:        "emergency_fund_6mo",
		Category:    CategoryReserves,
		Description: "Move savings into the emergency fund until it covers 6 months",
		Transforms:  []Transform{&FundEmergency{Months: 6, FromSavings: true}},
	})
	registry.Register(Template{
		Name:        "emergency_fund_9mo",
		Category:    CategoryReserves,
		Description: "Move savings into the emergency fund until it covers 9 months",
		Transforms:  []Transform{&FundEmergency{Months: 9, FromSavings: true}},
	})

	registry.Register(Template{
		Name:        "frugal",
		Category:    CategoryCombined,
		Description: "Halve discretionary spending, then build a 9 month emergency fund",
		Transforms: []Transform{
			&ScaleExpense{Category: "discretionary", Factor: pct(50)},
			&FundEmergency{Months: 9, FromSavings: true},
		},
	})
	registry.Register(Template{
		Name:        "debt_free",
		Category:    CategoryCombined,
		Description: "Prepay half the loan from savings, then cut discretionary spending by 20%",
		Transforms: []Transform{
			&PrepayLoan{Fraction: pct(50), FromSavings: true},
			&ScaleExpense{Category: "discretionary", Factor: pct(80)},
		},
	})

	return registry
}

// ApplyTemplate applies a template to a base snapshot
func ApplyTemplate(base domain.FinancialData, template Template) (domain.FinancialData, error) {
	return ApplyTransforms(base, template.Transforms)
}

// ApplyToProfile returns a new profile named after the template
func ApplyToProfile(base domain.Profile, template Template) (domain.Profile, error) {
	data, err := ApplyTemplate(base.Data, template)
	if err != nil {
		return domain.Profile{}, err
	}
	return domain.Profile{
		Name:        template.Name,
		Description: template.Description,
		Data:        data,
	}, nil
}

// Resolve turns a list of template names or transform specs into templates.
// An entry containing ':' is parsed as a single transform spec.
func Resolve(templates *TemplateRegistry, transforms *TransformRegistry, entries []string) ([]Template, error) {
	resolved := make([]Template, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(entry, ":") {
			t, err := transforms.ParseTransformSpec(entry)
			if err != nil {
				return nil, err
			}
			resolved = append(resolved, Template{Name: entry, Description: t.Description(), Transforms: []Transform{t}})
			continue
		}
		t, ok := templates.Get(entry)
		if !ok {
			return nil, fmt.Errorf("unknown template %s (available: %s)", entry, strings.Join(templates.List(), ", "))
		}
		resolved = append(resolved, t)
	}
	return resolved, nil
}

// ParseTemplateList parses a comma-separated list of template names
func ParseTemplateList(templateList string) []string {
	if templateList == "" {
		return nil
	}

	parts := strings.Split(templateList, ",")
	templates := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			templates = append(templates, trimmed)
		}
	}
	return templates
}

// GetTemplateHelp returns help text for all templates, grouped by category
func GetTemplateHelp(registry *TemplateRegistry) string {
	if len(registry.templates) == 0 {
		return "No templates registered"
	}

	byCategory := make(map[string][]Template)
	for _, name := range registry.List() {
		t := registry.templates[name]
		byCategory[t.Category] = append(byCategory[t.Category], t)
	}

	var sb strings.Builder
	sb.WriteString("Available Templates:\n\n")
	for _, category := range categoryOrder {
		templates := byCategory[category]
		if len(templates) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s:\n", category))
		for _, t := range templates {
			sb.WriteString(fmt.Sprintf("  %-24s %s\n", t.Name, t.Description))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Custom transforms: " + strings.Join(NewTransformRegistry().List(), ", ") + "\n\n")
	sb.WriteString("Usage:\n")
	sb.WriteString("  finhealth compare household.yaml --what-if cut_discretionary_20,raise_10\n")
	sb.WriteString("  finhealth compare household.yaml --what-if scale_expense:category=rent,factor=0.8\n")

	return sb.String()
}
