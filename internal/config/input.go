package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/rgehrsitz/finhealth/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of snapshot files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads profiles from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	return ip.Parse(data)
}

// Parse decodes and validates snapshot file contents
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// LoadProfile loads a file and returns the named profile.
// An empty name selects the first profile in the file.
func (ip *InputParser) LoadProfile(filename, name string) (*domain.Profile, error) {
	config, err := ip.LoadFromFile(filename)
	if err != nil {
		return nil, err
	}

	profile, ok := config.FindProfile(name)
	if !ok {
		return nil, fmt.Errorf("profile %q not found in %s (available: %s)",
			name, filename, strings.Join(config.ProfileNames(), ", "))
	}
	return profile, nil
}

// ValidateConfiguration checks the file structure. Amounts are not
// range-checked: any number, including zero or negative, is a valid entry.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config == nil {
		return fmt.Errorf("configuration is required")
	}
	if len(config.Profiles) == 0 {
		return fmt.Errorf("no profiles provided")
	}

	seen := make(map[string]int, len(config.Profiles))
	for i, profile := range config.Profiles {
		if err := ip.validateProfile(&profile); err != nil {
			return fmt.Errorf("profile %d validation failed: %w", i, err)
		}
		if prev, dup := seen[profile.Name]; dup {
			return fmt.Errorf("profile %d: duplicate name %q (first used by profile %d)", i, profile.Name, prev)
		}
		seen[profile.Name] = i
	}

	return nil
}

// validateProfile validates a single profile
func (ip *InputParser) validateProfile(profile *domain.Profile) error {
	if strings.TrimSpace(profile.Name) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// CreateExampleConfiguration returns a two-profile example file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Profiles: []domain.Profile{
			{
				Name:        "Base",
				Description: "Current household budget",
				Data: domain.FinancialData{
					Income: domain.Income{
						Monthly: decimal.NewFromInt(100000),
						Other:   decimal.Zero,
					},
					Expenses: domain.Expenses{
						Rent:          decimal.NewFromInt(20000),
						Food:          decimal.NewFromInt(5000),
						Transport:     decimal.NewFromInt(3000),
						Utilities:     decimal.NewFromInt(2000),
						Entertainment: decimal.NewFromInt(2000),
						Others:        decimal.NewFromInt(3000),
					},
					Loans: domain.Loans{
						EMI:         decimal.NewFromInt(10000),
						Outstanding: decimal.NewFromInt(200000),
					},
					Savings: domain.Savings{
						Current:       decimal.NewFromInt(50000),
						EmergencyFund: decimal.NewFromInt(300000),
					},
				},
			},
			{
				Name:        "Stretched",
				Description: "Higher rent and a new car loan",
				Data: domain.FinancialData{
					Income: domain.Income{
						Monthly: decimal.NewFromInt(100000),
						Other:   decimal.NewFromInt(5000),
					},
					Expenses: domain.Expenses{
						Rent:          decimal.NewFromInt(35000),
						Food:          decimal.NewFromInt(9000),
						Transport:     decimal.NewFromInt(6000),
						Utilities:     decimal.NewFromInt(3000),
						Entertainment: decimal.NewFromInt(8000),
						Others:        decimal.NewFromInt(4000),
					},
					Loans: domain.Loans{
						EMI:         decimal.NewFromInt(25000),
						Outstanding: decimal.NewFromInt(900000),
					},
					Savings: domain.Savings{
						Current:       decimal.NewFromInt(40000),
						EmergencyFund: decimal.NewFromInt(60000),
					},
				},
			},
		},
	}
}

// SaveConfiguration writes a configuration as YAML
func SaveConfiguration(config *domain.Configuration, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// leadingNumber matches the numeric prefix of form text, as a browser's
// parseFloat would read it
var leadingNumber = regexp.MustCompile(`^([+-]?)(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseAmount converts form text to an amount. Digit-grouping commas are
// dropped, then the leading number is read and anything after it ignored.
// Text with no leading number counts as zero so a half-filled form still
// evaluates.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	m := leadingNumber.FindStringSubmatch(s)
	if m == nil {
		return decimal.Zero
	}

	sign, mantissa, exponent := m[1], m[2], m[3]
	if sign == "+" {
		sign = ""
	}
	if strings.HasPrefix(mantissa, ".") {
		mantissa = "0" + mantissa
	}
	mantissa = strings.TrimSuffix(mantissa, ".")

	v, err := decimal.NewFromString(sign + mantissa + exponent)
	if err != nil {
		return decimal.Zero
	}
	return v
}
