package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// TransformRegistry builds transforms from string parameters, for the CLI
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// TransformFactory creates a transform from parameters
type TransformFactory func(params map[string]string) (Transform, error)

// NewTransformRegistry creates a registry with every built-in transform
func NewTransformRegistry() *TransformRegistry {
	registry := &TransformRegistry{
		factories: make(map[string]TransformFactory),
	}

	registry.Register("scale_expense", createScaleExpense)
	registry.Register("scale_income", createScaleIncome)
	registry.Register("prepay_loan", createPrepayLoan)
	registry.Register("fund_emergency", createFundEmergency)

	return registry
}

// Register adds a transform factory to the registry
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create creates a transform by name with the given parameters
func (r *TransformRegistry) Create(name string, params map[string]string) (Transform, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}
	return factory(params)
}

// List returns the registered transform names, sorted
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTransformSpec parses "name:param1=value1,param2=value2".
// Example: "scale_expense:category=rent,factor=0.8"
func (r *TransformRegistry) ParseTransformSpec(spec string) (Transform, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid transform spec format, expected 'name:params', got: %s", spec)
	}

	name := strings.TrimSpace(parts[0])
	paramsStr := strings.TrimSpace(parts[1])

	params := make(map[string]string)
	if paramsStr != "" {
		for _, paramPair := range strings.Split(paramsStr, ",") {
			kv := strings.SplitN(paramPair, "=", 2)
			if len(kv) != 2 {
				return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", paramPair)
			}
			params[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	return r.Create(name, params)
}

func requireDecimal(transform string, params map[string]string, key string) (decimal.Decimal, error) {
	raw, ok := params[key]
	if !ok {
		return decimal.Zero, fmt.Errorf("%s requires '%s' parameter", transform, key)
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

func optionalBool(params map[string]string, key string) bool {
	v := strings.ToLower(params[key])
	return v == "true" || v == "yes" || v == "1"
}

func createScaleExpense(params map[string]string) (Transform, error) {
	category, ok := params["category"]
	if !ok {
		return nil, fmt.Errorf("scale_expense requires 'category' parameter")
	}
	factor, err := requireDecimal("scale_expense", params, "factor")
	if err != nil {
		return nil, err
	}
	return &ScaleExpense{Category: category, Factor: factor}, nil
}

func createScaleIncome(params map[string]string) (Transform, error) {
	factor, err := requireDecimal("scale_income", params, "factor")
	if err != nil {
		return nil, err
	}
	return &ScaleIncome{Factor: factor}, nil
}

func createPrepayLoan(params map[string]string) (Transform, error) {
	fraction := one
	if _, ok := params["fraction"]; ok {
		var err error
		if fraction, err = requireDecimal("prepay_loan", params, "fraction"); err != nil {
			return nil, err
		}
	}
	return &PrepayLoan{Fraction: fraction, FromSavings: optionalBool(params, "from_savings")}, nil
}

func createFundEmergency(params map[string]string) (Transform, error) {
	monthsStr, ok := params["months"]
	if !ok {
		return nil, fmt.Errorf("fund_emergency requires 'months' parameter")
	}
	months, err := strconv.Atoi(monthsStr)
	if err != nil {
		return nil, fmt.Errorf("invalid months value: %w", err)
	}
	return &FundEmergency{Months: months, FromSavings: optionalBool(params, "from_savings")}, nil
}
