package compare

import (
	"context"
	"fmt"
	"strings"

	"github.com/rgehrsitz/finhealth/internal/calculation"
	"github.com/rgehrsitz/finhealth/internal/domain"
	"github.com/rgehrsitz/finhealth/internal/transform"
	"golang.org/x/sync/errgroup"
)

// CompareEngine orchestrates profile comparison
type CompareEngine struct {
	Evaluator *calculation.HealthEvaluator
}

// NewCompareEngine creates a new comparison engine; a nil evaluator gets the default
func NewCompareEngine(evaluator *calculation.HealthEvaluator) *CompareEngine {
	if evaluator == nil {
		evaluator = calculation.NewHealthEvaluator()
	}
	return &CompareEngine{Evaluator: evaluator}
}

// Compare evaluates the base profile and the named alternatives concurrently.
// An empty base name selects the first profile; no alternatives selects every
// other profile. Alternatives keep the requested order.
func (ce *CompareEngine) Compare(
	ctx context.Context,
	config *domain.Configuration,
	baseProfileName string,
	alternativeProfileNames []string,
) (*ComparisonSet, error) {
	if config == nil || len(config.Profiles) == 0 {
		return nil, fmt.Errorf("no profiles to compare")
	}

	base, ok := config.FindProfile(baseProfileName)
	if !ok {
		return nil, fmt.Errorf("base profile %s not found (available: %s)",
			baseProfileName, strings.Join(config.ProfileNames(), ", "))
	}

	var alternatives []domain.Profile
	if len(alternativeProfileNames) == 0 {
		for _, p := range config.Profiles {
			if p.Name != base.Name {
				alternatives = append(alternatives, p)
			}
		}
	} else {
		for _, name := range alternativeProfileNames {
			p, ok := config.FindProfile(name)
			if !ok || name == "" {
				return nil, fmt.Errorf("alternative profile %s not found (available: %s)",
					name, strings.Join(config.ProfileNames(), ", "))
			}
			alternatives = append(alternatives, *p)
		}
	}

	return ce.compareProfiles(ctx, *base, alternatives)
}

// CompareWhatIf evaluates the base profile against copies of it with each
// template applied. Each alternative is named after its template.
func (ce *CompareEngine) CompareWhatIf(
	ctx context.Context,
	config *domain.Configuration,
	baseProfileName string,
	templates []transform.Template,
) (*ComparisonSet, error) {
	if config == nil || len(config.Profiles) == 0 {
		return nil, fmt.Errorf("no profiles to compare")
	}
	if len(templates) == 0 {
		return nil, fmt.Errorf("no what-if templates given")
	}

	base, ok := config.FindProfile(baseProfileName)
	if !ok {
		return nil, fmt.Errorf("base profile %s not found (available: %s)",
			baseProfileName, strings.Join(config.ProfileNames(), ", "))
	}

	alternatives := make([]domain.Profile, 0, len(templates))
	for _, t := range templates {
		p, err := transform.ApplyToProfile(*base, t)
		if err != nil {
			return nil, fmt.Errorf("template %s: %w", t.Name, err)
		}
		alternatives = append(alternatives, p)
	}

	return ce.compareProfiles(ctx, *base, alternatives)
}

func (ce *CompareEngine) compareProfiles(ctx context.Context, base domain.Profile, alternatives []domain.Profile) (*ComparisonSet, error) {
	// Slot 0 is the base; evaluations write only their own slot
	profiles := append([]domain.Profile{base}, alternatives...)
	results := make([]*domain.FinancialResult, len(profiles))

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range profiles {
		i, p := i, p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("comparison of %s cancelled: %w", p.Name, err)
			}
			results[i] = ce.Evaluator.Evaluate(p.Data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	baseResult := NewComparisonResult(profiles[0], results[0])
	alts := make([]ComparisonResult, 0, len(alternatives))
	for i := 1; i < len(profiles); i++ {
		alt := NewComparisonResult(profiles[i], results[i])
		alts = append(alts, CalculateComparison(alt, baseResult))
	}

	compSet := &ComparisonSet{
		BaseProfileName:    base.Name,
		BaseResult:         &baseResult,
		AlternativeResults: alts,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}
