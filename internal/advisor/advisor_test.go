package advisor

import (
	"context"
	"sync"

	"github.com/rgehrsitz/finhealth/internal/calculation"
	"github.com/rgehrsitz/finhealth/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockAdvisor records conversations and returns scripted replies
type MockAdvisor struct {
	mock.Mock
}

func (m *MockAdvisor) GetAdvice(ctx context.Context, messages []Message) (string, error) {
	args := m.Called(ctx, messages)
	return args.String(0), args.Error(1)
}

// captureLogger keeps Warnf and Errorf calls for assertions
type captureLogger struct {
	calculation.NopLogger
	mu       sync.Mutex
	warnings []string
	errors   []string
}

func (l *captureLogger) Warnf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = append(l.warnings, format)
}

func (l *captureLogger) Errorf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, format)
}

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func sampleData() domain.FinancialData {
	return domain.FinancialData{
		Income: domain.Income{Monthly: d(100000)},
		Expenses: domain.Expenses{
			Rent:          d(20000),
			Food:          d(5000),
			Transport:     d(3000),
			Utilities:     d(2000),
			Entertainment: d(2000),
			Others:        d(3000),
		},
		Loans:   domain.Loans{EMI: d(10000), Outstanding: d(200000)},
		Savings: domain.Savings{Current: d(50000), EmergencyFund: d(300000)},
	}
}

func sampleResult() *domain.FinancialResult {
	return calculation.Evaluate(sampleData())
}
