package report

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fin-tools/expense-atlas/pkg/models/api"
	"github.com/fin-tools/expense-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockEngine struct {
	mock.Mock
}

func (m *mockEngine) Summary(ctx context.Context, res domain.AnalysisResult) domain.Summary {
	args := m.Called(ctx, res)
	return args.Get(0).(domain.Summary)
}

func (m *mockEngine) CategoryBreakdown(
	ctx context.Context,
	res domain.AnalysisResult,
	monthLabel string,
) []domain.CategoryPercentageRow {
	args := m.Called(ctx, res, monthLabel)
	return args.Get(0).([]domain.CategoryPercentageRow)
}

func (m *mockEngine) CategoryTrends(ctx context.Context, res domain.AnalysisResult, topN int) []domain.CategoryTrend {
	args := m.Called(ctx, res, topN)
	return args.Get(0).([]domain.CategoryTrend)
}

func (m *mockEngine) TopRecurring(
	ctx context.Context,
	res domain.AnalysisResult,
	topN int,
) []domain.RecurringTransaction {
	args := m.Called(ctx, res, topN)
	return args.Get(0).([]domain.RecurringTransaction)
}

func (m *mockEngine) IdenticalRecurring(
	ctx context.Context,
	res domain.AnalysisResult,
	topN int,
) []domain.IdenticalRecurringTransaction {
	args := m.Called(ctx, res, topN)
	return args.Get(0).([]domain.IdenticalRecurringTransaction)
}

func (m *mockEngine) ColorMap(ctx context.Context, res domain.AnalysisResult) map[string]string {
	args := m.Called(ctx, res)
	return args.Get(0).(map[string]string)
}

const snapshotBody = `{
	"averageMonthExpenses": "665.42 euros",
	"monthlyExpenses": [
		{
			"month": "Dec 2025",
			"sum": "730.84 euros",
			"categories": {
				"Groceries": {"amount": 300, "percentage": 41.05}
			}
		}
	]
}`

func expectedSnapshot() domain.AnalysisResult {
	return domain.AnalysisResult{
		AverageMonthExpenses: "665.42 euros",
		MonthlyExpenses: []domain.MonthlyExpense{
			{
				Month: "Dec 2025",
				Sum:   "730.84 euros",
				Categories: map[string]domain.CategoryInfo{
					"Groceries": {Amount: 300, Percentage: 41.05},
				},
			},
		},
	}
}

func TestGetCategories(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		body           string
		setupMock      func(*mockEngine)
		expectedStatus int
		expectedBody   []api.CategoryPercentageRow
	}{
		{
			name: "period view",
			url:  "/categories",
			body: snapshotBody,
			setupMock: func(m *mockEngine) {
				m.On("CategoryBreakdown", mock.Anything, expectedSnapshot(), "").Return(
					[]domain.CategoryPercentageRow{
						{Category: "Groceries", Total: 300, Percent: 100},
					},
				)
			},
			expectedStatus: http.StatusOK,
			expectedBody: []api.CategoryPercentageRow{
				{Category: "Groceries", Total: 300, Percent: 100},
			},
		},
		{
			name: "month query param forwarded",
			url:  "/categories?month=Dec+2025",
			body: snapshotBody,
			setupMock: func(m *mockEngine) {
				m.On("CategoryBreakdown", mock.Anything, expectedSnapshot(), "Dec 2025").Return(
					[]domain.CategoryPercentageRow{},
				)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []api.CategoryPercentageRow{},
		},
		{
			name:           "malformed snapshot",
			url:            "/categories",
			body:           "{not json",
			setupMock:      func(m *mockEngine) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := new(mockEngine)
			tt.setupMock(engine)
			handler := NewHandler(engine, 10)

			req := httptest.NewRequest("POST", tt.url, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			handler.GetCategories(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				var response []api.CategoryPercentageRow
				err := json.NewDecoder(rec.Body).Decode(&response)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBody, response)
			}

			engine.AssertExpectations(t)
		})
	}
}

func TestGetRecurring(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		setupMock      func(*mockEngine)
		expectedStatus int
		expectedBody   []api.RecurringTransaction
	}{
		{
			name: "explicit top",
			url:  "/recurring?top=3",
			setupMock: func(m *mockEngine) {
				m.On("TopRecurring", mock.Anything, expectedSnapshot(), 3).Return(
					[]domain.RecurringTransaction{
						{Name: "Netflix", Category: "Entertainment", Count: 3, AvgAmount: 12.99, TotalAmount: 38.97},
					},
				)
			},
			expectedStatus: http.StatusOK,
			expectedBody: []api.RecurringTransaction{
				{Name: "Netflix", Category: "Entertainment", Count: 3, AvgAmount: 12.99, TotalAmount: 38.97},
			},
		},
		{
			name: "default top from config",
			url:  "/recurring",
			setupMock: func(m *mockEngine) {
				m.On("TopRecurring", mock.Anything, expectedSnapshot(), 10).Return(
					[]domain.RecurringTransaction{},
				)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []api.RecurringTransaction{},
		},
		{
			name:           "non-numeric top",
			url:            "/recurring?top=lots",
			setupMock:      func(m *mockEngine) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := new(mockEngine)
			tt.setupMock(engine)
			handler := NewHandler(engine, 10)

			req := httptest.NewRequest("POST", tt.url, strings.NewReader(snapshotBody))
			rec := httptest.NewRecorder()

			handler.GetRecurring(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				var response []api.RecurringTransaction
				err := json.NewDecoder(rec.Body).Decode(&response)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBody, response)
			}

			engine.AssertExpectations(t)
		})
	}
}

func TestGetSubscriptions(t *testing.T) {
	engine := new(mockEngine)
	engine.On("IdenticalRecurring", mock.Anything, expectedSnapshot(), 10).Return(
		[]domain.IdenticalRecurringTransaction{
			{Name: "Netflix", Category: "Entertainment", Amount: 12.99, Count: 3, TotalAmount: 38.97},
		},
	)
	handler := NewHandler(engine, 10)

	req := httptest.NewRequest("POST", "/subscriptions", strings.NewReader(snapshotBody))
	rec := httptest.NewRecorder()

	handler.GetSubscriptions(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response []api.IdenticalRecurringTransaction
	err := json.NewDecoder(rec.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, []api.IdenticalRecurringTransaction{
		{Name: "Netflix", Category: "Entertainment", Amount: 12.99, Count: 3, TotalAmount: 38.97},
	}, response)

	engine.AssertExpectations(t)
}

func TestGetSummary(t *testing.T) {
	engine := new(mockEngine)
	engine.On("Summary", mock.Anything, expectedSnapshot()).Return(
		domain.Summary{Months: 1, GrandTotal: 730.84, AverageMonth: 665.42},
	)
	handler := NewHandler(engine, 10)

	req := httptest.NewRequest("POST", "/summary", strings.NewReader(snapshotBody))
	rec := httptest.NewRecorder()

	handler.GetSummary(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response api.Summary
	err := json.NewDecoder(rec.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, api.Summary{Months: 1, GrandTotal: 730.84, AverageMonth: 665.42}, response)

	engine.AssertExpectations(t)
}

func TestGetColors(t *testing.T) {
	engine := new(mockEngine)
	engine.On("ColorMap", mock.Anything, expectedSnapshot()).Return(
		map[string]string{"Groceries": "hsl(0, 70%, 55%)"},
	)
	handler := NewHandler(engine, 10)

	req := httptest.NewRequest("POST", "/colors", strings.NewReader(snapshotBody))
	rec := httptest.NewRecorder()

	handler.GetColors(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]string
	err := json.NewDecoder(rec.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"Groceries": "hsl(0, 70%, 55%)"}, response)

	engine.AssertExpectations(t)
}
