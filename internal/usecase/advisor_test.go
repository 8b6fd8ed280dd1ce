package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finboard/internal/domain"
	"finboard/internal/usecase"
	mock_usecase "finboard/internal/usecase/mocks"
)

func TestAdvisor_InsightPassesSummaryText(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	data := domain.SeedData()
	insights := mock_usecase.NewMockInsightService(ctrl)
	insights.EXPECT().
		Insight(gomock.Any(), usecase.SummaryText(data)).
		Return("Your rent dominates your outgoings.", nil)

	got, err := usecase.NewAdvisor(insights).Insight(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, "Your rent dominates your outgoings.", got)
}

func TestAdvisor_InsightErrorIsWrappedNotFoldedIntoText(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	insights := mock_usecase.NewMockInsightService(ctrl)
	insights.EXPECT().Insight(gomock.Any(), gomock.Any()).Return("", errors.New("service unreachable"))

	got, err := usecase.NewAdvisor(insights).Insight(context.Background(), domain.SeedData())
	assert.ErrorContains(t, err, "service unreachable")
	assert.Empty(t, got)
}

func TestAdvisor_ForecastClampsHorizon(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		want      int
	}{
		{name: "below range", requested: 1, want: 6},
		{name: "lower bound", requested: 6, want: 6},
		{name: "inside range", requested: 24, want: 24},
		{name: "upper bound", requested: 60, want: 60},
		{name: "above range", requested: 120, want: 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			data := domain.SeedData()
			insights := mock_usecase.NewMockInsightService(ctrl)
			insights.EXPECT().
				Forecast(gomock.Any(), data, tt.want).
				Return("OUTLOOK\n...", nil)

			got, err := usecase.NewAdvisor(insights).Forecast(context.Background(), data, tt.requested)
			require.NoError(t, err)
			assert.Equal(t, "OUTLOOK\n...", got)
		})
	}
}

func TestSummaryText(t *testing.T) {
	text := usecase.SummaryText(domain.SeedData())

	assert.Contains(t, text, "Net worth:")
	assert.Contains(t, text, "Credit card")
	assert.Contains(t, text, "Portfolio allocation:")
	assert.Contains(t, text, "Net monthly cash flow:")
	// Plain text only, one figure per line.
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		assert.NotEmpty(t, strings.TrimSpace(line))
	}
}
