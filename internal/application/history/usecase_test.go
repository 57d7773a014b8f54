package history_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BoostersSCM/Input-Management/internal/application/history"
	"github.com/BoostersSCM/Input-Management/internal/domain/entity"
)

type stubSource struct {
	rows []entity.SourceRow
}

func (s *stubSource) FetchSourceRows(context.Context) ([]entity.SourceRow, error) {
	return s.rows, nil
}

func (s *stubSource) FetchHistoryRows(context.Context) ([]entity.SourceRow, error) {
	return s.rows, nil
}

func day(d int) time.Time {
	return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
}

func fixtureRows() []entity.SourceRow {
	return []entity.SourceRow{
		{Brand: "EqualBerry", PartNumber: "EB-100", PartName: "Collagen Serum", ScheduledDate: day(5), ScheduledQty: decimal.NewFromInt(1200)},
		{Brand: "Branden", PartNumber: "BR-200", PartName: "Vitamin Cream", ScheduledDate: day(3), ScheduledQty: decimal.NewFromInt(40)},
		{Brand: "Unlisted", PartNumber: "XX-1", PartName: "Sample", ScheduledDate: day(4), ScheduledQty: decimal.NewFromInt(5)},
		{Brand: "EqualBerry", PartNumber: "EB-101", PartName: "Ampoule", ScheduledDate: day(3), ScheduledQty: decimal.NewFromInt(700)},
	}
}

func fixtureUC() *history.UseCase {
	return history.NewUseCase(&stubSource{rows: fixtureRows()}, []string{"EqualBerry", "Branden", "MarketOlsen"})
}

func TestList_DefaultBrandFilterHidesUnlisted(t *testing.T) {
	rows, err := fixtureUC().List(context.Background(), history.Filter{})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for _, r := range rows {
		assert.NotEqual(t, "Unlisted", r.Brand, "brands outside the configured list stay hidden")
	}
}

func TestList_OrderedByDateThenName(t *testing.T) {
	rows, err := fixtureUC().List(context.Background(), history.Filter{})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "EB-101", rows[0].PartNumber) // 03-03 Ampoule before 03-03 Vitamin Cream
	assert.Equal(t, "BR-200", rows[1].PartNumber)
	assert.Equal(t, "EB-100", rows[2].PartNumber)
}

func TestList_ExplicitBrandSelection(t *testing.T) {
	rows, err := fixtureUC().List(context.Background(), history.Filter{Brands: []string{"Branden"}})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "BR-200", rows[0].PartNumber)
}

func TestList_SearchIsCaseInsensitiveOnNumberAndName(t *testing.T) {
	uc := fixtureUC()

	rows, err := uc.List(context.Background(), history.Filter{Search: "eb-1"})
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = uc.List(context.Background(), history.Filter{Search: "SERUM"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "EB-100", rows[0].PartNumber)
}

func TestList_DateBounds(t *testing.T) {
	rows, err := fixtureUC().List(context.Background(), history.Filter{From: day(4), To: day(5)})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "EB-100", rows[0].PartNumber)
}

func TestCalendarEvents_OnePerPartAndDate(t *testing.T) {
	events, err := fixtureUC().CalendarEvents(context.Background(), history.Filter{})
	require.NoError(t, err)
	require.Len(t, events, 3)

	assert.Equal(t, "Ampoule (700)", events[0].Title)
	assert.Equal(t, "2026-03-03", events[0].Start)
	assert.Equal(t, events[0].Start, events[0].End)

	assert.Equal(t, "Collagen Serum (1,200)", events[2].Title,
		"quantities carry thousands separators in display titles")
}
