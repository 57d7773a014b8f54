package notify_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BoostersSCM/Input-Management/internal/application/notify"
	"github.com/BoostersSCM/Input-Management/internal/domain/entity"
)

var now = time.Date(2026, 3, 2, 8, 30, 0, 0, time.UTC)

func scheduled(brand, po, part string, d time.Time, qty int64) entity.SourceRow {
	return entity.SourceRow{
		Brand:         brand,
		PurchaseOrder: po,
		PartNumber:    part,
		PartName:      part,
		ScheduledDate: d,
		ScheduledQty:  decimal.NewFromInt(qty),
	}
}

func sectionTexts(p notify.Payload) []string {
	var out []string
	for _, b := range p.Blocks {
		if b.Type == "section" && b.Text != nil {
			out = append(out, b.Text.Text)
		}
	}
	return out
}

func TestBuildDigest_EmptyScheduleFallsBackToText(t *testing.T) {
	p := notify.BuildDigest(nil, now)
	assert.True(t, p.Empty())
	assert.Contains(t, p.Text, "No scheduled receipts")
}

func TestBuildDigest_DropsPastRows(t *testing.T) {
	rows := []entity.SourceRow{
		scheduled("A", "PO1", "Old Part", now.AddDate(0, 0, -1), 10),
	}
	p := notify.BuildDigest(rows, now)
	assert.True(t, p.Empty(), "only today-or-later rows are announced")
}

func TestBuildDigest_GroupsByDateThenBrand(t *testing.T) {
	d1 := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	rows := []entity.SourceRow{
		scheduled("Branden", "PO3", "Cream", d2, 300),
		scheduled("EqualBerry", "PO1", "Serum", d1, 1200),
		scheduled("EqualBerry", "PO2", "Ampoule", d1, 50),
	}

	p := notify.BuildDigest(rows, now)
	require.False(t, p.Empty())
	assert.Equal(t, "header", p.Blocks[0].Type)

	sections := sectionTexts(p)
	require.Len(t, sections, 4) // two date headings, two brand groups

	assert.Equal(t, "🗓️ *2026-03-02*", sections[0])
	assert.True(t, strings.HasPrefix(sections[1], "*EqualBerry*"))
	assert.Contains(t, sections[1], "• *Ampoule* → 50 ea  |  `PO:PO2`")
	assert.Contains(t, sections[1], "• *Serum* → 1,200 ea  |  `PO:PO1`",
		"quantities are comma formatted")
	assert.Equal(t, "🗓️ *2026-03-03*", sections[2])
	assert.True(t, strings.HasPrefix(sections[3], "*Branden*"))
}

func TestBuildDigest_VersionShownWhenPresent(t *testing.T) {
	d := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	row := scheduled("A", "PO1", "Serum", d, 10)
	row.Version = "V2"

	p := notify.BuildDigest([]entity.SourceRow{row}, now)
	sections := sectionTexts(p)
	require.Len(t, sections, 2)
	assert.Contains(t, sections[1], "*Serum* (V2)")
}
