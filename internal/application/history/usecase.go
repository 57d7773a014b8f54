// Package history serves the read-only reporting views: the scheduled
// receipt history table, its XLSX export and the calendar event feed.
package history

import (
	"context"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/BoostersSCM/Input-Management/internal/domain/entity"
	"github.com/BoostersSCM/Input-Management/internal/domain/repository"
)

// qtyPrinter renders quantities with thousands separators for display
// strings (calendar titles, digest lines).
var qtyPrinter = message.NewPrinter(language.English)

// Filter narrows the history view. Empty Brands falls back to the
// configured default brand list; Search matches part number or name,
// case-insensitively. From/To bound the scheduled date inclusively; a zero
// time disables that bound.
type Filter struct {
	Brands []string
	Search string
	From   time.Time
	To     time.Time
}

// Event is one calendar entry: one scheduled part on one date.
type Event struct {
	Title string `json:"title"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// UseCase reads history rows and shapes them for the reporting views.
type UseCase struct {
	source        repository.SourceRepository
	defaultBrands []string
}

// NewUseCase builds the use case with the configured default brand filter.
func NewUseCase(source repository.SourceRepository, defaultBrands []string) *UseCase {
	return &UseCase{source: source, defaultBrands: defaultBrands}
}

// List returns the filtered history rows ordered by scheduled date then
// part name, the order the table displays them in.
func (uc *UseCase) List(ctx context.Context, f Filter) ([]entity.SourceRow, error) {
	rows, err := uc.source.FetchHistoryRows(ctx)
	if err != nil {
		return nil, err
	}
	out := filterRows(rows, f, uc.defaultBrands)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].ScheduledDate.Equal(out[j].ScheduledDate) {
			return out[i].ScheduledDate.Before(out[j].ScheduledDate)
		}
		return out[i].PartName < out[j].PartName
	})
	return out, nil
}

// CalendarEvents buckets the history rows into calendar events, one per
// (part, date). The from/to bounds are inclusive and optional (zero time
// disables the bound).
func (uc *UseCase) CalendarEvents(ctx context.Context, f Filter) ([]Event, error) {
	rows, err := uc.List(ctx, f)
	if err != nil {
		return nil, err
	}
	events := make([]Event, 0, len(rows))
	for _, r := range rows {
		day := r.ScheduledDate.Format(entity.DateLayout)
		events = append(events, Event{
			Title: qtyPrinter.Sprintf("%s (%d)", r.PartName, r.ScheduledQty.IntPart()),
			Start: day,
			End:   day,
		})
	}
	return events, nil
}

func filterRows(rows []entity.SourceRow, f Filter, defaultBrands []string) []entity.SourceRow {
	brands := f.Brands
	if len(brands) == 0 {
		brands = defaultBrands
	}
	allowed := make(map[string]struct{}, len(brands))
	for _, b := range brands {
		allowed[b] = struct{}{}
	}
	search := strings.ToLower(strings.TrimSpace(f.Search))

	var out []entity.SourceRow
	for _, r := range rows {
		if len(allowed) > 0 {
			if _, ok := allowed[r.Brand]; !ok {
				continue
			}
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(r.PartNumber), search) &&
			!strings.Contains(strings.ToLower(r.PartName), search) {
			continue
		}
		if !f.From.IsZero() && r.ScheduledDate.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && r.ScheduledDate.After(f.To) {
			continue
		}
		out = append(out, r)
	}
	return out
}
