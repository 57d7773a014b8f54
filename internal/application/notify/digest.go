// Package notify builds the Slack digest of upcoming scheduled receipts:
// a Block Kit payload grouped by date, then by brand.
package notify

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/BoostersSCM/Input-Management/internal/domain/entity"
)

var qtyPrinter = message.NewPrinter(language.English)

// Text is a Block Kit text object.
type Text struct {
	Type  string `json:"type"`
	Text  string `json:"text"`
	Emoji bool   `json:"emoji,omitempty"`
}

// Block is one Block Kit block (header, section or divider).
type Block struct {
	Type string `json:"type"`
	Text *Text  `json:"text,omitempty"`
}

// Payload is the webhook body. Blocks carries the digest; Text is the
// fallback used when there is nothing to announce.
type Payload struct {
	Text   string  `json:"text,omitempty"`
	Blocks []Block `json:"blocks,omitempty"`
}

// Empty reports whether the payload announces no scheduled receipts.
func (p Payload) Empty() bool { return len(p.Blocks) == 0 }

// BuildDigest groups the scheduled receipts from today forward by date and
// brand and renders the announcement payload. Rows already in the past are
// dropped; an empty result yields a plain-text "nothing scheduled" message.
func BuildDigest(rows []entity.SourceRow, now time.Time) Payload {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var upcoming []entity.SourceRow
	for _, r := range rows {
		if r.ScheduledDate.Before(today) {
			continue
		}
		upcoming = append(upcoming, r)
	}
	if len(upcoming) == 0 {
		return Payload{Text: "📭 No scheduled receipts today."}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		a, b := upcoming[i], upcoming[j]
		if !a.ScheduledDate.Equal(b.ScheduledDate) {
			return a.ScheduledDate.Before(b.ScheduledDate)
		}
		if a.Brand != b.Brand {
			return a.Brand < b.Brand
		}
		return a.PartName < b.PartName
	})

	blocks := []Block{
		{Type: "header", Text: &Text{Type: "plain_text", Text: "📦 Scheduled receipts", Emoji: true}},
		{Type: "divider"},
	}

	for i := 0; i < len(upcoming); {
		date := upcoming[i].ScheduledDate
		blocks = append(blocks, Block{
			Type: "section",
			Text: &Text{Type: "mrkdwn", Text: "🗓️ *" + date.Format(entity.DateLayout) + "*"},
		})

		for i < len(upcoming) && upcoming[i].ScheduledDate.Equal(date) {
			brand := upcoming[i].Brand
			var lines []string
			for i < len(upcoming) && upcoming[i].ScheduledDate.Equal(date) && upcoming[i].Brand == brand {
				r := upcoming[i]
				version := ""
				if r.Version != "" {
					version = fmt.Sprintf(" (%s)", r.Version)
				}
				lines = append(lines, qtyPrinter.Sprintf("• *%s*%s → %d ea  |  `PO:%s`",
					r.PartName, version, r.ScheduledQty.IntPart(), r.PurchaseOrder))
				i++
			}
			blocks = append(blocks, Block{
				Type: "section",
				Text: &Text{Type: "mrkdwn", Text: "*" + brand + "*\n" + strings.Join(lines, "\n")},
			})
		}
		blocks = append(blocks, Block{Type: "divider"})
	}

	return Payload{Blocks: blocks}
}
