package feed

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/capwatch/alertmap/internal/domain"
)

// Extension namespace prefixes as declared by the NWS feed.
const (
	nsCAP    = "cap"
	nsGeoRSS = "georss"
)

// Parser turns raw Atom bytes into ordered alert records.
type Parser struct {
	logger *slog.Logger
}

// NewParser creates a feed parser.
func NewParser(logger *slog.Logger) *Parser {
	return &Parser{logger: logger}
}

// Extract parses the feed and maps each entry to an AlertRecord, preserving
// entry order. Entries whose geometry cannot be resolved are dropped and
// counted; only a malformed top-level document is an error.
func (p *Parser) Extract(data []byte) ([]domain.AlertRecord, int, error) {
	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(data))
	if err != nil {
		return nil, 0, fmt.Errorf("parse feed: %w", err)
	}

	records := make([]domain.AlertRecord, 0, len(parsed.Items))
	dropped := 0
	for _, item := range parsed.Items {
		rec, ok := recordFromItem(item)
		if !ok {
			dropped++
			p.logger.Debug("dropping unplaceable entry", "id", item.GUID, "title", item.Title)
			continue
		}
		records = append(records, rec)
	}

	return records, dropped, nil
}

// recordFromItem maps one parsed entry to an AlertRecord. Returns false when
// no representative point can be resolved from the entry's location fields.
func recordFromItem(item *gofeed.Item) (domain.AlertRecord, bool) {
	point, ok := domain.ResolvePoint(
		extText(item, nsGeoRSS, "point"),
		extText(item, nsGeoRSS, "polygon"),
		extText(item, nsCAP, "areaDesc"),
	)
	if !ok {
		return domain.AlertRecord{}, false
	}

	return domain.AlertRecord{
		ID:      strings.TrimSpace(item.GUID),
		Title:   strings.TrimSpace(item.Title),
		Updated: strings.TrimSpace(item.Updated),
		Summary: strings.TrimSpace(item.Description),

		Event:       extText(item, nsCAP, "event"),
		Effective:   extText(item, nsCAP, "effective"),
		Expires:     extText(item, nsCAP, "expires"),
		Urgency:     extText(item, nsCAP, "urgency"),
		Severity:    extText(item, nsCAP, "severity"),
		Certainty:   extText(item, nsCAP, "certainty"),
		AreaDesc:    extText(item, nsCAP, "areaDesc"),
		Headline:    extText(item, nsCAP, "headline"),
		Description: extText(item, nsCAP, "description"),
		Instruction: extText(item, nsCAP, "instruction"),

		Point: point,
	}, true
}

// extText returns the trimmed text of the first extension element with the
// given namespace prefix and name, or "" when the element is absent or empty.
func extText(item *gofeed.Item, ns, name string) string {
	exts, ok := item.Extensions[ns]
	if !ok {
		return ""
	}
	els := exts[name]
	if len(els) == 0 {
		return ""
	}
	return strings.TrimSpace(els[0].Value)
}
