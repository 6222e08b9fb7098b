package usajobs

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"jobsweep/errors"
)

var titleCaser = cases.Title(language.English)

// Parse flattens every search-result item into a Position. Malformed records
// are skipped rather than failing the batch; the second return value is the
// count of records that were dropped.
func Parse(doc *SearchResponse) ([]Position, int, error) {
	if doc == nil {
		return nil, 0, errors.NewMalformedRecordf("nil search response")
	}

	positions := make([]Position, 0, len(doc.SearchResult.SearchResultItems))
	malformed := 0

	for _, item := range doc.SearchResult.SearchResultItems {
		position, err := parseItem(item)
		if err != nil {
			malformed++
			continue
		}
		positions = append(positions, position)
	}

	return positions, malformed, nil
}

func parseItem(item SearchResultItem) (Position, error) {
	d := item.MatchedObjectDescriptor

	if d.PositionID == "" {
		return Position{}, errors.NewMalformedRecordf("missing PositionID")
	}

	title := titleCaser.String(strings.TrimSpace(d.PositionTitle))
	if title == "" {
		return Position{}, errors.NewMalformedRecordf("position %s: empty title", d.PositionID)
	}

	if len(d.PositionRemuneration) == 0 {
		return Position{}, errors.NewMalformedRecordf("position %s: no remuneration entries", d.PositionID)
	}
	remuneration := d.PositionRemuneration[0]

	min, err := strconv.ParseFloat(remuneration.MinimumRange, 64)
	if err != nil {
		return Position{}, errors.WrapMalformedRecord(err, "position "+d.PositionID+": minimum remuneration")
	}
	max, err := strconv.ParseFloat(remuneration.MaximumRange, 64)
	if err != nil {
		return Position{}, errors.WrapMalformedRecord(err, "position "+d.PositionID+": maximum remuneration")
	}

	if d.UserArea.Details.WhoMayApply.Name == "" {
		return Position{}, errors.NewMalformedRecordf("position %s: missing eligibility category", d.PositionID)
	}

	if d.ApplicationCloseDate == "" {
		return Position{}, errors.NewMalformedRecordf("position %s: missing application close date", d.PositionID)
	}

	return Position{
		PositionID:           d.PositionID,
		Title:                title,
		OrganizationName:     d.OrganizationName,
		RemunerationMin:      min,
		RemunerationMax:      max,
		RemunerationRate:     remuneration.RateIntervalCode,
		WhoMayApply:          d.UserArea.Details.WhoMayApply.Name,
		ApplicationCloseDate: d.ApplicationCloseDate,
	}, nil
}
