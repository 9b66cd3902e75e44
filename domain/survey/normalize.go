package survey

import (
	"strings"

	"github.com/Kumungchi/vyzkumdata/domain/core"
)

// numericColumns are coerced after renaming; unparseable cells become
// empty (missing), never an error.
var numericColumns = []string{ColPosX, ColPosY, ColPosZ, ColFirstRT, ColTotalRT}

// RequiredPlacementColumns is the minimum set a placements table must have
// after normalization for the pipeline to run.
var RequiredPlacementColumns = []string{ColID, ColTerm, ColPosX, ColPosY, ColPosZ, ColFirstRT}

// canonicalColumn maps one source header to its canonical name, if any.
// Rules are case-insensitive and cover both the Czech and English headers
// seen in survey exports.
func canonicalColumn(name string) (string, bool) {
	lc := strings.ToLower(strings.TrimSpace(name))
	switch {
	case lc == "id" || lc == "respondent" || lc == "participant":
		return ColID, true
	case lc == "term" || lc == "slovo" || lc == "pojem" || lc == "word":
		return ColTerm, true
	case strings.Contains(lc, "pos x") || lc == "x" || lc == "pos_x" || lc == "xpos":
		return ColPosX, true // Valence axis
	case strings.Contains(lc, "pos y") || lc == "y" || lc == "pos_y" || lc == "ypos":
		return ColPosY, true // Dominance axis
	case strings.Contains(lc, "pos z") || lc == "z" || lc == "pos_z" || lc == "zpos":
		return ColPosZ, true // Arousal axis
	case strings.Contains(lc, "first reaction time") || strings.Contains(lc, "první"):
		return ColFirstRT, true
	case strings.Contains(lc, "total reaction time") || strings.Contains(lc, "celkov"):
		return ColTotalRT, true
	case strings.Contains(lc, "pořadí") || strings.Contains(lc, "order") || strings.Contains(lc, "trial"):
		return ColOrder, true
	}
	return "", false
}

// NormalizeColumns renames recognized headers to the canonical column set
// and coerces the positional/temporal columns to numeric form. Columns with
// no recognized match pass through unrenamed. The operation is idempotent:
// normalizing an already-normalized table yields an identical table.
//
// Two distinct source columns mapping to the same canonical name would make
// the renaming ambiguous; rather than silently picking one, that case
// returns core.ErrAmbiguousColumn naming the offending columns.
func NormalizeColumns(t *Table) (*Table, error) {
	out := t.Clone()

	sources := make(map[string][]string) // canonical -> source columns
	for i, name := range out.Columns {
		canonical, ok := canonicalColumn(name)
		if !ok {
			continue
		}
		sources[canonical] = append(sources[canonical], name)
		out.Columns[i] = canonical
	}
	for canonical, from := range sources {
		if len(from) > 1 {
			return nil, core.NewAmbiguousColumnError(canonical, from)
		}
	}

	for _, col := range numericColumns {
		idx, ok := out.ColumnIndex(col)
		if !ok {
			continue
		}
		for _, row := range out.Rows {
			row[idx] = FormatNumber(ParseNumber(row[idx]))
		}
	}
	return out, nil
}

// PlacementsFromTable converts a normalized table into placement records.
// Missing or unparseable numeric cells come through as NaN.
func PlacementsFromTable(t *Table) []PlacementRecord {
	records := make([]PlacementRecord, 0, t.RowCount())
	for i := range t.Rows {
		records = append(records, PlacementRecord{
			ID:                strings.TrimSpace(t.Cell(i, ColID)),
			Term:              strings.TrimSpace(t.Cell(i, ColTerm)),
			PosX:              ParseNumber(t.Cell(i, ColPosX)),
			PosY:              ParseNumber(t.Cell(i, ColPosY)),
			PosZ:              ParseNumber(t.Cell(i, ColPosZ)),
			FirstReactionTime: ParseNumber(t.Cell(i, ColFirstRT)),
			TotalReactionTime: ParseNumber(t.Cell(i, ColTotalRT)),
			Order:             ParseNumber(t.Cell(i, ColOrder)),
		})
	}
	return records
}
