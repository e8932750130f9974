package docdriftcli

import (
	"encoding/json"
	"fmt"
	"strings"

	"docdrift/internal/model"
)

type RangeCategory struct {
	Name   string
	Ranges []model.LineRange
}

func RenderWarnings(warnings []model.Warning) string {
	if len(warnings) == 0 {
		return "[+] no drift detected in commit history.\n"
	}
	var b strings.Builder
	for _, w := range warnings {
		if w.Hash != "" {
			_, _ = fmt.Fprintf(&b, "[!] %s (commit %s)\n", w.Message, w.Hash)
			continue
		}
		_, _ = fmt.Fprintf(&b, "[!] %s\n", w.Message)
	}
	return b.String()
}

func RenderWarningsJSONL(warnings []model.Warning) string {
	var b strings.Builder
	enc := json.NewEncoder(&b)
	for _, w := range warnings {
		_ = enc.Encode(w)
	}
	return b.String()
}

func RenderRanges(cats []RangeCategory) string {
	var b strings.Builder
	for _, cat := range cats {
		if len(cat.Ranges) == 0 {
			_, _ = fmt.Fprintf(&b, "%-11s (none)\n", cat.Name)
			continue
		}
		parts := make([]string, 0, len(cat.Ranges))
		for _, r := range cat.Ranges {
			parts = append(parts, fmt.Sprintf("%d-%d", r.Start, r.End))
		}
		_, _ = fmt.Fprintf(&b, "%-11s %s\n", cat.Name, strings.Join(parts, ", "))
	}
	return b.String()
}

func RenderRangesJSONL(cats []RangeCategory) string {
	type rangeItem struct {
		Category string `json:"category"`
		Start    int    `json:"start"`
		End      int    `json:"end"`
	}
	var b strings.Builder
	enc := json.NewEncoder(&b)
	for _, cat := range cats {
		for _, r := range cat.Ranges {
			_ = enc.Encode(rangeItem{Category: cat.Name, Start: r.Start, End: r.End})
		}
	}
	return b.String()
}
