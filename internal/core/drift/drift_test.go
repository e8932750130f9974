package drift

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"docdrift/internal/core/githist"
	"docdrift/internal/model"
)

const (
	hash1 = "1111111111111111111111111111111111111111"
	hash2 = "2222222222222222222222222222222222222222"
	hash3 = "3333333333333333333333333333333333333333"
	hash4 = "4444444444444444444444444444444444444444"
)

func logEntry(hash, date, message string) string {
	return "commit " + hash + "\n" +
		"Author: Jo Dev <jo@example.com>\n" +
		"Date:   " + date + "\n" +
		"\n" +
		"    " + message + "\n" +
		"diff --git a/calc.py b/calc.py\n" +
		"@@ -1 +1 @@\n"
}

// fakeHistory answers per range batch, keyed by the flattened batch.
type fakeHistory struct {
	responses map[string]string
}

func (f *fakeHistory) FetchHistory(ctx context.Context, filePath string, ranges []model.LineRange, maxCount int) string {
	if len(ranges) == 0 {
		return githist.NoLinesSentinel
	}
	if text, ok := f.responses[rangeKey(ranges)]; ok {
		return text
	}
	return githist.NoLinesSentinel
}

func rangeKey(ranges []model.LineRange) string {
	parts := make([]string, 0, len(ranges))
	for _, r := range ranges {
		parts = append(parts, fmt.Sprintf("%d-%d", r.Start, r.End))
	}
	return strings.Join(parts, ",")
}

// calcDef models:
//
//	1 def calculate(a: int, b: int) -> int:
//	2     """Updated docstring."""
//	3     intermediate = a + b
//	4     return intermediate
func calcDef() model.Definition {
	return model.Definition{
		Name:  "calculate",
		Kind:  model.KindFunction,
		Start: 1,
		End:   4,
		Body: []model.Statement{
			{Start: 2, End: 2, IsString: true},
			{Start: 3, End: 3},
			{Start: 4, End: 4},
		},
	}
}

func TestLatestRevisionEmptyLog(t *testing.T) {
	ts, hash := LatestRevision(model.NewRevisionLog())
	if !ts.IsZero() || hash != "" {
		t.Fatalf("ts=%v hash=%q", ts, hash)
	}
}

func TestLatestRevisionFirstEntryWins(t *testing.T) {
	log := model.NewRevisionLog()
	log.Add(model.RevisionRecord{Hash: hash2, Date: "Mon Aug 24 10:00:00 2026 +0000"})
	log.Add(model.RevisionRecord{Hash: hash1, Date: "Sun Aug 23 10:00:00 2026 +0000"})

	ts, hash := LatestRevision(log)
	if hash != hash2 {
		t.Fatalf("hash=%q", hash)
	}
	if ts.IsZero() || ts.Day() != 24 {
		t.Fatalf("ts=%v", ts)
	}
}

func TestLatestRevisionParsesOffset(t *testing.T) {
	log := model.NewRevisionLog()
	log.Add(model.RevisionRecord{Hash: hash1, Date: "Fri Jan 11 20:23:51 2026 +0100"})

	ts, _ := LatestRevision(log)
	_, offset := ts.Zone()
	if offset != 3600 {
		t.Fatalf("offset=%d", offset)
	}
}

func TestLatestRevisionBadDateKeepsHash(t *testing.T) {
	log := model.NewRevisionLog()
	log.Add(model.RevisionRecord{Hash: hash1, Date: "not a date"})

	ts, hash := LatestRevision(log)
	if !ts.IsZero() {
		t.Fatalf("ts=%v", ts)
	}
	if hash != hash1 {
		t.Fatalf("hash=%q", hash)
	}
}

// The end-to-end scenario: commit 1 creates calculate with a docstring,
// commit 2 adds signature annotations, commit 3 rewords the docstring,
// commit 4 reworks the body. Body postdates both others, docstring
// postdates signature: Rule A fires alone, citing commit 4.
func TestCheckConsistencyBodyDrift(t *testing.T) {
	history := &fakeHistory{responses: map[string]string{
		"1-1": logEntry(hash2, "Mon Aug 24 10:00:00 2026 +0000", "Add type annotations") +
			logEntry(hash1, "Sun Aug 23 09:00:00 2026 +0000", "Initial commit"),
		"2-2": logEntry(hash3, "Tue Aug 25 10:00:00 2026 +0000", "Reword docstring") +
			logEntry(hash1, "Sun Aug 23 09:00:00 2026 +0000", "Initial commit"),
		"3-4": logEntry(hash4, "Wed Aug 26 10:00:00 2026 +0000", "Introduce intermediate variable") +
			logEntry(hash1, "Sun Aug 23 09:00:00 2026 +0000", "Initial commit"),
	}}

	checker := NewChecker("calc.py", []model.Definition{calcDef()}, history, Options{})
	warnings := checker.CheckConsistency(context.Background(), "calculate")

	if len(warnings) != 1 {
		t.Fatalf("warnings=%+v", warnings)
	}
	if warnings[0].Hash != hash4 {
		t.Fatalf("hash=%q", warnings[0].Hash)
	}
	if !strings.Contains(warnings[0].Message, "body was updated") {
		t.Fatalf("message=%q", warnings[0].Message)
	}
}

func TestCheckConsistencySignatureDrift(t *testing.T) {
	history := &fakeHistory{responses: map[string]string{
		"1-1": logEntry(hash3, "Tue Aug 25 10:00:00 2026 +0000", "Change signature"),
		"2-2": logEntry(hash1, "Sun Aug 23 09:00:00 2026 +0000", "Initial commit"),
		"3-4": logEntry(hash2, "Mon Aug 24 10:00:00 2026 +0000", "Body tweak"),
	}}

	checker := NewChecker("calc.py", []model.Definition{calcDef()}, history, Options{})
	warnings := checker.CheckConsistency(context.Background(), "calculate")

	if len(warnings) != 1 {
		t.Fatalf("warnings=%+v", warnings)
	}
	if warnings[0].Hash != hash3 {
		t.Fatalf("hash=%q", warnings[0].Hash)
	}
	if !strings.Contains(warnings[0].Message, "signature was updated") {
		t.Fatalf("message=%q", warnings[0].Message)
	}
}

func TestCheckConsistencyBothRulesFire(t *testing.T) {
	history := &fakeHistory{responses: map[string]string{
		"1-1": logEntry(hash2, "Mon Aug 24 10:00:00 2026 +0000", "Change signature"),
		"2-2": logEntry(hash1, "Sun Aug 23 09:00:00 2026 +0000", "Initial commit"),
		"3-4": logEntry(hash4, "Wed Aug 26 10:00:00 2026 +0000", "Rework body"),
	}}

	checker := NewChecker("calc.py", []model.Definition{calcDef()}, history, Options{})
	warnings := checker.CheckConsistency(context.Background(), "calculate")

	if len(warnings) != 2 {
		t.Fatalf("warnings=%+v", warnings)
	}
	if warnings[0].Hash != hash4 || warnings[1].Hash != hash2 {
		t.Fatalf("hashes=%q %q", warnings[0].Hash, warnings[1].Hash)
	}
}

func TestCheckConsistencyTiesDoNotWarn(t *testing.T) {
	same := "Mon Aug 24 10:00:00 2026 +0000"
	history := &fakeHistory{responses: map[string]string{
		"1-1": logEntry(hash2, same, "One commit touching everything"),
		"2-2": logEntry(hash2, same, "One commit touching everything"),
		"3-4": logEntry(hash2, same, "One commit touching everything"),
	}}

	checker := NewChecker("calc.py", []model.Definition{calcDef()}, history, Options{})
	if warnings := checker.CheckConsistency(context.Background(), "calculate"); len(warnings) != 0 {
		t.Fatalf("warnings=%+v", warnings)
	}
}

func TestCheckConsistencyUnknownName(t *testing.T) {
	history := &fakeHistory{responses: map[string]string{}}
	checker := NewChecker("calc.py", []model.Definition{calcDef()}, history, Options{})
	if warnings := checker.CheckConsistency(context.Background(), "missing"); len(warnings) != 0 {
		t.Fatalf("warnings=%+v", warnings)
	}
}

// A category with no history at all looks infinitely old. A signature edit
// then warns even though the docstring never had history. Kept on purpose.
func TestCheckConsistencyMissingHistoryLooksOld(t *testing.T) {
	def := calcDef()
	def.Body[0].IsString = false // no docstring, doc batch is empty

	history := &fakeHistory{responses: map[string]string{
		"1-1": logEntry(hash2, "Mon Aug 24 10:00:00 2026 +0000", "Change signature"),
		"2-4": logEntry(hash1, "Sun Aug 23 09:00:00 2026 +0000", "Initial commit"),
	}}

	checker := NewChecker("calc.py", []model.Definition{def}, history, Options{})
	warnings := checker.CheckConsistency(context.Background(), "calculate")

	if len(warnings) != 1 {
		t.Fatalf("warnings=%+v", warnings)
	}
	if !strings.Contains(warnings[0].Message, "signature was updated") {
		t.Fatalf("message=%q", warnings[0].Message)
	}
}

func TestCheckConsistencyOverloadsExcludedFromBody(t *testing.T) {
	overload := model.Definition{
		Name:  "calculate",
		Start: 2,
		End:   2,
		Decorators: []model.Decorator{{
			Line: 1,
			Ref:  model.DecoratorRef{Kind: model.RefSimple, Name: "overload"},
		}},
		Body: []model.Statement{{Start: 2, End: 2}},
	}
	impl := calcDef()
	impl.Start, impl.End = 4, 7
	impl.Body = []model.Statement{
		{Start: 5, End: 5, IsString: true},
		{Start: 6, End: 6},
		{Start: 7, End: 7},
	}

	var bodyBatches []string
	history := &fakeHistory{responses: map[string]string{}}
	recorded := historyRecorder{inner: history, batches: &bodyBatches}

	checker := NewChecker("calc.py", []model.Definition{overload, impl}, recorded, Options{})
	checker.CheckConsistency(context.Background(), "calculate")

	// Batches arrive as signature, docstring, body. The overload's lines
	// 1-2 may appear in the signature batch only.
	if len(bodyBatches) != 3 {
		t.Fatalf("batches=%v", bodyBatches)
	}
	if bodyBatches[0] != "1-2,4-4" {
		t.Fatalf("signature batch=%q", bodyBatches[0])
	}
	if bodyBatches[1] != "5-5" {
		t.Fatalf("docstring batch=%q", bodyBatches[1])
	}
	if bodyBatches[2] != "6-7" {
		t.Fatalf("body batch=%q", bodyBatches[2])
	}
}

type historyRecorder struct {
	inner   *fakeHistory
	batches *[]string
}

func (r historyRecorder) FetchHistory(ctx context.Context, filePath string, ranges []model.LineRange, maxCount int) string {
	*r.batches = append(*r.batches, rangeKey(ranges))
	return r.inner.FetchHistory(ctx, filePath, ranges, maxCount)
}
