// Package drift cross-references the edit history of a definition's
// signature, doc comment, and body, and warns when one category's latest
// revision postdates another's.
package drift

import (
	"context"
	"time"

	"docdrift/internal/core/githist"
	"docdrift/internal/core/locate"
	"docdrift/internal/model"
)

// gitDateLayout matches git's default human-readable commit date,
// e.g. "Fri Jan 11 20:23:51 2026 +0100".
const gitDateLayout = "Mon Jan 2 15:04:05 2006 -0700"

// HistorySource is the VCS-facing seam: one call per range batch, returning
// raw history text with per-range failures embedded inline.
type HistorySource interface {
	FetchHistory(ctx context.Context, filePath string, ranges []model.LineRange, maxCount int) string
}

type Options struct {
	MaxCount int // revisions per range, default 5
}

type Checker struct {
	path     string
	defs     []model.Definition
	history  HistorySource
	maxCount int
}

func NewChecker(path string, defs []model.Definition, history HistorySource, opts Options) *Checker {
	maxCount := opts.MaxCount
	if maxCount <= 0 {
		maxCount = githist.DefaultMaxCount
	}
	return &Checker{path: path, defs: defs, history: history, maxCount: maxCount}
}

// LatestRevision returns the newest revision's time and hash: the first
// entry of the log, since the history tool emits newest first. An empty log
// yields the zero time and an empty hash. A date that fails to parse also
// yields the zero time, treated as infinitely old, while keeping the hash.
func LatestRevision(log *model.RevisionLog) (time.Time, string) {
	rec, ok := log.First()
	if !ok {
		return time.Time{}, ""
	}
	t, err := time.Parse(gitDateLayout, rec.Date)
	if err != nil {
		return time.Time{}, rec.Hash
	}
	return t, rec.Hash
}

// CheckConsistency fetches history for the signature, doc comment, and body
// ranges of every definition matching name and applies the drift rules.
// A category with no history looks infinitely old, which can trigger a
// warning by itself; that is accepted behavior. The result
// is always returned, never an error: query failures are embedded as text
// upstream and parse to empty logs here.
func (c *Checker) CheckConsistency(ctx context.Context, name string) []model.Warning {
	defs := locate.FindDefinitions(c.defs, name)

	sigLog := c.fetch(ctx, locate.SignatureRanges(defs))
	docLog := c.fetch(ctx, locate.DocCommentRanges(defs))
	bodyLog := c.fetch(ctx, locate.BodyRanges(defs))

	dateSig, hashSig := LatestRevision(sigLog)
	dateDoc, _ := LatestRevision(docLog)
	dateBody, hashBody := LatestRevision(bodyLog)

	var warnings []model.Warning

	// Rule A: the body drifted ahead of both signature and documentation.
	if dateBody.After(dateSig) && dateBody.After(dateDoc) {
		warnings = append(warnings, model.Warning{
			Message: "check the docstring or function, as the body was updated",
			Hash:    hashBody,
		})
	}

	// Rule B: the signature drifted ahead of the documentation. Equal
	// timestamps never warn.
	if dateSig.After(dateDoc) {
		warnings = append(warnings, model.Warning{
			Message: "check the docstring, as the signature was updated",
			Hash:    hashSig,
		})
	}

	return warnings
}

func (c *Checker) fetch(ctx context.Context, ranges []model.LineRange) *model.RevisionLog {
	return githist.ParseLog(c.history.FetchHistory(ctx, c.path, ranges, c.maxCount))
}
