package githist

import (
	"regexp"
	"strings"

	"docdrift/internal/model"
)

// parseState tracks where inside a revision block the parser is. Each
// revision runs header -> message -> diff; a new commit marker resets to
// header from any state.
type parseState int

const (
	stateHeader parseState = iota
	stateMessage
	stateDiff
)

var (
	commitPattern = regexp.MustCompile(`^commit\s+([0-9a-f]{40})`)
	authorPattern = regexp.MustCompile(`^Author:\s+(.+)\s+<(.+)>`)
	datePattern   = regexp.MustCompile(`^Date:\s+(.+)`)
	diffPattern   = regexp.MustCompile(`^diff\s--git`)
)

// ParseLog converts raw (possibly concatenated) log output into an ordered
// revision log. Lines before the first commit marker are ignored; end of
// input flushes the open record like a new marker would.
func ParseLog(text string) *model.RevisionLog {
	log := model.NewRevisionLog()

	var cur *model.RevisionRecord
	var msg, diff []string
	state := stateHeader

	flush := func() {
		if cur == nil {
			return
		}
		cur.Message = strings.TrimSpace(strings.Join(msg, "\n"))
		cur.Diff = strings.Join(diff, "\n")
		log.Add(*cur)
	}

	for _, line := range splitLines(text) {
		if m := commitPattern.FindStringSubmatch(line); m != nil {
			flush()
			cur = &model.RevisionRecord{Hash: m[1]}
			msg, diff = nil, nil
			state = stateHeader
			continue
		}
		if cur == nil {
			continue
		}

		switch state {
		case stateHeader:
			if m := authorPattern.FindStringSubmatch(line); m != nil {
				cur.AuthorName = strings.TrimSpace(m[1])
				cur.AuthorEmail = strings.TrimSpace(m[2])
				continue
			}
			if m := datePattern.FindStringSubmatch(line); m != nil {
				cur.Date = strings.TrimSpace(m[1])
				state = stateMessage
				continue
			}
		case stateMessage:
			if diffPattern.MatchString(line) {
				state = stateDiff
				diff = append(diff, line)
				continue
			}
			msg = append(msg, line)
		case stateDiff:
			diff = append(diff, line)
		}
	}

	flush()
	return log
}

// splitLines splits on newlines without inventing a final empty line for
// newline-terminated text, so diffs do not pick up a trailing blank.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
