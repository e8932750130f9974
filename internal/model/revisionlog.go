package model

// RevisionLog maps revision hashes to records while preserving insertion
// order. The history tool emits newest first, so the first entry is always
// the most recent revision; nothing here may re-sort it.
type RevisionLog struct {
	hashes []string
	byHash map[string]RevisionRecord
}

func NewRevisionLog() *RevisionLog {
	return &RevisionLog{byHash: make(map[string]RevisionRecord)}
}

// Add inserts or replaces a record. A repeated hash keeps its original
// position.
func (l *RevisionLog) Add(rec RevisionRecord) {
	if _, ok := l.byHash[rec.Hash]; !ok {
		l.hashes = append(l.hashes, rec.Hash)
	}
	l.byHash[rec.Hash] = rec
}

func (l *RevisionLog) Len() int {
	return len(l.hashes)
}

func (l *RevisionLog) Get(hash string) (RevisionRecord, bool) {
	rec, ok := l.byHash[hash]
	return rec, ok
}

// Hashes returns hashes in insertion order, newest first.
func (l *RevisionLog) Hashes() []string {
	out := make([]string, len(l.hashes))
	copy(out, l.hashes)
	return out
}

// First returns the newest record, if any.
func (l *RevisionLog) First() (RevisionRecord, bool) {
	if len(l.hashes) == 0 {
		return RevisionRecord{}, false
	}
	return l.byHash[l.hashes[0]], true
}
