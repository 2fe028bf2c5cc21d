package prompt

// queryState tracks the pattern last sent to the glob function and the
// token of the newest query. Only that query's result may replace matches.
type queryState struct {
	pattern string
	next    uint64
	pending uint64
	applied uint64
	matches []string
}

// issue records a new query for pattern and returns its token
func (q *queryState) issue(pattern string) uint64 {
	q.next++
	q.pending = q.next
	q.pattern = pattern
	return q.pending
}

// accept applies paths if token belongs to the newest query and has not been
// applied yet. It reports whether the result was applied.
func (q *queryState) accept(token uint64, paths []string) bool {
	if token != q.pending || token == q.applied {
		return false
	}
	q.applied = token
	q.matches = paths
	return true
}
