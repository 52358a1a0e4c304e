package searcher

// Reporter receives search results as they are found. OnStart fires before
// any file is opened, OnMatch once per matching line in enumeration order,
// OnDone once with the final count after a clean run.
type Reporter interface {
	OnStart(req Request)
	OnMatch(m Match)
	OnDone(count int)
}
