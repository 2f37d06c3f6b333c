package port

// FileArchiver persists a raw upload as a side capability. It sits off the
// critical path: callers log archive failures and continue.
type FileArchiver interface {
	Save(content []byte, filename string) (string, error)
}
