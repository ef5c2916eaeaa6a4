package dataload

// Error message constants
const (
	ErrMsgBlobNil = "database is nil"
)
