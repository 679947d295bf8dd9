package core

// ErrorKind identifies why a request was rejected. The values double as the
// wire payload of an error response.
type ErrorKind string

const (
	// ErrNameExisted means the join name collides with an online user.
	ErrNameExisted ErrorKind = "nameExisted"
	// ErrInvalidName means the join name fails the format constraint.
	ErrInvalidName ErrorKind = "invalidName"
	// ErrInvalidRequest means the payload did not match the request schema.
	ErrInvalidRequest ErrorKind = "invalidRequest"
	// ErrNotJoined means a post arrived before a successful join.
	ErrNotJoined ErrorKind = "notJoined"
	// ErrInvalidMessage means the post text is empty.
	ErrInvalidMessage ErrorKind = "invalidMessage"
)

func (k ErrorKind) String() string { return string(k) }
