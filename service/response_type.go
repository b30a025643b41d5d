package service

// ResponseType enumerates the outcomes of a service call
type ResponseType int

const (
	// InvalidData response, nothing was sent to the coordinator
	InvalidData ResponseType = iota

	// Error response
	Error

	// UpstreamError response, the coordinator answered with a non-200 status
	UpstreamError

	// NotFound response
	NotFound

	// Success response
	Success
)

var vals = [...]string{
	"invalid-data",
	"error",
	"upstream-error",
	"not-found",
	"success",
}

// String representation of `ResponseType`
func (a ResponseType) String() string {
	return vals[a]
}
