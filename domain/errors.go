package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
	// ErrForbidden will throw if the caller is authenticated but not allowed to touch the resource
	ErrForbidden = errors.New("you are not allowed to access this resource")
	// ErrUnauthorized will throw if the caller carries no valid credentials
	ErrUnauthorized = errors.New("missing authentication")
	// ErrCacheMiss is returned by cache adapters when the key is absent
	ErrCacheMiss = errors.New("cache miss")
	// ErrMethodNotImplemented is the kind behind every Unimplemented* port stub
	ErrMethodNotImplemented = errors.New("method not implemented")
	// ErrNotContainNeededProperty will throw if a payload misses a required field
	ErrNotContainNeededProperty = errors.New("payload does not contain needed property")
	// ErrNotMeetDataTypeSpecification will throw if a payload field has the wrong type
	ErrNotMeetDataTypeSpecification = errors.New("payload does not meet data type specification")
)

// Error is a concrete failure carrying a stable code. Kind is one of the
// sentinels above so callers can branch with errors.Is.
type Error struct {
	Kind error
	Code string
}

func (e *Error) Error() string {
	return e.Code
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, code string) *Error {
	return &Error{Kind: kind, Code: code}
}

// Validation errors, one pair per entity.
var (
	ErrAddThreadMissingProperty  = newError(ErrNotContainNeededProperty, "ADD_THREAD.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrAddThreadDataType         = newError(ErrNotMeetDataTypeSpecification, "ADD_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION")
	ErrAddCommentMissingProperty = newError(ErrNotContainNeededProperty, "ADD_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrAddCommentDataType        = newError(ErrNotMeetDataTypeSpecification, "ADD_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION")
	ErrAddReplyMissingProperty   = newError(ErrNotContainNeededProperty, "ADD_REPLY.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrAddReplyDataType          = newError(ErrNotMeetDataTypeSpecification, "ADD_REPLY.NOT_MEET_DATA_TYPE_SPECIFICATION")
	ErrThreadMissingProperty     = newError(ErrNotContainNeededProperty, "THREAD.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrCommentMissingProperty    = newError(ErrNotContainNeededProperty, "COMMENT.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrReplyMissingProperty      = newError(ErrNotContainNeededProperty, "REPLY.NOT_CONTAIN_NEEDED_PROPERTY")
)

var (
	ErrThreadNotFound  = newError(ErrNotFound, "THREAD.NOT_FOUND")
	ErrCommentNotFound = newError(ErrNotFound, "COMMENT.NOT_FOUND")
	ErrReplyNotFound   = newError(ErrNotFound, "REPLY.NOT_FOUND")
	ErrLikeNotFound    = newError(ErrNotFound, "LIKE.NOT_FOUND")

	// ErrNotResourceOwner is returned when the acting user does not own the comment or reply.
	ErrNotResourceOwner = newError(ErrForbidden, "RESOURCE.NOT_OWNER")
)

var (
	ErrThreadRepositoryNotImplemented  = newError(ErrMethodNotImplemented, "THREAD_REPOSITORY.METHOD_NOT_IMPLEMENTED")
	ErrCommentRepositoryNotImplemented = newError(ErrMethodNotImplemented, "COMMENT_REPOSITORY.METHOD_NOT_IMPLEMENTED")
	ErrReplyRepositoryNotImplemented   = newError(ErrMethodNotImplemented, "REPLY_REPOSITORY.METHOD_NOT_IMPLEMENTED")
	ErrLikeRepositoryNotImplemented    = newError(ErrMethodNotImplemented, "LIKE_REPOSITORY.METHOD_NOT_IMPLEMENTED")
)
