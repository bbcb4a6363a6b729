package domain

import "context"

// The Unimplemented* types satisfy a repository port and fail every call with
// an error of kind ErrMethodNotImplemented. Adapters may embed them.

type UnimplementedThreadRepository struct{}

var _ ThreadRepository = UnimplementedThreadRepository{}

func (UnimplementedThreadRepository) AddThread(context.Context, AddThread) (AddedThread, error) {
	return AddedThread{}, ErrThreadRepositoryNotImplemented
}

func (UnimplementedThreadRepository) GetThreadByID(context.Context, string) (Thread, error) {
	return Thread{}, ErrThreadRepositoryNotImplemented
}

func (UnimplementedThreadRepository) VerifyThreadByID(context.Context, string) error {
	return ErrThreadRepositoryNotImplemented
}

type UnimplementedCommentRepository struct{}

var _ CommentRepository = UnimplementedCommentRepository{}

func (UnimplementedCommentRepository) AddComment(context.Context, AddComment) (AddedComment, error) {
	return AddedComment{}, ErrCommentRepositoryNotImplemented
}

func (UnimplementedCommentRepository) DeleteComment(context.Context, string) error {
	return ErrCommentRepositoryNotImplemented
}

func (UnimplementedCommentRepository) GetCommentsByThreadID(context.Context, string) ([]Comment, error) {
	return nil, ErrCommentRepositoryNotImplemented
}

func (UnimplementedCommentRepository) GetCommentOwner(context.Context, string) (string, error) {
	return "", ErrCommentRepositoryNotImplemented
}

func (UnimplementedCommentRepository) VerifyCommentByID(context.Context, string) error {
	return ErrCommentRepositoryNotImplemented
}

type UnimplementedReplyRepository struct{}

var _ ReplyRepository = UnimplementedReplyRepository{}

func (UnimplementedReplyRepository) AddReply(context.Context, AddReply) (AddedReply, error) {
	return AddedReply{}, ErrReplyRepositoryNotImplemented
}

func (UnimplementedReplyRepository) DeleteReply(context.Context, string) error {
	return ErrReplyRepositoryNotImplemented
}

func (UnimplementedReplyRepository) GetRepliesByCommentID(context.Context, string) ([]Reply, error) {
	return nil, ErrReplyRepositoryNotImplemented
}

func (UnimplementedReplyRepository) GetReplyOwner(context.Context, string) (string, error) {
	return "", ErrReplyRepositoryNotImplemented
}

type UnimplementedLikeRepository struct{}

var _ LikeRepository = UnimplementedLikeRepository{}

func (UnimplementedLikeRepository) AddLike(context.Context, Like) error {
	return ErrLikeRepositoryNotImplemented
}

func (UnimplementedLikeRepository) DeleteLike(context.Context, Like) error {
	return ErrLikeRepositoryNotImplemented
}

func (UnimplementedLikeRepository) VerifyLike(context.Context, Like) (bool, error) {
	return false, ErrLikeRepositoryNotImplemented
}

func (UnimplementedLikeRepository) GetLikeCount(context.Context, string) (int64, error) {
	return 0, ErrLikeRepositoryNotImplemented
}
