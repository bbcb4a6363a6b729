package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/forum-api/domain"
)

// ThreadUsecase is a mock type for the ThreadUsecase type
type ThreadUsecase struct {
	mock.Mock
}

func (m *ThreadUsecase) AddThread(ctx context.Context, p domain.AddThreadPayload) (domain.AddedThread, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.AddedThread), args.Error(1)
}

func (m *ThreadUsecase) GetThreadDetail(ctx context.Context, threadID string) (domain.Thread, error) {
	args := m.Called(ctx, threadID)
	return args.Get(0).(domain.Thread), args.Error(1)
}

// CommentUsecase is a mock type for the CommentUsecase type
type CommentUsecase struct {
	mock.Mock
}

func (m *CommentUsecase) AddComment(ctx context.Context, p domain.AddCommentPayload) (domain.AddedComment, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.AddedComment), args.Error(1)
}

func (m *CommentUsecase) DeleteComment(ctx context.Context, commentID, threadID, userID string) error {
	return m.Called(ctx, commentID, threadID, userID).Error(0)
}

// ReplyUsecase is a mock type for the ReplyUsecase type
type ReplyUsecase struct {
	mock.Mock
}

func (m *ReplyUsecase) AddReply(ctx context.Context, p domain.AddReplyPayload) (domain.AddedReply, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.AddedReply), args.Error(1)
}

func (m *ReplyUsecase) DeleteReply(ctx context.Context, commentID, replyID, threadID, userID string) error {
	return m.Called(ctx, commentID, replyID, threadID, userID).Error(0)
}

// LikeUsecase is a mock type for the LikeUsecase type
type LikeUsecase struct {
	mock.Mock
}

func (m *LikeUsecase) ToggleLike(ctx context.Context, commentID, threadID, userID string) (bool, error) {
	args := m.Called(ctx, commentID, threadID, userID)
	return args.Bool(0), args.Error(1)
}

var (
	_ domain.ThreadUsecase  = (*ThreadUsecase)(nil)
	_ domain.CommentUsecase = (*CommentUsecase)(nil)
	_ domain.ReplyUsecase   = (*ReplyUsecase)(nil)
	_ domain.LikeUsecase    = (*LikeUsecase)(nil)
)
