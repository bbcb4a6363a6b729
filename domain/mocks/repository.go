package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/forum-api/domain"
)

// ThreadRepository is a mock type for the ThreadRepository type
type ThreadRepository struct {
	mock.Mock
}

func (m *ThreadRepository) AddThread(ctx context.Context, t domain.AddThread) (domain.AddedThread, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(domain.AddedThread), args.Error(1)
}

func (m *ThreadRepository) GetThreadByID(ctx context.Context, id string) (domain.Thread, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Thread), args.Error(1)
}

func (m *ThreadRepository) VerifyThreadByID(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// CommentRepository is a mock type for the CommentRepository type
type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) AddComment(ctx context.Context, c domain.AddComment) (domain.AddedComment, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(domain.AddedComment), args.Error(1)
}

func (m *CommentRepository) DeleteComment(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *CommentRepository) GetCommentsByThreadID(ctx context.Context, threadID string) ([]domain.Comment, error) {
	args := m.Called(ctx, threadID)
	res, _ := args.Get(0).([]domain.Comment)
	return res, args.Error(1)
}

func (m *CommentRepository) GetCommentOwner(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *CommentRepository) VerifyCommentByID(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// ReplyRepository is a mock type for the ReplyRepository type
type ReplyRepository struct {
	mock.Mock
}

func (m *ReplyRepository) AddReply(ctx context.Context, r domain.AddReply) (domain.AddedReply, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(domain.AddedReply), args.Error(1)
}

func (m *ReplyRepository) DeleteReply(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ReplyRepository) GetRepliesByCommentID(ctx context.Context, commentID string) ([]domain.Reply, error) {
	args := m.Called(ctx, commentID)
	res, _ := args.Get(0).([]domain.Reply)
	return res, args.Error(1)
}

func (m *ReplyRepository) GetReplyOwner(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

// LikeRepository is a mock type for the LikeRepository type
type LikeRepository struct {
	mock.Mock
}

func (m *LikeRepository) AddLike(ctx context.Context, l domain.Like) error {
	return m.Called(ctx, l).Error(0)
}

func (m *LikeRepository) DeleteLike(ctx context.Context, l domain.Like) error {
	return m.Called(ctx, l).Error(0)
}

func (m *LikeRepository) VerifyLike(ctx context.Context, l domain.Like) (bool, error) {
	args := m.Called(ctx, l)
	return args.Bool(0), args.Error(1)
}

func (m *LikeRepository) GetLikeCount(ctx context.Context, commentID string) (int64, error) {
	args := m.Called(ctx, commentID)
	return args.Get(0).(int64), args.Error(1)
}

// LikeCountCache is a mock type for the LikeCountCache type
type LikeCountCache struct {
	mock.Mock
}

func (m *LikeCountCache) GetLikeCount(ctx context.Context, commentID string) (int64, error) {
	args := m.Called(ctx, commentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *LikeCountCache) SetLikeCount(ctx context.Context, commentID string, count int64) error {
	return m.Called(ctx, commentID, count).Error(0)
}

func (m *LikeCountCache) DeleteLikeCount(ctx context.Context, commentID string) error {
	return m.Called(ctx, commentID).Error(0)
}

// BloomRepository is a mock type for the BloomRepository type
type BloomRepository struct {
	mock.Mock
}

func (m *BloomRepository) Add(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *BloomRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *BloomRepository) BulkAdd(ctx context.Context, ids []string) error {
	return m.Called(ctx, ids).Error(0)
}

func (m *BloomRepository) MarkReady(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *BloomRepository) MarkNotReady(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// ThreadIDFetcher is a mock type for the ThreadIDFetcher type
type ThreadIDFetcher struct {
	mock.Mock
}

func (m *ThreadIDFetcher) FetchThreadIDs(ctx context.Context, cursor string, limit int) ([]string, error) {
	args := m.Called(ctx, cursor, limit)
	res, _ := args.Get(0).([]string)
	return res, args.Error(1)
}

var (
	_ domain.ThreadRepository  = (*ThreadRepository)(nil)
	_ domain.CommentRepository = (*CommentRepository)(nil)
	_ domain.ReplyRepository   = (*ReplyRepository)(nil)
	_ domain.LikeRepository    = (*LikeRepository)(nil)
	_ domain.LikeCountCache    = (*LikeCountCache)(nil)
	_ domain.BloomRepository   = (*BloomRepository)(nil)
	_ domain.ThreadIDFetcher   = (*ThreadIDFetcher)(nil)
)
