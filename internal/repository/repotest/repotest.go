// Package repotest holds behaviour checks shared by every storage backend.
package repotest

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/forum-api/domain"
)

// Store bundles the repositories of one backend.
type Store struct {
	Users    domain.UserRepository
	Threads  domain.ThreadRepository
	Comments domain.CommentRepository
	Replies  domain.ReplyRepository
	Likes    domain.LikeRepository
	// IDs is optional; the pagination checks are skipped when nil.
	IDs domain.ThreadIDFetcher
}

// Factory returns an empty store for one subtest.
type Factory func(t *testing.T) Store

// Run executes the suite against stores built by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Run("users", func(t *testing.T) { testUsers(t, newStore(t)) })
	t.Run("threads", func(t *testing.T) { testThreads(t, newStore(t)) })
	t.Run("comments", func(t *testing.T) { testComments(t, newStore(t)) })
	t.Run("replies", func(t *testing.T) { testReplies(t, newStore(t)) })
	t.Run("likes", func(t *testing.T) { testLikes(t, newStore(t)) })
	t.Run("dangling references", func(t *testing.T) { testDanglingReferences(t, newStore(t)) })
	t.Run("thread ids", func(t *testing.T) {
		s := newStore(t)
		if s.IDs == nil {
			t.Skip("store does not page thread ids")
		}
		testThreadIDs(t, s)
	})
}

func addUser(t *testing.T, s Store) domain.User {
	t.Helper()
	u := &domain.User{
		Username: strings.ToLower(faker.Username()) + faker.UUIDDigit()[:8],
		Password: "secret",
		Fullname: faker.Name(),
	}
	require.NoError(t, s.Users.Insert(context.TODO(), u))
	require.NotEmpty(t, u.ID)
	return *u
}

func addThread(t *testing.T, s Store, owner string) domain.AddedThread {
	t.Helper()
	added, err := s.Threads.AddThread(context.TODO(), domain.AddThread{
		Title: faker.Sentence(),
		Body:  faker.Paragraph(),
		Owner: owner,
	})
	require.NoError(t, err)
	return added
}

func addComment(t *testing.T, s Store, threadID, owner, content string) domain.AddedComment {
	t.Helper()
	added, err := s.Comments.AddComment(context.TODO(), domain.AddComment{
		Content:  content,
		ThreadID: threadID,
		Owner:    owner,
	})
	require.NoError(t, err)
	// keep creation dates distinct so ordering is observable
	time.Sleep(2 * time.Millisecond)
	return added
}

func testUsers(t *testing.T, s Store) {
	ctx := context.TODO()
	u := addUser(t, s)

	got, err := s.Users.GetByUsername(ctx, u.Username)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, u.Fullname, got.Fullname)

	dup := &domain.User{Username: u.Username, Password: "x", Fullname: "x"}
	assert.ErrorIs(t, s.Users.Insert(ctx, dup), domain.ErrConflict)

	_, err = s.Users.GetByUsername(ctx, "nobody-"+faker.UUIDDigit())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func testThreads(t *testing.T, s Store) {
	ctx := context.TODO()
	u := addUser(t, s)

	in := domain.AddThread{Title: "sebuah thread", Body: "sebuah body thread", Owner: u.ID}
	added, err := s.Threads.AddThread(ctx, in)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(added.ID, "thread-"))
	assert.Equal(t, in.Title, added.Title)
	assert.Equal(t, u.ID, added.Owner)

	require.NoError(t, s.Threads.VerifyThreadByID(ctx, added.ID))
	assert.ErrorIs(t, s.Threads.VerifyThreadByID(ctx, "thread-xxx"), domain.ErrThreadNotFound)

	th, err := s.Threads.GetThreadByID(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, added.ID, th.ID)
	assert.Equal(t, in.Body, th.Body)
	assert.Equal(t, u.Username, th.Username)
	assert.False(t, th.Date.IsZero())
	assert.Empty(t, th.Comments)

	_, err = s.Threads.GetThreadByID(ctx, "thread-xxx")
	assert.ErrorIs(t, err, domain.ErrThreadNotFound)
}

func testComments(t *testing.T, s Store) {
	ctx := context.TODO()
	u := addUser(t, s)
	th := addThread(t, s, u.ID)
	other := addThread(t, s, u.ID)

	first := addComment(t, s, th.ID, u.ID, "komentar pertama")
	second := addComment(t, s, th.ID, u.ID, "komentar kedua")
	addComment(t, s, other.ID, u.ID, "komentar lain")

	assert.True(t, strings.HasPrefix(first.ID, "comment-"))
	assert.Equal(t, "komentar pertama", first.Content)
	assert.Equal(t, u.ID, first.Owner)

	owner, err := s.Comments.GetCommentOwner(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, owner)

	require.NoError(t, s.Comments.VerifyCommentByID(ctx, second.ID))
	assert.ErrorIs(t, s.Comments.VerifyCommentByID(ctx, "comment-xxx"), domain.ErrCommentNotFound)
	_, err = s.Comments.GetCommentOwner(ctx, "comment-xxx")
	assert.ErrorIs(t, err, domain.ErrCommentNotFound)

	require.NoError(t, s.Comments.DeleteComment(ctx, first.ID))
	// deleting twice is not an error
	require.NoError(t, s.Comments.DeleteComment(ctx, first.ID))
	assert.ErrorIs(t, s.Comments.DeleteComment(ctx, "comment-xxx"), domain.ErrCommentNotFound)

	comments, err := s.Comments.GetCommentsByThreadID(ctx, th.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, first.ID, comments[0].ID)
	assert.True(t, comments[0].IsDeleted)
	assert.Equal(t, domain.DeletedCommentContent, comments[0].Content)
	assert.Equal(t, second.ID, comments[1].ID)
	assert.Equal(t, "komentar kedua", comments[1].Content)
	assert.Equal(t, u.Username, comments[1].Username)
	assert.False(t, comments[1].Date.Before(comments[0].Date))

	empty, err := s.Comments.GetCommentsByThreadID(ctx, "thread-xxx")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func testReplies(t *testing.T, s Store) {
	ctx := context.TODO()
	u := addUser(t, s)
	th := addThread(t, s, u.ID)
	c := addComment(t, s, th.ID, u.ID, "komentar")

	add := func(content string) domain.AddedReply {
		r, err := s.Replies.AddReply(ctx, domain.AddReply{
			Content: content, ThreadID: th.ID, CommentID: c.ID, Owner: u.ID,
		})
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
		return r
	}
	first := add("balasan pertama")
	second := add("balasan kedua")
	assert.True(t, strings.HasPrefix(first.ID, "reply-"))

	owner, err := s.Replies.GetReplyOwner(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, owner)
	_, err = s.Replies.GetReplyOwner(ctx, "reply-xxx")
	assert.ErrorIs(t, err, domain.ErrReplyNotFound)

	require.NoError(t, s.Replies.DeleteReply(ctx, second.ID))
	require.NoError(t, s.Replies.DeleteReply(ctx, second.ID))
	assert.ErrorIs(t, s.Replies.DeleteReply(ctx, "reply-xxx"), domain.ErrReplyNotFound)

	replies, err := s.Replies.GetRepliesByCommentID(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, replies, 2)
	assert.Equal(t, "balasan pertama", replies[0].Content)
	assert.Equal(t, second.ID, replies[1].ID)
	assert.Equal(t, domain.DeletedReplyContent, replies[1].Content)
	assert.Equal(t, u.Username, replies[1].Username)

	empty, err := s.Replies.GetRepliesByCommentID(ctx, "comment-xxx")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func testLikes(t *testing.T, s Store) {
	ctx := context.TODO()
	u := addUser(t, s)
	other := addUser(t, s)
	th := addThread(t, s, u.ID)
	c := addComment(t, s, th.ID, u.ID, "komentar")

	l := domain.Like{CommentID: c.ID, Owner: u.ID}

	liked, err := s.Likes.VerifyLike(ctx, l)
	require.NoError(t, err)
	assert.False(t, liked)

	require.NoError(t, s.Likes.AddLike(ctx, l))
	// a duplicate like is absorbed
	require.NoError(t, s.Likes.AddLike(ctx, l))
	require.NoError(t, s.Likes.AddLike(ctx, domain.Like{CommentID: c.ID, Owner: other.ID}))

	liked, err = s.Likes.VerifyLike(ctx, l)
	require.NoError(t, err)
	assert.True(t, liked)

	count, err := s.Likes.GetLikeCount(ctx, c.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	require.NoError(t, s.Likes.DeleteLike(ctx, l))
	assert.ErrorIs(t, s.Likes.DeleteLike(ctx, l), domain.ErrLikeNotFound)

	count, err = s.Likes.GetLikeCount(ctx, c.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	count, err = s.Likes.GetLikeCount(ctx, "comment-xxx")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func testDanglingReferences(t *testing.T, s Store) {
	ctx := context.TODO()
	u := addUser(t, s)
	th := addThread(t, s, u.ID)
	c := addComment(t, s, th.ID, u.ID, "komentar")
	ghost := "user-" + faker.UUIDDigit()

	_, err := s.Threads.AddThread(ctx, domain.AddThread{Title: "t", Body: "b", Owner: ghost})
	assert.ErrorIs(t, err, domain.ErrBadParamInput)

	_, err = s.Comments.AddComment(ctx, domain.AddComment{Content: "k", ThreadID: "thread-xxx", Owner: u.ID})
	assert.ErrorIs(t, err, domain.ErrThreadNotFound)
	_, err = s.Comments.AddComment(ctx, domain.AddComment{Content: "k", ThreadID: th.ID, Owner: ghost})
	assert.ErrorIs(t, err, domain.ErrBadParamInput)

	_, err = s.Replies.AddReply(ctx, domain.AddReply{Content: "b", ThreadID: th.ID, CommentID: "comment-xxx", Owner: u.ID})
	assert.ErrorIs(t, err, domain.ErrCommentNotFound)
	_, err = s.Replies.AddReply(ctx, domain.AddReply{Content: "b", ThreadID: th.ID, CommentID: c.ID, Owner: ghost})
	assert.ErrorIs(t, err, domain.ErrBadParamInput)

	assert.ErrorIs(t, s.Likes.AddLike(ctx, domain.Like{CommentID: "comment-xxx", Owner: u.ID}), domain.ErrCommentNotFound)
	assert.ErrorIs(t, s.Likes.AddLike(ctx, domain.Like{CommentID: c.ID, Owner: ghost}), domain.ErrBadParamInput)
}

func testThreadIDs(t *testing.T, s Store) {
	ctx := context.TODO()
	u := addUser(t, s)

	want := make(map[string]bool)
	for range 5 {
		want[addThread(t, s, u.ID).ID] = true
	}

	var got []string
	cursor := ""
	for {
		page, err := s.IDs.FetchThreadIDs(ctx, cursor, 2)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(page), 2)
		if len(page) == 0 {
			break
		}
		got = append(got, page...)
		cursor = page[len(page)-1]
	}

	assert.Len(t, got, len(want))
	for _, id := range got {
		assert.True(t, want[id], id)
	}
}
