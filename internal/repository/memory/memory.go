// Package memory keeps the forum in process memory. It enforces the same
// references and uniqueness rules as the SQL schema and is used for local runs
// (DATABASE_DRIVER=memory) and end-to-end tests.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Guyuepp/forum-api/domain"
)

type thread struct {
	domain.AddThread
	id   string
	date time.Time
}

type comment struct {
	domain.AddComment
	id        string
	isDeleted bool
	date      time.Time
	seq       uint64
}

type reply struct {
	domain.AddReply
	id        string
	isDeleted bool
	date      time.Time
	seq       uint64
}

type likeKey struct {
	owner     string
	commentID string
}

// Store implements every forum repository port on maps guarded by one lock.
type Store struct {
	mu       sync.RWMutex
	users    map[string]domain.User
	threads  map[string]*thread
	comments map[string]*comment
	replies  map[string]*reply
	likes    map[likeKey]time.Time
	seq      uint64

	newID func() string
	now   func() time.Time
}

var (
	_ domain.ThreadRepository  = (*Store)(nil)
	_ domain.ThreadIDFetcher   = (*Store)(nil)
	_ domain.CommentRepository = (*Store)(nil)
	_ domain.ReplyRepository   = (*Store)(nil)
	_ domain.LikeRepository    = (*Store)(nil)
	_ domain.UserRepository    = (*Store)(nil)
)

func New() *Store {
	return &Store{
		users:    make(map[string]domain.User),
		threads:  make(map[string]*thread),
		comments: make(map[string]*comment),
		replies:  make(map[string]*reply),
		likes:    make(map[likeKey]time.Time),
		newID:    uuid.NewString,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// next returns a strictly increasing sequence used to order rows created in
// the same clock tick. Callers hold the write lock.
func (s *Store) next() uint64 {
	s.seq++
	return s.seq
}

func (s *Store) Insert(ctx context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == u.Username {
			return domain.ErrConflict
		}
	}
	u.ID = "user-" + s.newID()
	s.users[u.ID] = *u
	return nil
}

func (s *Store) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

func (s *Store) AddThread(ctx context.Context, t domain.AddThread) (domain.AddedThread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[t.Owner]; !ok {
		return domain.AddedThread{}, domain.ErrBadParamInput
	}
	th := &thread{AddThread: t, id: "thread-" + s.newID(), date: s.now()}
	s.threads[th.id] = th
	return domain.AddedThread{ID: th.id, Title: t.Title, Owner: t.Owner}, nil
}

func (s *Store) GetThreadByID(ctx context.Context, id string) (domain.Thread, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	th, ok := s.threads[id]
	if !ok {
		return domain.Thread{}, domain.ErrThreadNotFound
	}
	return domain.NewThread(domain.ThreadPayload{
		ID:       th.id,
		Owner:    th.Owner,
		Title:    th.Title,
		Body:     th.Body,
		Date:     th.date,
		Username: s.users[th.Owner].Username,
	})
}

func (s *Store) VerifyThreadByID(ctx context.Context, id string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.threads[id]; !ok {
		return domain.ErrThreadNotFound
	}
	return nil
}

func (s *Store) FetchThreadIDs(ctx context.Context, cursor string, limit int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.threads))
	for id := range s.threads {
		if id > cursor {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

func (s *Store) AddComment(ctx context.Context, c domain.AddComment) (domain.AddedComment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[c.Owner]; !ok {
		return domain.AddedComment{}, domain.ErrBadParamInput
	}
	if _, ok := s.threads[c.ThreadID]; !ok {
		return domain.AddedComment{}, domain.ErrThreadNotFound
	}
	cm := &comment{AddComment: c, id: "comment-" + s.newID(), date: s.now(), seq: s.next()}
	s.comments[cm.id] = cm
	return domain.AddedComment{ID: cm.id, Content: c.Content, Owner: c.Owner}, nil
}

func (s *Store) DeleteComment(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cm, ok := s.comments[id]
	if !ok {
		return domain.ErrCommentNotFound
	}
	cm.isDeleted = true
	return nil
}

func (s *Store) GetCommentsByThreadID(ctx context.Context, threadID string) ([]domain.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rows []*comment
	for _, cm := range s.comments {
		if cm.ThreadID == threadID {
			rows = append(rows, cm)
		}
	}
	slices.SortFunc(rows, func(a, b *comment) int {
		return cmp.Or(a.date.Compare(b.date), cmp.Compare(a.seq, b.seq))
	})

	res := make([]domain.Comment, 0, len(rows))
	for _, cm := range rows {
		c, err := domain.NewComment(domain.CommentPayload{
			ID:        cm.id,
			Owner:     cm.Owner,
			ThreadID:  cm.ThreadID,
			Content:   cm.Content,
			IsDeleted: cm.isDeleted,
			Date:      cm.date,
			Username:  s.users[cm.Owner].Username,
		})
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, nil
}

func (s *Store) GetCommentOwner(ctx context.Context, id string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cm, ok := s.comments[id]
	if !ok {
		return "", domain.ErrCommentNotFound
	}
	return cm.Owner, nil
}

func (s *Store) VerifyCommentByID(ctx context.Context, id string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.comments[id]; !ok {
		return domain.ErrCommentNotFound
	}
	return nil
}

func (s *Store) AddReply(ctx context.Context, r domain.AddReply) (domain.AddedReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[r.Owner]; !ok {
		return domain.AddedReply{}, domain.ErrBadParamInput
	}
	if _, ok := s.comments[r.CommentID]; !ok {
		return domain.AddedReply{}, domain.ErrCommentNotFound
	}
	rp := &reply{AddReply: r, id: "reply-" + s.newID(), date: s.now(), seq: s.next()}
	s.replies[rp.id] = rp
	return domain.AddedReply{ID: rp.id, Content: r.Content, Owner: r.Owner}, nil
}

func (s *Store) DeleteReply(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rp, ok := s.replies[id]
	if !ok {
		return domain.ErrReplyNotFound
	}
	rp.isDeleted = true
	return nil
}

func (s *Store) GetRepliesByCommentID(ctx context.Context, commentID string) ([]domain.Reply, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rows []*reply
	for _, rp := range s.replies {
		if rp.CommentID == commentID {
			rows = append(rows, rp)
		}
	}
	slices.SortFunc(rows, func(a, b *reply) int {
		return cmp.Or(a.date.Compare(b.date), cmp.Compare(a.seq, b.seq))
	})

	res := make([]domain.Reply, 0, len(rows))
	for _, rp := range rows {
		r, err := domain.NewReply(domain.ReplyPayload{
			ID:        rp.id,
			Owner:     rp.Owner,
			CommentID: rp.CommentID,
			Content:   rp.Content,
			IsDeleted: rp.isDeleted,
			Date:      rp.date,
			Username:  s.users[rp.Owner].Username,
		})
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}

func (s *Store) GetReplyOwner(ctx context.Context, id string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rp, ok := s.replies[id]
	if !ok {
		return "", domain.ErrReplyNotFound
	}
	return rp.Owner, nil
}

func (s *Store) AddLike(ctx context.Context, l domain.Like) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[l.Owner]; !ok {
		return domain.ErrBadParamInput
	}
	if _, ok := s.comments[l.CommentID]; !ok {
		return domain.ErrCommentNotFound
	}
	key := likeKey{owner: l.Owner, commentID: l.CommentID}
	if _, ok := s.likes[key]; !ok {
		s.likes[key] = s.now()
	}
	return nil
}

func (s *Store) DeleteLike(ctx context.Context, l domain.Like) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := likeKey{owner: l.Owner, commentID: l.CommentID}
	if _, ok := s.likes[key]; !ok {
		return domain.ErrLikeNotFound
	}
	delete(s.likes, key)
	return nil
}

func (s *Store) VerifyLike(ctx context.Context, l domain.Like) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.likes[likeKey{owner: l.Owner, commentID: l.CommentID}]
	return ok, nil
}

func (s *Store) GetLikeCount(ctx context.Context, commentID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for key := range s.likes {
		if key.commentID == commentID {
			count++
		}
	}
	return count, nil
}
