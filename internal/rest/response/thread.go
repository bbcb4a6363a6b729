package response

import (
	"time"

	"github.com/Guyuepp/forum-api/domain"
)

// DateTimeFormat is RFC 3339 with milliseconds.
const DateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

func formatDate(t time.Time) string {
	return t.UTC().Format(DateTimeFormat)
}

type AddedThread struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

func NewAddedThreadFromDomain(t domain.AddedThread) map[string]AddedThread {
	return map[string]AddedThread{
		"addedThread": {ID: t.ID, Title: t.Title, Owner: t.Owner},
	}
}

// ThreadDetail is the body of GET /threads/:threadId.
type ThreadDetail struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Date     string          `json:"date"`
	Username string          `json:"username"`
	Comments []CommentDetail `json:"comments"`
}

type CommentDetail struct {
	ID        string        `json:"id"`
	Username  string        `json:"username"`
	Date      string        `json:"date"`
	Content   string        `json:"content"`
	LikeCount int64         `json:"likeCount"`
	Replies   []ReplyDetail `json:"replies"`
}

type ReplyDetail struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Date     string `json:"date"`
	Content  string `json:"content"`
}

func NewThreadDetailFromDomain(t domain.Thread) map[string]ThreadDetail {
	comments := make([]CommentDetail, len(t.Comments))
	for i, c := range t.Comments {
		replies := make([]ReplyDetail, len(c.Replies))
		for j, r := range c.Replies {
			replies[j] = ReplyDetail{
				ID:       r.ID,
				Username: r.Username,
				Date:     formatDate(r.Date),
				Content:  r.Content,
			}
		}
		comments[i] = CommentDetail{
			ID:        c.ID,
			Username:  c.Username,
			Date:      formatDate(c.Date),
			Content:   c.Content,
			LikeCount: c.LikeCount,
			Replies:   replies,
		}
	}

	return map[string]ThreadDetail{
		"thread": {
			ID:       t.ID,
			Title:    t.Title,
			Body:     t.Body,
			Date:     formatDate(t.Date),
			Username: t.Username,
			Comments: comments,
		},
	}
}
