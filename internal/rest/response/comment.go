package response

import "github.com/Guyuepp/forum-api/domain"

type AddedComment struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewAddedCommentFromDomain(c domain.AddedComment) map[string]AddedComment {
	return map[string]AddedComment{
		"addedComment": {ID: c.ID, Content: c.Content, Owner: c.Owner},
	}
}

type AddedReply struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewAddedReplyFromDomain(r domain.AddedReply) map[string]AddedReply {
	return map[string]AddedReply{
		"addedReply": {ID: r.ID, Content: r.Content, Owner: r.Owner},
	}
}
