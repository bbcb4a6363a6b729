package rest

import "github.com/gin-gonic/gin"

type Handlers struct {
	Thread  *ThreadHandler
	Comment *CommentHandler
	Reply   *ReplyHandler
	Like    *LikeHandler
	Health  *HealthHandler
}

// RegisterRoutes mounts the forum API on route. auth guards every write.
func RegisterRoutes(route gin.IRouter, h Handlers, auth gin.HandlerFunc) {
	if h.Health != nil {
		route.GET("/health", h.Health.Check)
	}
	route.GET("/threads/:threadId", h.Thread.GetByID)

	authorized := route.Group("/")
	authorized.Use(auth)
	{
		authorized.POST("/threads", h.Thread.Store)
		authorized.POST("/threads/:threadId/comments", h.Comment.CreateComment)
		authorized.DELETE("/threads/:threadId/comments/:commentId", h.Comment.DeleteComment)
		authorized.POST("/threads/:threadId/comments/:commentId/replies", h.Reply.CreateReply)
		authorized.DELETE("/threads/:threadId/comments/:commentId/replies/:replyId", h.Reply.DeleteReply)
		authorized.PUT("/threads/:threadId/comments/:commentId/likes", h.Like.Toggle)
	}
}
