package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/devconnector-backend/internal/logger"
	"github.com/yungbote/devconnector-backend/internal/services"
)

type PostHandler struct {
	log         *logger.Logger
	postService services.PostService
}

func NewPostHandler(log *logger.Logger, postService services.PostService) *PostHandler {
	return &PostHandler{
		log:         log.With("handler", "PostHandler"),
		postService: postService,
	}
}

// POST /api/posts
func (ph *PostHandler) CreatePost(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request body"})
		return
	}
	post, err := ph.postService.CreatePost(c.Request.Context(), req.Text)
	if err != nil {
		RespondServiceError(c, ph.log, err)
		return
	}
	RespondOK(c, post)
}

// GET /api/posts
func (ph *PostHandler) ListPosts(c *gin.Context) {
	posts, err := ph.postService.ListPosts(c.Request.Context())
	if err != nil {
		RespondServiceError(c, ph.log, err)
		return
	}
	RespondOK(c, posts)
}

// GET /api/posts/:id
func (ph *PostHandler) GetPost(c *gin.Context) {
	postID, ok := ph.postID(c)
	if !ok {
		return
	}
	post, err := ph.postService.GetPost(c.Request.Context(), postID)
	if err != nil {
		RespondServiceError(c, ph.log, err)
		return
	}
	RespondOK(c, post)
}

// DELETE /api/posts/:id
func (ph *PostHandler) DeletePost(c *gin.Context) {
	postID, ok := ph.postID(c)
	if !ok {
		return
	}
	if err := ph.postService.DeletePost(c.Request.Context(), postID); err != nil {
		RespondServiceError(c, ph.log, err)
		return
	}
	RespondOK(c, gin.H{"msg": "Post removed"})
}

// PUT /api/posts/like/:id
func (ph *PostHandler) LikePost(c *gin.Context) {
	postID, ok := ph.postID(c)
	if !ok {
		return
	}
	likes, err := ph.postService.LikePost(c.Request.Context(), postID)
	if err != nil {
		RespondServiceError(c, ph.log, err)
		return
	}
	RespondOK(c, likes)
}

// PUT /api/posts/unlike/:id
func (ph *PostHandler) UnlikePost(c *gin.Context) {
	postID, ok := ph.postID(c)
	if !ok {
		return
	}
	likes, err := ph.postService.UnlikePost(c.Request.Context(), postID)
	if err != nil {
		RespondServiceError(c, ph.log, err)
		return
	}
	RespondOK(c, likes)
}

// POST /api/posts/comment/:id
func (ph *PostHandler) AddComment(c *gin.Context) {
	postID, ok := ph.postID(c)
	if !ok {
		return
	}
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request body"})
		return
	}
	comments, err := ph.postService.AddComment(c.Request.Context(), postID, req.Text)
	if err != nil {
		RespondServiceError(c, ph.log, err)
		return
	}
	RespondOK(c, comments)
}

// DELETE /api/posts/comment/:id/:comment_id
func (ph *PostHandler) RemoveComment(c *gin.Context) {
	postID, ok := ph.postID(c)
	if !ok {
		return
	}
	commentID, err := uuid.Parse(c.Param("comment_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Comment does not exist"})
		return
	}
	comments, err := ph.postService.RemoveComment(c.Request.Context(), postID, commentID)
	if err != nil {
		RespondServiceError(c, ph.log, err)
		return
	}
	RespondOK(c, comments)
}

// postID parses the :id path parameter; a malformed id reads as a missing
// post, matching the regular 404.
func (ph *PostHandler) postID(c *gin.Context) (uuid.UUID, bool) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Post not found"})
		return uuid.Nil, false
	}
	return postID, true
}
