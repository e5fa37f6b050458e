package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/techzu/social_go_server/internal/api/middleware"
	"github.com/techzu/social_go_server/internal/model/dto"
	"github.com/techzu/social_go_server/internal/pkg/response"
	"github.com/techzu/social_go_server/internal/repository"
	"github.com/techzu/social_go_server/internal/service"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// Create 发表评论（parent_id 非空时为回复）
// POST /api/v1/comments
func (h *CommentHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	comment, err := h.commentService.Create(userID, &req)
	if err != nil {
		switch err {
		case service.ErrParentNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "评论成功", comment)
}

// List 获取评论列表
// GET /api/v1/comments?page=&page_size=&sort_by=&parent_id=
func (h *CommentHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	page, pageSize := parsePagination(c)
	sortBy := parseSortBy(c.DefaultQuery("sort_by", repository.SortNewest))

	// parent_id 为空或 "null" 时返回顶层评论
	var parentID *int64
	if raw := c.Query("parent_id"); raw != "" && raw != "null" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.ParamError(c, "无效的父评论ID")
			return
		}
		parentID = &id
	}

	items, total, err := h.commentService.List(parentID, page, pageSize, sortBy, userID)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.SuccessPage(c, total, page, pageSize, items)
}

// Get 获取单条评论
// GET /api/v1/comments/:id
func (h *CommentHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	commentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的评论ID")
		return
	}

	item, err := h.commentService.Get(commentID, userID)
	if err != nil {
		switch err {
		case service.ErrCommentNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Success(c, item)
}

// Update 修改评论内容（仅作者）
// PATCH /api/v1/comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	commentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的评论ID")
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	item, err := h.commentService.Update(userID, commentID, &req)
	if err != nil {
		switch err {
		case service.ErrCommentNotFound:
			response.NotFoundError(c, err.Error())
		case service.ErrCommentPermission:
			response.PermissionError(c, err.Error())
		case service.ErrCommentDeleted:
			response.PermissionError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "修改成功", item)
}

// Delete 软删除评论（仅作者）
// DELETE /api/v1/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	commentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的评论ID")
		return
	}

	if err := h.commentService.Delete(userID, commentID); err != nil {
		switch err {
		case service.ErrCommentNotFound:
			response.NotFoundError(c, err.Error())
		case service.ErrCommentPermission:
			response.PermissionError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "删除成功", nil)
}

// Like 点赞开关
// POST /api/v1/comments/:id/like
func (h *CommentHandler) Like(c *gin.Context) {
	h.toggleVote(c, h.commentService.LikeToggle)
}

// Dislike 点踩开关
// POST /api/v1/comments/:id/dislike
func (h *CommentHandler) Dislike(c *gin.Context) {
	h.toggleVote(c, h.commentService.DislikeToggle)
}

func (h *CommentHandler) toggleVote(c *gin.Context, toggle func(userID, commentID int64) (*dto.CommentItem, error)) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	commentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的评论ID")
		return
	}

	item, err := toggle(userID, commentID)
	if err != nil {
		switch err {
		case service.ErrCommentNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Success(c, item)
}

// Replies 获取评论的直接回复（固定最新排序）
// GET /api/v1/comments/:id/replies
func (h *CommentHandler) Replies(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	parentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的评论ID")
		return
	}

	page, pageSize := parsePagination(c)

	items, total, err := h.commentService.ListReplies(parentID, page, pageSize, userID)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.SuccessPage(c, total, page, pageSize, items)
}

func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	return page, pageSize
}

func parseSortBy(sortBy string) string {
	switch sortBy {
	case repository.SortNewest, repository.SortOldest, repository.SortMostLiked, repository.SortMostDisliked:
		return sortBy
	default:
		return repository.SortNewest
	}
}
