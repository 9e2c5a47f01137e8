package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fitrack/fitrack-api/internal/api/metrics"
	"github.com/fitrack/fitrack-api/internal/core/ports"
)

// ForumHandler handles community posts and voting.
type ForumHandler struct {
	forumService ports.ForumService
	userService  ports.UserService
}

func NewForumHandler(forumService ports.ForumService, userService ports.UserService) *ForumHandler {
	return &ForumHandler{forumService: forumService, userService: userService}
}

// CreatePost adds a community post. The author's role is resolved from the
// store at posting time and captured on the post for the role badge.
//
// @Summary      Create a forum post
// @Tags         forum
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post content"
// @Success      201   {object}  postResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /forum/posts [post]
func (h *ForumHandler) CreatePost(c echo.Context) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	role, err := h.userService.ResolveRole(c.Request().Context(), email)
	if err != nil {
		return err
	}

	post, err := h.forumService.CreatePost(c.Request().Context(), ports.CreatePostInput{
		Title:       req.Title,
		Content:     req.Content,
		AuthorEmail: email,
		AuthorRole:  role,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toPostResponse(post))
}

// ListPosts returns a paginated forum listing, newest first.
//
// @Summary      List forum posts
// @Tags         forum
// @Produce      json
// @Param        page   query     int  false  "Page (1-based)"
// @Param        limit  query     int  false  "Page size (max 100)"
// @Success      200    {object}  listPostsResponse
// @Router       /forum/posts [get]
func (h *ForumHandler) ListPosts(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.forumService.ListPosts(c.Request().Context(), ports.ListPostsFilter{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListPostsResponse(result))
}

// Vote records one up/down vote by the caller on a post.
//
// @Summary      Vote on a forum post
// @Tags         forum
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  string       true  "Post ID"
// @Param        body  body  voteRequest  true  "Vote direction"
// @Success      204   "No Content"
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /forum/posts/{id}/vote [patch]
func (h *ForumHandler) Vote(c echo.Context) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}

	var req voteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.forumService.Vote(c.Request().Context(), c.Param("id"), email, req.Direction); err != nil {
		return err
	}

	metrics.ForumVotesTotal.WithLabelValues(req.Direction).Inc()
	return c.NoContent(http.StatusNoContent)
}
