package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5"

	"github.com/aditya-nugraha/Pesona/pesona-go/internal/middleware"
	"github.com/aditya-nugraha/Pesona/pesona-go/internal/model"
	"github.com/aditya-nugraha/Pesona/pesona-go/internal/repository"
	"github.com/aditya-nugraha/Pesona/pesona-go/internal/service"
)

// waitTimeout bounds a long-poll on the comment feed. Clients re-issue the
// request after each response, empty or not.
const waitTimeout = 25 * time.Second

type CommentHandler struct {
	svc *service.CommentService
	hub *service.CommentHub
}

func NewCommentHandler(svc *service.CommentService, hub *service.CommentHub) *CommentHandler {
	return &CommentHandler{svc: svc, hub: hub}
}

// List handles GET /api/attractions/:attractionId/comments
func (h *CommentHandler) List(c fiber.Ctx) error {
	attractionID, errMsg := middleware.ValidateAttractionID(c.Params("attractionId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	resp, err := h.svc.List(c.Context(), attractionID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch comments")
	}
	return c.JSON(resp)
}

// Wait handles GET /api/attractions/:attractionId/comments/wait — a long
// poll that resolves with the next full snapshot after a change, or with
// changed=false on timeout. The subscription is released when the request
// ends, whichever way it ends.
func (h *CommentHandler) Wait(c fiber.Ctx) error {
	attractionID, errMsg := middleware.ValidateAttractionID(c.Params("attractionId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	snapshots := make(chan []model.Comment, 1)
	release, err := h.hub.Listen(attractionID, func(snapshot []model.Comment) {
		select {
		case snapshots <- snapshot:
		default:
		}
	})
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to subscribe")
	}
	defer release()

	select {
	case snapshot := <-snapshots:
		return c.JSON(fiber.Map{
			"changed":  true,
			"comments": snapshot,
			"total":    len(snapshot),
		})
	case <-time.After(waitTimeout):
		return c.JSON(fiber.Map{"changed": false})
	case <-c.Context().Done():
		return c.Context().Err()
	}
}

// Post handles POST /api/attractions/:attractionId/comments
func (h *CommentHandler) Post(c fiber.Ctx) error {
	user, _ := middleware.UserFromCtx(c)

	attractionID, errMsg := middleware.ValidateAttractionID(c.Params("attractionId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	var req model.PostCommentRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	content, errMsg := middleware.ValidateCommentContent(req.Content)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	comment, err := h.svc.Post(c.Context(), attractionID, user, content)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to post comment")
	}

	Metrics.CommentsPosted.Inc()
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// Update handles PUT /api/comments/:commentId
func (h *CommentHandler) Update(c fiber.Ctx) error {
	user, _ := middleware.UserFromCtx(c)

	commentID, errMsg := middleware.ValidateCommentID(c.Params("commentId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	var req model.UpdateCommentRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	content, errMsg := middleware.ValidateCommentContent(req.Content)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	err := h.svc.Update(c.Context(), commentID, user.ID, content)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Comment not found")
		case errors.Is(err, repository.ErrNotOwner):
			return middleware.ErrorResponse(c, fiber.StatusForbidden, "NOT_OWNER",
				"Only the author can edit a comment")
		case errors.Is(err, repository.ErrEditWindowClosed):
			return middleware.ErrorResponse(c, fiber.StatusForbidden, "EDIT_WINDOW_CLOSED",
				"The edit window for this comment has closed")
		default:
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update comment")
		}
	}

	return c.JSON(fiber.Map{"success": true})
}
