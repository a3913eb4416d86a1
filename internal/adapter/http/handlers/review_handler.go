package handlers

import (
	"errors"
	request "medibook/internal/adapter/http/dto/request"
	response "medibook/internal/adapter/http/dto/response"
	"medibook/internal/usecase"
	"medibook/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidReviewPayload = pkg.NewDomainErrorSimple("INVALID_REVIEW_INPUT", "Invalid review payload", http.StatusBadRequest)
)

// ReviewHandler handles HTTP requests for doctor reviews.

type ReviewHandler struct {
	usecase usecase.IReviewUseCase
}

func NewReviewHandler(uc usecase.IReviewUseCase) *ReviewHandler {
	return &ReviewHandler{usecase: uc}
}

func (h *ReviewHandler) AddReview(c *gin.Context) {
	var payload request.ReviewCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReviewPayload.HTTPStatus, errInvalidReviewPayload.ToHTTPError())
		return
	}

	review, err := h.usecase.AddReview(c.Request.Context(), c.Param("doctor_id"), payload.ResolvePatientID(), payload.Rating, payload.Comment)
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromReview(review))
}

func (h *ReviewHandler) ListReviewsByDoctor(c *gin.Context) {
	reviews, err := h.usecase.ListByDoctorID(c.Request.Context(), c.Param("doctor_id"))
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReviews(reviews))
}

func mapReviewError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDoctorID), errors.Is(err, usecase.ErrInvalidPatientID), errors.Is(err, usecase.ErrInvalidReviewRating):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDoctorNotFound):
		return pkg.NewDomainErrorSimple("DOCTOR_NOT_FOUND", "Doctor not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
