package account

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	accounterrors "github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/account/errors"
	"github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/shared/apperror"
	"github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/shared/response"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("account.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("account.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("account request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeValidationError(c *gin.Context, err error) {
	h.logger.Warn("account validation failed", zap.Error(err))
	response.Error(c,
		apperror.CompatStatus(http.StatusBadRequest),
		apperror.CodeInvalidInput,
		"The provided input is invalid",
		apperror.FieldErrors(err),
	)
}

func (h *Handler) Overview(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"Add":    "/create",
		"Read":   "/all",
		"Update": "/update/pk",
		"Delete": "/pk/delete",
	})
}

func (h *Handler) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello, World!"})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// The duplicate verdict outranks field validation: when the body
		// decoded, (employee, month, year) is checked before the error map
		// is reported.
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			if exists, dupErr := h.service.IsDuplicate(c.Request.Context(), req); dupErr == nil && exists {
				h.writeServiceError(c, accounterrors.ErrAccountAlreadyExists)
				return
			}
		}
		h.writeValidationError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) GetAll(c *gin.Context) {
	criteria := map[string]string{}
	for field, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			criteria[field] = values[0]
		}
	}

	resp, err := h.service.Find(c.Request.Context(), criteria)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if len(resp) == 0 {
		h.writeServiceError(c, accounterrors.ErrAccountNotFound)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		h.writeServiceError(c, accounterrors.ErrAccountNotFound)
		return
	}

	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeValidationError(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), uint(id), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		h.writeServiceError(c, accounterrors.ErrAccountNotFound)
		return
	}

	if err := h.service.Delete(c.Request.Context(), uint(id)); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusAccepted, nil)
}
