package handlers

import (
	"net/http"
	request "painel_pedidos/internal/adapter/http/dto/request"
	response "painel_pedidos/internal/adapter/http/dto/response"
	"painel_pedidos/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SavedEmailHandler serves the e-mail capture list straight from the
// gateway. It is not part of the dashboard session.
type SavedEmailHandler struct {
	usecase usecase.ISavedEmailUseCase
}

func NewSavedEmailHandler(uc usecase.ISavedEmailUseCase) *SavedEmailHandler {
	return &SavedEmailHandler{usecase: uc}
}

// ListSavedEmails godoc
// @Summary  List captured e-mails
// @Tags     saved-emails
// @Produce  json
// @Success  200  {array}   response.SavedEmailResponse
// @Failure  502  {object}  pkg.HTTPError
// @Router   /saved-emails [get]
func (h *SavedEmailHandler) ListSavedEmails(c *gin.Context) {
	emails, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSavedEmails(emails))
}

// CreateSavedEmail godoc
// @Summary  Capture an e-mail
// @Tags     saved-emails
// @Accept   json
// @Produce  json
// @Param    email  body      request.SavedEmailRequest  true  "Saved e-mail"
// @Success  201    {object}  response.SavedEmailResponse
// @Failure  400    {object}  pkg.HTTPError
// @Router   /saved-emails [post]
func (h *SavedEmailHandler) CreateSavedEmail(c *gin.Context) {
	var payload request.SavedEmailRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidSavedEmailPayload)
		return
	}

	saved, err := h.usecase.Save(c.Request.Context(), payload.ToFields())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromSavedEmail(saved))
}

// UpdateSavedEmail godoc
// @Summary  Update a captured e-mail
// @Tags     saved-emails
// @Accept   json
// @Produce  json
// @Param    id     path      string                     true  "Saved e-mail ID"
// @Param    email  body      request.SavedEmailRequest  true  "Saved e-mail"
// @Success  200    {object}  response.SavedEmailResponse
// @Failure  400    {object}  pkg.HTTPError
// @Failure  404    {object}  pkg.HTTPError
// @Router   /saved-emails/{id} [put]
func (h *SavedEmailHandler) UpdateSavedEmail(c *gin.Context) {
	var payload request.SavedEmailRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidSavedEmailPayload)
		return
	}

	saved, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToFields())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSavedEmail(saved))
}

// DeleteSavedEmail godoc
// @Summary  Delete a captured e-mail
// @Tags     saved-emails
// @Param    id  path  string  true  "Saved e-mail ID"
// @Success  204
// @Router   /saved-emails/{id} [delete]
func (h *SavedEmailHandler) DeleteSavedEmail(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
