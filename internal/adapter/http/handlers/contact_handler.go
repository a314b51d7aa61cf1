package handlers

import (
	"net/http"
	request "painel_pedidos/internal/adapter/http/dto/request"
	response "painel_pedidos/internal/adapter/http/dto/response"
	"painel_pedidos/internal/dashboard"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	controller dashboard.IController
}

func NewContactHandler(controller dashboard.IController) *ContactHandler {
	return &ContactHandler{controller: controller}
}

// ListContacts godoc
// @Summary  List contacts
// @Tags     contacts
// @Produce  json
// @Success  200  {array}  response.ContactResponse
// @Router   /contacts [get]
func (h *ContactHandler) ListContacts(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromContacts(h.controller.Contacts()))
}

// CreateContact godoc
// @Summary  Add a contact
// @Tags     contacts
// @Accept   json
// @Produce  json
// @Param    contact  body      request.ContactRequest  true  "Contact"
// @Success  201      {object}  response.ContactResponse
// @Failure  400      {object}  pkg.HTTPError
// @Router   /contacts [post]
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var payload request.ContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidContactPayload)
		return
	}

	contact, err := h.controller.AddContact(c.Request.Context(), payload.ToFields())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromContact(contact))
}

// UpdateContact godoc
// @Summary  Update a contact
// @Tags     contacts
// @Accept   json
// @Produce  json
// @Param    id       path      string                  true  "Contact ID"
// @Param    contact  body      request.ContactRequest  true  "Contact"
// @Success  200      {object}  response.ContactResponse
// @Failure  400      {object}  pkg.HTTPError
// @Failure  404      {object}  pkg.HTTPError
// @Router   /contacts/{id} [put]
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	var payload request.ContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidContactPayload)
		return
	}

	contact, err := h.controller.UpdateContact(c.Request.Context(), c.Param("id"), payload.ToFields())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromContact(contact))
}

// DeleteContact godoc
// @Summary  Remove a contact
// @Tags     contacts
// @Param    id  path  string  true  "Contact ID"
// @Success  204
// @Router   /contacts/{id} [delete]
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	if err := h.controller.RemoveContact(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
