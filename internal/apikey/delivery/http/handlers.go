package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"clockify-exporter/internal/apikey"
	pkgErrors "clockify-exporter/pkg/errors"
	"clockify-exporter/pkg/response"
)

type keyReq struct {
	APIKey string `json:"api_key" binding:"required"`
}

type keyResp struct {
	APIKey string `json:"api_key"`
}

// Get godoc
// @Summary     Get the saved API key
// @Description Returns the persisted Clockify API key, empty when none was saved.
// @Tags        APIKey
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/key [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	key, err := h.uc.Get(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, keyResp{APIKey: key})
}

// Save godoc
// @Summary     Save the API key
// @Description Persists a non-empty Clockify API key, replacing any previous one.
// @Tags        APIKey
// @Accept      json
// @Produce     json
// @Param       body body keyReq true "API key"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Empty key"
// @Router      /api/v1/key [POST]
func (h *handler) Save(c *gin.Context) {
	ctx := c.Request.Context()

	var req keyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, apikey.ErrEmptyKey.Error()))
		return
	}

	if err := h.uc.Save(ctx, req.APIKey); err != nil {
		h.l.Errorf(ctx, "uc.Save: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Delete godoc
// @Summary     Delete the API key
// @Description Clears the persisted Clockify API key.
// @Tags        APIKey
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/key [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	if errors.Is(err, apikey.ErrEmptyKey) {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal error")
}
