package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/suenot/sporthub/branding"
)

type BrandingHandler struct {
	responder
	logo branding.LogoProps
}

func NewBrandingHandler(logo branding.LogoProps, logger *slog.Logger) *BrandingHandler {
	return &BrandingHandler{responder: newResponder(logger), logo: logo}
}

// GetLogo godoc
// @Summary  Decorative logo markup
// @Tags     branding
// @Produce  html
// @Router   /branding/logo [get]
func (h *BrandingHandler) GetLogo(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := branding.RenderLogo(&buf, h.logo); err != nil {
		h.serverErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
