package http

import (
	"net/http"
)

const buildInfoHeader = "X-Build-Info"

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	serverVersion := h.services.AppInfoService.GetAppVersion(ctx)

	w.Header().Set(buildInfoHeader, h.services.AppInfoService.GetBuildInfo(ctx).String())
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}
