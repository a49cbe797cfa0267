package handler

import (
	"net/http"

	"github.com/adsc-atmiya/website/internal/ui"
)

type pagesHandler struct {
	appName string
}

func NewPagesHandler(appName string) *pagesHandler {
	return &pagesHandler{appName: appName}
}

type homePageData struct {
	AppName string
}

func (h *pagesHandler) HomePage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, http.StatusOK, "home", homePageData{AppName: h.appName})
}

// AdminSendEventPage serves the admin console shell. The page itself holds
// no server state; it authenticates client-side with the API secret.
func (h *pagesHandler) AdminSendEventPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, http.StatusOK, "admin_send_event", nil)
}

func (h *pagesHandler) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	http.NotFound(w, r)
}
