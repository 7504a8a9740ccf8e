package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"phonebook/internal/service"
	httpez "phonebook/internal/transport/http/ez"
)

// AdminHandler 管理端：查看规模、清空通讯录
type AdminHandler struct {
	svc *service.ContactService
}

func NewAdminHandler(svc *service.ContactService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) MountAdmin(admin *gin.RouterGroup) {
	ez := httpez.New(admin)

	// --- GET /admin/v1/stats ---
	httpez.RegisterAction(ez, httpez.Action[struct{}, service.Stats]{
		Method: http.MethodGet,
		Path:   "/stats",
		Binder: httpez.BindNone,
		Handler: func(_ *gin.Context, _ *struct{}) (service.Stats, error) {
			return h.svc.Stats(), nil
		},
	})

	// --- DELETE /admin/v1/contacts  清空 ---
	httpez.RegisterAction(ez, httpez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/contacts",
		Binder: httpez.BindNone,
		Handler: func(_ *gin.Context, _ *struct{}) (gin.H, error) {
			return gin.H{"removed": h.svc.Clear()}, nil
		},
	})
}
