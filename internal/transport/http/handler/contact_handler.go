package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"phonebook/internal/domain"
	"phonebook/internal/service"
	httpez "phonebook/internal/transport/http/ez"
	"phonebook/internal/validation"
	"phonebook/pkg/utils"
)

type ContactHandler struct {
	svc *service.ContactService
}

func NewContactHandler(svc *service.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

func (h *ContactHandler) Priority() int { return 10 }

type contactOut struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Phone    string        `json:"phone"`
	Email    string        `json:"email"`
	Gender   domain.Gender `json:"gender"`
	Initials string        `json:"initials"`
}

func toOut(c domain.Contact) contactOut {
	return contactOut{
		ID: c.ID, Name: c.Name, Phone: c.Phone, Email: c.Email, Gender: c.Gender,
		Initials: utils.Initials(c.Name),
	}
}

type invalidOut struct {
	Focus  string                   `json:"focus"`
	Errors []validation.FieldResult `json:"errors"`
}

// mapErr 服务层错误 -> 动作错误
func mapErr(err error) error {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		return httpez.Invalid("validation failed", invalidOut{Focus: verr.Result.Focus, Errors: verr.Result.Fields})
	case errors.Is(err, service.ErrNotFound):
		return httpez.NotFound("contact not found")
	default:
		return httpez.Internal("contact operation failed", err)
	}
}

func (h *ContactHandler) MountAPI(api *gin.RouterGroup) {
	ez := httpez.New(api)

	// --- GET /contacts  列表（默认按姓名排序，q 做包含匹配） ---
	type listQ struct {
		Order string `form:"order"`
		Q     string `form:"q"`
	}
	type listOut struct {
		Total int          `json:"total"`
		Items []contactOut `json:"items"`
	}
	httpez.RegisterAction(ez, httpez.Action[listQ, listOut]{
		Method: http.MethodGet,
		Path:   "/contacts",
		Binder: httpez.BindQuery,
		Handler: func(_ *gin.Context, in *listQ) (listOut, error) {
			order := service.OrderName
			if in.Order == string(service.OrderInsertion) {
				order = service.OrderInsertion
			}
			q := strings.ToLower(strings.TrimSpace(in.Q))
			out := listOut{Items: []contactOut{}}
			for _, c := range h.svc.List(order) {
				if q != "" && !matches(c, q) {
					continue
				}
				out.Items = append(out.Items, toOut(c))
			}
			out.Total = len(out.Items)
			return out, nil
		},
	})

	// --- GET /contacts/:id ---
	httpez.RegisterAction(ez, httpez.Action[struct{}, contactOut]{
		Method: http.MethodGet,
		Path:   "/contacts/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (contactOut, error) {
			ct, ok := h.svc.Get(c.Param("id"))
			if !ok {
				return contactOut{}, httpez.NotFound("contact not found")
			}
			return toOut(ct), nil
		},
	})

	// --- POST /contacts  新增 ---
	httpez.RegisterAction(ez, httpez.Action[domain.ContactInput, contactOut]{
		Method: http.MethodPost,
		Path:   "/contacts",
		Binder: httpez.BindJSON,
		Handler: func(_ *gin.Context, in *domain.ContactInput) (contactOut, error) {
			ct, err := h.svc.Create(*in)
			if err != nil {
				return contactOut{}, mapErr(err)
			}
			return toOut(ct), nil
		},
	})

	// --- PUT /contacts/:id  编辑（只改提交的字段） ---
	httpez.RegisterAction(ez, httpez.Action[domain.ContactInput, contactOut]{
		Method: http.MethodPut,
		Path:   "/contacts/:id",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *domain.ContactInput) (contactOut, error) {
			ct, err := h.svc.Edit(c.Param("id"), *in)
			if err != nil {
				return contactOut{}, mapErr(err)
			}
			return toOut(ct), nil
		},
	})

	// --- DELETE /contacts/:id ---
	httpez.RegisterAction(ez, httpez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/contacts/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			id := c.Param("id")
			if !h.svc.Delete(id) {
				return nil, httpez.NotFound("contact not found")
			}
			return gin.H{"id": id}, nil
		},
	})

	// --- GET /forms/:form  空白表单 ---
	httpez.RegisterAction(ez, httpez.Action[struct{}, *validation.Form]{
		Method: http.MethodGet,
		Path:   "/forms/:form",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*validation.Form, error) {
			f, ok := h.svc.BlankForm(c.Param("form"))
			if !ok {
				return nil, httpez.NotFound("unknown form")
			}
			return f, nil
		},
	})
}

func matches(c domain.Contact, q string) bool {
	return strings.Contains(strings.ToLower(c.Name), q) ||
		strings.Contains(c.Phone, q) ||
		strings.Contains(strings.ToLower(c.Email), q)
}
