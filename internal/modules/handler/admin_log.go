package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/serializer"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/service"
)

// AdminLogHandler serves the audit trail. Reading it is not itself audited.
type AdminLogHandler struct {
	svc service.AdminLogService
}

func NewAdminLogHandler(s service.AdminLogService) *AdminLogHandler {
	return &AdminLogHandler{svc: s}
}

type ListAdminLogsReq struct {
	User     *uint   `form:"user" json:"user" example:"1"`
	Action   *string `form:"action" json:"action" binding:"omitempty,admin_action" example:"view"`
	Resource *string `form:"resource" json:"resource" example:"project"`
}

// ListAdminLogs godoc
//
//	@Summary	List admin logs
//	@Tags		log
//	@Produce	json
//	@Param		user		query	integer	false	"Actor user id"
//	@Param		action		query	string	false	"Action"	Enums(view, export, filter, search)
//	@Param		resource	query	string	false	"Resource name"
//	@Security	TokenAuth
//	@Success	200	{object}	serializer.Response{data=[]serializer.AdminLog}
//	@Failure	400	{object}	serializer.Response
//	@Router		/logs/ [get]
func (h *AdminLogHandler) ListAdminLogs(c *gin.Context) {
	req := ListAdminLogsReq{}
	if !bindFilters(c, &req) {
		return
	}

	items, err := h.svc.List(c.Request.Context(), service.ListAdminLogsInput{
		User:     req.User,
		Action:   req.Action,
		Resource: req.Resource,
	})
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: serializer.NewAdminLogList(items)})
}

// GetAdminLog godoc
//
//	@Summary	Get admin log
//	@Tags		log
//	@Produce	json
//	@Param		id	path	integer	true	"Admin log ID"
//	@Security	TokenAuth
//	@Success	200	{object}	serializer.Response{data=serializer.AdminLog}
//	@Failure	404	{object}	serializer.Response
//	@Router		/logs/{id}/ [get]
func (h *AdminLogHandler) GetAdminLog(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, serializer.NotFoundErr(""))
		return
	}

	l, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: serializer.NewAdminLog(l)})
}
