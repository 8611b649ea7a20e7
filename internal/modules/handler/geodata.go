package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/model"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/serializer"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/service"
)

type GeoDataHandler struct {
	svc   service.GeoDataService
	audit service.AuditService
}

func NewGeoDataHandler(s service.GeoDataService, audit service.AuditService) *GeoDataHandler {
	return &GeoDataHandler{svc: s, audit: audit}
}

type ListGeoDataReq struct {
	Project     *string    `form:"project" json:"project" example:"PRJ-001"`
	CollectedBy *uint      `form:"collected_by" json:"collected_by" example:"3"`
	CreatedAt   *time.Time `form:"created_at" json:"created_at" time_format:"2006-01-02T15:04:05Z07:00" example:"2024-05-01T08:30:00Z"`
	Search      string     `form:"search" json:"search" example:"GD-17"`
	Ordering    string     `form:"ordering" json:"ordering" example:"-updated_at"`
}

func (r ListGeoDataReq) input() service.ListGeoDataInput {
	return service.ListGeoDataInput{
		Project:     r.Project,
		CollectedBy: r.CollectedBy,
		CreatedAt:   r.CreatedAt,
		Search:      r.Search,
		Ordering:    r.Ordering,
	}
}

// ListGeoData godoc
//
//	@Summary		List GeoData
//	@Description	List non-deleted GeoData of non-deleted projects
//	@Tags			geodata
//	@Produce		json
//	@Param			project			query	string	false	"Project mobile_id"
//	@Param			collected_by	query	integer	false	"Collector user id"
//	@Param			created_at		query	string	false	"Exact device timestamp (RFC 3339)"
//	@Param			search			query	string	false	"Search mobile_id and project name"
//	@Param			ordering		query	string	false	"created_at or updated_at, prefix - for descending"
//	@Security		TokenAuth
//	@Success		200	{object}	serializer.Response{data=[]serializer.GeoDataListItem}
//	@Failure		400	{object}	serializer.Response
//	@Router			/geodata/ [get]
func (h *GeoDataHandler) ListGeoData(c *gin.Context) {
	req := ListGeoDataReq{}
	if !bindFilters(c, &req) {
		return
	}

	items, err := h.svc.List(c.Request.Context(), req.input())
	if err != nil {
		renderError(c, err)
		return
	}

	recordAccess(c, h.audit, model.ActionView, ResourceGeoData, "", nil)
	c.JSON(http.StatusOK, serializer.Response{Data: serializer.NewGeoDataList(items)})
}

// GetGeoData godoc
//
//	@Summary	Get GeoData
//	@Tags		geodata
//	@Produce	json
//	@Param		id	path	integer	true	"GeoData ID"
//	@Security	TokenAuth
//	@Success	200	{object}	serializer.Response{data=serializer.GeoDataDetail}
//	@Failure	404	{object}	serializer.Response
//	@Router		/geodata/{id}/ [get]
func (h *GeoDataHandler) GetGeoData(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, serializer.NotFoundErr(""))
		return
	}

	out, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}

	recordAccess(c, h.audit, model.ActionView, ResourceGeoData, out.GeoData.MobileID, nil)
	c.JSON(http.StatusOK, serializer.Response{Data: serializer.NewGeoDataDetail(out.GeoData, out.ProjectGeoDataCount)})
}

// GetGeoDataStatistics godoc
//
//	@Summary	GeoData statistics
//	@Tags		geodata
//	@Produce	json
//	@Param		project			query	string	false	"Project mobile_id"
//	@Param		collected_by	query	integer	false	"Collector user id"
//	@Param		search			query	string	false	"Search mobile_id and project name"
//	@Security	TokenAuth
//	@Success	200	{object}	serializer.Response{data=service.GeoDataStatisticsOutput}
//	@Router		/geodata/statistics/ [get]
func (h *GeoDataHandler) GetGeoDataStatistics(c *gin.Context) {
	req := ListGeoDataReq{}
	if !bindFilters(c, &req) {
		return
	}

	out, err := h.svc.Statistics(c.Request.Context(), req.input())
	if err != nil {
		renderError(c, err)
		return
	}

	recordAccess(c, h.audit, model.ActionView, ResourceGeoDataStatistics, "", nil)
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// ExportGeoData godoc
//
//	@Summary		Export GeoData
//	@Description	Placeholder: echoes the requested format without producing a file
//	@Tags			geodata
//	@Produce		json
//	@Param			format	query	string	false	"Export format, default csv"
//	@Security		TokenAuth
//	@Success		200	{object}	serializer.Response{data=service.ExportGeoDataOutput}
//	@Router			/geodata/export/ [get]
func (h *GeoDataHandler) ExportGeoData(c *gin.Context) {
	out, err := h.svc.Export(c.Request.Context(), service.ExportGeoDataInput{Format: c.Query("format")})
	if err != nil {
		renderError(c, err)
		return
	}

	recordAccess(c, h.audit, model.ActionExport, ResourceGeoData, "", map[string]any{"format": out.Format})
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}
