package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/model"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/serializer"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/service"
)

type ProjectHandler struct {
	svc   service.ProjectService
	audit service.AuditService
}

func NewProjectHandler(s service.ProjectService, audit service.AuditService) *ProjectHandler {
	return &ProjectHandler{svc: s, audit: audit}
}

type ListProjectsReq struct {
	GeometryType *string `form:"geometry_type" json:"geometry_type" binding:"omitempty,geometry_type" example:"polygon"`
	IsActive     *bool   `form:"is_active" json:"is_active" example:"true"`
	CreatedBy    *uint   `form:"created_by" json:"created_by" example:"1"`
	Search       string  `form:"search" json:"search" example:"river survey"`
	Ordering     string  `form:"ordering" json:"ordering" example:"-created_at"`
}

func (r ListProjectsReq) input() service.ListProjectsInput {
	return service.ListProjectsInput{
		GeometryType: r.GeometryType,
		IsActive:     r.IsActive,
		CreatedBy:    r.CreatedBy,
		Search:       r.Search,
		Ordering:     r.Ordering,
	}
}

type ProjectGeoDataResp struct {
	Project serializer.ProjectListItem   `json:"project"`
	GeoData []serializer.GeoDataListItem `json:"geodata"`
	Total   int64                        `json:"total"`
}

// ListProjects godoc
//
//	@Summary		List projects
//	@Description	List non-deleted projects with filters, search and ordering
//	@Tags			project
//	@Produce		json
//	@Param			geometry_type	query	string	false	"Geometry type"	Enums(point, line, polygon)
//	@Param			is_active		query	boolean	false	"Active flag"
//	@Param			created_by		query	integer	false	"Creator user id"
//	@Param			search			query	string	false	"Search name, description and mobile_id"
//	@Param			ordering		query	string	false	"created_at, updated_at or name, prefix - for descending"
//	@Security		TokenAuth
//	@Success		200	{object}	serializer.Response{data=[]serializer.ProjectListItem}
//	@Failure		400	{object}	serializer.Response
//	@Failure		401	{object}	serializer.Response
//	@Failure		403	{object}	serializer.Response
//	@Router			/projects/ [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	req := ListProjectsReq{}
	if !bindFilters(c, &req) {
		return
	}

	out, err := h.svc.List(c.Request.Context(), req.input())
	if err != nil {
		renderError(c, err)
		return
	}

	recordAccess(c, h.audit, model.ActionView, ResourceProject, "", nil)
	c.JSON(http.StatusOK, serializer.Response{Data: serializer.NewProjectList(out.Items, out.GeoDataCounts)})
}

// GetProject godoc
//
//	@Summary	Get project
//	@Tags		project
//	@Produce	json
//	@Param		id	path	integer	true	"Project ID"
//	@Security	TokenAuth
//	@Success	200	{object}	serializer.Response{data=serializer.ProjectDetail}
//	@Failure	404	{object}	serializer.Response
//	@Router		/projects/{id}/ [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, serializer.NotFoundErr(""))
		return
	}

	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}

	recordAccess(c, h.audit, model.ActionView, ResourceProject, p.MobileID, nil)
	c.JSON(http.StatusOK, serializer.Response{Data: serializer.NewProjectDetail(p)})
}

// GetProjectStatistics godoc
//
//	@Summary		Project statistics
//	@Description	Totals grouped by geometry type and active flag, honouring the list filters
//	@Tags			project
//	@Produce		json
//	@Param			geometry_type	query	string	false	"Geometry type"	Enums(point, line, polygon)
//	@Param			is_active		query	boolean	false	"Active flag"
//	@Param			created_by		query	integer	false	"Creator user id"
//	@Param			search			query	string	false	"Search name, description and mobile_id"
//	@Security		TokenAuth
//	@Success		200	{object}	serializer.Response{data=service.ProjectStatisticsOutput}
//	@Router			/projects/statistics/ [get]
func (h *ProjectHandler) GetProjectStatistics(c *gin.Context) {
	req := ListProjectsReq{}
	if !bindFilters(c, &req) {
		return
	}

	out, err := h.svc.Statistics(c.Request.Context(), req.input())
	if err != nil {
		renderError(c, err)
		return
	}

	recordAccess(c, h.audit, model.ActionView, ResourceProjectStatistics, "", nil)
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// GetProjectGeoData godoc
//
//	@Summary	List a project's GeoData
//	@Tags		project
//	@Produce	json
//	@Param		id	path	integer	true	"Project ID"
//	@Security	TokenAuth
//	@Success	200	{object}	serializer.Response{data=ProjectGeoDataResp}
//	@Failure	404	{object}	serializer.Response
//	@Router		/projects/{id}/geodata/ [get]
func (h *ProjectHandler) GetProjectGeoData(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, serializer.NotFoundErr(""))
		return
	}

	out, err := h.svc.GetGeoData(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}

	recordAccess(c, h.audit, model.ActionView, ResourceProjectGeoData, out.Project.MobileID,
		map[string]any{"geodata_count": out.ProjectGeoDataCount})
	c.JSON(http.StatusOK, serializer.Response{Data: ProjectGeoDataResp{
		Project: serializer.NewProjectListItem(out.Project, out.ProjectGeoDataCount),
		GeoData: serializer.NewGeoDataList(out.GeoData),
		Total:   out.ProjectGeoDataCount,
	}})
}
