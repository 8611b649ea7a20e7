package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/muhammaaddsafii-dev/BE-terestria/internal/middleware"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/serializer"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/service"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/pkg/utils/clientip"
)

// Audit resource names.
const (
	ResourceProject           = "project"
	ResourceProjectStatistics = "project_statistics"
	ResourceProjectGeoData    = "project_geodata"
	ResourceGeoData           = "geodata"
	ResourceGeoDataStatistics = "geodata_statistics"
)

// pathID parses the :id route parameter. Anything that is not a positive
// integer cannot name a row.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// filterQuery binds query parameters like binding.Query, except that a
// parameter sent with an empty value is treated as absent: "?is_active="
// applies no filter.
type filterQuery struct{}

func (filterQuery) Name() string { return "filter_query" }

func (filterQuery) Bind(req *http.Request, obj any) error {
	values := req.URL.Query()
	for k, vs := range values {
		if kept := nonEmpty(vs); len(kept) > 0 {
			values[k] = kept
		} else {
			delete(values, k)
		}
	}
	if err := binding.MapFormWithTag(obj, values, "form"); err != nil {
		return err
	}
	if binding.Validator == nil {
		return nil
	}
	return binding.Validator.ValidateStruct(obj)
}

func nonEmpty(vs []string) []string {
	kept := vs[:0]
	for _, v := range vs {
		if v != "" {
			kept = append(kept, v)
		}
	}
	return kept
}

// bindFilters binds list filters, rejecting malformed values with 400.
func bindFilters(c *gin.Context, obj any) bool {
	if err := c.ShouldBindWith(obj, filterQuery{}); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return false
	}
	return true
}

func renderError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, serializer.NotFoundErr(""))
		return
	}
	c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
}

// recordAccess writes the audit row for a read that has already resolved.
func recordAccess(c *gin.Context, audit service.AuditService, action, resource, resourceID string, details map[string]any) {
	audit.Record(c.Request.Context(), service.AuditEntry{
		Actor:      middleware.CurrentUser(c),
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		Details:    details,
		IP:         clientip.FromRequest(c.Request),
	})
}
