package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/model"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/serializer"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/service"
)

func setupAdminLogRouter(svc *MockAdminLogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	serializer.SetLogger(zap.NewNop())

	h := NewAdminLogHandler(svc)
	r := gin.New()
	r.Use(withUser(staffUser))
	r.GET("/logs/", h.ListAdminLogs)
	r.GET("/logs/:id/", h.GetAdminLog)
	return r
}

func TestAdminLogHandler_ListAdminLogs(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setup          func(*MockAdminLogService)
		expectedStatus int
	}{
		{
			name:  "success - filtered",
			query: "?user=1&action=view&resource=project",
			setup: func(svc *MockAdminLogService) {
				svc.On("List", mock.Anything, mock.MatchedBy(func(in service.ListAdminLogsInput) bool {
					return *in.User == 1 && *in.Action == "view" && *in.Resource == "project"
				})).Return([]model.AdminLog{{ID: 1, Action: "view", Resource: "project", User: staffUser}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "success - blank filters are not applied",
			query: "?user=&action=&resource=",
			setup: func(svc *MockAdminLogService) {
				svc.On("List", mock.Anything, service.ListAdminLogsInput{}).Return([]model.AdminLog{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "error - unknown action",
			query:          "?action=delete",
			setup:          func(svc *MockAdminLogService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockAdminLogService{}
			tt.setup(svc)

			w := httptest.NewRecorder()
			setupAdminLogRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/logs/"+tt.query, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestAdminLogHandler_GetAdminLog(t *testing.T) {
	svc := &MockAdminLogService{}
	uid := uint(1)
	ip := "10.0.0.1"
	svc.On("Get", mock.Anything, uint(5)).Return(&model.AdminLog{
		ID: 5, UserID: &uid, User: staffUser, Action: "export", Resource: "geodata", IPAddress: &ip,
	}, nil)
	svc.On("Get", mock.Anything, uint(6)).Return(nil, service.ErrNotFound)
	r := setupAdminLogRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/logs/5/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data serializer.AdminLog `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "admin", *resp.Data.UserUsername)
	assert.Equal(t, "10.0.0.1", *resp.Data.IPAddress)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/logs/6/", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/logs/abc/", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
