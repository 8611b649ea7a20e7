package middleware

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/model"
)

func TestPermissions(t *testing.T) {
	staff := &model.User{ID: 1, IsStaff: true}
	member := &model.User{ID: 2}

	tests := []struct {
		name   string
		perm   Permission
		user   *model.User
		method string
		want   bool
	}{
		{"staff only admits staff", StaffOnly, staff, http.MethodGet, true},
		{"staff only rejects members", StaffOnly, member, http.MethodGet, false},
		{"staff only rejects anonymous", StaffOnly, nil, http.MethodGet, false},
		{"read for members", AuthenticatedReadStaffWrite, member, http.MethodGet, true},
		{"head for members", AuthenticatedReadStaffWrite, member, http.MethodHead, true},
		{"options for members", AuthenticatedReadStaffWrite, member, http.MethodOptions, true},
		{"read rejects anonymous", AuthenticatedReadStaffWrite, nil, http.MethodGet, false},
		{"write rejects members", AuthenticatedReadStaffWrite, member, http.MethodPost, false},
		{"write admits staff", AuthenticatedReadStaffWrite, staff, http.MethodDelete, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.perm(tt.user, tt.method))
		})
	}
}
