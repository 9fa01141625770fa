package validation

import (
	"testing"

	"news-backend/internal/api/models"

	"github.com/stretchr/testify/assert"
)

func TestCheckRegister(t *testing.T) {
	tests := []struct {
		name string
		req  models.RegisterRequest
		want []string
	}{
		{
			name: "valid",
			req:  models.RegisterRequest{Name: "Alex", Email: "alex@gmail.com", Password: "secret"},
			want: nil,
		},
		{
			name: "non-gmail address rejected",
			req:  models.RegisterRequest{Name: "Alex", Email: "alex@yahoo.com", Password: "secret"},
			want: []string{"email"},
		},
		{
			name: "plus tag and dots accepted",
			req:  models.RegisterRequest{Name: "Alex", Email: "first.last+tag@gmail.com", Password: "secret"},
			want: nil,
		},
		{
			name: "gmail as subdomain rejected",
			req:  models.RegisterRequest{Name: "Alex", Email: "user@gmail.com.evil.org", Password: "secret"},
			want: []string{"email"},
		},
		{
			name: "missing local part rejected",
			req:  models.RegisterRequest{Name: "Alex", Email: "@gmail.com", Password: "secret"},
			want: []string{"email"},
		},
		{
			name: "missing name",
			req:  models.RegisterRequest{Email: "alex@gmail.com", Password: "secret"},
			want: []string{"name"},
		},
		{
			name: "short password",
			req:  models.RegisterRequest{Name: "Alex", Email: "alex@gmail.com", Password: "1234"},
			want: []string{"password"},
		},
		{
			name: "everything wrong",
			req:  models.RegisterRequest{},
			want: []string{"name", "email", "password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckRegister(&tt.req)
			var fields []string
			for _, fe := range got {
				fields = append(fields, fe.Field)
			}
			assert.Equal(t, tt.want, fields)
		})
	}
}
