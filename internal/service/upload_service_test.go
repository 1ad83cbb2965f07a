package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePath(t *testing.T) {
	svc := NewUploadService("uploads", noopLogger{})

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"product image", "/uploads/products/1-box.jpg", filepath.Join("uploads", "products", "1-box.jpg")},
		{"price list", "/uploads/price-lists/1-price.xlsx", filepath.Join("uploads", "price-lists", "1-price.xlsx")},
		{"outside prefix", "/etc/passwd", ""},
		{"traversal", "/uploads/../secret.txt", ""},
		{"nested traversal", "/uploads/products/../../secret.txt", ""},
		{"bare prefix", "/uploads/", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.ResolvePath(tt.in))
		})
	}
}
