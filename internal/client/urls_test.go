package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loca-app/loca-go/internal/client"
)

func TestResolveImageURL(t *testing.T) {
	const base = "http://127.0.0.1:8000"

	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "absolute http URL passes through",
			path: "http://x/y.png",
			want: "http://x/y.png",
		},
		{
			name: "absolute https URL passes through",
			path: "https://cdn.example.com/y.png",
			want: "https://cdn.example.com/y.png",
		},
		{
			name: "relative path joined onto base",
			path: "uploads/a.png",
			want: base + "/uploads/a.png",
		},
		{
			name: "leading slash not doubled",
			path: "/uploads/a.png",
			want: base + "/uploads/a.png",
		},
		{
			name: "empty stays empty",
			path: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, client.ResolveImageURL(base, tt.path))
		})
	}
}

func TestClientImageURL(t *testing.T) {
	c, err := client.New(client.Config{BaseURL: "http://127.0.0.1:8000/"})
	assert.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8000/uploads/a.png", c.ImageURL("uploads/a.png"))
}
