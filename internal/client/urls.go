package client

import "strings"

// ResolveImageURL turns a stored image path into a displayable URL.
// Absolute URLs pass through unchanged, relative paths are joined onto
// baseURL, and an empty path stays empty. Pure function, no I/O.
func ResolveImageURL(baseURL, path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(path, "/")
}

// ImageURL resolves path against the client's configured base URL.
func (c *Client) ImageURL(path string) string {
	return ResolveImageURL(c.baseURL, path)
}
