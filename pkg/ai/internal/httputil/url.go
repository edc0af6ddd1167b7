// ABOUTME: Base URL normalization for provider endpoints

package httputil

import "strings"

// NormalizeBaseURL strips any trailing slash so path joining stays uniform.
func NormalizeBaseURL(u string) string {
	return strings.TrimRight(u, "/")
}
