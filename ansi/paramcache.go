package ansi

import (
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// paramCacheSize mirrors the teacher's regex-cache capacity
// (engine/lua.go's lru.New[string, *regexp.Regexp](100)) — CSI/SGR
// parameter strings are short, highly repetitive, and cheap to cache by
// the same "compile once, reuse by string key" pattern.
const paramCacheSize = 256

var paramCache, _ = lru.New[string, []int](paramCacheSize)

// parseParamString parses a semicolon-separated list of unsigned decimal
// integers (CSI/SGR parameter bytes), clipped to 0..=255 per spec.md
// §4.4, caching the result by the raw string.
func parseParamString(raw string) []int {
	if raw == "" {
		return nil
	}
	if cached, ok := paramCache.Get(raw); ok {
		return cached
	}
	parts := strings.Split(raw, ";")
	params := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			n = 0
		}
		params[i] = clampByte(n)
	}
	paramCache.Add(raw, params)
	return params
}
