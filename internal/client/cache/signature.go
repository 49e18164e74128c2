package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
)

// Signature builds a deterministic cache key from the request shape:
// method + path + отсортированные query-параметры + тело запроса.
// Параметры сортируются, чтобы ?a=1&b=2 и ?b=2&a=1 давали один ключ.
func Signature(method, path string, params url.Values, body []byte) string {
	var b strings.Builder
	b.WriteString(method)
	b.WriteByte('\n')
	b.WriteString(path)
	b.WriteByte('\n')

	if len(params) > 0 {
		keys := make([]string, 0, len(params))
		for k := range params {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			values := append([]string(nil), params[k]...)
			sort.Strings(values)
			for _, v := range values {
				b.WriteString(k)
				b.WriteByte('=')
				b.WriteString(v)
				b.WriteByte('&')
			}
		}
	}
	b.WriteByte('\n')
	b.Write(body)

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
