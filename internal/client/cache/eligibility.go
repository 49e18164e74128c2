package cache

import "strings"

// Partition names. Рецепты и каталог продуктов кэшируются отдельно друг от
// друга и от всего остального, чтобы большая выдача поиска не вытесняла
// часто используемые записи.
const (
	PartitionRecipes = "recipes"
	PartitionFoods   = "foods"
	PartitionDefault = "default"
)

// allowedPrefixes — идемпотентные read-эндпоинты, ответы которых можно
// кэшировать. Все остальные запросы обходят кэш безусловно.
var allowedPrefixes = []string{
	"/recipes",
	"/foods",
	"/food/search",
	"/exercises/catalog",
	"/nutrition",
}

// Eligible reports whether a request may be served from or stored to the
// response cache. Кэшируются только GET по allow-list'у путей.
func Eligible(method, path string) bool {
	if method != "GET" {
		return false
	}
	for _, prefix := range allowedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// PartitionFor returns the cache partition for the request path
func PartitionFor(path string) string {
	switch {
	case strings.HasPrefix(path, "/recipes"):
		return PartitionRecipes
	case strings.HasPrefix(path, "/foods"), strings.HasPrefix(path, "/food/search"):
		return PartitionFoods
	default:
		return PartitionDefault
	}
}
