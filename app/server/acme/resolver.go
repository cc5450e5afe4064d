package acme

import (
	"docs-site/app/server/constants"
	"errors"
)

var ErrNotFound = errors.New("acme challenge not found")

type Resolver struct {
	src Source
}

func NewResolver(src Source) *Resolver {
	return &Resolver{src: src}
}

// Resolve 返回 token 对应的 key 。
// 多个后缀同时配置了相同 token 时，取枚举到的第一个（顺序不保证）。
func (r *Resolver) Resolve(token string) (string, error) {
	if token == "" {
		return "", ErrNotFound
	}

	entries := r.src.Entries()
	for name, value := range entries {
		suffix, ok := tokenSuffix(name)
		if !ok || value != token {
			continue
		}

		// 找配对的 key
		if key, exist := entries[constants.AcmeKeyVar+suffix]; exist {
			return key, nil
		}
	}

	return "", ErrNotFound
}
