package acme

import (
	"docs-site/app/server/constants"
	"os"
	"strings"
)

// Source 提供 ACME 配置项，每次查询都会重新读取
type Source interface {
	Entries() map[string]string
}

// MapSource 是固定的配置映射
type MapSource map[string]string

func (s MapSource) Entries() map[string]string {
	return s
}

// EnvSource 从进程环境变量读取，只保留 ACME 相关的项
type EnvSource struct{}

func (EnvSource) Entries() map[string]string {
	entries := make(map[string]string)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, "ACME_") {
			continue
		}
		entries[name] = value
	}
	return entries
}

// tokenSuffix 判断配置名是否为 ACME_TOKEN 或 ACME_TOKEN_<SUFFIX> ，返回包含下划线的后缀
func tokenSuffix(name string) (string, bool) {
	rest, ok := strings.CutPrefix(name, constants.AcmeTokenVar)
	if !ok {
		return "", false
	}
	if rest == "" {
		return "", true
	}
	if len(rest) > len(constants.AcmeSuffixPrefix) && strings.HasPrefix(rest, constants.AcmeSuffixPrefix) {
		return rest, true
	}
	return "", false
}
