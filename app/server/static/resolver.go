package static

import (
	"docs-site/app/server/constants"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"os"
	"path"
	"strings"
)

var ErrNotFound = errors.New("static file not found")

type File struct {
	Name        string // 相对于文档根目录的路径
	ContentType string
	Data        []byte
}

// Resolver 只读取文档根目录内的文件，符号链接也不能逃出根目录
type Resolver struct {
	root *os.Root
}

func New(dir string) (*Resolver, error) {
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("open document root %s: %w", dir, err)
	}

	return &Resolver{root: root}, nil
}

func (r *Resolver) Close() error {
	return r.root.Close()
}

// Clean 把请求路径规整为根目录内的相对路径，空路径对应 index.html
func Clean(p string) (string, bool) {
	if strings.ContainsRune(p, 0) {
		return "", false
	}

	// 不折叠 ..，直接拒绝
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return "", false
		}
	}

	name := strings.TrimPrefix(path.Clean("/"+p), "/")
	if name == "" {
		name = constants.SiteIndexFile
	}

	return name, fs.ValidPath(name)
}

func (r *Resolver) Resolve(p string) (*File, error) {
	name, ok := Clean(p)
	if !ok {
		return nil, ErrNotFound
	}

	f, err := r.root.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", name, err)
	}
	if info.IsDir() {
		// 不提供目录列表
		return nil, ErrNotFound
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	return &File{
		Name:        name,
		ContentType: contentType(name, data),
		Data:        data,
	}, nil
}

func contentType(name string, data []byte) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return http.DetectContentType(data)
}
