package template

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResolvePath locates the template file named by ctx.Path, trying each
// include directory in order. The driver's default extension is appended
// unless the context overrides it or the path already carries it.
func ResolvePath(ctx *Context, defaultExt string) (string, error) {
	name := ctx.Path
	if name == "" {
		return "", &ConfigurationError{Reason: "template path is empty"}
	}

	ext := ctx.Extension
	if ext == "" {
		ext = defaultExt
	}
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if ext != "" && !strings.HasSuffix(name, ext) {
		name += ext
	}

	candidates := make([]string, 0, len(ctx.IncludePaths)+1)
	if filepath.IsAbs(name) || len(ctx.IncludePaths) == 0 {
		candidates = append(candidates, name)
	}
	if !filepath.IsAbs(name) {
		for _, dir := range ctx.IncludePaths {
			candidates = append(candidates, filepath.Join(dir, name))
		}
	}

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", &ConfigurationError{Reason: fmt.Sprintf("template %q not found in include paths %v", name, ctx.IncludePaths)}
}

// ResolveSource returns the raw template text for ctx, reading the resolved
// file when no inline source is set.
func ResolveSource(ctx *Context, defaultExt string) (string, error) {
	if ctx.Source != "" {
		return ctx.Source, nil
	}

	path, err := ResolvePath(ctx, defaultExt)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ConfigurationError{Reason: fmt.Sprintf("read template %q: %v", path, err)}
	}
	return string(data), nil
}
