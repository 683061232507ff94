// Package handler routes a file to the shell command configured for its
// extension, substituting {{FILEPATH}} into the configured argv.
package handler

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// Router dispatches files to extension-configured commands. Patterns may
// be a bare extension ("py"), a pipe-delimited list of extensions
// ("jpg|png"), or a glob ("*.tar.*"); globs are precompiled
// once at construction so repeated dispatch is cheap.
type Router struct {
	byExt  map[string][]string
	globs  []compiledGlob
}

type compiledGlob struct {
	pattern string
	g       glob.Glob
	argv    []string
}

// New builds a Router from the extension-handler map loaded from settings.
func New(config map[string][]string) *Router {
	r := &Router{byExt: make(map[string][]string)}
	for pattern, argv := range config {
		if strings.ContainsAny(pattern, "*?[") {
			g, err := glob.Compile(pattern)
			if err != nil {
				continue
			}
			r.globs = append(r.globs, compiledGlob{pattern: pattern, g: g, argv: argv})
			continue
		}
		for _, ext := range strings.Split(pattern, "|") {
			r.byExt[strings.ToLower(strings.TrimSpace(ext))] = argv
		}
	}
	return r
}

// Lookup returns the argv template for path's extension or matching glob,
// or ok=false if nothing handles it.
func (r *Router) Lookup(path string) (argv []string, ok bool) {
	base := filepath.Base(path)
	ext := strings.TrimPrefix(filepath.Ext(base), ".")
	if argv, ok := r.byExt[strings.ToLower(ext)]; ok {
		return argv, true
	}
	for _, cg := range r.globs {
		if cg.g.Match(base) {
			return cg.argv, true
		}
	}
	return nil, false
}

// Run substitutes {{FILEPATH}} into the handler's argv for path and
// executes it, returning combined output.
func (r *Router) Run(ctx context.Context, path string) (string, error) {
	argv, ok := r.Lookup(path)
	if !ok || len(argv) == 0 {
		return "", fmt.Errorf("handler: no handler configured for %s", path)
	}
	args := make([]string, len(argv))
	for i, a := range argv {
		args[i] = strings.ReplaceAll(a, "{{FILEPATH}}", path)
	}
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}
