package ui

import (
	"html/template"
	"path/filepath"

	"go.uber.org/zap"
)

// ParseTemplates parses every page template under dir with the shared
// function map.
func ParseTemplates(dir string, logger *zap.Logger) (*template.Template, error) {
	return template.New("").Funcs(NewFuncMap(logger)).ParseGlob(filepath.Join(dir, "*.html"))
}
