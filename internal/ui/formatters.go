package ui

import (
	"bytes"
	"fmt"
	"html"
	"html/template"

	"githubchat/internal/domain/entities"

	"github.com/dustin/go-humanize"
	"github.com/yuin/goldmark"
	gfmext "github.com/yuin/goldmark/extension"
	"go.uber.org/zap"
)

// NewFuncMap builds the template function map shared by all pages.
func NewFuncMap(logger *zap.Logger) template.FuncMap {
	return template.FuncMap{
		"renderMarkdown": renderMarkdown,
		"formatToolInvocation": func(content string) template.HTML {
			return formatToolInvocation(logger, content)
		},
		"formatCodeBlock": formatCodeBlock,
		"formatNumber": func(num int) string {
			return humanize.Comma(int64(num))
		},
	}
}

// formatToolInvocation renders a tool-role message whose content is a JSON
// encoded tool invocation record. Malformed content is logged and rendered
// as nothing, so the page simply omits the message.
func formatToolInvocation(logger *zap.Logger, content string) template.HTML {
	inv, err := entities.ParseToolInvocation(content)
	if err != nil {
		logger.Error("Failed to parse tool invocation content", zap.Error(err))
		return ""
	}

	var output bytes.Buffer
	output.WriteString(fmt.Sprintf("<div class=\"tool-invocation\"><div class=\"tool-name\">%s</div>", html.EscapeString(inv.ToolName)))
	output.WriteString(string(formatCodeBlock(inv.InputJSON())))
	output.WriteString(string(formatCodeBlock(inv.OutputText())))
	output.WriteString("</div>")
	return template.HTML(output.String())
}

// formatCodeBlock wraps a string verbatim in a scrollable preformatted
// block.
func formatCodeBlock(code string) template.HTML {
	return template.HTML(fmt.Sprintf("<pre class=\"code-block\"><code>%s</code></pre>", html.EscapeString(code)))
}

func renderMarkdown(markdown string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := goldmark.New(goldmark.WithExtensions(gfmext.GFM)).Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
