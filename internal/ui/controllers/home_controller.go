package uicontrollers

import (
	"html/template"
	"net/http"

	"githubchat/internal/domain/entities"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type HomeController struct {
	logger *zap.Logger
	tmpl   *template.Template
}

func NewHomeController(logger *zap.Logger, tmpl *template.Template) *HomeController {
	return &HomeController{
		logger: logger,
		tmpl:   tmpl,
	}
}

func (c *HomeController) RegisterRoutes(e *echo.Echo) {
	e.GET("/", c.HomeHandler)
}

func (c *HomeController) HomeHandler(eCtx echo.Context) error {
	data := map[string]interface{}{
		"Title":    "GitHub Toolkit Chat",
		"Messages": []entities.Message{},
	}

	eCtx.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	if err := c.tmpl.ExecuteTemplate(eCtx.Response().Writer, "layout", data); err != nil {
		c.logger.Error("Failed to render template", zap.Error(err))
		return eCtx.String(http.StatusInternalServerError, "Internal server error")
	}
	return nil
}
