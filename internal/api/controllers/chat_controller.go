package apicontrollers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"githubchat/internal/domain/entities"
	"githubchat/internal/domain/errors"
	"githubchat/internal/domain/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ChatController struct {
	logger      *zap.Logger
	chatService services.ChatService
}

func NewChatController(logger *zap.Logger, chatService services.ChatService) *ChatController {
	return &ChatController{
		logger:      logger,
		chatService: chatService,
	}
}

// RegisterRoutes registers all chat-related routes with Echo
func (c *ChatController) RegisterRoutes(e *echo.Echo) {
	e.POST("/", c.Chat)
	e.POST("/api/chat/github-cli/analyze", c.Analyze)
}

// Chat godoc
// @Summary Ask the GitHub toolkit agent
// @Description Forwards the user's input to the toolkit service. Returns the final answer as a one-shot text stream, or the structured message list when intermediate steps are requested.
// @Tags chat
// @Accept json
// @Produce json
// @Produce plain
// @Param request body entities.ChatRequest true "User input"
// @Success 200 {object} entities.ChatResponse "Structured messages (show_intermediate_steps=true)"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 502 {object} map[string]interface{} "Toolkit service failure"
// @Router / [post]
func (c *ChatController) Chat(ctx echo.Context) error {
	var req entities.ChatRequest
	if err := ctx.Bind(&req); err != nil {
		return c.handleError(ctx, errors.ValidationErrorf("invalid request body"))
	}

	result, err := c.chatService.Ask(ctx.Request().Context(), req.UserInput)
	if err != nil {
		return c.handleError(ctx, err)
	}

	if req.ShowIntermediateSteps {
		return ctx.JSON(http.StatusOK, entities.ChatResponse{
			Messages: []entities.Message{{Role: "assistant", Content: result.Output()}},
		})
	}

	// The answer arrives fully buffered from the toolkit, so the stream
	// carries exactly one chunk and closes.
	return ctx.Stream(http.StatusOK, "text/plain; charset=utf-8", strings.NewReader(result.Text()))
}

// Analyze godoc
// @Summary Analyze GitHub activity
// @Description Runs the GitHub activity analysis over a conversation and streams the assistant's reply as newline-delimited JSON.
// @Tags chat
// @Accept json
// @Produce json
// @Param request body entities.AnalyzeRequest true "Conversation messages"
// @Success 200 {object} entities.ChatResponse "Assistant reply"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Router /api/chat/github-cli/analyze [post]
func (c *ChatController) Analyze(ctx echo.Context) error {
	var req entities.AnalyzeRequest
	if err := ctx.Bind(&req); err != nil {
		return c.handleError(ctx, errors.ValidationErrorf("invalid request body"))
	}

	message, err := c.chatService.Analyze(ctx.Request().Context(), req.Messages)
	if err != nil {
		switch err.(type) {
		case *errors.ValidationError:
			return c.handleError(ctx, err)
		default:
			// Agent failures surface inside the stream as an assistant
			// line, so the client renders them like any other reply.
			c.logger.Error("Analyze failed", zap.Error(err))
			message = entities.NewMessage("assistant", "An error occurred: "+err.Error())
		}
	}

	line, err := json.Marshal(entities.ChatResponse{Messages: []entities.Message{*message}})
	if err != nil {
		return c.handleError(ctx, errors.InternalErrorf("failed to encode response: %v", err))
	}
	line = append(line, '\n')

	return ctx.Stream(http.StatusOK, "text/event-stream", bytes.NewReader(line))
}

// handleError handles errors and returns them in a consistent format
func (c *ChatController) handleError(ctx echo.Context, err error) error {
	c.logger.Error("Error occurred", zap.Error(err))
	return ctx.JSON(errors.StatusOf(err), map[string]interface{}{
		"error": err.Error(),
	})
}
