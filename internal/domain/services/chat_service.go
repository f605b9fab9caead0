package services

import (
	"context"

	"githubchat/internal/domain/entities"
	"githubchat/internal/domain/errors"
	"githubchat/internal/domain/interfaces"

	"go.uber.org/zap"
)

const fallbackAnswer = "I was unable to process your request properly."

type ChatService interface {
	Ask(ctx context.Context, userInput string) (*entities.ToolkitResult, error)
	Analyze(ctx context.Context, messages []entities.Message) (*entities.Message, error)
}

type chatService struct {
	toolkit interfaces.ToolkitClient
	logger  *zap.Logger
}

func NewChatService(toolkit interfaces.ToolkitClient, logger *zap.Logger) *chatService {
	return &chatService{
		toolkit: toolkit,
		logger:  logger,
	}
}

// Ask forwards the user's input to the toolkit service and returns its
// result untouched; the controller decides how to reshape it.
func (s *chatService) Ask(ctx context.Context, userInput string) (*entities.ToolkitResult, error) {
	if userInput == "" {
		return nil, errors.ValidationErrorf("user_input is required")
	}

	result, err := s.toolkit.Invoke(ctx, userInput)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Toolkit answered", zap.String("user_input", userInput))
	return result, nil
}

// Analyze runs the GitHub activity analysis flow: the conversation is
// normalized to structured messages, the latest turn becomes the agent
// input, and the toolkit output comes back as a single assistant message.
func (s *chatService) Analyze(ctx context.Context, messages []entities.Message) (*entities.Message, error) {
	history := entities.ToChatMessages(messages)
	if len(history) == 0 {
		return nil, errors.ValidationErrorf("messages are required")
	}

	input := history[len(history)-1].GetContent()
	result, err := s.toolkit.Invoke(ctx, input)
	if err != nil {
		return nil, err
	}

	content := result.Output()
	if content == "" {
		content = result.Text()
	}
	if content == "" {
		s.logger.Warn("Toolkit result carried no answer", zap.String("input", input))
		content = fallbackAnswer
	}

	return entities.NewMessage("assistant", content), nil
}

var _ ChatService = &chatService{}
