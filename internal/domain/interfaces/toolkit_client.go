package interfaces

import (
	"context"

	"githubchat/internal/domain/entities"
)

// ToolkitClient calls the external GitHub toolkit service that executes
// GitHub actions and returns the agent's answer.
type ToolkitClient interface {
	Invoke(ctx context.Context, userInput string) (*entities.ToolkitResult, error)
}
