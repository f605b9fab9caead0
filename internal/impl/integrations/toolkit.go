package integrations

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"githubchat/internal/domain/entities"
	"githubchat/internal/domain/errors"
	"githubchat/internal/domain/interfaces"

	"go.uber.org/zap"
)

// ToolkitClient calls the GitHub toolkit service over HTTP. Calls are not
// retried and carry no client-side timeout; cancellation comes only from
// the request context.
type ToolkitClient struct {
	baseURL string
	logger  *zap.Logger
	client  *http.Client
}

func NewToolkitClient(baseURL string, logger *zap.Logger) *ToolkitClient {
	return &ToolkitClient{
		baseURL: baseURL,
		logger:  logger,
		client:  &http.Client{},
	}
}

func (c *ToolkitClient) Invoke(ctx context.Context, userInput string) (*entities.ToolkitResult, error) {
	endpoint := c.baseURL + "/github-toolkit?user_input=" + url.QueryEscape(userInput)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.InternalErrorf("failed to create toolkit request: %v", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("Calling toolkit service", zap.String("url", endpoint))

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("Toolkit call failed", zap.Error(err))
		return nil, errors.UpstreamErrorf("failed to reach toolkit service: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Error("Toolkit returned non-success status", zap.Int("status", resp.StatusCode))
		return nil, errors.UpstreamErrorf("toolkit service returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.InternalErrorf("failed to read toolkit response: %v", err)
	}

	result, err := entities.NewToolkitResult(body)
	if err != nil {
		c.logger.Error("Failed to decode toolkit response", zap.Error(err))
		return nil, errors.InternalErrorf("failed to decode toolkit response: %v", err)
	}

	return result, nil
}

var _ interfaces.ToolkitClient = &ToolkitClient{}
