package entities

// ChatRequest is the body of the chat endpoint. UserInput is required;
// ShowIntermediateSteps switches the response between the streamed final
// answer and the structured message list.
type ChatRequest struct {
	UserInput             string `json:"user_input"`
	ShowIntermediateSteps bool   `json:"show_intermediate_steps"`
}

// AnalyzeRequest is the body of the GitHub activity analyze endpoint. The
// last message's content is used as the agent input.
type AnalyzeRequest struct {
	Messages []Message `json:"messages"`
}

func (r *AnalyzeRequest) LastUserInput() string {
	if len(r.Messages) == 0 {
		return ""
	}
	return r.Messages[len(r.Messages)-1].Content
}

// ChatResponse is the structured reply returned when intermediate steps are
// requested.
type ChatResponse struct {
	Messages []Message `json:"messages"`
}
