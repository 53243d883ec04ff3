package llm

import (
	"context"
	"strings"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
)

// RegisterExtractionModels registers the extraction client as a Genkit
// model provider, for hosting the extraction tasks inside Genkit flows.
// The screening core stays independent of this wiring.
func RegisterExtractionModels(ctx context.Context, client *Client) (*genkit.Genkit, error) {
	g := genkit.Init(ctx)

	genkit.DefineModel(
		g,
		"cscreen/extractor",
		&ai.ModelOptions{
			Label: "Concrete document extractor",
			Supports: &ai.ModelSupports{
				Multiturn:  false,
				SystemRole: true,
			},
		},
		func(ctx context.Context, req *ai.ModelRequest, cb ai.ModelStreamCallback) (*ai.ModelResponse, error) {
			content, err := client.Complete(ctx, "", promptText(req))
			if err != nil {
				return nil, err
			}
			return &ai.ModelResponse{
				Request: req,
				Message: &ai.Message{
					Content: []*ai.Part{
						ai.NewTextPart(content),
					},
				},
			}, nil
		},
	)

	return g, nil
}

// promptText flattens the request's user messages into one prompt string.
func promptText(req *ai.ModelRequest) string {
	var sb strings.Builder
	for _, msg := range req.Messages {
		if msg.Role != ai.RoleUser {
			continue
		}
		for _, part := range msg.Content {
			if part.IsText() {
				sb.WriteString(part.Text)
			}
		}
	}
	return sb.String()
}
