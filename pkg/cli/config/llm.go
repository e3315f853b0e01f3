package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gollem/llm/claude"
	"github.com/m-mizutani/gollem/llm/gemini"
	"github.com/urfave/cli/v3"
)

// LLMCfg selects the model provider. Claude via the Anthropic API when an
// API key is set, Claude via Vertex AI when a project ID is set, Gemini
// otherwise.
type LLMCfg struct {
	claudeAPIKey    string
	claudeModel     string
	claudeProjectID string
	claudeLocation  string

	geminiModel     string
	geminiProjectID string
	geminiLocation  string
}

func (x *LLMCfg) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "claude-api-key",
			Usage:       "Anthropic API key for Claude",
			Sources:     cli.EnvVars("LENDERMEMO_CLAUDE_API_KEY", "ANTHROPIC_API_KEY"),
			Destination: &x.claudeAPIKey,
			Category:    "Claude",
		},
		&cli.StringFlag{
			Name:        "claude-model",
			Usage:       "Claude model name",
			Sources:     cli.EnvVars("LENDERMEMO_CLAUDE_MODEL"),
			Value:       "claude-3-5-sonnet-20241022",
			Destination: &x.claudeModel,
			Category:    "Claude",
		},
		&cli.StringFlag{
			Name:        "claude-project-id",
			Usage:       "Google Cloud Project ID for Claude Vertex AI",
			Sources:     cli.EnvVars("LENDERMEMO_CLAUDE_PROJECT_ID"),
			Destination: &x.claudeProjectID,
			Category:    "Claude",
		},
		&cli.StringFlag{
			Name:        "claude-location",
			Usage:       "Google Cloud location for Claude Vertex AI",
			Sources:     cli.EnvVars("LENDERMEMO_CLAUDE_LOCATION"),
			Value:       "us-east5",
			Destination: &x.claudeLocation,
			Category:    "Claude",
		},
		&cli.StringFlag{
			Name:        "gemini-model",
			Usage:       "Gemini model",
			Sources:     cli.EnvVars("LENDERMEMO_GEMINI_MODEL"),
			Value:       "gemini-2.5-flash",
			Destination: &x.geminiModel,
			Category:    "Gemini",
		},
		&cli.StringFlag{
			Name:        "gemini-project-id",
			Usage:       "GCP Project ID for Vertex AI",
			Sources:     cli.EnvVars("LENDERMEMO_GEMINI_PROJECT_ID"),
			Destination: &x.geminiProjectID,
			Category:    "Gemini",
		},
		&cli.StringFlag{
			Name:        "gemini-location",
			Usage:       "GCP Location for Vertex AI",
			Sources:     cli.EnvVars("LENDERMEMO_GEMINI_LOCATION"),
			Value:       "us-central1",
			Destination: &x.geminiLocation,
			Category:    "Gemini",
		},
	}
}

func (x LLMCfg) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("provider", x.ActiveProvider()),
	}
	if x.claudeAPIKey != "" || x.claudeProjectID != "" {
		attrs = append(attrs,
			slog.String("claude_model", x.claudeModel),
			slog.String("claude_project_id", x.claudeProjectID),
			slog.String("claude_location", x.claudeLocation),
		)
	}
	if x.geminiProjectID != "" {
		attrs = append(attrs,
			slog.String("gemini_model", x.geminiModel),
			slog.String("gemini_project_id", x.geminiProjectID),
			slog.String("gemini_location", x.geminiLocation),
		)
	}
	return slog.GroupValue(attrs...)
}

// ActiveProvider names the provider Configure will build.
func (x *LLMCfg) ActiveProvider() string {
	switch {
	case x.claudeAPIKey != "":
		return "claude"
	case x.claudeProjectID != "":
		return "claude-vertex"
	case x.geminiProjectID != "":
		return "gemini"
	default:
		return "none"
	}
}

func (x *LLMCfg) Configure(ctx context.Context) (gollem.LLMClient, error) {
	switch x.ActiveProvider() {
	case "claude":
		client, err := claude.New(ctx, x.claudeAPIKey, claude.WithModel(x.claudeModel))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create Claude client",
				goerr.V("model", x.claudeModel))
		}
		return client, nil

	case "claude-vertex":
		client, err := claude.NewWithVertex(ctx, x.claudeLocation, x.claudeProjectID,
			claude.WithVertexModel(x.claudeModel))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create Claude Vertex AI client",
				goerr.V("projectID", x.claudeProjectID),
				goerr.V("location", x.claudeLocation),
				goerr.V("model", x.claudeModel))
		}
		return client, nil

	case "gemini":
		client, err := gemini.New(ctx, x.geminiProjectID, x.geminiLocation,
			gemini.WithModel(x.geminiModel))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create Gemini client",
				goerr.V("projectID", x.geminiProjectID),
				goerr.V("location", x.geminiLocation))
		}
		return client, nil

	default:
		return nil, goerr.New("no LLM provider configured: set claude-api-key, claude-project-id or gemini-project-id")
	}
}
