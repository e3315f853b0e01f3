package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/agentic-lender/lendermemo/pkg/domain/interfaces"
	creditsvc "github.com/agentic-lender/lendermemo/pkg/service/credit"
)

// Credit selects where credit request records come from. With no API URL
// the built-in sample provider serves fixed borrower profiles.
type Credit struct {
	apiURL string
}

func (x *Credit) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "credit-api-url",
			Usage:       "Base URL of the credit request data provider (empty: built-in sample data)",
			Category:    "Credit",
			Destination: &x.apiURL,
			Sources:     cli.EnvVars("LENDERMEMO_CREDIT_API_URL"),
		},
	}
}

func (x Credit) LogValue() slog.Value {
	source := "sample"
	if x.apiURL != "" {
		source = x.apiURL
	}
	return slog.GroupValue(slog.String("source", source))
}

func (x *Credit) Configure() interfaces.CreditSource {
	if x.apiURL != "" {
		return creditsvc.NewHTTPSource(x.apiURL)
	}
	return creditsvc.NewSampleSource()
}
