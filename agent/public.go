package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/finlens/fundamentals"
	"github.com/finlens/fundamentals/docs"
	"github.com/finlens/fundamentals/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			The user just ran a fundamental analysis over a watchlist of stock tickers and wants to
			understand the figures. Learn about the experts' skills from the Tools and ask them
			questions; they are 100% dedicated to you and keep context of your previous questions.

			Devise a plan of questions for the experts and come up with the best response. Always
			check with the Analyst which tickers and ratios are actually in the report before
			reasoning about them, and use the Market expert for anything about recent news or
			context the report cannot contain.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewMarketExpert returns an expert grounded by Google Search for market
// news and context beyond the computed report.
func NewMarketExpert() *Expert {
	return &Expert{
		Name: "Market",
		Description: `An expert on financial markets, companies and recent market news.
		Ask the Market expert whenever you need recent or grounding information
		that the analysis report cannot contain.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in financial markets. You can search and find about anything
			related to companies, indices, funds and financial institutions. You leverage
			Google Search to ground your assertions and you know how to relate recent news
			to the user's watchlist.
				`}}},
		},
	}
}

// NewAnalyst returns the expert that reads the computed analysis report
// through function tools.
func NewAnalyst(report *fundamentals.Report) *Expert {
	lib := analystTools(report)

	return &Expert{
		Name: "Analyst",
		Description: `The Analyst has the full fundamental analysis report that was just
		computed: statement tables, market quotes and derived ratios per ticker. He can
		list the analyzed tickers and produce the figures for any of them.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a financial analyst in charge of one analysis report. Use the
				available tools to read it:
				  - list of analyzed tickers
				  - key ratios per ticker
				  - statement tables per ticker
				  - market data per ticker
				A ratio missing from a table means its inputs were unavailable, never
				assume a value for it. Answer with figures from the report only.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// tickerParam is the schema shared by all per-ticker tools.
func tickerParam() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"ticker": {
				Type:        genai.TypeString,
				Description: "The stock ticker symbol, exactly as listed by the Tickers tool.",
			},
		},
		Required: []string{"ticker"},
	}
}

// analystTools builds the function library over one report.
func analystTools(report *fundamentals.Report) []Function {

	// resolve finds the report entry for the "ticker" argument.
	resolve := func(args map[string]any) (*fundamentals.Result, error) {
		raw, ok := args["ticker"].(string)
		if !ok {
			return nil, fmt.Errorf("argument 'ticker' is not a string as expected but %T", args["ticker"])
		}
		res := report.Result(strings.ToUpper(strings.TrimSpace(raw)))
		if res == nil {
			return nil, fmt.Errorf("ticker %q is not in the report, analyzed tickers are: %s",
				raw, strings.Join(report.Tickers(), ", "))
		}
		return res, nil
	}

	// output wraps a markdown answer into a function response.
	output := func(id, name, md string) *genai.FunctionResponse {
		return &genai.FunctionResponse{
			ID:   id,
			Name: name,
			Response: map[string]any{
				"output": md,
			},
		}
	}

	tickers := &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Tickers",
			Description: "Tickers lists the stock tickers present in the analysis report.",
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A comma-separated list of the analyzed ticker symbols.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return output(id, "Tickers", strings.Join(report.Tickers(), ", "))
		},
	}

	ratios := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Ratios",
			Description: `Ratios returns the computed key ratios for one ticker.

			` + must(docs.GetTopic("ratios")),
			Parameters: tickerParam(),
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of the computed ratios for the ticker.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			res, err := resolve(args)
			if err != nil {
				return errorResponse(id, "Ratios", err)
			}
			return output(id, "Ratios", renderer.RatiosMarkdown(res.Ticker, res.Ratios))
		},
	}

	statements := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Statements",
			Description: `Statements returns the reported financial statement tables for one
			ticker: income statement, balance sheet and cash flow, one row per reporting period.`,
			Parameters: tickerParam(),
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "Markdown tables of the ticker's statement rows.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			res, err := resolve(args)
			if err != nil {
				return errorResponse(id, "Statements", err)
			}
			return output(id, "Statements", renderer.StatementsMarkdown(res.Fundamentals))
		},
	}

	marketData := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "MarketData",
			Description: `MarketData returns the current market snapshot for one ticker:
			price, market capitalization, trailing P/E, price-to-book, dividend yield
			and the 52-week range.`,
			Parameters: tickerParam(),
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of the ticker's market data.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			res, err := resolve(args)
			if err != nil {
				return errorResponse(id, "MarketData", err)
			}
			if res.Quote == nil {
				return errorResponse(id, "MarketData", fmt.Errorf("no quote could be fetched for %s", res.Ticker))
			}
			return output(id, "MarketData", renderer.QuoteMarkdown(res.Quote))
		},
	}

	return []Function{tickers, ratios, statements, marketData}
}
