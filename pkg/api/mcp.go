package api

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/hazyhaar/unemph/pkg/kit"
	"github.com/hazyhaar/unemph/pkg/normalize"
)

// NewMCPServer returns an MCP server exposing the unemph tools.
func NewMCPServer(svc *normalize.Service, logger *slog.Logger, version string) *server.MCPServer {
	srv := server.NewMCPServer("unemph", version,
		server.WithToolCapabilities(false),
		server.WithInstructions("Collapse emphatic letter repetition (\"heeeellloooo\") into dictionary words."),
	)
	RegisterMCPTools(srv, svc, logger)
	return srv
}

// RegisterMCPTools registers the four unemph MCP tools on the server.
func RegisterMCPTools(srv *server.MCPServer, svc *normalize.Service, logger *slog.Logger) {
	ep := newEndpoints(svc, logger)
	registerNormalizeToken(srv, ep)
	registerNormalizeCombination(srv, ep)
	registerNormalizeBatch(srv, ep)
	registerListDicts(srv, ep)
}

func registerNormalizeToken(srv *server.MCPServer, ep *endpoints) {
	tool := mcp.NewTool("normalize_token",
		mcp.WithDescription("Collapse emphatic letter repetition in one token and resolve it against a double-letter dictionary (heeeellloooo -> hello)."),
		mcp.WithString("token", mcp.Required(), mcp.Description("The token to normalize")),
		mcp.WithBoolean("stem", mcp.Description("Return the English stem of the result"), mcp.DefaultBool(false)),
		mcp.WithString("dict", mcp.Description("Dictionary ID (default: bundled list)")),
		mcp.WithBoolean("explain", mcp.Description("Return the full decision trace"), mcp.DefaultBool(false)),
	)

	kit.RegisterMCPTool(srv, tool, ep.normalize, func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		token, err := req.RequireString("token")
		if err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &normalizeReq{
			Token:   token,
			Dict:    req.GetString("dict", ""),
			Stem:    req.GetBool("stem", false),
			Explain: req.GetBool("explain", false),
		}}, nil
	})
}

func registerNormalizeCombination(srv *server.MCPServer, ep *endpoints) {
	tool := mcp.NewTool("normalize_combination",
		mcp.WithDescription("List every plausible de-emphasized spelling of a token, without a dictionary."),
		mcp.WithString("token", mcp.Required(), mcp.Description("The token to expand")),
		mcp.WithBoolean("stem", mcp.Description("Stem every candidate"), mcp.DefaultBool(false)),
	)

	kit.RegisterMCPTool(srv, tool, ep.combinations, func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		token, err := req.RequireString("token")
		if err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &combinationsReq{
			Token: token,
			Stem:  req.GetBool("stem", false),
		}}, nil
	})
}

func registerNormalizeBatch(srv *server.MCPServer, ep *endpoints) {
	tool := mcp.NewTool("normalize_batch",
		mcp.WithDescription(fmt.Sprintf("Normalize multiple tokens (up to %d) against one dictionary.", maxBatch)),
		mcp.WithString("tokens", mcp.Required(), mcp.Description("Comma-separated list of tokens to normalize")),
		mcp.WithBoolean("stem", mcp.Description("Return the English stem of each result"), mcp.DefaultBool(false)),
		mcp.WithString("dict", mcp.Description("Dictionary ID (default: bundled list)")),
	)

	kit.RegisterMCPTool(srv, tool, ep.batch, func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		tokensStr, err := req.RequireString("tokens")
		if err != nil {
			return nil, err
		}
		var tokens []string
		for _, t := range strings.Split(tokensStr, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tokens = append(tokens, t)
			}
		}
		return &kit.MCPDecodeResult{Request: &batchReq{
			Tokens: tokens,
			Dict:   req.GetString("dict", ""),
			Stem:   req.GetBool("stem", false),
		}}, nil
	})
}

func registerListDicts(srv *server.MCPServer, ep *endpoints) {
	tool := mcp.NewTool("list_dicts",
		mcp.WithDescription("List all loaded double-letter dictionaries with metadata (language, source, code and word counts)."),
	)

	kit.RegisterMCPTool(srv, tool, ep.listDicts, func(_ mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		return &kit.MCPDecodeResult{Request: nil}, nil
	})
}
