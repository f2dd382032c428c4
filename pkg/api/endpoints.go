package api

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hazyhaar/unemph/pkg/doubles"
	"github.com/hazyhaar/unemph/pkg/kit"
	"github.com/hazyhaar/unemph/pkg/normalize"
)

// maxBatch bounds the number of tokens in one batch request.
const maxBatch = 100

// Shared request/response types used by both HTTP and MCP transports.

type normalizeReq struct {
	Token   string
	Dict    string
	Stem    bool
	Explain bool
}

type batchReq struct {
	Tokens []string
	Dict   string
	Stem   bool
}

type combinationsReq struct {
	Token string
	Stem  bool
}

type lookupReq struct {
	Dict string
	Word string
}

type batchResponse struct {
	Results []*normalize.Result `json:"results"`
}

type dictsResponse struct {
	Dictionaries []doubles.DictInfo `json:"dictionaries"`
}

// endpoints holds the kit.Endpoints backed by the service.
type endpoints struct {
	normalize    kit.Endpoint
	batch        kit.Endpoint
	combinations kit.Endpoint
	listDicts    kit.Endpoint
	lookup       kit.Endpoint
}

func newEndpoints(svc *normalize.Service, logger *slog.Logger) *endpoints {
	wrap := func(name string, ep kit.Endpoint) kit.Endpoint {
		return kit.Chain(kit.RequestID(), kit.Logging(logger, name))(ep)
	}
	return &endpoints{
		normalize:    wrap("normalize", normalizeEndpoint(svc)),
		batch:        wrap("normalize_batch", batchEndpoint(svc)),
		combinations: wrap("combinations", combinationsEndpoint(svc)),
		listDicts:    wrap("list_dicts", listDictsEndpoint(svc)),
		lookup:       wrap("lookup", lookupEndpoint(svc)),
	}
}

func normalizeEndpoint(svc *normalize.Service) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*normalizeReq)
		if req.Explain {
			return svc.Explain(req.Dict, req.Token, req.Stem)
		}
		return svc.Normalize(req.Dict, req.Token, req.Stem)
	}
}

func batchEndpoint(svc *normalize.Service) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*batchReq)
		if len(req.Tokens) == 0 {
			return nil, fmt.Errorf("tokens array is empty")
		}
		if len(req.Tokens) > maxBatch {
			return nil, fmt.Errorf("too many tokens (max %d, got %d)", maxBatch, len(req.Tokens))
		}
		results := make([]*normalize.Result, len(req.Tokens))
		for i, token := range req.Tokens {
			res, err := svc.Normalize(req.Dict, token, req.Stem)
			if err != nil {
				return nil, err
			}
			results[i] = res
		}
		return batchResponse{Results: results}, nil
	}
}

func combinationsEndpoint(svc *normalize.Service) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*combinationsReq)
		return svc.Combinations(req.Token, req.Stem), nil
	}
}

func listDictsEndpoint(svc *normalize.Service) kit.Endpoint {
	return func(_ context.Context, _ any) (any, error) {
		return dictsResponse{Dictionaries: svc.Dicts()}, nil
	}
}

func lookupEndpoint(svc *normalize.Service) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*lookupReq)
		return svc.Lookup(req.Dict, req.Word)
	}
}
