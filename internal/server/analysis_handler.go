// Package server provides Connect RPC handlers for the word analysis service.
//
// Messages are protobuf well-known types so that no generated code is needed:
// words travel as google.protobuf.StringValue and results as google.protobuf.Struct.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"connectrpc.com/connect"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/at-ishikawa/silabario/internal/syllable"
	"github.com/at-ishikawa/silabario/internal/vocabulary"
)

const (
	AnalysisServiceName = "silabario.v1.AnalysisService"

	AnalyzeProcedure   = "/" + AnalysisServiceName + "/Analyze"
	ListWordsProcedure = "/" + AnalysisServiceName + "/ListWords"
	AddWordProcedure   = "/" + AnalysisServiceName + "/AddWord"
)

// AnalysisHandler analyses words and manages the stored vocabulary.
type AnalysisHandler struct {
	repo vocabulary.Repository
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(repo vocabulary.Repository) *AnalysisHandler {
	return &AnalysisHandler{repo: repo}
}

// NewAnalysisServiceHandler mounts every procedure of h and returns the path prefix to register on a mux.
func NewAnalysisServiceHandler(h *AnalysisHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	analyze := connect.NewUnaryHandler(AnalyzeProcedure, h.Analyze, opts...)
	listWords := connect.NewUnaryHandler(ListWordsProcedure, h.ListWords, opts...)
	addWord := connect.NewUnaryHandler(AddWordProcedure, h.AddWord, opts...)

	return "/" + AnalysisServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case AnalyzeProcedure:
			analyze.ServeHTTP(w, r)
		case ListWordsProcedure:
			listWords.ServeHTTP(w, r)
		case AddWordProcedure:
			addWord.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// Analyze splits a word into syllables and classifies it without storing it.
func (h *AnalysisHandler) Analyze(
	ctx context.Context,
	req *connect.Request[wrapperspb.StringValue],
) (*connect.Response[structpb.Struct], error) {
	word, err := vocabulary.NewWord(req.Msg.GetValue())
	if err != nil {
		return nil, invalidWord(err)
	}

	result, err := structpb.NewStruct(wordFields(word))
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("structpb.NewStruct() > %w", err))
	}
	return connect.NewResponse(result), nil
}

// ListWords returns the stored words and their per-category counts.
func (h *AnalysisHandler) ListWords(
	ctx context.Context,
	req *connect.Request[emptypb.Empty],
) (*connect.Response[structpb.Struct], error) {
	words, err := h.repo.FindAll(ctx)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("find words: %w", err))
	}

	items := make([]any, 0, len(words))
	for _, w := range words {
		items = append(items, wordFields(w))
	}
	stats := vocabulary.CountByCategory(words)
	counts := make(map[string]any, len(stats.ByCategory))
	for _, c := range syllable.Categories() {
		counts[c.String()] = stats.ByCategory[c]
	}

	result, err := structpb.NewStruct(map[string]any{
		"words":       items,
		"total":       stats.Total,
		"by_category": counts,
	})
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("structpb.NewStruct() > %w", err))
	}
	return connect.NewResponse(result), nil
}

// AddWord analyses a word and stores it.
func (h *AnalysisHandler) AddWord(
	ctx context.Context,
	req *connect.Request[wrapperspb.StringValue],
) (*connect.Response[structpb.Struct], error) {
	word, err := vocabulary.NewWord(req.Msg.GetValue())
	if err != nil {
		return nil, invalidWord(err)
	}

	if err := h.repo.Create(ctx, &word); err != nil {
		if errors.Is(err, vocabulary.ErrDuplicateWord) {
			return nil, connect.NewError(connect.CodeAlreadyExists, err)
		}
		return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("create word: %w", err))
	}
	slog.Default().Info("word added",
		slog.String("word", word.Word),
		slog.String("category", word.Category.String()))

	result, err := structpb.NewStruct(wordFields(word))
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("structpb.NewStruct() > %w", err))
	}
	return connect.NewResponse(result), nil
}

func wordFields(w vocabulary.Word) map[string]any {
	syllables := make([]any, len(w.Syllables))
	for i, s := range w.Syllables {
		syllables[i] = s
	}
	fields := map[string]any{
		"word":              w.Word,
		"syllables":         syllables,
		"stress_index":      w.StressIndex,
		"stressed_syllable": w.StressedSyllable(),
		"category":          w.Category.String(),
		"label":             w.Category.Label(),
	}
	if w.ImageHint != "" {
		fields["image_hint"] = w.ImageHint
	}
	return fields
}

func invalidWord(err error) *connect.Error {
	connectErr := connect.NewError(connect.CodeInvalidArgument, err)
	if detail, detailErr := connect.NewErrorDetail(&errdetails.BadRequest{
		FieldViolations: []*errdetails.BadRequest_FieldViolation{
			{Field: "value", Description: err.Error()},
		},
	}); detailErr == nil {
		connectErr.AddDetail(detail)
	}
	return connectErr
}
