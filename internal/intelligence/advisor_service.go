// Package intelligence produces the AI recommendation for a project
// portfolio: prompt synthesis, the day-scoped recommendation cache, and
// the async analyzer that keeps the external call off the interactive loop.
package intelligence

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/muxdash/internal/domain"
	"github.com/alexanderramin/muxdash/internal/llm"
)

// User-displayable failure messages. Each maps to one branch of the
// failure taxonomy; none of them is ever cached.
const (
	errNoCredential  = "API key not found. Set $MUXDASH_API_KEY."
	errNoProjects    = "No projects to analyze"
	errEmptyResponse = "The service responded but returned no content"
)

// AnalysisResult is the outcome of one analysis request. Exactly one of
// Err or a non-empty Content is meaningful.
type AnalysisResult struct {
	Err       string // displayable failure; empty on success
	Content   string
	FromCache bool
}

// Failed reports whether the analysis produced an error instead of content.
func (r AnalysisResult) Failed() bool {
	return r.Err != ""
}

// AdvisorService generates portfolio recommendations.
type AdvisorService interface {
	// Analyze consults the cache (unless force), then performs at most
	// one external call. All failures come back as displayable results,
	// never as process-fatal errors.
	Analyze(ctx context.Context, projects []*domain.Project, today time.Time, force bool) AnalysisResult
}

type advisorService struct {
	client llm.LLMClient
	cfg    llm.LLMConfig
	cache  *RecommendationCache
}

// NewAdvisorService creates an AdvisorService backed by an LLM client and
// a recommendation cache.
func NewAdvisorService(client llm.LLMClient, cfg llm.LLMConfig, cache *RecommendationCache) AdvisorService {
	return &advisorService{client: client, cfg: cfg, cache: cache}
}

func (s *advisorService) Analyze(ctx context.Context, projects []*domain.Project, today time.Time, force bool) AnalysisResult {
	if !force {
		if content, ok := s.cache.Load(today); ok {
			return AnalysisResult{Content: content, FromCache: true}
		}
	}

	if !s.cfg.HasCredential() {
		return AnalysisResult{Err: errNoCredential}
	}
	if len(projects) == 0 {
		return AnalysisResult{Err: errNoProjects}
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		SystemPrompt: advisorSystemPrompt,
		UserPrompt:   buildAdvisorPrompt(projects, today),
	})
	if err != nil {
		return AnalysisResult{Err: "API call failed: " + err.Error()}
	}

	// The service answered but had nothing to say. Distinct from a
	// transport failure, and never cached.
	if strings.TrimSpace(resp.Text) == "" {
		return AnalysisResult{Err: errEmptyResponse}
	}

	s.cache.Save(today, resp.Text)
	return AnalysisResult{Content: resp.Text}
}
