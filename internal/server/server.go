// Package server exposes the matching pipeline and its AI collaborators
// over HTTP.
package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/recruiterlab/talentmatch/internal/ai"
	"github.com/recruiterlab/talentmatch/internal/corpus"
	"github.com/recruiterlab/talentmatch/internal/matching"
)

// Deps aggregates everything the handlers need. The AI collaborators are
// optional; endpoints depending on them answer 503 when unset.
type Deps struct {
	Corpus    *corpus.Corpus
	Pipeline  *matching.Pipeline
	Parser    ai.QueryParser
	Extractor ai.ProfileExtractor
	Comparer  ai.Comparer
	Logger    *zap.Logger
}

type Server struct {
	deps   Deps
	engine *gin.Engine
}

func New(deps Deps) (*Server, error) {
	if deps.Corpus == nil || deps.Pipeline == nil {
		return nil, fmt.Errorf("corpus and pipeline are required")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{deps: deps, engine: engine}
	s.routes()

	return s, nil
}

func (s *Server) routes() {
	s.engine.GET("/health", s.health)
	s.engine.POST("/match", s.match)
	s.engine.POST("/search-candidates", s.searchCandidates)
	s.engine.POST("/analyze-cv", s.analyzeCV)
	s.engine.POST("/compare-cvs", s.compareCVs)

	dataset := s.engine.Group("/dataset")
	dataset.GET("/top-skills", s.topSkills)
	dataset.GET("/seniority-distribution", s.seniorityDistribution)
	dataset.GET("/experience-distribution", s.experienceDistribution)
	dataset.GET("/employment-type-distribution", s.employmentTypeDistribution)
	dataset.GET("/skills-by-seniority/:seniority", s.skillsBySeniority)
}

// Run blocks serving HTTP on the given address.
func (s *Server) Run(listen string) error {
	s.deps.Logger.Info("starting http server", zap.String("listen", listen))
	return s.engine.Run(listen)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}
