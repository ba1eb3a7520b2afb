package server

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/recruiterlab/talentmatch/internal/corpus"
	"github.com/recruiterlab/talentmatch/internal/extract"
	"github.com/recruiterlab/talentmatch/internal/matching"
)

const maxUploadBytes = 10 << 20

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) match(c *gin.Context) {
	var req matching.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	result, err := s.deps.Pipeline.Match(c.Request.Context(), &req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, matching.ErrNoRequiredSkills) || errors.Is(err, matching.ErrInvalidTopN) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

type searchRequest struct {
	Query string `json:"query" binding:"required"`
}

func (s *Server) searchCandidates(c *gin.Context) {
	if s.deps.Parser == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "ai query parsing is not configured"})
		return
	}

	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	parsed, err := s.deps.Parser.Parse(c.Request.Context(), req.Query)
	if err != nil {
		s.deps.Logger.Warn("query parsing failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "query parsing failed: " + err.Error()})
		return
	}

	result, err := s.deps.Pipeline.Match(c.Request.Context(), parsed)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, matching.ErrNoRequiredSkills) || errors.Is(err, matching.ErrInvalidTopN) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) analyzeCV(c *gin.Context) {
	if s.deps.Extractor == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "ai profile extraction is not configured"})
		return
	}

	text, ok := s.uploadedText(c, "file")
	if !ok {
		return
	}

	candidate, err := s.deps.Extractor.Extract(c.Request.Context(), text)
	if err != nil {
		s.deps.Logger.Warn("profile extraction failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "profile extraction failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, candidate)
}

func (s *Server) compareCVs(c *gin.Context) {
	if s.deps.Comparer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "ai cv comparison is not configured"})
		return
	}

	criteria := c.PostForm("criteria")
	if criteria == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "criteria is required"})
		return
	}

	first, ok := s.uploadedText(c, "cv1")
	if !ok {
		return
	}
	second, ok := s.uploadedText(c, "cv2")
	if !ok {
		return
	}

	comparison, err := s.deps.Comparer.Compare(c.Request.Context(), criteria, first, second)
	if err != nil {
		s.deps.Logger.Warn("cv comparison failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "cv comparison failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, comparison)
}

// uploadedText reads one multipart upload and extracts its plain text. On
// failure it writes the error response itself and reports false.
func (s *Server) uploadedText(c *gin.Context, field string) (string, bool) {
	file, err := c.FormFile(field)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": field + " upload is required"})
		return "", false
	}
	if file.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": field + " is too large"})
		return "", false
	}

	opened, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reading " + field + ": " + err.Error()})
		return "", false
	}
	defer opened.Close()

	data, err := io.ReadAll(opened)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reading " + field + ": " + err.Error()})
		return "", false
	}

	text, err := extract.Text(file.Filename, data)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return "", false
	}
	return text, true
}

func (s *Server) topSkills(c *gin.Context) {
	n := 10
	if raw := c.Query("top_n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "top_n must be a positive integer"})
			return
		}
		n = parsed
	}
	c.JSON(http.StatusOK, s.deps.Corpus.TopSkills(n))
}

func (s *Server) seniorityDistribution(c *gin.Context) {
	c.JSON(http.StatusOK, s.deps.Corpus.SeniorityDistribution())
}

func (s *Server) experienceDistribution(c *gin.Context) {
	c.JSON(http.StatusOK, s.deps.Corpus.ExperienceDistribution())
}

func (s *Server) employmentTypeDistribution(c *gin.Context) {
	c.JSON(http.StatusOK, s.deps.Corpus.EmploymentTypeDistribution())
}

func (s *Server) skillsBySeniority(c *gin.Context) {
	seniority, err := corpus.ParseSeniority(c.Param("seniority"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.deps.Corpus.SkillsBySeniority(seniority, 10))
}
