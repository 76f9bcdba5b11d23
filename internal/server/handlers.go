package server

import (
	"embed"
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/qa-coach/internal/roi"
)

//go:embed static/index.html
var staticFiles embed.FS

// EvaluateRequest represents the request body for /evaluate
type EvaluateRequest struct {
	Transcript string `json:"transcript" validate:"required"`
	// Strict opts this request into schema validation of the model payload.
	Strict bool `json:"strict,omitempty"`
	// Balanced opts this request into balanced-brace JSON extraction.
	Balanced bool `json:"balanced,omitempty"`
}

// EvaluateResponse represents the response for /evaluate. EvaluationID is for
// log correlation only; nothing is persisted.
type EvaluateResponse struct {
	EvaluationID       string          `json:"evaluation_id"`
	CriteriaScores     map[string]int  `json:"criteria_scores"`
	OverallScore       int             `json:"overall_score"`
	CoachingSummary    string          `json:"coaching_summary"`
	SuggestedQuestions []string        `json:"suggested_1on1_questions"`
	Raw                json.RawMessage `json:"raw"`
}

// ROIResponse represents the response for /roi
type ROIResponse struct {
	Inputs        roi.Inputs `json:"inputs"`
	WeeklyHours   int        `json:"weekly_hours"`
	WeeklySavings int        `json:"weekly_savings"`
}

// handleEvaluate runs one blocking evaluation of the submitted transcript.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "transcript is required")
		return
	}

	evaluationID := uuid.New().String()
	log.Printf("[evaluate] %s model=%s strict=%t", evaluationID, s.client.Model(), s.cfg.Strict || req.Strict)

	result, err := s.evaluator(req.Strict, req.Balanced).Evaluate(r.Context(), req.Transcript)
	if err != nil {
		log.Printf("[evaluate] %s failed: %v", evaluationID, err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	questions := result.SuggestedQuestions
	if questions == nil {
		questions = []string{}
	}

	s.jsonResponse(w, http.StatusOK, EvaluateResponse{
		EvaluationID:       evaluationID,
		CriteriaScores:     result.CriteriaScores,
		OverallScore:       result.OverallScore,
		CoachingSummary:    result.CoachingSummary,
		SuggestedQuestions: questions,
		Raw:                result.Raw,
	})
}

// handleROI computes the estimator totals. Out-of-range inputs are clamped,
// never rejected.
func (s *Server) handleROI(w http.ResponseWriter, r *http.Request) {
	var in roi.Inputs
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	in = roi.Clamp(in)
	estimate := in.Estimate()
	s.jsonResponse(w, http.StatusOK, ROIResponse{
		Inputs:        in,
		WeeklyHours:   estimate.WeeklyHours,
		WeeklySavings: estimate.WeeklySavings,
	})
}

// handleIndex serves the embedded single-page UI.
func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	page, err := staticFiles.ReadFile("static/index.html")
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "UI page not available")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(page); err != nil {
		log.Printf("Error writing index page: %v", err)
	}
}
