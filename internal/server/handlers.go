package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/jonathan/buildwise/internal/export"
	"github.com/jonathan/buildwise/internal/pipeline"
	"github.com/jonathan/buildwise/internal/schemas"
	"github.com/jonathan/buildwise/internal/types"
)

// decodeEstimationRequest reads, shape-checks and rule-checks a request body.
// Rates missing from the body come from the server configuration.
func (s *Server) decodeEstimationRequest(w http.ResponseWriter, r *http.Request) (types.EstimationRequest, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return types.EstimationRequest{}, &ErrMalformedBody{Cause: err}
	}
	if !json.Valid(body) {
		return types.EstimationRequest{}, &ErrMalformedBody{Cause: errors.New("body is not valid JSON")}
	}

	if err := schemas.ValidateEstimationRequest(body); err != nil {
		var shapeErr *schemas.ValidationError
		if errors.As(err, &shapeErr) {
			return types.EstimationRequest{}, &ErrValidation{Details: shapeErr.Errors}
		}
		return types.EstimationRequest{}, &ErrMalformedBody{Cause: err}
	}

	body, err = schemas.NormalizeIntegers(body)
	if err != nil {
		return types.EstimationRequest{}, &ErrMalformedBody{Cause: err}
	}

	req := types.NewEstimationRequest(s.cfg.Wages, s.cfg.Materials)
	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(&req); err != nil {
		return types.EstimationRequest{}, &ErrMalformedBody{Cause: err}
	}

	if err := req.Validate(); err != nil {
		return types.EstimationRequest{}, validationFromRequest(err)
	}
	return req, nil
}

// writeRequestError logs and writes the JSON error response for a rejected request.
func (s *Server) writeRequestError(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	log.Printf("[estimate] rejected request id=%s status=%d: %v", requestIDFrom(r.Context()), status, err)
	s.jsonResponse(w, status, errorFrom(err))
}

// handleEstimate produces a complete estimate in one JSON response
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeEstimationRequest(w, r)
	if err != nil {
		s.writeRequestError(w, r, err)
		return
	}

	resp, err := pipeline.Run(r.Context(), req, pipeline.RunOptions{})
	if err != nil {
		log.Printf("[estimate] pipeline failed id=%s: %v", requestIDFrom(r.Context()), err)
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleEstimateStream runs the pipeline and streams each stage via SSE,
// followed by the full result and a completion event.
func (s *Server) handleEstimateStream(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeEstimationRequest(w, r)
	if err != nil {
		s.writeRequestError(w, r, err)
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	estimateID := requestIDFrom(r.Context())
	log.Printf("[estimate] streaming estimate id=%s", estimateID)

	opts := pipeline.RunOptions{
		IncludeContent: true,
		OnProgress: func(event pipeline.ProgressEvent) {
			if err := sse.WriteEvent(EventStage, event); err != nil {
				log.Printf("Error writing SSE event: %v", err)
			}
		},
	}

	resp, err := pipeline.Run(r.Context(), req, opts)
	if err != nil {
		log.Printf("[estimate] streaming estimate failed id=%s: %v", estimateID, err)
		sse.WriteError(errorBody{Error: err.Error()})
		return
	}

	if err := sse.WriteEvent(EventResult, resp); err != nil {
		log.Printf("Error writing SSE result: %v", err)
		return
	}
	sse.WriteComplete(estimateID, "completed")
}

// handleEstimateXLSX returns the estimate as an Excel workbook attachment
func (s *Server) handleEstimateXLSX(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeEstimationRequest(w, r)
	if err != nil {
		s.writeRequestError(w, r, err)
		return
	}

	resp, err := pipeline.Run(r.Context(), req, pipeline.RunOptions{})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, resp); err != nil {
		log.Printf("[estimate] workbook export failed id=%s: %v", requestIDFrom(r.Context()), err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to build workbook")
		return
	}

	w.Header().Set("Content-Type", export.XLSXContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.FileName(resp.Project, "xlsx")))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("Error writing workbook: %v", err)
	}
}
