package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/jonathan/buildwise/internal/pipeline/steps"
	"github.com/jonathan/buildwise/internal/schemas"
)

// stageInfo describes one pipeline stage for API clients
type stageInfo struct {
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Dependencies []string `json:"dependencies"`
}

// stagesResponse is the body of GET /api/v1/stages
type stagesResponse struct {
	Stages    []stageInfo `json:"stages"`
	Completed []string    `json:"completed"`
	Available []string    `json:"available"`
	Blocked   []string    `json:"blocked"`
}

// handleStages lists the estimation stages with their dependencies. An optional
// comma-separated "completed" query parameter reports which stages could run
// next and which are still blocked, matching the stage events a stream emits.
func (s *Server) handleStages(w http.ResponseWriter, r *http.Request) {
	completed := make(map[string]bool)
	completedList := []string{}
	if raw := r.URL.Query().Get("completed"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if _, ok := steps.StepRegistry[name]; !ok {
				s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("unknown stage: %s", name))
				return
			}
			if !completed[name] {
				completed[name] = true
				completedList = append(completedList, name)
			}
		}
	}

	resp := stagesResponse{
		Stages:    make([]stageInfo, 0, len(steps.Stages)),
		Completed: completedList,
		Available: nonNil(steps.GetAvailableSteps(completed)),
		Blocked:   nonNil(steps.GetBlockedSteps(completed)),
	}
	for _, name := range steps.Stages {
		def := steps.StepRegistry[name]
		resp.Stages = append(resp.Stages, stageInfo{
			Name:         def.Name,
			Category:     def.Category,
			Dependencies: def.Dependencies,
		})
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleSchema serves the JSON Schema that estimation requests are checked against
func (s *Server) handleSchema(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/schema+json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(schemas.EstimationRequestSchema()))
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
