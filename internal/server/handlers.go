// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pdiddy/idea-engine/internal/generator"
	"github.com/pdiddy/idea-engine/internal/metrics"
	"github.com/pdiddy/idea-engine/internal/render"
	"github.com/pdiddy/idea-engine/pkg/types"
)

// ideasQuery holds the query parameters shared by the API and the dashboard.
type ideasQuery struct {
	Count       int    `form:"count"`
	Variant     string `form:"variant"`
	Field       string `form:"field"`
	Value       string `form:"value"`
	Feasibility string `form:"feasibility"`
	Seed        string `form:"seed"`
}

// batchRequest is an ideasQuery resolved against defaults.
type batchRequest struct {
	Count   int
	Variant types.Variant
	Filter  generator.Filter
	Seed    uint64
}

type apiError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type errorEnvelope struct {
	Error apiError `json:"error"`
}

// invalidRequestError marks problems with the caller's parameters.
type invalidRequestError struct{ err error }

func (e invalidRequestError) Error() string { return e.err.Error() }
func (e invalidRequestError) Unwrap() error { return e.err }

func (s *Server) resolve(q ideasQuery) (batchRequest, error) {
	req := batchRequest{Count: q.Count}
	if req.Count == 0 {
		req.Count = s.cfg.Generator.Count
	}
	if req.Count == 0 {
		req.Count = types.DefaultCount
	}

	sel := generator.Selection{
		Variant:     q.Variant,
		Feasibility: q.Feasibility,
		Field:       q.Field,
		Value:       q.Value,
	}
	variant, filter, err := sel.Resolve(s.cfg.Generator.Variant)
	if err != nil {
		return req, err
	}
	req.Variant = variant
	req.Filter = filter

	if q.Seed != "" {
		seed, err := strconv.ParseUint(q.Seed, 10, 64)
		if err != nil {
			return req, invalidRequestError{fmt.Errorf("invalid seed %q", q.Seed)}
		}
		req.Seed = seed
	}
	return req, nil
}

// generate runs one batch with a generator private to this request.
func (s *Server) generate(c *gin.Context, req batchRequest) ([]types.Idea, error) {
	g, err := generator.New(s.catalog, generator.NewRand(req.Seed), generator.Options{
		Variant:     req.Variant,
		MaxAttempts: s.cfg.Generator.MaxAttempts,
	})
	if err != nil {
		return nil, err
	}
	ideas, err := g.GenerateMany(req.Count, req.Filter)
	if err != nil {
		return nil, err
	}
	s.metrics.RecordIdeas(string(req.Variant), len(ideas))
	s.log.ForRequest(c.GetString(requestIDKey)).Debug("generated ideas",
		"variant", req.Variant,
		"count", len(ideas),
		"filter", req.Filter.String(),
	)
	return ideas, nil
}

// classify maps an error to an HTTP status and an error code. The code is
// also the failure reason recorded in metrics.
func classify(err error) (int, string) {
	var invalid invalidRequestError
	switch {
	case errors.As(err, &invalid), errors.Is(err, generator.ErrInvalid), errors.Is(err, generator.ErrCount):
		return http.StatusBadRequest, metrics.ReasonInvalid
	case errors.Is(err, generator.ErrUnsatisfiable):
		return http.StatusUnprocessableEntity, metrics.ReasonUnsatisfiable
	case errors.Is(err, generator.ErrNoMatch):
		return http.StatusUnprocessableEntity, metrics.ReasonNoMatch
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func (s *Server) fail(c *gin.Context, err error) int {
	status, code := classify(err)
	s.metrics.RecordFailure(code)
	s.log.ForRequest(c.GetString(requestIDKey)).Warn("generation failed",
		"code", code,
		"error", err.Error(),
	)
	return status
}

func (s *Server) handleIdeas(c *gin.Context) {
	var q ideasQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		err = invalidRequestError{fmt.Errorf("invalid query: %w", err)}
		status := s.fail(c, err)
		c.JSON(status, errorEnvelope{Error: apiError{Message: err.Error(), Code: metrics.ReasonInvalid}})
		return
	}

	req, err := s.resolve(q)
	if err == nil {
		var ideas []types.Idea
		if ideas, err = s.generate(c, req); err == nil {
			c.JSON(http.StatusOK, render.NewBatch(ideas))
			return
		}
	}

	status := s.fail(c, err)
	_, code := classify(err)
	c.JSON(status, errorEnvelope{Error: apiError{Message: err.Error(), Code: code}})
}

func (s *Server) handleCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog)
}

// dashboardData feeds the dashboard template.
type dashboardData struct {
	Variants    []types.Variant
	Feasibility []string
	MaxCount    int
	Query       ideasQuery
	Submitted   bool
	Ideas       []types.Idea
	Error       string
}

func (s *Server) handleDashboard(c *gin.Context) {
	data := dashboardData{
		Variants:    types.Variants,
		Feasibility: s.catalog.Feasibility,
		MaxCount:    types.MaxCount,
		Query:       ideasQuery{Count: types.DefaultCount},
	}

	_, data.Submitted = c.GetQuery("count")
	if !data.Submitted {
		c.HTML(http.StatusOK, "dashboard", data)
		return
	}

	status := http.StatusOK
	var q ideasQuery
	err := c.ShouldBindQuery(&q)
	if err != nil {
		err = invalidRequestError{fmt.Errorf("invalid query: %w", err)}
	} else {
		data.Query = q
		var req batchRequest
		if req, err = s.resolve(q); err == nil {
			data.Ideas, err = s.generate(c, req)
		}
	}
	if err != nil {
		status = s.fail(c, err)
		data.Error = err.Error()
	}
	c.HTML(status, "dashboard", data)
}
