package controllers

import "github.com/lintang-b-s/Pyramidx/pkg/engine"

type solveRequest struct {
	Triangle string `json:"triangle" validate:"required"`
	Strategy string `json:"strategy" validate:"omitempty,oneof=bottomup memoized"`
}

type solveResponse struct {
	Feasible    bool    `json:"feasible"`
	MaxSum      *int64  `json:"max_sum,omitempty"`
	Path        []int32 `json:"path,omitempty"`
	Message     string  `json:"message,omitempty"`
	Rows        int     `json:"rows"`
	Evaluations int     `json:"evaluations"`
	Strategy    string  `json:"strategy"`
	ElapsedMs   float64 `json:"elapsed_ms"`
	Cached      bool    `json:"cached"`
}

func NewSolveResponse(res *engine.Result) solveResponse {
	resp := solveResponse{
		Feasible:    res.Feasible,
		Rows:        res.Rows,
		Evaluations: res.Evaluations,
		Strategy:    res.Strategy,
		ElapsedMs:   float64(res.Elapsed.Microseconds()) / 1000.0,
		Cached:      res.Cached,
	}
	if !res.Feasible {
		resp.Message = "It's impossible to reach a goal with these numbers!"
		return resp
	}
	sum := res.MaxSum
	resp.MaxSum = &sum
	resp.Path = res.Path
	return resp
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
