// Package http is the command-dispatch collaborator spec.md §6.4
// describes: it translates JSON (and, for streamed counting, websocket)
// requests into internal/core.Solver calls and serializes the result
// shapes the core guarantees. This mirrors the teacher's
// internal/transport/http/routes.go (one RegisterRoutes entry point, one
// handler per route, request structs bound with ShouldBindJSON), but the
// payload is now size/givens/constraints instead of a fixed 81-character
// puzzle plus JWT session token - this engine has no session or auth
// concept to carry over.
package http

import (
	"encoding/binary"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"variantsudoku/internal/core"
	"variantsudoku/internal/givens"
	"variantsudoku/internal/variant"
	"variantsudoku/pkg/config"
	"variantsudoku/pkg/constants"
)

var cfg *config.Config

// RegisterRoutes wires the health check and the five solver endpoints
// (solve, count, true-candidates, logical-solve, step) into r, plus a
// websocket upgrade for streamed counting.
func RegisterRoutes(r *gin.Engine, c *config.Config) {
	cfg = c

	r.GET("/health", healthHandler)

	api := r.Group("/api")
	{
		api.POST("/solve", solveHandler)
		api.POST("/count", countHandler)
		api.POST("/true-candidates", trueCandidatesHandler)
		api.POST("/logical-solve", logicalSolveHandler)
		api.POST("/step", stepHandler)
		api.GET("/count/stream", countStreamHandler)
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": constants.APIVersion,
	})
}

// boardRequest is the shared shape of every solver endpoint's body: a
// board size, a givens string in the §6.2 encoding, optional region
// labels, and the names of registered example constraints to apply.
type boardRequest struct {
	Size        int      `json:"size" binding:"required"`
	Givens      string   `json:"givens" binding:"required"`
	Regions     []int    `json:"regions"`
	Constraints []string `json:"constraints"`
}

// namedConstraints resolves constraint names against the small example
// catalog in internal/variant. Unknown names are rejected rather than
// silently ignored.
func namedConstraints(names []string) ([]core.Constraint, error) {
	var out []core.Constraint
	for _, name := range names {
		switch name {
		case "anti-king":
			out = append(out, variant.AntiKing{})
		case "anti-knight":
			out = append(out, variant.AntiKnight{})
		case "no-consecutive-ratio":
			out = append(out, variant.NoConsecutiveRatio{})
		default:
			return nil, errUnknownConstraint(name)
		}
	}
	return out, nil
}

func errUnknownConstraint(name string) error {
	return &unknownConstraintError{name: name}
}

type unknownConstraintError struct{ name string }

func (e *unknownConstraintError) Error() string {
	return "unknown constraint: " + e.name
}

// buildSolver validates and builds a Solver from a boardRequest, writing
// a 400 response and returning ok=false on any structural failure.
func buildSolver(c *gin.Context, req boardRequest) (*core.Solver, bool) {
	cells, err := givens.Decode(req.Size, req.Givens)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	cons, err := namedConstraints(req.Constraints)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	b := core.NewBuilder(req.Size).WithGivens(cells)
	if req.Regions != nil {
		b = b.WithRegions(req.Regions)
	}
	for _, con := range cons {
		b = b.WithConstraint(con)
	}

	solver, err := b.Build()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return solver, true
}

// timeoutCancel returns a Cancel that trips on its own once cfg's
// configured solve timeout elapses, so a pathological search can't hold
// an HTTP worker (or a websocket connection) open indefinitely. The core
// never starts its own timers by design (§5); this is the caller doing
// exactly what that design note says the caller must.
func timeoutCancel() core.Cancel {
	cancel := core.NewCancel()
	timeout := constants.DefaultSolveTimeout
	if cfg != nil && cfg.MaxSolveTimeout > 0 {
		timeout = cfg.MaxSolveTimeout
	}
	time.AfterFunc(timeout, cancel.CancelNow)
	return cancel
}

func boardToGivensString(b *core.Board, size int) string {
	values := make([]int, len(b.Masks))
	for i, m := range b.Masks {
		v, _ := m.Only()
		values[i] = v
	}
	s, err := givens.Encode(size, values)
	if err != nil {
		log.Printf("ERROR [encode]: %v", err)
		return ""
	}
	return s
}

func solveHandler(c *gin.Context) {
	var req boardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	solver, ok := buildSolver(c, req)
	if !ok {
		return
	}

	board, found := solver.FindFirstSolution(timeoutCancel())
	if !found {
		c.JSON(http.StatusOK, gin.H{"result": constants.ResultNone})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"result": constants.ResultSolved,
		"board":  boardToGivensString(board, req.Size),
	})
}

// stepStatusResult maps a core.StepStatus onto the §6.4 result-kind strings.
func stepStatusResult(status core.StepStatus) string {
	switch status {
	case core.StatusNone:
		return constants.ResultNone
	case core.StatusChanged:
		return constants.ResultChanged
	case core.StatusSolved:
		return constants.ResultSolved
	default:
		return constants.ResultInvalid
	}
}

// logicalSolveHandler runs RunLogicalSolve to a fixed point, returning the
// aggregated narration log alongside the board's final givens encoding.
func logicalSolveHandler(c *gin.Context) {
	var req boardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	solver, ok := buildSolver(c, req)
	if !ok {
		return
	}

	status, narration := solver.RunLogicalSolve(timeoutCancel())
	c.JSON(http.StatusOK, gin.H{
		"result": stepStatusResult(status),
		"board":  boardToGivensString(solver.Board, req.Size),
		"steps":  narration.Render(),
	})
}

// stepHandler runs a single logical step and reports its narration, for
// callers that want to step through a solve one deduction at a time rather
// than run it to completion.
func stepHandler(c *gin.Context) {
	var req boardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	solver, ok := buildSolver(c, req)
	if !ok {
		return
	}

	res := solver.RunSingleLogicalStep(true, timeoutCancel())
	resp := gin.H{
		"result": stepStatusResult(res.Status),
		"board":  boardToGivensString(solver.Board, req.Size),
	}
	if res.Description != nil {
		resp["description"] = res.Description.Render()
	}
	c.JSON(http.StatusOK, resp)
}

type countRequest struct {
	boardRequest
	Cap int `json:"cap"`
}

func countHandler(c *gin.Context) {
	var req countRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Cap <= 0 {
		req.Cap = constants.DefaultSolutionCountCap
	}
	solver, ok := buildSolver(c, req.boardRequest)
	if !ok {
		return
	}

	res := solver.FindSolutionCount(req.Cap, nil, timeoutCancel())
	switch res.Status {
	case core.CountNone:
		c.JSON(http.StatusOK, gin.H{"result": constants.ResultNone})
	case core.CountExact:
		c.JSON(http.StatusOK, gin.H{"result": constants.ResultExact, "count": res.Count})
	default:
		c.JSON(http.StatusOK, gin.H{"result": constants.ResultAtLeast, "count": res.Count})
	}
}

type trueCandidatesRequest struct {
	boardRequest
	WithCounts bool `json:"with_counts"`
	Cap        int  `json:"cap"`
}

func trueCandidatesHandler(c *gin.Context) {
	var req trueCandidatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	solver, ok := buildSolver(c, req.boardRequest)
	if !ok {
		return
	}

	r := core.NewRand(randSeedFromUUID())
	if req.WithCounts {
		cap := req.Cap
		if cap <= 0 {
			cap = constants.MaxTrueCandidateCap
		}
		result, counts, found := solver.FindTrueCandidatesWithCount(cap, r, timeoutCancel())
		if !found {
			c.JSON(http.StatusOK, gin.H{"result": constants.ResultNone})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"result":     constants.ResultCandidates,
			"candidates": candidateSets(result),
			"counts":     counts,
		})
		return
	}

	result, found := solver.FindTrueCandidates(r, timeoutCancel())
	if !found {
		c.JSON(http.StatusOK, gin.H{"result": constants.ResultNone})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"result":     constants.ResultCandidates,
		"candidates": candidateSets(result),
	})
}

// randSeedFromUUID derives a search seed from a fresh random uuid rather
// than a process-global RNG, keeping with the core's explicit-Rand design.
func randSeedFromUUID() int64 {
	id := uuid.New()
	return int64(binary.BigEndian.Uint64(id[:8]))
}

func candidateSets(result *core.TrueCandidatesResult) [][]int {
	sets := make([][]int, len(result.Masks))
	for i, m := range result.Masks {
		sets[i] = m.Values()
	}
	return sets
}

// upgrader mirrors the default gorilla/websocket upgrade configuration;
// this demo server accepts connections from any origin.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// countStreamHandler upgrades to a websocket and expects one countRequest
// as its first text message. It streams progress pings (tagged with a
// uuid so a client juggling several requests can tell them apart) and
// finally the same result shape countHandler would return.
func countStreamHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ERROR [countStream]: upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	var req countRequest
	if err := conn.ReadJSON(&req); err != nil {
		conn.WriteJSON(gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	if req.Cap <= 0 {
		req.Cap = constants.DefaultSolutionCountCap
	}

	cells, err := givens.Decode(req.Size, req.Givens)
	if err != nil {
		conn.WriteJSON(gin.H{"error": err.Error()})
		return
	}
	cons, err := namedConstraints(req.Constraints)
	if err != nil {
		conn.WriteJSON(gin.H{"error": err.Error()})
		return
	}
	b := core.NewBuilder(req.Size).WithGivens(cells)
	if req.Regions != nil {
		b = b.WithRegions(req.Regions)
	}
	for _, con := range cons {
		b = b.WithConstraint(con)
	}
	solver, err := b.Build()
	if err != nil {
		conn.WriteJSON(gin.H{"error": err.Error()})
		return
	}

	requestID := uuid.NewString()
	cancel := core.NewCancel()
	go func() {
		// A closed connection cancels the in-flight search promptly
		// rather than leaving it to burn CPU after nobody is listening.
		for {
			if _, _, err := conn.NextReader(); err != nil {
				cancel.CancelNow()
				return
			}
		}
	}()

	res := solver.FindSolutionCount(req.Cap, &core.Receiver{
		OnProgress: func(nodes uint64) {
			conn.WriteJSON(gin.H{
				"request_id": requestID,
				"progress":   nodes,
			})
		},
	}, cancel)

	switch res.Status {
	case core.CountNone:
		conn.WriteJSON(gin.H{"request_id": requestID, "result": constants.ResultNone})
	case core.CountExact:
		conn.WriteJSON(gin.H{"request_id": requestID, "result": constants.ResultExact, "count": res.Count})
	default:
		conn.WriteJSON(gin.H{"request_id": requestID, "result": constants.ResultAtLeast, "count": res.Count})
	}
}
