package api

import (
	"context"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/crewforge/crewforge/ent"
	"github.com/crewforge/crewforge/pkg/database"
	"github.com/crewforge/crewforge/pkg/events"
	"github.com/crewforge/crewforge/pkg/models"
	"github.com/crewforge/crewforge/pkg/scope"
	"github.com/crewforge/crewforge/pkg/services"
	"github.com/crewforge/crewforge/pkg/version"
)

// ProcessMessage handles POST /orchestrator/process: the intake endpoint.
// A vague request returns clarification questions instead of a swarm; a
// workable one is scoped, stack-inferred, and enqueued for the worker pool.
func (s *Server) ProcessMessage(c *gin.Context) {
	var req ProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	ctx := c.Request.Context()

	if err := scope.Precheck(req.Message); err != nil {
		if ce, ok := scope.NeedsClarification(err); ok {
			c.JSON(http.StatusOK, ProcessResponse{
				Status:                 "needs_clarification",
				ClarificationQuestions: ce.Questions,
			})
			return
		}
		respondServiceError(c, err)
		return
	}

	sc, err := s.extractor.Extract(ctx, req.Message)
	if err != nil {
		if ce, ok := scope.NeedsClarification(err); ok {
			c.JSON(http.StatusOK, ProcessResponse{
				Status:                 "needs_clarification",
				ClarificationQuestions: ce.Questions,
			})
			return
		}
		respondServiceError(c, err)
		return
	}

	// Stack inference degrades internally (template miss falls back to the
	// conservative default), so a hard error here is logged, not fatal.
	inference, err := s.inferencer.Infer(ctx, sc)
	if err != nil {
		s.logger.Warn("stack inference failed, continuing without", "error", err)
	} else {
		sc.StackInference = &inference
	}

	sw, err := s.swarms.CreateSwarm(ctx, services.CreateSwarmInput{
		Name: sc.ProjectName,
		Metadata: map[string]interface{}{
			"scope":   sc,
			"user_id": req.UserID,
		},
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	s.logger.Info("swarm accepted", "swarm_id", sw.ID, "project", sc.ProjectName)
	c.JSON(http.StatusAccepted, ProcessResponse{
		Status:     "accepted",
		SwarmID:    sw.ID,
		PlannerURL: "/api/planner/" + sw.ID,
	})
}

// GetTaskTree handles GET /api/planner/:swarm_id. Tasks are returned as a
// tree derived from their hierarchy keys: "2.3" nests under "2".
func (s *Server) GetTaskTree(c *gin.Context) {
	ctx := c.Request.Context()
	swarmID := c.Param("swarm_id")

	if _, err := s.swarms.GetSwarm(ctx, swarmID); err != nil {
		respondServiceError(c, err)
		return
	}
	tasks, err := s.tasks.ListTasks(ctx, swarmID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, TaskTreeResponse{
		SwarmID: swarmID,
		Tasks:   buildTaskTree(tasks),
	})
}

// buildTaskTree nests tasks by hierarchy key. A task's parent is its key
// minus the last dotted segment; tasks without a present parent are roots.
func buildTaskTree(tasks []*ent.Task) []*TaskNode {
	nodes := make(map[string]*TaskNode, len(tasks))
	for _, t := range tasks {
		nodes[t.TaskKey] = &TaskNode{
			ID:       t.TaskKey,
			Title:    t.Title,
			Status:   string(t.Status),
			Priority: t.Priority,
			Subtasks: []*TaskNode{},
		}
	}

	roots := make([]*TaskNode, 0, len(tasks))
	for _, t := range tasks {
		node := nodes[t.TaskKey]
		if idx := strings.LastIndex(t.TaskKey, "."); idx > 0 {
			if parent, ok := nodes[t.TaskKey[:idx]]; ok {
				parent.Subtasks = append(parent.Subtasks, node)
				continue
			}
		}
		roots = append(roots, node)
	}

	var sortNodes func([]*TaskNode)
	sortNodes = func(ns []*TaskNode) {
		sort.Slice(ns, func(i, j int) bool { return keyLess(ns[i].ID, ns[j].ID) })
		for _, n := range ns {
			sortNodes(n.Subtasks)
		}
	}
	sortNodes(roots)
	return roots
}

// keyLess orders hierarchy keys segment-wise numerically: "2.10" after "2.9".
func keyLess(a, b string) bool {
	as, bs := strings.Split(a, "."), strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		ai, aerr := strconv.Atoi(as[i])
		bi, berr := strconv.Atoi(bs[i])
		if aerr != nil || berr != nil {
			if as[i] != bs[i] {
				return as[i] < bs[i]
			}
			continue
		}
		if ai != bi {
			return ai < bi
		}
	}
	return len(as) < len(bs)
}

// GetProgress handles GET /api/planner/:swarm_id/progress.
func (s *Server) GetProgress(c *gin.Context) {
	ctx := c.Request.Context()
	swarmID := c.Param("swarm_id")

	if _, err := s.swarms.GetSwarm(ctx, swarmID); err != nil {
		respondServiceError(c, err)
		return
	}
	progress, err := s.sched.CalculateProgress(ctx, swarmID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	progress.ConflictStats = s.conflictStats(c, swarmID)
	c.JSON(http.StatusOK, progress)
}

// conflictStats assembles resolver and audit-log counters. Count failures
// are logged and reported as zero rather than failing the progress view.
func (s *Server) conflictStats(c *gin.Context, swarmID string) *models.ConflictStats {
	ctx := c.Request.Context()
	stats := &models.ConflictStats{
		ActiveLocks: len(s.resolver.HeldLocks(swarmID)),
	}
	for kind, dst := range map[string]*int{
		events.KindConflictDetected: &stats.ConflictsDetected,
		events.KindConflictResolved: &stats.ConflictsResolved,
		events.KindLockBroken:       &stats.LocksBroken,
	} {
		n, err := s.events.CountByKind(ctx, swarmID, kind)
		if err != nil {
			s.logger.Warn("failed to count events", "swarm_id", swarmID, "kind", kind, "error", err)
			continue
		}
		*dst = n
	}
	return stats
}

// ListEscalations handles GET /api/planner/:swarm_id/escalations.
func (s *Server) ListEscalations(c *gin.Context) {
	ctx := c.Request.Context()
	swarmID := c.Param("swarm_id")

	if _, err := s.swarms.GetSwarm(ctx, swarmID); err != nil {
		respondServiceError(c, err)
		return
	}
	escs, err := s.escalations.ListOpen(ctx, swarmID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	views := make([]EscalationView, 0, len(escs))
	for _, esc := range escs {
		view := EscalationView{
			ID:                 esc.ID,
			Kind:               string(esc.Kind),
			Severity:           esc.Severity,
			Description:        esc.Description,
			SuggestedActions:   esc.SuggestedActions,
			CanContinueWithout: esc.CanContinueWithout,
			CreatedAt:          esc.CreatedAt,
		}
		if esc.TaskID != nil {
			view.TaskID = *esc.TaskID
		}
		views = append(views, view)
	}
	c.JSON(http.StatusOK, EscalationsResponse{Escalations: views})
}

// ResolveEscalation handles POST /api/planner/:swarm_id/escalations/:escalation_id/resolve.
//
// Partial input (complete=false) merges into the resolution payload and
// leaves the escalation pending. A complete resolution requeues the blocked
// task; the paused workflow resumes from its checkpoint on the next claim.
func (s *Server) ResolveEscalation(c *gin.Context) {
	ctx := c.Request.Context()
	swarmID := c.Param("swarm_id")
	escalationID := c.Param("escalation_id")

	var req ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	complete := req.Complete == nil || *req.Complete

	esc, err := s.escalations.Get(ctx, escalationID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if esc.SwarmID != swarmID {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "resource not found"})
		return
	}

	esc, err = s.escalations.Resolve(ctx, escalationID, req.Action, req.Value, complete)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	status := "pending"
	if complete {
		status = "resolved"
		if esc.TaskID != nil {
			if err := s.tasks.RequeueForRetry(ctx, *esc.TaskID); err != nil {
				s.logger.Warn("failed to requeue task after resolution",
					"task_id", *esc.TaskID, "error", err)
			}
		}
		s.logger.Info("escalation resolved",
			"swarm_id", swarmID, "escalation_id", escalationID, "action", req.Action)
	}
	c.JSON(http.StatusOK, ResolveResponse{Status: status})
}

// ListSwarms handles GET /swarms.
func (s *Server) ListSwarms(c *gin.Context) {
	swarms, err := s.swarms.ListSwarms(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	views := make([]SwarmView, 0, len(swarms))
	for _, sw := range swarms {
		view := SwarmView{
			ID:          sw.ID,
			Name:        sw.Name,
			Status:      string(sw.Status),
			NumAgents:   sw.NumAgents,
			Complexity:  sw.Complexity,
			CreatedAt:   sw.CreatedAt,
			CompletedAt: sw.CompletedAt,
		}
		if sw.ErrorMessage != nil {
			view.Error = *sw.ErrorMessage
		}
		views = append(views, view)
	}
	c.JSON(http.StatusOK, SwarmsResponse{Swarms: views})
}

// CancelSwarm handles POST /swarms/:swarm_id/cancel. A swarm running on
// this pod is cancelled through its context; otherwise the engine applies
// the terminal transition directly (idle or paused swarms).
func (s *Server) CancelSwarm(c *gin.Context) {
	ctx := c.Request.Context()
	swarmID := c.Param("swarm_id")

	if _, err := s.swarms.GetSwarm(ctx, swarmID); err != nil {
		respondServiceError(c, err)
		return
	}

	if s.pool != nil && s.pool.CancelSwarm(swarmID) {
		c.JSON(http.StatusOK, CancelResponse{
			SwarmID: swarmID,
			Message: "cancellation signalled to running workflow",
		})
		return
	}

	if err := s.engine.Cancel(ctx, swarmID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, CancelResponse{
		SwarmID: swarmID,
		Message: "swarm cancelled",
	})
}

// Health handles GET /healthz.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	resp := HealthResponse{Version: version.Full()}

	dbHealth, dbErr := database.Health(ctx, s.db.DB())
	resp.Database = dbHealth
	if s.pool != nil {
		resp.WorkerPool = s.pool.Health()
	}

	resp.OK = dbErr == nil && (resp.WorkerPool == nil || resp.WorkerPool.IsHealthy)
	status := http.StatusOK
	if !resp.OK {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, resp)
}
