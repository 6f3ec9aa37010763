// Package service exposes the review and prioritization engine over
// NATS request/reply. The server can connect to an external NATS
// deployment or run its own embedded server.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"

	"github.com/archlens/archlens/catalog"
	"github.com/archlens/archlens/config"
	"github.com/archlens/archlens/ingest"
	"github.com/archlens/archlens/priority"
	"github.com/archlens/archlens/review"
	"github.com/archlens/archlens/solution"
)

// Server wires the engine components behind NATS subjects.
type Server struct {
	cfg    *config.Config
	logger *slog.Logger

	catalog     *catalog.Catalog
	assessor    *review.Assessor
	analyzer    *priority.Analyzer
	synthesizer *solution.Synthesizer
	loader      *ingest.Loader

	embedded *natsserver.Server
	conn     *nats.Conn
	subs     []*nats.Subscription
	metrics  *metrics
}

// NewServer creates a server over the given catalog and configuration.
func NewServer(cfg *config.Config, c *catalog.Catalog, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	assessor := review.NewAssessor(c)
	assessor.SetLogger(logger)

	return &Server{
		cfg:         cfg,
		logger:      logger,
		catalog:     c,
		assessor:    assessor,
		analyzer:    priority.NewAnalyzer(c, cfg.Priority.ToPriority()),
		synthesizer: solution.NewSynthesizer(c),
		loader:      ingest.NewLoader(logger),
		metrics:     newMetrics(),
	}
}

// Start connects to NATS (or boots the embedded server), subscribes
// all subjects, and starts the metrics endpoint when configured.
func (s *Server) Start(ctx context.Context) error {
	if err := s.startNATS(); err != nil {
		return fmt.Errorf("start NATS: %w", err)
	}
	if err := s.subscribe(); err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}
	if s.cfg.Metrics.Addr != "" {
		s.metrics.serve(ctx, s.cfg.Metrics.Addr, s.logger)
		s.logger.Info("metrics endpoint started", "addr", s.cfg.Metrics.Addr)
	}

	s.logger.Info("service started",
		"rules", s.catalog.Len(),
		"embedded_nats", s.embedded != nil)
	return nil
}

// ClientURL returns the URL clients should connect to.
func (s *Server) ClientURL() string {
	if s.embedded != nil {
		return s.embedded.ClientURL()
	}
	return s.cfg.NATS.URL
}

// Shutdown drains subscriptions and stops the embedded server.
func (s *Server) Shutdown() {
	for _, sub := range s.subs {
		_ = sub.Drain()
	}
	if s.conn != nil {
		_ = s.conn.Drain()
		s.conn.Close()
	}
	if s.embedded != nil {
		s.embedded.Shutdown()
		s.embedded.WaitForShutdown()
	}
	s.logger.Info("service stopped")
}

func (s *Server) startNATS() error {
	if s.cfg.NATS.URL != "" && !s.cfg.NATS.Embedded {
		conn, err := nats.Connect(s.cfg.NATS.URL)
		if err != nil {
			return fmt.Errorf("connect to NATS: %w", err)
		}
		s.conn = conn
		return nil
	}

	opts := &natsserver.Options{
		Port:   -1, // Random available port
		NoLog:  true,
		NoSigs: true,
	}
	ns, err := natsserver.NewServer(opts)
	if err != nil {
		return fmt.Errorf("create embedded NATS server: %w", err)
	}
	go ns.Start()
	if !ns.ReadyForConnections(5 * time.Second) {
		ns.Shutdown()
		return fmt.Errorf("embedded NATS server failed to start")
	}
	s.embedded = ns

	conn, err := nats.Connect(ns.ClientURL())
	if err != nil {
		ns.Shutdown()
		return fmt.Errorf("connect to embedded NATS: %w", err)
	}
	s.conn = conn
	return nil
}

func (s *Server) subscribe() error {
	handlers := map[string]func(context.Context, []byte) (any, error){
		SubjectReview:     s.handleReview,
		SubjectPriorities: s.handlePriorities,
		SubjectMatrix:     s.handleMatrix,
		SubjectRoadmap:    s.handleRoadmap,
		SubjectSolutions:  s.handleSolutions,
		SubjectRules:      s.handleRules,
		SubjectPillars:    s.handlePillars,
	}

	for subject, handler := range handlers {
		sub, err := s.conn.Subscribe(subject, s.respond(subject, handler))
		if err != nil {
			return fmt.Errorf("subscribe %s: %w", subject, err)
		}
		s.subs = append(s.subs, sub)
	}
	return nil
}

// respond wraps a handler with JSON encoding, error envelopes, and
// metrics.
func (s *Server) respond(subject string, handler func(context.Context, []byte) (any, error)) nats.MsgHandler {
	return func(msg *nats.Msg) {
		start := time.Now()
		result, err := handler(context.Background(), msg.Data)
		s.metrics.observe(subject, start, err)

		if err != nil {
			s.logger.Warn("request failed", "subject", subject, "error", err)
			s.reply(msg, ErrorResponse{Error: err.Error()})
			return
		}
		s.reply(msg, result)
	}
}

func (s *Server) reply(msg *nats.Msg, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("marshal response", "error", err)
		data, _ = json.Marshal(ErrorResponse{Error: "internal encoding error"})
	}
	if err := msg.Respond(data); err != nil {
		s.logger.Warn("respond failed", "error", err)
	}
}

func (s *Server) handleReview(ctx context.Context, data []byte) (any, error) {
	var req ReviewRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}
	pillars, err := parsePillars(req.Pillars)
	if err != nil {
		return nil, err
	}

	docText := ""
	if len(req.DocumentationPaths) > 0 {
		docText = s.loader.Load(ctx, req.DocumentationPaths)
	}

	result := s.assessor.Review(review.Request{
		Context:      req.Context,
		DocumentText: docText,
		Pillars:      pillars,
	})
	return result, nil
}

func (s *Server) handlePriorities(_ context.Context, data []byte) (any, error) {
	var req PriorityRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}
	pillars, err := parsePillars(req.Pillars)
	if err != nil {
		return nil, err
	}
	return s.analyzer.Rank(pillars, req.Count), nil
}

func (s *Server) handleMatrix(_ context.Context, data []byte) (any, error) {
	var req MatrixRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}
	pillars, err := parsePillars(req.Pillars)
	if err != nil {
		return nil, err
	}
	return s.analyzer.BuildMatrix(pillars), nil
}

func (s *Server) handleRoadmap(_ context.Context, data []byte) (any, error) {
	var req RoadmapRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}
	pillars, err := parsePillars(req.Pillars)
	if err != nil {
		return nil, err
	}
	items := s.analyzer.Rank(pillars, req.Count)
	return s.analyzer.BuildRoadmap(items), nil
}

func (s *Server) handleSolutions(_ context.Context, data []byte) (any, error) {
	var req SolutionsRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}

	owner := req.Owner
	if owner == "" {
		owner = s.cfg.Review.Owner
	}

	if req.RuleID != "" {
		sol, err := s.synthesizer.ForRule(req.RuleID, owner)
		if err != nil {
			return nil, err
		}
		return []solution.Smart{sol}, nil
	}

	pillars, err := parsePillars(req.Pillars)
	if err != nil {
		return nil, err
	}
	solutions := s.synthesizer.ForPillars(pillars, owner)
	if req.QuickWins {
		solutions = solution.QuickWins(solutions)
	}
	return solutions, nil
}

func (s *Server) handleRules(_ context.Context, data []byte) (any, error) {
	var req RulesRequest
	if len(data) > 0 {
		if err := json.Unmarshal(data, &req); err != nil {
			return nil, fmt.Errorf("decode request: %w", err)
		}
	}
	if req.Pillar == "" {
		return s.catalog.Rules(), nil
	}
	p, err := catalog.ParsePillar(req.Pillar)
	if err != nil {
		return nil, err
	}
	return s.catalog.ByPillar(p), nil
}

func (s *Server) handlePillars(_ context.Context, _ []byte) (any, error) {
	infos := make([]PillarInfo, 0, len(catalog.Pillars))
	for _, p := range catalog.Pillars {
		infos = append(infos, PillarInfo{
			ID:        string(p),
			Name:      p.DisplayName(),
			RuleCount: len(s.catalog.ByPillar(p)),
		})
	}
	return infos, nil
}
