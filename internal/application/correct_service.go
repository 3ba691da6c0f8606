package application

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/abdidvp/ftf/internal/catalog"
	"github.com/abdidvp/ftf/internal/domain"
	"github.com/abdidvp/ftf/internal/domain/engine"
	"github.com/abdidvp/ftf/internal/domain/fuzzy"
	"github.com/abdidvp/ftf/internal/domain/rules"
)

// ErrNoCorrections is returned by Best when no rule proposes anything.
var ErrNoCorrections = errors.New("no corrections found")

// CorrectRequest describes one failed command to correct.
type CorrectRequest struct {
	Command domain.Command
	// Config is used as is when set; otherwise it is loaded from ConfigPath.
	Config     *domain.Config
	ConfigPath string
	// Dir is the directory the command ran in, used for git context.
	Dir string
	// Limit caps the number of corrections. Zero defers to the config.
	Limit int
}

// CorrectService orchestrates a correction:
// load config → gather context → build registry → evaluate → limit.
type CorrectService struct {
	configLoader domain.ConfigLoader
	gitInfo      domain.GitInfo
	logger       *zap.Logger
}

// NewCorrectService wires the service. gitInfo and logger may be nil.
func NewCorrectService(configLoader domain.ConfigLoader, gitInfo domain.GitInfo, logger *zap.Logger) *CorrectService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CorrectService{
		configLoader: configLoader,
		gitInfo:      gitInfo,
		logger:       logger,
	}
}

// LoadConfig reads the configuration at path.
func (s *CorrectService) LoadConfig(path string) (domain.Config, error) {
	if s.configLoader == nil {
		return domain.DefaultConfig(), nil
	}
	cfg, err := s.configLoader.Load(path)
	if err != nil {
		return domain.Config{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// Registry builds the catalog registry for cfg. Rules disabled by the config,
// or disabled by default and not enabled by the config, are left out.
// Priority overrides are applied.
func (s *CorrectService) Registry(cfg domain.Config, env catalog.Env) *engine.Registry {
	reg := engine.NewRegistry()
	for _, r := range catalog.All(env) {
		if !cfg.RuleEnabled(r) {
			continue
		}
		if p, ok := cfg.RulePriority(r.Name()); ok {
			r = rules.WithPriority(r, p)
		}
		reg.Add(r)
	}
	return reg
}

// Correct returns the ranked corrections for req.
func (s *CorrectService) Correct(ctx context.Context, req CorrectRequest) ([]domain.CorrectedCommand, error) {
	cfg, err := s.config(req)
	if err != nil {
		return nil, err
	}

	reg := s.Registry(cfg, s.env(req.Dir))
	corrector := reg.Corrector(
		engine.WithWorkers(cfg.Global.Workers),
		engine.WithLogger(s.logger),
	)
	all, err := corrector.Corrections(ctx, req.Command)
	if err != nil {
		return nil, fmt.Errorf("evaluating rules: %w", err)
	}

	limit := cfg.Global.Limit
	if req.Limit > 0 {
		limit = req.Limit
	}
	return fuzzy.SelectCorrections(all, limit), nil
}

// Best returns the top correction or ErrNoCorrections.
func (s *CorrectService) Best(ctx context.Context, req CorrectRequest) (domain.CorrectedCommand, error) {
	all, err := s.Correct(ctx, req)
	if err != nil {
		return domain.CorrectedCommand{}, err
	}
	if len(all) == 0 {
		return domain.CorrectedCommand{}, ErrNoCorrections
	}
	return all[0], nil
}

// ListRules describes every catalog rule as configured by cfg.
func (s *CorrectService) ListRules(cfg domain.Config) []domain.RuleInfo {
	all := catalog.All(catalog.Env{})
	infos := make([]domain.RuleInfo, 0, len(all))
	for _, r := range all {
		if p, ok := cfg.RulePriority(r.Name()); ok {
			r = rules.WithPriority(r, p)
		}
		info := domain.DescribeRule(r)
		info.Enabled = cfg.RuleEnabled(r)
		infos = append(infos, info)
	}
	return infos
}

func (s *CorrectService) config(req CorrectRequest) (domain.Config, error) {
	if req.Config != nil {
		return *req.Config, nil
	}
	return s.LoadConfig(req.ConfigPath)
}

// env gathers what the catalog can use about the working directory. Missing
// context is not an error: rules fall back to their generic forms.
func (s *CorrectService) env(dir string) catalog.Env {
	var env catalog.Env
	if s.gitInfo == nil || dir == "" {
		return env
	}
	branch, err := s.gitInfo.CurrentBranch(dir)
	if err != nil {
		s.logger.Debug("no git branch", zap.String("dir", dir), zap.Error(err))
		return env
	}
	env.Branch = branch
	return env
}
