package engine

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abdidvp/ftf/internal/domain"
)

// Corrector runs every applicable rule against a command and merges their
// proposals into one ranked, deduplicated list.
type Corrector struct {
	registry *Registry
	workers  int
	logger   *zap.Logger
}

// Option configures a Corrector.
type Option func(*Corrector)

// WithWorkers bounds how many rules are evaluated at once. Values below 1
// mean one worker per CPU.
func WithWorkers(n int) Option {
	return func(c *Corrector) { c.workers = n }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Corrector) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewCorrector evaluates the rules of registry. Workers default to GOMAXPROCS.
func NewCorrector(registry *Registry, opts ...Option) *Corrector {
	if registry == nil {
		registry = NewRegistry()
	}
	c := &Corrector{registry: registry, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	if c.workers < 1 {
		c.workers = runtime.GOMAXPROCS(0)
	}
	return c
}

// Rules returns the rules this corrector evaluates.
func (c *Corrector) Rules() []domain.Rule {
	return c.registry.Rules()
}

// Corrections evaluates every registered rule against cmd and returns the
// corrections sorted by priority with duplicates removed. When two rules
// propose the same script and side effect, the better ranked one is kept.
//
// The result does not depend on scheduling. The error is non-nil only when
// ctx ends before evaluation finishes.
func (c *Corrector) Corrections(ctx context.Context, cmd domain.Command) ([]domain.CorrectedCommand, error) {
	rules := c.Rules()
	slots := make([][]domain.CorrectedCommand, len(rules))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i, rule := range rules {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			slots[i] = c.evaluate(rule, cmd)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var merged []domain.CorrectedCommand
	for _, s := range slots {
		merged = append(merged, s...)
	}
	result := rank(merged)

	c.logger.Debug("evaluated rules",
		zap.Stringer("command", cmd),
		zap.Int("rules", len(rules)),
		zap.Int("candidates", len(merged)),
		zap.Int("corrections", len(result)))
	return result, nil
}

// Best returns the top ranked correction, if any.
func (c *Corrector) Best(ctx context.Context, cmd domain.Command) (domain.CorrectedCommand, bool, error) {
	all, err := c.Corrections(ctx, cmd)
	if err != nil || len(all) == 0 {
		return domain.CorrectedCommand{}, false, err
	}
	return all[0], true, nil
}

// evaluate applies one rule. Output-gated rules are skipped before Matches
// is called. A rule that panics counts as a non-match.
func (c *Corrector) evaluate(rule domain.Rule, cmd domain.Command) (out []domain.CorrectedCommand) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Warn("rule panicked",
				zap.String("rule", rule.Name()),
				zap.String("panic", fmt.Sprint(r)))
			out = nil
		}
	}()

	if rule.RequiresOutput() && !cmd.HasOutput() {
		return nil
	}
	if !rule.Matches(cmd) {
		return nil
	}
	out = domain.CorrectedCommands(rule, cmd)
	if len(out) > 0 {
		c.logger.Debug("rule matched", zap.String("rule", rule.Name()), zap.Int("proposed", len(out)))
	}
	return out
}

// rank sorts by priority, keeping production order for ties, then drops
// every correction equal to an earlier one.
func rank(corrections []domain.CorrectedCommand) []domain.CorrectedCommand {
	sort.SliceStable(corrections, func(i, j int) bool {
		return corrections[i].Less(corrections[j])
	})

	type key struct{ script, sideEffect string }
	seen := make(map[key]struct{}, len(corrections))
	out := corrections[:0]
	for _, cc := range corrections {
		k := key{cc.Script, cc.SideEffect}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, cc)
	}
	return out
}
