// Package roll parses roll command flags and prints generated skill shares.
package roll

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/netrey95-hub/skills/internal/core/check"
	"github.com/netrey95-hub/skills/internal/core/distribution"
	"github.com/netrey95-hub/skills/internal/labels"
	entrypoint "github.com/netrey95-hub/skills/internal/platform/cmd"
	apperrors "github.com/netrey95-hub/skills/internal/platform/errors"
	"github.com/netrey95-hub/skills/internal/platform/otel"
	"github.com/netrey95-hub/skills/internal/random"
)

// NoBalance disables the affordability check.
const NoBalance = -1

// Config holds roll command configuration.
type Config struct {
	Policy  string `env:"SKILLS_ROLL_POLICY" envDefault:"normal"`
	Group   string `env:"SKILLS_ROLL_GROUP" envDefault:"speed"`
	Seed    int64  `env:"SKILLS_ROLL_SEED"`
	Samples int    `env:"SKILLS_ROLL_SAMPLES" envDefault:"1"`
	Balance int    `env:"SKILLS_ROLL_BALANCE" envDefault:"-1"`
	Locale  string `env:"SKILLS_ROLL_LOCALE" envDefault:"en-US"`
	List    bool

	// Reproducible draws and logs a seed when Seed is zero.
	Reproducible bool `env:"SKILLS_ROLL_REPRODUCIBLE"`

	Telemetry otel.Config
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Policy, "policy", cfg.Policy, "Generation policy (normal, balance, bias_medium, bias_big)")
	fs.StringVar(&cfg.Group, "group", cfg.Group, "Favored group for biased policies (speed, defense, attack)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed for reproducible output (0 = crypto/rand)")
	fs.BoolVar(&cfg.Reproducible, "reproducible", cfg.Reproducible, "With -seed 0, draw a seed and log it so the run can be replayed")
	fs.IntVar(&cfg.Samples, "samples", cfg.Samples, "Number of distributions to draw; above 1 prints statistics")
	fs.IntVar(&cfg.Balance, "balance", cfg.Balance, "Point balance to spend from (-1 = skip cost check)")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "Output locale (en-US, ru-RU)")
	fs.BoolVar(&cfg.List, "list", false, "List policies and groups")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.Samples < 1 {
		return Config{}, fmt.Errorf("samples must be at least 1, got %d", cfg.Samples)
	}
	if cfg.Balance < NoBalance {
		return Config{}, fmt.Errorf("balance must be non-negative or %d, got %d", NoBalance, cfg.Balance)
	}
	return cfg, nil
}

// Run executes the roll command, writing results to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceRoll, entrypoint.RunOptions{Telemetry: cfg.Telemetry}, func(ctx context.Context) error {
		l := labels.New(cfg.Locale)
		if cfg.List {
			writeList(out, l)
			return nil
		}

		sampler, _ := newSampler(cfg.Seed, cfg.Reproducible)
		r := roller{
			gen:    distribution.NewGenerator(sampler),
			labels: l,
			tracer: otel.Tracer(),
		}
		err := r.run(ctx, cfg, out)
		if sampler.Degraded() {
			log.Printf("crypto/rand unavailable; draws used the math/rand fallback")
		}
		return err
	})
}

// newSampler returns the sampler for a run and the seed it replays, or zero
// when draws come from crypto/rand.
func newSampler(seed int64, reproducible bool) (*random.UniformSampler, int64) {
	if seed == 0 && reproducible {
		drawn, err := random.NewSeed()
		if err != nil {
			log.Printf("draw seed: %v; using crypto/rand without a seed", err)
			return random.NewSampler(), 0
		}
		seed = drawn
	}
	if seed != 0 {
		log.Printf("using seed %d", seed)
		return random.NewSeededSampler(seed), seed
	}
	return random.NewSampler(), 0
}

type roller struct {
	gen    *distribution.Generator
	labels *labels.Labels
	tracer trace.Tracer
}

func (r roller) run(ctx context.Context, cfg Config, out io.Writer) error {
	hint, err := distribution.GroupHint(distribution.PolicyKey(cfg.Policy), cfg.Group)
	if err != nil {
		return err
	}
	policy, _ := distribution.LookupPolicy(distribution.PolicyKey(cfg.Policy))

	balance := cfg.Balance
	samples := make([][]int, 0, cfg.Samples)
	for i := 0; i < cfg.Samples; i++ {
		if cfg.Balance != NoBalance {
			if balance, err = spend(balance, policy.Cost, r.labels); err != nil {
				return err
			}
		}
		dist, err := r.generate(ctx, policy, cfg.Group, i)
		if err != nil {
			return err
		}
		samples = append(samples, dist)
	}

	fmt.Fprintf(out, "%s\n", r.labels.Policy(string(policy.Key)))
	fmt.Fprintf(out, "%s\n", r.labels.Cost(policy.Cost))
	if policy.Biased() {
		fmt.Fprintf(out, "%s\n", r.labels.GroupHint(hint.Group, hint.Minimum, hint.Remaining))
	}
	fmt.Fprintln(out)

	if len(samples) == 1 {
		writeDistribution(out, r.labels, samples[0])
	} else if err := writeSummary(out, r.labels, samples); err != nil {
		return err
	}

	if cfg.Balance != NoBalance {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%s\n", r.labels.Balance(balance))
	}
	return nil
}

func (r roller) generate(ctx context.Context, policy distribution.Policy, group string, index int) (distribution.Distribution, error) {
	_, span := r.tracer.Start(ctx, "distribution.generate", trace.WithAttributes(
		attribute.String("skills.policy", string(policy.Key)),
		attribute.String("skills.generator", policy.Kind.String()),
		attribute.Int("skills.sample", index),
	))
	defer span.End()
	if policy.Biased() {
		span.SetAttributes(attribute.String("skills.group", group))
	}

	dist, err := r.gen.Generate(policy.Key, group)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(apperrors.GetCode(err)))
		return nil, err
	}
	return dist, nil
}

func spend(balance, cost int, l *labels.Labels) (int, error) {
	left, err := check.Spend(balance, cost)
	var short *check.ShortfallError
	if errors.As(err, &short) {
		return balance, apperrors.WrapWithMetadata(apperrors.CodeBalanceInsufficient, "spend points", map[string]string{
			"Cost":    l.Points(short.Cost),
			"Balance": l.Points(short.Balance),
			"Missing": l.Points(short.Missing()),
		}, err)
	}
	return left, err
}
