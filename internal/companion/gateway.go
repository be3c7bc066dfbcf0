package companion

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"moodsync/apps/backend/internal/logger"
)

const tracerName = "moodsync/apps/backend/internal/companion"

// Gateway turns a task and caller fields into reply text. Generation errors
// never leave the gateway: they are logged and replaced by the task's
// fallback text.
type Gateway struct {
	gen     Generator
	rnd     RandomSource
	log     *logger.Logger
	timeout time.Duration
}

// NewGateway builds a gateway. A nil random source uses DefaultRandom, a nil
// logger discards, and a non-positive timeout leaves the deadline to ctx.
func NewGateway(gen Generator, rnd RandomSource, log *logger.Logger, timeout time.Duration) *Gateway {
	if rnd == nil {
		rnd = DefaultRandom
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Gateway{gen: gen, rnd: rnd, log: log, timeout: timeout}
}

// Respond makes exactly one backend call and always returns non-empty text.
func (g *Gateway) Respond(ctx context.Context, task Task, f Fields) string {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "companion.Respond")
	defer span.End()
	span.SetAttributes(
		attribute.String("companion.task", task.Name),
		attribute.String("companion.persona", task.Persona.Name),
	)

	raw, err := g.generate(ctx, task.Prompt(f))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generation failed")
		g.log.Error("ai generation failed, using fallback", "task", task.Name, "error", err)
		return g.pickFallback(task, f)
	}

	if reply := Sanitize(raw); reply != "" {
		return reply
	}
	span.SetAttributes(attribute.Bool("companion.empty_reply", true))
	return task.DefaultReply(f)
}

func (g *Gateway) generate(ctx context.Context, prompt string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	return g.gen.Generate(ctx, prompt)
}

func (g *Gateway) pickFallback(task Task, f Fields) string {
	candidates := task.Fallbacks(f)
	switch len(candidates) {
	case 0:
		return task.DefaultReply(f)
	case 1:
		return candidates[0]
	}
	idx := g.rnd.Intn(len(candidates))
	if idx < 0 || idx >= len(candidates) {
		idx = 0
	}
	return candidates[idx]
}
