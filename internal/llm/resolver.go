package llm

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/Harthik777/Agentic-XAI/internal/engine"
	xaiotel "github.com/Harthik777/Agentic-XAI/internal/otel"
	"github.com/Harthik777/Agentic-XAI/internal/requestctx"
)

// Source tags where a resolved decision came from.
type Source string

const (
	// SourceLive marks a decision produced by a live model and accepted
	// by the trust check.
	SourceLive Source = "live"
	// SourceFallback marks a decision produced by the deterministic
	// fallback engine. In this system this is the common case, not the
	// exception.
	SourceFallback Source = "fallback"
)

// Outcome is the resolved decision: a complete record plus provenance.
// FallbackReason is set only when Source is SourceFallback.
type Outcome struct {
	Source         Source
	Record         engine.Record
	Model          string
	FallbackReason string
}

// Resolver arbitrates between a live model attempt and the fallback
// engine. The engine itself never sees the provider: try-live-else-
// synthesize is strictly a boundary concern.
type Resolver struct {
	engine   *engine.Engine
	provider Provider
	model    string
	limiter  *rate.Limiter
}

// NewResolver builds a resolver. provider may be nil, in which case every
// request resolves through the fallback engine. limiter may be nil for
// unlimited live attempts; when set, a denied reservation skips the live
// attempt entirely — there is no queueing and no retry.
func NewResolver(eng *engine.Engine, provider Provider, model string, limiter *rate.Limiter) *Resolver {
	return &Resolver{engine: eng, provider: provider, model: model, limiter: limiter}
}

// Resolve produces a decision for the request, preferring a trusted live
// model response and degrading to the deterministic engine on any failure:
// missing provider, rate-limit denial, transport error, malformed output,
// or schema violation.
func (r *Resolver) Resolve(ctx context.Context, taskText string, taskCtx engine.Context, priority engine.Priority) Outcome {
	ctx, span := tracer.Start(ctx, "decision.resolve",
		trace.WithAttributes(attribute.String("decision.priority", string(priority))))
	defer span.End()

	fallback := r.engine.Process(taskText, taskCtx, priority)

	reason := r.liveDisabledReason()
	if reason == "" {
		md, err := r.attemptLive(ctx, taskText, taskCtx)
		if err == nil {
			rec := r.liveRecord(fallback, md, taskText, taskCtx)
			span.SetAttributes(
				attribute.String("decision.source", string(SourceLive)),
				attribute.String("decision.intent", rec.Intent),
			)
			log.Debug().
				Str("source", string(SourceLive)).
				Str("intent", rec.Intent).
				Str("model", r.model).
				Str("request_id", requestctx.RequestID(ctx)).
				Func(xaiotel.LogTraceFields(ctx)).
				Msg("resolved decision from live model")
			return Outcome{Source: SourceLive, Record: rec, Model: r.model}
		}
		span.RecordError(err)
		reason = err.Error()
	}

	span.SetAttributes(
		attribute.String("decision.source", string(SourceFallback)),
		attribute.String("decision.intent", fallback.Intent),
	)
	log.Debug().
		Str("source", string(SourceFallback)).
		Str("intent", fallback.Intent).
		Str("reason", reason).
		Str("request_id", requestctx.RequestID(ctx)).
		Func(xaiotel.LogTraceFields(ctx)).
		Msg("resolved decision from fallback engine")
	return Outcome{Source: SourceFallback, Record: fallback, FallbackReason: reason}
}

// liveDisabledReason reports why no live attempt should be made, or ""
// when one may proceed.
func (r *Resolver) liveDisabledReason() string {
	if r.provider == nil {
		return ErrNoProvider.Error()
	}
	if r.limiter != nil && !r.limiter.Allow() {
		return ErrRateLimited.Error()
	}
	return ""
}

func (r *Resolver) attemptLive(ctx context.Context, taskText string, taskCtx engine.Context) (*ModelDecision, error) {
	resp, err := r.provider.Generate(ctx, DecisionRequest(r.model, taskText, taskCtx))
	if err != nil {
		return nil, err
	}
	return ParseDecision(resp.Content)
}

// liveRecord overlays a trusted model decision onto the fallback record.
// The explanation is recomputed against the live decision text so both
// paths narrate in the same vocabulary; alternatives, risk factors, and
// intent keep their deterministic values.
func (r *Resolver) liveRecord(base engine.Record, md *ModelDecision, taskText string, taskCtx engine.Context) engine.Record {
	expl := r.engine.Explain(taskText, taskCtx, md.Decision)

	rec := base
	rec.Recommendation = md.Decision
	rec.Reasoning = strings.Join(md.Reasoning, " ")
	rec.Confidence = md.Confidence * 100
	rec.NarrativeConfidence = md.Confidence
	rec.ReasoningSteps = expl.ReasoningSteps
	rec.FeatureImportance = expl.FeatureImportance
	return rec
}
