// Package dialogue runs one exchange from inbound text to persisted reply.
package dialogue

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/youngmea/airo/internal/canned"
	"github.com/youngmea/airo/internal/classify"
	"github.com/youngmea/airo/internal/database"
	"github.com/youngmea/airo/internal/llm"
	"github.com/youngmea/airo/internal/prompt"
	"github.com/youngmea/airo/internal/reply"
	"github.com/youngmea/airo/internal/text"
)

// State names a step of the exchange state machine. Transitions are logged at
// debug level together with the exchange id.
type State string

const (
	StateReceived        State = "RECEIVED"
	StateClassified      State = "CLASSIFIED"
	StateCannedReplied   State = "CANNED_REPLIED"
	StateGenerating      State = "GENERATING"
	StateFallbackReplied State = "FALLBACK_REPLIED"
	StateReplied         State = "REPLIED"
	StatePersisted       State = "PERSISTED"
)

// JokeMessage is the message text stored for /joke exchanges.
const JokeMessage = "/joke"

const (
	defaultGenerationTimeout = 20 * time.Second
	defaultHistoryMaxAge     = 10 * time.Minute
	defaultHistoryMaxRows    = 10
	previewRunes             = 80
)

// Ledger is the part of the conversation store the orchestrator uses.
type Ledger interface {
	AppendExchange(ctx context.Context, exchange *database.Exchange) error
	RecentHistory(ctx context.Context, userID int64, maxAge time.Duration, maxRows int) ([]database.Exchange, error)
	GetProfileLanguage(ctx context.Context, userID int64) (classify.Language, error)
	UpsertProfile(ctx context.Context, userID int64, lang classify.Language) error
}

// Inbound is a message handed over by the messaging gateway.
type Inbound struct {
	UserID      int64
	DisplayName string
	Text        string
}

// Options tunes the orchestrator. Zero values fall back to the defaults.
type Options struct {
	HistoryMaxAge     time.Duration
	HistoryMaxRows    int
	GenerationTimeout time.Duration
	Temperature       float32
}

// Orchestrator sequences classification, canned matching, generation,
// post-processing and persistence. Exchanges of one user are serialised;
// different users run concurrently.
type Orchestrator struct {
	log       *slog.Logger
	store     Ledger
	generator llm.Generator
	matcher   *canned.Matcher
	opts      Options
	newID     func() string

	locks *keyedMutex

	mu       sync.Mutex
	sessions map[int64]classify.Language
}

// New creates an Orchestrator.
func New(logger *slog.Logger, store Ledger, generator llm.Generator, matcher *canned.Matcher, opts Options) *Orchestrator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if matcher == nil {
		matcher = canned.New()
	}
	if opts.HistoryMaxAge <= 0 {
		opts.HistoryMaxAge = defaultHistoryMaxAge
	}
	if opts.HistoryMaxRows <= 0 {
		opts.HistoryMaxRows = defaultHistoryMaxRows
	}
	if opts.GenerationTimeout <= 0 {
		opts.GenerationTimeout = defaultGenerationTimeout
	}
	return &Orchestrator{
		log:       logger.With("component", "dialogue"),
		store:     store,
		generator: generator,
		matcher:   matcher,
		opts:      opts,
		newID:     uuid.NewString,
		locks:     newKeyedMutex(),
		sessions:  make(map[int64]classify.Language),
	}
}

// Reply runs the full pipeline for a free-text message and returns the text to
// send back. It always returns a non-empty reply.
func (o *Orchestrator) Reply(ctx context.Context, in Inbound) string {
	unlock := o.locks.Lock(in.UserID)
	defer unlock()

	log := o.log.With("user_id", in.UserID, "exchange_id", o.newID())
	transition(ctx, log, StateReceived)

	res := classify.Classify(in.Text)
	o.rememberLanguage(ctx, log, in.UserID, res.Language)
	transition(ctx, log, StateClassified,
		"language", res.Language, "emotion", res.Emotion, "tier", res.Tier)

	var response string
	if m, ok := o.matcher.Match(in.Text, res.Language); ok {
		response = m.Response
		transition(ctx, log, StateCannedReplied, "trigger", m.Trigger)
	} else {
		response = o.generate(ctx, log, in, res)
	}
	transition(ctx, log, StateReplied)

	o.persist(ctx, log, &database.Exchange{
		UserID:   in.UserID,
		Message:  in.Text,
		Response: response,
		Language: res.Language,
		Emotion:  res.Emotion,
	})

	return response
}

func (o *Orchestrator) generate(ctx context.Context, log *slog.Logger, in Inbound, res classify.Result) string {
	history, err := o.store.RecentHistory(ctx, in.UserID, o.opts.HistoryMaxAge, o.opts.HistoryMaxRows)
	if err != nil {
		log.WarnContext(ctx, "Failed to fetch history, continuing without it", "error", err)
		history = nil
	}

	turns := make([]prompt.Turn, 0, len(history))
	for _, h := range history {
		turns = append(turns, prompt.Turn{Message: h.Message, Response: h.Response, Language: h.Language})
	}

	p := prompt.Compose(prompt.Input{
		Language: res.Language,
		Emotion:  res.Emotion,
		Tier:     res.Tier,
		History:  turns,
		Message:  in.Text,
	})

	transition(ctx, log, StateGenerating, "history_turns", len(turns), "max_output_tokens", res.Tier.TokenBudget())

	genCtx, cancel := context.WithTimeout(ctx, o.opts.GenerationTimeout)
	defer cancel()

	generated, err := o.generator.Generate(genCtx, llm.Request{
		Prompt:          p,
		MaxOutputTokens: res.Tier.TokenBudget(),
		Temperature:     o.opts.Temperature,
	})
	if err == nil && strings.TrimSpace(generated) == "" {
		err = llm.ErrEmptyResponse
	}
	if err != nil {
		log.ErrorContext(ctx, "Generation failed, using fallback reply",
			"error", err, "message_preview", text.Preview(in.Text, previewRunes))
		transition(ctx, log, StateFallbackReplied)
		return reply.Fallback(res.Language, res.Emotion)
	}

	return reply.Finalize(generated, res.Language, res.Emotion)
}

// Start handles /start. A non-empty payload re-detects the language; otherwise
// the known language is kept. The session is reset either way.
func (o *Orchestrator) Start(ctx context.Context, in Inbound) string {
	unlock := o.locks.Lock(in.UserID)
	defer unlock()

	log := o.log.With("user_id", in.UserID)

	var lang classify.Language
	if strings.TrimSpace(in.Text) != "" {
		lang = classify.DetectLanguage(in.Text)
	} else {
		lang = o.language(ctx, log, in.UserID)
	}

	o.forget(in.UserID)
	o.rememberLanguage(ctx, log, in.UserID, lang)
	log.InfoContext(ctx, "Session started", "language", lang)

	t := textsFor(lang)
	name := strings.TrimSpace(in.DisplayName)
	if name == "" {
		name = t.anonymous
	}
	return fmt.Sprintf(t.start, name)
}

// Help returns the command list in the user's language.
func (o *Orchestrator) Help(ctx context.Context, userID int64) string {
	unlock := o.locks.Lock(userID)
	defer unlock()

	return textsFor(o.language(ctx, o.log.With("user_id", userID), userID)).help
}

// Joke returns a random joke in the user's language and records it as an exchange.
func (o *Orchestrator) Joke(ctx context.Context, userID int64) string {
	unlock := o.locks.Lock(userID)
	defer unlock()

	log := o.log.With("user_id", userID, "exchange_id", o.newID())
	lang := o.language(ctx, log, userID)

	joke := o.matcher.Joke(lang)
	if joke == "" {
		joke = reply.Fallback(lang, classify.Funny)
	}

	o.persist(ctx, log, &database.Exchange{
		UserID:   userID,
		Message:  JokeMessage,
		Response: joke,
		Language: lang,
		Emotion:  classify.Funny,
	})
	return joke
}

// History renders the recent window chronologically, or a notice when it is
// empty or cannot be read.
func (o *Orchestrator) History(ctx context.Context, userID int64) string {
	unlock := o.locks.Lock(userID)
	defer unlock()

	log := o.log.With("user_id", userID)
	t := textsFor(o.language(ctx, log, userID))

	rows, err := o.store.RecentHistory(ctx, userID, o.opts.HistoryMaxAge, o.opts.HistoryMaxRows)
	if err != nil {
		log.ErrorContext(ctx, "Failed to fetch history", "error", err)
		return t.historyError
	}
	if len(rows) == 0 {
		return t.historyEmpty
	}

	var b strings.Builder
	b.WriteString(t.historyHead)
	for i := len(rows) - 1; i >= 0; i-- {
		r := rows[i]
		fmt.Fprintf(&b, "👤 %s (%s): %s\n🤖 AIRO: %s\n---\n", t.historyUser, r.Language, r.Message, r.Response)
	}
	return b.String()
}

// language returns the session language, filling the cache from the profile.
func (o *Orchestrator) language(ctx context.Context, log *slog.Logger, userID int64) classify.Language {
	o.mu.Lock()
	lang, ok := o.sessions[userID]
	o.mu.Unlock()
	if ok {
		return lang
	}

	lang, err := o.store.GetProfileLanguage(ctx, userID)
	if err != nil {
		log.WarnContext(ctx, "Failed to read profile language, using default", "error", err)
		return classify.DefaultLanguage
	}

	o.mu.Lock()
	o.sessions[userID] = lang
	o.mu.Unlock()
	return lang
}

// rememberLanguage refreshes the session cache and the durable profile together.
func (o *Orchestrator) rememberLanguage(ctx context.Context, log *slog.Logger, userID int64, lang classify.Language) {
	o.mu.Lock()
	o.sessions[userID] = lang
	o.mu.Unlock()

	if err := o.store.UpsertProfile(ctx, userID, lang); err != nil {
		log.ErrorContext(ctx, "Failed to update user profile", "language", lang, "error", err)
	}
}

func (o *Orchestrator) forget(userID int64) {
	o.mu.Lock()
	delete(o.sessions, userID)
	o.mu.Unlock()
}

func (o *Orchestrator) persist(ctx context.Context, log *slog.Logger, exchange *database.Exchange) {
	if err := o.store.AppendExchange(ctx, exchange); err != nil {
		log.ErrorContext(ctx, "Failed to persist exchange, reply is still sent", "error", err)
		return
	}
	transition(ctx, log, StatePersisted, "row_id", exchange.ID)
}

func transition(ctx context.Context, log *slog.Logger, state State, attrs ...any) {
	log.DebugContext(ctx, "Exchange state", append([]any{"state", state}, attrs...)...)
}
