package newapp

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	models "github.com/Lax999/Newapp/models"
	"github.com/google/uuid"
)

// WelcomeMessage is appended to the log when the orchestrator is created.
const WelcomeMessage = "Hi! I'm Newapp. Ask me anything, or ask for directions and I'll open your maps app."

const clarifyDestination = "I can open directions for you, but I didn't catch the destination. Where would you like to go?"

const mapsOpenFailed = "I couldn't open the maps app on this device. You may need to install one."

// Orchestrator owns the three specialized agents and the append-only message
// log. Each SendMessage call runs its agent chain on its own goroutine;
// successive calls are deliberately not serialized, so replies land in
// arrival order, not send order.
type Orchestrator struct {
	General Agent
	Intent  Agent
	Task    Agent

	launcher MapsLauncher
	logger   *log.Logger

	mu          sync.Mutex
	messages    []models.ChatMessage
	subscribers map[int]func(models.ChatMessage)
	nextSubID   int

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewOrchestrator wires the agents around one shared generator, appends the
// welcome message and fires the warm-up probe in the background.
func NewOrchestrator(cfg *Config) *Orchestrator {
	return NewOrchestratorWith(cfg, NewGenerator(cfg))
}

// NewOrchestratorWith accepts an explicitly constructed generator so callers
// can inject a specialized client (or a stub in tests). All three agents
// share the one instance.
func NewOrchestratorWith(cfg *Config, generator *Generator) *Orchestrator {
	ctx, cancel := context.WithCancel(context.Background())

	o := &Orchestrator{
		General:     Create_Agent(RoleGeneral, generator),
		Intent:      Create_Agent(RoleIntent, generator),
		Task:        Create_Agent(RoleTask, generator),
		launcher:    cfg.Launcher,
		logger:      log.New(os.Stdout, "[orchestrator] ", log.LstdFlags),
		subscribers: make(map[int]func(models.ChatMessage)),
		ctx:         ctx,
		cancel:      cancel,
	}

	o.appendMessage(WelcomeMessage, false)
	o.warmup(cfg.WarmupDelay)
	return o
}

// warmup issues a single fire-and-forget probe to pre-establish connectivity.
// The reply is discarded and failures are silent.
func (o *Orchestrator) warmup(delay time.Duration) {
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		select {
		case <-time.After(delay):
		case <-o.ctx.Done():
			return
		}
		_ = o.General.Respond(o.ctx, Warmup_Probe)
	}()
}

// SendMessage appends the user's message synchronously and launches the
// intent → (task|general) agent chain in the background. The call itself
// never fails.
func (o *Orchestrator) SendMessage(text string) {
	o.appendMessage(text, true)

	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		o.route(text)
	}()
}

func (o *Orchestrator) route(text string) {
	intentReply := o.Intent.Respond(o.ctx, text)
	destination, kind := Extract_Destination(intentReply)

	switch kind {
	case IntentMap:
		o.logger.Printf("navigation request, destination=%q", destination)
		reply := Respond_To_Directions(o.ctx, &o.Task, destination)
		o.appendMessage(reply, false)
		if o.launcher == nil || !o.launcher.Open_With_Directions(destination) {
			o.logger.Printf("maps launch failed for %q", destination)
			o.appendMessage(mapsOpenFailed, false)
		}
	case IntentMapAmbiguous:
		o.logger.Printf("navigation request with no destination")
		o.appendMessage(clarifyDestination, false)
	default:
		reply := o.General.Respond(o.ctx, text)
		o.appendMessage(reply, false)
	}
}

// Messages returns a read-only snapshot of the log in arrival order.
func (o *Orchestrator) Messages() []models.ChatMessage {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]models.ChatMessage, len(o.messages))
	copy(out, o.messages)
	return out
}

// Subscribe registers a callback invoked for every appended message,
// including ones already produced by in-flight chains. The callback runs on
// the appending goroutine and must not block. The returned function removes
// the subscription.
func (o *Orchestrator) Subscribe(fn func(models.ChatMessage)) func() {
	o.mu.Lock()
	defer o.mu.Unlock()
	id := o.nextSubID
	o.nextSubID++
	o.subscribers[id] = fn
	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		delete(o.subscribers, id)
	}
}

func (o *Orchestrator) appendMessage(text string, fromUser bool) models.ChatMessage {
	msg := models.ChatMessage{
		ID:        uuid.NewString(),
		Text:      text,
		FromUser:  fromUser,
		CreatedAt: time.Now(),
	}

	o.mu.Lock()
	o.messages = append(o.messages, msg)
	subs := make([]func(models.ChatMessage), 0, len(o.subscribers))
	for _, fn := range o.subscribers {
		subs = append(subs, fn)
	}
	o.mu.Unlock()

	for _, fn := range subs {
		fn(msg)
	}
	return msg
}

// Wait blocks until every launched agent chain has finished. Used by tests
// and by graceful shutdown; normal operation never needs it.
func (o *Orchestrator) Wait() {
	o.wg.Wait()
}

// Shutdown cancels background work. In-flight network calls are abandoned via
// context cancellation; the log is left as-is.
func (o *Orchestrator) Shutdown() {
	o.cancel()
}
