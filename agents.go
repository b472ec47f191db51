package newapp

import (
	"context"
	"strings"
)

// AgentRole tags the three prompt specializations. Behavior differences are
// entirely prompt-content-driven; there is one Agent type.
type AgentRole string

const (
	RoleGeneral AgentRole = "general"
	RoleIntent  AgentRole = "intent"
	RoleTask    AgentRole = "task"
)

// MapMarker is the structured marker the intent agent is instructed to emit
// for navigation requests. Matching is case-insensitive.
const MapMarker = "MAP_TASK:"

const generalPrompt = "You are Newapp, a friendly assistant inside a mobile chat app. " +
	"Answer conversationally and keep replies short enough to read on a phone screen."

const intentPrompt = "You are an intent classifier for a chat app. " +
	"If the user's message asks for directions, navigation, or how to get to a place, " +
	"reply with exactly one line in the form 'MAP_TASK: <destination>' where <destination> " +
	"is the place they want to reach. For any other message, reply with a brief free-text " +
	"analysis of what the user wants and do not use the MAP_TASK format."

const taskPrompt = "You are a navigation assistant in a chat app. The user has asked for " +
	"directions. Reply with one short, friendly confirmation that you are opening the maps " +
	"app, and mention the destination by name."

var rolePrompts = map[AgentRole]string{
	RoleGeneral: generalPrompt,
	RoleIntent:  intentPrompt,
	RoleTask:    taskPrompt,
}

// Agent binds a fixed system prompt to the shared generation service.
type Agent struct {
	Role          AgentRole
	System_Prompt string
	Generator     *Generator
}

// Create_Agent builds an agent for the given role. The generator is required;
// the role's built-in prompt is used unless overridden afterwards.
func Create_Agent(role AgentRole, generator *Generator) Agent {
	return Agent{
		Role:          role,
		System_Prompt: rolePrompts[role],
		Generator:     generator,
	}
}

// WithSystemPrompt overrides the role's built-in prompt.
func (a Agent) WithSystemPrompt(prompt string) Agent {
	a.System_Prompt = prompt
	return a
}

// Respond routes the input through the resilient generation service with the
// agent's bound system prompt. Always returns a displayable string.
func (a *Agent) Respond(ctx context.Context, input string) string {
	return a.Generator.Generate(ctx, input, a.System_Prompt)
}

// MapIntent is the three-way classification of an intent agent reply.
type MapIntent int

const (
	// IntentNotMap means the reply carried no navigation marker.
	IntentNotMap MapIntent = iota
	// IntentMapAmbiguous means the marker was present with an empty
	// destination. This branch surfaces a clarification request rather than
	// falling through to general conversation.
	IntentMapAmbiguous
	// IntentMap means a navigation request with a usable destination.
	IntentMap
)

// Extract_Destination pattern-matches the intent agent's raw reply against
// the MAP_TASK marker. The destination is the trimmed remainder of the
// marker's line.
func Extract_Destination(reply string) (string, MapIntent) {
	for _, line := range strings.Split(reply, "\n") {
		idx := markerIndex(line)
		if idx < 0 {
			continue
		}
		dest := strings.TrimSpace(line[idx+len(MapMarker):])
		if dest == "" {
			return "", IntentMapAmbiguous
		}
		return dest, IntentMap
	}
	return "", IntentNotMap
}

// markerIndex finds MapMarker in line case-insensitively and returns a byte
// index into line itself. Folding the whole line first would shift indices
// when case conversion changes a rune's byte length, and LLM replies can
// contain any text.
func markerIndex(line string) int {
	for i := 0; i+len(MapMarker) <= len(line); i++ {
		if strings.EqualFold(line[i:i+len(MapMarker)], MapMarker) {
			return i
		}
	}
	return -1
}

// Respond_To_Directions asks the task agent to acknowledge a navigation
// request with a synthesized prompt naming the destination.
func Respond_To_Directions(ctx context.Context, agent *Agent, destination string) string {
	return agent.Respond(ctx, "I need directions to "+destination)
}
