package newapp

import "strings"

// Warmup_Probe is the reserved input the orchestrator sends once at startup to
// pre-establish connectivity. It is the only input with a bespoke canned reply.
const Warmup_Probe = "warmup::ping"

// Degraded_Prefix marks every canned reply so the UI (and tests) can tell a
// live model answer from a fallback.
const Degraded_Prefix = "[offline] "

const probeDiagnostic = "Connectivity check failed: no model endpoint is reachable."

type cannedRule struct {
	keywords []string
	reply    string
}

// Order is significant: the first matching rule wins, so the greeting rule
// shadows the weather rule for inputs containing both.
var cannedRules = []cannedRule{
	{[]string{"hello", "hi ", "hey"}, "Hello! I'm running without a model connection right now, but I'm still here."},
	{[]string{"how are you"}, "Doing fine, though I can't reach any model right now."},
	{[]string{"weather"}, "I can't check the weather while offline. Try again once a model endpoint is up."},
	{[]string{"your name", "who are you"}, "I'm the Newapp assistant. My language model is unreachable at the moment."},
	{[]string{"help"}, "I can chat and open directions in your maps app. Model responses resume once an endpoint is reachable."},
	{[]string{"newapp"}, "Newapp is a chat assistant with navigation support. The model backend is currently offline."},
	{[]string{"error", "issue", "problem"}, "Something is wrong with the model connection. Check that the endpoint is running and reachable."},
	{[]string{"model"}, "No language model could be reached. Verify the configured endpoint and that a model is pulled."},
	{[]string{"connect", "network", "internet", "offline"}, "The model endpoint seems unreachable. Check the server address and your network."},
}

const (
	shortInputReply = "Hi! The model backend is offline, so I can only give canned replies right now."
	genericReply    = "I couldn't reach any language model to answer that. Please check the model endpoint and try again."
	shortInputLimit = 5
)

// Canned_Response produces the degraded-mode reply used when every
// endpoint/model attempt has failed. Pure function, no I/O.
func Canned_Response(input string) string {
	if input == Warmup_Probe {
		return probeDiagnostic
	}

	lower := strings.ToLower(input)
	for _, rule := range cannedRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return Degraded_Prefix + rule.reply
			}
		}
	}

	if len(strings.TrimSpace(input)) < shortInputLimit {
		return Degraded_Prefix + shortInputReply
	}
	return Degraded_Prefix + genericReply
}
