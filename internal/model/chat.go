package model

// ChatResponse is what the chatbot hands back to the shell: the reply text
// plus the ticker it resolved, if any. An empty Ticker means the shell has
// nothing to chart.
type ChatResponse struct {
	Text   string
	Ticker string
}
