package models

// HistoryMessage is one transcript entry in the agent-facing snapshot.
type HistoryMessage struct {
	Role string `json:"role"` // "user" or "agent"
	Body string `json:"body"`
}

// Plan is the transient per-request execution plan produced by the planner.
// Agents is ordered and duplicate-free; order is significant.
type Plan struct {
	Agents       []AgentName              `json:"agents_to_invoke"`
	Reasoning    string                   `json:"reasoning"`
	WorkflowType string                   `json:"workflow_type"`
	AgentActions map[AgentName]ActionSpec `json:"agent_actions,omitempty"`
	Confidence   float64                  `json:"confidence"`
}

// ActionSpec carries per-agent parameters from the planner.
type ActionSpec struct {
	Action string         `json:"action,omitempty"`
	Params map[string]any `json:"params,omitempty"`
}

// Scratchpad is the per-request shared state threaded through the
// orchestrator and agents. An agent may read shared fields and its own
// params but must only write its own slot in PartialResults.
type Scratchpad struct {
	RequestID       string
	UserRequest     string
	SessionID       string
	UserID          string
	ThirdPartyToken string

	FileBlob []byte
	FileName string

	// Last-10 transcript snapshot, oldest first.
	History []HistoryMessage

	Plan           *Plan
	PartialResults map[AgentName]*AgentResult

	FinalResponse string

	// DraftCreated is the structured sidecar surfaced alongside the textual
	// response when an email draft was created during this request.
	DraftCreated *DraftSummary
}

// Params returns the planner-provided parameters for the named agent,
// never nil.
func (s *Scratchpad) Params(name AgentName) ActionSpec {
	if s.Plan == nil || s.Plan.AgentActions == nil {
		return ActionSpec{}
	}
	return s.Plan.AgentActions[name]
}

// ResultFor returns the recorded result for the named agent, or nil.
func (s *Scratchpad) ResultFor(name AgentName) *AgentResult {
	if s.PartialResults == nil {
		return nil
	}
	return s.PartialResults[name]
}
