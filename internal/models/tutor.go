package models

// ModelName is the public model identifier reported in every envelope.
const ModelName = "realtutor-ai"

// RequestContext carries the per-request fields assembled for one tutor
// operation. It is created by the handling call, never shared and never
// persisted.
type RequestContext struct {
	CodeContext  string
	CurrentFile  string
	Language     string
	UserQuestion string
	ErrorMessage string
	RecentEdits  string
}

// ProjectFile is one (filename, content) pair of a project analysis request.
type ProjectFile struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// GenerateRequest is the body of POST /generate.
type GenerateRequest struct {
	Prompt   string `json:"prompt"`
	Language string `json:"language"`
}

// AnalyzeRequest is the body of POST /analyze.
type AnalyzeRequest struct {
	UserMessage          string        `json:"userMessage"`
	CodeContext          string        `json:"codeContext"`
	Language             string        `json:"language"`
	FileName             string        `json:"fileName"`
	ProjectFilesDetailed []ProjectFile `json:"projectFilesDetailed"`
}

// ResponsePayload is the data half of a response envelope.
type ResponsePayload struct {
	Message string `json:"message"`
	Model   string `json:"model"`
}

// ResponseEnvelope is the JSON envelope shared by POST /analyze and the
// WebSocket surface.
type ResponseEnvelope struct {
	Type string          `json:"type"`
	Data ResponsePayload `json:"data"`
}

// NewResponseEnvelope wraps a message in the standard envelope.
func NewResponseEnvelope(message string) ResponseEnvelope {
	return ResponseEnvelope{
		Type: "response",
		Data: ResponsePayload{Message: message, Model: ModelName},
	}
}

// StatusPayload is the data half of the WebSocket connect greeting.
type StatusPayload struct {
	Connected bool   `json:"connected"`
	Model     string `json:"model"`
}

// StatusEnvelope is emitted once per WebSocket connection.
type StatusEnvelope struct {
	Type string        `json:"type"`
	Data StatusPayload `json:"data"`
}

// NewStatusEnvelope builds the connect greeting.
func NewStatusEnvelope() StatusEnvelope {
	return StatusEnvelope{
		Type: "status",
		Data: StatusPayload{Connected: true, Model: ModelName},
	}
}

// InactivityPayload is the data half of an incoming WebSocket message.
type InactivityPayload struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Error    string `json:"error"`
	FileName string `json:"fileName"`
}

// InboundMessage is the envelope clients send over the WebSocket.
type InboundMessage struct {
	Type string            `json:"type"`
	Data InactivityPayload `json:"data"`
}
