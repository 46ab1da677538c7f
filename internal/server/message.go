package server

import (
	"encoding/json"
	"time"

	"github.com/lox/cribbage/cribbage"
	"github.com/lox/cribbage/internal/analyzer"
)

// MessageType represents a WebSocket message type with type safety
type MessageType string

const (
	// Client to server messages
	MessageTypeEvaluate MessageType = "evaluate"

	// Server to client messages
	MessageTypeScore MessageType = "score"
	MessageTypeCrib  MessageType = "crib"
	MessageTypeError MessageType = "error"
)

// String returns the string representation of the message type
func (mt MessageType) String() string {
	return string(mt)
}

// Error codes sent in ErrorData
const (
	ErrorCodeInvalidMessage = "invalid_message"
	ErrorCodeInvalidInput   = "invalid_input"
	ErrorCodeUnknownType    = "unknown_type"
)

// Message represents the base WebSocket message structure
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
	RequestID string          `json:"requestId,omitempty"`
}

// NewMessage creates a new message with the current timestamp
func NewMessage(messageType MessageType, data any) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: time.Now(),
	}, nil
}

// Client → Server Messages

// EvaluateData asks for a four or five card hand to be scored, or a six card
// deal to be split.
type EvaluateData struct {
	Hand string `json:"hand"`
	Crib bool   `json:"crib,omitempty"`
}

// Server → Client Messages

type ScoreData struct {
	Hand      []string           `json:"hand"`
	Starter   string             `json:"starter,omitempty"`
	Crib      bool               `json:"crib"`
	Score     int                `json:"score"`
	Breakdown cribbage.Breakdown `json:"breakdown"`
}

type CribData struct {
	Keep         []string    `json:"keep"`
	Crib         []string    `json:"crib"`
	High         int         `json:"high"`
	Low          int         `json:"low"`
	Mean         float64     `json:"mean"`
	BestStarter  string      `json:"bestStarter"`
	Distribution map[int]int `json:"distribution"`
	ElapsedMs    float64     `json:"elapsedMs"`
}

type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// resultMessage converts an analyzer result into its reply message.
func resultMessage(r analyzer.Result) (*Message, error) {
	if r.Kind == analyzer.KindCrib {
		best := r.Best
		return NewMessage(MessageTypeCrib, CribData{
			Keep:         cardStrings(best.Keep.Cards()),
			Crib:         cardStrings(best.Crib.Cards()),
			High:         best.High,
			Low:          best.Low,
			Mean:         best.Mean(),
			BestStarter:  best.BestStarter.String(),
			Distribution: best.Distribution,
			ElapsedMs:    float64(best.Elapsed.Microseconds()) / 1000,
		})
	}

	data := ScoreData{
		Hand:      cardStrings(r.Hand.Cards()),
		Crib:      r.IsCrib,
		Score:     r.Score,
		Breakdown: r.Breakdown,
	}
	if r.Starter != cribbage.NoCard {
		data.Starter = r.Starter.String()
	}
	return NewMessage(MessageTypeScore, data)
}

func cardStrings(cards []cribbage.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}
