package session

import "context"

// Stage is the position within a workflow's linear question sequence. It
// determines which input types the conversation accepts next.
type Stage string

const (
	// Order intake flow.
	StageOrderType Stage = "awaiting_order_type"
	StageSize      Stage = "awaiting_size"
	StageColor     Stage = "awaiting_color"
	StagePhoto     Stage = "awaiting_reference_photo"
	StagePhone     Stage = "awaiting_phone"

	// Receipt upload flow.
	StageReceiptPhone Stage = "awaiting_receipt_phone"
	StageReceiptPhoto Stage = "awaiting_receipt_photo"
)

// Session holds the in-progress workflow state for one chat. At most one
// session exists per chat; starting a workflow overwrites any previous one.
type Session struct {
	Stage        Stage  `json:"stage"`
	OrderType    string `json:"order_type"`
	Size         string `json:"size"`
	ColorFabric  string `json:"color_fabric"`
	PhotoFileID  string `json:"photo_file_id"`
	Phone        string `json:"phone"`
	ReceiptPhone string `json:"receipt_phone"`
}

// Store keeps sessions keyed by chat ID. Get returns nil when the chat has
// no active session. Implementations must be safe for concurrent use across
// different chats.
type Store interface {
	Get(ctx context.Context, chatID int64) (*Session, error)
	Set(ctx context.Context, chatID int64, sess *Session) error
	Delete(ctx context.Context, chatID int64) error
}
