package inbox

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// MaxPayloadBytes bounds how much of a dropped message body is kept.
	MaxPayloadBytes = 4096
	MaxMessageIDLen = 64
	MaxQueueLen     = 100
)

// Failure records a message that could not be parsed or applied and was
// dropped without requeue.
type Failure struct {
	ID        uint      `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	Queue     string    `gorm:"size:100;not null;index" json:"queue"`
	MessageID string    `gorm:"column:message_id;size:64" json:"messageId"`
	Error     string    `gorm:"type:text" json:"error"`
	Payload   string    `gorm:"type:text" json:"payload"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index" json:"createdAt"`
}

func (Failure) TableName() string {
	return "message_failures"
}

// NewFailure builds a record that Postgres text columns accept whatever the
// message carried: fields are cut to their column size, invalid UTF-8 becomes
// U+FFFD and NUL bytes are removed.
func NewFailure(queue, messageID string, payload []byte, err error) *Failure {
	f := &Failure{
		Queue:     sanitize(queue, MaxQueueLen),
		MessageID: sanitize(messageID, MaxMessageIDLen),
		Payload:   sanitize(string(payload), MaxPayloadBytes),
	}
	if err != nil {
		f.Error = sanitize(err.Error(), 0)
	}
	return f
}

// sanitize makes s valid NUL-free UTF-8 of at most limit bytes (0 means no
// limit). A cut never splits a rune.
func sanitize(s string, limit int) string {
	if limit > 0 && len(s) > limit {
		s = s[:limit]
	}
	s = strings.ToValidUTF8(s, string(utf8.RuneError))
	s = strings.ReplaceAll(s, "\x00", "")
	if limit <= 0 || len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
