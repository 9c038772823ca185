package entities

import "time"

type Message struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Content   string    `json:"content"`
	Role      string    `json:"role"` // "user" or "assistant"
	Timestamp time.Time `json:"timestamp"`
}
