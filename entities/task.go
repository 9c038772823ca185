package entities

import "time"

type Task struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `json:"title"`
	IsCompleted bool      `gorm:"column:is_completed" json:"isCompleted"`
	DueDate     time.Time `gorm:"column:due_date" json:"dueDate"`
}
