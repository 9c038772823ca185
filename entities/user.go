package entities

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"uniqueIndex" json:"username"`
	Password     string `json:"password"` // stored and compared as plain text, original behavior
	Email        string `json:"email"`
	Organization string `json:"organization"`
}
