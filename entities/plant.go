package entities

type Plant struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `json:"name"`
	Species      string `json:"species"`
	HealthStatus string `gorm:"column:health_status" json:"healthStatus"`
	ImageURL     string `gorm:"column:image_url" json:"imageUrl"`
}
