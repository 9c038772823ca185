package entities

type Trend struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	SourceURL   string `gorm:"column:source_url" json:"sourceUrl"`
	ImageURL    string `gorm:"column:image_url" json:"imageUrl"`
}
