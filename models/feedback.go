package models

// Feedback is a note owned by a single user.
type Feedback struct {
	ID       uint   `json:"id" gorm:"primarykey"`
	Title    string `json:"title" gorm:"size:100;not null"`
	Content  string `json:"content" gorm:"type:text;not null"`
	Username string `json:"username" gorm:"size:20;index;not null"`
}

func (Feedback) TableName() string {
	return "feedback"
}
