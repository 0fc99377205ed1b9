package models

// User is the account record. Username doubles as the primary key, so it
// is immutable once registered. Password always holds a bcrypt hash.
type User struct {
	Username  string     `json:"username" gorm:"primaryKey;size:20"`
	Password  string     `json:"-" gorm:"not null"`
	Email     string     `json:"email" gorm:"size:50;uniqueIndex;not null"`
	FirstName string     `json:"firstName" gorm:"size:30;not null"`
	LastName  string     `json:"lastName" gorm:"size:30;not null"`
	Feedback  []Feedback `json:"feedback" gorm:"foreignKey:Username;references:Username;constraint:OnDelete:CASCADE"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
