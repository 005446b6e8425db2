package db

type UserModel struct {
	Id       uint   `gorm:"primaryKey;autoIncrement"`
	Username string `gorm:"uniqueIndex;not null"`
	Email    string `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}
