package Models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username   string `json:"username" gorm:"uniqueIndex"`
	Name       string `json:"name"`
	Password   []byte `json:"-"`
	Permission int    `json:"permission"`
}
