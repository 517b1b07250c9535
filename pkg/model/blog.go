package model

// Blog 博客文章
type Blog struct {
	BaseModel
	ID            int64  `json:"id" gorm:"primaryKey"`
	UserID        int64  `json:"userID" gorm:"index;not null"`
	Title         string `json:"title" gorm:"type:varchar(255);not null"`
	Subheader     string `json:"subheader" gorm:"type:varchar(255)"`
	Slug          string `json:"slug" gorm:"type:varchar(255);uniqueIndex"`
	Content       string `json:"content" gorm:"type:longtext"`
	FeaturedImage string `json:"featuredImage" gorm:"type:varchar(255)"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
