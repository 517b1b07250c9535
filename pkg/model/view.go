package model

import "time"

// BlogView 一次博客浏览事件
//
// 事件只增不改：创建后不允许更新，仅在所属博客被删除时级联删除。
// 匿名浏览 UserID 为空，此时 IP + UserAgent 作为访客身份参与去重。
type BlogView struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	BlogID    int64     `json:"blogID" gorm:"not null;index:idx_blog_views_blog_created,priority:1"`
	UserID    *int64    `json:"userID" gorm:"index"`
	IP        string    `json:"ip" gorm:"type:varchar(64)"`
	UserAgent string    `json:"userAgent" gorm:"type:varchar(512)"`
	CreatedAt time.Time `json:"createdAt" gorm:"index;index:idx_blog_views_blog_created,priority:2"`
}
