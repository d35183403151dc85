package models

import "time"

// Follow is a directed edge meaning UserID receives AuthorID's posts in
// their feed.
//
// Both invariants are enforced by the storage engine itself so they hold
// under concurrent writers: the (user_id, author_id) pair is unique, and a
// check constraint rejects self-follows. The application re-checks before
// writing only to produce friendlier errors.
type Follow struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_follow_user_author;check:chk_follow_not_self,user_id <> author_id" json:"user_id"`
	AuthorID  uint      `gorm:"not null;uniqueIndex:idx_follow_user_author" json:"author_id"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Author    User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Follow) TableName() string {
	return "follows"
}
