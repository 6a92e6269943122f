package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Tags is stored as a JSON-encoded text column.
type Tags []string

func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		t = Tags{}
	}
	b, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (t *Tags) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = Tags{}
		return nil
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	default:
		return fmt.Errorf("unsupported tags column type %T", value)
	}
}

// Post counters are only ever moved by reaction transitions, one decrement
// always paired with an increment from a valid prior state.
type Post struct {
	ID            string `json:"id" gorm:"primaryKey"`
	Content       string `json:"content" gorm:"not null"`
	Author        string `json:"author" gorm:"index;not null"`
	Tags          Tags   `json:"tags" gorm:"type:text"`
	CreatedAt     string `json:"createdAt" gorm:"not null"`
	LikesCount    int    `json:"likesCount" gorm:"not null;default:0"`
	DislikesCount int    `json:"dislikesCount" gorm:"not null;default:0"`
}
