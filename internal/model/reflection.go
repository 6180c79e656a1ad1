// internal/model/reflection.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Reflection はユーザーの月次ふりかえり (自由記述) です。
// (user_id, year, month) でユニーク。context は少数の既知キーに限定した
// 開かれたキーバリューで、コアの集計はこの中身を解釈しません。
type Reflection struct {
	ReflectionID uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index:idx_reflection_identity,unique" json:"-"`
	Year         int       `gorm:"not null;index:idx_reflection_identity,unique" json:"year"`
	Month        int       `gorm:"not null;index:idx_reflection_identity,unique" json:"month"`

	Body        string `json:"body"`
	ContextJSON string `gorm:"column:context" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Reflection) TableName() string {
	return "reflections"
}

// RecognizedReflectionKeys は context に許可するキーの集合です
var RecognizedReflectionKeys = map[string]bool{
	"mood":      true,
	"energy":    true,
	"highlight": true,
	"lowlight":  true,
	"next_step": true,
}

// Context は保存済みの context JSON をマップに復元します
func (r *Reflection) Context() map[string]string {
	if r.ContextJSON == "" {
		return map[string]string{}
	}
	m := map[string]string{}
	if err := json.Unmarshal([]byte(r.ContextJSON), &m); err != nil {
		return map[string]string{}
	}
	return m
}

// SetContext はマップを context JSON として保存します
func (r *Reflection) SetContext(m map[string]string) error {
	if len(m) == 0 {
		r.ContextJSON = ""
		return nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	r.ContextJSON = string(b)
	return nil
}

// ふりかえり upsert リクエストDTO
type UpsertReflectionRequest struct {
	Body    string            `json:"body" validate:"max=10000"`
	Context map[string]string `json:"context,omitempty" validate:"omitempty,max=8,dive,keys,min=1,endkeys,max=500"`
}

// ReflectionResponse はふりかえりAPIのレスポンスDTO
type ReflectionResponse struct {
	Year    int               `json:"year"`
	Month   int               `json:"month"`
	Body    string            `json:"body"`
	Context map[string]string `json:"context"`
}
