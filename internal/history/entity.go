package history

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type QuestionSet struct {
	ID uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	// UserID is set when the generate request carried a valid token;
	// anonymous generations are archived without attribution.
	UserID         *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Subject        string     `gorm:"type:text;not null;index" json:"subject"`
	YearBand       string     `gorm:"type:text;not null" json:"year_band"`
	EMA            float64    `gorm:"not null" json:"ema"`
	RequestedCount int        `gorm:"not null" json:"requested_count"`
	GeneratedCount int        `gorm:"not null" json:"generated_count"`
	// StudentContext holds the rendered context block encrypted at rest.
	StudentContext string    `gorm:"type:text" json:"-"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`

	Questions []GeneratedQuestion `gorm:"foreignKey:QuestionSetID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

type GeneratedQuestion struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	QuestionSetID uuid.UUID      `gorm:"type:uuid;not null;index" json:"question_set_id"`
	Content       string         `gorm:"type:text;not null" json:"content"`
	QuestionType  string         `gorm:"type:text" json:"type,omitempty"`
	Options       datatypes.JSON `gorm:"type:jsonb" json:"options,omitempty"`
	CorrectAnswer string         `gorm:"type:text" json:"correct_answer"`
	Difficulty    string         `gorm:"type:text" json:"difficulty,omitempty"`
	Explanation   *string        `gorm:"type:text" json:"explanation,omitempty"`
	OrderIndex    int            `gorm:"not null" json:"order_index"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
}
