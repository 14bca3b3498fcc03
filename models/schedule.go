package models

import (
	"time"

	"github.com/google/uuid"
)

// Shift types and states.
const (
	ShiftDay     = "day"
	ShiftEvening = "evening"
	ShiftNight   = "night"

	ShiftScheduled = "scheduled"
	ShiftConfirmed = "confirmed"
	ShiftCompleted = "completed"
	ShiftCancelled = "cancelled"
)

// Shift is one operator's roster entry for a date. ShiftDate is a plain
// "2006-01-02" string so roster imports round-trip without timezone drift.
type Shift struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ShiftDate    string    `gorm:"column:shift_date;index;not null" json:"shiftDate"`
	ShiftType    string    `gorm:"column:shift_type;not null;default:'day'" json:"shiftType"`
	OperatorID   string    `gorm:"column:operator_id;index" json:"operatorId"`
	OperatorName string    `gorm:"column:operator_name" json:"operatorName"`
	StationName  string    `gorm:"column:station_name" json:"stationName,omitempty"`
	StartTime    string    `gorm:"column:start_time" json:"startTime"`
	EndTime      string    `gorm:"column:end_time" json:"endTime"`
	Status       string    `gorm:"column:status;not null;default:'scheduled'" json:"status"`
	Notes        string    `gorm:"column:notes" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
