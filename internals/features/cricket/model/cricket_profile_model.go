package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CricketProfileModel holds the cricket skill details captured during
// registration, one row per user.
type CricketProfileModel struct {
	CricketProfileID uuid.UUID `gorm:"column:cricket_profile_id;type:uuid;default:gen_random_uuid();primaryKey" json:"cricket_profile_id"`

	CricketProfileUserID uuid.UUID `gorm:"column:cricket_profile_user_id;type:uuid;not null;unique" json:"cricket_profile_user_id"`

	CricketProfileSkillLevel    string `gorm:"column:cricket_profile_skill_level;type:varchar(30)" json:"cricket_profile_skill_level"`
	CricketProfileSportsHistory string `gorm:"column:cricket_profile_sports_history;type:text" json:"cricket_profile_sports_history"`
	CricketProfileAchievements  string `gorm:"column:cricket_profile_achievements;type:text" json:"cricket_profile_achievements"`

	CricketProfilePrimaryRole  string `gorm:"column:cricket_profile_primary_role;type:varchar(20)" json:"cricket_profile_primary_role"` // BATSMAN | BOWLER | ALL_ROUNDER | WICKET_KEEPER
	CricketProfileBattingHand  string `gorm:"column:cricket_profile_batting_hand;type:varchar(10)" json:"cricket_profile_batting_hand"` // LEFT | RIGHT | BOTH
	CricketProfileBowlingPace  string `gorm:"column:cricket_profile_bowling_pace;type:varchar(20)" json:"cricket_profile_bowling_pace"`
	CricketProfileBowlingArm   string `gorm:"column:cricket_profile_bowling_arm;type:varchar(10)" json:"cricket_profile_bowling_arm"`
	CricketProfileWicketKeeper bool   `gorm:"column:cricket_profile_wicket_keeper;not null;default:false" json:"cricket_profile_wicket_keeper"`
	CricketProfileCaptaincy    bool   `gorm:"column:cricket_profile_captaincy;not null;default:false" json:"cricket_profile_captaincy"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (CricketProfileModel) TableName() string {
	return "cricket_profiles"
}
