package users

// contains the coaching profile fields a user can set
type ProfileUpdateRequest struct {
	Age              int    `json:"age" binding:"omitempty,gte=1,lte=120"`
	Occupation       string `json:"occupation" binding:"required"`
	Goal             string `json:"goal" binding:"required"`
	DailyStudyTarget int    `json:"daily_study_target" binding:"required,gte=10,lte=960"` // minutes
}
