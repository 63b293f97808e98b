package profile

// DTOs for API requests/responses

type CreateProfileRequest struct {
	Birthdate         string   `json:"birthdate" validate:"required,datetime=2006-01-02"`
	Gender            string   `json:"gender" validate:"required,max=50"`
	Pronouns          string   `json:"pronouns,omitempty" validate:"omitempty,max=50"`
	SexualOrientation string   `json:"sexual_orientation" validate:"required,max=50"`
	UniversityID      string   `json:"university_id" validate:"required"`
	Bio               string   `json:"bio,omitempty" validate:"omitempty,max=1000"`
	Interests         []string `json:"interests" validate:"omitempty,max=20,dive,min=1,max=50"`
	GenderPreference  []string `json:"gender_preference" validate:"required,min=1,dive,min=1,max=50"`
	MinAge            int      `json:"min_age" validate:"required,gte=18,lte=100"`
	MaxAge            int      `json:"max_age" validate:"required,gte=18,lte=100"`
	Intent            string   `json:"intent" validate:"required,oneof=serious_relationship casual_dating friendship study_partner hookup unsure"`
	AvatarURL         string   `json:"avatar_url,omitempty" validate:"omitempty,url"`
	Photos            []string `json:"photos,omitempty" validate:"omitempty,max=9,dive,url"`
}

type UpdateProfileRequest struct {
	Bio              *string  `json:"bio,omitempty" validate:"omitempty,max=1000"`
	Pronouns         *string  `json:"pronouns,omitempty" validate:"omitempty,max=50"`
	Interests        []string `json:"interests,omitempty" validate:"omitempty,max=20,dive,min=1,max=50"`
	GenderPreference []string `json:"gender_preference,omitempty" validate:"omitempty,min=1,dive,min=1,max=50"`
	MinAge           *int     `json:"min_age,omitempty" validate:"omitempty,gte=18,lte=100"`
	MaxAge           *int     `json:"max_age,omitempty" validate:"omitempty,gte=18,lte=100"`
	Intent           *string  `json:"intent,omitempty" validate:"omitempty,oneof=serious_relationship casual_dating friendship study_partner hookup unsure"`
	AvatarURL        *string  `json:"avatar_url,omitempty" validate:"omitempty,url"`
	Photos           []string `json:"photos,omitempty" validate:"omitempty,max=9,dive,url"`
}
