package domain

type UserProfile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type Complaint struct {
	Complaint string `json:"complaint"`
}

type SettingsUpdate struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
