package domain

type Role string

const (
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

// User is the backend account record. Role is empty until onboarding picks one.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role,omitempty"`
}

func (u User) HasRole() bool { return u.Role != "" }

func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

type Profile struct {
	ID          int64  `json:"id,omitempty"`
	UserID      int64  `json:"userId,omitempty"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Birthday    string `json:"birthday"`
	Address     string `json:"address"`
	Bio         string `json:"bio"`
	AvatarURL   string `json:"avatarUrl"`
}

// Complete reports whether onboarding can consider the profile filled in.
func (p *Profile) Complete() bool {
	return p != nil && p.FirstName != ""
}

func (p *Profile) DisplayName() string {
	if p == nil {
		return ""
	}
	switch {
	case p.FirstName != "" && p.LastName != "":
		return p.FirstName + " " + p.LastName
	case p.FirstName != "":
		return p.FirstName
	}
	return p.LastName
}
