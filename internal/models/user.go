package models

type User struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`    // lowercased, unique
	Password  string   `json:"password"` // bcrypt hash, never sent to clients
	CreatedAt string   `json:"createdAt"`
	Projects  []string `json:"projects"`
}

// Public strips the password hash for API responses.
func (u User) Public() PublicUser {
	projects := u.Projects
	if projects == nil {
		projects = []string{}
	}
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		Projects:  projects,
	}
}

type PublicUser struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	CreatedAt string   `json:"createdAt"`
	Projects  []string `json:"projects"`
}

// Session is the single active login record of a client profile.
type Session struct {
	UserID     string `json:"userId"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	LoginTime  int64  `json:"loginTime"` // unix milliseconds
	IsLoggedIn bool   `json:"isLoggedIn"`
}
