package models

type UserType string

const (
	UserTypeTrainer UserType = "trainer"
	UserTypePlayer  UserType = "player"
)

type User struct {
	ID        int      `json:"id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	UserType  UserType `json:"user_type"`
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

func (u User) IsTrainer() bool {
	return u.UserType == UserTypeTrainer
}

// Session is the credential + identity pair that authorizes API calls.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
