package auth

import "errors"

// Role decides which dashboard panels a user can reach.
type Role string

const (
	RoleProcurement Role = "procurement"
	RoleFinance     Role = "finance"
)

// User is the identity produced by a successful login.
type User struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Name     string `json:"name"`
}

var (
	ErrInvalidUsername    = errors.New("invalid username")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Placeholder credential table. Both demo accounts share one password.
// This stands in for a real identity provider; any production deployment
// must replace it.
const sharedPassword = "123"

var accounts = map[string]User{
	"proc": {Username: "proc", Role: RoleProcurement, Name: "Rajendran A"},
	"acc":  {Username: "acc", Role: RoleFinance, Name: "Sudha R"},
}

// Authenticate checks a username/password pair against the credential
// table. A wrong password reports invalid credentials; a correct password
// with an unknown username reports invalid username. Both are
// re-promptable; there is no lockout or attempt counting.
func Authenticate(username, password string) (User, error) {
	if password != sharedPassword {
		return User{}, ErrInvalidCredentials
	}
	user, ok := accounts[username]
	if !ok {
		return User{}, ErrInvalidUsername
	}
	return user, nil
}
