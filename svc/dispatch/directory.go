package dispatch

import "context"

// Role names with notification-relevant semantics.
const (
	RoleAdmin     = "admin"
	RoleDeveloper = "developer"
)

// User is the directory's view of an account, narrowed to what handlers need
// for channel selection: where to reach them and whether they opted into SMS.
type User struct {
	ID       string
	Email    string
	Name     string
	Phone    string // E.164 or national format; empty = no SMS channel
	SMSOptIn bool
}

// Athlete is the directory's view of an athlete profile.
// ViewerVisibility reflects the profile's current plan: whether the athlete
// is entitled to see who viewed them.
type Athlete struct {
	ID               string
	UserID           string
	Name             string
	ViewerVisibility bool
}

// Directory is the narrow read interface over the platform's user and
// profile records. It is implemented by the surrounding application's
// persistence layer; handlers never touch the ORM directly.
type Directory interface {
	UserByID(ctx context.Context, id string) (User, error)
	AdminsWithRole(ctx context.Context, role string) ([]User, error)
	AthleteByID(ctx context.Context, id string) (Athlete, error)
}
