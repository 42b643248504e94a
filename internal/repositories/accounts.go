package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rohits-web03/roboshow/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	minNameLength     = 3
	minPasswordLength = 6
	maxPasswordBytes  = 72 // bcrypt input limit
)

// AccountRepository owns the users collection and one session slot.
// Views returned by ForProfile share the users collection but have their
// own slot.
type AccountRepository struct {
	users    Store
	sessions Store
	now      func() time.Time
	cost     int

	mu *sync.Mutex // guards users read-modify-write across all views
}

type AccountOption func(*AccountRepository)

func WithAccountClock(now func() time.Time) AccountOption {
	return func(r *AccountRepository) { r.now = now }
}

// WithHashCost sets the bcrypt cost. Tests use bcrypt.MinCost.
func WithHashCost(cost int) AccountOption {
	return func(r *AccountRepository) { r.cost = cost }
}

func NewAccountRepository(store Store, opts ...AccountOption) *AccountRepository {
	r := &AccountRepository{
		users:    store,
		sessions: store,
		now:      time.Now,
		cost:     bcrypt.DefaultCost,
		mu:       &sync.Mutex{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ForProfile returns a view whose session slot belongs to one client
// profile.
func (r *AccountRepository) ForProfile(profileID string) *AccountRepository {
	view := *r
	view.sessions = Prefixed(r.users, "profile:"+profileID+":")
	return &view
}

func (r *AccountRepository) Users(ctx context.Context) ([]models.User, error) {
	return loadCollection[models.User](ctx, r.users, UsersKey)
}

func (r *AccountRepository) UserByID(ctx context.Context, id string) (*models.User, error) {
	users, err := r.Users(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, ErrUserNotFound
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func findByEmail(users []models.User, email string) int {
	email = normalizeEmail(email)
	return slices.IndexFunc(users, func(u models.User) bool {
		return strings.ToLower(u.Email) == email
	})
}

// Register validates the input, stores a new user and signs them in.
// A duplicate email is reported before any other rule.
func (r *AccountRepository) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name = strings.TrimSpace(name)
	email = normalizeEmail(email)

	users, err := r.Users(ctx)
	if err != nil {
		return nil, err
	}
	if findByEmail(users, email) != -1 {
		return nil, ErrEmailTaken
	}

	switch {
	case utf8.RuneCountInString(name) < minNameLength:
		return nil, NewValidationError("Name must be at least 3 characters")
	case !emailPattern.MatchString(email):
		return nil, NewValidationError("Invalid email address")
	case len(password) < minPasswordLength:
		return nil, NewValidationError("Password must be at least 6 characters")
	case len(password) > maxPasswordBytes:
		return nil, NewValidationError("Password must be at most 72 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), r.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:        r.newUserID(),
		Name:      name,
		Email:     email,
		Password:  string(hash),
		CreatedAt: r.now().Format(models.DateLayout),
		Projects:  []string{},
	}
	users = append(users, user)
	if err := saveCollection(ctx, r.users, UsersKey, users); err != nil {
		return nil, err
	}

	if _, err := r.startSession(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login checks the credentials and opens a session. Unknown emails and
// wrong passwords fail the same way.
func (r *AccountRepository) Login(ctx context.Context, email, password string) (*models.Session, error) {
	users, err := r.Users(ctx)
	if err != nil {
		return nil, err
	}
	idx := findByEmail(users, email)
	if idx == -1 {
		return nil, ErrInvalidCredentials
	}
	user := users[idx]
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return r.startSession(ctx, user)
}

// LoginExternal signs in a user vouched for by an identity provider. With
// create set, a missing user is registered; an existing one is an error.
func (r *AccountRepository) LoginExternal(ctx context.Context, email, name string, create bool) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.Users(ctx)
	if err != nil {
		return nil, err
	}
	idx := findByEmail(users, email)

	switch {
	case create && idx != -1:
		return nil, ErrEmailTaken
	case !create && idx == -1:
		return nil, ErrUserNotFound
	case create:
		user := models.User{
			ID:        r.newUserID(),
			Name:      strings.TrimSpace(name),
			Email:     normalizeEmail(email),
			Password:  "", // no password login for provider accounts
			CreatedAt: r.now().Format(models.DateLayout),
			Projects:  []string{},
		}
		users = append(users, user)
		if err := saveCollection(ctx, r.users, UsersKey, users); err != nil {
			return nil, err
		}
		return r.startSession(ctx, user)
	default:
		return r.startSession(ctx, users[idx])
	}
}

// Logout clears the session slot.
func (r *AccountRepository) Logout(ctx context.Context) error {
	if err := r.sessions.Delete(ctx, SessionKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// CurrentUser returns the active session or ErrNoSession. An unreadable
// session document counts as no session.
func (r *AccountRepository) CurrentUser(ctx context.Context) (*models.Session, error) {
	data, err := r.sessions.Get(ctx, SessionKey)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil || !session.IsLoggedIn {
		return nil, ErrNoSession
	}
	return &session, nil
}

// LinkProject records projectID on the user. Missing users and already
// linked projects are ignored.
func (r *AccountRepository) LinkProject(ctx context.Context, userID, projectID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.Users(ctx)
	if err != nil {
		return err
	}
	idx := slices.IndexFunc(users, func(u models.User) bool { return u.ID == userID })
	if idx == -1 || slices.Contains(users[idx].Projects, projectID) {
		return nil
	}
	users[idx].Projects = append(users[idx].Projects, projectID)
	return saveCollection(ctx, r.users, UsersKey, users)
}

func (r *AccountRepository) startSession(ctx context.Context, user models.User) (*models.Session, error) {
	session := models.Session{
		UserID:     user.ID,
		Email:      user.Email,
		Name:       user.Name,
		LoginTime:  r.now().UnixMilli(),
		IsLoggedIn: true,
	}
	data, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session: %w", err)
	}
	if err := r.sessions.Set(ctx, SessionKey, data); err != nil {
		return nil, fmt.Errorf("failed to write session: %w", err)
	}
	return &session, nil
}

func (r *AccountRepository) newUserID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("user-%d-%s", r.now().UnixMilli(), suffix)
}
