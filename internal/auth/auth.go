// Package auth is the storefront's mock identity provider. It accepts any
// customer credentials and one fixed admin account.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Chahethsen12/MobiTech-Elite/internal/domain"
)

const (
	AdminEmail    = "admin@mobitech.com"
	AdminPassword = "admin123"

	adminID        = "admin_1"
	adminName      = "System Administrator"
	demoCustomerID = "user_1"
	demoCustomer   = "Alex Johnson"
)

var (
	ErrMissingCredentials      = errors.New("please fill in all fields")
	ErrNotSignedIn             = errors.New("not signed in")
	ErrInvalidAdminCredentials = fmt.Errorf("invalid admin credentials, use %s / %s", AdminEmail, AdminPassword)
)

type Authenticator struct {
	now func() time.Time
}

func New() *Authenticator {
	return &Authenticator{now: time.Now}
}

// Login signs a user in. Admin logins must use the fixed admin account;
// customer logins succeed for any non-blank email and password.
func (a *Authenticator) Login(email, password string, asAdmin bool) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || strings.TrimSpace(password) == "" {
		return nil, ErrMissingCredentials
	}

	if asAdmin {
		if email != AdminEmail || password != AdminPassword {
			return nil, ErrInvalidAdminCredentials
		}
		return &domain.User{ID: adminID, Name: adminName, Email: AdminEmail, Role: domain.RoleAdmin}, nil
	}

	return &domain.User{ID: demoCustomerID, Name: demoCustomer, Email: email, Role: domain.RoleCustomer}, nil
}

// Register creates a customer account. Nothing is stored.
func (a *Authenticator) Register(name, email, password string) (*domain.User, error) {
	name, email = strings.TrimSpace(name), strings.TrimSpace(email)
	if name == "" || email == "" || strings.TrimSpace(password) == "" {
		return nil, ErrMissingCredentials
	}

	return &domain.User{
		ID:    fmt.Sprintf("user_%d", a.now().UnixNano()),
		Name:  name,
		Email: email,
		Role:  domain.RoleCustomer,
	}, nil
}

// UpdateProfile returns a copy of user with a new display name and email.
// The id and role are kept.
func (a *Authenticator) UpdateProfile(user *domain.User, name, email string) (*domain.User, error) {
	if user == nil {
		return nil, ErrNotSignedIn
	}
	name, email = strings.TrimSpace(name), strings.TrimSpace(email)
	if name == "" || email == "" {
		return nil, ErrMissingCredentials
	}

	updated := *user
	updated.Name = name
	updated.Email = email
	return &updated, nil
}
