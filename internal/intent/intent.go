// Package intent maps every user action of the UI to one named command
// dispatched through a single registry, so the whole mutation surface is
// testable without any markup. Handlers validate first, talk to the backend
// second; a validation failure never issues a request.
package intent

import (
	"errors"
	"io"
	"net/http"
)

type Name string

const (
	CreateProduct    Name = "create_product"
	UpdateProduct    Name = "update_product"
	DeleteProduct    Name = "delete_product"
	ImportCSV        Name = "import_csv"
	PromoteUser      Name = "promote_user"
	DemoteUser       Name = "demote_user"
	ToggleUserActive Name = "toggle_user_active"
	InviteAdmin      Name = "invite_admin"
	Login            Name = "login"
	Register         Name = "register"
	Logout           Name = "logout"
)

var (
	ErrValidation           = errors.New("validation failed")
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrSelfAction           = errors.New("cannot mutate your own account")
	ErrUnknownIntent        = errors.New("unknown intent")
)

// ValidationError carries the user-facing text of a client-side check.
// errors.Is(err, ErrValidation) matches it.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// ProductForm is the raw form payload. Price stays a string until the handler
// validates it; a non-numeric value must fail before any network call.
type ProductForm struct {
	Name        string
	Description string
	PriceRaw    string
	Category    string
	ImageURL    string
}

// Intent is one named command plus whatever payload its handler needs.
type Intent struct {
	Name Name

	// Confirmed marks that the user went through the confirmation step.
	// Destructive intents refuse to run without it.
	Confirmed bool

	Product   ProductForm
	ProductID int

	// File is an optional upload (product image, CSV import).
	File     io.Reader
	Filename string

	UserID   int
	Username string
	Email    string
	Password string
}

// Outcome is the successful result of a dispatch. Errors travel on the error
// return instead.
type Outcome struct {
	Message string

	// Redirect is where the page navigates next, empty to stay put.
	Redirect string

	// Cookies are Set-Cookie values from the backend to relay to the
	// browser verbatim (login, register, logout).
	Cookies []*http.Cookie

	// TempPassword is only set by InviteAdmin and is shown exactly once.
	TempPassword string
}
