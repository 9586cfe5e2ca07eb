package models

// Product mirrors the backend resource. The webfront never owns one of these
// outside a single render pass.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"is_admin"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

type UploadResult struct {
	Filename string `json:"filename"`
	Message  string `json:"message"`
}

type InviteResult struct {
	Message           string `json:"message"`
	TemporaryPassword string `json:"temporary_password"`
}

type Health struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (h Health) OK() bool { return h.Status == "OK" }
