package intent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvieira/catalogfront/internal/api"
)

// countingBackend records every request so tests can assert that invalid
// intents never reach the network.
type countingBackend struct {
	calls   atomic.Int64
	handler http.HandlerFunc
}

func newRegistryWithBackend(t *testing.T, handler http.HandlerFunc) (*Registry, *countingBackend) {
	t.Helper()
	backend := &countingBackend{handler: handler}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		backend.calls.Add(1)
		if backend.handler != nil {
			backend.handler(w, r)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("{}"))
	}))
	t.Cleanup(srv.Close)
	return NewRegistry(api.NewClient(srv.URL + "/api")), backend
}

func TestDispatch_UnknownIntent(t *testing.T) {
	t.Parallel()

	registry, backend := newRegistryWithBackend(t, nil)
	_, err := registry.Dispatch(context.Background(), api.Session{}, 0, Intent{Name: "drop_table"})
	require.ErrorIs(t, err, ErrUnknownIntent)
	assert.Zero(t, backend.calls.Load())
}

func TestCreateProduct_ValidationBlocksNetwork(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		form ProductForm
	}{
		{name: "empty name", form: ProductForm{Name: "", PriceRaw: "10"}},
		{name: "blank name", form: ProductForm{Name: "   ", PriceRaw: "10"}},
		{name: "missing price", form: ProductForm{Name: "Caneca", PriceRaw: ""}},
		{name: "non-numeric price", form: ProductForm{Name: "Caneca", PriceRaw: "abc"}},
		{name: "negative price", form: ProductForm{Name: "Caneca", PriceRaw: "-1"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry, backend := newRegistryWithBackend(t, nil)
			_, err := registry.Dispatch(context.Background(), api.Session{}, 0, Intent{
				Name:    CreateProduct,
				Product: tt.form,
			})
			require.ErrorIs(t, err, ErrValidation)
			assert.Zero(t, backend.calls.Load(), "validation failure must not issue any request")
		})
	}
}

func TestCreateProduct_UploadsImageFirst(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var paths []string
	registry, _ := newRegistryWithBackend(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.Path)
		mu.Unlock()
		switch r.URL.Path {
		case "/api/upload":
			json.NewEncoder(w).Encode(map[string]string{"filename": "stored.png"})
		case "/api/products":
			var in api.ProductInput
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			assert.Equal(t, "stored.png", in.ImageURL)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]any{"id": 1})
		}
	})

	out, err := registry.Dispatch(context.Background(), api.Session{}, 0, Intent{
		Name:     CreateProduct,
		Product:  ProductForm{Name: "Caneca", PriceRaw: "19.90"},
		File:     strings.NewReader("img-bytes"),
		Filename: "foto.png",
	})
	require.NoError(t, err)
	mu.Lock()
	require.Equal(t, []string{"/api/upload", "/api/products"}, paths)
	mu.Unlock()
	assert.Equal(t, "/admin?section=products", out.Redirect)
}

func TestCreateProduct_UploadFailureAbortsProductWrite(t *testing.T) {
	t.Parallel()

	var productWrites atomic.Int64
	registry, _ := newRegistryWithBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/upload":
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "Tipo de arquivo não permitido"})
		case "/api/products":
			productWrites.Add(1)
		}
	})

	_, err := registry.Dispatch(context.Background(), api.Session{}, 0, Intent{
		Name:     CreateProduct,
		Product:  ProductForm{Name: "Caneca", PriceRaw: "19.90"},
		File:     strings.NewReader("not-an-image"),
		Filename: "evil.exe",
	})
	require.Error(t, err)
	assert.Zero(t, productWrites.Load(), "a failed upload must abort before the product POST")
}

func TestDeleteProduct_RequiresConfirmation(t *testing.T) {
	t.Parallel()

	registry, backend := newRegistryWithBackend(t, nil)
	_, err := registry.Dispatch(context.Background(), api.Session{}, 0, Intent{
		Name:      DeleteProduct,
		ProductID: 9,
	})
	require.ErrorIs(t, err, ErrConfirmationRequired)
	assert.Zero(t, backend.calls.Load())
}

func TestUserActions_RequireConfirmation(t *testing.T) {
	t.Parallel()

	for _, name := range []Name{PromoteUser, DemoteUser, ToggleUserActive} {
		name := name
		t.Run(string(name), func(t *testing.T) {
			t.Parallel()

			registry, backend := newRegistryWithBackend(t, nil)
			_, err := registry.Dispatch(context.Background(), api.Session{}, 1, Intent{
				Name:   name,
				UserID: 2,
			})
			require.ErrorIs(t, err, ErrConfirmationRequired)
			assert.Zero(t, backend.calls.Load())
		})
	}
}

func TestUserActions_SelfTargetBlocked(t *testing.T) {
	t.Parallel()

	for _, name := range []Name{PromoteUser, DemoteUser, ToggleUserActive} {
		name := name
		t.Run(string(name), func(t *testing.T) {
			t.Parallel()

			registry, backend := newRegistryWithBackend(t, nil)
			_, err := registry.Dispatch(context.Background(), api.Session{}, 7, Intent{
				Name:      name,
				UserID:    7,
				Confirmed: true,
			})
			require.ErrorIs(t, err, ErrSelfAction)
			assert.Zero(t, backend.calls.Load(), "self mutation must never reach the backend")
		})
	}
}

func TestPromoteUser_Confirmed(t *testing.T) {
	t.Parallel()

	registry, _ := newRegistryWithBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/admin/users/2/promote", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"message": "usuário promovido"})
	})

	out, err := registry.Dispatch(context.Background(), api.Session{}, 1, Intent{
		Name:      PromoteUser,
		UserID:    2,
		Confirmed: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "usuário promovido", out.Message)
	assert.Equal(t, "/admin?section=users", out.Redirect)
}

func TestImportCSV_RequiresFile(t *testing.T) {
	t.Parallel()

	registry, backend := newRegistryWithBackend(t, nil)
	_, err := registry.Dispatch(context.Background(), api.Session{}, 0, Intent{Name: ImportCSV})
	require.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, backend.calls.Load())
}

func TestInviteAdmin_ReturnsTempPassword(t *testing.T) {
	t.Parallel()

	registry, _ := newRegistryWithBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/admin/invite", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{
			"message":            "ok",
			"temporary_password": "Ab12Cd",
		})
	})

	out, err := registry.Dispatch(context.Background(), api.Session{}, 1, Intent{
		Name:     InviteAdmin,
		Username: "nova",
		Email:    "nova@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ab12Cd", out.TempPassword)
	assert.Empty(t, out.Redirect, "the password is shown inline, not across a redirect")
}

func TestRegister_PasswordLength(t *testing.T) {
	t.Parallel()

	registry, backend := newRegistryWithBackend(t, nil)
	_, err := registry.Dispatch(context.Background(), api.Session{}, 0, Intent{
		Name:     Register,
		Username: "bob",
		Email:    "bob@example.com",
		Password: "12345",
	})
	require.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, backend.calls.Load())
}

func TestLogin_RedirectDependsOnAdminFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		isAdmin  bool
		redirect string
	}{
		{name: "admin goes to the console", isAdmin: true, redirect: "/admin"},
		{name: "regular user goes home", isAdmin: false, redirect: "/"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry, _ := newRegistryWithBackend(t, func(w http.ResponseWriter, r *http.Request) {
				http.SetCookie(w, &http.Cookie{Name: "session", Value: "s1"})
				json.NewEncoder(w).Encode(map[string]any{
					"user": map[string]any{"id": 1, "username": "u", "is_admin": tt.isAdmin},
				})
			})

			out, err := registry.Dispatch(context.Background(), api.Session{}, 0, Intent{
				Name:     Login,
				Username: "u",
				Password: "secret",
			})
			require.NoError(t, err)
			assert.Equal(t, tt.redirect, out.Redirect)
			require.Len(t, out.Cookies, 1)
		})
	}
}

func TestLoginRegister_UserlessSuccessReplyIsError(t *testing.T) {
	t.Parallel()

	// A 200 without a user object is the logged-out shape of /api/user; from
	// login or register it means the backend is broken. It must surface as an
	// error, never as a dispatch crash.
	intents := []Intent{
		{Name: Login, Username: "u", Password: "secret"},
		{Name: Register, Username: "u", Email: "u@example.com", Password: "secret7"},
	}
	for _, in := range intents {
		in := in
		t.Run(string(in.Name), func(t *testing.T) {
			t.Parallel()

			registry, _ := newRegistryWithBackend(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("{}"))
			})
			out, err := registry.Dispatch(context.Background(), api.Session{}, 0, in)
			require.Error(t, err)
			assert.Nil(t, out)
		})
	}
}

func TestLogout_AlwaysRedirectsToLogin(t *testing.T) {
	t.Parallel()

	t.Run("backend ok", func(t *testing.T) {
		t.Parallel()
		registry, _ := newRegistryWithBackend(t, nil)
		out, err := registry.Dispatch(context.Background(), api.Session{}, 0, Intent{Name: Logout})
		require.NoError(t, err)
		assert.Equal(t, "/login", out.Redirect)
	})

	t.Run("backend failing", func(t *testing.T) {
		t.Parallel()
		registry, _ := newRegistryWithBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		out, err := registry.Dispatch(context.Background(), api.Session{}, 0, Intent{Name: Logout})
		require.NoError(t, err)
		assert.Equal(t, "/login", out.Redirect)
	})
}
