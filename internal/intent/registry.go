package intent

import (
	"context"
	"fmt"

	"github.com/mvieira/catalogfront/internal/api"
	"github.com/mvieira/catalogfront/internal/logging"
)

// Handler runs one intent on behalf of the acting user. actingUserID is 0 for
// anonymous visitors.
type Handler func(ctx context.Context, sess api.Session, actingUserID int, in Intent) (*Outcome, error)

type Registry struct {
	client   *api.Client
	handlers map[Name]Handler
}

func NewRegistry(client *api.Client) *Registry {
	r := &Registry{
		client:   client,
		handlers: make(map[Name]Handler),
	}
	r.register(CreateProduct, r.createProduct)
	r.register(UpdateProduct, r.updateProduct)
	r.register(DeleteProduct, r.deleteProduct)
	r.register(ImportCSV, r.importCSV)
	r.register(PromoteUser, r.userAction(api.ActionPromote))
	r.register(DemoteUser, r.userAction(api.ActionDemote))
	r.register(ToggleUserActive, r.userAction(api.ActionToggle))
	r.register(InviteAdmin, r.inviteAdmin)
	r.register(Login, r.login)
	r.register(Register, r.registerUser)
	r.register(Logout, r.logout)
	return r
}

func (r *Registry) register(name Name, h Handler) {
	r.handlers[name] = h
}

func (r *Registry) Dispatch(ctx context.Context, sess api.Session, actingUserID int, in Intent) (*Outcome, error) {
	h, ok := r.handlers[in.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownIntent, in.Name)
	}

	l := logging.FromContext(ctx).With("intent", string(in.Name))
	out, err := h(ctx, sess, actingUserID, in)
	if err != nil {
		l.Warn("intent_failed", "error", err)
		return nil, err
	}
	l.Info("intent_ok")
	return out, nil
}
