package usecase

import (
	"context"
	"errors"
	"strings"

	"talent-hub/internal/domain/member"
	"talent-hub/internal/repository"
)

var ErrClientNotFound = errors.New("client not found")

type ClientUsecase interface {
	ListClients(ctx context.Context) ([]member.Client, error)
	CreateClient(ctx context.Context, name string) (member.Client, error)
	UpdateClient(ctx context.Context, id int64, name string) (member.Client, error)
	DeleteClient(ctx context.Context, id int64) error
}

type Client struct {
	clients repository.ClientRepository
	notify  ChangeNotifier
}

func NewClientUsecase(clients repository.ClientRepository, notify ChangeNotifier) *Client {
	return &Client{clients: clients, notify: notifierOrNop(notify)}
}

func (u *Client) ListClients(ctx context.Context) ([]member.Client, error) {
	out, err := u.clients.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Client) CreateClient(ctx context.Context, name string) (member.Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return member.Client{}, ErrInvalidInput
	}
	out, err := u.clients.Create(ctx, member.Client{Name: name})
	if err != nil {
		return member.Client{}, ErrInternal
	}
	u.notify.EntityChanged("client", "created", out.ID)
	return out, nil
}

func (u *Client) UpdateClient(ctx context.Context, id int64, name string) (member.Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return member.Client{}, ErrInvalidInput
	}
	out, err := u.clients.Update(ctx, member.Client{ID: id, Name: name})
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return member.Client{}, ErrClientNotFound
		}
		return member.Client{}, ErrInternal
	}
	u.notify.EntityChanged("client", "updated", id)
	return out, nil
}

// DeleteClient leaves engagement history in place; affected entries resolve
// to "Unknown Client" afterwards.
func (u *Client) DeleteClient(ctx context.Context, id int64) error {
	if err := u.clients.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return ErrClientNotFound
		}
		return ErrInternal
	}
	u.notify.EntityChanged("client", "deleted", id)
	return nil
}
