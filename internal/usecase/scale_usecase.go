package usecase

import (
	"context"
	"errors"
	"strings"

	"talent-hub/internal/domain/scale"
	"talent-hub/internal/repository"
)

var ErrScaleNotFound = errors.New("scale not found")

// ScaleItem is a scale together with its canonically ordered levels. The raw
// value shapes never leave this layer.
type ScaleItem struct {
	ID     int64
	Name   string
	Kind   scale.Kind
	Levels []string
}

type ScaleInput struct {
	Name   string
	Kind   scale.Kind
	Values []scale.Value
}

type ScaleUsecase interface {
	ListScales(ctx context.Context) ([]ScaleItem, error)
	GetScale(ctx context.Context, id int64) (ScaleItem, error)
	CreateScale(ctx context.Context, in ScaleInput) (ScaleItem, error)
	UpdateScale(ctx context.Context, id int64, in ScaleInput) (ScaleItem, error)
	DeleteScale(ctx context.Context, id int64) error
}

type Scale struct {
	repo   repository.ScaleRepository
	notify ChangeNotifier
}

func NewScaleUsecase(repo repository.ScaleRepository, notify ChangeNotifier) *Scale {
	return &Scale{repo: repo, notify: notifierOrNop(notify)}
}

func (u *Scale) ListScales(ctx context.Context) ([]ScaleItem, error) {
	scales, err := u.repo.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	out := make([]ScaleItem, 0, len(scales))
	for _, s := range scales {
		out = append(out, toScaleItem(s))
	}
	return out, nil
}

func (u *Scale) GetScale(ctx context.Context, id int64) (ScaleItem, error) {
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrScaleNotFound) {
			return ScaleItem{}, ErrScaleNotFound
		}
		return ScaleItem{}, ErrInternal
	}
	return toScaleItem(s), nil
}

func (u *Scale) CreateScale(ctx context.Context, in ScaleInput) (ScaleItem, error) {
	if err := validateScaleInput(in); err != nil {
		return ScaleItem{}, err
	}
	created, err := u.repo.Create(ctx, scale.Scale{Name: strings.TrimSpace(in.Name), Kind: in.Kind, Values: in.Values})
	if err != nil {
		return ScaleItem{}, ErrInternal
	}
	u.notify.EntityChanged("scale", "created", created.ID)
	return toScaleItem(created), nil
}

func (u *Scale) UpdateScale(ctx context.Context, id int64, in ScaleInput) (ScaleItem, error) {
	if err := validateScaleInput(in); err != nil {
		return ScaleItem{}, err
	}
	updated, err := u.repo.Update(ctx, scale.Scale{ID: id, Name: strings.TrimSpace(in.Name), Kind: in.Kind, Values: in.Values})
	if err != nil {
		if errors.Is(err, repository.ErrScaleNotFound) {
			return ScaleItem{}, ErrScaleNotFound
		}
		return ScaleItem{}, ErrInternal
	}
	u.notify.EntityChanged("scale", "updated", id)
	return toScaleItem(updated), nil
}

func (u *Scale) DeleteScale(ctx context.Context, id int64) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrScaleNotFound) {
			return ErrScaleNotFound
		}
		return ErrInternal
	}
	u.notify.EntityChanged("scale", "deleted", id)
	return nil
}

func validateScaleInput(in ScaleInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrInvalidInput
	}
	if in.Kind != scale.KindNumeric && in.Kind != scale.KindQualitative {
		return ErrInvalidInput
	}
	return nil
}

func toScaleItem(s scale.Scale) ScaleItem {
	return ScaleItem{ID: s.ID, Name: s.Name, Kind: s.Kind, Levels: s.Levels()}
}
