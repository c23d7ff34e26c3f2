package repository

import (
	"context"
	"fmt"

	"github.com/swingthoughts/swing-thoughts-api/internal/domain"
	"github.com/swingthoughts/swing-thoughts-api/internal/repository/dao"
)

var ErrInvitationalNotFound = dao.ErrInvitationalNotFound

type InvitationalDAO interface {
	Insert(ctx context.Context, invitational dao.Invitational) (dao.Invitational, error)
	FindByID(ctx context.Context, id uint) (dao.Invitational, error)
	FindByStatuses(ctx context.Context, statuses []string) ([]dao.Invitational, error)
	UpdateRoster(ctx context.Context, id uint, roster []dao.RosterEntry) error
}

type InvitationalRepository struct {
	dao InvitationalDAO
}

func NewInvitationalRepository(dao InvitationalDAO) *InvitationalRepository {
	return &InvitationalRepository{
		dao: dao,
	}
}

func (r *InvitationalRepository) Create(ctx context.Context, invitational domain.Invitational) (domain.Invitational, error) {
	created, err := r.dao.Insert(ctx, dao.Invitational{
		Name:   invitational.Name,
		HostID: invitational.HostID,
		Status: string(invitational.Status),
		Roster: rosterToDAO(invitational.Roster),
	})
	if err != nil {
		return domain.Invitational{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *InvitationalRepository) FindByID(ctx context.Context, id uint) (domain.Invitational, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Invitational{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *InvitationalRepository) FindByStatuses(ctx context.Context, statuses []domain.InvitationalStatus) ([]domain.Invitational, error) {
	raw := make([]string, 0, len(statuses))
	for _, s := range statuses {
		raw = append(raw, string(s))
	}

	found, err := r.dao.FindByStatuses(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByStatuses -> %w", err)
	}

	invitationals := make([]domain.Invitational, 0, len(found))
	for _, i := range found {
		invitationals = append(invitationals, r.daoToDomain(i))
	}

	return invitationals, nil
}

func (r *InvitationalRepository) UpdateRoster(ctx context.Context, id uint, roster []domain.RosterEntry) error {
	if err := r.dao.UpdateRoster(ctx, id, rosterToDAO(roster)); err != nil {
		return fmt.Errorf("r.dao.UpdateRoster -> %w", err)
	}

	return nil
}

func (r *InvitationalRepository) daoToDomain(i dao.Invitational) domain.Invitational {
	roster := make([]domain.RosterEntry, 0, len(i.Roster))
	for _, e := range i.Roster {
		roster = append(roster, domain.RosterEntry{
			UserID:      e.UserID,
			DisplayName: e.DisplayName,
			InviteCode:  e.InviteCode,
			Ghost:       e.Ghost,
		})
	}

	return domain.Invitational{
		ID:        i.ID,
		Name:      i.Name,
		HostID:    i.HostID,
		Status:    domain.InvitationalStatus(i.Status),
		Roster:    roster,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

func rosterToDAO(roster []domain.RosterEntry) []dao.RosterEntry {
	out := make([]dao.RosterEntry, 0, len(roster))
	for _, e := range roster {
		out = append(out, dao.RosterEntry{
			UserID:      e.UserID,
			DisplayName: e.DisplayName,
			InviteCode:  e.InviteCode,
			Ghost:       e.Ghost,
		})
	}
	return out
}
