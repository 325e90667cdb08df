package service

import (
	"context"
	"fmt"
	"time"

	"wheelhouse-backend/internal/domain"
	"wheelhouse-backend/internal/repository"
)

type supportService struct {
	supportRepo repository.SupportRepository
	notifier    *Notifier
}

func NewSupportService(supportRepo repository.SupportRepository, notifier *Notifier) SupportService {
	return &supportService{supportRepo: supportRepo, notifier: notifier}
}

func (s *supportService) OpenTicket(ctx context.Context, userID int32, subject, description string) (*domain.SupportTicket, error) {
	if subject == "" {
		return nil, domain.NewValidationError("subject", "is required")
	}
	if description == "" {
		return nil, domain.NewValidationError("description", "is required")
	}

	ticket := &domain.SupportTicket{
		UserID:      userID,
		Subject:     subject,
		Description: description,
		Status:      domain.TicketStatusOpen,
	}
	if err := s.supportRepo.CreateTicket(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

func (s *supportService) GetTicket(ctx context.Context, userID int32, isStaff bool, ticketID int32) (*domain.SupportTicket, error) {
	ticket, err := s.supportRepo.GetTicketByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if !isStaff && ticket.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return ticket, nil
}

func (s *supportService) ListTickets(ctx context.Context, userID int32, isStaff bool) ([]domain.SupportTicket, error) {
	if isStaff {
		return s.supportRepo.ListTickets(ctx)
	}
	return s.supportRepo.ListTicketsByUser(ctx, userID)
}

func (s *supportService) ResolveTicket(ctx context.Context, ticketID int32) (*domain.SupportTicket, error) {
	ticket, err := s.supportRepo.GetTicketByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.Status != domain.TicketStatusOpen {
		return nil, domain.NewValidationError("status",
			fmt.Sprintf("cannot resolve a ticket in status %s", ticket.Status))
	}

	now := time.Now()
	ticket.Status = domain.TicketStatusResolved
	ticket.ResolvedAt = &now
	if err := s.supportRepo.UpdateTicket(ctx, ticket); err != nil {
		return nil, err
	}

	s.notifier.Dispatch(ticket.UserID, "Support ticket resolved",
		fmt.Sprintf("Your ticket \"%s\" has been resolved.", ticket.Subject))
	return ticket, nil
}
