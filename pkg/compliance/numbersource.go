package compliance

import (
	"context"
	"fmt"

	"github.com/danielmv/leadrevive/ent"
	"github.com/danielmv/leadrevive/ent/a2pregistration"
	"github.com/danielmv/leadrevive/ent/twilioaccount"
	"github.com/danielmv/leadrevive/pkg/domain"
)

// NumberSource resolves the from-number a user's messages are sent from.
type NumberSource interface {
	ResolveFromNumber(ctx context.Context, userID int) (string, error)
}

// A2PNumberSource resolves the number assigned by a completed A2P registration.
type A2PNumberSource struct {
	db *ent.Client
}

// NewA2PNumberSource creates a number source backed by A2P registrations
func NewA2PNumberSource(db *ent.Client) *A2PNumberSource {
	return &A2PNumberSource{db: db}
}

func (s *A2PNumberSource) ResolveFromNumber(ctx context.Context, userID int) (string, error) {
	reg, err := s.db.A2PRegistration.
		Query().
		Where(
			a2pregistration.UserIDEQ(userID),
			a2pregistration.StatusEQ(a2pregistration.StatusNumberAssigned),
			a2pregistration.PhoneNumberNEQ(""),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", domain.NewNotFoundError("assigned a2p number")
		}
		return "", fmt.Errorf("failed to resolve a2p number: %w", err)
	}
	return reg.PhoneNumber, nil
}

// ConnectedNumberSource resolves the number of a verified connected account.
type ConnectedNumberSource struct {
	db *ent.Client
}

// NewConnectedNumberSource creates a number source backed by connected accounts
func NewConnectedNumberSource(db *ent.Client) *ConnectedNumberSource {
	return &ConnectedNumberSource{db: db}
}

func (s *ConnectedNumberSource) ResolveFromNumber(ctx context.Context, userID int) (string, error) {
	account, err := s.db.TwilioAccount.
		Query().
		Where(
			twilioaccount.UserIDEQ(userID),
			twilioaccount.IsVerifiedEQ(true),
			twilioaccount.PhoneNumberNEQ(""),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", domain.NewNotFoundError("connected account number")
		}
		return "", fmt.Errorf("failed to resolve connected number: %w", err)
	}
	return account.PhoneNumber, nil
}

// ChainNumberSource tries each source in order and returns the first match.
// The standard chain prefers the A2P-assigned number over a legacy account.
type ChainNumberSource struct {
	sources []NumberSource
}

// NewChainNumberSource creates a chained number source
func NewChainNumberSource(sources ...NumberSource) *ChainNumberSource {
	return &ChainNumberSource{sources: sources}
}

func (s *ChainNumberSource) ResolveFromNumber(ctx context.Context, userID int) (string, error) {
	for _, src := range s.sources {
		number, err := src.ResolveFromNumber(ctx, userID)
		if err == nil {
			return number, nil
		}
		if !domain.IsNotFound(err) {
			return "", err
		}
	}
	return "", domain.NewNotFoundError("sending number")
}
